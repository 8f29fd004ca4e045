package dto

type NoticeDTO struct {
	Message string `json:"message" binding:"required"`
}

package dto

type SendEmailDTO struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Content string `json:"content"`
}

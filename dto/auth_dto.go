package dto

type RegisterStudentDTO struct {
	FirstName  string `json:"firstName" binding:"required"`
	LastName   string `json:"lastName" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Course     string `json:"course" binding:"required"`
	SubField   string `json:"subField"`
	Year       string `json:"year" binding:"required"`
	RollNumber string `json:"rollNumber" binding:"required"`
	Gender     string `json:"gender" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type RegisterAdminDTO struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required"`
	AdminID   string `json:"adminId" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

type LoginDTO struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ResetPasswordDTO fields are checked by hand so missing input gets the
// flow's own message rather than a binding error.
type ResetPasswordDTO struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}

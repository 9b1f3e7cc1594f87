package model

// RolePatient is the only role registration produces.
const RolePatient = "patient"

// Account is the credential record persisted under "usuario_<username>".
// Passwords are never stored; only the bcrypt hash is.
type Account struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
	FullName     string `json:"full_name"`
	NationalID   string `json:"national_id"`
	Email        string `json:"email"`
	Role         string `json:"role"`
}

type RegisterRequest struct {
	Username        string `json:"username" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	FullName        string `json:"full_name" validate:"required"`
	NationalID      string `json:"national_id" validate:"required,taxid"`
	Email           string `json:"email" validate:"required,email"`
}

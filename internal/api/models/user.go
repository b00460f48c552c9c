package models

import "ctchen222/Cat-Match/internal/api/response"

// User represents a user in the database.
type User struct {
	ID           int64  `db:"id"`
	Login        string `db:"login"`
	PasswordHash string `db:"password_hash"`
}

// Identity is the authenticated user resolved from the session once per request.
type Identity struct {
	UserID int64  `json:"user_id"`
	Login  string `json:"login"`
}

// RegisterRequest is the registration form.
type RegisterRequest struct {
	Login           string `form:"login" validate:"required,min=2,max=64"`
	Password        string `form:"password" validate:"required,min=8,max=72"`
	PasswordConfirm string `form:"password-confirm" validate:"required,eqfield=Password"`
}

// LoginRequest is the login form.
type LoginRequest struct {
	Login    string `form:"login" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// FieldErrors maps a form field name to a message shown next to it.
// The "form" key holds errors that belong to no single field.
type FieldErrors map[string]string

// ValidationError carries field errors out of the service layer.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	for field, msg := range e.Fields {
		return field + ": " + msg
	}
	return "validation failed"
}

// Unwrap makes validation failures match response.ErrBadRequest.
func (e *ValidationError) Unwrap() error {
	return response.ErrBadRequest
}

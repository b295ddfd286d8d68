package domain

import "errors"

var (
	ErrEmailExists      = errors.New("email already exists")
	ErrUsernameExists   = errors.New("username already exists")
	ErrUserNotFound     = errors.New("user not found, please register first")
	ErrEmailNotVerified = errors.New("email not authenticated")
	ErrPasswordMismatch = errors.New("password does not match")
	ErrBookNotFound     = errors.New("Book not found")
)

// ValidationError marks an input failure from one of the ordered validation
// rules. The message is safe to return to the client.
type ValidationError struct {
	msg string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

func (e *ValidationError) Error() string {
	return e.msg
}

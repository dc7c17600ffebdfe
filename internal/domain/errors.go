package domain

import "errors"

var (
	// ErrNotFound is returned when a record does not exist or is owned by
	// another user. The two cases are deliberately indistinguishable.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken is returned when an email collides with another account.
	ErrEmailTaken = errors.New("email already taken")

	// ErrUserNotFound and ErrWrongPassword are the two internal sign-in
	// failures. The HTTP boundary reports both as the same generic failure.
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("wrong password")

	// ErrInvalidToken covers missing, malformed and badly signed tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned for tokens past their expiry.
	ErrExpiredToken = errors.New("token has expired")
)

// ValidationError reports malformed or missing input. It is raised before any
// store call and maps to a 400 at the boundary.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError builds a ValidationError with the given reason.
func NewValidationError(reason string) error {
	return &ValidationError{Reason: reason}
}

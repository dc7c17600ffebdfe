package domain

import "time"

// User represents a registered account. PasswordHash never leaves the
// repository/service boundary; handlers only ever see sanitized copies.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserPatch carries the fields a profile edit may change. A nil field means
// "leave unchanged".
type UserPatch struct {
	Email     *string
	FirstName *string
	LastName  *string
}

package domain

import "time"

// Bookmark is a saved link owned by exactly one user. UserID is set on
// creation and never changes.
type Bookmark struct {
	ID          int64
	UserID      int64
	Title       string
	Link        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BookmarkPatch carries the fields a bookmark edit may change. A nil field
// means "leave unchanged".
type BookmarkPatch struct {
	Title       *string
	Link        *string
	Description *string
}

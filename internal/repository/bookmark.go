package repository

import (
	"context"

	"linkmark/internal/domain"
)

// BookmarkRepository exposes persistence operations for Bookmark records.
// Every lookup or mutation beyond Create is scoped by the owning user id:
// a bookmark owned by someone else behaves exactly like a missing one.
type BookmarkRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, bookmark *domain.Bookmark) (int64, error)
	Get(ctx context.Context, userID, id int64) (*domain.Bookmark, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Bookmark, error)
	Update(ctx context.Context, userID, id int64, patch domain.BookmarkPatch) (*domain.Bookmark, error)
	Delete(ctx context.Context, userID, id int64) error
}

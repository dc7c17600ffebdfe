package service

import (
	"context"
	"strings"

	"linkmark/internal/domain"
	"linkmark/internal/repository"
)

// BookmarkService coordinates bookmark operations. Every call is scoped by
// the owner id resolved from the session token; the repository never sees a
// lookup without it.
type BookmarkService interface {
	Create(ctx context.Context, userID int64, title, link, description string) (*domain.Bookmark, error)
	Get(ctx context.Context, userID, id int64) (*domain.Bookmark, error)
	List(ctx context.Context, userID int64) ([]domain.Bookmark, error)
	Update(ctx context.Context, userID, id int64, patch domain.BookmarkPatch) (*domain.Bookmark, error)
	Delete(ctx context.Context, userID, id int64) error
}

type bookmarkService struct {
	bookmarks repository.BookmarkRepository
}

func NewBookmarkService(bookmarks repository.BookmarkRepository) BookmarkService {
	return &bookmarkService{bookmarks: bookmarks}
}

func (s *bookmarkService) Create(ctx context.Context, userID int64, title, link, description string) (*domain.Bookmark, error) {
	title = strings.TrimSpace(title)
	link = strings.TrimSpace(link)

	if title == "" {
		return nil, domain.NewValidationError("title is required")
	}
	if link == "" {
		return nil, domain.NewValidationError("link is required")
	}

	bookmark := &domain.Bookmark{
		UserID:      userID,
		Title:       title,
		Link:        link,
		Description: description,
	}
	if _, err := s.bookmarks.Create(ctx, bookmark); err != nil {
		return nil, err
	}
	return bookmark, nil
}

func (s *bookmarkService) Get(ctx context.Context, userID, id int64) (*domain.Bookmark, error) {
	return s.bookmarks.Get(ctx, userID, id)
}

func (s *bookmarkService) List(ctx context.Context, userID int64) ([]domain.Bookmark, error) {
	return s.bookmarks.ListByUser(ctx, userID)
}

func (s *bookmarkService) Update(ctx context.Context, userID, id int64, patch domain.BookmarkPatch) (*domain.Bookmark, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, domain.NewValidationError("title must not be empty")
	}
	if patch.Link != nil && strings.TrimSpace(*patch.Link) == "" {
		return nil, domain.NewValidationError("link must not be empty")
	}

	return s.bookmarks.Update(ctx, userID, id, patch)
}

func (s *bookmarkService) Delete(ctx context.Context, userID, id int64) error {
	return s.bookmarks.Delete(ctx, userID, id)
}

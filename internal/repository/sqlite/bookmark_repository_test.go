package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkmark/internal/domain"
	"linkmark/internal/repository"
)

func newBookmarkRepo(t *testing.T) (repository.BookmarkRepository, int64, int64) {
	t.Helper()
	ctx := context.Background()
	db := newTestDB(t)

	users := NewUserRepository(db)
	require.NoError(t, users.Init(ctx))
	ownerID, err := users.Create(ctx, &domain.User{Email: "owner@x.com", PasswordHash: "hash"})
	require.NoError(t, err)
	otherID, err := users.Create(ctx, &domain.User{Email: "other@x.com", PasswordHash: "hash"})
	require.NoError(t, err)

	bookmarks := NewBookmarkRepository(db)
	require.NoError(t, bookmarks.Init(ctx))
	return bookmarks, ownerID, otherID
}

func TestBookmarkRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo, ownerID, _ := newBookmarkRepo(t)

	bookmark := &domain.Bookmark{
		UserID:      ownerID,
		Title:       "My Bookmark",
		Link:        "https://x.com",
		Description: "notes",
	}
	id, err := repo.Create(ctx, bookmark)
	require.NoError(t, err)

	got, err := repo.Get(ctx, ownerID, id)
	require.NoError(t, err)
	assert.Equal(t, "My Bookmark", got.Title)
	assert.Equal(t, "https://x.com", got.Link)
	assert.Equal(t, "notes", got.Description)
	assert.Equal(t, ownerID, got.UserID)
}

func TestBookmarkRepository_OwnershipScoping(t *testing.T) {
	ctx := context.Background()
	repo, ownerID, otherID := newBookmarkRepo(t)

	id, err := repo.Create(ctx, &domain.Bookmark{UserID: ownerID, Title: "t", Link: "https://x.com"})
	require.NoError(t, err)

	_, err = repo.Get(ctx, otherID, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	title := "hijacked"
	_, err = repo.Update(ctx, otherID, id, domain.BookmarkPatch{Title: &title})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = repo.Delete(ctx, otherID, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// still intact for the owner
	got, err := repo.Get(ctx, ownerID, id)
	require.NoError(t, err)
	assert.Equal(t, "t", got.Title)
}

func TestBookmarkRepository_ListByUser(t *testing.T) {
	ctx := context.Background()
	repo, ownerID, otherID := newBookmarkRepo(t)

	empty, err := repo.ListByUser(ctx, ownerID)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = repo.Create(ctx, &domain.Bookmark{UserID: ownerID, Title: "a", Link: "https://a.com"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.Bookmark{UserID: ownerID, Title: "b", Link: "https://b.com"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.Bookmark{UserID: otherID, Title: "c", Link: "https://c.com"})
	require.NoError(t, err)

	list, err := repo.ListByUser(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].Title)
	assert.Equal(t, "b", list[1].Title)
}

func TestBookmarkRepository_PartialUpdate(t *testing.T) {
	ctx := context.Background()
	repo, ownerID, _ := newBookmarkRepo(t)

	id, err := repo.Create(ctx, &domain.Bookmark{
		UserID:      ownerID,
		Title:       "title",
		Link:        "https://old.com",
		Description: "desc",
	})
	require.NoError(t, err)

	link := "https://new.com"
	updated, err := repo.Update(ctx, ownerID, id, domain.BookmarkPatch{Link: &link})
	require.NoError(t, err)
	assert.Equal(t, "https://new.com", updated.Link)
	assert.Equal(t, "title", updated.Title)
	assert.Equal(t, "desc", updated.Description)
}

func TestBookmarkRepository_DeleteTwice(t *testing.T) {
	ctx := context.Background()
	repo, ownerID, _ := newBookmarkRepo(t)

	id, err := repo.Create(ctx, &domain.Bookmark{UserID: ownerID, Title: "t", Link: "https://x.com"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, ownerID, id))

	_, err = repo.Get(ctx, ownerID, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = repo.Delete(ctx, ownerID, id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

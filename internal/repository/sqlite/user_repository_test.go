package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkmark/internal/domain"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))
	require.NoError(t, repo.Init(ctx))

	user := &domain.User{Email: "t@x.com", PasswordHash: "hash"}
	id, err := repo.Create(ctx, user)
	require.NoError(t, err)
	assert.Positive(t, id)
	assert.False(t, user.CreatedAt.IsZero())

	byEmail, err := repo.GetByEmail(ctx, "t@x.com")
	require.NoError(t, err)
	assert.Equal(t, id, byEmail.ID)
	assert.Equal(t, "hash", byEmail.PasswordHash)

	byID, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "t@x.com", byID.Email)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))
	require.NoError(t, repo.Init(ctx))

	_, err := repo.Create(ctx, &domain.User{Email: "t@x.com", PasswordHash: "hash"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.User{Email: "t@x.com", PasswordHash: "other"})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserRepository_GetMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))
	require.NoError(t, repo.Init(ctx))

	_, err := repo.GetByEmail(ctx, "absent@x.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.GetByID(ctx, 12345)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))
	require.NoError(t, repo.Init(ctx))

	id, err := repo.Create(ctx, &domain.User{Email: "t@x.com", PasswordHash: "hash"})
	require.NoError(t, err)

	first := "Jo"
	updated, err := repo.Update(ctx, id, domain.UserPatch{FirstName: &first})
	require.NoError(t, err)
	assert.Equal(t, "Jo", updated.FirstName)
	assert.Equal(t, "t@x.com", updated.Email)

	// unchanged fields survive a later partial update
	email := "new@x.com"
	updated, err = repo.Update(ctx, id, domain.UserPatch{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "new@x.com", updated.Email)
	assert.Equal(t, "Jo", updated.FirstName)
}

func TestUserRepository_UpdateEmailCollision(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))
	require.NoError(t, repo.Init(ctx))

	_, err := repo.Create(ctx, &domain.User{Email: "a@x.com", PasswordHash: "hash"})
	require.NoError(t, err)
	idB, err := repo.Create(ctx, &domain.User{Email: "b@x.com", PasswordHash: "hash"})
	require.NoError(t, err)

	taken := "a@x.com"
	_, err = repo.Update(ctx, idB, domain.UserPatch{Email: &taken})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

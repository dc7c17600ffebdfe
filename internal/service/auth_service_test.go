package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkmark/internal/auth"
	"linkmark/internal/domain"
	"linkmark/internal/repository"
	"linkmark/internal/repository/sqlite"
)

func newTestRepos(t *testing.T) (repository.UserRepository, repository.BookmarkRepository) {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	users := sqlite.NewUserRepository(db)
	require.NoError(t, users.Init(ctx))
	bookmarks := sqlite.NewBookmarkRepository(db)
	require.NoError(t, bookmarks.Init(ctx))
	return users, bookmarks
}

func newAuthService(t *testing.T, users repository.UserRepository) (AuthService, *auth.TokenIssuer) {
	t.Helper()
	issuer := auth.NewTokenIssuer([]byte("test-secret"), 24*time.Hour)
	return NewAuthService(users, auth.NewPasswordHasher(), issuer), issuer
}

func TestAuthService_SignUp(t *testing.T) {
	ctx := context.Background()
	users, _ := newTestRepos(t)
	svc, _ := newAuthService(t, users)

	user, err := svc.SignUp(ctx, "t@x.com", "pw123456")
	require.NoError(t, err)
	assert.Positive(t, user.ID)
	assert.Equal(t, "t@x.com", user.Email)
	assert.Empty(t, user.PasswordHash)

	// the stored record carries a hash, never the plaintext
	stored, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotContains(t, stored.PasswordHash, "pw123456")
}

func TestAuthService_SignUpValidation(t *testing.T) {
	ctx := context.Background()
	users, _ := newTestRepos(t)
	svc, _ := newAuthService(t, users)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "missing email", email: "", password: "pw123456"},
		{name: "missing password", email: "t@x.com", password: ""},
		{name: "short password", email: "t@x.com", password: "pw1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SignUp(ctx, tt.email, tt.password)
			var validationErr *domain.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestAuthService_SignUpDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	users, _ := newTestRepos(t)
	svc, _ := newAuthService(t, users)

	_, err := svc.SignUp(ctx, "t@x.com", "pw123456")
	require.NoError(t, err)

	_, err = svc.SignUp(ctx, "t@x.com", "pw123456")
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAuthService_SignIn(t *testing.T) {
	ctx := context.Background()
	users, _ := newTestRepos(t)
	svc, issuer := newAuthService(t, users)

	created, err := svc.SignUp(ctx, "t@x.com", "pw123456")
	require.NoError(t, err)

	token, err := svc.SignIn(ctx, "t@x.com", "pw123456")
	require.NoError(t, err)

	userID, email, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, userID)
	assert.Equal(t, "t@x.com", email)
}

func TestAuthService_SignInFailures(t *testing.T) {
	ctx := context.Background()
	users, _ := newTestRepos(t)
	svc, _ := newAuthService(t, users)

	_, err := svc.SignUp(ctx, "t@x.com", "pw123456")
	require.NoError(t, err)

	_, err = svc.SignIn(ctx, "absent@x.com", "pw123456")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = svc.SignIn(ctx, "t@x.com", "wrong-password")
	assert.ErrorIs(t, err, domain.ErrWrongPassword)
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"linkmark/internal/domain"
	"linkmark/internal/repository"
)

const createBookmarksTable = `
CREATE TABLE IF NOT EXISTS bookmarks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL REFERENCES users(id),
	title TEXT NOT NULL,
	link TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_bookmarks_user_id ON bookmarks (user_id);
`

type BookmarkRepository struct {
	db *sql.DB
}

func NewBookmarkRepository(db *sql.DB) repository.BookmarkRepository {
	return &BookmarkRepository{db: db}
}

func (r *BookmarkRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createBookmarksTable); err != nil {
		return fmt.Errorf("create bookmarks table: %w", err)
	}
	return nil
}

func (r *BookmarkRepository) Create(ctx context.Context, bookmark *domain.Bookmark) (int64, error) {
	now := time.Now().UTC()
	bookmark.CreatedAt = now
	bookmark.UpdatedAt = now

	res, err := r.db.ExecContext(ctx, `
INSERT INTO bookmarks (user_id, title, link, description, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)`,
		bookmark.UserID,
		bookmark.Title,
		bookmark.Link,
		bookmark.Description,
		bookmark.CreatedAt,
		bookmark.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert bookmark: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("bookmark last insert id: %w", err)
	}
	bookmark.ID = id
	return id, nil
}

func (r *BookmarkRepository) Get(ctx context.Context, userID, id int64) (*domain.Bookmark, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, user_id, title, link, description, created_at, updated_at
FROM bookmarks
WHERE id = ? AND user_id = ?`,
		id,
		userID,
	)
	return scanBookmark(row)
}

func (r *BookmarkRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Bookmark, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, title, link, description, created_at, updated_at
FROM bookmarks
WHERE user_id = ?
ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	defer rows.Close()

	bookmarks := []domain.Bookmark{}
	for rows.Next() {
		var b domain.Bookmark
		if err := rows.Scan(
			&b.ID,
			&b.UserID,
			&b.Title,
			&b.Link,
			&b.Description,
			&b.CreatedAt,
			&b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan bookmark: %w", err)
		}
		bookmarks = append(bookmarks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookmarks: %w", err)
	}
	return bookmarks, nil
}

func (r *BookmarkRepository) Update(ctx context.Context, userID, id int64, patch domain.BookmarkPatch) (*domain.Bookmark, error) {
	bookmark, err := r.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		bookmark.Title = *patch.Title
	}
	if patch.Link != nil {
		bookmark.Link = *patch.Link
	}
	if patch.Description != nil {
		bookmark.Description = *patch.Description
	}
	bookmark.UpdatedAt = time.Now().UTC()

	_, err = r.db.ExecContext(ctx, `
UPDATE bookmarks
SET title = ?, link = ?, description = ?, updated_at = ?
WHERE id = ? AND user_id = ?`,
		bookmark.Title,
		bookmark.Link,
		bookmark.Description,
		bookmark.UpdatedAt,
		id,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("update bookmark: %w", err)
	}
	return bookmark, nil
}

func (r *BookmarkRepository) Delete(ctx context.Context, userID, id int64) error {
	res, err := r.db.ExecContext(ctx, `
DELETE FROM bookmarks
WHERE id = ? AND user_id = ?`,
		id,
		userID,
	)
	if err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("bookmark rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanBookmark(row interface {
	Scan(dest ...any) error
}) (*domain.Bookmark, error) {
	var b domain.Bookmark
	if err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.Title,
		&b.Link,
		&b.Description,
		&b.CreatedAt,
		&b.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan bookmark: %w", err)
	}
	return &b, nil
}

package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/board-service/internal/domain"
)

// PostRepository encapsulates post persistence.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	ListAll(ctx context.Context, limit, offset int) ([]domain.Post, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Post, error)
	SearchByTitle(ctx context.Context, keyword string, limit, offset int) ([]domain.Post, error)
}

type postRepository struct {
	pool *pgxpool.Pool
}

// NewPostRepository instantiates repository.
func NewPostRepository(pool *pgxpool.Pool) PostRepository {
	return &postRepository{pool: pool}
}

const postColumns = `p.id, p.user_id, u.username, p.title, p.content, p.created_at, p.updated_at`

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	const query = `
        INSERT INTO posts (user_id, title, content)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		post.UserID,
		post.Title,
		post.Content,
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
}

// Update rewrites title and content and refreshes updated_at in a single
// statement; pgx.ErrNoRows signals the post vanished between fetch and write.
func (r *postRepository) Update(ctx context.Context, post *domain.Post) error {
	const query = `
        UPDATE posts SET title=$1, content=$2, updated_at=NOW()
        WHERE id=$3
        RETURNING updated_at`
	return r.pool.QueryRow(ctx, query,
		post.Title,
		post.Content,
		post.ID,
	).Scan(&post.UpdatedAt)
}

// Delete removes the post; comments cascade at the schema level.
func (r *postRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM posts WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	const query = `
        SELECT ` + postColumns + `
        FROM posts p JOIN users u ON u.id = p.user_id
        WHERE p.id=$1`

	var post domain.Post
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&post.ID,
		&post.UserID,
		&post.Username,
		&post.Title,
		&post.Content,
		&post.CreatedAt,
		&post.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) ListAll(ctx context.Context, limit, offset int) ([]domain.Post, error) {
	const query = `
        SELECT ` + postColumns + `
        FROM posts p JOIN users u ON u.id = p.user_id
        ORDER BY p.created_at DESC
        LIMIT $1 OFFSET $2`
	return r.list(ctx, query, normalizeLimit(limit), normalizeOffset(offset))
}

func (r *postRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Post, error) {
	const query = `
        SELECT ` + postColumns + `
        FROM posts p JOIN users u ON u.id = p.user_id
        WHERE p.user_id=$1
        ORDER BY p.created_at DESC
        LIMIT $2 OFFSET $3`
	return r.list(ctx, query, userID, normalizeLimit(limit), normalizeOffset(offset))
}

func (r *postRepository) SearchByTitle(ctx context.Context, keyword string, limit, offset int) ([]domain.Post, error) {
	const query = `
        SELECT ` + postColumns + `
        FROM posts p JOIN users u ON u.id = p.user_id
        WHERE LOWER(p.title) LIKE $1
        ORDER BY p.created_at DESC
        LIMIT $2 OFFSET $3`
	search := "%" + strings.ToLower(strings.TrimSpace(keyword)) + "%"
	return r.list(ctx, query, search, normalizeLimit(limit), normalizeOffset(offset))
}

func (r *postRepository) list(ctx context.Context, query string, args ...any) ([]domain.Post, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPosts(rows)
}

func scanPosts(rows pgx.Rows) ([]domain.Post, error) {
	var result []domain.Post
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(
			&post.ID,
			&post.UserID,
			&post.Username,
			&post.Title,
			&post.Content,
			&post.CreatedAt,
			&post.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, post)
	}
	return result, rows.Err()
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 20
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

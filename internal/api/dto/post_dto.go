package dto

import (
	"time"

	"github.com/spec-kit/board-service/internal/domain"
)

// CreatePostRequest payload for new posts.
type CreatePostRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}

// UpdatePostRequest payload for post edits.
type UpdatePostRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}

// PostResponse is the wire shape of a post.
type PostResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPostResponse maps a domain post.
func NewPostResponse(post *domain.Post) PostResponse {
	return PostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		UserID:    post.UserID,
		Username:  post.Username,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

// NewPostListResponse maps a slice of domain posts.
func NewPostListResponse(posts []domain.Post) []PostResponse {
	result := make([]PostResponse, 0, len(posts))
	for i := range posts {
		result = append(result, NewPostResponse(&posts[i]))
	}
	return result
}

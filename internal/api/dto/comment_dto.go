package dto

import (
	"time"

	"github.com/spec-kit/board-service/internal/domain"
)

// CreateCommentRequest payload for new comments.
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// UpdateCommentRequest payload for comment edits.
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// CommentResponse is the wire shape of a comment.
type CommentResponse struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	PostID    int64     `json:"post_id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MessageResponse is a plain confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// NewCommentResponse maps a domain comment.
func NewCommentResponse(comment *domain.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		Content:   comment.Content,
		PostID:    comment.PostID,
		UserID:    comment.UserID,
		Username:  comment.Username,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

// NewCommentListResponse maps a slice of domain comments.
func NewCommentListResponse(comments []domain.Comment) []CommentResponse {
	result := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		result = append(result, NewCommentResponse(&comments[i]))
	}
	return result
}

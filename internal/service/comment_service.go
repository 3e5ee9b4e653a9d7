package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/board-service/internal/auth"
	"github.com/spec-kit/board-service/internal/domain"
	"github.com/spec-kit/board-service/internal/events"
	"github.com/spec-kit/board-service/internal/repository"
	apperrors "github.com/spec-kit/board-service/pkg/util"
)

// CommentService coordinates comment workflows.
type CommentService struct {
	comments   repository.CommentRepository
	posts      repository.PostRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// CommentDependencies bundles collaborators for the comment service.
type CommentDependencies struct {
	CommentRepo repository.CommentRepository
	PostRepo    repository.PostRepository
	UserRepo    repository.UserRepository
	Dispatcher  events.Dispatcher
}

// NewCommentService constructs the service.
func NewCommentService(deps CommentDependencies) *CommentService {
	return &CommentService{
		comments:   deps.CommentRepo,
		posts:      deps.PostRepo,
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Create attaches a new comment to an existing post.
func (s *CommentService) Create(ctx context.Context, postID, userID int64, content string) (*domain.Comment, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("post", map[string]any{"post_id": postID})
		}
		return nil, err
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, err
	}

	comment := &domain.Comment{
		PostID:   post.ID,
		UserID:   user.ID,
		Username: user.Username,
		Content:  strings.TrimSpace(content),
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:    events.EventCommentAdded,
		ActorID: user.ID,
		Payload: events.CommentAddedPayload{
			CommentID:   comment.ID,
			PostID:      post.ID,
			BodyPreview: preview(comment.Content, 120),
		},
	})
	return comment, nil
}

// Get returns a single comment.
func (s *CommentService) Get(ctx context.Context, id int64) (*domain.Comment, error) {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("comment", map[string]any{"comment_id": id})
		}
		return nil, err
	}
	return comment, nil
}

// ListByPost returns a post's comments in creation order.
func (s *CommentService) ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("post", map[string]any{"post_id": postID})
		}
		return nil, err
	}
	return s.comments.ListByPost(ctx, postID)
}

// Update rewrites a comment after the ownership guard passes.
func (s *CommentService) Update(ctx context.Context, id, requesterID int64, content string) (*domain.Comment, error) {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("comment", map[string]any{"comment_id": id})
		}
		return nil, err
	}
	if err := auth.Authorize(comment, requesterID); err != nil {
		return nil, err
	}

	comment.Content = strings.TrimSpace(content)
	if err := s.comments.Update(ctx, comment); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("comment", map[string]any{"comment_id": id})
		}
		return nil, err
	}
	return comment, nil
}

// Delete removes a comment after the ownership guard passes.
func (s *CommentService) Delete(ctx context.Context, id, requesterID int64) error {
	comment, err := s.comments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("comment", map[string]any{"comment_id": id})
		}
		return err
	}
	if err := auth.Authorize(comment, requesterID); err != nil {
		return err
	}

	if err := s.comments.Delete(ctx, comment.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("comment", map[string]any{"comment_id": id})
		}
		return err
	}

	s.publish(ctx, events.Event{
		Type:    events.EventCommentDeleted,
		ActorID: requesterID,
		Payload: events.CommentDeletedPayload{CommentID: comment.ID, PostID: comment.PostID},
	})
	return nil
}

func (s *CommentService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func preview(body string, max int) string {
	if len(body) <= max {
		return body
	}
	return body[:max]
}

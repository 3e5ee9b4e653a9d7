package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/board-service/internal/auth"
	"github.com/spec-kit/board-service/internal/cache"
	"github.com/spec-kit/board-service/internal/domain"
	"github.com/spec-kit/board-service/internal/events"
	"github.com/spec-kit/board-service/internal/repository"
	apperrors "github.com/spec-kit/board-service/pkg/util"
)

// PostService coordinates board post workflows.
type PostService struct {
	posts      repository.PostRepository
	users      repository.UserRepository
	cache      *cache.PostCache
	dispatcher events.Dispatcher
}

// PostDependencies bundles collaborators for the post service.
type PostDependencies struct {
	PostRepo   repository.PostRepository
	UserRepo   repository.UserRepository
	Cache      *cache.PostCache
	Dispatcher events.Dispatcher
}

// PostInput describes the mutable fields of a post.
type PostInput struct {
	Title   string
	Content string
}

// NewPostService constructs the service.
func NewPostService(deps PostDependencies) *PostService {
	return &PostService{
		posts:      deps.PostRepo,
		users:      deps.UserRepo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
	}
}

// Create persists a new post owned by userID.
func (s *PostService) Create(ctx context.Context, userID int64, input PostInput) (*domain.Post, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, err
	}

	post := &domain.Post{
		UserID:   user.ID,
		Username: user.Username,
		Title:    strings.TrimSpace(input.Title),
		Content:  input.Content,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	s.cache.InvalidatePost(ctx, post.ID)
	s.publish(ctx, events.Event{
		Type:    events.EventPostCreated,
		ActorID: user.ID,
		Payload: events.PostCreatedPayload{PostID: post.ID, Title: post.Title},
	})
	return post, nil
}

// Get returns a single post, served from cache when possible.
func (s *PostService) Get(ctx context.Context, id int64) (*domain.Post, error) {
	if post := s.cache.GetPost(ctx, id); post != nil {
		return post, nil
	}

	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("post", map[string]any{"post_id": id})
		}
		return nil, err
	}
	s.cache.SetPost(ctx, post)
	return post, nil
}

// List returns a page of posts, newest first.
func (s *PostService) List(ctx context.Context, limit, offset int) ([]domain.Post, error) {
	if posts := s.cache.GetList(ctx, limit, offset); posts != nil {
		return posts, nil
	}

	posts, err := s.posts.ListAll(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	s.cache.SetList(ctx, limit, offset, posts)
	return posts, nil
}

// ListByUser returns posts created by a single user, newest first.
func (s *PostService) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Post, error) {
	return s.posts.ListByUser(ctx, userID, limit, offset)
}

// Search matches posts by title keyword. Results are not cached because
// the keyword space is unbounded.
func (s *PostService) Search(ctx context.Context, keyword string, limit, offset int) ([]domain.Post, error) {
	return s.posts.SearchByTitle(ctx, keyword, limit, offset)
}

// Update rewrites a post after the ownership guard passes. The write is a
// single statement refreshing updated_at.
func (s *PostService) Update(ctx context.Context, id, requesterID int64, input PostInput) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("post", map[string]any{"post_id": id})
		}
		return nil, err
	}
	if err := auth.Authorize(post, requesterID); err != nil {
		return nil, err
	}

	post.Title = strings.TrimSpace(input.Title)
	post.Content = input.Content
	if err := s.posts.Update(ctx, post); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("post", map[string]any{"post_id": id})
		}
		return nil, err
	}

	s.cache.InvalidatePost(ctx, post.ID)
	s.publish(ctx, events.Event{
		Type:    events.EventPostUpdated,
		ActorID: requesterID,
		Payload: events.PostUpdatedPayload{PostID: post.ID, Title: post.Title},
	})
	return post, nil
}

// Delete removes a post after the ownership guard passes; its comments
// cascade at the schema level.
func (s *PostService) Delete(ctx context.Context, id, requesterID int64) error {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("post", map[string]any{"post_id": id})
		}
		return err
	}
	if err := auth.Authorize(post, requesterID); err != nil {
		return err
	}

	if err := s.posts.Delete(ctx, post.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("post", map[string]any{"post_id": id})
		}
		return err
	}

	s.cache.InvalidatePost(ctx, post.ID)
	s.publish(ctx, events.Event{
		Type:    events.EventPostDeleted,
		ActorID: requesterID,
		Payload: events.PostDeletedPayload{PostID: post.ID},
	})
	return nil
}

func (s *PostService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}

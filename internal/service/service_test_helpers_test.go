package service

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/board-service/internal/domain"
	"github.com/spec-kit/board-service/internal/events"
	apperrors "github.com/spec-kit/board-service/pkg/util"
)

// fakeUserRepo is an in-memory UserRepository. Create enforces username
// uniqueness under a single lock, mirroring the unique index the real
// store relies on.
type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]domain.User
	byName map[string]int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:   make(map[int64]domain.User),
		byName: make(map[string]int64),
	}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byName[user.Username]; taken {
		return apperrors.NewDuplicateUsername(user.Username)
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.byID[user.ID] = *user
	r.byName[user.Username] = user.ID
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &user, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byName[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	user := r.byID[id]
	return &user, nil
}

func (r *fakeUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.byName[username]
	return ok, nil
}

// fakePostRepo is an in-memory PostRepository.
type fakePostRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]domain.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{byID: make(map[int64]domain.Post)}
}

func (r *fakePostRepo) Create(_ context.Context, post *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	post.ID = r.nextID
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	r.byID[post.ID] = *post
	return nil
}

func (r *fakePostRepo) Update(_ context.Context, post *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[post.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.Title = post.Title
	stored.Content = post.Content
	stored.UpdatedAt = time.Now().Add(time.Millisecond)
	r.byID[post.ID] = stored
	post.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *fakePostRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

func (r *fakePostRepo) GetByID(_ context.Context, id int64) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &post, nil
}

func (r *fakePostRepo) ListAll(_ context.Context, _, _ int) ([]domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.Post, 0, len(r.byID))
	for _, post := range r.byID {
		result = append(result, post)
	}
	return result, nil
}

func (r *fakePostRepo) ListByUser(_ context.Context, userID int64, _, _ int) ([]domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Post
	for _, post := range r.byID {
		if post.UserID == userID {
			result = append(result, post)
		}
	}
	return result, nil
}

func (r *fakePostRepo) SearchByTitle(_ context.Context, _ string, _, _ int) ([]domain.Post, error) {
	return r.ListAll(context.Background(), 0, 0)
}

// fakeCommentRepo is an in-memory CommentRepository.
type fakeCommentRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]domain.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{byID: make(map[int64]domain.Comment)}
}

func (r *fakeCommentRepo) Create(_ context.Context, comment *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	comment.ID = r.nextID
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = comment.CreatedAt
	r.byID[comment.ID] = *comment
	return nil
}

func (r *fakeCommentRepo) Update(_ context.Context, comment *domain.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byID[comment.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.Content = comment.Content
	stored.UpdatedAt = time.Now().Add(time.Millisecond)
	r.byID[comment.ID] = stored
	comment.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *fakeCommentRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeCommentRepo) GetByID(_ context.Context, id int64) (*domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	comment, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &comment, nil
}

func (r *fakeCommentRepo) ListByPost(_ context.Context, postID int64) ([]domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Comment
	for _, comment := range r.byID {
		if comment.PostID == postID {
			result = append(result, comment)
		}
	}
	return result, nil
}

// recordingDispatcher captures published events for assertions.
type recordingDispatcher struct {
	mu        sync.Mutex
	published []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *recordingDispatcher) eventTypes() []events.EventType {
	d.mu.Lock()
	defer d.mu.Unlock()
	result := make([]events.EventType, 0, len(d.published))
	for _, event := range d.published {
		result = append(result, event.Type)
	}
	return result
}

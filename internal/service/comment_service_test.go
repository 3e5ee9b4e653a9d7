package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/board-service/internal/domain"
	"github.com/spec-kit/board-service/internal/events"
	apperrors "github.com/spec-kit/board-service/pkg/util"
)

type commentServiceFixtures struct {
	service    *CommentService
	comments   *fakeCommentRepo
	posts      *fakePostRepo
	users      *fakeUserRepo
	dispatcher *recordingDispatcher
}

func createTestCommentService(t *testing.T) commentServiceFixtures {
	t.Helper()
	comments := newFakeCommentRepo()
	posts := newFakePostRepo()
	users := newFakeUserRepo()
	dispatcher := &recordingDispatcher{}
	service := NewCommentService(CommentDependencies{
		CommentRepo: comments,
		PostRepo:    posts,
		UserRepo:    users,
		Dispatcher:  dispatcher,
	})
	return commentServiceFixtures{
		service:    service,
		comments:   comments,
		posts:      posts,
		users:      users,
		dispatcher: dispatcher,
	}
}

func seedPost(t *testing.T, posts *fakePostRepo, owner *domain.User) *domain.Post {
	t.Helper()
	post := &domain.Post{UserID: owner.ID, Username: owner.Username, Title: "x", Content: "body"}
	require.NoError(t, posts.Create(context.Background(), post))
	return post
}

func TestCommentService_Create_Success(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	owner := seedUser(t, fx.users, "alice")
	post := seedPost(t, fx.posts, owner)

	comment, err := fx.service.Create(ctx, post.ID, owner.ID, "  nice post  ")
	require.NoError(t, err)
	assert.NotZero(t, comment.ID)
	assert.Equal(t, post.ID, comment.PostID)
	assert.Equal(t, owner.ID, comment.UserID)
	assert.Equal(t, "nice post", comment.Content)
	assert.Contains(t, fx.dispatcher.eventTypes(), events.EventCommentAdded)
}

func TestCommentService_Create_MissingPost(t *testing.T) {
	fx := createTestCommentService(t)
	owner := seedUser(t, fx.users, "alice")

	_, err := fx.service.Create(context.Background(), 99, owner.ID, "hello")
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}

func TestCommentService_ListByPost_MissingPost(t *testing.T) {
	fx := createTestCommentService(t)

	_, err := fx.service.ListByPost(context.Background(), 99)
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}

func TestCommentService_Update_OwnerSucceeds(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	owner := seedUser(t, fx.users, "alice")
	post := seedPost(t, fx.posts, owner)

	comment, err := fx.service.Create(ctx, post.ID, owner.ID, "first")
	require.NoError(t, err)

	updated, err := fx.service.Update(ctx, comment.ID, owner.ID, "second")
	require.NoError(t, err)
	assert.Equal(t, "second", updated.Content)
	assert.True(t, updated.UpdatedAt.After(comment.CreatedAt))
}

func TestCommentService_Update_NonOwnerForbiddenAndUnchanged(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	owner := seedUser(t, fx.users, "alice")
	intruder := seedUser(t, fx.users, "bob")
	post := seedPost(t, fx.posts, owner)

	comment, err := fx.service.Create(ctx, post.ID, owner.ID, "first")
	require.NoError(t, err)

	_, err = fx.service.Update(ctx, comment.ID, intruder.ID, "hijacked")
	assert.True(t, apperrors.IsCode(err, "FORBIDDEN"))

	stored, err := fx.comments.GetByID(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", stored.Content)
}

func TestCommentService_Delete_OwnerRemovesComment(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	owner := seedUser(t, fx.users, "alice")
	post := seedPost(t, fx.posts, owner)

	comment, err := fx.service.Create(ctx, post.ID, owner.ID, "first")
	require.NoError(t, err)

	require.NoError(t, fx.service.Delete(ctx, comment.ID, owner.ID))

	_, err = fx.service.Get(ctx, comment.ID)
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
	assert.Contains(t, fx.dispatcher.eventTypes(), events.EventCommentDeleted)
}

func TestCommentService_Delete_NonOwnerLeavesCommentRetrievable(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	owner := seedUser(t, fx.users, "alice")
	intruder := seedUser(t, fx.users, "bob")
	post := seedPost(t, fx.posts, owner)

	comment, err := fx.service.Create(ctx, post.ID, owner.ID, "first")
	require.NoError(t, err)

	err = fx.service.Delete(ctx, comment.ID, intruder.ID)
	assert.True(t, apperrors.IsCode(err, "FORBIDDEN"))

	stored, err := fx.service.Get(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", stored.Content)
}

func TestCommentService_Delete_NotFound(t *testing.T) {
	fx := createTestCommentService(t)
	owner := seedUser(t, fx.users, "alice")

	err := fx.service.Delete(context.Background(), 99, owner.ID)
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}

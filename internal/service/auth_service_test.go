package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/board-service/internal/config"
	"github.com/spec-kit/board-service/internal/events"
	apperrors "github.com/spec-kit/board-service/pkg/util"
)

type authServiceFixtures struct {
	service    *AuthService
	users      *fakeUserRepo
	dispatcher *recordingDispatcher
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 60,
		BcryptCost:            bcrypt.MinCost,
	}
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()
	users := newFakeUserRepo()
	dispatcher := &recordingDispatcher{}
	service := NewAuthService(testAuthConfig(), AuthDependencies{
		UserRepo:   users,
		Dispatcher: dispatcher,
	})
	return authServiceFixtures{service: service, users: users, dispatcher: dispatcher}
}

func TestAuthService_Signup_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	result, err := fx.service.Signup(ctx, "alice", "secret1")
	require.NoError(t, err)
	require.NotNil(t, result.User)
	assert.Equal(t, "alice", result.User.Username)
	assert.NotZero(t, result.User.ID)
	assert.NotEmpty(t, result.Token)
	assert.NotEqual(t, "secret1", result.User.PasswordHash)

	claims, err := fx.service.TokenManager().ParseToken(result.Token)
	require.NoError(t, err)
	subject, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, subject)
	assert.Equal(t, "alice", claims.Username)

	assert.Contains(t, fx.dispatcher.eventTypes(), events.EventUserRegistered)
}

func TestAuthService_Signup_DuplicateUsername(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.service.Signup(ctx, "alice", "secret1")
	require.NoError(t, err)

	result, err := fx.service.Signup(ctx, "alice", "other2")
	assert.Nil(t, result)
	assert.True(t, apperrors.IsCode(err, "DUPLICATE_USERNAME"))
}

func TestAuthService_Signup_ConcurrentSameUsername(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = fx.service.Signup(ctx, "alice", "secret1")
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		assert.True(t, apperrors.IsCode(err, "DUPLICATE_USERNAME"))
	}
	assert.Equal(t, 1, successes, "exactly one concurrent signup may win")
}

func TestAuthService_Signin_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	created, err := fx.service.Signup(ctx, "alice", "secret1")
	require.NoError(t, err)

	result, err := fx.service.Signin(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, created.User.ID, result.User.ID)

	claims, err := fx.service.TokenManager().ParseToken(result.Token)
	require.NoError(t, err)
	subject, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, created.User.ID, subject)
}

func TestAuthService_Signin_WrongPasswordAndUnknownUserIndistinguishable(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.service.Signup(ctx, "alice", "secret1")
	require.NoError(t, err)

	_, wrongPw := fx.service.Signin(ctx, "alice", "wrong-password")
	_, unknown := fx.service.Signin(ctx, "nobody", "secret1")

	require.Error(t, wrongPw)
	require.Error(t, unknown)
	assert.True(t, apperrors.IsCode(wrongPw, "INVALID_CREDENTIALS"))
	assert.True(t, apperrors.IsCode(unknown, "INVALID_CREDENTIALS"))
	assert.Equal(t, apperrors.ToDomainError(wrongPw).Message, apperrors.ToDomainError(unknown).Message)
}

func TestAuthService_Signin_IsReadOnly(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	_, err := fx.service.Signup(ctx, "alice", "secret1")
	require.NoError(t, err)
	before := len(fx.users.byID)

	_, err = fx.service.Signin(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, before, len(fx.users.byID))
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/board-service/internal/auth"
	"github.com/spec-kit/board-service/internal/config"
	"github.com/spec-kit/board-service/internal/domain"
	"github.com/spec-kit/board-service/internal/events"
	"github.com/spec-kit/board-service/internal/repository"
	apperrors "github.com/spec-kit/board-service/pkg/util"
)

// AuthService coordinates signup and signin flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// AuthResult is returned from both signup and signin.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL()),
		bcryptCost: cfg.BcryptCost,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// Signup registers a new account and issues its first token. The existence
// check is advisory; the unique index on username closes the race, so a
// concurrent duplicate insert still comes back as DUPLICATE_USERNAME.
func (s *AuthService) Signup(ctx context.Context, username, password string) (*AuthResult, error) {
	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewDuplicateUsername(username)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:    events.EventUserRegistered,
		ActorID: user.ID,
		Payload: events.UserRegisteredPayload{
			UserID:   user.ID,
			Username: user.Username,
		},
	})
	return &AuthResult{Token: token, ExpiresAt: exp, User: user}, nil
}

// Signin authenticates an existing account. Unknown usernames and wrong
// passwords surface as the same error so responses cannot be used to
// enumerate accounts. The path is read-only.
func (s *AuthService) Signin(ctx context.Context, username, password string) (*AuthResult, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewInvalidCredentials()
		}
		return nil, err
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, apperrors.NewInvalidCredentials()
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, ExpiresAt: exp, User: user}, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil && s.logger != nil {
		s.logger.Warn("event publish failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}

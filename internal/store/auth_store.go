package store

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"task-manager-cli/internal/api"
	"task-manager-cli/internal/models"
	"task-manager-cli/internal/utils"
)

// AuthAPI is the slice of the remote client the auth store needs.
type AuthAPI interface {
	Register(ctx context.Context, email, password string) (*models.TokenResponse, error)
	Login(ctx context.Context, email, password string) (*models.TokenResponse, error)
	Me(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
}

const (
	msgRegisterFailed = "Registration failed"
	msgLoginFailed    = "Login failed"
)

// AuthStore tracks the signed-in user and keeps the access token persisted
// across runs via its TokenStore.
type AuthStore struct {
	api    AuthAPI
	tokens api.TokenStore
	log    *zap.Logger

	mu            sync.Mutex
	authenticated bool
	user          *models.User
	loading       bool
	errMsg        string
}

func NewAuthStore(authAPI AuthAPI, tokens api.TokenStore, log *zap.Logger) *AuthStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthStore{api: authAPI, tokens: tokens, log: log}
}

func (s *AuthStore) Register(ctx context.Context, email, password string) bool {
	return s.authenticate(ctx, email, password, s.api.Register, msgRegisterFailed)
}

func (s *AuthStore) Login(ctx context.Context, email, password string) bool {
	return s.authenticate(ctx, email, password, s.api.Login, msgLoginFailed)
}

func (s *AuthStore) authenticate(
	ctx context.Context,
	email, password string,
	call func(context.Context, string, string) (*models.TokenResponse, error),
	fallback string,
) bool {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	resp, err := call(ctx, email, password)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.errMsg = errMessage(err, fallback)
		return false
	}
	if err := s.tokens.Save(resp.AccessToken); err != nil {
		s.log.Warn("failed to persist token", zap.Error(err))
	}
	user := resp.User
	s.authenticated = true
	s.user = &user
	return true
}

// Logout clears local auth state unconditionally; the remote logout call is
// best-effort.
func (s *AuthStore) Logout(ctx context.Context) {
	if err := s.api.Logout(ctx); err != nil {
		s.log.Debug("remote logout failed", zap.Error(err))
	}
	if err := s.tokens.Clear(); err != nil {
		s.log.Warn("failed to clear token", zap.Error(err))
	}
	s.mu.Lock()
	s.authenticated = false
	s.user = nil
	s.errMsg = ""
	s.mu.Unlock()
}

// CheckAuth restores the session from the persisted token. A token that is
// already expired by its own exp claim is discarded without a round trip;
// otherwise the profile endpoint decides.
func (s *AuthStore) CheckAuth(ctx context.Context) {
	token, err := s.tokens.Token()
	if err != nil {
		s.log.Warn("failed to read stored token", zap.Error(err))
		return
	}
	if token == "" {
		return
	}
	if utils.TokenExpired(token, time.Now()) {
		s.log.Debug("stored token expired, discarding")
		if err := s.tokens.Clear(); err != nil {
			s.log.Warn("failed to clear token", zap.Error(err))
		}
		return
	}

	user, err := s.api.Me(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		// The client discards the token on 401 already; clear state either way.
		s.authenticated = false
		s.user = nil
		return
	}
	s.authenticated = true
	s.user = user
}

func (s *AuthStore) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// User returns a copy of the signed-in user, or ok=false when signed out.
func (s *AuthStore) User() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *AuthStore) SetUser(user models.User) {
	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
}

func (s *AuthStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *AuthStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

func (s *AuthStore) ClearError() {
	s.mu.Lock()
	s.errMsg = ""
	s.mu.Unlock()
}

package store

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"task-manager-cli/internal/api"
	"task-manager-cli/internal/models"
)

// Mock auth API
type MockAuthAPI struct {
	mock.Mock
}

func (m *MockAuthAPI) Register(ctx context.Context, email, password string) (*models.TokenResponse, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TokenResponse), args.Error(1)
}

func (m *MockAuthAPI) Login(ctx context.Context, email, password string) (*models.TokenResponse, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TokenResponse), args.Error(1)
}

func (m *MockAuthAPI) Me(ctx context.Context) (*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthAPI) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// In-memory token store
type memTokens struct {
	token string
}

func (m *memTokens) Token() (string, error)  { return m.token, nil }
func (m *memTokens) Save(token string) error { m.token = token; return nil }
func (m *memTokens) Clear() error            { m.token = ""; return nil }

var _ api.TokenStore = (*memTokens)(nil)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": exp.Unix(),
	})
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestLoginSavesTokenAndUser(t *testing.T) {
	mockAPI := new(MockAuthAPI)
	tokens := &memTokens{}
	s := NewAuthStore(mockAPI, tokens, nil)

	mockAPI.On("Login", mock.Anything, "user@example.com", "Password1").
		Return(&models.TokenResponse{
			AccessToken: "tok-123",
			TokenType:   "bearer",
			User:        models.User{ID: 1, Email: "user@example.com"},
		}, nil).Once()

	ok := s.Login(context.Background(), "user@example.com", "Password1")

	assert.True(t, ok)
	assert.True(t, s.Authenticated())
	assert.Equal(t, "tok-123", tokens.token)
	user, found := s.User()
	require.True(t, found)
	assert.Equal(t, "user@example.com", user.Email)
	mockAPI.AssertExpectations(t)
}

func TestLoginFailureSurfacesDetail(t *testing.T) {
	mockAPI := new(MockAuthAPI)
	tokens := &memTokens{}
	s := NewAuthStore(mockAPI, tokens, nil)

	mockAPI.On("Login", mock.Anything, "user@example.com", "bad").
		Return(nil, &api.Error{Status: http.StatusUnauthorized, Detail: "Email or password is incorrect"}).Once()

	assert.False(t, s.Login(context.Background(), "user@example.com", "bad"))
	assert.False(t, s.Authenticated())
	assert.Equal(t, "Email or password is incorrect", s.Err())
	assert.Empty(t, tokens.token)
}

func TestLoginFailureFallbackMessage(t *testing.T) {
	mockAPI := new(MockAuthAPI)
	s := NewAuthStore(mockAPI, &memTokens{}, nil)

	mockAPI.On("Login", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("no route to host")).Once()

	assert.False(t, s.Login(context.Background(), "a@b.co", "x"))
	assert.Equal(t, "Login failed", s.Err())
}

func TestRegisterSavesTokenAndUser(t *testing.T) {
	mockAPI := new(MockAuthAPI)
	tokens := &memTokens{}
	s := NewAuthStore(mockAPI, tokens, nil)

	mockAPI.On("Register", mock.Anything, "new@example.com", "Password1").
		Return(&models.TokenResponse{
			AccessToken: "tok-456",
			User:        models.User{ID: 2, Email: "new@example.com"},
		}, nil).Once()

	assert.True(t, s.Register(context.Background(), "new@example.com", "Password1"))
	assert.True(t, s.Authenticated())
	assert.Equal(t, "tok-456", tokens.token)
}

func TestLogoutClearsStateEvenWhenRemoteFails(t *testing.T) {
	mockAPI := new(MockAuthAPI)
	tokens := &memTokens{token: "tok-123"}
	s := NewAuthStore(mockAPI, tokens, nil)
	s.SetUser(models.User{ID: 1, Email: "user@example.com"})

	mockAPI.On("Logout", mock.Anything).Return(errors.New("server down")).Once()

	s.Logout(context.Background())

	assert.False(t, s.Authenticated())
	assert.Empty(t, tokens.token)
	_, found := s.User()
	assert.False(t, found)
}

func TestCheckAuthWithoutTokenStaysSignedOut(t *testing.T) {
	mockAPI := new(MockAuthAPI)
	s := NewAuthStore(mockAPI, &memTokens{}, nil)

	s.CheckAuth(context.Background())

	assert.False(t, s.Authenticated())
	// No network call without a token.
	mockAPI.AssertNotCalled(t, "Me", mock.Anything)
}

func TestCheckAuthDiscardsExpiredTokenWithoutRoundTrip(t *testing.T) {
	mockAPI := new(MockAuthAPI)
	tokens := &memTokens{token: signedToken(t, time.Now().Add(-time.Hour))}
	s := NewAuthStore(mockAPI, tokens, nil)

	s.CheckAuth(context.Background())

	assert.False(t, s.Authenticated())
	assert.Empty(t, tokens.token)
	mockAPI.AssertNotCalled(t, "Me", mock.Anything)
}

func TestCheckAuthRestoresSession(t *testing.T) {
	mockAPI := new(MockAuthAPI)
	tokens := &memTokens{token: signedToken(t, time.Now().Add(time.Hour))}
	s := NewAuthStore(mockAPI, tokens, nil)

	mockAPI.On("Me", mock.Anything).
		Return(&models.User{ID: 1, Email: "user@example.com"}, nil).Once()

	s.CheckAuth(context.Background())

	assert.True(t, s.Authenticated())
	user, found := s.User()
	require.True(t, found)
	assert.Equal(t, 1, user.ID)
	mockAPI.AssertExpectations(t)
}

func TestCheckAuthClearsStateOnProfileFailure(t *testing.T) {
	mockAPI := new(MockAuthAPI)
	tokens := &memTokens{token: signedToken(t, time.Now().Add(time.Hour))}
	s := NewAuthStore(mockAPI, tokens, nil)
	s.SetUser(models.User{ID: 1})

	mockAPI.On("Me", mock.Anything).
		Return(nil, &api.Error{Status: http.StatusUnauthorized, Detail: "Invalid or expired token"}).Once()

	s.CheckAuth(context.Background())

	assert.False(t, s.Authenticated())
	_, found := s.User()
	assert.False(t, found)
}

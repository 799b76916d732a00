package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/entity"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	mockRepo "blog/internal/mocks/repository"
	mockSvc "blog/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func invokeAuthenticate(t *testing.T, m *AuthMiddleware, authHeader string) (*entity.User, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *entity.User
	handler := m.Authenticate(func(c echo.Context) error {
		seen = CurrentUser(c)

		return c.NoContent(http.StatusOK)
	})

	return seen, handler(c)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(new(mockSvc.TokenService), new(mockRepo.UserRepository))

	_, err := invokeAuthenticate(t, m, "")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	m := NewAuthMiddleware(new(mockSvc.TokenService), new(mockRepo.UserRepository))

	_, err := invokeAuthenticate(t, m, "Basic abc123")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokenSvc := new(mockSvc.TokenService)
	tokenSvc.On("Validate", "bad-token").Return(nil, service.ErrTokenSignatureInvalid)
	m := NewAuthMiddleware(tokenSvc, new(mockRepo.UserRepository))

	_, err := invokeAuthenticate(t, m, "Bearer bad-token")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthMiddleware_UserGone(t *testing.T) {
	userID := uuid.New()
	tokenSvc := new(mockSvc.TokenService)
	tokenSvc.On("Validate", "stale-token").Return(&service.Claims{UserID: userID}, nil)
	userRepo := new(mockRepo.UserRepository)
	userRepo.On("FindByID", mock.Anything, userID).Return(nil, repository.ErrUserNotFound)
	m := NewAuthMiddleware(tokenSvc, userRepo)

	_, err := invokeAuthenticate(t, m, "Bearer stale-token")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "alice"}
	tokenSvc := new(mockSvc.TokenService)
	tokenSvc.On("Validate", "good-token").Return(&service.Claims{UserID: userID}, nil)
	userRepo := new(mockRepo.UserRepository)
	userRepo.On("FindByID", mock.Anything, userID).Return(user, nil)
	m := NewAuthMiddleware(tokenSvc, userRepo)

	seen, err := invokeAuthenticate(t, m, "Bearer good-token")
	require.NoError(t, err)
	assert.Equal(t, user, seen)
}

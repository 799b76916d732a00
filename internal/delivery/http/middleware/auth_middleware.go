package middleware

import (
	"strings"

	deliverycontext "blog/internal/delivery/context"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/entity"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware provides middleware for JWT bearer authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer token and resolves the account behind
// it. A missing or bad token is a 401; a valid token whose account no longer
// exists is a 404, so a caller holding a stale token learns the account is
// gone rather than that the token is bad.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrUnauthenticated
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthenticated
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to resolve authenticated user")
		}

		c.Set(string(deliverycontext.KeyCurrentUser), user)

		return next(c)
	}
}

// CurrentUser returns the authenticated user set by Authenticate, or nil
// when the route was not authenticated.
func CurrentUser(c echo.Context) *entity.User {
	if user, ok := c.Get(string(deliverycontext.KeyCurrentUser)).(*entity.User); ok {
		return user
	}

	return nil
}

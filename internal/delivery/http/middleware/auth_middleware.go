package middleware

import (
	"strings"

	deliverycontext "mirage/internal/delivery/context"
	domainerrors "mirage/internal/domain/errors"
	"mirage/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token on the request. Every failure mode
// (missing header, wrong scheme, bad or expired token) maps to the same
// 401 so the boundary never reveals which check tripped.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrInvalidToken
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrInvalidToken
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidToken
		}

		// Expose the authenticated account to handlers and the service layer.
		c.Set("userID", claims.UserID)

		reqLogger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil)
		if reqLogger != nil {
			ctx := deliverycontext.WithLogger(c.Request().Context(), reqLogger.With("user_id", claims.UserID.String()))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}

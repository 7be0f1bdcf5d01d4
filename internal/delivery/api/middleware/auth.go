// Package middleware contains the echo middleware specific to the public API.
package middleware

import (
	"strings"

	deliverycontext "vidtube/internal/delivery/context"
	domainerrors "vidtube/internal/domain/errors"
	"vidtube/internal/errors"
	"vidtube/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccessTokenCookie is the cookie that carries the access token.
const AccessTokenCookie = "accessToken"

// AuthMiddlewareParams defines the parameters required by AuthMiddleware.
type AuthMiddlewareParams struct {
	fx.In

	UserUC usecase.UserUsecase
}

// AuthMiddleware resolves the access token of a request to its user.
type AuthMiddleware struct {
	userUC usecase.UserUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{userUC: params.UserUC}
}

// Authenticate rejects requests without a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := accessToken(c)
		if token == "" {
			return domainerrors.ErrUnauthorized
		}

		userID, err := m.userUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}
		deliverycontext.SetActorID(c, userID)

		return next(c)
	}
}

// OptionalAuth records the actor when a valid token is present and lets anonymous
// or stale-token requests through unchanged.
func (m *AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token := accessToken(c); token != "" {
			if userID, err := m.userUC.Authenticate(c.Request().Context(), token); err == nil {
				deliverycontext.SetActorID(c, userID)
			}
		}

		return next(c)
	}
}

// accessToken prefers the cookie and falls back to an Authorization: Bearer header.
func accessToken(c echo.Context) string {
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}

	return strings.TrimSpace(token)
}

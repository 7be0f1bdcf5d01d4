package handler

import (
	"net/http"
	"strings"
	"time"

	"vidtube/config"
	"vidtube/internal/delivery/api/middleware"

	"github.com/labstack/echo/v4"
)

const refreshTokenCookie = "refreshToken"

// sessionCookies writes and clears the token cookies with one set of attributes.
type sessionCookies struct {
	cookie     config.CookieConfig
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func newSessionCookies(cfg *config.Config) sessionCookies {
	return sessionCookies{
		cookie:     cfg.HTTP.Cookie,
		accessTTL:  cfg.Auth.AccessTokenTTL,
		refreshTTL: cfg.Auth.RefreshTokenTTL,
	}
}

func (s sessionCookies) set(c echo.Context, accessToken, refreshToken string) {
	c.SetCookie(s.build(middleware.AccessTokenCookie, accessToken, s.accessTTL))
	c.SetCookie(s.build(refreshTokenCookie, refreshToken, s.refreshTTL))
}

func (s sessionCookies) clear(c echo.Context) {
	for _, name := range []string{middleware.AccessTokenCookie, refreshTokenCookie} {
		cookie := s.build(name, "", 0)
		cookie.MaxAge = -1
		cookie.Expires = time.Unix(0, 0)
		c.SetCookie(cookie)
	}
}

func (s sessionCookies) build(name, value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   s.cookie.Domain,
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.cookie.Secure,
		SameSite: sameSite(s.cookie.SameSite),
	}
}

func sameSite(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

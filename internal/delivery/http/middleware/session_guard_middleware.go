// Package middleware contains Echo middleware for the HTTP delivery.
package middleware

import (
	"log/slog"
	"net/http"

	"doorman/config"
	"doorman/internal/domain/guard"

	"github.com/labstack/echo/v4"
)

// SessionGuardMiddleware applies the route guard policy to incoming requests.
// It reads only the presence of the session cookie; authenticity and expiry
// are checked downstream by the session issuer.
type SessionGuardMiddleware struct {
	policy     *guard.Policy
	cookieName string
	logger     *slog.Logger
}

// NewSessionGuardMiddleware creates a new session guard middleware.
func NewSessionGuardMiddleware(policy *guard.Policy, cfg *config.Config, logger *slog.Logger) *SessionGuardMiddleware {
	return &SessionGuardMiddleware{
		policy:     policy,
		cookieName: cfg.Session.CookieName,
		logger:     logger,
	}
}

// Process evaluates the guard disposition before any page logic runs.
func (m *SessionGuardMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := c.Request().URL.Path
		if !m.policy.Intercepts(path) {
			return next(c)
		}

		hasSession := false
		if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
			hasSession = true
		}

		disposition := m.policy.Decide(path, hasSession)

		m.logger.Debug("route guard decision",
			slog.String("path", path),
			slog.Bool("has_session", hasSession),
			slog.String("disposition", disposition.String()),
		)

		switch disposition {
		case guard.RedirectToLogin:
			return c.Redirect(http.StatusFound, "/login")
		case guard.RedirectToDashboard:
			return c.Redirect(http.StatusFound, "/dashboard")
		default:
			return next(c)
		}
	}
}

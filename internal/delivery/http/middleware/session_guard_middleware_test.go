package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"doorman/config"
	"doorman/internal/domain/guard"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardFixture(t *testing.T) *SessionGuardMiddleware {
	t.Helper()

	cfg := &config.Config{
		Session: &config.SessionConfig{CookieName: "session_token"},
	}
	policy := guard.NewPolicy([]string{"/login", "/register"}, []string{"/dashboard"})

	return NewSessionGuardMiddleware(policy, cfg, slog.New(slog.DiscardHandler))
}

func performGuarded(t *testing.T, m *SessionGuardMiddleware, path string, withCookie bool) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if withCookie {
		req.AddCookie(&http.Cookie{Name: "session_token", Value: "anything"})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, m.Process(next)(c))

	return rec
}

func TestSessionGuard_ProtectedWithoutSessionRedirectsToLogin(t *testing.T) {
	m := newGuardFixture(t)

	rec := performGuarded(t, m, "/dashboard", false)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestSessionGuard_PublicWithSessionRedirectsToDashboard(t *testing.T) {
	m := newGuardFixture(t)

	rec := performGuarded(t, m, "/login", true)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get(echo.HeaderLocation))
}

func TestSessionGuard_PublicWithoutSessionAllows(t *testing.T) {
	m := newGuardFixture(t)

	rec := performGuarded(t, m, "/login", false)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionGuard_ProtectedSubpathWithSessionAllows(t *testing.T) {
	m := newGuardFixture(t)

	// Presence is enough here; the token value is never inspected.
	rec := performGuarded(t, m, "/dashboard/settings", true)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionGuard_UnmatchedPathBypassesGuard(t *testing.T) {
	m := newGuardFixture(t)

	rec := performGuarded(t, m, "/health", false)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionGuard_EmptyCookieValueCountsAsAbsent(t *testing.T) {
	m := newGuardFixture(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "session_token", Value: ""})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, m.Process(next)(c))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

package handler

import (
	"log/slog"
	"net/http"
	"time"

	"doorman/config"
	domainerrors "doorman/internal/domain/errors"
	"doorman/internal/domain/repository"
	"doorman/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// The query-encoded reason codes map onto the typed error taxonomy; pages
// render the taxonomy's user-facing message, never fault detail.
var reasonErrors = map[string]domainerrors.AppError{
	"invalid_input":       domainerrors.ErrValidationFailed,
	"invalid_credentials": domainerrors.ErrInvalidCredentials,
	"email_exists":        domainerrors.ErrEmailExists,
	"login_failed":        domainerrors.ErrLoginFailed,
	"registration_failed": domainerrors.ErrRegistrationFailed,
}

// reasonMessage resolves a reason code to its user-facing message. Unknown
// codes render nothing rather than echoing attacker-controlled input.
func reasonMessage(code string) string {
	if appErr, ok := reasonErrors[code]; ok {
		return appErr.Message()
	}

	return ""
}

type authPageData struct {
	Error      string
	Registered bool
}

type dashboardPageData struct {
	Name  string
	Email string
}

// PageHandler renders the server-side HTML pages. The dashboard page performs
// the authoritative session check; the route guard upstream only looked at
// cookie presence.
type PageHandler struct {
	issuer   service.SessionIssuer
	userRepo repository.UserRepository
	cfg      *config.Config
	logger   *slog.Logger
}

// NewPageHandler is the constructor for PageHandler, injected by Fx.
func NewPageHandler(issuer service.SessionIssuer, userRepo repository.UserRepository, cfg *config.Config, logger *slog.Logger) *PageHandler {
	return &PageHandler{
		issuer:   issuer,
		userRepo: userRepo,
		cfg:      cfg,
		logger:   logger,
	}
}

// LoginPage renders the login form.
func (h *PageHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", authPageData{
		Error:      reasonMessage(c.QueryParam("error")),
		Registered: c.QueryParam("registered") == "true",
	})
}

// RegisterPage renders the registration form.
func (h *PageHandler) RegisterPage(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", authPageData{
		Error: reasonMessage(c.QueryParam("error")),
	})
}

// Dashboard validates the session token and renders the dashboard. A present
// but invalid token passed the guard; it is rejected here, the stale cookie is
// cleared, and the client is sent back to the login page.
func (h *PageHandler) Dashboard(c echo.Context) error {
	cookie, err := c.Cookie(h.cfg.Session.CookieName)
	if err != nil || cookie.Value == "" {
		return c.Redirect(http.StatusFound, "/login")
	}

	userID, err := h.issuer.Validate(cookie.Value)
	if err != nil {
		h.logger.Debug("rejecting invalid session token", slog.String("error", err.Error()))
		h.expireSessionCookie(c)

		return c.Redirect(http.StatusFound, "/login")
	}

	user, err := h.userRepo.FindByID(c.Request().Context(), userID)
	if err != nil {
		// A valid token for a missing user means the account is gone; the
		// session is no longer meaningful either way.
		h.logger.Warn("session user lookup failed", slog.String("error", err.Error()))
		h.expireSessionCookie(c)

		return c.Redirect(http.StatusFound, "/login")
	}

	return c.Render(http.StatusOK, "dashboard.html", dashboardPageData{
		Name:  user.Name,
		Email: user.Email,
	})
}

func (h *PageHandler) expireSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

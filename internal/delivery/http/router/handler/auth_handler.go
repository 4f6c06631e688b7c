// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"doorman/config"
	"doorman/internal/domain/service"
	"doorman/internal/usecase"

	"github.com/labstack/echo/v4"
)

// LoginRequest is the login form payload.
type LoginRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// RegisterRequest is the registration form payload.
type RegisterRequest struct {
	Name     string `form:"name" validate:"required,min=2"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=8"`
}

// AuthHandler holds dependencies for the authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	issuer service.SessionIssuer
	cfg    *config.Config
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, issuer service.SessionIssuer, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		issuer: issuer,
		cfg:    cfg,
		logger: logger,
	}
}

// Login handles the login form submission. Every outcome ends in a redirect;
// failures carry a query-encoded reason code and never fault detail.
func (h *AuthHandler) Login(c echo.Context) error {
	var input LoginRequest
	if err := c.Bind(&input); err != nil {
		return c.Redirect(http.StatusSeeOther, "/login?error=invalid_input")
	}

	if err := c.Validate(&input); err != nil {
		return c.Redirect(http.StatusSeeOther, "/login?error=invalid_input")
	}

	result := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})

	switch result.Outcome {
	case usecase.OutcomeOK:
		token, err := h.issuer.Issue(result.User.ID)
		if err != nil {
			h.logger.Error("failed to issue session", slog.String("error", err.Error()))

			return c.Redirect(http.StatusSeeOther, "/login?error=login_failed")
		}

		h.setSessionCookie(c, token)

		return c.Redirect(http.StatusSeeOther, "/dashboard")
	case usecase.OutcomeInvalidCredentials:
		return c.Redirect(http.StatusSeeOther, "/login?error=invalid_credentials")
	default:
		return c.Redirect(http.StatusSeeOther, "/login?error=login_failed")
	}
}

// Register handles the registration form submission.
func (h *AuthHandler) Register(c echo.Context) error {
	var input RegisterRequest
	if err := c.Bind(&input); err != nil {
		return c.Redirect(http.StatusSeeOther, "/register?error=invalid_input")
	}

	if err := c.Validate(&input); err != nil {
		return c.Redirect(http.StatusSeeOther, "/register?error=invalid_input")
	}

	result := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})

	switch result.Outcome {
	case usecase.OutcomeOK:
		// Registration does not log the user in; they sign in explicitly.
		return c.Redirect(http.StatusSeeOther, "/login?registered=true")
	case usecase.OutcomeEmailExists:
		return c.Redirect(http.StatusSeeOther, "/register?error=email_exists")
	default:
		return c.Redirect(http.StatusSeeOther, "/register?error=registration_failed")
	}
}

// Logout clears the session cookie and returns to the login page.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.clearSessionCookie(c)

	return c.Redirect(http.StatusSeeOther, "/login")
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cfg.Session.TTL / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

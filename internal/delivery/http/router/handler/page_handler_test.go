package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"doorman/config"
	"doorman/internal/delivery/http/templates"
	"doorman/internal/domain/entity"
	domainerrors "doorman/internal/domain/errors"
	"doorman/internal/domain/repository"
	mocksrepository "doorman/internal/mocks/repository"
	mocksservice "doorman/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pageHandlerFixtures struct {
	issuer   *mocksservice.MockSessionIssuer
	userRepo *mocksrepository.MockUserRepository
}

func createTestPageHandler(t *testing.T) (*PageHandler, *pageHandlerFixtures) {
	t.Helper()

	f := &pageHandlerFixtures{
		issuer:   mocksservice.NewMockSessionIssuer(t),
		userRepo: mocksrepository.NewMockUserRepository(t),
	}

	cfg := &config.Config{
		Session: &config.SessionConfig{CookieName: "session_token"},
	}

	return NewPageHandler(f.issuer, f.userRepo, cfg, slog.New(slog.DiscardHandler)), f
}

func getPage(t *testing.T, path string, cookie *http.Cookie, handle echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Renderer = templates.New()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()

	require.NoError(t, handle(e.NewContext(req, rec)))

	return rec
}

func TestPageHandler_LoginPage_ShowsReasonMessage(t *testing.T) {
	h, _ := createTestPageHandler(t)

	rec := getPage(t, "/login?error=invalid_credentials", nil, h.LoginPage)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), domainerrors.ErrInvalidCredentials.Message())
}

func TestPageHandler_LoginPage_ShowsRegisteredNotice(t *testing.T) {
	h, _ := createTestPageHandler(t)

	rec := getPage(t, "/login?registered=true", nil, h.LoginPage)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Account created. Please sign in.")
}

func TestPageHandler_LoginPage_UnknownReasonRendersNothing(t *testing.T) {
	h, _ := createTestPageHandler(t)

	rec := getPage(t, "/login?error=bogus", nil, h.LoginPage)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "bogus")
}

func TestPageHandler_ReasonCodesRenderTaxonomyMessages(t *testing.T) {
	h, _ := createTestPageHandler(t)

	tests := []struct {
		name   string
		path   string
		handle echo.HandlerFunc
		want   string
	}{
		{"login fault", "/login?error=login_failed", h.LoginPage, domainerrors.ErrLoginFailed.Message()},
		{"login invalid input", "/login?error=invalid_input", h.LoginPage, domainerrors.ErrValidationFailed.Message()},
		{"registration fault", "/register?error=registration_failed", h.RegisterPage, domainerrors.ErrRegistrationFailed.Message()},
		{"register invalid input", "/register?error=invalid_input", h.RegisterPage, domainerrors.ErrValidationFailed.Message()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := getPage(t, tt.path, nil, tt.handle)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

func TestPageHandler_RegisterPage_ShowsReasonMessage(t *testing.T) {
	h, _ := createTestPageHandler(t)

	rec := getPage(t, "/register?error=email_exists", nil, h.RegisterPage)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), domainerrors.ErrEmailExists.Message())
}

func TestPageHandler_Dashboard_ValidSession(t *testing.T) {
	h, f := createTestPageHandler(t)

	userID := uuid.New()
	f.issuer.EXPECT().Validate("valid-token").Return(userID, nil)
	f.userRepo.EXPECT().
		FindByID(mock.Anything, userID).
		Return(&entity.User{ID: userID, Name: "User", Email: "user@example.com"}, nil)

	rec := getPage(t, "/dashboard", &http.Cookie{Name: "session_token", Value: "valid-token"}, h.Dashboard)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user@example.com")
}

func TestPageHandler_Dashboard_ForgedTokenClearedAndRedirected(t *testing.T) {
	h, f := createTestPageHandler(t)

	// The guard let this through on presence alone; the authoritative check
	// happens here.
	f.issuer.EXPECT().
		Validate("forged").
		Return(uuid.Nil, domainerrors.ErrSessionInvalid.WrapMessage("parse token"))

	rec := getPage(t, "/dashboard", &http.Cookie{Name: "session_token", Value: "forged"}, h.Dashboard)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))

	cookie := findCookie(t, rec, "session_token")
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestPageHandler_Dashboard_DeletedUserClearedAndRedirected(t *testing.T) {
	h, f := createTestPageHandler(t)

	userID := uuid.New()
	f.issuer.EXPECT().Validate("valid-token").Return(userID, nil)
	f.userRepo.EXPECT().
		FindByID(mock.Anything, userID).
		Return(nil, repository.ErrUserNotFound)

	rec := getPage(t, "/dashboard", &http.Cookie{Name: "session_token", Value: "valid-token"}, h.Dashboard)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestPageHandler_Dashboard_NoCookieRedirects(t *testing.T) {
	h, _ := createTestPageHandler(t)

	rec := getPage(t, "/dashboard", nil, h.Dashboard)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

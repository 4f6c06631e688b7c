package session

import (
	"testing"
	"time"

	"doorman/config"
	domainerrors "doorman/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIssuer(ttl time.Duration) *jwtIssuer {
	cfg := &config.Config{
		Session: &config.SessionConfig{
			Secret: "test-secret",
			TTL:    ttl,
		},
	}

	return NewJWTIssuer(cfg).(*jwtIssuer)
}

func TestJWTIssuer_IssueAndValidate(t *testing.T) {
	issuer := newTestIssuer(time.Hour)
	userID := uuid.New()

	token, err := issuer.Issue(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWTIssuer_RejectsTamperedToken(t *testing.T) {
	issuer := newTestIssuer(time.Hour)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"

	_, err = issuer.Validate(tampered)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionInvalid))
}

func TestJWTIssuer_RejectsExpiredToken(t *testing.T) {
	issuer := newTestIssuer(-time.Minute)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = issuer.Validate(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionInvalid))
}

func TestJWTIssuer_RejectsForeignSecret(t *testing.T) {
	issuer := newTestIssuer(time.Hour)
	other := &jwtIssuer{secret: []byte("other-secret"), ttl: time.Hour}

	token, err := other.Issue(uuid.New())
	require.NoError(t, err)

	// A token that passes the presence-only route guard still fails here.
	_, err = issuer.Validate(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionInvalid))
}

func TestJWTIssuer_RejectsGarbage(t *testing.T) {
	issuer := newTestIssuer(time.Hour)

	_, err := issuer.Validate("not-a-token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionInvalid))
}

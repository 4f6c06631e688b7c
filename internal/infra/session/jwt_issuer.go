// Package session implements the session issuer: the authoritative side of
// the session split. The route guard only looks at cookie presence; this
// issuer is what actually vouches for a token.
package session

import (
	"time"

	"doorman/config"
	domainerrors "doorman/internal/domain/errors"
	"doorman/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// jwtIssuer mints HS256-signed session tokens carried in the session cookie.
type jwtIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTIssuer is the constructor for jwtIssuer.
func NewJWTIssuer(cfg *config.Config) service.SessionIssuer {
	return &jwtIssuer{
		secret: []byte(cfg.Session.Secret),
		ttl:    cfg.Session.TTL,
	}
}

// Issue creates a signed session token for the given user.
func (i *jwtIssuer) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Validate checks the token's signature and expiry and returns the user it
// was issued for. Any parse, signature, or expiry failure maps to
// ErrSessionInvalid; callers don't need to distinguish.
func (i *jwtIssuer) Validate(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return uuid.Nil, domainerrors.ErrSessionInvalid.WrapMessage("session token rejected")
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return uuid.Nil, domainerrors.ErrSessionInvalid.WrapMessage("session token missing subject")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, domainerrors.ErrSessionInvalid.WrapMessage("session token subject is not a user id")
	}

	return userID, nil
}

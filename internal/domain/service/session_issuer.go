package service

import "github.com/google/uuid"

// SessionIssuer mints and validates the opaque session indicator carried by
// the client. The route guard deliberately never calls Validate: it only
// checks the indicator's presence. Authoritative validation happens in the
// handlers serving protected pages.
type SessionIssuer interface {
	// Issue creates a signed session token for the given user.
	Issue(userID uuid.UUID) (string, error)

	// Validate checks a token's signature and expiry and returns the user it
	// was issued for.
	Validate(token string) (uuid.UUID, error)
}

// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"doorman/internal/domain/entity"
)

// Outcome is the closed vocabulary the credential verifier surfaces to
// callers. Callers must switch over every value; there is no default/unknown
// case that silently succeeds.
type Outcome string

const (
	// OutcomeOK means the operation succeeded.
	OutcomeOK Outcome = "ok"

	// OutcomeInvalidCredentials covers both unknown email and wrong password.
	// The two are deliberately indistinguishable to prevent account
	// enumeration.
	OutcomeInvalidCredentials Outcome = "invalid_credentials"

	// OutcomeEmailExists means registration was refused because the email is
	// already registered. No account was mutated.
	OutcomeEmailExists Outcome = "email_exists"

	// OutcomeLoginFailed means an unexpected fault occurred during login.
	// The fault detail is logged, never surfaced.
	OutcomeLoginFailed Outcome = "login_failed"

	// OutcomeRegistrationFailed means an unexpected fault occurred during
	// registration. The fault detail is logged, never surfaced.
	OutcomeRegistrationFailed Outcome = "registration_failed"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in. Inputs are
// non-empty strings; format validation is a presentation-layer concern and is
// not repeated here.
type LoginInput struct {
	Email    string
	Password string
}

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginResult carries the verification outcome. User is set only when the
// outcome is OutcomeOK; the caller feeds it to the session issuer.
type LoginResult struct {
	Outcome Outcome
	User    *entity.User
}

// RegisterResult carries the registration outcome. User is set only when the
// outcome is OutcomeOK.
type RegisterResult struct {
	Outcome Outcome
	User    *entity.User
}

// AuthUsecase decides whether a presented credential pair identifies a
// legitimate account and whether a requested new account can be created.
// Both operations are single-shot, stateless request/response: no session is
// created here and no retry is performed. Unexpected faults never escape this
// boundary; they are folded into the *_failed outcomes.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) *LoginResult
	Register(ctx context.Context, input *RegisterInput) *RegisterResult
}

// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "doorman/internal/delivery/context"
	"doorman/internal/domain/entity"
	"doorman/internal/domain/repository"
	"doorman/internal/domain/service"
	"doorman/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all
// dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to
// the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login decides whether the presented email/password pair identifies an
// existing account. An unknown email and a wrong password collapse to the
// same outcome; store or hasher faults fold into OutcomeLoginFailed and are
// logged for operators. No session is established here.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) *usecase.LoginResult {
	srv.log(ctx).Debug("Starting login verification", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.String("reason", "unknown email"))

			return &usecase.LoginResult{Outcome: usecase.OutcomeInvalidCredentials}
		}

		srv.log(ctx).Error("Login fault", slog.String("email", input.Email), slog.Any("error", errors.Wrap(err, "failed to find user by email")))

		return &usecase.LoginResult{Outcome: usecase.OutcomeLoginFailed}
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.String("reason", "password mismatch"))

		return &usecase.LoginResult{Outcome: usecase.OutcomeInvalidCredentials}
	}

	srv.log(ctx).Debug("Login verified", slog.Any("userID", user.ID))

	return &usecase.LoginResult{Outcome: usecase.OutcomeOK, User: user}
}

// Register creates a new account unless the email is already registered.
// The duplicate check and the creation run in one store transaction; the
// store's unique index on email is what serializes concurrent registrations
// for the same address, so a lost race surfaces as OutcomeEmailExists rather
// than a second success. Creation is attempted exactly once per call.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) *usecase.RegisterResult {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	var duplicate bool
	var created *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, findErr := userRepo.FindByEmail(ctx, input.Email)
		if findErr == nil {
			duplicate = true

			return nil
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check existing email")
		}

		hashedPassword, hashErr := srv.hasher.Hash(input.Password)
		if hashErr != nil {
			return errors.Wrap(hashErr, "failed to hash password during registration")
		}

		newUser := &entity.User{
			Name:         input.Name,
			Email:        input.Email,
			PasswordHash: hashedPassword,
		}

		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			return errors.Wrap(createErr, "failed to create user during registration")
		}

		created = newUser

		return nil
	})

	if err != nil {
		// A concurrent registration can slip past the duplicate check and
		// lose the race at the unique index instead.
		if errors.Is(err, repository.ErrEmailTaken) {
			srv.log(ctx).Warn("Registration refused", slog.String("email", input.Email), slog.String("reason", "email exists"))

			return &usecase.RegisterResult{Outcome: usecase.OutcomeEmailExists}
		}

		srv.log(ctx).Error("Registration fault", slog.String("email", input.Email), slog.Any("error", err))

		return &usecase.RegisterResult{Outcome: usecase.OutcomeRegistrationFailed}
	}

	if duplicate {
		srv.log(ctx).Warn("Registration refused", slog.String("email", input.Email), slog.String("reason", "email exists"))

		return &usecase.RegisterResult{Outcome: usecase.OutcomeEmailExists}
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", created.ID))

	return &usecase.RegisterResult{Outcome: usecase.OutcomeOK, User: created}
}

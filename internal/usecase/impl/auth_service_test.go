package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"doorman/internal/domain/entity"
	"doorman/internal/domain/repository"
	mockRepo "doorman/internal/mocks/repository"
	mockSvc "doorman/internal/mocks/service"
	"doorman/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service   usecase.AuthUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockSvc.MockPasswordHasher
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(AuthServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Hasher:    hasher,
		Logger:    logger,
	})

	return authServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
		hasher:    hasher,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		Name:         "Test User",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", user.PasswordHash).Return(true)

	result := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "Password123!"})

	require.NotNil(t, result)
	assert.Equal(t, usecase.OutcomeOK, result.Outcome)
	require.NotNil(t, result.User)
	assert.Equal(t, user.ID, result.User.ID)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	result := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "whatever"})

	require.NotNil(t, result)
	assert.Equal(t, usecase.OutcomeInvalidCredentials, result.Outcome)
	assert.Nil(t, result.User)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", user.PasswordHash).Return(false)

	result := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})

	require.NotNil(t, result)
	// Wrong password is indistinguishable from an unknown email.
	assert.Equal(t, usecase.OutcomeInvalidCredentials, result.Outcome)
	assert.Nil(t, result.User)
}

func TestAuthService_Login_StoreFault(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "test@example.com").
		Return(nil, errors.New("connection refused"))

	result := fx.service.Login(ctx, &usecase.LoginInput{Email: "test@example.com", Password: "Password123!"})

	require.NotNil(t, result)
	assert.Equal(t, usecase.OutcomeLoginFailed, result.Outcome)
	assert.Nil(t, result.User)
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)

			fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	result := fx.service.Register(ctx, input)

	require.NotNil(t, result)
	assert.Equal(t, usecase.OutcomeOK, result.Outcome)
	require.NotNil(t, result.User)
	assert.Equal(t, input.Email, result.User.Email)
	assert.Equal(t, "hashed_password", result.User.PasswordHash)
}

func TestAuthService_Register_EmailExists(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Another Name",
		Email:    "test@example.com",
		Password: "DifferentPassword!",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			existing := &entity.User{ID: uuid.New(), Email: input.Email}
			mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(existing, nil)

			return fn(mockFactory)
		})

	result := fx.service.Register(ctx, input)

	require.NotNil(t, result)
	// Refused regardless of the password or name on the second attempt.
	assert.Equal(t, usecase.OutcomeEmailExists, result.Outcome)
	assert.Nil(t, result.User)
}

func TestAuthService_Register_LostUniquenessRace(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)

			fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

			// A concurrent registration won the unique index between the
			// check and the insert.
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(repository.ErrEmailTaken)

			return fn(mockFactory)
		})

	result := fx.service.Register(ctx, input)

	require.NotNil(t, result)
	assert.Equal(t, usecase.OutcomeEmailExists, result.Outcome)
	assert.Nil(t, result.User)
}

func TestAuthService_Register_HasherFault(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)

			fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("cost out of range"))

			return fn(mockFactory)
		})

	result := fx.service.Register(ctx, input)

	require.NotNil(t, result)
	assert.Equal(t, usecase.OutcomeRegistrationFailed, result.Outcome)
	assert.Nil(t, result.User)
}

func TestAuthService_Register_StoreFaultRollsBack(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	}

	var txSawError bool

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)

			fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(errors.New("connection reset"))

			err := fn(mockFactory)
			// The transaction callback reports the fault so the manager
			// rolls the transaction back; no partial record survives.
			txSawError = err != nil

			return err
		})

	result := fx.service.Register(ctx, input)

	require.NotNil(t, result)
	assert.True(t, txSawError)
	assert.Equal(t, usecase.OutcomeRegistrationFailed, result.Outcome)
	assert.Nil(t, result.User)
}

package impl

import (
	"context"
	"testing"
	"time"

	"sklad/internal/domain/entity"
	domainerrors "sklad/internal/domain/errors"
	"sklad/internal/domain/repository"
	"sklad/internal/domain/service"
	mockRepo "sklad/internal/mocks/repository"
	mockSvc "sklad/internal/mocks/service"
	"sklad/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	tokenRepo    *mockRepo.MockRefreshTokenRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	t.Helper()

	userRepo := new(mockRepo.MockUserRepository)
	tokenRepo := new(mockRepo.MockRefreshTokenRepository)
	hasher := new(mockSvc.MockPasswordHasher)
	tokenService := new(mockSvc.MockTokenService)

	factory := &mockRepo.StubRepositoryFactory{
		Users:         userRepo,
		RefreshTokens: tokenRepo,
	}

	service := NewUserService(UserServiceParams{
		TxManager:    newStubTxManager(factory),
		UserRepo:     userRepo,
		TokenRepo:    tokenRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		tokenRepo:    tokenRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.RegisterUserInput{
		Name:     "Ivan Petrov",
		Email:    "ivan@sklad.local",
		Password: "Password123!",
		Role:     "worker",
	}

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.userRepo.On("FindByEmail", ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, entity.RoleWorker, output.User.Role)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	fx.userRepo.AssertExpectations(t)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.RegisterUserInput{
		Name:     "Ivan Petrov",
		Email:    "ivan@sklad.local",
		Password: "Password123!",
		Role:     "worker",
	}

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.userRepo.On("FindByEmail", ctx, input.Email).
		Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Register_UnknownRole(t *testing.T) {
	fx := createTestUserService(t)

	output, err := fx.service.Register(context.Background(), &usecase.RegisterUserInput{
		Name:     "Ivan Petrov",
		Email:    "ivan@sklad.local",
		Password: "Password123!",
		Role:     "superuser",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "ivan@sklad.local",
		Name:         "Ivan Petrov",
		PasswordHash: "stored_hash",
		Role:         entity.RoleManager,
	}

	fx.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	fx.hasher.On("Check", "Password123!", "stored_hash").Return(true)
	fx.tokenService.On("GenerateTokens", userID, []string{"manager"}).
		Return("access-token", "refresh-token", nil)
	fx.tokenService.On("GetRefreshTokenDuration").Return(7 * 24 * time.Hour)
	fx.tokenRepo.On("Create", ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(args mock.Arguments) {
			stored := args.Get(1).(*entity.RefreshToken)
			// Only the hash of the refresh token reaches storage.
			assert.NotEqual(t, "refresh-token", stored.Token)
			assert.Len(t, stored.Token, 64)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, userID, output.User.ID)
	fx.tokenRepo.AssertExpectations(t)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "ivan@sklad.local",
		PasswordHash: "stored_hash",
		Role:         entity.RoleWorker,
	}

	fx.userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
	fx.hasher.On("Check", "wrong", "stored_hash").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.On("FindByEmail", ctx, "nobody@sklad.local").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@sklad.local", Password: "x"})

	require.Error(t, err)
	assert.Nil(t, output)
	// Unknown email and wrong password must be indistinguishable.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_RefreshToken_RotatesPair(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{ID: userID, Role: entity.RoleWorker}
	oldHash := sha256Hex("old-refresh")

	fx.tokenService.On("ValidateRefreshToken", "old-refresh").
		Return(&service.TokenClaims{UserID: userID, Type: "refresh"}, nil)
	fx.tokenRepo.On("FindByToken", ctx, oldHash).
		Return(&entity.RefreshToken{
			UserID:    userID,
			Token:     oldHash,
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)
	fx.userRepo.On("FindByID", ctx, userID).Return(user, nil)
	fx.tokenService.On("GenerateTokens", userID, []string{"worker"}).
		Return("new-access", "new-refresh", nil)
	fx.tokenService.On("GetRefreshTokenDuration").Return(7 * 24 * time.Hour)
	fx.tokenRepo.On("Create", ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)
	fx.tokenRepo.On("Revoke", ctx, oldHash).Return(nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "old-refresh"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
	fx.tokenRepo.AssertExpectations(t)
}

func TestUserService_RefreshToken_RevokedToken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()
	oldHash := sha256Hex("old-refresh")
	revokedAt := time.Now().Add(-time.Minute)

	fx.tokenService.On("ValidateRefreshToken", "old-refresh").
		Return(&service.TokenClaims{UserID: userID, Type: "refresh"}, nil)
	fx.tokenRepo.On("FindByToken", ctx, oldHash).
		Return(&entity.RefreshToken{
			UserID:    userID,
			Token:     oldHash,
			ExpiresAt: time.Now().Add(time.Hour),
			RevokedAt: &revokedAt,
		}, nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "old-refresh"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenExpired))
	fx.tokenRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_DeleteUser_RevokesSessions(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()

	fx.userRepo.On("Delete", ctx, userID).Return(nil)
	fx.tokenRepo.On("RevokeAllForUser", ctx, userID).Return(nil)

	err := fx.service.DeleteUser(ctx, userID)

	require.NoError(t, err)
	fx.tokenRepo.AssertExpectations(t)
}

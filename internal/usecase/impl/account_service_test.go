package impl

import (
	"context"
	"testing"
	"time"

	"envybase/internal/domain/entity"
	domainerrors "envybase/internal/domain/errors"
	"envybase/internal/domain/repository"
	mockRepo "envybase/internal/mocks/repository"
	mockSvc "envybase/internal/mocks/service"
	"envybase/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	publisher    *mockSvc.MockEventPublisher
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	fx := accountServiceFixtures{
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}

	fx.service = NewAccountService(AccountServiceParams{
		Config:       newTestConfig(),
		UserRepo:     fx.userRepo,
		Hasher:       fx.hasher,
		TokenService: fx.tokenService,
		Publisher:    fx.publisher,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func eventOfType(eventType entity.AuthEventType) any {
	return mock.MatchedBy(func(event *entity.AuthEvent) bool {
		return event.Type == eventType
	})
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("s3cretpass").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "alice@example.com" &&
				u.PasswordHash == "hashed" &&
				u.Provider == entity.ProviderTypeLocal &&
				u.Subject == "alice@example.com"
		})).
		Return(nil)
	fx.publisher.EXPECT().PublishAuthEvent(mock.Anything, eventOfType(entity.AuthEventUserRegistered)).Return(nil)

	user, err := fx.service.Register(ctx, usecase.RegisterInput{Email: " Alice@Example.com ", Password: "s3cretpass"})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, entity.ProviderTypeLocal, user.Provider)
}

func TestAccountService_Register_PublishFailureIgnored(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "bob@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("s3cretpass").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.publisher.EXPECT().PublishAuthEvent(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	_, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "bob@example.com", Password: "s3cretpass"})
	assert.NoError(t, err)
}

func TestAccountService_Register_Duplicate(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "alice@example.com").
		Return(&entity.User{Email: "alice@example.com", Provider: entity.ProviderTypeGoogle}, nil)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "alice@example.com", Password: "s3cretpass"})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateRegistration)
}

func TestAccountService_Register_InsertRace(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("s3cretpass").Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(errors.WithStack(repository.ErrUserAlreadyExists))

	_, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "alice@example.com", Password: "s3cretpass"})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateRegistration)
}

func TestAccountService_Register_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.RegisterInput
		want  string
	}{
		{"invalid email", usecase.RegisterInput{Email: "not-an-email", Password: "s3cretpass"}, "email must be a valid email address"},
		{"missing email", usecase.RegisterInput{Password: "s3cretpass"}, "email is required"},
		{"short password", usecase.RegisterInput{Email: "a@example.com", Password: "short"}, "password must be at least 8 characters"},
		{"long password", usecase.RegisterInput{Email: "a@example.com", Password: "abcdefghijklmnopqrstuvwxyz0123456789"}, "password must be at most 32 characters"},
		{"short username", usecase.RegisterInput{Email: "a@example.com", Password: "s3cretpass", Username: "ab"}, "username must be at least 3 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccountService(t)

			_, err := fx.service.Register(context.Background(), tt.input)
			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Contains(t, appErr.Details(), tt.want)
		})
	}
}

func TestAccountService_Register_HashFailure(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("s3cretpass").Return("", errors.New("cost out of range"))

	_, err := fx.service.Register(ctx, usecase.RegisterInput{Email: "alice@example.com", Password: "s3cretpass"})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	stored := &entity.User{
		Email:        "alice@example.com",
		PasswordHash: "hashed",
		Provider:     entity.ProviderTypeLocal,
		Subject:      "alice@example.com",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(stored, nil)
	fx.hasher.EXPECT().Check("s3cretpass", "hashed").Return(true)
	fx.tokenService.EXPECT().IssueToken(map[string]any{"sub": "alice@example.com"}).Return("signed.jwt", nil)
	fx.tokenService.EXPECT().TokenTTL().Return(time.Hour)
	fx.publisher.EXPECT().PublishAuthEvent(mock.Anything, eventOfType(entity.AuthEventUserLoggedIn)).Return(nil)

	out, err := fx.service.Login(ctx, usecase.LoginInput{Email: "Alice@example.com", Password: "s3cretpass"})
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt", out.AccessToken)
	assert.Equal(t, time.Hour, out.ExpiresIn)
	assert.Same(t, stored, out.User)
}

func TestAccountService_Login_InvalidCredentials(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "s3cretpass"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.userRepo.EXPECT().
			FindByEmail(ctx, "alice@example.com").
			Return(&entity.User{Email: "alice@example.com", PasswordHash: "hashed", Provider: entity.ProviderTypeLocal}, nil)
		fx.hasher.EXPECT().Check("wrongpass1", "hashed").Return(false)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "alice@example.com", Password: "wrongpass1"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password outside registration bounds", func(t *testing.T) {
		for _, password := range []string{"wrong", "this-password-is-far-longer-than-any-allowed-one"} {
			fx := createTestAccountService(t)
			fx.userRepo.EXPECT().
				FindByEmail(ctx, "a@x.com").
				Return(&entity.User{Email: "a@x.com", PasswordHash: "hashed", Provider: entity.ProviderTypeLocal}, nil)
			fx.hasher.EXPECT().Check(password, "hashed").Return(false)

			_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "a@x.com", Password: password})
			assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
			assert.NotErrorIs(t, err, domainerrors.ErrValidationFailed)
		}
	})

	t.Run("federated account", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.userRepo.EXPECT().
			FindByEmail(ctx, "alice@example.com").
			Return(&entity.User{Email: "alice@example.com", Provider: entity.ProviderTypeGoogle}, nil)

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "alice@example.com", Password: "s3cretpass"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAccountService_Login_RepositoryError(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(nil, errors.New("connection reset"))

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "alice@example.com", Password: "s3cretpass"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to look up user for login")
	_, isAuthErr := domainerrors.AsAuthError(err)
	assert.False(t, isAuthErr)
}

func TestAccountService_Profile(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		fx := createTestAccountService(t)
		stored := &entity.User{Email: "alice@example.com", Subject: "alice@example.com"}
		fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(stored, nil)

		user, err := fx.service.Profile(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Same(t, stored, user)
	})

	t.Run("deleted account", func(t *testing.T) {
		fx := createTestAccountService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "gone@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Profile(ctx, "gone@example.com")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	})

	t.Run("empty subject", func(t *testing.T) {
		fx := createTestAccountService(t)

		_, err := fx.service.Profile(ctx, "")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	})
}

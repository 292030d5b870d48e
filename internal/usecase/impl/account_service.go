// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"envybase/config"
	deliverycontext "envybase/internal/delivery/context"
	"envybase/internal/domain/entity"
	domainerrors "envybase/internal/domain/errors"
	"envybase/internal/domain/repository"
	"envybase/internal/domain/service"
	"envybase/internal/errors"
	"envybase/internal/usecase"

	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	publisher    service.EventPublisher
	rules        *credentialRules
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	Config       *config.Config
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		publisher:    params.Publisher,
		rules:        newCredentialRules(params.Config.Auth),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a local account bound to the email. A second registration
// for the same email fails regardless of which provider owns it.
func (srv *accountService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	if err := srv.rules.check(
		srv.rules.emailField(input.Email),
		srv.rules.passwordField(input.Password),
		srv.rules.usernameField(input.Username),
	); err != nil {
		return nil, err
	}

	email := entity.NormalizeEmail(input.Email)

	_, err := srv.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		srv.log(ctx).Info("Registration rejected, email already bound", slog.String("email", email))

		return nil, domainerrors.ErrDuplicateRegistration
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to look up user for registration")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: hash,
		Provider:     entity.ProviderTypeLocal,
		Subject:      email,
		Username:     strings.TrimSpace(input.Username),
		Name:         strings.TrimSpace(input.Name),
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			// A concurrent registration won the insert.
			return nil, domainerrors.ErrDuplicateRegistration.WithCause(err)
		}

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Info("User registered", slog.String("email", email))
	publishAuthEvent(ctx, srv.publisher, srv.log(ctx), &entity.AuthEvent{
		Type:     entity.AuthEventUserRegistered,
		Email:    email,
		Provider: entity.ProviderTypeLocal,
		Created:  true,
	})

	return user, nil
}

// Login verifies a password and issues an access token for the account.
// Unknown emails, federated accounts and wrong passwords are indistinguishable.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	if err := srv.rules.check(
		srv.rules.emailField(input.Email),
		srv.rules.loginPasswordField(input.Password),
	); err != nil {
		return nil, err
	}

	email := entity.NormalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up user for login")
	}

	if !user.HasPassword() || !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Password login rejected", slog.String("email", email), slog.String("provider", user.Provider.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.IssueToken(map[string]any{"sub": user.Subject})
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	publishAuthEvent(ctx, srv.publisher, srv.log(ctx), &entity.AuthEvent{
		Type:     entity.AuthEventUserLoggedIn,
		Email:    email,
		Provider: user.Provider,
	})

	return &usecase.LoginOutput{
		AccessToken: token,
		ExpiresIn:   srv.tokenService.TokenTTL(),
		User:        user,
	}, nil
}

// Profile resolves the account behind a token subject.
func (srv *accountService) Profile(ctx context.Context, subject string) (*entity.User, error) {
	if subject == "" {
		return nil, domainerrors.ErrInvalidToken
	}

	user, err := srv.userRepo.FindByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidToken.WithCause(err)
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}

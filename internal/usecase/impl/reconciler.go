package impl

import (
	"context"
	"log/slog"

	deliverycontext "envybase/internal/delivery/context"
	"envybase/internal/domain/entity"
	domainerrors "envybase/internal/domain/errors"
	"envybase/internal/domain/repository"
	"envybase/internal/errors"
	"envybase/internal/usecase"

	"go.uber.org/fx"
)

type identityReconciler struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// ReconcilerParams holds dependencies for the identity reconciler, injected by Fx.
type ReconcilerParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewIdentityReconciler binds external identities to user accounts by email.
func NewIdentityReconciler(params ReconcilerParams) usecase.IdentityReconciler {
	return &identityReconciler{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// Reconcile enforces one provider per email. The first sign-in creates the
// account with the identity's profile; later ones return it untouched.
func (r *identityReconciler) Reconcile(ctx context.Context, identity *entity.ExternalIdentity) (*entity.User, bool, error) {
	if !identity.HasEmail() {
		return nil, false, domainerrors.ErrMissingEmail
	}

	email := entity.NormalizeEmail(identity.Email)
	logger := deliverycontext.GetLoggerOrDefault(ctx, r.logger).With(
		slog.String("email", email),
		slog.String("provider", identity.Provider.String()),
	)

	user, err := r.lookup(ctx, email, identity.Provider)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, false, err
	}

	username, err := generateUsername()
	if err != nil {
		return nil, false, err
	}

	newUser := &entity.User{
		Email:      email,
		Provider:   identity.Provider,
		Subject:    email,
		Username:   username,
		Name:       identity.Name,
		GivenName:  identity.GivenName,
		FamilyName: identity.FamilyName,
		Picture:    identity.Picture,
	}

	if err := r.userRepo.Create(ctx, newUser); err != nil {
		if !errors.Is(err, repository.ErrUserAlreadyExists) {
			return nil, false, errors.Wrap(err, "failed to create federated user")
		}

		// A concurrent first sign-in created the row; the stored account wins.
		logger.Info("Federated signup lost insert race, re-reading account")
		user, err = r.lookup(ctx, email, identity.Provider)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil, false, errors.Wrap(domainerrors.ErrInternalError, "user vanished after unique conflict")
			}

			return nil, false, err
		}

		return user, false, nil
	}

	logger.Info("Federated account created")

	return newUser, true, nil
}

// lookup returns the account for email, failing with ErrProviderMismatch when
// another provider owns it.
func (r *identityReconciler) lookup(ctx context.Context, email string, provider entity.ProviderType) (*entity.User, error) {
	user, err := r.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to look up user for federation")
	}

	if user.Provider != provider {
		return nil, domainerrors.ErrProviderMismatch.
			WithProvider(provider.String()).
			WithCause(errors.Errorf("email bound to provider %q", user.Provider))
	}

	return user, nil
}

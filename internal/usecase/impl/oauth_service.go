package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"envybase/config"
	deliverycontext "envybase/internal/delivery/context"
	"envybase/internal/domain/entity"
	domainerrors "envybase/internal/domain/errors"
	"envybase/internal/domain/service"
	"envybase/internal/errors"
	"envybase/internal/usecase"

	"go.uber.org/fx"
)

// flowState names the step an OAuth flow reached. It is only logged.
type flowState string

const (
	flowInitiated       flowState = "INITIATED"
	flowCodeReceived    flowState = "CODE_RECEIVED"
	flowTokenExchanged  flowState = "TOKEN_EXCHANGED"
	flowIdentityFetched flowState = "IDENTITY_FETCHED"
	flowReconciled      flowState = "RECONCILED"
	flowTokenIssued     flowState = "TOKEN_ISSUED"
	flowFailed          flowState = "FAILED"
)

const defaultOAuthStateTTL = 10 * time.Minute

type oauthService struct {
	registry     service.ProviderRegistry
	states       service.StateStore
	reconciler   usecase.IdentityReconciler
	tokenService service.TokenService
	publisher    service.EventPublisher
	reporter     service.ErrorReporter
	stateTTL     time.Duration
	logger       *slog.Logger
}

// OAuthServiceParams holds dependencies for OAuthService, injected by Fx.
type OAuthServiceParams struct {
	fx.In

	Config       *config.Config
	Registry     service.ProviderRegistry
	States       service.StateStore
	Reconciler   usecase.IdentityReconciler
	TokenService service.TokenService
	Publisher    service.EventPublisher
	Reporter     service.ErrorReporter
	Logger       *slog.Logger
}

// NewOAuthService is the constructor for the OAuth flow controller.
func NewOAuthService(params OAuthServiceParams) usecase.OAuthUsecase {
	stateTTL := defaultOAuthStateTTL
	if params.Config.OAuth != nil && params.Config.OAuth.StateTTL > 0 {
		stateTTL = params.Config.OAuth.StateTTL
	}

	return &oauthService{
		registry:     params.Registry,
		states:       params.States,
		reconciler:   params.Reconciler,
		tokenService: params.TokenService,
		publisher:    params.Publisher,
		reporter:     params.Reporter,
		stateTTL:     stateTTL,
		logger:       params.Logger,
	}
}

// flow carries the per-callback logger and the last state reached.
type flow struct {
	provider string
	state    flowState
	logger   *slog.Logger
}

func (f *flow) advance(next flowState) {
	f.logger.Debug("OAuth flow advanced", slog.String("from", string(f.state)), slog.String("to", string(next)))
	f.state = next
}

func (srv *oauthService) newFlow(ctx context.Context, provider string) *flow {
	return &flow{
		provider: provider,
		state:    flowInitiated,
		logger:   deliverycontext.GetLoggerOrDefault(ctx, srv.logger).With(slog.String("provider", provider)),
	}
}

// Authorize issues a state bound to the provider and returns the redirect URL.
func (srv *oauthService) Authorize(ctx context.Context, provider string) (string, error) {
	provider = strings.ToLower(provider)
	f := srv.newFlow(ctx, provider)

	fetcher, ok := srv.registry.Fetcher(provider)
	if !ok {
		return "", srv.fail(ctx, f, domainerrors.ErrUnsupportedProvider)
	}

	state, err := generateState()
	if err != nil {
		return "", err
	}

	if err := srv.states.Save(ctx, state, provider, srv.stateTTL); err != nil {
		return "", errors.Wrap(err, "failed to save oauth state")
	}

	f.logger.Info("OAuth flow initiated")

	return fetcher.AuthCodeURL(state), nil
}

// Callback completes the authorization-code flow and issues the access token.
func (srv *oauthService) Callback(ctx context.Context, input usecase.CallbackInput) (*usecase.CallbackOutput, error) {
	provider := strings.ToLower(input.Provider)
	f := srv.newFlow(ctx, provider)

	fetcher, ok := srv.registry.Fetcher(provider)
	if !ok {
		return nil, srv.fail(ctx, f, domainerrors.ErrUnsupportedProvider)
	}

	if err := srv.checkCallback(ctx, provider, input); err != nil {
		return nil, srv.fail(ctx, f, err)
	}
	f.advance(flowCodeReceived)

	token, err := fetcher.Exchange(ctx, input.Code)
	if err != nil {
		return nil, srv.fail(ctx, f, asTaxonomy(err, domainerrors.ErrToken))
	}
	f.advance(flowTokenExchanged)

	identity, err := fetcher.FetchIdentity(ctx, token)
	if err != nil {
		return nil, srv.fail(ctx, f, asTaxonomy(err, domainerrors.ErrUserinfoFetch))
	}
	if !identity.HasEmail() {
		return nil, srv.fail(ctx, f, domainerrors.ErrMissingEmail)
	}
	f.advance(flowIdentityFetched)

	user, created, err := srv.reconciler.Reconcile(ctx, identity)
	if err != nil {
		return nil, srv.fail(ctx, f, err)
	}
	f.advance(flowReconciled)

	accessToken, err := srv.tokenService.IssueToken(map[string]any{"sub": user.Subject})
	if err != nil {
		return nil, srv.fail(ctx, f, errors.Wrap(err, "failed to issue access token"))
	}
	f.advance(flowTokenIssued)

	f.logger.Info("OAuth flow completed", slog.String("email", user.Email), slog.Bool("created", created))
	publishAuthEvent(ctx, srv.publisher, f.logger, &entity.AuthEvent{
		Type:     entity.AuthEventUserFederated,
		Email:    user.Email,
		Provider: user.Provider,
		Created:  created,
	})

	return &usecase.CallbackOutput{
		AccessToken: accessToken,
		User:        user,
		Created:     created,
	}, nil
}

// checkCallback validates the redirect parameters and consumes the state.
func (srv *oauthService) checkCallback(ctx context.Context, provider string, input usecase.CallbackInput) error {
	if input.Error != "" {
		return domainerrors.ErrOAuth.WithCause(errors.Errorf("provider returned %s: %s", input.Error, input.ErrorDescription))
	}
	if input.Code == "" {
		return domainerrors.ErrOAuth.WithCause(errors.New("callback carries no authorization code"))
	}
	if input.State == "" {
		return domainerrors.ErrOAuth.WithCause(errors.New("callback carries no state"))
	}

	bound, err := srv.states.Consume(ctx, input.State)
	if err != nil {
		if errors.Is(err, service.ErrStateNotFound) {
			return domainerrors.ErrOAuth.WithCause(err)
		}

		return errors.Wrap(err, "failed to consume oauth state")
	}

	if bound != provider {
		return domainerrors.ErrOAuth.WithCause(errors.Errorf("state issued for provider %q", bound))
	}

	return nil
}

// fail moves the flow to FAILED and reports taxonomy errors with a correlation id.
// Other errors pass through untouched and surface as internal errors.
func (srv *oauthService) fail(ctx context.Context, f *flow, err error) error {
	from := f.state
	f.state = flowFailed

	authErr, ok := domainerrors.AsAuthError(err)
	if !ok {
		f.logger.Error("OAuth flow failed", slog.String("from", string(from)), slog.Any("error", err))

		return err
	}

	if authErr.Provider() == "" {
		authErr = authErr.WithProvider(f.provider)
	}

	reported := srv.reporter.Report(ctx, authErr)
	if reported == nil {
		reported = authErr
	}

	f.logger.Info("OAuth flow failed",
		slog.String("from", string(from)),
		slog.String("code", reported.ErrorCode()),
		slog.String("correlation_id", reported.CorrelationID()),
	)

	return reported
}

// asTaxonomy keeps taxonomy errors and classifies anything else as fallback.
func asTaxonomy(err error, fallback *domainerrors.AuthError) error {
	if _, ok := domainerrors.AsAuthError(err); ok {
		return err
	}

	return fallback.WithCause(err)
}

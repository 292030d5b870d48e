package impl

import (
	"context"
	"testing"
	"time"

	"envybase/internal/domain/entity"
	domainerrors "envybase/internal/domain/errors"
	"envybase/internal/domain/service"
	mockSvc "envybase/internal/mocks/service"
	mockUsecase "envybase/internal/mocks/usecase"
	"envybase/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type oauthServiceFixtures struct {
	service      usecase.OAuthUsecase
	registry     *mockSvc.MockProviderRegistry
	fetcher      *mockSvc.MockIdentityFetcher
	states       *mockSvc.MockStateStore
	reconciler   *mockUsecase.MockIdentityReconciler
	tokenService *mockSvc.MockTokenService
	publisher    *mockSvc.MockEventPublisher
	reporter     *mockSvc.MockErrorReporter
}

func createTestOAuthService(t *testing.T) oauthServiceFixtures {
	fx := oauthServiceFixtures{
		registry:     mockSvc.NewMockProviderRegistry(t),
		fetcher:      mockSvc.NewMockIdentityFetcher(t),
		states:       mockSvc.NewMockStateStore(t),
		reconciler:   mockUsecase.NewMockIdentityReconciler(t),
		tokenService: mockSvc.NewMockTokenService(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
		reporter:     mockSvc.NewMockErrorReporter(t),
	}

	fx.service = NewOAuthService(OAuthServiceParams{
		Config:       newTestConfig(),
		Registry:     fx.registry,
		States:       fx.states,
		Reconciler:   fx.reconciler,
		TokenService: fx.tokenService,
		Publisher:    fx.publisher,
		Reporter:     fx.reporter,
		Logger:       newDiscardLogger(),
	})

	return fx
}

// expectReport makes the reporter stamp a fixed correlation id.
func (fx oauthServiceFixtures) expectReport() {
	fx.reporter.EXPECT().
		Report(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, err error) *domainerrors.AuthError {
			authErr, _ := domainerrors.AsAuthError(err)

			return authErr.WithCorrelationID("corr-1")
		}).
		Once()
}

func (fx oauthServiceFixtures) expectValidState(ctx context.Context) {
	fx.registry.EXPECT().Fetcher("google").Return(fx.fetcher, true)
	fx.states.EXPECT().Consume(ctx, "state-1").Return("google", nil)
}

func requireReported(t *testing.T, err error, target *domainerrors.AuthError) *domainerrors.AuthError {
	t.Helper()

	require.ErrorIs(t, err, target)
	authErr, ok := domainerrors.AsAuthError(err)
	require.True(t, ok)
	assert.Equal(t, "corr-1", authErr.CorrelationID())
	assert.Equal(t, "google", authErr.Provider())

	return authErr
}

var validCallback = usecase.CallbackInput{Provider: "google", Code: "code-1", State: "state-1"}

func TestOAuthService_Authorize(t *testing.T) {
	fx := createTestOAuthService(t)
	ctx := context.Background()

	var savedState string
	fx.registry.EXPECT().Fetcher("google").Return(fx.fetcher, true)
	fx.states.EXPECT().
		Save(ctx, mock.AnythingOfType("string"), "google", 5*time.Minute).
		RunAndReturn(func(_ context.Context, state, _ string, _ time.Duration) error {
			savedState = state

			return nil
		})
	fx.fetcher.EXPECT().
		AuthCodeURL(mock.AnythingOfType("string")).
		RunAndReturn(func(state string) string { return "https://accounts.example.com/auth?state=" + state })

	url, err := fx.service.Authorize(ctx, "Google")
	require.NoError(t, err)
	assert.Len(t, savedState, 64)
	assert.Equal(t, "https://accounts.example.com/auth?state="+savedState, url)
}

func TestOAuthService_Authorize_UnsupportedProvider(t *testing.T) {
	fx := createTestOAuthService(t)

	fx.registry.EXPECT().Fetcher("myspace").Return(nil, false)
	fx.reporter.EXPECT().
		Report(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, err error) *domainerrors.AuthError {
			authErr, _ := domainerrors.AsAuthError(err)

			return authErr.WithCorrelationID("corr-2")
		})

	_, err := fx.service.Authorize(context.Background(), "myspace")
	require.ErrorIs(t, err, domainerrors.ErrUnsupportedProvider)
	authErr, _ := domainerrors.AsAuthError(err)
	assert.Equal(t, "corr-2", authErr.CorrelationID())
	assert.Equal(t, "myspace", authErr.Provider())
}

func TestOAuthService_Authorize_StateStoreDown(t *testing.T) {
	fx := createTestOAuthService(t)
	ctx := context.Background()

	fx.registry.EXPECT().Fetcher("google").Return(fx.fetcher, true)
	fx.states.EXPECT().Save(ctx, mock.Anything, "google", mock.Anything).Return(errors.New("redis: connection refused"))

	_, err := fx.service.Authorize(ctx, "google")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save oauth state")
}

func TestOAuthService_Callback_NewUser(t *testing.T) {
	fx := createTestOAuthService(t)
	ctx := context.Background()
	token := &service.ProviderToken{AccessToken: "at", IDToken: "id"}
	identity := googleIdentity("ada@example.com")
	user := &entity.User{Email: "ada@example.com", Subject: "ada@example.com", Provider: entity.ProviderTypeGoogle}

	fx.expectValidState(ctx)
	fx.fetcher.EXPECT().Exchange(ctx, "code-1").Return(token, nil)
	fx.fetcher.EXPECT().FetchIdentity(ctx, token).Return(identity, nil)
	fx.reconciler.EXPECT().Reconcile(ctx, identity).Return(user, true, nil)
	fx.tokenService.EXPECT().IssueToken(map[string]any{"sub": "ada@example.com"}).Return("signed.jwt", nil)
	fx.publisher.EXPECT().
		PublishAuthEvent(mock.Anything, mock.MatchedBy(func(e *entity.AuthEvent) bool {
			return e.Type == entity.AuthEventUserFederated && e.Created && e.Provider == entity.ProviderTypeGoogle
		})).
		Return(nil)

	out, err := fx.service.Callback(ctx, validCallback)
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt", out.AccessToken)
	assert.True(t, out.Created)
	assert.Same(t, user, out.User)
}

func TestOAuthService_Callback_RejectedBeforeExchange(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.CallbackInput
		setup func(fx oauthServiceFixtures, ctx context.Context)
	}{
		{
			name:  "provider error",
			input: usecase.CallbackInput{Provider: "google", Error: "access_denied", ErrorDescription: "user cancelled"},
		},
		{
			name:  "missing code",
			input: usecase.CallbackInput{Provider: "google", State: "state-1"},
		},
		{
			name:  "missing state",
			input: usecase.CallbackInput{Provider: "google", Code: "code-1"},
		},
		{
			name:  "unknown state",
			input: validCallback,
			setup: func(fx oauthServiceFixtures, ctx context.Context) {
				fx.states.EXPECT().Consume(ctx, "state-1").Return("", service.ErrStateNotFound)
			},
		},
		{
			name:  "state bound to another provider",
			input: validCallback,
			setup: func(fx oauthServiceFixtures, ctx context.Context) {
				fx.states.EXPECT().Consume(ctx, "state-1").Return("github", nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOAuthService(t)
			ctx := context.Background()

			fx.registry.EXPECT().Fetcher("google").Return(fx.fetcher, true)
			if tt.setup != nil {
				tt.setup(fx, ctx)
			}
			fx.expectReport()

			_, err := fx.service.Callback(ctx, tt.input)
			requireReported(t, err, domainerrors.ErrOAuth)
		})
	}
}

func TestOAuthService_Callback_UnsupportedProvider(t *testing.T) {
	fx := createTestOAuthService(t)

	fx.registry.EXPECT().Fetcher("google").Return(nil, false)
	fx.expectReport()

	_, err := fx.service.Callback(context.Background(), validCallback)
	requireReported(t, err, domainerrors.ErrUnsupportedProvider)
}

func TestOAuthService_Callback_ExchangeFailure(t *testing.T) {
	fx := createTestOAuthService(t)
	ctx := context.Background()

	fx.expectValidState(ctx)
	fx.fetcher.EXPECT().Exchange(ctx, "code-1").Return(nil, domainerrors.ErrOAuth.WithCause(errors.New("invalid_grant")))
	fx.expectReport()

	_, err := fx.service.Callback(ctx, validCallback)
	requireReported(t, err, domainerrors.ErrOAuth)
}

func TestOAuthService_Callback_UnclassifiedExchangeFailure(t *testing.T) {
	fx := createTestOAuthService(t)
	ctx := context.Background()

	fx.expectValidState(ctx)
	fx.fetcher.EXPECT().Exchange(ctx, "code-1").Return(nil, errors.New("boom"))
	fx.expectReport()

	_, err := fx.service.Callback(ctx, validCallback)
	requireReported(t, err, domainerrors.ErrToken)
}

func TestOAuthService_Callback_IdentityFailures(t *testing.T) {
	token := &service.ProviderToken{AccessToken: "at"}

	t.Run("userinfo failure", func(t *testing.T) {
		fx := createTestOAuthService(t)
		ctx := context.Background()

		fx.expectValidState(ctx)
		fx.fetcher.EXPECT().Exchange(ctx, "code-1").Return(token, nil)
		fx.fetcher.EXPECT().FetchIdentity(ctx, token).Return(nil, errors.New("502 bad gateway"))
		fx.expectReport()

		_, err := fx.service.Callback(ctx, validCallback)
		requireReported(t, err, domainerrors.ErrUserinfoFetch)
	})

	t.Run("missing email", func(t *testing.T) {
		fx := createTestOAuthService(t)
		ctx := context.Background()

		fx.expectValidState(ctx)
		fx.fetcher.EXPECT().Exchange(ctx, "code-1").Return(token, nil)
		fx.fetcher.EXPECT().FetchIdentity(ctx, token).Return(&entity.ExternalIdentity{Provider: entity.ProviderTypeGoogle}, nil)
		fx.expectReport()

		_, err := fx.service.Callback(ctx, validCallback)
		requireReported(t, err, domainerrors.ErrMissingEmail)
	})

	t.Run("provider mismatch", func(t *testing.T) {
		fx := createTestOAuthService(t)
		ctx := context.Background()
		identity := googleIdentity("ada@example.com")

		fx.expectValidState(ctx)
		fx.fetcher.EXPECT().Exchange(ctx, "code-1").Return(token, nil)
		fx.fetcher.EXPECT().FetchIdentity(ctx, token).Return(identity, nil)
		fx.reconciler.EXPECT().Reconcile(ctx, identity).Return(nil, false, domainerrors.ErrProviderMismatch.WithProvider("google"))
		fx.expectReport()

		_, err := fx.service.Callback(ctx, validCallback)
		requireReported(t, err, domainerrors.ErrProviderMismatch)
	})
}

func TestOAuthService_Callback_InternalFailureNotReported(t *testing.T) {
	fx := createTestOAuthService(t)
	ctx := context.Background()
	token := &service.ProviderToken{AccessToken: "at"}
	identity := googleIdentity("ada@example.com")

	fx.expectValidState(ctx)
	fx.fetcher.EXPECT().Exchange(ctx, "code-1").Return(token, nil)
	fx.fetcher.EXPECT().FetchIdentity(ctx, token).Return(identity, nil)
	fx.reconciler.EXPECT().Reconcile(ctx, identity).Return(nil, false, errors.New("connection refused"))

	_, err := fx.service.Callback(ctx, validCallback)
	require.Error(t, err)
	_, isAuthErr := domainerrors.AsAuthError(err)
	assert.False(t, isAuthErr)
}

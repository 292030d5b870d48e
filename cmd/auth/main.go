package main

import (
	"context"
	"log/slog"
	"os"

	"envybase/config"
	"envybase/internal/delivery"
	"envybase/internal/delivery/api"
	apimiddleware "envybase/internal/delivery/api/middleware"
	"envybase/internal/delivery/api/router/handler"
	"envybase/internal/infra/auth"
	"envybase/internal/infra/auth/oauth"
	logs "envybase/internal/infra/log"
	"envybase/internal/infra/persistence/mongo"
	"envybase/internal/infra/persistence/postgres"
	"envybase/internal/infra/pubsub"
	"envybase/internal/infra/redis"
	"envybase/internal/infra/reporter"
	"envybase/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		mongo.New,
		redis.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			mongo.NewRequestLogRepository,
			mongo.NewErrorLogRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			oauth.NewRegistry,
			redis.NewStateStore,
			pubsub.NewEventPublisher,
			reporter.NewErrorReporter,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewIdentityReconciler,
			impl.NewOAuthService,
			impl.NewStatsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
			apimiddleware.NewErrorMiddleware,
			apimiddleware.NewRequestLogMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewOAuthHandler,
			handler.NewSystemHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

package main

import (
	"context"
	"log/slog"
	"os"

	"railmadad/config"
	"railmadad/internal/delivery"
	"railmadad/internal/delivery/api"
	apimiddleware "railmadad/internal/delivery/api/middleware"
	"railmadad/internal/delivery/api/router/handler"
	"railmadad/internal/domain/constants"
	"railmadad/internal/domain/repository"
	"railmadad/internal/infra/auth"
	"railmadad/internal/infra/backend"
	"railmadad/internal/infra/captcha"
	"railmadad/internal/infra/firebase"
	logs "railmadad/internal/infra/log"
	"railmadad/internal/infra/persistence/memory"
	"railmadad/internal/infra/persistence/redisstore"
	"railmadad/internal/infra/pubsub"
	"railmadad/internal/infra/sms"
	"railmadad/internal/usecase/impl"

	"github.com/pkg/errors"
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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			firebase.NewApp,
			firebase.NewAuthClient,
			firebase.NewFirestoreClient,
		),
		pubsub.Module,
	)
}

// sessionStores are the snapshot and challenge repositories of the
// configured store.
type sessionStores struct {
	fx.Out

	Snapshots  repository.SnapshotRepository
	Challenges repository.ChallengeRepository
}

func newSessionStores(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (sessionStores, error) {
	switch cfg.Session.Store {
	case constants.SessionStoreRedis:
		client, err := redisstore.New(redisstore.Params{Lifecycle: lc, Config: cfg, Logger: logger})
		if err != nil {
			return sessionStores{}, err
		}
		logger.Info("Using Redis session store", slog.String("addr", cfg.Redis.Addr))

		return sessionStores{
			Snapshots:  redisstore.NewSnapshotRepository(client, cfg),
			Challenges: redisstore.NewChallengeRepository(client, cfg),
		}, nil

	case "", constants.SessionStoreMemory:
		logger.Info("Using in-memory session store")

		return sessionStores{
			Snapshots:  memory.NewSnapshotRepository(cfg.Session.TTL),
			Challenges: memory.NewChallengeRepository(),
		}, nil

	default:
		return sessionStores{}, errors.Errorf("unknown session store: %s", cfg.Session.Store)
	}
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newSessionStores,
			firebase.NewProfileStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			firebase.NewCredentialStore,
			backend.NewProfileClient,
			sms.NewTransport,
			captcha.NewVerifier,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewOTPChannel,
			impl.NewRouteGuard,
			impl.NewSessionReconciler,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
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

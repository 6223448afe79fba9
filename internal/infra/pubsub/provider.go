package pubsub

import (
	"context"
	"log/slog"
	"time"

	"railmadad/config"
	"railmadad/internal/domain/constants"
	"railmadad/internal/domain/entity"
	"railmadad/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const setupTimeout = 15 * time.Second

// chainPublisher delivers an event to the local broadcaster first and then
// to the configured external publisher. Both are attempted even if the
// first one fails.
type chainPublisher struct {
	publishers []service.RoleChangePublisher
}

func (p *chainPublisher) PublishRoleChanged(ctx context.Context, event *entity.RoleChangedEvent) error {
	var first error
	for _, publisher := range p.publishers {
		if err := publisher.PublishRoleChanged(ctx, event); err != nil && first == nil {
			first = err
		}
	}

	return first
}

func (p *chainPublisher) Close() error {
	var first error
	for _, publisher := range p.publishers {
		if err := publisher.Close(); err != nil && first == nil {
			first = err
		}
	}

	return first
}

// PublisherParams holds dependencies for RoleChangePublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc          fx.Lifecycle
	Config      *config.Config
	Logger      *slog.Logger
	Broadcaster *Broadcaster
}

// NewRoleChangePublisher creates a RoleChangePublisher based on configuration
func NewRoleChangePublisher(params PublisherParams) (service.RoleChangePublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	chain := &chainPublisher{publishers: []service.RoleChangePublisher{params.Broadcaster}}

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.PubSubProviderLocal {
		logger.Info("Using in-process role change broadcaster")
	} else {
		external, err := newExternalPublisher(cfg, logger)
		if err != nil {
			return nil, err
		}
		chain.publishers = append(chain.publishers, external)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing RoleChangePublisher")

			return chain.Close()
		},
	})

	return chain, nil
}

func newExternalPublisher(cfg *config.PubSubConfig, logger *slog.Logger) (service.RoleChangePublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderHTTP:
		if cfg.Endpoint == "" {
			return nil, errors.New("endpoint is required for http provider")
		}
		logger.Info("Using HTTP push publisher for role changes",
			slog.String("endpoint", cfg.Endpoint),
		)

		return NewHTTPPushPublisher(cfg.Endpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
		defer cancel()

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewBroadcaster,
		func(b *Broadcaster) service.RoleChangeFeed { return b },
		NewRoleChangePublisher,
	),
)

// Package pubsub publishes scheduled job events to the worker.
package pubsub

import (
	"context"
	"log/slog"

	"hivewatch/config"
	"hivewatch/internal/domain/constants"
	"hivewatch/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublisherParams holds dependencies for EventPublisher, injected by Fx.
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher selects the publisher matching the configured provider.
// Without a provider, job events are dropped with a warning.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("[PubSub] No provider configured, job events will be dropped")

		return &noopPublisher{logger: params.Logger}, nil
	}

	publisher, err := buildPublisher(params.Ctx, cfg, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func buildPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("[PubSub] Posting job events to the local worker", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}
}

// noopPublisher drops job events.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishJobEvent(_ context.Context, event *service.JobEvent) error {
	p.logger.Warn("[PubSub] Publishing disabled, job event dropped", slog.String("job", event.Job))

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

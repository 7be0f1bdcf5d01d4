// Package pubsub publishes video lifecycle events.
package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"vidtube/config"
	"vidtube/internal/domain/constants"
	"vidtube/internal/domain/service"
	"vidtube/internal/errors"

	"go.uber.org/fx"
)

type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the publisher named by pubsub.provider. An empty or
// missing section means events are dropped.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger.With(slog.String("component", "pubsub"))

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.PubSubProviderNoop {
		logger.Info("Video events disabled")

		return &noopPublisher{logger: logger}, nil
	}

	publisher, err := buildPublisher(params.Ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.StopHook(publisher.Close))

	return publisher, nil
}

func buildPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Pushing video events over HTTP", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Publishing video events to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishVideoEvent(ctx context.Context, event *service.VideoEvent) error {
	p.logger.DebugContext(ctx, "Video event dropped",
		slog.String("event_type", string(event.Type)),
		slog.String("video_id", event.VideoID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// encodeEvent returns the message payload and the attributes subscribers filter on.
func encodeEvent(event *service.VideoEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "encode %s event", event.Type)
	}

	attrs := map[string]string{
		"event_type": string(event.Type),
		"video_id":   event.VideoID,
		"owner_id":   event.OwnerID,
	}
	if event.RequestID != "" {
		attrs["request_id"] = event.RequestID
	}

	return data, attrs, nil
}

// Package pubsub publishes card lifecycle events to the configured broker.
package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/lifecycle"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/infra/metrics"

	"go.uber.org/fx"
)

// Provider names accepted in pubsub.provider
const (
	ProviderNoop   = "noop"
	ProviderLocal  = "local"
	ProviderGoogle = "google"
	ProviderAMQP   = "amqp"
)

// noopPublisher is a no-op implementation when Pub/Sub is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishCardEvent(ctx context.Context, event *entity.CardEvent) error {
	p.logger.DebugContext(ctx, "[NoopPubSub] Event publishing disabled, skipping",
		slog.String("event_id", event.ID.String()),
		slog.String("type", string(event.Type)),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc      fx.Lifecycle
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	// If PubSub is not configured, return a no-op publisher
	if cfg == nil || cfg.Provider == "" || cfg.Provider == ProviderNoop {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.EventPublisher
	var err error

	switch cfg.Provider {
	case ProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case ProviderGoogle:
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

		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		publisher, err = NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	case ProviderAMQP:
		if cfg.AMQPURL == "" || cfg.AMQPQueue == "" {
			return nil, errors.New("amqp url and queue are required for amqp provider")
		}
		logger.Info("Using AMQP publisher",
			slog.String("queue", cfg.AMQPQueue),
		)

		publisher, err = NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPQueue, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return &instrumentedPublisher{EventPublisher: publisher, metrics: params.Metrics}, nil
}

// instrumentedPublisher counts publish outcomes per event type.
type instrumentedPublisher struct {
	service.EventPublisher
	metrics *metrics.Metrics
}

func (p *instrumentedPublisher) PublishCardEvent(ctx context.Context, event *entity.CardEvent) error {
	err := p.EventPublisher.PublishCardEvent(ctx, event)
	p.metrics.ObserveEvent(string(event.Type), err)

	return err
}

// eventAttributes are attached to every message for filtering and tracing.
func eventAttributes(event *entity.CardEvent, requestID string) map[string]string {
	attributes := map[string]string{
		"event_id":   event.ID.String(),
		"event_type": string(event.Type),
		"user_id":    event.UserID.String(),
	}
	if event.CardID != "" {
		attributes["card_id"] = event.CardID
	}
	if requestID != "" {
		attributes["request_id"] = requestID
	}

	return attributes
}

// encodedEvent is the broker-neutral form of a card event.
type encodedEvent struct {
	payload    []byte
	attributes map[string]string
	requestID  string
}

func encodeEvent(ctx context.Context, event *entity.CardEvent) (encodedEvent, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return encodedEvent{}, errors.Wrapf(err, "encode %s event", event.Type)
	}

	requestID := deliverycontext.GetRequestIDFromContext(ctx)

	return encodedEvent{
		payload:    payload,
		attributes: eventAttributes(event, requestID),
		requestID:  requestID,
	}, nil
}

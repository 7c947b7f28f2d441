package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
)

const (
	localSubscription = "projects/local/subscriptions/card-events-sub"
	localPushTimeout  = 10 * time.Second
)

// PushMessage is the body Pub/Sub push subscriptions deliver to HTTP endpoints.
type PushMessage struct {
	Message      PushedMessage `json:"message"`
	Subscription string        `json:"subscription"`
}

// PushedMessage carries the base64 event payload.
type PushedMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

// localHTTPPublisher pushes events straight to a consumer endpoint in development.
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPushTimeout},
		logger:   logger,
	}
}

func (p *localHTTPPublisher) PublishCardEvent(ctx context.Context, event *entity.CardEvent) error {
	msg, err := encodeEvent(ctx, event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(PushMessage{
		Subscription: localSubscription,
		Message: PushedMessage{
			Data:        base64.StdEncoding.EncodeToString(msg.payload),
			Attributes:  msg.attributes,
			MessageID:   event.ID.String(),
			PublishTime: event.OccurredAt.UTC().Format(time.RFC3339Nano),
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrapf(err, "build push request to %s", p.endpoint)
	}
	req.Header.Set("Content-Type", "application/json")
	if msg.requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, msg.requestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "push %s", event.Type)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("push %s: endpoint answered %d", event.Type, resp.StatusCode)
	}

	p.logger.DebugContext(ctx, "Card event pushed to local endpoint",
		slog.String("endpoint", p.endpoint),
		slog.String("event_id", event.ID.String()),
		slog.String("type", string(event.Type)),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}

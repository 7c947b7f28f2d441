package pubsub

import (
	"context"
	"log/slog"
	"sync"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"

	"github.com/streadway/amqp"
)

// amqpPublisher implements EventPublisher on a durable RabbitMQ queue via the default exchange.
type amqpPublisher struct {
	conn   *amqp.Connection
	mu     sync.Mutex // amqp.Channel is not safe for concurrent publishes
	ch     *amqp.Channel
	queue  string
	logger *slog.Logger
}

// NewAMQPPublisher dials the broker and declares the queue
func NewAMQPPublisher(url, queue string, logger *slog.Logger) (service.EventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial amqp broker")
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()

		return nil, errors.Wrap(err, "failed to open amqp channel")
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return nil, errors.Join(
			errors.Wrapf(err, "failed to declare queue %s", queue),
			errors.CloseAll(ch.Close, conn.Close),
		)
	}

	return &amqpPublisher{
		conn:   conn,
		ch:     ch,
		queue:  queue,
		logger: logger,
	}, nil
}

// PublishCardEvent publishes a persistent JSON message
func (p *amqpPublisher) PublishCardEvent(ctx context.Context, event *entity.CardEvent) error {
	msg, err := encodeEvent(ctx, event)
	if err != nil {
		return err
	}

	headers := amqp.Table{}
	for k, v := range msg.attributes {
		headers[k] = v
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.Publish("", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID.String(),
		Timestamp:    event.OccurredAt,
		Type:         string(event.Type),
		Headers:      headers,
		Body:         msg.payload,
	})
	if err != nil {
		return errors.Wrap(err, "failed to publish amqp message")
	}

	p.logger.DebugContext(ctx, "[AMQP] Event published",
		slog.String("event_id", event.ID.String()),
		slog.String("type", string(event.Type)),
	)

	return nil
}

// Close closes the channel and the connection
func (p *amqpPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return errors.CloseAll(p.ch.Close, p.conn.Close)
}

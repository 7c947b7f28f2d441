package service

import (
	"context"

	"marketplace/internal/domain/entity"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCardEvent publishes a card or customer lifecycle event
	PublishCardEvent(ctx context.Context, event *entity.CardEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

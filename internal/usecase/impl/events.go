package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
)

// eventEmitter publishes lifecycle events after the processor change is committed.
// A failed publish is logged and swallowed: the processor state already changed.
type eventEmitter struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

func newEventEmitter(publisher service.EventPublisher, logger *slog.Logger) *eventEmitter {
	return &eventEmitter{publisher: publisher, logger: logger}
}

func (e *eventEmitter) emit(ctx context.Context, event *entity.CardEvent) {
	if e.publisher == nil {
		return
	}

	if err := e.publisher.PublishCardEvent(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, e.logger).Error("Failed to publish card event",
			slog.String("eventID", event.ID.String()),
			slog.String("type", string(event.Type)),
			slog.Any("userID", event.UserID),
			slog.Any("error", err),
		)
	}
}

// processorFailure maps a processor error onto the domain taxonomy.
func processorFailure(logger *slog.Logger, operation string, err error) error {
	logger.Warn("Payment processor call failed", slog.String("operation", operation), slog.Any("error", err))

	if errors.Is(err, service.ErrProcessorCardRejected) {
		return errors.Wrapf(domainerrors.ErrCardRejected, "%s: %v", operation, err)
	}

	return errors.Wrapf(domainerrors.ErrPaymentProcessorFailed, "%s: %v", operation, err)
}

package pubsub

import (
	"context"
	"log/slog"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// gcpPublisher sends card events to a Pub/Sub topic, ordered per user.
type gcpPublisher struct {
	client *pubsub.Client
	topic  *pubsub.Publisher
	logger *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and checks that topicID exists.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrapf(err, "pubsub client for project %s", projectID)
	}

	name := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: name}); err != nil {
		return nil, errors.Join(
			errors.Wrapf(err, "lookup topic %s", name),
			client.Close(),
		)
	}

	topic := client.Publisher(topicID)
	topic.EnableMessageOrdering = true

	return &gcpPublisher{client: client, topic: topic, logger: logger}, nil
}

// PublishCardEvent blocks until the server acknowledges the message.
func (p *gcpPublisher) PublishCardEvent(ctx context.Context, event *entity.CardEvent) error {
	msg, err := encodeEvent(ctx, event)
	if err != nil {
		return err
	}

	orderingKey := event.UserID.String()
	serverID, err := p.topic.Publish(ctx, &pubsub.Message{
		Data:        msg.payload,
		Attributes:  msg.attributes,
		OrderingKey: orderingKey,
	}).Get(ctx)
	if err != nil {
		// a failed publish pauses its ordering key
		p.topic.ResumePublish(orderingKey)

		return errors.Wrapf(err, "publish %s", event.Type)
	}

	p.logger.DebugContext(ctx, "Card event sent to Pub/Sub",
		slog.String("event_id", event.ID.String()),
		slog.String("type", string(event.Type)),
		slog.String("server_id", serverID),
	)

	return nil
}

func (p *gcpPublisher) Close() error {
	p.topic.Stop()

	return errors.WithStack(p.client.Close())
}

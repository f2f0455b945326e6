package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"hivewatch/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher publishes job events to a Google Cloud Pub/Sub topic.
// A push subscription on the topic delivers them to the worker's /push endpoint.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topic     string
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to the topic and fails when it does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	topic := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "topic %s is not reachable", topic)
	}

	publisher := client.Publisher(topic)
	// Job events are rare and latency matters more than batching.
	publisher.PublishSettings.CountThreshold = 1

	logger.Info("[PubSub] Publishing job events to Google Pub/Sub", slog.String("topic", topic))

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		topic:     topic,
		logger:    logger,
	}, nil
}

// PublishJobEvent blocks until the server acknowledged the message.
func (p *googlePubSubPublisher) PublishJobEvent(ctx context.Context, event *service.JobEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: jobAttributes(event),
	}).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "publish %s job event to %s", event.Job, p.topic)
	}

	p.logger.Info("[PubSub] Job event published",
		slog.String("job", event.Job),
		slog.String("request_id", event.RequestID),
		slog.String("message_id", serverID),
	)

	return nil
}

// Close flushes pending messages and closes the client.
func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}

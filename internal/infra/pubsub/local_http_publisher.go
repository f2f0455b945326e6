package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"hivewatch/internal/domain/service"
	"hivewatch/internal/errors"
)

const (
	localSubscription = "projects/local/subscriptions/hivewatch-jobs"
	// The worker answers once the job has run.
	localPushTimeout = 5 * time.Minute
)

// localHTTPPublisher posts job events straight to a worker's /push endpoint,
// standing in for a Pub/Sub push subscription during development.
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

func (p *localHTTPPublisher) PublishJobEvent(ctx context.Context, event *service.JobEvent) error {
	envelope, err := NewPushEnvelope(event, localSubscription)
	if err != nil {
		return err
	}
	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	logger := p.logger.With(slog.String("job", event.Job), slog.String("message_id", envelope.Message.MessageID))
	logger.Info("[LocalPubSub] Pushing job event", slog.String("endpoint", p.endpoint))

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "worker unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("worker answered %d", resp.StatusCode)
	}
	logger.Info("[LocalPubSub] Job event delivered")

	return nil
}

func (p *localHTTPPublisher) Close() error {
	return nil
}

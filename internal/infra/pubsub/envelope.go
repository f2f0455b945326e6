package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"hivewatch/internal/domain/service"
	"hivewatch/internal/errors"

	"github.com/google/uuid"
)

// PushEnvelope is the body Pub/Sub posts to a push subscription endpoint.
// The local publisher produces the same shape so the worker cannot tell them apart.
type PushEnvelope struct {
	Message      PushedMessage `json:"message"`
	Subscription string        `json:"subscription"`
}

type PushedMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

// NewPushEnvelope wraps event the way Pub/Sub would deliver it.
func NewPushEnvelope(event *service.JobEvent, subscription string) (*PushEnvelope, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode job event")
	}

	return &PushEnvelope{
		Message: PushedMessage{
			Data:        base64.StdEncoding.EncodeToString(data),
			Attributes:  jobAttributes(event),
			MessageID:   uuid.NewString(),
			PublishTime: time.Now().UTC().Format(time.RFC3339),
		},
		Subscription: subscription,
	}, nil
}

// JobEvent decodes the event carried in the message data.
func (e *PushEnvelope) JobEvent() (service.JobEvent, error) {
	var event service.JobEvent

	data, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return event, errors.Wrap(err, "message data is not base64")
	}
	if err := json.Unmarshal(data, &event); err != nil {
		return event, errors.Wrap(err, "message data is not a job event")
	}

	return event, nil
}

// jobAttributes lets subscriptions filter on the job without decoding the data.
func jobAttributes(event *service.JobEvent) map[string]string {
	attributes := map[string]string{"job": event.Job}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}
	if event.RunDate != nil {
		attributes["run_date"] = event.RunDate.Format(time.DateOnly)
	}

	return attributes
}

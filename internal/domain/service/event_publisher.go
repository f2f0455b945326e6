package service

import (
	"context"
	"time"
)

// Job names carried by JobEvent.
const (
	JobDailyNotifications = "daily_notifications"
	JobGPSSweep           = "gps_sweep"
)

// JobEvent asks the worker to run one scheduled job.
type JobEvent struct {
	RequestID string     `json:"request_id,omitempty"` // For distributed tracing
	Job       string     `json:"job"`
	RunDate   *time.Time `json:"run_date,omitempty"` // Overrides "today" for daily_notifications
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishJobEvent publishes a job event for async processing
	PublishJobEvent(ctx context.Context, event *JobEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// Package service defines the ports to external systems used by the use cases.
package service

import (
	"context"

	"hivewatch/internal/errors"
)

// ErrPushDisabled is returned when no push provider is configured.
var ErrPushDisabled = errors.New("push notifications disabled")

// MaxPushBatchSize is the largest multicast accepted by the push provider.
const MaxPushBatchSize = 500

// PushMessage is the content of one push notification.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushResult summarizes a multicast send.
type PushResult struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string // Tokens the provider reported as unregistered or malformed.
}

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendBatchNotification sends one message to at most MaxPushBatchSize device tokens
	SendBatchNotification(ctx context.Context, tokens []string, msg PushMessage) (*PushResult, error)
}

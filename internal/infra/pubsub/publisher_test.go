package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hivewatch/config"
	"hivewatch/internal/domain/constants"
	"hivewatch/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestLocalHTTPPublisher_PublishJobEvent(t *testing.T) {
	var received PushEnvelope
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &received)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))
	runDate := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	err := publisher.PublishJobEvent(context.Background(), &service.JobEvent{
		RequestID: "req-1",
		Job:       service.JobDailyNotifications,
		RunDate:   &runDate,
	})
	require.NoError(t, err)

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, service.JobDailyNotifications, received.Message.Attributes["job"])
	assert.Equal(t, "2026-03-01", received.Message.Attributes["run_date"])

	event, err := received.JobEvent()
	require.NoError(t, err)
	assert.Equal(t, service.JobDailyNotifications, event.Job)
	require.NotNil(t, event.RunDate)
	assert.True(t, runDate.Equal(*event.RunDate))
}

func TestLocalHTTPPublisher_WorkerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))

	err := publisher.PublishJobEvent(context.Background(), &service.JobEvent{Job: service.JobGPSSweep})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "worker answered 503")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{name: "not configured", cfg: nil},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "jobs"}, wantErr: true},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: slog.New(slog.DiscardHandler),
			})
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
		})
	}
}

func TestPushEnvelope_JobEvent(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{name: "valid", data: "eyJqb2IiOiJncHNfc3dlZXAifQ=="},
		{name: "not base64", data: "%%%", wantErr: true},
		{name: "not a job event", data: "am9iPXN3ZWVw", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envelope := PushEnvelope{Message: PushedMessage{Data: tt.data}}

			event, err := envelope.JobEvent()
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, service.JobGPSSweep, event.Job)
		})
	}
}

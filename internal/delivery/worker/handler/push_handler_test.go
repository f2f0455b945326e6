package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hivewatch/config"
	"hivewatch/internal/domain/constants"
	"hivewatch/internal/domain/service"
	"hivewatch/internal/errors"
	"hivewatch/internal/infra/pubsub"
	mockUsecase "hivewatch/internal/mocks/usecase"
	"hivewatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPushHandler(t *testing.T, provider, env string) (*PushHandler, *mockUsecase.MockJobUsecase) {
	jobUC := mockUsecase.NewMockJobUsecase(t)
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: provider}}
	cfg.Env.Env = env
	h := NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		JobUC:  jobUC,
	})

	return h, jobUC
}

func pushBody(t *testing.T, payload any, attributes map[string]string) string {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)

	msg := pubsub.PushEnvelope{
		Message: pubsub.PushedMessage{
			Data:       base64.StdEncoding.EncodeToString(data),
			Attributes: attributes,
			MessageID:  "1234",
		},
		Subscription: "projects/hivewatch/subscriptions/jobs-push",
	}
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_RunsJob(t *testing.T) {
	h, jobUC := createTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)
	runDate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	jobUC.EXPECT().
		RunJob(mock.Anything, mock.MatchedBy(func(e service.JobEvent) bool {
			return e.Job == service.JobDailyNotifications && e.RequestID == "req-from-attributes" &&
				e.RunDate != nil && e.RunDate.Equal(runDate)
		})).
		Return(&usecase.JobResult{
			Job:   service.JobDailyNotifications,
			Daily: &usecase.DailyRunReport{Date: "2026-09-01", Seasonal: 5, Created: 5},
		}, nil)

	rec := servePush(h, pushBody(t,
		service.JobEvent{RequestID: "req-from-event", Job: service.JobDailyNotifications, RunDate: &runDate},
		map[string]string{"request_id": "req-from-attributes"}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"seasonal":5`)
}

func TestPushHandler_Failures(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "already running is acknowledged", err: errors.WithStack(usecase.ErrJobAlreadyRunning), wantCode: http.StatusOK},
		{name: "unknown job is acknowledged", err: errors.Wrap(usecase.ErrUnknownJob, "compact_hives"), wantCode: http.StatusOK},
		{name: "other failures are retried", err: errors.New("db down"), wantCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, jobUC := createTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)
			jobUC.EXPECT().RunJob(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := servePush(h, pushBody(t, service.JobEvent{Job: service.JobGPSSweep}, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestPushHandler_MalformedMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not JSON", body: `{"message":`},
		{name: "data not base64", body: `{"message":{"data":"%%%"}}`},
		{name: "event not JSON", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("job=sweep")) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := createTestPushHandler(t, constants.PubSubProviderLocal, constants.EnvDevelop)

			rec := servePush(h, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesGooglePushToken(t *testing.T) {
	h, jobUC := createTestPushHandler(t, constants.PubSubProviderGoogle, constants.EnvProduction)
	require.True(t, h.verifyPushAuth)

	t.Run("rejected", func(t *testing.T) {
		h.verifyToken = func(*http.Request) error { return errors.New("invalid audience") }

		rec := servePush(h, pushBody(t, service.JobEvent{Job: service.JobGPSSweep}, nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("accepted", func(t *testing.T) {
		h.verifyToken = func(*http.Request) error { return nil }
		jobUC.EXPECT().RunJob(mock.Anything, mock.Anything).
			Return(&usecase.JobResult{Job: service.JobGPSSweep, Sweep: &usecase.SweepReport{Checked: 1}}, nil)

		rec := servePush(h, pushBody(t, service.JobEvent{Job: service.JobGPSSweep}, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestPushHandler_LocalProviderSkipsVerification(t *testing.T) {
	h, _ := createTestPushHandler(t, constants.PubSubProviderGoogle, constants.EnvDevelop)

	assert.False(t, h.verifyPushAuth)
}

func TestVerifyPubSubToken_MissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)

	require.Error(t, verifyPubSubToken(req))

	req.Header.Set(echo.HeaderAuthorization, "Basic abc")
	require.Error(t, verifyPubSubToken(req))
}

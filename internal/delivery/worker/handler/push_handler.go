package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"hivewatch/config"
	deliverycontext "hivewatch/internal/delivery/context"
	"hivewatch/internal/domain/constants"
	"hivewatch/internal/domain/service"
	"hivewatch/internal/errors"
	"hivewatch/internal/infra/pubsub"
	"hivewatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

var googleIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

// errRetry marks failures Pub/Sub should redeliver.
var errRetry = errors.New("retryable")

// PushHandler runs the scheduled jobs delivered by a Pub/Sub push subscription.
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	jobUC          usecase.JobUsecase
	verifyToken    func(req *http.Request) error
}

type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	JobUC  usecase.JobUsecase
}

func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google attaches an OIDC token; the local publisher posts unsigned.
	google := params.Config.PubSub != nil && params.Config.PubSub.Provider == constants.PubSubProviderGoogle

	return &PushHandler{
		verifyPushAuth: google && params.Config.Env.Env != constants.EnvDevelop,
		logger:         params.Logger,
		jobUC:          params.JobUC,
		verifyToken:    verifyPubSubToken,
	}
}

// HandlePush runs the job carried by a push envelope.
// Status codes drive Pub/Sub: 2xx acknowledges, 503 redelivers, 400 sends a malformed
// message to the dead-letter topic after the configured attempts.
func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Rejected push request", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope pubsub.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.Error("[Worker] Malformed push envelope", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}
	event, err := envelope.JobEvent()
	if err != nil {
		h.logger.Error("[Worker] Malformed job event",
			slog.String("message_id", envelope.Message.MessageID), slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event.RequestID = pushRequestID(c.Request().Context(), &envelope, &event)
	logger := h.logger.With(slog.String("request_id", event.RequestID), slog.String("job", event.Job))
	ctx := deliverycontext.WithRequestID(c.Request().Context(), event.RequestID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	logger.Info("[Worker] Running job", slog.String("message_id", envelope.Message.MessageID))

	result, err := h.runJob(ctx, event)
	switch {
	case errors.Is(err, errRetry):
		logger.Error("[Worker] Job failed, asking for redelivery", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	case err != nil:
		logger.Error("[Worker] Job rejected", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	case result == nil:
		return c.NoContent(http.StatusOK)
	}

	logger.Info("[Worker] Job completed")

	return c.JSON(http.StatusOK, result)
}

// runJob returns nil, nil when another instance holds the job, and wraps errRetry
// around every failure worth redelivering.
func (h *PushHandler) runJob(ctx context.Context, event service.JobEvent) (*usecase.JobResult, error) {
	result, err := h.jobUC.RunJob(ctx, event)
	switch {
	case err == nil:
		return result, nil
	case errors.Is(err, usecase.ErrJobAlreadyRunning):
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Job already running elsewhere, acknowledging")

		return nil, nil
	case errors.Is(err, usecase.ErrUnknownJob):
		return nil, err
	default:
		return nil, errors.Join(errRetry, err)
	}
}

// pushRequestID prefers the message attribute, then the event, then the HTTP request.
func pushRequestID(ctx context.Context, envelope *pubsub.PushEnvelope, event *service.JobEvent) string {
	for _, id := range []string{
		envelope.Message.Attributes["request_id"],
		event.RequestID,
		deliverycontext.GetRequestIDFromContext(ctx),
	} {
		if id != "" {
			return id
		}
	}

	return uuid.NewString()
}

// verifyPubSubToken checks the OIDC token Google attaches to authenticated push
// subscriptions. The audience is the push endpoint URL.
func verifyPubSubToken(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	payload, err := idtoken.Validate(req.Context(), token, scheme+"://"+req.Host+req.URL.Path)
	if err != nil {
		return errors.Wrap(err, "invalid push token")
	}
	if !googleIssuers[payload.Issuer] {
		return errors.Errorf("unexpected issuer %q", payload.Issuer)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("push service account email not verified")
	}

	return nil
}

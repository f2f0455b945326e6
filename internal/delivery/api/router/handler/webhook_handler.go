package handler

import (
	"log/slog"
	"net/http"

	"hivewatch/internal/delivery/api/response"
	"hivewatch/internal/delivery/api/validator"
	deliverycontext "hivewatch/internal/delivery/context"
	"hivewatch/internal/domain/entity"
	domainerrors "hivewatch/internal/domain/errors"
	"hivewatch/internal/domain/service"
	"hivewatch/internal/errors"
	"hivewatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const hasuraUserIDVariable = "x-hasura-user-id"

// WebhookHandlerParams holds dependencies for WebhookHandler, injected by Fx.
type WebhookHandlerParams struct {
	fx.In

	NotifierUC usecase.InterventionNotifierUsecase
	JobUC      usecase.JobUsecase
	Logger     *slog.Logger
}

// WebhookHandler serves the data-API event triggers.
type WebhookHandler struct {
	notifierUC usecase.InterventionNotifierUsecase
	jobUC      usecase.JobUsecase
	logger     *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler.
func NewWebhookHandler(params WebhookHandlerParams) *WebhookHandler {
	return &WebhookHandler{
		notifierUC: params.NotifierUC,
		jobUC:      params.JobUC,
		logger:     params.Logger,
	}
}

// InterventionEventRequest is the event trigger payload for an intervention insert.
type InterventionEventRequest struct {
	Event InterventionEvent `json:"event" validate:"required"`
}

// InterventionEvent carries the inserted row and the session of its author.
type InterventionEvent struct {
	SessionVariables map[string]string `json:"session_variables"`
	Data             struct {
		New InterventionRow `json:"new" validate:"required"`
	} `json:"data"`
}

// InterventionRow is the inserted intervention.
type InterventionRow struct {
	ID      string `json:"id" validate:"omitempty,uuid"`
	RucheID string `json:"ruche_id" validate:"required,uuid"`
	Type    string `json:"type" validate:"required"`
}

// CreatedResponse reports how many notifications a webhook created.
type CreatedResponse struct {
	Created int `json:"created"`
}

// InterventionCreated notifies the team of a new intervention.
func (h *WebhookHandler) InterventionCreated(c echo.Context) error {
	var req InterventionEventRequest
	if err := c.Bind(&req); err != nil {
		return response.AppError(c, domainerrors.ErrValidationFailed.WithDetails("invalid JSON payload"))
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(), validator.FieldErrors(err))
	}

	event, err := toInterventionCreated(req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	created, err := h.notifierUC.NotifyInterventionCreated(c.Request().Context(), event)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, CreatedResponse{Created: created})
}

func toInterventionCreated(req InterventionEventRequest) (usecase.InterventionCreated, error) {
	row := req.Event.Data.New

	actorID, err := uuid.Parse(req.Event.SessionVariables[hasuraUserIDVariable])
	if err != nil {
		return usecase.InterventionCreated{}, domainerrors.ErrValidationFailed.WithDetails("missing or invalid " + hasuraUserIDVariable)
	}

	kind, err := entity.ParseInterventionKind(row.Type)
	if err != nil {
		return usecase.InterventionCreated{}, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	event := usecase.InterventionCreated{
		HiveID:  uuid.MustParse(row.RucheID),
		ActorID: actorID,
		Kind:    kind,
	}
	if row.ID != "" {
		event.InterventionID = uuid.MustParse(row.ID)
	}

	return event, nil
}

// DailyNotifications runs the daily notification rules for today under the job lock.
func (h *WebhookHandler) DailyNotifications(c echo.Context) error {
	ctx := c.Request().Context()

	result, err := h.jobUC.RunJob(ctx, service.JobEvent{
		RequestID: deliverycontext.GetRequestID(c),
		Job:       service.JobDailyNotifications,
	})
	if errors.Is(err, usecase.ErrJobAlreadyRunning) {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Webhook] Daily notifications already running")

		return response.Error(c, http.StatusConflict, "JOB_ALREADY_RUNNING", "Les notifications du jour sont deja en cours de generation", nil)
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result.Daily)
}

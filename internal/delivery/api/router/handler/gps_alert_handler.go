package handler

import (
	"net/http"

	"hivewatch/internal/delivery/api/middleware"
	"hivewatch/internal/delivery/api/response"
	domainerrors "hivewatch/internal/domain/errors"
	"hivewatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GPSAlertHandlerParams holds dependencies for GPSAlertHandler, injected by Fx.
type GPSAlertHandlerParams struct {
	fx.In

	GeofenceUC usecase.GeofenceUsecase
}

// GPSAlertHandler serves the interactive geofence endpoints.
type GPSAlertHandler struct {
	geofenceUC usecase.GeofenceUsecase
}

// NewGPSAlertHandler is the constructor for GPSAlertHandler.
func NewGPSAlertHandler(params GPSAlertHandlerParams) *GPSAlertHandler {
	return &GPSAlertHandler{
		geofenceUC: params.GeofenceUC,
	}
}

// ThresholdRequest is the optional body of activate and check.
type ThresholdRequest struct {
	ThresholdMeters *float64 `json:"thresholdMeters"`
}

// Activate arms the geofence of a sensor at its current position.
func (h *GPSAlertHandler) Activate(c echo.Context) error {
	actor, sensorID, err := sensorRequest(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ThresholdRequest
	if err := c.Bind(&req); err != nil {
		return response.AppError(c, domainerrors.ErrValidationFailed.WithDetails("invalid request body"))
	}

	result, err := h.geofenceUC.Activate(c.Request().Context(), actor, sensorID, req.ThresholdMeters)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// Check compares the current position of a sensor with its reference.
func (h *GPSAlertHandler) Check(c echo.Context) error {
	actor, sensorID, err := sensorRequest(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ThresholdRequest
	if err := c.Bind(&req); err != nil {
		return response.AppError(c, domainerrors.ErrValidationFailed.WithDetails("invalid request body"))
	}

	result, err := h.geofenceUC.Check(c.Request().Context(), actor, sensorID, req.ThresholdMeters)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// Deactivate disarms the geofence of a sensor.
func (h *GPSAlertHandler) Deactivate(c echo.Context) error {
	actor, sensorID, err := sensorRequest(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.geofenceUC.Deactivate(c.Request().Context(), actor, sensorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// Status lists the unacknowledged displacement alerts of a sensor.
func (h *GPSAlertHandler) Status(c echo.Context) error {
	actor, sensorID, err := sensorRequest(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.geofenceUC.Status(c.Request().Context(), actor, sensorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// Clear deletes the unacknowledged displacement alerts of a sensor.
func (h *GPSAlertHandler) Clear(c echo.Context) error {
	actor, sensorID, err := sensorRequest(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.geofenceUC.Clear(c.Request().Context(), actor, sensorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// ApiaryStatus summarizes the GPS sensors of an apiary.
func (h *GPSAlertHandler) ApiaryStatus(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.AppError(c, domainerrors.ErrInvalidToken)
	}

	apiaryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.AppError(c, domainerrors.ErrValidationFailed.WithDetails("invalid apiary id"))
	}

	result, err := h.geofenceUC.ApiaryStatus(c.Request().Context(), actor, apiaryID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// sensorRequest resolves the caller and the sensor path parameter.
func sensorRequest(c echo.Context) (usecase.Actor, uuid.UUID, error) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return usecase.Actor{}, uuid.Nil, domainerrors.ErrInvalidToken
	}

	sensorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return usecase.Actor{}, uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid sensor id")
	}

	return actor, sensorID, nil
}

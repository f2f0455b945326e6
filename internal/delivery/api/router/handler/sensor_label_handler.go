package handler

import (
	"net/http"

	"hivewatch/internal/delivery/api/response"
	"hivewatch/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SensorLabelHandlerParams holds dependencies for SensorLabelHandler, injected by Fx.
type SensorLabelHandlerParams struct {
	fx.In

	LabelUC usecase.SensorLabelUsecase
}

// SensorLabelHandler serves printable sensor labels.
type SensorLabelHandler struct {
	labelUC usecase.SensorLabelUsecase
}

// NewSensorLabelHandler is the constructor for SensorLabelHandler.
func NewSensorLabelHandler(params SensorLabelHandlerParams) *SensorLabelHandler {
	return &SensorLabelHandler{labelUC: params.LabelUC}
}

// Label returns the QR code label of a sensor as PNG.
func (h *SensorLabelHandler) Label(c echo.Context) error {
	actor, sensorID, err := sensorRequest(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.labelUC.Label(c.Request().Context(), actor, sensorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "private, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}

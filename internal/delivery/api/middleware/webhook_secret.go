package middleware

import (
	"crypto/subtle"
	"log/slog"

	"hivewatch/config"
	"hivewatch/internal/delivery/api/response"
	domainerrors "hivewatch/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// WebhookMiddleware checks the shared secret sent by the data-API event triggers.
type WebhookMiddleware struct {
	header string
	secret []byte
}

// NewWebhookMiddleware creates a WebhookMiddleware. An empty secret disables the check.
func NewWebhookMiddleware(cfg *config.Config, logger *slog.Logger) *WebhookMiddleware {
	m := &WebhookMiddleware{header: cfg.Webhook.Header, secret: []byte(cfg.Webhook.Secret)}
	if len(m.secret) == 0 {
		logger.Warn("[Webhook] No webhook secret configured, webhook calls are not authenticated")
	}

	return m
}

// Verify rejects requests whose secret header does not match.
func (m *WebhookMiddleware) Verify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if len(m.secret) == 0 {
			return next(c)
		}

		got := []byte(c.Request().Header.Get(m.header))
		if subtle.ConstantTimeCompare(got, m.secret) != 1 {
			return response.AppError(c, domainerrors.ErrWebhookUnauthorized)
		}

		return next(c)
	}
}

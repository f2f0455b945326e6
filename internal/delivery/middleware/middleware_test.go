package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hivewatch/config"
	deliverycontext "hivewatch/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestEcho(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, deliverycontext.GetRequestID(c))
	})
	e.GET("/boom", func(echo.Context) error {
		return errors.New("db down")
	})

	return e
}

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "reuses caller id", incoming: "hasura-7f3a", keep: true},
		{name: "generates when missing", incoming: ""},
		{name: "replaces ids with spaces", incoming: "not valid"},
		{name: "replaces oversized ids", incoming: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(&bytes.Buffer{}, false)
			req := httptest.NewRequest(http.MethodGet, "/ok", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, rec.Body.String())
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
			} else {
				assert.NotEqual(t, tt.incoming, got)
				assert.Len(t, got, 36)
			}
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	t.Run("quiet outside debug", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, false)

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Empty(t, buf.String())
	})

	t.Run("server errors are always logged", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, false)
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "status=500")
		assert.Contains(t, buf.String(), "request_id=")
	})

	t.Run("debug logs every request", func(t *testing.T) {
		var buf bytes.Buffer
		e := newTestEcho(&buf, true)

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok?hive=R-12", nil))

		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "hive=R-12")
	})
}

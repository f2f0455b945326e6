package traccar

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hivewatch/config"
	"hivewatch/internal/domain/service"
	"hivewatch/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, tc config.TraccarConfig) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	if tc.BaseURL == "" {
		tc.BaseURL = server.URL + "/"
	}

	return NewClient(&config.Config{Traccar: &tc}, slog.New(slog.DiscardHandler))
}

func requireProviderError(t *testing.T, err error, code string, status int) {
	t.Helper()

	var providerErr *service.ProviderError
	require.True(t, errors.As(err, &providerErr), "expected ProviderError, got %v", err)
	assert.Equal(t, code, providerErr.Code)
	assert.Equal(t, status, providerErr.StatusCode)
}

func TestLatestPosition_TokenAuth(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer my-token", r.Header.Get("Authorization"))

		switch r.URL.Path {
		case "/api/devices":
			assert.Equal(t, "GPS-001", r.URL.Query().Get("uniqueId"))
			_, _ = w.Write([]byte(`[{"id":7,"name":"Ruche 12","uniqueId":"GPS-001"}]`))
		case "/api/positions":
			assert.Equal(t, "7", r.URL.Query().Get("deviceId"))
			assert.Equal(t, "1", r.URL.Query().Get("limit"))
			_, _ = w.Write([]byte(`[{"id":99,"deviceId":7,"latitude":44.0,"longitude":4.0,"fixTime":"2026-03-01T10:00:00Z"}]`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}, config.TraccarConfig{Token: " my-token "})

	pos, err := client.LatestPosition(context.Background(), "GPS-001")
	require.NoError(t, err)
	require.NotNil(t, pos)
	assert.Equal(t, 44.0, pos.Latitude)
	assert.Equal(t, 4.0, pos.Longitude)
	require.NotNil(t, pos.FixTime)
	assert.True(t, pos.FixTime.Equal(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)))
}

func TestLatestPosition_BasicAuth(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "admin", user)
		assert.Equal(t, "secret", pass)
		_, _ = w.Write([]byte(`[]`))
	}, config.TraccarConfig{User: "admin", Password: "secret"})

	pos, err := client.LatestPosition(context.Background(), "GPS-404")
	require.NoError(t, err)
	assert.Nil(t, pos)
}

func TestLatestPosition_NoFix(t *testing.T) {
	tests := []struct {
		name      string
		positions string
	}{
		{"empty positions", `[]`},
		{"missing coordinates", `[{"id":1,"deviceId":7}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/api/devices" {
					_, _ = w.Write([]byte(`[{"id":7}]`))

					return
				}
				_, _ = w.Write([]byte(tt.positions))
			}, config.TraccarConfig{Token: "t"})

			pos, err := client.LatestPosition(context.Background(), "GPS-001")
			require.NoError(t, err)
			assert.Nil(t, pos)
		})
	}
}

func TestLatestPosition_UpstreamFailures(t *testing.T) {
	t.Run("devices endpoint fails", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}, config.TraccarConfig{Token: "t"})

		_, err := client.LatestPosition(context.Background(), "GPS-001")
		requireProviderError(t, err, service.ProviderErrGetFailed, http.StatusUnauthorized)
		assert.Equal(t, "traccar_get_failed:401", err.Error())
	})

	t.Run("positions endpoint fails", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api/devices" {
				_, _ = w.Write([]byte(`[{"id":7}]`))

				return
			}
			w.WriteHeader(http.StatusInternalServerError)
		}, config.TraccarConfig{Token: "t"})

		_, err := client.LatestPosition(context.Background(), "GPS-001")
		requireProviderError(t, err, service.ProviderErrPositionsFailed, http.StatusInternalServerError)
	})

	t.Run("malformed body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{not json`))
		}, config.TraccarConfig{Token: "t"})

		_, err := client.LatestPosition(context.Background(), "GPS-001")
		requireProviderError(t, err, service.ProviderErrTransport, 0)
	})
}

func TestLatestPosition_Configuration(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.TraccarConfig
		code string
	}{
		{"no traccar section", nil, service.ProviderErrNotConfigured},
		{"no base url", &config.TraccarConfig{Token: "t"}, service.ProviderErrNotConfigured},
		{"no credentials", &config.TraccarConfig{BaseURL: "http://traccar:8082"}, service.ProviderErrCredentialsMissing},
		{"user without password", &config.TraccarConfig{BaseURL: "http://traccar:8082", User: "admin"}, service.ProviderErrCredentialsMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(&config.Config{Traccar: tt.cfg}, slog.New(slog.DiscardHandler))

			_, err := client.LatestPosition(context.Background(), "GPS-001")
			requireProviderError(t, err, tt.code, 0)
		})
	}
}

func TestNewClient_DefaultTimeout(t *testing.T) {
	client := NewClient(&config.Config{Traccar: &config.TraccarConfig{}}, slog.New(slog.DiscardHandler))
	assert.Equal(t, defaultTimeout, client.httpClient.Timeout)

	client = NewClient(&config.Config{Traccar: &config.TraccarConfig{Timeout: 2 * time.Second}}, slog.New(slog.DiscardHandler))
	assert.Equal(t, 2*time.Second, client.httpClient.Timeout)
}

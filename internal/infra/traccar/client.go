// Package traccar implements the GPS position provider on top of the Traccar REST API.
package traccar

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"hivewatch/config"
	"hivewatch/internal/domain/entity"
	"hivewatch/internal/domain/service"
	"hivewatch/internal/errors"
)

const defaultTimeout = 5 * time.Second

type device struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	UniqueID string `json:"uniqueId"`
}

type position struct {
	ID        int64      `json:"id"`
	DeviceID  int64      `json:"deviceId"`
	Latitude  *float64   `json:"latitude"`
	Longitude *float64   `json:"longitude"`
	FixTime   *time.Time `json:"fixTime"`
}

// Client queries a Traccar server for the latest position of a device.
type Client struct {
	baseURL    string
	token      string
	user       string
	password   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Traccar client from configuration. A missing base URL is reported on each call,
// not at construction, so the API still starts without a tracking server.
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	tc := cfg.Traccar
	if tc == nil {
		tc = &config.TraccarConfig{}
	}

	timeout := tc.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:  strings.TrimRight(tc.BaseURL, "/"),
		token:    strings.TrimSpace(tc.Token),
		user:     tc.User,
		password: tc.Password,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// NewPositionProvider exposes the client as the domain port for fx.
func NewPositionProvider(cfg *config.Config, logger *slog.Logger) service.PositionProvider {
	return NewClient(cfg, logger)
}

// LatestPosition resolves the device by its unique identifier and returns its most recent fix.
// It returns (nil, nil) when the device is unknown, has no position, or the fix lacks coordinates.
func (c *Client) LatestPosition(ctx context.Context, identifier string) (*entity.Position, error) {
	if err := c.ensureConfigured(); err != nil {
		return nil, err
	}

	dev, err := c.deviceByUniqueID(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if dev == nil || dev.ID == 0 {
		return nil, nil
	}

	query := url.Values{}
	query.Set("deviceId", strconv.FormatInt(dev.ID, 10))
	query.Set("limit", "1")

	var positions []position
	if err := c.get(ctx, "/api/positions", query, service.ProviderErrPositionsFailed, &positions); err != nil {
		return nil, err
	}
	if len(positions) == 0 {
		return nil, nil
	}

	latest := positions[0]
	if latest.Latitude == nil || latest.Longitude == nil {
		c.logger.WarnContext(ctx, "[Traccar] Position without coordinates",
			slog.String("identifier", identifier),
			slog.Int64("position_id", latest.ID),
		)

		return nil, nil
	}

	return &entity.Position{
		Latitude:  *latest.Latitude,
		Longitude: *latest.Longitude,
		FixTime:   latest.FixTime,
	}, nil
}

func (c *Client) deviceByUniqueID(ctx context.Context, identifier string) (*device, error) {
	query := url.Values{}
	query.Set("uniqueId", identifier)

	var devices []device
	if err := c.get(ctx, "/api/devices", query, service.ProviderErrGetFailed, &devices); err != nil {
		return nil, err
	}
	if len(devices) == 0 {
		return nil, nil
	}

	return &devices[0], nil
}

func (c *Client) ensureConfigured() error {
	if c.baseURL == "" {
		return &service.ProviderError{Code: service.ProviderErrNotConfigured}
	}
	if c.token != "" {
		return nil
	}
	if c.user == "" || c.password == "" {
		return &service.ProviderError{Code: service.ProviderErrCredentialsMissing}
	}

	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, failureCode string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return &service.ProviderError{Code: service.ProviderErrTransport, Err: errors.WithStack(err)}
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	} else {
		req.SetBasicAuth(c.user, c.password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &service.ProviderError{Code: service.ProviderErrTransport, Err: errors.WithStack(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &service.ProviderError{Code: failureCode, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &service.ProviderError{Code: service.ProviderErrTransport, Err: errors.Wrapf(err, "decode %s", path)}
	}

	return nil
}

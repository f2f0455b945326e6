package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultWebhookHeader      = "X-Hasura-Webhook-Secret"
	defaultTraccarTimeout     = 5 * time.Second
	defaultThresholdMeters    = 100.0
	defaultRecentAlertsLimit  = 20
	defaultSchedulerTimezone  = "Europe/Paris"
	defaultJobLockTTL         = 30 * time.Minute
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		// AutoMigrate creates the tables owned by this service on startup
		AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
		Log         Log  `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// SecretKey.Access is the HS256 secret shared with the auth backend that signs user tokens.
	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Webhook configuration for data-API event triggers
	Webhook *WebhookConfig `json:"webhook" yaml:"webhook"`

	// Traccar configuration for the GPS position provider
	Traccar *TraccarConfig `json:"traccar" yaml:"traccar"`

	// Email configuration for the SMTP transport
	Email *EmailConfig `json:"email" yaml:"email"`

	Geofence *GeofenceConfig `json:"geofence" yaml:"geofence"`

	Scheduler *SchedulerConfig `json:"scheduler" yaml:"scheduler"`

	// Redis configuration for job locks
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for sensor labels
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for job events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// WebhookConfig defines the shared secret expected on data-API webhooks
type WebhookConfig struct {
	// Secret is compared with the header value. An empty secret disables the check.
	Secret string `json:"secret" yaml:"secret"`
	Header string `json:"header" yaml:"header"`
}

// TraccarConfig defines how to reach the Traccar tracking server
type TraccarConfig struct {
	BaseURL  string        `json:"baseUrl" yaml:"baseUrl"`
	Token    string        `json:"token" yaml:"token"`
	User     string        `json:"user" yaml:"user"`
	Password string        `json:"password" yaml:"password"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// EmailConfig defines the SMTP transport used for alert emails
type EmailConfig struct {
	Enabled     bool   `json:"enabled" yaml:"enabled"`
	Host        string `json:"host" yaml:"host"`
	Port        int    `json:"port" yaml:"port"`
	Username    string `json:"username" yaml:"username"`
	Password    string `json:"password" yaml:"password"`
	FromAddress string `json:"fromAddress" yaml:"fromAddress"`
	FromName    string `json:"fromName" yaml:"fromName"`
}

// GeofenceConfig defines defaults for GPS geofence monitoring
type GeofenceConfig struct {
	DefaultThresholdMeters float64 `json:"defaultThresholdMeters" yaml:"defaultThresholdMeters"`
	// RecentAlertsLimit caps the alerts returned by the status endpoint
	RecentAlertsLimit int `json:"recentAlertsLimit" yaml:"recentAlertsLimit"`
}

// SchedulerConfig defines how scheduled jobs interpret "today" and how long their lock lives
type SchedulerConfig struct {
	Timezone string        `json:"timezone" yaml:"timezone"`
	LockTTL  time.Duration `json:"lockTtl" yaml:"lockTtl"`
}

// RedisConfig defines the Redis connection used for distributed job locks
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for job events
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv reads <name>.yaml from the first search path that has it, then
// overlays environment variables. POSTGRES_SSLMODE lands on postgres.sslMode
// because env segments are matched against the keys already in the YAML.
func LoadWithEnv[T any](name string, configPath ...string) (*T, error) {
	path, err := findConfigFile(name, configPath)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", name)
	}

	fromYAML := k.Raw()
	envProvider := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, fromYAML), value
		},
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{DecoderConfig: decoderConfig(cfg)}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", name)
	}

	return cfg, nil
}

func findConfigFile(name string, configPath []string) (string, error) {
	dirs := []string{defaultPath}
	if len(configPath) > 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, p := range configPath {
			dirs = append(dirs, filepath.Join(pwd, p))
		}
	}

	for _, dir := range dirs {
		candidate := filepath.Join(dir, name+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in any search path", name)
}

// decoderConfig matches keys case-insensitively so env overrides without a YAML
// counterpart still reach their field, and accepts "10m" style durations.
func decoderConfig(result any) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		Result:           result,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		MatchName:        strings.EqualFold,
	}
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills optional sections so that consumers never see a nil section.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Webhook == nil {
		cfg.Webhook = &WebhookConfig{}
	}
	if strings.TrimSpace(cfg.Webhook.Header) == "" {
		cfg.Webhook.Header = defaultWebhookHeader
	}

	if cfg.Traccar == nil {
		cfg.Traccar = &TraccarConfig{}
	}
	if cfg.Traccar.Timeout <= 0 {
		cfg.Traccar.Timeout = defaultTraccarTimeout
	}

	if cfg.Geofence == nil {
		cfg.Geofence = &GeofenceConfig{}
	}
	if cfg.Geofence.DefaultThresholdMeters <= 0 {
		cfg.Geofence.DefaultThresholdMeters = defaultThresholdMeters
	}
	if cfg.Geofence.RecentAlertsLimit <= 0 {
		cfg.Geofence.RecentAlertsLimit = defaultRecentAlertsLimit
	}

	if cfg.Scheduler == nil {
		cfg.Scheduler = &SchedulerConfig{}
	}
	if strings.TrimSpace(cfg.Scheduler.Timezone) == "" {
		cfg.Scheduler.Timezone = defaultSchedulerTimezone
	}
	if cfg.Scheduler.LockTTL <= 0 {
		cfg.Scheduler.LockTTL = defaultJobLockTTL
	}
}

// Location resolves the scheduler timezone, falling back to UTC when it is unknown.
func (c *SchedulerConfig) Location() *time.Location {
	if c == nil || c.Timezone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}

	return loc
}

// canonicalizeEnvKey turns an env variable name into a koanf path, reusing the
// spelling of keys present in the YAML and lower-casing the rest.
func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	var path []string
	level := existing

	for _, segment := range strings.Split(strings.ToLower(rawKey), "_") {
		if segment == "" {
			continue
		}

		key, child := matchKey(level, segment)
		path = append(path, key)
		level = child
	}

	return strings.Join(path, ".")
}

// matchKey returns the YAML key equal to segment once separators and case are ignored,
// or segment itself when the level has no such key.
func matchKey(level map[string]any, segment string) (string, map[string]any) {
	want := normalizeToken(segment)
	for key, value := range level {
		if normalizeToken(key) == want {
			child, _ := value.(map[string]any)

			return key, child
		}
	}

	return segment, nil
}

func normalizeToken(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_<n>_{HOST,PORT,USERNAME,PASSWORD}
// for n = 0, 1, ... until a replica without host or port.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		get := func(field string) string {
			return os.Getenv("POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_" + field)
		}
		host, port := get("HOST"), get("PORT")
		if host == "" || port == "" {
			return replicas
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: get("USERNAME"),
			Password: get("PASSWORD"),
		})
	}
}

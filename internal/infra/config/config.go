package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"homework_status_bot/internal/infra/practicum"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	defaultRetryPeriod = 600 * time.Second
	defaultLogLevel    = "debug"
	defaultEnvironment = "development"
)

// ErrToken is returned when a required credential is missing.
var ErrToken = errors.New("required token is missing")

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken string
	TelegramToken  string
	TelegramChatID int64
	Endpoint       string
	RetryPeriod    time.Duration
	RequestTimeout time.Duration
	LogLevel       string
	Environment    string
	HeartbeatCron  string
}

// fileConfig is the optional YAML file named by CONFIG_PATH. Secrets are never read from it.
type fileConfig struct {
	Endpoint       string `yaml:"endpoint"`
	RetryPeriod    int    `yaml:"retry_period"`
	RequestTimeout int    `yaml:"request_timeout"`
	LogLevel       string `yaml:"log_level"`
	Environment    string `yaml:"environment"`
	HeartbeatCron  string `yaml:"heartbeat_cron"`
}

// Load reads configuration from environment variables, .env file and the optional
// YAML file. Environment variables win over the file. Missing credentials are not
// an error here; see CheckTokens.
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{
		Endpoint:    practicum.DefaultEndpoint,
		RetryPeriod: defaultRetryPeriod,
		LogLevel:    defaultLogLevel,
		Environment: defaultEnvironment,
	}

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.PracticumToken = os.Getenv("PRACTICUM_TOKEN")
	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid TELEGRAM_CHAT_ID: %w", ErrToken, err)
		}
		cfg.TelegramChatID = id
	}

	if v := os.Getenv("PRACTICUM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}

	if v := os.Getenv("RETRY_PERIOD"); v != "" {
		d, err := parseSeconds("RETRY_PERIOD", v)
		if err != nil {
			return nil, err
		}
		cfg.RetryPeriod = d
	}
	if cfg.RetryPeriod <= 0 {
		return nil, fmt.Errorf("RETRY_PERIOD must be positive, got %s", cfg.RetryPeriod)
	}

	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		d, err := parseSeconds("REQUEST_TIMEOUT", v)
		if err != nil {
			return nil, err
		}
		cfg.RequestTimeout = d
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if v := os.Getenv("ENVIRONMENT"); v != "" {
		cfg.Environment = v
	}
	cfg.Environment = strings.ToLower(cfg.Environment)

	if v := os.Getenv("HEARTBEAT_CRON"); v != "" {
		cfg.HeartbeatCron = v
	}

	return cfg, nil
}

func (c *AppConfig) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}

	if fc.Endpoint != "" {
		c.Endpoint = fc.Endpoint
	}
	if fc.RetryPeriod != 0 {
		c.RetryPeriod = time.Duration(fc.RetryPeriod) * time.Second
	}
	if fc.RequestTimeout != 0 {
		c.RequestTimeout = time.Duration(fc.RequestTimeout) * time.Second
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.Environment != "" {
		c.Environment = fc.Environment
	}
	if fc.HeartbeatCron != "" {
		c.HeartbeatCron = fc.HeartbeatCron
	}
	return nil
}

func parseSeconds(name, value string) (time.Duration, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid %s: must not be negative", name)
	}
	return time.Duration(n) * time.Second, nil
}

// CheckTokens verifies that every credential needed by the poll loop is present.
// Missing credentials are logged at critical severity before ErrToken is returned.
func (c *AppConfig) CheckTokens(logger *logrus.Logger) error {
	var missing []string
	if c.PracticumToken == "" {
		missing = append(missing, "PRACTICUM_TOKEN")
	}
	if c.TelegramToken == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	if c.TelegramChatID == 0 {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}

	if len(missing) > 0 {
		logger.WithFields(logrus.Fields{
			"severity": "critical",
			"missing":  strings.Join(missing, ","),
		}).Error("Environment variables are not set")
		return fmt.Errorf("%w: %s", ErrToken, strings.Join(missing, ", "))
	}

	logger.Info("Token check passed")
	return nil
}

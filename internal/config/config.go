// Package config provides server configuration loaded from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const logPrefix = "config:LoadConfig"

// Config holds payment-dispatch configuration.
type Config struct {
	// COMMS: connect to standalone NATS at COMMSURL.
	COMMSURL  string `envconfig:"COMMS_URL" default:"nats://127.0.0.1:4222"`
	COMMSName string `envconfig:"SERVICE_NAME" default:"payment-dispatch"`

	// Subject overrides (empty = package defaults)
	DispatchSubject       string `envconfig:"DISPATCH_SUBJECT"`
	ProcessedEventSubject string `envconfig:"PROCESSED_EVENT_SUBJECT"`

	// NotifyChannels lists the notification channels to bind at startup.
	NotifyChannels []string `envconfig:"NOTIFY_CHANNELS" default:"email,sms"`

	// Tariff
	TariffFile string `envconfig:"TARIFF_FILE"`

	// Timeouts
	ConnectTimeout time.Duration `envconfig:"COMMS_CONNECT_TIMEOUT" default:"5s"`
	RequestTimeout time.Duration `envconfig:"DISPATCH_REQUEST_TIMEOUT" default:"25s"`

	// HTTP health endpoint
	HTTPPort           int           `envconfig:"HTTP_PORT" default:"8080"`
	HealthCheckTimeout time.Duration `envconfig:"HEALTH_CHECK_TIMEOUT" default:"5s"`

	// Logging
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// ValidateForServe checks required config when running the dispatch server.
func (c *Config) ValidateForServe() error {
	if c.COMMSURL == "" {
		return fmt.Errorf("%s - COMMS_URL is required for serve", logPrefix)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%s - DISPATCH_REQUEST_TIMEOUT must be positive", logPrefix)
	}
	if c.HealthCheckTimeout <= 0 {
		return fmt.Errorf("%s - HEALTH_CHECK_TIMEOUT must be positive", logPrefix)
	}
	return nil
}

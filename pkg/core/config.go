package core

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// RestAPIURL is the production Bitvavo v2 REST endpoint.
const RestAPIURL = "https://api.bitvavo.com/v2"

// DefaultWindow is the default signature validity window accepted by the
// exchange. Bitvavo rejects windows above 60 seconds.
const DefaultWindow = 5 * time.Second

// Config contains all configuration options for a Bitvavo client.
type Config struct {
	// BaseURL is the REST endpoint all resource paths are resolved against.
	BaseURL string `json:"base_url" validate:"required,url"`

	// Timeout is the maximum duration for a single HTTP request.
	Timeout time.Duration `json:"timeout" validate:"min=1ms"`

	// Window is the signature validity window sent on signed calls.
	Window time.Duration `json:"window" validate:"min=1ms,max=60s"`

	// Credentials are required for signed (account/order) calls and may be
	// nil for a public market-data client.
	Credentials *Credentials `json:"credentials,omitempty"`

	LogLevel string `json:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// DefaultConfig returns a Config initialized with sensible defaults:
// production base URL, 10s request timeout, 5s signature window.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:  RestAPIURL,
		Timeout:  10 * time.Second,
		Window:   DefaultWindow,
		LogLevel: "info",
	}
}

var validate = validator.New()

func (c *Config) Validate() error {
	return validate.Struct(c)
}

// WithCredentials sets the API credentials and returns the config for chaining.
func (c *Config) WithCredentials(creds *Credentials) *Config {
	c.Credentials = creds
	return c
}

// WithBaseURL overrides the REST endpoint and returns the config for chaining.
func (c *Config) WithBaseURL(url string) *Config {
	c.BaseURL = url
	return c
}

// WithTimeout sets the request timeout and returns the config for chaining.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}

// WithWindow sets the signature validity window and returns the config for chaining.
func (c *Config) WithWindow(window time.Duration) *Config {
	c.Window = window
	return c
}

// WithLogLevel sets the log level and returns the config for chaining.
func (c *Config) WithLogLevel(level string) *Config {
	c.LogLevel = level
	return c
}

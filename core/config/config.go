// Package config reads the invoker daemon configuration from a YAML file.
//
//	text:
//	  delimiter: ","
//	  quote: '"'
//	logging:
//	  level: info
//	  format: json
//	tracing:
//	  endpoint: otel-collector:4318
//	  service_name: invokerd
//	  insecure: true
//	server:
//	  address: ":7070"
//
// Every section is optional. Missing values get the defaults listed on the types.
package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/anoideaopen/invoker/core/params"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// EnvConfig names the environment variable holding the path of the configuration file.
const EnvConfig = "INVOKER_CONFIG"

// Defaults.
const (
	DefaultAddress     = ":7070"
	DefaultLevel       = "warning"
	DefaultFormat      = "text"
	DefaultServiceName = "invokerd"
)

// Config is the top-level configuration.
type Config struct {
	Text    Text    `yaml:"text"`
	Logging Logging `yaml:"logging"`
	Tracing Tracing `yaml:"tracing"`
	Server  Server  `yaml:"server"`
}

// Text configures the text argument format.
type Text struct {
	// Delimiter separates fields, "," by default.
	Delimiter string `yaml:"delimiter,omitempty"`
	// Quote encloses fields containing the delimiter, '"' by default.
	Quote string `yaml:"quote,omitempty"`
}

// Logging configures the package logger.
type Logging struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"` // text or json
}

// Tracing configures the OTLP trace exporter. Tracing is off without an endpoint.
type Tracing struct {
	Endpoint    string `yaml:"endpoint,omitempty"`
	ServiceName string `yaml:"service_name,omitempty"`
	// CACerts holds base64 encoded PEM certificates trusted by the exporter.
	CACerts  string `yaml:"ca_certs,omitempty"`
	Insecure bool   `yaml:"insecure,omitempty"`
}

// Enabled reports whether spans are exported.
func (t Tracing) Enabled() bool {
	return t.Endpoint != ""
}

// Server configures the gRPC listener.
type Server struct {
	Address string `yaml:"address,omitempty"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := new(Config)
	cfg.setDefaults()

	return cfg
}

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	return Parse(data, path)
}

// FromEnv loads the file named by INVOKER_CONFIG, or returns the defaults when the
// variable is unset.
func FromEnv() (*Config, error) {
	path, ok := os.LookupEnv(EnvConfig)
	if !ok || path == "" {
		return Default(), nil
	}

	return Load(path)
}

// Parse parses configuration content. The path is used only in error messages.
func Parse(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg.setDefaults()
	if err := cfg.validate(path); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Dialect returns the text dialect described by the text section.
func (c *Config) Dialect() params.Dialect {
	d, _ := utf8.DecodeRuneInString(c.Text.Delimiter)
	q, _ := utf8.DecodeRuneInString(c.Text.Quote)

	return params.Dialect{Delimiter: d, Quote: q}
}

func (c *Config) validate(path string) error {
	if utf8.RuneCountInString(c.Text.Delimiter) != 1 {
		return fmt.Errorf("%s: text.delimiter must be a single character, got %q", path, c.Text.Delimiter)
	}
	if utf8.RuneCountInString(c.Text.Quote) != 1 {
		return fmt.Errorf("%s: text.quote must be a single character, got %q", path, c.Text.Quote)
	}
	if err := c.Dialect().Validate(); err != nil {
		return fmt.Errorf("%s: text: %w", path, err)
	}

	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%s: logging.level: %w", path, err)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%s: logging.format must be text or json, got %q", path, c.Logging.Format)
	}

	if c.Tracing.CACerts != "" {
		if c.Tracing.Insecure {
			return fmt.Errorf("%s: tracing.ca_certs and tracing.insecure are exclusive", path)
		}
		if _, err := base64.StdEncoding.DecodeString(c.Tracing.CACerts); err != nil {
			return fmt.Errorf("%s: tracing.ca_certs: %w", path, err)
		}
	}

	return nil
}

func (c *Config) setDefaults() {
	if c.Text.Delimiter == "" {
		c.Text.Delimiter = string(params.DefaultDialect.Delimiter)
	}
	if c.Text.Quote == "" {
		c.Text.Quote = string(params.DefaultDialect.Quote)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultFormat
	}
	if c.Tracing.ServiceName == "" {
		c.Tracing.ServiceName = DefaultServiceName
	}
	if c.Server.Address == "" {
		c.Server.Address = DefaultAddress
	}
}

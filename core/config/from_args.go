package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownKey is returned by Override for a key that does not name a setting.
var ErrUnknownKey = errors.New("unknown configuration key")

// Override applies "key=value" pairs such as "server.address=:9000" on top of c, then
// validates the result. Keys use the YAML names of the settings.
func (c *Config) Override(args ...string) error {
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("override '%s': expected key=value", arg)
		}

		if err := c.set(strings.TrimSpace(key), value); err != nil {
			return err
		}
	}

	return c.validate("overrides")
}

func (c *Config) set(key, value string) error {
	switch key {
	case "text.delimiter":
		c.Text.Delimiter = value
	case "text.quote":
		c.Text.Quote = value
	case "logging.level":
		c.Logging.Level = value
	case "logging.format":
		c.Logging.Format = value
	case "tracing.endpoint":
		c.Tracing.Endpoint = value
	case "tracing.service_name":
		c.Tracing.ServiceName = value
	case "tracing.ca_certs":
		c.Tracing.CACerts = value
	case "tracing.insecure":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("override '%s': %w", key, err)
		}
		c.Tracing.Insecure = b
	case "server.address":
		c.Server.Address = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}

	return nil
}

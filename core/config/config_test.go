package config

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/anoideaopen/invoker/core/params"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
text:
  delimiter: ";"
logging:
  level: debug
  format: json
tracing:
  endpoint: collector:4318
  insecure: true
server:
  address: 127.0.0.1:9000
`), "invoker.yaml")
	require.NoError(t, err)

	require.Equal(t, params.Dialect{Delimiter: ';', Quote: '"'}, cfg.Dialect())
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "json", cfg.Logging.Format)
	require.True(t, cfg.Tracing.Enabled())
	require.Equal(t, DefaultServiceName, cfg.Tracing.ServiceName)
	require.Equal(t, "127.0.0.1:9000", cfg.Server.Address)
}

func TestDefaults(t *testing.T) {
	cfg, err := Parse(nil, "empty.yaml")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	require.Equal(t, params.DefaultDialect, cfg.Dialect())
	require.Equal(t, DefaultLevel, cfg.Logging.Level)
	require.Equal(t, DefaultFormat, cfg.Logging.Format)
	require.Equal(t, DefaultAddress, cfg.Server.Address)
	require.False(t, cfg.Tracing.Enabled())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{name: "syntax", data: "text: [", want: "parsing bad.yaml"},
		{name: "long delimiter", data: "text: {delimiter: ';;'}", want: "text.delimiter"},
		{name: "same quote", data: "text: {delimiter: '|', quote: '|'}", want: "must differ"},
		{name: "backslash delimiter", data: "text: {delimiter: '\\'}", want: "reserved for escaping"},
		{name: "backslash quote", data: "text: {quote: '\\'}", want: "reserved for escaping"},
		{name: "level", data: "logging: {level: loud}", want: "logging.level"},
		{name: "format", data: "logging: {format: xml}", want: "logging.format"},
		{name: "ca and insecure", data: "tracing: {ca_certs: AAAA, insecure: true}", want: "exclusive"},
		{name: "ca encoding", data: "tracing: {ca_certs: '***'}", want: "tracing.ca_certs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), "bad.yaml")
			require.ErrorContains(t, err, tt.want)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "invoker.yaml")

	ca := base64.StdEncoding.EncodeToString([]byte("-----BEGIN CERTIFICATE-----"))
	require.NoError(t, os.WriteFile(path, []byte("tracing:\n  ca_certs: "+ca+"\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ca, cfg.Tracing.CACerts)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	t.Setenv(EnvConfig, path)
	cfg, err = FromEnv()
	require.NoError(t, err)
	require.Equal(t, ca, cfg.Tracing.CACerts)

	t.Setenv(EnvConfig, "")
	cfg, err = FromEnv()
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestOverride(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Override(
		"server.address=:9000",
		"text.delimiter=|",
		"tracing.endpoint=localhost:4318",
		"tracing.insecure=true",
		"logging.level=info",
	))
	require.Equal(t, ":9000", cfg.Server.Address)
	require.Equal(t, '|', cfg.Dialect().Delimiter)
	require.True(t, cfg.Tracing.Insecure)
	require.Equal(t, "info", cfg.Logging.Level)

	require.ErrorIs(t, cfg.Override("server.port=1"), ErrUnknownKey)
	require.ErrorContains(t, cfg.Override("server.address"), "expected key=value")
	require.Error(t, cfg.Override("tracing.insecure=maybe"))
	require.ErrorContains(t, cfg.Override("text.quote=|"), "must differ")
	require.ErrorIs(t, cfg.Override(`text.delimiter=\`), params.ErrInvalidDialect)
	require.ErrorIs(t, cfg.Override(`text.quote=\`), params.ErrInvalidDialect)
}

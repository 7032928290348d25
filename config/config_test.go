package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/harmondex/key"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "0.0.0.0:8080", cfg.GetAddress())
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[server]
port = "9090"
enable_cors = false

[spelling]
default_key = "Eb dorian"
bias = "flat"
catalog = "extended"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal("9090", cfg.Server.Port)
	assert.Equal("0.0.0.0", cfg.Server.Host)
	assert.False(cfg.Server.EnableCORS)
	assert.Equal("info", cfg.Logging.Level)

	k, err := cfg.Spelling.ParseKey("")
	require.NoError(t, err)
	assert.Equal("E♭ dorian", k.Name())
	assert.Equal(key.FlatBias, k.Bias())

	cat, err := cfg.Spelling.LoadCatalog()
	require.NoError(t, err)
	assert.Len(cat, 142)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvPort, "7000")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvKey, "F#m")
	t.Setenv(EnvDebounce, "50")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal("7000", cfg.Server.Port)
	assert.Equal("debug", cfg.Logging.Level)
	assert.Equal("F#m", cfg.Spelling.DefaultKey)
	assert.Equal(50, cfg.Watch.DebounceMs)
}

func TestEnvOverrideRejectsBadDebounce(t *testing.T) {
	t.Setenv(EnvDebounce, "soon")
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"empty port":    func(c *Config) { c.Server.Port = "" },
		"bad port":      func(c *Config) { c.Server.Port = "http" },
		"bad level":     func(c *Config) { c.Logging.Level = "loud" },
		"bad format":    func(c *Config) { c.Logging.Format = "xml" },
		"bad key":       func(c *Config) { c.Spelling.DefaultKey = "H" },
		"bad bias":      func(c *Config) { c.Spelling.Bias = "natural" },
		"missing file":  func(c *Config) { c.Spelling.Catalog = "/no/such/catalog.toml" },
		"negative wait": func(c *Config) { c.Watch.DebounceMs = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSaveToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig()
	cfg.Spelling.DefaultKey = "Bbm"
	cfg.Watch.OutputDir = "out"
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := LoggingConfig{Level: "warn", Format: "json"}.NewLogger(&buf)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.WithField("key", "C").Warn("shown")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "shown", line["msg"])
	assert.Equal(t, "C", line["key"])
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())

	_, err = LoggingConfig{Level: "info", Format: "yaml"}.NewLogger(&buf)
	assert.Error(t, err)
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/jsphweid/harmondex/chord"
	"github.com/jsphweid/harmondex/key"
)

// Environment variables that override the config file.
const (
	EnvPort     = "HARMONDEX_PORT"
	EnvHost     = "HARMONDEX_HOST"
	EnvLogLevel = "HARMONDEX_LOG_LEVEL"
	EnvCatalog  = "HARMONDEX_CATALOG"
	EnvKey      = "HARMONDEX_KEY"
	EnvDebounce = "HARMONDEX_DEBOUNCE_MS"
)

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logging  LoggingConfig  `toml:"logging"`
	Spelling SpellingConfig `toml:"spelling"`
	Watch    WatchConfig    `toml:"watch"`
}

type ServerConfig struct {
	Port       string `toml:"port"`
	Host       string `toml:"host"`
	EnableCORS bool   `toml:"enable_cors"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// SpellingConfig picks the key and chord catalog used when a command or
// request does not name one.
type SpellingConfig struct {
	DefaultKey string `toml:"default_key"`
	// Bias forces "sharp" or "flat"; empty derives it from the key.
	Bias string `toml:"bias"`
	// Catalog is "standard", "extended" or a path to a TOML catalog.
	Catalog string `toml:"catalog"`
}

type WatchConfig struct {
	DebounceMs int    `toml:"debounce_ms"`
	OutputDir  string `toml:"output_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:       "8080",
			Host:       "0.0.0.0",
			EnableCORS: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Spelling: SpellingConfig{
			DefaultKey: "C",
			Catalog:    "standard",
		},
		Watch: WatchConfig{
			DebounceMs: 500,
		},
	}
}

// LoadConfig reads configPath on top of the defaults, then applies .env and
// HARMONDEX_* overrides. A missing file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if _, err := toml.DecodeFile(configPath, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to stat config file: %w", err)
		}
	}

	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvPort); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv(EnvHost); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvCatalog); v != "" {
		c.Spelling.Catalog = v
	}
	if v := os.Getenv(EnvKey); v != "" {
		c.Spelling.DefaultKey = v
	}
	if v := os.Getenv(EnvDebounce); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebounce, err)
		}
		c.Watch.DebounceMs = ms
	}
	return nil
}

func (c *Config) SaveToFile(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	header := "# harmondex configuration\n\n"
	if _, err := file.WriteString(header); err != nil {
		return fmt.Errorf("failed to write config header: %w", err)
	}
	if err := toml.NewEncoder(file).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config to TOML: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port cannot be empty")
	}
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("invalid server port: %s", c.Server.Port)
	}

	if err := c.Logging.Validate(); err != nil {
		return err
	}

	if _, err := c.Spelling.ParseKey(""); err != nil {
		return fmt.Errorf("invalid default key: %w", err)
	}
	switch c.Spelling.Catalog {
	case "", "standard", "extended":
	default:
		if _, err := os.Stat(c.Spelling.Catalog); err != nil {
			return fmt.Errorf("chord catalog %s: %w", c.Spelling.Catalog, err)
		}
	}

	if c.Watch.DebounceMs < 0 {
		return fmt.Errorf("watch debounce must not be negative")
	}
	return nil
}

func (c *Config) GetAddress() string {
	return c.Server.Host + ":" + c.Server.Port
}

// ParseKey parses name, or the default key when name is empty, applying the
// configured bias.
func (s SpellingConfig) ParseKey(name string) (key.Key, error) {
	if name == "" {
		name = s.DefaultKey
	}
	var opts []key.Option
	if s.Bias != "" {
		b, err := key.ParseBias(s.Bias)
		if err != nil {
			return key.Key{}, err
		}
		opts = append(opts, key.WithBias(b))
	}
	return key.Parse(name, opts...)
}

func (s SpellingConfig) LoadCatalog() (chord.Catalog, error) {
	return chord.ResolveCatalog(s.Catalog)
}

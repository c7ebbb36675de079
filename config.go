package blockdoc

import (
	"errors"
	"strings"
)

var (
	ErrLoggingLevelInvalid   = errors.New("blockdoc config: logging level is invalid")
	ErrLoggingFormatInvalid  = errors.New("blockdoc config: logging format is invalid")
	ErrStorageDriverUnknown  = errors.New("blockdoc config: storage driver is invalid")
	ErrStorageDSNRequired    = errors.New("blockdoc config: storage dsn is required")
	ErrUploadBaseURLRequired = errors.New("blockdoc config: upload base url is required when uploads are enabled")
)

// Config aggregates feature flags and adapter bindings for the module.
// Fields intentionally use simple types so host applications can bind them
// from the environment or a file without adapters.
type Config struct {
	Logging LoggingConfig `envPrefix:"LOGGING_"`
	Storage StorageConfig `envPrefix:"STORAGE_"`
	Upload  UploadConfig  `envPrefix:"UPLOAD_"`
	Render  RenderConfig  `envPrefix:"RENDER_"`
}

// LoggingConfig captures provider options for runtime logging.
type LoggingConfig struct {
	Level     string `env:"LEVEL" envDefault:"info"`
	Format    string `env:"FORMAT" envDefault:"console"`
	AddSource bool   `env:"ADD_SOURCE" envDefault:"false"`
}

// StorageConfig selects the page persistence backend.
type StorageConfig struct {
	Driver string `env:"DRIVER" envDefault:"memory"`
	DSN    string `env:"DSN"`
}

// UploadConfig points the upload client at its backend.
type UploadConfig struct {
	Enabled bool   `env:"ENABLED" envDefault:"false"`
	BaseURL string `env:"BASE_URL"`
}

// RenderConfig controls public rendering behaviour.
type RenderConfig struct {
	PageBasePath string `env:"PAGE_BASE_PATH" envDefault:"/pages"`
	AuthPrompt   string `env:"AUTH_PROMPT"`
}

// DefaultConfig returns the settings a zero-dependency host can run with: an
// in-memory page store, console logging, uploads disabled.
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Storage: StorageConfig{
			Driver: "memory",
		},
		Render: RenderConfig{
			PageBasePath: "/pages",
		},
	}
}

// Validate checks cross-field consistency before the module boots.
func (c Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return ErrLoggingLevelInvalid
	}

	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "json", "console", "pretty":
	default:
		return ErrLoggingFormatInvalid
	}

	switch strings.ToLower(strings.TrimSpace(c.Storage.Driver)) {
	case "", "memory":
	case "sqlite", "postgres":
		if strings.TrimSpace(c.Storage.DSN) == "" {
			return ErrStorageDSNRequired
		}
	default:
		return ErrStorageDriverUnknown
	}

	if c.Upload.Enabled && strings.TrimSpace(c.Upload.BaseURL) == "" {
		return ErrUploadBaseURLRequired
	}
	return nil
}

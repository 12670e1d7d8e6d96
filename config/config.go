package config

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Config,
// e.g. VERTEXRANK_TOP or VERTEXRANK_LOG_LEVEL.
const EnvPrefix = "VERTEXRANK"

// Keys understood by Config. Nested keys use dots in config files and
// underscores in the environment.
const (
	KeyInput     = "input"
	KeyMetrics   = "metrics"
	KeyAlpha     = "alpha"
	KeyTop       = "top"
	KeyWorkers   = "workers"
	KeyTimeout   = "timeout"
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
)

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"input":      KeyInput,
	"metric":     KeyMetrics,
	"alpha":      KeyAlpha,
	"top":        KeyTop,
	"workers":    KeyWorkers,
	"timeout":    KeyTimeout,
	"log-level":  KeyLogLevel,
	"log-format": KeyLogFormat,
}

// Config manages run configuration using Viper.
// Precedence, highest first: explicit Set, flags, environment, config file, defaults.
type Config struct {
	v *viper.Viper
}

// NewConfig creates a new configuration with defaults and environment
// lookup enabled.
func NewConfig() *Config {
	v := viper.New()

	v.SetDefault(KeyMetrics, []string{"degree"})
	v.SetDefault(KeyTop, 5)
	v.SetDefault(KeyWorkers, runtime.NumCPU())
	v.SetDefault(KeyTimeout, time.Duration(0))

	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile loads configuration from file. The format follows the
// extension (yaml, json, toml, ...).
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	return nil
}

// BindFlags binds every known flag present in fs. Flags only override
// lower layers when they were set on the command line.
func (c *Config) BindFlags(fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := c.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("config: bind --%s: %w", name, err)
		}
	}

	return nil
}

// Set allows dynamic configuration changes.
func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}

// Getters for run parameters
func (c *Config) Input() string               { return c.v.GetString(KeyInput) }
func (c *Config) Metrics() []string           { return c.v.GetStringSlice(KeyMetrics) }
func (c *Config) Alpha() float64              { return c.v.GetFloat64(KeyAlpha) }
func (c *Config) TopK() int                   { return c.v.GetInt(KeyTop) }
func (c *Config) Workers() int                { return c.v.GetInt(KeyWorkers) }
func (c *Config) Timeout() time.Duration      { return c.v.GetDuration(KeyTimeout) }
func (c *Config) LogLevel() string            { return c.v.GetString(KeyLogLevel) }
func (c *Config) LogFormat() string           { return c.v.GetString(KeyLogFormat) }
func (c *Config) ConfigFileUsed() string      { return c.v.ConfigFileUsed() }
func (c *Config) AllSettings() map[string]any { return c.v.AllSettings() }

// CreateLogger creates a zerolog logger writing to stderr. An unknown level
// falls back to info; format "json" selects plain JSON lines, anything else
// the console writer.
func (c *Config) CreateLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	if strings.EqualFold(c.LogFormat(), "json") {
		return zerolog.New(os.Stderr).Level(level).With().Timestamp().Str("service", "vertexrank").Logger()
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}).Level(level).With().Timestamp().Str("service", "vertexrank").Logger()
}

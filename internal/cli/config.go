package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/pfeilbach/svgantt/pkg/errors"
	"github.com/pfeilbach/svgantt/pkg/pipeline"
)

// Cache backends selectable via config or the serve --cache flag.
const (
	CacheBackendFile  = "file"
	CacheBackendRedis = "redis"
	CacheBackendNone  = "none"
)

// Config holds settings loaded from the TOML config file. Command-line
// flags override config values, which override the built-in defaults.
type Config struct {
	Chart  ChartConfig  `toml:"chart"`
	Render RenderConfig `toml:"render"`
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// ChartConfig sets default layout dimensions.
type ChartConfig struct {
	TitleWidth float64 `toml:"title_width"` // width of the task label column
	MonthWidth float64 `toml:"month_width"` // maximum width of a month column
	Legend     bool    `toml:"legend"`      // render the resource legend
}

// RenderConfig sets default output formats.
type RenderConfig struct {
	Formats []string `toml:"formats"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	Enabled bool        `toml:"enabled"`
	Backend string      `toml:"backend"` // file, redis, or none
	Scope   string      `toml:"scope"`   // optional cache key prefix
	Redis   RedisConfig `toml:"redis"`
}

// RedisConfig holds connection settings for the redis backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// ServerConfig sets defaults for the serve command.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Chart: ChartConfig{
			TitleWidth: pipeline.DefaultTitleWidth,
			MonthWidth: pipeline.DefaultMaxMonthWidth,
		},
		Render: RenderConfig{
			Formats: []string{pipeline.FormatSVG},
		},
		Cache: CacheConfig{
			Enabled: true,
			Backend: CacheBackendFile,
			Redis:   RedisConfig{Addr: "localhost:6379"},
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// LoadConfig reads the config file at path, falling back to the default
// location (~/.config/svgantt/config.toml) when path is empty. A
// missing file at the default location is not an error; a missing file
// at an explicit path is. Values absent from the file keep their
// defaults because decoding happens on top of DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if explicit {
			return nil, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
		}
		return cfg, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the pipeline would
// reject later.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case CacheBackendFile, CacheBackendRedis, CacheBackendNone, "":
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend: %s (must be 'file', 'redis', or 'none')", c.Cache.Backend)
	}
	if c.Chart.TitleWidth < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "title_width must not be negative: %v", c.Chart.TitleWidth)
	}
	if c.Chart.MonthWidth < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "month_width must not be negative: %v", c.Chart.MonthWidth)
	}
	if err := pipeline.ValidateFormats(c.Render.Formats); err != nil {
		return err
	}
	return nil
}

// defaultConfigPath returns the XDG config file location, or "" when no
// home directory is available.
func defaultConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}

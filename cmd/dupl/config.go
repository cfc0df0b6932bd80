package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the settings shared by all commands.
type Config struct {
	Display   int    `mapstructure:"display"`
	TimeoutMs uint32 `mapstructure:"timeout_ms"`

	// Streaming
	FPS         int    `mapstructure:"fps"`
	Quality     int    `mapstructure:"quality"`
	ScaleWidth  uint   `mapstructure:"scale_width"`
	ScaleHeight uint   `mapstructure:"scale_height"`
	Addr        string `mapstructure:"addr"`
	Backend     string `mapstructure:"backend"`

	// Shared memory
	ShmName string `mapstructure:"shm_name"`

	Verbose bool `mapstructure:"verbose"`
}

const (
	backendDXGI = "dxgi"
	backendGDI  = "gdi"
)

// DefaultConfig returns configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		TimeoutMs: 100,
		FPS:       15,
		Quality:   75,
		Addr:      "127.0.0.1:8023",
		Backend:   backendDXGI,
	}
}

// Load reads configuration from the config file, the environment and flags,
// in increasing order of precedence.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	cfg := DefaultConfig()
	v := viper.New()

	v.SetDefault("display", cfg.Display)
	v.SetDefault("timeout_ms", cfg.TimeoutMs)
	v.SetDefault("fps", cfg.FPS)
	v.SetDefault("quality", cfg.Quality)
	v.SetDefault("scale_width", cfg.ScaleWidth)
	v.SetDefault("scale_height", cfg.ScaleHeight)
	v.SetDefault("addr", cfg.Addr)
	v.SetDefault("backend", cfg.Backend)
	v.SetDefault("shm_name", cfg.ShmName)
	v.SetDefault("verbose", cfg.Verbose)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("dupl")
		v.SetConfigType("yaml")
		v.AddConfigPath(getConfigDir())
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("DUPL")
	v.AutomaticEnv()

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// bindFlags binds every config key to the flag of the same name, with
// dashes instead of underscores, when the command defines one.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range v.AllKeys() {
		f := flags.Lookup(strings.ReplaceAll(key, "_", "-"))
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %s: %w", f.Name, err)
		}
	}
	return nil
}

func (c *Config) validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("quality must be within 1..100, got %d", c.Quality)
	}
	if c.Display < 0 {
		return fmt.Errorf("display must not be negative, got %d", c.Display)
	}
	switch c.Backend {
	case backendDXGI, backendGDI:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	return nil
}

// getConfigDir returns the platform-specific config directory
func getConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("ProgramData"), "dupl")
	default:
		return "/etc/dupl"
	}
}

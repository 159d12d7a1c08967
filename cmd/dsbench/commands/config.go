package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".dsbench"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for dsbench settings.
const envPrefix = "DSBENCH"

// Default values.
const (
	DefaultSize     = 100_000
	DefaultSeed     = 1
	DefaultVerify   = true
	DefaultNoColor  = false
	DefaultLogLevel = "info"
)

var (
	// ErrInvalidSize is returned when the workload size isn't positive.
	ErrInvalidSize = errors.New("size must be positive")
	// ErrUnknownWorkload indicates a requested workload isn't registered.
	ErrUnknownWorkload = errors.New("unknown workload")
	// ErrNoWorkloads is returned when the workload list is empty.
	ErrNoWorkloads = errors.New("no workloads selected")
	// ErrInvalidLogLevel is returned for a log level slog can't parse.
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Config of a dsbench run.
type Config struct {
	Size      int      `mapstructure:"size"`
	Seed      int64    `mapstructure:"seed"`
	Workloads []string `mapstructure:"workloads"`
	Verify    bool     `mapstructure:"verify"`
	NoColor   bool     `mapstructure:"no_color"`
	LogLevel  string   `mapstructure:"log_level"`
}

// LoadConfig loads configuration from file, env vars, and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in CWD and $HOME.
// Missing config file is not an error; defaults are used.
// The result isn't validated, flags may still override it; call Validate after.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	return &cfg, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("size", DefaultSize)
	viperCfg.SetDefault("seed", DefaultSeed)
	viperCfg.SetDefault("workloads", WorkloadNames())
	viperCfg.SetDefault("verify", DefaultVerify)
	viperCfg.SetDefault("no_color", DefaultNoColor)
	viperCfg.SetDefault("log_level", DefaultLogLevel)
}

// Validate checks the config values.
func (c *Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, c.Size)
	}

	if len(c.Workloads) == 0 {
		return ErrNoWorkloads
	}

	known := WorkloadNames()
	for _, w := range c.Workloads {
		if !slices.Contains(known, w) {
			return fmt.Errorf("%w: %q (available: %s)", ErrUnknownWorkload, w, strings.Join(known, ", "))
		}
	}

	_, err := c.Level()

	return err
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level

	err := lvl.UnmarshalText([]byte(c.LogLevel))
	if err != nil {
		return lvl, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}

	return lvl, nil
}

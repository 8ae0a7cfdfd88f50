// Package config loads command-line settings from flags, UNIONFIND_* environment
// variables and an optional .unionfind.yaml file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Balancing strategies for the disjoint set.
const (
	BalanceNone = "none"
	BalanceSize = "size"
)

// Output formats.
const (
	FormatText  = "text"
	FormatTable = "table"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid value")

// GridConfig holds defaults for the grid command.
type GridConfig struct {
	Conn          int `mapstructure:"conn"`
	LandThreshold int `mapstructure:"land_threshold"`
}

// Config holds all runtime settings of the unionfind tool.
type Config struct {
	Debug   bool       `mapstructure:"debug"`
	Balance string     `mapstructure:"balance"`
	Format  string     `mapstructure:"format"`
	Grid    GridConfig `mapstructure:"grid"`
}

// EnvPrefix is the prefix of environment overrides, e.g. UNIONFIND_GRID_CONN.
const EnvPrefix = "UNIONFIND"

// BindEnv makes every key overridable from the environment.
// Nested keys map dots to underscores: grid.conn reads UNIONFIND_GRID_CONN.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("balance", BalanceNone)
	v.SetDefault("format", FormatText)
	v.SetDefault("grid.conn", 4)
	v.SetDefault("grid.land_threshold", 1)
}

// Load applies defaults, unmarshals v and validates the result.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.Balance = strings.ToLower(cfg.Balance)
	cfg.Format = strings.ToLower(cfg.Format)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	switch c.Balance {
	case BalanceNone, BalanceSize:
	default:
		return fmt.Errorf("%w: balance %q (want %s or %s)", ErrInvalidConfig, c.Balance, BalanceNone, BalanceSize)
	}
	switch c.Format {
	case FormatText, FormatTable:
	default:
		return fmt.Errorf("%w: format %q (want %s or %s)", ErrInvalidConfig, c.Format, FormatText, FormatTable)
	}
	if c.Grid.Conn != 4 && c.Grid.Conn != 8 {
		return fmt.Errorf("%w: grid.conn %d (want 4 or 8)", ErrInvalidConfig, c.Grid.Conn)
	}

	return nil
}

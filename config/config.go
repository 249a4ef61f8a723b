package config

import (
	"github.com/spf13/viper"
)

// Config holds the harness parameters.
type Config struct {
	Depth          int     `mapstructure:"SEARCH_DEPTH"`
	Playouts       int     `mapstructure:"ROLLOUT_PLAYOUTS"`
	Games          int     `mapstructure:"TOURNAMENT_GAMES"`
	MaterialWeight float64 `mapstructure:"MATERIAL_WEIGHT"`
	MobilityWeight float64 `mapstructure:"MOBILITY_WEIGHT"`
	Seed           uint64  `mapstructure:"SEED"`
	ResultDir      string  `mapstructure:"RESULT_DIR"`
	LogLevel       string  `mapstructure:"LOG_LEVEL"`
}

// Setup loads the configuration from an optional file on top of the
// defaults. An empty path keeps the defaults.
func Setup(cfgPath string) (*Config, error) {
	viper.SetDefault("SEARCH_DEPTH", 3)
	viper.SetDefault("ROLLOUT_PLAYOUTS", 4)
	viper.SetDefault("TOURNAMENT_GAMES", 10)
	viper.SetDefault("MATERIAL_WEIGHT", 1.0)
	viper.SetDefault("MOBILITY_WEIGHT", 1.0)
	viper.SetDefault("SEED", 0)
	viper.SetDefault("RESULT_DIR", "experiments")
	viper.SetDefault("LOG_LEVEL", "info")

	if cfgPath != "" {
		viper.SetConfigFile(cfgPath)
		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

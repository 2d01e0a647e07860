package util

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

func SetConfigDefaults() {
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "60s")
	viper.SetDefault("HTTP_SERVER_READ_TIMEOUT", "15s")
	viper.SetDefault("HTTP_SERVER_WRITE_TIMEOUT", "15s")
	viper.SetDefault("HTTP_SERVER_IDLE_TIMEOUT", "60s")
	viper.SetDefault("HTTP_SERVER_READ_HEADER_TIMEOUT", "5s")

	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("PLAYBACK_DEFAULT_DELAY", 50*time.Millisecond)
	viper.SetDefault("MAX_ARRAY_SIZE", 1000)
	viper.SetDefault("MAX_GRID_CELLS", 10000)
	viper.SetDefault("COMPARE_WORKERS", 4)

	viper.SetDefault("RATE_LIMIT_RPS", 20.0)
	viper.SetDefault("RATE_LIMIT_BURST", 40)
}

// ReadConfig. reads ./data/config.{yaml,json,toml} on top of the defaults. environment variables win over both.
// a missing config file is not an error, the defaults are enough to run.
func ReadConfig() error {
	SetConfigDefaults()
	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}

package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from app.env or from environment variables.
type Config struct {
	ServerAddress string `mapstructure:"SERVER_ADDRESS" validate:"required"`
	DBSource      string `mapstructure:"DB_SOURCE" validate:"required"`
	LogLevel      string `mapstructure:"LOG_LEVEL" validate:"oneof=trace debug info warn error fatal panic disabled"`
	LogPretty     bool   `mapstructure:"LOG_PRETTY"`
	GinMode       string `mapstructure:"GIN_MODE" validate:"oneof=debug release test"`
}

// LoadConfig reads configuration from app.env in path, with environment variables taking precedence.
// A missing app.env is fine as long as the environment provides the required values.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	// defaults also register the keys so AutomaticEnv picks them up on Unmarshal
	v.SetDefault("SERVER_ADDRESS", ":8080")
	v.SetDefault("DB_SOURCE", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)
	v.SetDefault("GIN_MODE", "release")

	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: read %s/app.env: %w", path, err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err = validator.New().Struct(config); err != nil {
		return config, fmt.Errorf("config: invalid: %w", err)
	}

	return config, nil
}

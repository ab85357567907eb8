package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Functions FunctionsConfig
	Upload    UploadConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port int
}

// FunctionsConfig is the read-only transport configuration: established once
// at startup, never mutated afterwards.
type FunctionsConfig struct {
	BaseURL string
	Timeout time.Duration
}

type UploadConfig struct {
	MaxBytes int64
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("FUNCTIONS_BASE_URL", "http://localhost:7071")
	viper.SetDefault("FUNCTIONS_TIMEOUT", "100s")
	viper.SetDefault("UPLOAD_MAX_BYTES", 50*1024*1024)
	viper.SetDefault("LOG_LEVEL", "info")

	baseURL := viper.GetString("FUNCTIONS_BASE_URL")
	if baseURL == "" {
		return nil, fmt.Errorf("FUNCTIONS_BASE_URL must not be empty")
	}

	timeout, err := time.ParseDuration(viper.GetString("FUNCTIONS_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("parsing FUNCTIONS_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Functions: FunctionsConfig{
			BaseURL: baseURL,
			Timeout: timeout,
		},
		Upload: UploadConfig{
			MaxBytes: viper.GetInt64("UPLOAD_MAX_BYTES"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}

package commons

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"abcretail/internal/config"
)

type fileConfig struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Functions struct {
		BaseURL string `yaml:"baseUrl"`
		Timeout string `yaml:"timeout"`
	} `yaml:"functions"`
	Upload struct {
		MaxBytes int64 `yaml:"maxBytes"`
	} `yaml:"upload"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// LoadConfig reads the yaml config file at path; when the file does not
// exist it falls back to the environment-driven loader.
func LoadConfig(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if fc.Functions.BaseURL == "" {
		return nil, fmt.Errorf("config file %s: functions.baseUrl is required", path)
	}

	timeout := 100 * time.Second
	if fc.Functions.Timeout != "" {
		timeout, err = time.ParseDuration(fc.Functions.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parsing functions.timeout: %w", err)
		}
	}

	port := fc.Server.Port
	if port == 0 {
		port = 8080
	}

	maxBytes := fc.Upload.MaxBytes
	if maxBytes == 0 {
		maxBytes = 50 * 1024 * 1024
	}

	level := fc.Log.Level
	if level == "" {
		level = "info"
	}

	return &config.Config{
		Server:    config.ServerConfig{Port: port},
		Functions: config.FunctionsConfig{BaseURL: fc.Functions.BaseURL, Timeout: timeout},
		Upload:    config.UploadConfig{MaxBytes: maxBytes},
		Log:       config.LogConfig{Level: level},
	}, nil
}

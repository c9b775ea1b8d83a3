package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// RestConfig holds the configuration settings of the REST service
type RestConfig struct {
	Port       string             `mapstructure:"port"`
	Database   DatabaseSettings   `mapstructure:"database"`
	Logger     LoggerSettings     `mapstructure:"logger"`
	Vertex     VertexSettings     `mapstructure:"vertex"`
	Processing ProcessingSettings `mapstructure:"processing"`
}

// Validate checks that all sections of the RestConfig are valid
func (c *RestConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Vertex.Validate(); err != nil {
		return err
	}
	if err := c.Processing.Validate(); err != nil {
		return err
	}
	return nil
}

// InitializeRestConfig loads the REST service configuration from the yaml file
// at configPath, layering environment variable overrides on top. A .env file
// in the working directory is honored when present.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(configPath)

	v.SetDefault("port", "8080")
	v.SetDefault("vertex.location", "asia-south1")
	v.SetDefault("vertex.model", "gemini-1.5-pro-002")
	v.SetDefault("processing.temp_dir", "temp_processing")
	v.SetDefault("processing.max_workers", 4)
	v.SetDefault("processing.report_basename", "extracted_data")
	v.SetDefault("processing.classify_unknown", false)

	bindings := map[string]string{
		"port":                    "SERVER_PORT",
		"database.dsn":            "DATABASE_DSN",
		"vertex.project_id":       "GOOGLE_CLOUD_PROJECT",
		"vertex.model":            "GEMINI_MODEL",
		"vertex.credentials_file": "GOOGLE_APPLICATION_CREDENTIALS",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

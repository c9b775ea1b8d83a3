package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// VertexSettings holds configuration settings for the Vertex AI Gemini client
type VertexSettings struct {
	ProjectID       string `mapstructure:"project_id" validate:"required"`
	Location        string `mapstructure:"location" validate:"required"`
	Model           string `mapstructure:"model" validate:"required"`
	Endpoint        string `mapstructure:"endpoint"`
	CredentialsFile string `mapstructure:"credentials_file"`
}

// APIEndpoint returns the regional Vertex AI endpoint. When no explicit
// endpoint is configured it is derived from the location.
func (s *VertexSettings) APIEndpoint() string {
	if s.Endpoint != "" {
		return s.Endpoint
	}
	return fmt.Sprintf("%s-aiplatform.googleapis.com", s.Location)
}

// Validate checks that all fields in VertexSettings are valid
func (s *VertexSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for VertexSettings: %w", err)
	}

	return nil
}

package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ProcessingSettings holds configuration settings for archive intake and
// document field extraction
type ProcessingSettings struct {
	TempDir         string `mapstructure:"temp_dir" validate:"required"`
	MaxWorkers      int    `mapstructure:"max_workers" validate:"required"`
	ReportBasename  string `mapstructure:"report_basename" validate:"required"`
	ClassifyUnknown bool   `mapstructure:"classify_unknown"`
}

// Validate checks that all fields in ProcessingSettings are valid
func (s *ProcessingSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for ProcessingSettings: %w", err)
	}

	if s.MaxWorkers < 1 || s.MaxWorkers > 64 {
		return fmt.Errorf("max workers must be between 1 and 64")
	}

	return nil
}

package jobs

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// JobStatusPending marks a job that has been accepted but not started yet
const JobStatusPending = "pending"

// JobStatusProcessing marks a job whose archive is currently being processed
const JobStatusProcessing = "processing"

// JobStatusCompleted marks a job that finished and produced a report
const JobStatusCompleted = "completed"

// JobStatusFailed marks a job that stopped with an error
const JobStatusFailed = "failed"

// Job entity
type Job struct {
	ID              string    `validate:"required,uuid4"`
	DateTimeCreated time.Time `validate:"required"`
	FileName        string    `validate:"required,min=1,max=255"`
	Status          string    `validate:"required,oneof=pending processing completed failed"`
	CaseCount       int       `validate:"min=0"`
	DocumentCount   int       `validate:"min=0"`
	TaskCount       int       `validate:"min=0"`
	FailedTaskCount int       `validate:"min=0"`
	ReportPath      *string   `validate:"omitempty,min=1"`
	ErrorMessage    *string   `validate:"omitempty,min=1"`
	DurationMillis  int64     `validate:"min=0"`
}

// Validate for validating Job struct
func (j *Job) Validate() error {
	validate := validator.New()

	err := validate.Struct(j)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

package jobs

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// JobQuery for filtering job listings. DateTimeCreated, when set, selects
// jobs created at or after that instant. MinDurationMillis, when set, selects
// jobs that ran at least that long.
type JobQuery struct {
	Status            string `validate:"omitempty,oneof=pending processing completed failed"`
	FileName          string `validate:"omitempty,max=255"`
	DateTimeCreated   time.Time
	MinDurationMillis int64 `validate:"min=0"`

	SortBy    string `validate:"omitempty,oneof=date_time_created file_name status duration_millis"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
	Limit     int    `validate:"min=0,max=1000"`
	Offset    int    `validate:"min=0"`
}

// NewJobQuery creates a JobQuery with default pagination and sorting
func NewJobQuery() *JobQuery {
	return &JobQuery{
		Limit:     100,
		Offset:    0,
		SortBy:    "date_time_created",
		SortOrder: "desc",
	}
}

// Validate for validating JobQuery struct
func (q *JobQuery) Validate() error {
	validate := validator.New()

	err := validate.Struct(q)
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

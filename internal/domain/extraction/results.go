package extraction

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldResult holds the model's answer for a single extraction field.
type FieldResult struct {
	Value      any     `json:"value"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// DocumentResult aggregates the extraction output for one logical document.
// Fields holds well formed answers keyed by field name. RawFields holds the
// textual rendering of answers that did not match the expected shape.
type DocumentResult struct {
	CaseID       string
	DocumentType string
	Fields       map[string]FieldResult
	RawFields    map[string]string
}

// ClassificationResult is the model's verdict when asked to classify a document.
type ClassificationResult struct {
	ClassifiedType string  `json:"classified_type" validate:"required"`
	Confidence     float64 `json:"confidence" validate:"gte=0,lte=1"`
	Reasoning      string  `json:"reasoning"`
}

// Validate for validating ClassificationResult struct
func (r *ClassificationResult) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
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

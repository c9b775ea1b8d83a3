package cases

import (
	"errors"
	"fmt"

	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// PageFile is a single PDF file belonging to a document group. Page is taken
// from the filename, PageCount and Encrypted are read from the PDF itself.
type PageFile struct {
	Path      string `validate:"required"`
	Name      string `validate:"required"`
	Page      int    `validate:"min=1"`
	PageCount int
	Encrypted bool
}

// DocumentGroup collects the pages of one logical document within a case,
// sorted ascending by page number.
type DocumentGroup struct {
	CaseID string     `validate:"required"`
	Type   string     `validate:"required,documentTypeValidation"`
	Pages  []PageFile `validate:"required,min=1,dive"`
}

// Validate for validating DocumentGroup struct
func (g *DocumentGroup) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("documentTypeValidation", validators.DocumentTypeValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(g)
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

// CaseFolder is one top level directory of an extracted archive. The
// directory name is the case ID. Groups are ordered by document type so the
// pipeline output is deterministic.
type CaseFolder struct {
	ID     string
	Path   string
	Groups []DocumentGroup
}

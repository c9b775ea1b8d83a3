package validators

import (
	"github.com/go-playground/validator/v10"
)

// DocumentTypeValidation validates that a field holds a recognized trade
// document type code. UNKNOWN is accepted for groups awaiting classification.
func DocumentTypeValidation(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "CRL", "INVOICE", "PACKING_LIST", "BL", "UNKNOWN":
		return true
	default:
		return false
	}
}

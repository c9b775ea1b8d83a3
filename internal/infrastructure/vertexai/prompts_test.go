//go:build unit
// +build unit

package vertexai

import (
	"strings"
	"testing"

	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/documents"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRenderExtractionPrompt fills every placeholder and keeps the strict
// output instructions intact
func TestRenderExtractionPrompt(t *testing.T) {
	fields := []documents.FieldDefinition{
		{Name: "INVOICE NO", Description: "The unique identifier of the invoice."},
		{Name: "INVOICE DATE", Description: "The date the invoice was issued."},
	}

	prompt := renderExtractionPrompt("CASE-001", "INVOICE", 3, fields)

	assert.Contains(t, prompt, "Analyze the provided 3 pages")
	assert.Contains(t, prompt, "'INVOICE' document associated with Case ID 'CASE-001'")
	assert.Contains(t, prompt, "- INVOICE NO: The unique identifier of the invoice.")
	assert.Contains(t, prompt, "- INVOICE DATE: The date the invoice was issued.")
	assert.Contains(t, prompt, "must start directly with `{` and end with `}`")
	assert.Contains(t, prompt, "```json")

	assert.NotContains(t, prompt, "{num_pages}")
	assert.NotContains(t, prompt, "{case_id}")
	assert.NotContains(t, prompt, "{field_list_str}")
	assert.NotContains(t, prompt, "{doc_type}")
	assert.NotContains(t, prompt, "~")
}

// TestRenderExtractionPrompt_FullCatalog renders the complete invoice catalog
// without leaving placeholders behind
func TestRenderExtractionPrompt_FullCatalog(t *testing.T) {
	fields, ok := documents.FieldsFor(documents.DocumentTypeInvoice)
	require.True(t, ok)

	prompt := renderExtractionPrompt("CASE-002", documents.DocumentTypeInvoice, 1, fields)

	for _, field := range fields {
		assert.Contains(t, prompt, "- "+field.Name+":")
	}
	assert.NotContains(t, prompt, "{field_list_str}")
}

// TestRenderClassificationPrompt lists the acceptable types one per line
func TestRenderClassificationPrompt(t *testing.T) {
	prompt := renderClassificationPrompt(2, []string{"CRL", "INVOICE", "PACKING_LIST", "BL"})

	assert.Contains(t, prompt, "the provided document pages (2 pages)")
	assert.Contains(t, prompt, "- CRL\n- INVOICE\n- PACKING_LIST\n- BL")
	assert.Contains(t, prompt, `use "UNKNOWN"`)
	assert.Contains(t, prompt, "`\"classified_type\"`")

	assert.NotContains(t, prompt, "{num_pages}")
	assert.NotContains(t, prompt, "{acceptable_types_str}")
	assert.NotContains(t, prompt, "~")
}

// TestPromptTemplates_NoStraySentinels ensures the sentinel swap covered the
// whole of both templates
func TestPromptTemplates_NoStraySentinels(t *testing.T) {
	assert.False(t, strings.Contains(classificationPromptTemplate, "~"))
	assert.False(t, strings.Contains(extractionPromptTemplate, "~"))
	assert.Equal(t, strings.Count(classificationPromptSource, "~"), strings.Count(classificationPromptTemplate, "`"))
	assert.Equal(t, strings.Count(extractionPromptSource, "~"), strings.Count(extractionPromptTemplate, "`"))
}

package extraction

import (
	"context"

	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/documents"
)

// ExtractionRequest carries one logical document to the extractor: the pages
// as raw PDF bytes, already sorted by page number, and the fields the model
// is asked to return.
type ExtractionRequest struct {
	CaseID       string
	DocumentType string
	Fields       []documents.FieldDefinition
	Pages        [][]byte
}

// FieldExtractor runs model backed field extraction over the pages of a
// single logical document.
type FieldExtractor interface {
	// ExtractFields sends the document pages and field definitions to the
	// model and returns the parsed per-field results.
	// It returns a DocumentResult or any error encountered during the call.
	ExtractFields(ctx context.Context, request *ExtractionRequest) (*DocumentResult, error)
}

// DocumentClassifier asks the model which of the acceptable document types a
// set of pages represents.
type DocumentClassifier interface {
	// ClassifyDocument returns the model's classification verdict for the
	// pages, restricted to the acceptable types. The verdict uses UNKNOWN
	// when no acceptable type matches.
	ClassifyDocument(ctx context.Context, pages [][]byte, acceptableTypes []string) (*ClassificationResult, error)
}

package vertexai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/extraction"
)

// stripFences removes a markdown code fence wrapper that models sometimes put
// around JSON output despite instructions not to.
func stripFences(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = cleaned[7:]
	}
	if strings.HasSuffix(cleaned, "```") {
		cleaned = cleaned[:len(cleaned)-3]
	}
	return strings.TrimSpace(cleaned)
}

// parseExtractionResponse decodes a field extraction response. Fields whose
// value is a complete value/confidence/reasoning object land in fields; any
// other shape is kept verbatim in rawFields keyed by field name.
func parseExtractionResponse(raw string) (map[string]extraction.FieldResult, map[string]string, error) {
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal([]byte(stripFences(raw)), &decoded); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", extraction.ErrMalformedResponse, err)
	}

	fields := make(map[string]extraction.FieldResult, len(decoded))
	rawFields := make(map[string]string)

	for name, value := range decoded {
		result, ok := decodeFieldResult(value)
		if !ok {
			rawFields[name] = string(value)
			continue
		}
		fields[name] = result
	}

	return fields, rawFields, nil
}

// decodeFieldResult reports whether value carries the expected triplet shape
func decodeFieldResult(value json.RawMessage) (extraction.FieldResult, bool) {
	var shape map[string]json.RawMessage
	if err := json.Unmarshal(value, &shape); err != nil {
		return extraction.FieldResult{}, false
	}

	for _, key := range []string{"value", "confidence", "reasoning"} {
		if _, found := shape[key]; !found {
			return extraction.FieldResult{}, false
		}
	}

	var result extraction.FieldResult
	if err := json.Unmarshal(value, &result); err != nil {
		return extraction.FieldResult{}, false
	}

	return result, true
}

// parseClassificationResponse decodes and validates a classification response
func parseClassificationResponse(raw string) (*extraction.ClassificationResult, error) {
	var result extraction.ClassificationResult
	if err := json.Unmarshal([]byte(stripFences(raw)), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", extraction.ErrMalformedResponse, err)
	}

	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", extraction.ErrMalformedResponse, err)
	}

	return &result, nil
}

//go:build unit
// +build unit

package cases

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validGroup() DocumentGroup {
	return DocumentGroup{
		CaseID: "case1",
		Type:   "INVOICE",
		Pages: []PageFile{
			{Path: "/tmp/case1/invoice_1.pdf", Name: "invoice_1.pdf", Page: 1},
			{Path: "/tmp/case1/invoice_2.pdf", Name: "invoice_2.pdf", Page: 2},
		},
	}
}

// TestDocumentGroup_Validation tests the validation of the DocumentGroup struct
func TestDocumentGroup_Validation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(g *DocumentGroup)
		expectErr bool
	}{
		{
			name:      "Valid group",
			mutate:    func(g *DocumentGroup) {},
			expectErr: false,
		},
		{
			name:      "Missing case id",
			mutate:    func(g *DocumentGroup) { g.CaseID = "" },
			expectErr: true,
		},
		{
			name:      "Missing type",
			mutate:    func(g *DocumentGroup) { g.Type = "" },
			expectErr: true,
		},
		{
			name:      "Unknown type",
			mutate:    func(g *DocumentGroup) { g.Type = "RECEIPT" },
			expectErr: true,
		},
		{
			name:      "No pages",
			mutate:    func(g *DocumentGroup) { g.Pages = nil },
			expectErr: true,
		},
		{
			name: "Page number below one",
			mutate: func(g *DocumentGroup) {
				g.Pages[0].Page = 0
			},
			expectErr: true,
		},
		{
			name: "Page without path",
			mutate: func(g *DocumentGroup) {
				g.Pages[1].Path = ""
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group := validGroup()
			tt.mutate(&group)

			err := group.Validate()
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestDocumentGroup_Validation_AcceptsAllRecognizedTypes ensures every
// recognized document type code passes the custom type validator, including
// the UNKNOWN sentinel used for groups awaiting classification
func TestDocumentGroup_Validation_AcceptsAllRecognizedTypes(t *testing.T) {
	for _, docType := range []string{"CRL", "INVOICE", "PACKING_LIST", "BL", "UNKNOWN"} {
		group := validGroup()
		group.Type = docType
		assert.NoError(t, group.Validate(), "type %s should validate", docType)
	}
}

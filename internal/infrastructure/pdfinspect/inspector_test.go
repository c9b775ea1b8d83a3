//go:build unit
// +build unit

package pdfinspect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInspect tests marker scanning over synthetic documents
func TestInspect(t *testing.T) {
	tests := []struct {
		name          string
		data          []byte
		expectErr     bool
		expectedPages int
		encrypted     bool
	}{
		{
			name:          "Single page document",
			data:          testutil.MinimalPDF(),
			expectedPages: 1,
		},
		{
			name:          "Three page document",
			data:          testutil.PDFWithPages(3),
			expectedPages: 3,
		},
		{
			name:          "Encrypted document",
			data:          testutil.EncryptedPDF(),
			expectedPages: 1,
			encrypted:     true,
		},
		{
			name:      "Plain text file",
			data:      []byte("hello world"),
			expectErr: true,
		},
		{
			name:      "Empty file",
			data:      nil,
			expectErr: true,
		},
		{
			name:      "Header too short",
			data:      []byte("%PDF-\n"),
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := Inspect(tt.data)
			if tt.expectErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrNotPDF)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "1.4", info.Version)
			assert.Equal(t, tt.expectedPages, info.PageCount)
			assert.Equal(t, tt.encrypted, info.Encrypted)
		})
	}
}

// TestInspect_PagesDictNotCounted ensures the page tree node itself is not
// counted as a page
func TestInspect_PagesDictNotCounted(t *testing.T) {
	data := []byte("%PDF-1.7\n1 0 obj\n<< /Type /Pages /Count 0 >>\nendobj\n%%EOF\n")

	info, err := Inspect(data)
	require.NoError(t, err)
	assert.Equal(t, 0, info.PageCount)
	assert.Equal(t, "1.7", info.Version)
}

// TestInspectFile tests scanning a document from disk
func TestInspectFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc_1.pdf")
	require.NoError(t, os.WriteFile(path, testutil.PDFWithPages(2), 0600))

	info, err := InspectFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, info.PageCount)

	_, err = InspectFile(filepath.Join(dir, "missing.pdf"))
	assert.Error(t, err)
}

package testutil

import (
	"archive/zip"
	"fmt"
	"os"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// PDFWithPages returns a synthetic PDF declaring n page objects
func PDFWithPages(n int) []byte {
	var sb strings.Builder
	sb.WriteString("%PDF-1.4\n")
	sb.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	sb.WriteString(fmt.Sprintf("2 0 obj\n<< /Type /Pages /Count %d >>\nendobj\n", n))
	for i := 0; i < n; i++ {
		sb.WriteString(fmt.Sprintf("%d 0 obj\n<< /Type /Page /Parent 2 0 R >>\nendobj\n", i+3))
	}
	sb.WriteString("trailer\n<< /Root 1 0 R >>\n%%EOF\n")
	return []byte(sb.String())
}

// MinimalPDF returns a synthetic single page PDF
func MinimalPDF() []byte {
	return PDFWithPages(1)
}

// EncryptedPDF returns a synthetic PDF whose trailer references an encryption
// dictionary
func EncryptedPDF() []byte {
	body := string(PDFWithPages(1))
	return []byte(strings.Replace(body, "<< /Root 1 0 R >>", "<< /Root 1 0 R /Encrypt 4 0 R >>", 1))
}

// BuildZip writes a zip archive at path. Map keys are archive entry names and
// values are file contents. Keys ending in "/" become directory entries.
func BuildZip(t *testing.T, path string, entries map[string][]byte) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)

	zw := zip.NewWriter(f)

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		w, err := zw.Create(name)
		require.NoError(t, err)
		if !strings.HasSuffix(name, "/") {
			_, err = w.Write(entries[name])
			require.NoError(t, err)
		}
	}

	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
}

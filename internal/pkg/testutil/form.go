package testutil

import (
	"mime/multipart"
	"os"
	"testing"

	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/pkg/httputil"
	"github.com/stretchr/testify/require"
)

// CreateTestFileAndForm creates a test file and form
func CreateTestFileAndForm(t *testing.T, fileName string, fileContent []byte) (*multipart.Form, error) {
	err := CreateTestFile(fileName, fileContent)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := os.Remove(fileName); err != nil {
			t.Logf("failed to remove temporary file %s: %v", fileName, err)
		}
	})

	form, err := httputil.CreateForm(fileContent, fileName)
	require.NoError(t, err)

	return form, nil
}

// CreateEmptyForm creates an empty multipart form for testing
func CreateEmptyForm() *multipart.Form {
	return &multipart.Form{
		File: make(map[string][]*multipart.FileHeader),
	}
}

// FileHeaderFromForm returns the first header of the form's "file" field
func FileHeaderFromForm(t *testing.T, form *multipart.Form) *multipart.FileHeader {
	t.Helper()

	fileHeaders := form.File["file"]
	require.NotEmpty(t, fileHeaders, "form has no file part")
	return fileHeaders[0]
}

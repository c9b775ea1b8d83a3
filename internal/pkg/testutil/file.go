package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTestFile create a test files
func CreateTestFile(fileName string, content []byte) error {
	err := os.WriteFile(fileName, content, 0600)
	if err != nil {
		return fmt.Errorf("failed to create test file: %w", err)
	}
	return nil
}

// WriteCaseFolder lays out one case directory under root with the given PDF
// files, where map keys are file names and values are file contents. It
// returns the case directory path.
func WriteCaseFolder(t *testing.T, root, caseID string, files map[string][]byte) string {
	t.Helper()

	caseDir := filepath.Join(root, caseID)
	require.NoError(t, os.MkdirAll(caseDir, 0750))

	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(caseDir, name), content, 0600))
	}

	return caseDir
}

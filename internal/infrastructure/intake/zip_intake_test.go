//go:build unit
// +build unit

package intake

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/cases"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/documents"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIntake(t *testing.T) (cases.ArchiveIntake, string) {
	t.Helper()

	tempDir := t.TempDir()
	log := testutil.SetupTestLogger(t)

	archiveIntake, err := NewZipIntake(tempDir, false, log)
	require.NoError(t, err)

	return archiveIntake, tempDir
}

// TestZipIntake_SaveUpload stores a multipart upload under a job scoped name
func TestZipIntake_SaveUpload(t *testing.T) {
	archiveIntake, tempDir := newTestIntake(t)

	form, err := testutil.CreateTestFileAndForm(t, "cases.zip", []byte("zip-bytes"))
	require.NoError(t, err)
	fileHeader := testutil.FileHeaderFromForm(t, form)

	path, err := archiveIntake.SaveUpload(fileHeader, "job-1")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tempDir, "job-1_cases.zip"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("zip-bytes"), content)
}

// TestZipIntake_Extract unpacks a valid archive and skips noise entries
func TestZipIntake_Extract(t *testing.T) {
	archiveIntake, tempDir := newTestIntake(t)

	archivePath := filepath.Join(tempDir, "job-1_cases.zip")
	testutil.BuildZip(t, archivePath, map[string][]byte{
		"case1/":                   nil,
		"case1/crl_1.pdf":          testutil.MinimalPDF(),
		"case1/invoice 1.pdf":      testutil.MinimalPDF(),
		"__MACOSX/case1/._crl.pdf": []byte("resource fork"),
		"case1/.DS_Store":          []byte("noise"),
		"case2/inv_2.pdf":          testutil.MinimalPDF(),
		"manifest.txt":             []byte("not a case file"),
	})

	destDir := filepath.Join(tempDir, "job-1_extracted")
	require.NoError(t, archiveIntake.Extract(context.Background(), archivePath, destDir))

	assert.FileExists(t, filepath.Join(destDir, "case1", "crl_1.pdf"))
	assert.FileExists(t, filepath.Join(destDir, "case1", "invoice 1.pdf"))
	assert.FileExists(t, filepath.Join(destDir, "case2", "inv_2.pdf"))
	assert.FileExists(t, filepath.Join(destDir, "manifest.txt"))
	assert.NoFileExists(t, filepath.Join(destDir, "case1", ".DS_Store"))
	assert.NoDirExists(t, filepath.Join(destDir, "__MACOSX"))
}

// TestZipIntake_Extract_InvalidArchive maps unreadable input onto the archive
// sentinel error
func TestZipIntake_Extract_InvalidArchive(t *testing.T) {
	archiveIntake, tempDir := newTestIntake(t)

	archivePath := filepath.Join(tempDir, "broken.zip")
	require.NoError(t, os.WriteFile(archivePath, []byte("definitely not a zip"), 0600))

	err := archiveIntake.Extract(context.Background(), archivePath, filepath.Join(tempDir, "out"))
	assert.ErrorIs(t, err, cases.ErrInvalidArchive)
}

// TestZipIntake_Extract_RejectsPathTraversal refuses entries that escape the
// destination directory
func TestZipIntake_Extract_RejectsPathTraversal(t *testing.T) {
	archiveIntake, tempDir := newTestIntake(t)

	archivePath := filepath.Join(tempDir, "evil.zip")
	testutil.BuildZip(t, archivePath, map[string][]byte{
		"../evil.txt": []byte("escape attempt"),
	})

	err := archiveIntake.Extract(context.Background(), archivePath, filepath.Join(tempDir, "out"))
	assert.ErrorIs(t, err, cases.ErrInvalidArchive)
	assert.NoFileExists(t, filepath.Join(tempDir, "evil.txt"))
}

// TestZipIntake_ScanCases groups PDFs per case folder by detected type
func TestZipIntake_ScanCases(t *testing.T) {
	archiveIntake, tempDir := newTestIntake(t)

	root := filepath.Join(tempDir, "job-1_extracted")
	testutil.WriteCaseFolder(t, root, "CASE-001", map[string][]byte{
		"Invoice 2.pdf": testutil.MinimalPDF(),
		"Invoice 1.pdf": testutil.MinimalPDF(),
		"CRL_1.PDF":     testutil.MinimalPDF(),
		"receipt 1.pdf": testutil.MinimalPDF(),
		"notes.txt":     []byte("ignored"),
	})
	testutil.WriteCaseFolder(t, root, "CASE-002", map[string][]byte{
		"bl 1.pdf": testutil.MinimalPDF(),
	})
	require.NoError(t, os.WriteFile(filepath.Join(root, "stray.pdf"), testutil.MinimalPDF(), 0600))

	caseFolders, err := archiveIntake.ScanCases(root)
	require.NoError(t, err)
	require.Len(t, caseFolders, 2)

	first := caseFolders[0]
	assert.Equal(t, "CASE-001", first.ID)
	require.Len(t, first.Groups, 2, "receipt should be skipped, leaving CRL and INVOICE")
	assert.Equal(t, "CRL", first.Groups[0].Type)
	assert.Equal(t, "INVOICE", first.Groups[1].Type)

	invoicePages := first.Groups[1].Pages
	require.Len(t, invoicePages, 2)
	assert.Equal(t, 1, invoicePages[0].Page)
	assert.Equal(t, 2, invoicePages[1].Page)
	assert.Equal(t, "Invoice 1.pdf", invoicePages[0].Name)
	assert.Equal(t, 1, invoicePages[0].PageCount)

	second := caseFolders[1]
	assert.Equal(t, "CASE-002", second.ID)
	require.Len(t, second.Groups, 1)
	assert.Equal(t, "BL", second.Groups[0].Type)
}

// TestZipIntake_ScanCases_NoFolders maps an empty extraction onto the case
// folder sentinel error
func TestZipIntake_ScanCases_NoFolders(t *testing.T) {
	archiveIntake, tempDir := newTestIntake(t)

	root := filepath.Join(tempDir, "empty")
	require.NoError(t, os.MkdirAll(root, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(root, "loose.pdf"), testutil.MinimalPDF(), 0600))

	_, err := archiveIntake.ScanCases(root)
	assert.ErrorIs(t, err, cases.ErrNoCaseFolders)
}

// TestZipIntake_ScanCases_EmptyCase keeps cases without recognizable
// documents so the report can mark them
func TestZipIntake_ScanCases_EmptyCase(t *testing.T) {
	archiveIntake, tempDir := newTestIntake(t)

	root := filepath.Join(tempDir, "job-1_extracted")
	testutil.WriteCaseFolder(t, root, "CASE-003", map[string][]byte{
		"readme.txt": []byte("no pdfs here"),
	})

	caseFolders, err := archiveIntake.ScanCases(root)
	require.NoError(t, err)
	require.Len(t, caseFolders, 1)
	assert.Equal(t, "CASE-003", caseFolders[0].ID)
	assert.Empty(t, caseFolders[0].Groups)
}

// TestZipIntake_ScanCases_KeepUnknown groups undetectable filenames under
// UNKNOWN instead of dropping them when classification is enabled
func TestZipIntake_ScanCases_KeepUnknown(t *testing.T) {
	tempDir := t.TempDir()
	log := testutil.SetupTestLogger(t)

	archiveIntake, err := NewZipIntake(tempDir, true, log)
	require.NoError(t, err)

	root := filepath.Join(tempDir, "job-9_extracted")
	testutil.WriteCaseFolder(t, root, "CASE-009", map[string][]byte{
		"receipt 1.pdf": testutil.MinimalPDF(),
		"crl 1.pdf":     testutil.MinimalPDF(),
	})

	caseFolders, err := archiveIntake.ScanCases(root)
	require.NoError(t, err)
	require.Len(t, caseFolders, 1)
	require.Len(t, caseFolders[0].Groups, 2)

	assert.Equal(t, documents.DocumentTypeCRL, caseFolders[0].Groups[0].Type)
	assert.Equal(t, documents.DocumentTypeUnknown, caseFolders[0].Groups[1].Type)
	require.Len(t, caseFolders[0].Groups[1].Pages, 1)
	assert.Equal(t, "receipt 1.pdf", caseFolders[0].Groups[1].Pages[0].Name)
}

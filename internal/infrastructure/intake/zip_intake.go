package intake

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/cases"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/documents"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/infrastructure/pdfinspect"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/pkg/logger"
)

type zipIntake struct {
	tempDir     string
	keepUnknown bool
	logger      logger.Logger
}

// NewZipIntake creates an ArchiveIntake rooted at tempDir. The directory is
// created when missing. With keepUnknown set, files whose document type
// cannot be read off the filename are grouped under UNKNOWN instead of
// being skipped, so a downstream classifier can decide their type.
func NewZipIntake(tempDir string, keepUnknown bool, logger logger.Logger) (cases.ArchiveIntake, error) {
	if err := os.MkdirAll(tempDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create working directory %s: %w", tempDir, err)
	}
	return &zipIntake{
		tempDir:     tempDir,
		keepUnknown: keepUnknown,
		logger:      logger,
	}, nil
}

func (z *zipIntake) SaveUpload(fileHeader *multipart.FileHeader, jobID string) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer func() {
		if err := src.Close(); err != nil {
			z.logger.Warn("Failed to close uploaded file: ", err)
		}
	}()

	name := filepath.Base(fileHeader.Filename)
	destPath := filepath.Join(z.tempDir, fmt.Sprintf("%s_%s", jobID, name))

	dst, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", destPath, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		closeErr := dst.Close()
		if closeErr != nil {
			z.logger.Warn("Failed to close ", destPath, ": ", closeErr)
		}
		return "", fmt.Errorf("failed to write %s: %w", destPath, err)
	}

	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", destPath, err)
	}

	z.logger.Info("Saved uploaded archive to ", destPath)
	return destPath, nil
}

func (z *zipIntake) Extract(ctx context.Context, archivePath, destDir string) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("%w: %s", cases.ErrInvalidArchive, archivePath)
	}
	defer func() {
		if err := reader.Close(); err != nil {
			z.logger.Warn("Failed to close archive reader: ", err)
		}
	}()

	if err := os.MkdirAll(destDir, 0750); err != nil {
		return fmt.Errorf("failed to create %s: %w", destDir, err)
	}

	for _, file := range reader.File {
		if err := ctx.Err(); err != nil {
			return err
		}

		if skipEntry(file.Name) {
			z.logger.Info("Skipping archive entry ", file.Name)
			continue
		}

		if err := z.extractEntry(file, destDir); err != nil {
			return err
		}
	}

	z.logger.Info("Extracted ", archivePath, " to ", destDir)
	return nil
}

// skipEntry filters archive noise such as macOS resource forks and hidden
// files out of the extraction.
func skipEntry(name string) bool {
	for _, segment := range strings.Split(name, "/") {
		if segment == "__MACOSX" || strings.HasPrefix(segment, ".") {
			return true
		}
	}
	return false
}

func (z *zipIntake) extractEntry(file *zip.File, destDir string) error {
	destPath := filepath.Join(destDir, file.Name)

	// Entries must stay inside destDir even when they carry ".." segments.
	if !strings.HasPrefix(destPath, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return fmt.Errorf("%w: illegal entry path %s", cases.ErrInvalidArchive, file.Name)
	}

	if file.FileInfo().IsDir() {
		if err := os.MkdirAll(destPath, 0750); err != nil {
			return fmt.Errorf("failed to create %s: %w", destPath, err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0750); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(destPath), err)
	}

	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("%w: unreadable entry %s", cases.ErrInvalidArchive, file.Name)
	}
	defer func() {
		if err := src.Close(); err != nil {
			z.logger.Warn("Failed to close archive entry ", file.Name, ": ", err)
		}
	}()

	dst, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", destPath, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		closeErr := dst.Close()
		if closeErr != nil {
			z.logger.Warn("Failed to close ", destPath, ": ", closeErr)
		}
		return fmt.Errorf("failed to write %s: %w", destPath, err)
	}

	if err := dst.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", destPath, err)
	}

	return nil
}

func (z *zipIntake) ScanCases(dir string) ([]cases.CaseFolder, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var caseFolders []cases.CaseFolder
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		caseDir := filepath.Join(dir, entry.Name())
		groups, err := z.groupCaseFiles(entry.Name(), caseDir)
		if err != nil {
			return nil, err
		}

		caseFolders = append(caseFolders, cases.CaseFolder{
			ID:     entry.Name(),
			Path:   caseDir,
			Groups: groups,
		})
	}

	if len(caseFolders) == 0 {
		z.logger.Error("No case folders found in the extracted content at ", dir)
		return nil, cases.ErrNoCaseFolders
	}

	return caseFolders, nil
}

// groupCaseFiles collects the top level PDF files of one case directory into
// document groups keyed by detected type, with pages sorted ascending. Files
// whose type cannot be determined are skipped with a warning, unless the
// intake keeps them under UNKNOWN for classification.
func (z *zipIntake) groupCaseFiles(caseID, caseDir string) ([]cases.DocumentGroup, error) {
	entries, err := os.ReadDir(caseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", caseDir, err)
	}

	groupsByType := make(map[string][]cases.PageFile)
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}

		name := entry.Name()
		docType, err := documents.DetectType(documents.BaseName(name))
		if err != nil {
			if !z.keepUnknown {
				z.logger.Warn("Skipping file ", name, " in case ", caseID, ": ", err)
				continue
			}
			z.logger.Info("Grouping file ", name, " in case ", caseID, " under ", documents.DocumentTypeUnknown, " for classification")
			docType = documents.DocumentTypeUnknown
		}

		page := cases.PageFile{
			Path: filepath.Join(caseDir, name),
			Name: name,
			Page: documents.ParsePageNumber(name),
		}

		if info, err := pdfinspect.InspectFile(page.Path); err != nil {
			z.logger.Warn("File ", name, " in case ", caseID, " does not look like a PDF: ", err)
		} else {
			page.PageCount = info.PageCount
			page.Encrypted = info.Encrypted
			if info.Encrypted {
				z.logger.Warn("File ", name, " in case ", caseID, " is encrypted and may not be readable")
			}
		}

		groupsByType[docType] = append(groupsByType[docType], page)
	}

	types := make([]string, 0, len(groupsByType))
	for docType := range groupsByType {
		types = append(types, docType)
	}
	sort.Strings(types)

	groups := make([]cases.DocumentGroup, 0, len(types))
	for _, docType := range types {
		pages := groupsByType[docType]
		sort.SliceStable(pages, func(i, j int) bool {
			return pages[i].Page < pages[j].Page
		})
		groups = append(groups, cases.DocumentGroup{
			CaseID: caseID,
			Type:   docType,
			Pages:  pages,
		})
	}

	return groups, nil
}

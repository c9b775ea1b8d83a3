package cases

import (
	"context"
	"mime/multipart"
)

// ArchiveIntake defines methods for receiving an uploaded ZIP archive and
// turning it into case folders on disk
type ArchiveIntake interface {
	// SaveUpload persists the uploaded archive under the working directory
	// keyed by job id and returns the stored path
	SaveUpload(fileHeader *multipart.FileHeader, jobID string) (string, error)
	// Extract unpacks the archive at archivePath into destDir
	Extract(ctx context.Context, archivePath, destDir string) error
	// ScanCases walks the top level directories of dir and groups their PDF
	// files into typed document groups
	ScanCases(dir string) ([]CaseFolder, error)
}

// ProcessingRequest carries the inputs for one archive processing run
type ProcessingRequest struct {
	JobID       string
	ArchivePath string
}

// ProcessingResult summarizes one archive processing run
type ProcessingResult struct {
	ReportPath      string
	CaseCount       int
	DocumentCount   int
	TaskCount       int
	FailedTaskCount int
}

// CaseProcessingService defines methods for running the extraction pipeline
// over an uploaded archive
type CaseProcessingService interface {
	// ProcessArchive extracts the archive, runs field extraction for every
	// document group concurrently and writes the consolidated report. It
	// returns the report path together with run counters
	ProcessArchive(ctx context.Context, request *ProcessingRequest) (*ProcessingResult, error)
}

// ReportWriter persists consolidated case rows into a spreadsheet report.
// Rows are heterogeneous because column sets depend on which document types
// and fields the model returned for each case.
type ReportWriter interface {
	// Write renders rows into a workbook at path
	Write(path string, rows []map[string]any) error
}

package cases

import (
	"errors"
	"fmt"
)

// ErrInvalidArchive indicates the uploaded file is not a readable zip archive.
var ErrInvalidArchive = errors.New("invalid zip file")

// ErrNoCaseFolders indicates the archive contains no top level case folders.
var ErrNoCaseFolders = errors.New("no case folders found in the zip file")

// ErrUploadSave indicates the uploaded archive could not be stored.
var ErrUploadSave = errors.New("failed to save uploaded file")

// ErrReportFailure indicates the extracted data could not be written to the
// spreadsheet report.
var ErrReportFailure = errors.New("failed to save results to excel")

// UploadSaveError carries the underlying storage failure behind ErrUploadSave.
type UploadSaveError struct {
	Err error
}

func (e *UploadSaveError) Error() string {
	return fmt.Sprintf("%v: %v", ErrUploadSave, e.Err)
}

// Is reports whether target matches the upload save sentinel
func (e *UploadSaveError) Is(target error) bool {
	return target == ErrUploadSave
}

func (e *UploadSaveError) Unwrap() error {
	return e.Err
}

// ReportError carries the underlying report build or save failure behind
// ErrReportFailure.
type ReportError struct {
	Err error
}

func (e *ReportError) Error() string {
	return fmt.Sprintf("%v: %v", ErrReportFailure, e.Err)
}

// Is reports whether target matches the report failure sentinel
func (e *ReportError) Is(target error) bool {
	return target == ErrReportFailure
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

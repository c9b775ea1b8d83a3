//go:build unit
// +build unit

package app

import (
	"context"
	"mime/multipart"

	"github.com/stretchr/testify/mock"

	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/cases"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/extraction"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/jobs"
)

// MockArchiveIntake is a mock implementation of ArchiveIntake
type MockArchiveIntake struct {
	mock.Mock
}

func (m *MockArchiveIntake) SaveUpload(fileHeader *multipart.FileHeader, jobID string) (string, error) {
	args := m.Called(fileHeader, jobID)
	return args.String(0), args.Error(1)
}

func (m *MockArchiveIntake) Extract(ctx context.Context, archivePath, destDir string) error {
	args := m.Called(ctx, archivePath, destDir)
	return args.Error(0)
}

func (m *MockArchiveIntake) ScanCases(dir string) ([]cases.CaseFolder, error) {
	args := m.Called(dir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cases.CaseFolder), args.Error(1)
}

// MockFieldExtractor is a mock implementation of FieldExtractor
type MockFieldExtractor struct {
	mock.Mock
}

func (m *MockFieldExtractor) ExtractFields(ctx context.Context, request *extraction.ExtractionRequest) (*extraction.DocumentResult, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*extraction.DocumentResult), args.Error(1)
}

// MockDocumentClassifier is a mock implementation of DocumentClassifier
type MockDocumentClassifier struct {
	mock.Mock
}

func (m *MockDocumentClassifier) ClassifyDocument(ctx context.Context, pages [][]byte, acceptableTypes []string) (*extraction.ClassificationResult, error) {
	args := m.Called(ctx, pages, acceptableTypes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*extraction.ClassificationResult), args.Error(1)
}

// MockReportWriter is a mock implementation of ReportWriter
type MockReportWriter struct {
	mock.Mock
}

func (m *MockReportWriter) Write(path string, rows []map[string]any) error {
	args := m.Called(path, rows)
	return args.Error(0)
}

// MockJobRepository is a mock implementation of JobRepository
type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) Create(ctx context.Context, job *jobs.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) List(ctx context.Context, query *jobs.JobQuery) ([]*jobs.Job, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*jobs.Job), args.Error(1)
}

func (m *MockJobRepository) GetByID(ctx context.Context, jobID string) (*jobs.Job, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jobs.Job), args.Error(1)
}

func (m *MockJobRepository) UpdateByID(ctx context.Context, job *jobs.Job) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepository) DeleteByID(ctx context.Context, jobID string) error {
	args := m.Called(ctx, jobID)
	return args.Error(0)
}

// MockCaseProcessingService is a mock implementation of CaseProcessingService
type MockCaseProcessingService struct {
	mock.Mock
}

func (m *MockCaseProcessingService) ProcessArchive(ctx context.Context, request *cases.ProcessingRequest) (*cases.ProcessingResult, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cases.ProcessingResult), args.Error(1)
}

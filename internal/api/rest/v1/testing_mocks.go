//go:build unit
// +build unit

package v1

import (
	"context"
	"mime/multipart"

	"github.com/stretchr/testify/mock"

	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/jobs"
)

// MockJobProcessingService is a mock implementation of JobProcessingService
type MockJobProcessingService struct {
	mock.Mock
}

func (m *MockJobProcessingService) ProcessUpload(ctx context.Context, fileHeader *multipart.FileHeader) (*jobs.Job, error) {
	args := m.Called(ctx, fileHeader)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jobs.Job), args.Error(1)
}

// MockJobMetadataService is a mock implementation of JobMetadataService
type MockJobMetadataService struct {
	mock.Mock
}

func (m *MockJobMetadataService) List(ctx context.Context, query *jobs.JobQuery) ([]*jobs.Job, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*jobs.Job), args.Error(1)
}

func (m *MockJobMetadataService) GetByID(ctx context.Context, jobID string) (*jobs.Job, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jobs.Job), args.Error(1)
}

func (m *MockJobMetadataService) DeleteByID(ctx context.Context, jobID string) error {
	args := m.Called(ctx, jobID)
	return args.Error(0)
}

// MockReportDownloadService is a mock implementation of ReportDownloadService
type MockReportDownloadService struct {
	mock.Mock
}

func (m *MockReportDownloadService) DownloadByID(ctx context.Context, jobID string) ([]byte, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

package app

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/cases"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/jobs"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/pkg/logger"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/pkg/metrics"
)

// jobProcessingService implements the JobProcessingService interface tying
// archive processing to the job ledger
type jobProcessingService struct {
	caseProcessor cases.CaseProcessingService
	intake        cases.ArchiveIntake
	jobRepository jobs.JobRepository
	collector     *metrics.Collector
	logger        logger.Logger
}

// NewJobProcessingService creates a new instance of JobProcessingService
func NewJobProcessingService(
	caseProcessor cases.CaseProcessingService,
	intake cases.ArchiveIntake,
	jobRepository jobs.JobRepository,
	collector *metrics.Collector,
	logger logger.Logger,
) (jobs.JobProcessingService, error) {
	return &jobProcessingService{
		caseProcessor: caseProcessor,
		intake:        intake,
		jobRepository: jobRepository,
		collector:     collector,
		logger:        logger,
	}, nil
}

// ProcessUpload stores the uploaded archive, runs the extraction pipeline
// over it and records the run in the job ledger. The uploaded archive is
// removed once the run finishes; the report file is kept for download.
func (s *jobProcessingService) ProcessUpload(ctx context.Context, fileHeader *multipart.FileHeader) (*jobs.Job, error) {
	started := time.Now()

	job := &jobs.Job{
		ID:              uuid.NewString(),
		DateTimeCreated: started,
		FileName:        filepath.Base(fileHeader.Filename),
		Status:          jobs.JobStatusPending,
	}
	if err := s.jobRepository.Create(ctx, job); err != nil {
		return nil, err
	}
	s.logger.Info("Received file ", job.FileName, " as job ", job.ID)

	archivePath, err := s.intake.SaveUpload(fileHeader, job.ID)
	if err != nil {
		saveErr := &cases.UploadSaveError{Err: err}
		s.markFailed(ctx, job, started, saveErr)
		return nil, saveErr
	}
	defer func() {
		if err := os.Remove(archivePath); err != nil {
			s.logger.Warn("Failed to clean up uploaded archive ", archivePath, ": ", err)
			return
		}
		s.logger.Info("Cleaned up uploaded archive ", archivePath)
	}()

	job.Status = jobs.JobStatusProcessing
	if err := s.jobRepository.UpdateByID(ctx, job); err != nil {
		s.markFailed(ctx, job, started, err)
		return nil, err
	}

	result, err := s.caseProcessor.ProcessArchive(ctx, &cases.ProcessingRequest{
		JobID:       job.ID,
		ArchivePath: archivePath,
	})
	if err != nil {
		s.markFailed(ctx, job, started, err)
		return nil, err
	}

	job.Status = jobs.JobStatusCompleted
	job.CaseCount = result.CaseCount
	job.DocumentCount = result.DocumentCount
	job.TaskCount = result.TaskCount
	job.FailedTaskCount = result.FailedTaskCount
	job.ReportPath = &result.ReportPath
	job.DurationMillis = time.Since(started).Milliseconds()
	if err := s.jobRepository.UpdateByID(ctx, job); err != nil {
		return nil, err
	}

	s.collector.RecordJob(jobs.JobStatusCompleted)
	s.logger.Info("Job ", job.ID, " completed in ", job.DurationMillis, " ms: ",
		result.TaskCount, " tasks, ", result.FailedTaskCount, " failed")
	return job, nil
}

// markFailed records the failure on the job ledger. Ledger update problems
// are logged so they do not mask the original error.
func (s *jobProcessingService) markFailed(ctx context.Context, job *jobs.Job, started time.Time, cause error) {
	message := cause.Error()
	job.Status = jobs.JobStatusFailed
	job.ErrorMessage = &message
	job.DurationMillis = time.Since(started).Milliseconds()
	if err := s.jobRepository.UpdateByID(ctx, job); err != nil {
		s.logger.Error("Failed to record failure of job ", job.ID, ": ", err)
	}

	s.collector.RecordJob(jobs.JobStatusFailed)
	s.logger.Error("Job ", job.ID, " failed: ", cause)
}

// jobMetadataService implements the JobMetadataService interface for
// retrieving and deleting job metadata
type jobMetadataService struct {
	jobRepository jobs.JobRepository
	logger        logger.Logger
}

// NewJobMetadataService creates a new instance of jobMetadataService
func NewJobMetadataService(jobRepository jobs.JobRepository, logger logger.Logger) (jobs.JobMetadataService, error) {
	return &jobMetadataService{
		jobRepository: jobRepository,
		logger:        logger,
	}, nil
}

// List retrieves all jobs' metadata considering a query filter
func (s *jobMetadataService) List(ctx context.Context, query *jobs.JobQuery) ([]*jobs.Job, error) {
	jobList, err := s.jobRepository.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return jobList, nil
}

// GetByID retrieves a job's metadata by ID
func (s *jobMetadataService) GetByID(ctx context.Context, jobID string) (*jobs.Job, error) {
	job, err := s.jobRepository.GetByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return job, nil
}

// DeleteByID deletes a job and its report file by ID
func (s *jobMetadataService) DeleteByID(ctx context.Context, jobID string) error {
	job, err := s.jobRepository.GetByID(ctx, jobID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := s.jobRepository.DeleteByID(ctx, jobID); err != nil {
		return fmt.Errorf("%w", err)
	}

	if job.ReportPath != nil {
		if err := os.Remove(*job.ReportPath); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("Failed to remove report file ", *job.ReportPath, ": ", err)
		}
	}

	return nil
}

// reportDownloadService implements the ReportDownloadService interface for
// fetching the report workbook of a finished job
type reportDownloadService struct {
	jobRepository jobs.JobRepository
	logger        logger.Logger
}

// NewReportDownloadService creates a new instance of ReportDownloadService
func NewReportDownloadService(jobRepository jobs.JobRepository, logger logger.Logger) (jobs.ReportDownloadService, error) {
	return &reportDownloadService{
		jobRepository: jobRepository,
		logger:        logger,
	}, nil
}

// DownloadByID reads the report workbook of a job by its ID
func (s *reportDownloadService) DownloadByID(ctx context.Context, jobID string) ([]byte, error) {
	job, err := s.jobRepository.GetByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if job.ReportPath == nil {
		return nil, fmt.Errorf("no report available for job with ID %s", jobID)
	}

	content, err := os.ReadFile(*job.ReportPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read report for job with ID %s: %w", jobID, err)
	}

	s.logger.Info("Read report for job ", jobID, " from ", *job.ReportPath)
	return content, nil
}

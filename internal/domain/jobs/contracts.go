package jobs

import (
	"context"
	"mime/multipart"
)

// JobProcessingService defines methods for running uploaded archives through
// the extraction pipeline.
type JobProcessingService interface {
	// ProcessUpload stores the uploaded archive, records a job for it, runs the
	// extraction pipeline and persists the outcome.
	// It returns the finished Job and any error encountered during processing.
	ProcessUpload(ctx context.Context, fileHeader *multipart.FileHeader) (*Job, error)
}

// JobMetadataService defines methods for retrieving Jobs and deleting a job
// along with its report file.
type JobMetadataService interface {
	// List retrieves all jobs considering a query filter when set.
	// It returns a slice of Job and any error encountered during the retrieval.
	List(ctx context.Context, query *JobQuery) ([]*Job, error)

	// GetByID retrieves the job by ID.
	// It returns the Job and any error encountered during the retrieval process.
	GetByID(ctx context.Context, jobID string) (*Job, error)

	// DeleteByID deletes a job and its report file by ID.
	// It returns any error encountered during the deletion process.
	DeleteByID(ctx context.Context, jobID string) error
}

// ReportDownloadService defines methods for downloading job reports.
type ReportDownloadService interface {
	// DownloadByID retrieves the report content of a finished job by job ID.
	DownloadByID(ctx context.Context, jobID string) ([]byte, error)
}

// JobRepository defines the interface for Job-related operations
type JobRepository interface {
	// Create adds a new Job to the database
	Create(ctx context.Context, job *Job) error
	// List lists Jobs in the database with optional filter
	List(ctx context.Context, query *JobQuery) ([]*Job, error)
	// GetByID retrieves a Job from the database by ID
	GetByID(ctx context.Context, jobID string) (*Job, error)
	// UpdateByID updates a Job in the database by ID
	UpdateByID(ctx context.Context, job *Job) error
	// DeleteByID deletes a Job in the database by ID
	DeleteByID(ctx context.Context, jobID string) error
}

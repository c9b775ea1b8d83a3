package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/jobs"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/infrastructure/persistence/models"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormJobRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormJobRepository creates a new GORM-based JobRepository implementation
func NewGormJobRepository(db *gorm.DB, logger logger.Logger) (jobs.JobRepository, error) {
	return &gormJobRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormJobRepository) Create(ctx context.Context, job *jobs.Job) error {
	// Validate domain entity (business rules)
	if err := job.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	// Convert to GORM model
	model := &models.JobModel{}
	model.FromDomain(job)

	// Persist to database
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}

	r.logger.Info("Created job metadata with id ", job.ID)
	return nil
}

func (r *gormJobRepository) List(ctx context.Context, query *jobs.JobQuery) ([]*jobs.Job, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.JobModel
	dbQuery := r.db.WithContext(ctx).Model(&models.JobModel{})

	// Apply filters
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if query.FileName != "" {
		dbQuery = dbQuery.Where("file_name LIKE ?", "%"+query.FileName+"%")
	}
	if !query.DateTimeCreated.IsZero() {
		dbQuery = dbQuery.Where("date_time_created >= ?", query.DateTimeCreated)
	}
	if query.MinDurationMillis > 0 {
		dbQuery = dbQuery.Where("duration_millis >= ?", query.MinDurationMillis)
	}

	// Sorting
	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	// Pagination
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch jobs: %w", err)
	}

	// Convert to domain models
	domainList := make([]*jobs.Job, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormJobRepository) GetByID(ctx context.Context, jobID string) (*jobs.Job, error) {
	var model models.JobModel
	if err := r.db.WithContext(ctx).Where("id = ?", jobID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("job with ID %s not found", jobID)
		}
		return nil, fmt.Errorf("failed to fetch job: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormJobRepository) UpdateByID(ctx context.Context, job *jobs.Job) error {
	if err := job.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.JobModel{}
	model.FromDomain(job)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}

	r.logger.Info("Updated job metadata with id ", job.ID)
	return nil
}

func (r *gormJobRepository) DeleteByID(ctx context.Context, jobID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", jobID).Delete(&models.JobModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	r.logger.Info("Deleted job metadata with id ", jobID)
	return nil
}

//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/jobs"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/infrastructure/persistence/models"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/pkg/config"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB      *gorm.DB
	JobRepo jobs.JobRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	// Create connection
	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	// Register cleanup
	t.Cleanup(func() {
		CloseDB(db)
		cleanupFunc()
	})

	// Migrate schema
	err = db.AutoMigrate(&models.JobModel{})
	require.NoError(t, err, "Failed to migrate schema")

	// Create repositories
	logger := testutil.SetupTestLogger(t)

	jobRepo, err := NewGormJobRepository(db, logger)
	require.NoError(t, err, "Failed to create job repository")

	return &TestContext{
		DB:      db,
		JobRepo: jobRepo,
	}
}

// CreateTestJob creates a pending test job with default values
func CreateTestJob(t *testing.T, fileName string) *jobs.Job {
	t.Helper()

	if fileName == "" {
		fileName = "cases.zip"
	}

	return &jobs.Job{
		ID:              uuid.NewString(),
		DateTimeCreated: time.Now(),
		FileName:        fileName,
		Status:          jobs.JobStatusPending,
	}
}

// CreateTestJobWithOptions creates a test job with custom options
func CreateTestJobWithOptions(t *testing.T, fileName, status string, durationMillis int64) *jobs.Job {
	t.Helper()

	return &jobs.Job{
		ID:              uuid.NewString(),
		DateTimeCreated: time.Now(),
		FileName:        fileName,
		Status:          status,
		DurationMillis:  durationMillis,
	}
}

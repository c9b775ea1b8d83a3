//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/jobs"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/infrastructure/persistence"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds the job services and database context for integration tests
type TestServices struct {
	JobMetadataService    jobs.JobMetadataService
	ReportDownloadService jobs.ReportDownloadService

	// Infrastructure
	DBContext *persistence.TestContext
}

// SetupTestServices initializes the job services backed by a real database.
// Archive processing needs a live Vertex AI endpoint and is covered by unit
// tests instead; the services wired here exercise the full persistence path.
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)

	// Setup database
	dbContext := persistence.SetupTestDB(t, dbType)

	jobMetadataService, err := NewJobMetadataService(dbContext.JobRepo, logger)
	require.NoError(t, err, "Failed to create JobMetadataService")

	reportDownloadService, err := NewReportDownloadService(dbContext.JobRepo, logger)
	require.NoError(t, err, "Failed to create ReportDownloadService")

	return &TestServices{
		JobMetadataService:    jobMetadataService,
		ReportDownloadService: reportDownloadService,
		DBContext:             dbContext,
	}
}

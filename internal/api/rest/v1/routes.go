package v1

import (
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/jobs"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	jobProcessingService jobs.JobProcessingService,
	jobMetadataService jobs.JobMetadataService,
	reportDownloadService jobs.ReportDownloadService) {

	// Processing routes stay at the root for compatibility with clients of
	// the original upload API, which served the trailing-slash form. Both
	// spellings are registered so neither needs a redirect
	processHandler := NewProcessHandler(jobProcessingService, reportDownloadService)
	r.GET("/", processHandler.Welcome)
	r.POST("/process-zip", processHandler.ProcessZip)
	r.POST("/process-zip/", processHandler.ProcessZip)

	v1 := r.Group(BasePath) // lookup in version file

	// Job Ledger Routes
	jobHandler := NewJobHandler(jobMetadataService, reportDownloadService)
	v1.GET("/jobs", jobHandler.ListMetadata)
	v1.GET("/jobs/:id", jobHandler.GetMetadataByID)
	v1.GET("/jobs/:id/report", jobHandler.DownloadReportByID)
	v1.DELETE("/jobs/:id", jobHandler.DeleteByID)
}

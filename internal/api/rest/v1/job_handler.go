package v1

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/jobs"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/pkg/strutil"
)

// JobHandler defines the interface for handling job ledger operations
type JobHandler interface {
	ListMetadata(ctx *gin.Context)
	GetMetadataByID(ctx *gin.Context)
	DownloadReportByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// JobHandler struct holds the services
type jobHandler struct {
	jobMetadataService    jobs.JobMetadataService
	reportDownloadService jobs.ReportDownloadService
}

// NewJobHandler creates a new JobHandler
func NewJobHandler(jobMetadataService jobs.JobMetadataService, reportDownloadService jobs.ReportDownloadService) JobHandler {
	return &jobHandler{
		jobMetadataService:    jobMetadataService,
		reportDownloadService: reportDownloadService,
	}
}

// ListMetadata handles the GET request to list job metadata with optional query parameters
// @Summary List processing job metadata based on query parameters
// @Description Fetch a list of processing jobs filtered by status, file name, creation date and duration, with pagination and sorting options.
// @Tags Job
// @Accept json
// @Produce json
// @Param status query string false "Job Status (pending|processing|completed|failed)"
// @Param fileName query string false "Uploaded File Name"
// @Param dateTimeCreated query string false "Job Creation Date (RFC3339)"
// @Param minDurationMillis query int false "Minimum run duration in milliseconds"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} JobResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /jobs [get]
func (handler *jobHandler) ListMetadata(ctx *gin.Context) {
	query := jobs.NewJobQuery()

	if status := ctx.Query("status"); len(status) > 0 {
		query.Status = status
	}

	if fileName := ctx.Query("fileName"); len(fileName) > 0 {
		query.FileName = fileName
	}

	if dateTimeCreated := ctx.Query("dateTimeCreated"); len(dateTimeCreated) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, dateTimeCreated)
		if err == nil {
			query.DateTimeCreated = parsedTime
		}
	}

	if minDuration := ctx.Query("minDurationMillis"); len(minDuration) > 0 {
		query.MinDurationMillis = strutil.ConvertToInt64(minDuration)
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(400, errorResponse)
		return
	}

	jobList, err := handler.jobMetadataService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("list query failed: %v", err.Error())
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var listResponse = []JobResponse{}
	for _, job := range jobList {
		listResponse = append(listResponse, newJobResponse(job))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetMetadataByID handles the GET request to retrieve job metadata by ID
// @Summary Retrieve processing job metadata by ID
// @Description Fetch the metadata of a processing job by ID, including status, counters and run duration.
// @Tags Job
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} JobResponse
// @Failure 404 {object} ErrorResponse
// @Router /jobs/{id} [get]
func (handler *jobHandler) GetMetadataByID(ctx *gin.Context) {
	jobID := ctx.Param("id")

	job, err := handler.jobMetadataService.GetByID(ctx, jobID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("job with id %s not found", jobID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newJobResponse(job))
}

// DownloadReportByID handles the GET request to download the retained report workbook of a job
// @Summary Download the report workbook of a completed job
// @Description Download the consolidated Excel report that a completed processing job produced.
// @Tags Job
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Job ID"
// @Success 200 {file} file "Consolidated extraction report"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /jobs/{id}/report [get]
func (handler *jobHandler) DownloadReportByID(ctx *gin.Context) {
	jobID := ctx.Param("id")

	job, err := handler.jobMetadataService.GetByID(ctx, jobID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("job with id %s not found", jobID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	if job.ReportPath == nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("no report available for job %s", jobID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	content, err := handler.reportDownloadService.DownloadByID(ctx, jobID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("could not download report for job %s: %v", jobID, err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	ctx.Writer.WriteHeader(http.StatusOK)
	ctx.Writer.Header().Set("Content-Type", xlsxContentType)
	ctx.Writer.Header().Set("Content-Disposition", "attachment; filename="+filepath.Base(*job.ReportPath))

	if _, err := ctx.Writer.Write(content); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("failed to write report: %v", err)
		ctx.JSON(http.StatusInternalServerError, errorResponse)
	}
}

// DeleteByID handles the DELETE request to remove a job and its report file
// @Summary Delete a processing job by ID
// @Description Remove a job from the ledger together with its retained report workbook.
// @Tags Job
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Success 204 {object} InfoResponse
// @Failure 404 {object} ErrorResponse
// @Router /jobs/{id} [delete]
func (handler *jobHandler) DeleteByID(ctx *gin.Context) {
	jobID := ctx.Param("id")

	if err := handler.jobMetadataService.DeleteByID(ctx, jobID); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("job with id %s not found", jobID)
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("deleted job with id %s", jobID)
	ctx.JSON(http.StatusNoContent, infoResponse)
}

// newJobResponse maps a ledger entry onto the wire shape. Only the report
// file name is exposed, never the server side path.
func newJobResponse(job *jobs.Job) JobResponse {
	jobResponse := JobResponse{
		ID:              job.ID,
		DateTimeCreated: job.DateTimeCreated,
		FileName:        job.FileName,
		Status:          job.Status,
		CaseCount:       job.CaseCount,
		DocumentCount:   job.DocumentCount,
		TaskCount:       job.TaskCount,
		FailedTaskCount: job.FailedTaskCount,
		DurationMillis:  job.DurationMillis,
	}

	if job.ReportPath != nil {
		reportFileName := filepath.Base(*job.ReportPath)
		jobResponse.ReportFileName = &reportFileName
	}
	if job.ErrorMessage != nil {
		jobResponse.ErrorMessage = job.ErrorMessage
	}

	return jobResponse
}

package v1

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/cases"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/jobs"
)

// xlsxContentType is the media type of the report workbook.
const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ProcessHandler defines the interface for handling archive processing operations
type ProcessHandler interface {
	Welcome(ctx *gin.Context)
	ProcessZip(ctx *gin.Context)
}

// ProcessHandler struct holds the services
type processHandler struct {
	jobProcessingService  jobs.JobProcessingService
	reportDownloadService jobs.ReportDownloadService
}

// NewProcessHandler creates a new ProcessHandler
func NewProcessHandler(jobProcessingService jobs.JobProcessingService, reportDownloadService jobs.ReportDownloadService) ProcessHandler {
	return &processHandler{
		jobProcessingService:  jobProcessingService,
		reportDownloadService: reportDownloadService,
	}
}

// Welcome handles the GET request on the API root
// @Summary Show a welcome message
// @Description Point clients at the upload endpoint.
// @Tags Process
// @Produce json
// @Success 200 {object} InfoResponse
// @Router / [get]
func (handler *processHandler) Welcome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, InfoResponse{
		Message: "Welcome to the Document Processing API. Use the /process-zip/ endpoint to upload files.",
	})
}

// ProcessZip handles the POST request to run an uploaded zip archive through
// the extraction pipeline and answer with the resulting workbook
// @Summary Process a zip archive of case folders
// @Description Upload a zip archive, extract document fields case by case and download the consolidated Excel report.
// @Tags Process
// @Accept multipart/form-data
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param file formData file true "ZIP archive of case folders"
// @Success 200 {file} file "Consolidated extraction report"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /process-zip/ [post]
func (handler *processHandler) ProcessZip(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = "invalid form data"
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if !strings.HasSuffix(fileHeader.Filename, ".zip") {
		var errorResponse ErrorResponse
		errorResponse.Message = "Invalid file type. Please upload a ZIP file."
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	job, err := handler.jobProcessingService.ProcessUpload(ctx, fileHeader)
	if err != nil {
		status, message := mapProcessingError(err, fileHeader.Filename)
		ctx.JSON(status, ErrorResponse{Message: message})
		return
	}

	content, err := handler.reportDownloadService.DownloadByID(ctx, job.ID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("An internal server error occurred: %v", err)
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	filename := "extracted_data.xlsx"
	if job.ReportPath != nil {
		filename = filepath.Base(*job.ReportPath)
	}

	ctx.Writer.WriteHeader(http.StatusOK)
	ctx.Writer.Header().Set("Content-Type", xlsxContentType)
	ctx.Writer.Header().Set("Content-Disposition", "attachment; filename="+filename)

	if _, err := ctx.Writer.Write(content); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("failed to write report: %v", err)
		ctx.JSON(http.StatusInternalServerError, errorResponse)
	}
}

// mapProcessingError translates pipeline failures into the HTTP status and
// message of the processing endpoint. The upload name stands in for server
// side paths so temp directory layout never leaks to clients.
func mapProcessingError(err error, uploadName string) (int, string) {
	var saveErr *cases.UploadSaveError
	var reportErr *cases.ReportError

	switch {
	case errors.Is(err, cases.ErrInvalidArchive):
		return http.StatusBadRequest, fmt.Sprintf("Invalid zip file: %s", uploadName)
	case errors.Is(err, cases.ErrNoCaseFolders):
		return http.StatusBadRequest, "No case folders found in the zip file."
	case errors.As(err, &saveErr):
		return http.StatusInternalServerError, fmt.Sprintf("Failed to save uploaded file: %v", saveErr.Err)
	case errors.As(err, &reportErr):
		return http.StatusInternalServerError, fmt.Sprintf("Failed to save results to Excel: %v", reportErr.Err)
	default:
		return http.StatusInternalServerError, fmt.Sprintf("An internal server error occurred: %v", err)
	}
}

//go:build unit
// +build unit

package v1

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/jobs"
)

func TestJobHandler_ListMetadata_Success(t *testing.T) {
	mockMetadataService := new(MockJobMetadataService)
	mockDownloadService := new(MockReportDownloadService)

	handler := NewJobHandler(mockMetadataService, mockDownloadService)

	job := &jobs.Job{
		ID:              "job-1",
		DateTimeCreated: time.Now(),
		FileName:        "cases.zip",
		Status:          jobs.JobStatusCompleted,
		CaseCount:       3,
	}
	mockMetadataService.On("List", mock.Anything, mock.Anything).Return([]*jobs.Job{job}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest("GET", "/jobs", nil)
	c.Request = req

	handler.ListMetadata(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "job-1")
	assert.Contains(t, w.Body.String(), "cases.zip")
	mockMetadataService.AssertExpectations(t)
}

func TestJobHandler_ListMetadata_AppliesQueryParameters(t *testing.T) {
	mockMetadataService := new(MockJobMetadataService)
	handler := NewJobHandler(mockMetadataService, new(MockReportDownloadService))

	mockMetadataService.On("List", mock.Anything, mock.MatchedBy(func(query *jobs.JobQuery) bool {
		return query.Status == jobs.JobStatusFailed &&
			query.FileName == "cases.zip" &&
			query.MinDurationMillis == 2500 &&
			query.Limit == 5 &&
			query.SortBy == "duration_millis"
	})).Return([]*jobs.Job{}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest("GET",
		"/jobs?status=failed&fileName=cases.zip&minDurationMillis=2500&limit=5&sortBy=duration_millis", nil)
	c.Request = req

	handler.ListMetadata(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockMetadataService.AssertExpectations(t)
}

func TestJobHandler_ListMetadata_InvalidQuery(t *testing.T) {
	mockMetadataService := new(MockJobMetadataService)
	handler := NewJobHandler(mockMetadataService, new(MockReportDownloadService))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest("GET", "/jobs?sortOrder=sideways", nil)
	c.Request = req

	handler.ListMetadata(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed")
	mockMetadataService.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestJobHandler_GetMetadataByID_Success(t *testing.T) {
	mockMetadataService := new(MockJobMetadataService)
	handler := NewJobHandler(mockMetadataService, new(MockReportDownloadService))

	reportPath := "/var/tmp/extracted_data_job-1.xlsx"
	job := &jobs.Job{ID: "job-1", FileName: "cases.zip", Status: jobs.JobStatusCompleted, ReportPath: &reportPath}
	mockMetadataService.On("GetByID", mock.Anything, "job-1").Return(job, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest("GET", "/jobs/job-1", nil)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "job-1"}}

	handler.GetMetadataByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "job-1")
	assert.Contains(t, w.Body.String(), `"reportFileName":"extracted_data_job-1.xlsx"`)
	assert.NotContains(t, w.Body.String(), "/var/tmp", "server paths must not leak")
}

func TestJobHandler_GetMetadataByID_NotFound(t *testing.T) {
	mockMetadataService := new(MockJobMetadataService)
	handler := NewJobHandler(mockMetadataService, new(MockReportDownloadService))

	mockMetadataService.On("GetByID", mock.Anything, "missing").
		Return(nil, errors.New("job with ID missing not found"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest("GET", "/jobs/missing", nil)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "missing"}}

	handler.GetMetadataByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "job with id missing not found")
}

func TestJobHandler_DownloadReportByID_Success(t *testing.T) {
	mockMetadataService := new(MockJobMetadataService)
	mockDownloadService := new(MockReportDownloadService)
	handler := NewJobHandler(mockMetadataService, mockDownloadService)

	reportPath := "/var/tmp/extracted_data_job-2.xlsx"
	job := &jobs.Job{ID: "job-2", Status: jobs.JobStatusCompleted, ReportPath: &reportPath}
	mockMetadataService.On("GetByID", mock.Anything, "job-2").Return(job, nil)
	mockDownloadService.On("DownloadByID", mock.Anything, "job-2").Return([]byte("workbook-bytes"), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest("GET", "/jobs/job-2/report", nil)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "job-2"}}

	handler.DownloadReportByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=extracted_data_job-2.xlsx", w.Header().Get("Content-Disposition"))
	assert.Equal(t, "workbook-bytes", w.Body.String())
	mockDownloadService.AssertExpectations(t)
}

func TestJobHandler_DownloadReportByID_NoReport(t *testing.T) {
	mockMetadataService := new(MockJobMetadataService)
	mockDownloadService := new(MockReportDownloadService)
	handler := NewJobHandler(mockMetadataService, mockDownloadService)

	job := &jobs.Job{ID: "job-3", Status: jobs.JobStatusFailed}
	mockMetadataService.On("GetByID", mock.Anything, "job-3").Return(job, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest("GET", "/jobs/job-3/report", nil)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "job-3"}}

	handler.DownloadReportByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no report available for job job-3")
	mockDownloadService.AssertNotCalled(t, "DownloadByID", mock.Anything, mock.Anything)
}

func TestJobHandler_DeleteByID_Success(t *testing.T) {
	mockMetadataService := new(MockJobMetadataService)
	handler := NewJobHandler(mockMetadataService, new(MockReportDownloadService))

	mockMetadataService.On("DeleteByID", mock.Anything, "job-4").Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest("DELETE", "/jobs/job-4", nil)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "job-4"}}

	handler.DeleteByID(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockMetadataService.AssertExpectations(t)
}

func TestJobHandler_DeleteByID_NotFound(t *testing.T) {
	mockMetadataService := new(MockJobMetadataService)
	handler := NewJobHandler(mockMetadataService, new(MockReportDownloadService))

	mockMetadataService.On("DeleteByID", mock.Anything, "missing").
		Return(errors.New("job with ID missing not found"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest("DELETE", "/jobs/missing", nil)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "missing"}}

	handler.DeleteByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "job with id missing not found")
}

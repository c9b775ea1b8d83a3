package v1

import (
	"time"
)

// ErrorResponse describes a failed request
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse describes the outcome of a successful operation
type InfoResponse struct {
	Message string `json:"message"`
}

// JobResponse describes a processing job tracked in the ledger. ReportFileName
// is only set once a run completed and its workbook is retained for download.
type JobResponse struct {
	ID              string    `json:"id"`
	DateTimeCreated time.Time `json:"dateTimeCreated"`
	FileName        string    `json:"fileName"`
	Status          string    `json:"status"`
	CaseCount       int       `json:"caseCount"`
	DocumentCount   int       `json:"documentCount"`
	TaskCount       int       `json:"taskCount"`
	FailedTaskCount int       `json:"failedTaskCount"`
	DurationMillis  int64     `json:"durationMillis"`
	ReportFileName  *string   `json:"reportFileName,omitempty"`
	ErrorMessage    *string   `json:"errorMessage,omitempty"`
}

package models

import (
	"time"

	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/jobs"
)

// JobModel is the GORM database model for processing jobs (infrastructure concern)
type JobModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	DateTimeCreated time.Time `gorm:"not null;index"`
	FileName        string    `gorm:"not null;type:varchar(255)"`
	Status          string    `gorm:"not null;index;type:varchar(50)"`
	CaseCount       int       `gorm:"not null"`
	DocumentCount   int       `gorm:"not null"`
	TaskCount       int       `gorm:"not null"`
	FailedTaskCount int       `gorm:"not null"`
	ReportPath      *string   `gorm:"type:varchar(1024)"`
	ErrorMessage    *string   `gorm:"type:text"`
	DurationMillis  int64     `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (JobModel) TableName() string {
	return "jobs"
}

// ToDomain converts GORM model to domain entity
func (m *JobModel) ToDomain() *jobs.Job {
	return &jobs.Job{
		ID:              m.ID,
		DateTimeCreated: m.DateTimeCreated,
		FileName:        m.FileName,
		Status:          m.Status,
		CaseCount:       m.CaseCount,
		DocumentCount:   m.DocumentCount,
		TaskCount:       m.TaskCount,
		FailedTaskCount: m.FailedTaskCount,
		ReportPath:      m.ReportPath,
		ErrorMessage:    m.ErrorMessage,
		DurationMillis:  m.DurationMillis,
	}
}

// FromDomain converts domain entity to GORM model
func (m *JobModel) FromDomain(j *jobs.Job) {
	m.ID = j.ID
	m.DateTimeCreated = j.DateTimeCreated
	m.FileName = j.FileName
	m.Status = j.Status
	m.CaseCount = j.CaseCount
	m.DocumentCount = j.DocumentCount
	m.TaskCount = j.TaskCount
	m.FailedTaskCount = j.FailedTaskCount
	m.ReportPath = j.ReportPath
	m.ErrorMessage = j.ErrorMessage
	m.DurationMillis = j.DurationMillis
}

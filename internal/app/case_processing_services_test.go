//go:build unit
// +build unit

package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/cases"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/documents"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/extraction"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/pkg/config"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/pkg/testutil"
)

func newProcessingService(
	t *testing.T,
	intake cases.ArchiveIntake,
	extractor extraction.FieldExtractor,
	classifier extraction.DocumentClassifier,
	writer cases.ReportWriter,
	settings *config.ProcessingSettings,
) cases.CaseProcessingService {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	service, err := NewCaseProcessingService(intake, extractor, classifier, writer, settings, nil, log)
	require.NoError(t, err)
	return service
}

func defaultProcessingSettings(t *testing.T) *config.ProcessingSettings {
	t.Helper()

	return &config.ProcessingSettings{
		TempDir:        t.TempDir(),
		MaxWorkers:     2,
		ReportBasename: "extracted_data",
	}
}

func writePageFile(t *testing.T, name string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, testutil.MinimalPDF(), 0600))
	return path
}

func TestCaseProcessingService_ProcessArchive(t *testing.T) {
	settings := defaultProcessingSettings(t)
	pagePath := writePageFile(t, "crl 1.pdf")

	folders := []cases.CaseFolder{
		{
			ID: "CASE-001",
			Groups: []cases.DocumentGroup{
				{
					CaseID: "CASE-001",
					Type:   documents.DocumentTypeCRL,
					Pages:  []cases.PageFile{{Path: pagePath, Name: "crl 1.pdf", Page: 1}},
				},
			},
		},
		{ID: "CASE-002"},
	}

	intake := new(MockArchiveIntake)
	intake.On("Extract", mock.Anything, "upload.zip", mock.AnythingOfType("string")).Return(nil)
	intake.On("ScanCases", mock.AnythingOfType("string")).Return(folders, nil)

	extractor := new(MockFieldExtractor)
	extractor.On("ExtractFields", mock.Anything, mock.MatchedBy(func(request *extraction.ExtractionRequest) bool {
		return request.CaseID == "CASE-001" &&
			request.DocumentType == documents.DocumentTypeCRL &&
			len(request.Pages) == 1
	})).Return(&extraction.DocumentResult{
		CaseID:       "CASE-001",
		DocumentType: documents.DocumentTypeCRL,
		Fields: map[string]extraction.FieldResult{
			"LC NUMBER": {Value: "LC-77", Confidence: 0.92, Reasoning: "Stated in the letter"},
		},
		RawFields: map[string]string{"ODD FIELD": `"unparsed"`},
	}, nil)

	var written []map[string]any
	writer := new(MockReportWriter)
	writer.On("Write", mock.AnythingOfType("string"), mock.Anything).Run(func(args mock.Arguments) {
		written = args.Get(1).([]map[string]any)
	}).Return(nil)

	service := newProcessingService(t, intake, extractor, nil, writer, settings)

	result, err := service.ProcessArchive(context.Background(), &cases.ProcessingRequest{
		JobID:       "job-1",
		ArchivePath: "upload.zip",
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(settings.TempDir, "extracted_data_job-1.xlsx"), result.ReportPath)
	assert.Equal(t, 2, result.CaseCount)
	assert.Equal(t, 1, result.DocumentCount)
	assert.Equal(t, 1, result.TaskCount)
	assert.Equal(t, 0, result.FailedTaskCount)

	require.Len(t, written, 2)
	assert.Equal(t, map[string]any{"CASE_ID": "CASE-002", "Processing_Status": "No documents found"}, written[0])
	assert.Equal(t, "CASE-001", written[1]["CASE_ID"])
	assert.Equal(t, "LC-77", written[1]["CRL_LC NUMBER_Value"])
	assert.Equal(t, 0.92, written[1]["CRL_LC NUMBER_Confidence"])
	assert.Equal(t, "Stated in the letter", written[1]["CRL_LC NUMBER_Reasoning"])
	assert.Equal(t, `"unparsed"`, written[1]["CRL_ODD FIELD_Raw"])

	intake.AssertExpectations(t)
	extractor.AssertExpectations(t)
	writer.AssertExpectations(t)
}

func TestCaseProcessingService_ProcessArchive_InvalidArchive(t *testing.T) {
	settings := defaultProcessingSettings(t)

	intake := new(MockArchiveIntake)
	intake.On("Extract", mock.Anything, "bad.zip", mock.AnythingOfType("string")).
		Return(fmt.Errorf("%w: bad.zip", cases.ErrInvalidArchive))

	writer := new(MockReportWriter)
	service := newProcessingService(t, intake, new(MockFieldExtractor), nil, writer, settings)

	_, err := service.ProcessArchive(context.Background(), &cases.ProcessingRequest{
		JobID:       "job-2",
		ArchivePath: "bad.zip",
	})
	assert.ErrorIs(t, err, cases.ErrInvalidArchive)
	writer.AssertNotCalled(t, "Write", mock.Anything, mock.Anything)
}

func TestCaseProcessingService_ProcessArchive_RecordsTaskFailures(t *testing.T) {
	settings := defaultProcessingSettings(t)
	crlPage := writePageFile(t, "crl 1.pdf")
	invoicePage := writePageFile(t, "inv 1.pdf")

	folders := []cases.CaseFolder{
		{
			ID: "CASE-007",
			Groups: []cases.DocumentGroup{
				{
					CaseID: "CASE-007",
					Type:   documents.DocumentTypeCRL,
					Pages:  []cases.PageFile{{Path: crlPage, Name: "crl 1.pdf", Page: 1}},
				},
				{
					CaseID: "CASE-007",
					Type:   documents.DocumentTypeInvoice,
					Pages:  []cases.PageFile{{Path: invoicePage, Name: "inv 1.pdf", Page: 1}},
				},
			},
		},
	}

	intake := new(MockArchiveIntake)
	intake.On("Extract", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	intake.On("ScanCases", mock.AnythingOfType("string")).Return(folders, nil)

	extractor := new(MockFieldExtractor)
	extractor.On("ExtractFields", mock.Anything, mock.MatchedBy(func(request *extraction.ExtractionRequest) bool {
		return request.DocumentType == documents.DocumentTypeCRL
	})).Return(nil, &extraction.BlockedError{FinishReason: "SAFETY"})
	extractor.On("ExtractFields", mock.Anything, mock.MatchedBy(func(request *extraction.ExtractionRequest) bool {
		return request.DocumentType == documents.DocumentTypeInvoice
	})).Return(nil, fmt.Errorf("%w: unexpected end of JSON input", extraction.ErrMalformedResponse))

	var written []map[string]any
	writer := new(MockReportWriter)
	writer.On("Write", mock.AnythingOfType("string"), mock.Anything).Run(func(args mock.Arguments) {
		written = args.Get(1).([]map[string]any)
	}).Return(nil)

	service := newProcessingService(t, intake, extractor, nil, writer, settings)

	result, err := service.ProcessArchive(context.Background(), &cases.ProcessingRequest{
		JobID:       "job-7",
		ArchivePath: "upload.zip",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.TaskCount)
	assert.Equal(t, 2, result.FailedTaskCount)

	require.Len(t, written, 1)
	assert.Equal(t, "CASE-007", written[0]["CASE_ID"])
	assert.Equal(t, "Content Blocked: SAFETY", written[0]["CRL_Processing_Error"])
	assert.Equal(t, "JSON Decode Error", written[0]["INVOICE_Processing_Error"])
}

func TestCaseProcessingService_ProcessArchive_UnregisteredTypesSkipped(t *testing.T) {
	settings := defaultProcessingSettings(t)

	folders := []cases.CaseFolder{
		{
			ID: "CASE-003",
			Groups: []cases.DocumentGroup{
				{
					CaseID: "CASE-003",
					Type:   documents.DocumentTypePackingList,
					Pages:  []cases.PageFile{{Path: "unused.pdf", Name: "pack 1.pdf", Page: 1}},
				},
			},
		},
	}

	intake := new(MockArchiveIntake)
	intake.On("Extract", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	intake.On("ScanCases", mock.AnythingOfType("string")).Return(folders, nil)

	extractor := new(MockFieldExtractor)

	var written []map[string]any
	writer := new(MockReportWriter)
	writer.On("Write", mock.AnythingOfType("string"), mock.Anything).Run(func(args mock.Arguments) {
		written = args.Get(1).([]map[string]any)
	}).Return(nil)

	service := newProcessingService(t, intake, extractor, nil, writer, settings)

	result, err := service.ProcessArchive(context.Background(), &cases.ProcessingRequest{
		JobID:       "job-3",
		ArchivePath: "upload.zip",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.DocumentCount)
	assert.Equal(t, 0, result.TaskCount)
	require.Len(t, written, 1)
	assert.Equal(t, map[string]any{"Status": "No data extracted"}, written[0])
	extractor.AssertNotCalled(t, "ExtractFields", mock.Anything, mock.Anything)
}

func TestCaseProcessingService_ProcessArchive_MissingPageFile(t *testing.T) {
	settings := defaultProcessingSettings(t)

	folders := []cases.CaseFolder{
		{
			ID: "CASE-004",
			Groups: []cases.DocumentGroup{
				{
					CaseID: "CASE-004",
					Type:   documents.DocumentTypeCRL,
					Pages:  []cases.PageFile{{Path: filepath.Join(t.TempDir(), "missing.pdf"), Name: "crl 1.pdf", Page: 1}},
				},
			},
		},
	}

	intake := new(MockArchiveIntake)
	intake.On("Extract", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	intake.On("ScanCases", mock.AnythingOfType("string")).Return(folders, nil)

	var written []map[string]any
	writer := new(MockReportWriter)
	writer.On("Write", mock.AnythingOfType("string"), mock.Anything).Run(func(args mock.Arguments) {
		written = args.Get(1).([]map[string]any)
	}).Return(nil)

	service := newProcessingService(t, intake, new(MockFieldExtractor), nil, writer, settings)

	result, err := service.ProcessArchive(context.Background(), &cases.ProcessingRequest{
		JobID:       "job-4",
		ArchivePath: "upload.zip",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.TaskCount)
	assert.Equal(t, 0, result.FailedTaskCount)
	require.Len(t, written, 1)
	assert.Equal(t, "No result from extraction", written[0]["CRL_Processing_Status"])
}

func TestCaseProcessingService_ProcessArchive_ClassifiesUnknownGroups(t *testing.T) {
	settings := defaultProcessingSettings(t)
	settings.ClassifyUnknown = true
	pagePath := writePageFile(t, "scan 1.pdf")

	folders := []cases.CaseFolder{
		{
			ID: "CASE-010",
			Groups: []cases.DocumentGroup{
				{
					CaseID: "CASE-010",
					Type:   documents.DocumentTypeUnknown,
					Pages:  []cases.PageFile{{Path: pagePath, Name: "scan 1.pdf", Page: 1}},
				},
			},
		},
	}

	intake := new(MockArchiveIntake)
	intake.On("Extract", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	intake.On("ScanCases", mock.AnythingOfType("string")).Return(folders, nil)

	classifier := new(MockDocumentClassifier)
	classifier.On("ClassifyDocument", mock.Anything, mock.Anything, documents.KnownTypes()).
		Return(&extraction.ClassificationResult{
			ClassifiedType: documents.DocumentTypeInvoice,
			Confidence:     0.9,
			Reasoning:      "Tabular invoice layout",
		}, nil)

	extractor := new(MockFieldExtractor)
	extractor.On("ExtractFields", mock.Anything, mock.MatchedBy(func(request *extraction.ExtractionRequest) bool {
		return request.DocumentType == documents.DocumentTypeInvoice
	})).Return(&extraction.DocumentResult{
		CaseID:       "CASE-010",
		DocumentType: documents.DocumentTypeInvoice,
		Fields: map[string]extraction.FieldResult{
			"INVOICE NO": {Value: "INV-1", Confidence: 0.8, Reasoning: "Header"},
		},
	}, nil)

	var written []map[string]any
	writer := new(MockReportWriter)
	writer.On("Write", mock.AnythingOfType("string"), mock.Anything).Run(func(args mock.Arguments) {
		written = args.Get(1).([]map[string]any)
	}).Return(nil)

	service := newProcessingService(t, intake, extractor, classifier, writer, settings)

	result, err := service.ProcessArchive(context.Background(), &cases.ProcessingRequest{
		JobID:       "job-10",
		ArchivePath: "upload.zip",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.TaskCount)
	require.Len(t, written, 1)
	assert.Equal(t, "INV-1", written[0]["INVOICE_INVOICE NO_Value"])
	classifier.AssertExpectations(t)
	extractor.AssertExpectations(t)
}

func TestCaseProcessingService_ProcessArchive_ClassifierVerdictUnregistered(t *testing.T) {
	settings := defaultProcessingSettings(t)
	settings.ClassifyUnknown = true
	pagePath := writePageFile(t, "scan 1.pdf")

	folders := []cases.CaseFolder{
		{
			ID: "CASE-011",
			Groups: []cases.DocumentGroup{
				{
					CaseID: "CASE-011",
					Type:   documents.DocumentTypeUnknown,
					Pages:  []cases.PageFile{{Path: pagePath, Name: "scan 1.pdf", Page: 1}},
				},
			},
		},
	}

	intake := new(MockArchiveIntake)
	intake.On("Extract", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	intake.On("ScanCases", mock.AnythingOfType("string")).Return(folders, nil)

	classifier := new(MockDocumentClassifier)
	classifier.On("ClassifyDocument", mock.Anything, mock.Anything, documents.KnownTypes()).
		Return(&extraction.ClassificationResult{
			ClassifiedType: documents.DocumentTypeBL,
			Confidence:     0.7,
			Reasoning:      "Shipping terms",
		}, nil)

	extractor := new(MockFieldExtractor)

	var written []map[string]any
	writer := new(MockReportWriter)
	writer.On("Write", mock.AnythingOfType("string"), mock.Anything).Run(func(args mock.Arguments) {
		written = args.Get(1).([]map[string]any)
	}).Return(nil)

	service := newProcessingService(t, intake, extractor, classifier, writer, settings)

	result, err := service.ProcessArchive(context.Background(), &cases.ProcessingRequest{
		JobID:       "job-11",
		ArchivePath: "upload.zip",
	})
	require.NoError(t, err)

	// The task ran but contributed nothing beyond the case identifier
	assert.Equal(t, 1, result.TaskCount)
	assert.Equal(t, 0, result.FailedTaskCount)
	require.Len(t, written, 1)
	assert.Equal(t, map[string]any{"CASE_ID": "CASE-011"}, written[0])
	extractor.AssertNotCalled(t, "ExtractFields", mock.Anything, mock.Anything)
}

func TestFormatExtractionError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "blocked content names the finish reason",
			err:      &extraction.BlockedError{FinishReason: "SAFETY"},
			expected: "Content Blocked: SAFETY",
		},
		{
			name:     "malformed response collapses to decode error",
			err:      fmt.Errorf("%w: invalid character 'x'", extraction.ErrMalformedResponse),
			expected: "JSON Decode Error",
		},
		{
			name:     "api failure names the cause",
			err:      &extraction.APICallError{Err: fmt.Errorf("rpc error: code = Unavailable")},
			expected: "Vertex AI API Error: rpc error: code = Unavailable",
		},
		{
			name:     "anything else is unexpected",
			err:      fmt.Errorf("context canceled"),
			expected: "Unexpected Error: context canceled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatExtractionError(tt.err))
		})
	}
}

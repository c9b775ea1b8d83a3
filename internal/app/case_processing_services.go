package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/cases"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/documents"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/extraction"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/pkg/config"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/pkg/logger"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/pkg/metrics"
)

// extractionTask carries one document group through the worker pool.
type extractionTask struct {
	caseID string
	group  cases.DocumentGroup
}

// taskOutcome is the row contribution of one finished task. Cells are merged
// into the case row keyed by column name.
type taskOutcome struct {
	caseID string
	cells  map[string]any
	failed bool
}

// caseProcessingService implements the CaseProcessingService interface for
// running the extraction pipeline over uploaded archives
type caseProcessingService struct {
	intake       cases.ArchiveIntake
	extractor    extraction.FieldExtractor
	classifier   extraction.DocumentClassifier
	reportWriter cases.ReportWriter
	settings     *config.ProcessingSettings
	collector    *metrics.Collector
	logger       logger.Logger
}

// NewCaseProcessingService creates a new instance of CaseProcessingService.
// The classifier may be nil; UNKNOWN document groups are then skipped the
// same way unregistered types are.
func NewCaseProcessingService(
	intake cases.ArchiveIntake,
	extractor extraction.FieldExtractor,
	classifier extraction.DocumentClassifier,
	reportWriter cases.ReportWriter,
	settings *config.ProcessingSettings,
	collector *metrics.Collector,
	logger logger.Logger,
) (cases.CaseProcessingService, error) {
	return &caseProcessingService{
		intake:       intake,
		extractor:    extractor,
		classifier:   classifier,
		reportWriter: reportWriter,
		settings:     settings,
		collector:    collector,
		logger:       logger,
	}, nil
}

// ProcessArchive extracts the archive into a scratch directory, groups case
// documents, runs one extraction task per document group through a bounded
// worker pool and writes the consolidated report. The scratch directory is
// removed afterwards; the report file is kept for download.
func (s *caseProcessingService) ProcessArchive(ctx context.Context, request *cases.ProcessingRequest) (*cases.ProcessingResult, error) {
	extractDir, err := os.MkdirTemp(s.settings.TempDir, "doc_proc_")
	if err != nil {
		return nil, fmt.Errorf("failed to create extraction directory: %w", err)
	}
	s.logger.Info("Created extraction directory ", extractDir)
	defer func() {
		if err := os.RemoveAll(extractDir); err != nil {
			s.logger.Warn("Failed to clean up ", extractDir, ": ", err)
			return
		}
		s.logger.Info("Cleaned up extraction directory ", extractDir)
	}()

	if err := s.intake.Extract(ctx, request.ArchivePath, extractDir); err != nil {
		return nil, err
	}

	caseFolders, err := s.intake.ScanCases(extractDir)
	if err != nil {
		return nil, err
	}

	rows := make([]map[string]any, 0, len(caseFolders))
	var tasks []extractionTask
	documentCount := 0

	for _, folder := range caseFolders {
		s.logger.Info("Processing case ", folder.ID)
		documentCount += len(folder.Groups)

		if len(folder.Groups) == 0 {
			s.logger.Warn("No processable documents found in case ", folder.ID)
			rows = append(rows, map[string]any{"CASE_ID": folder.ID, "Processing_Status": "No documents found"})
			continue
		}

		for _, group := range folder.Groups {
			if group.Type == documents.DocumentTypeUnknown {
				if s.classifier == nil || !s.settings.ClassifyUnknown {
					s.logger.Warn("Skipping unknown document type for case ", folder.ID)
					continue
				}
			} else if !documents.IsRegistered(group.Type) {
				s.logger.Warn("Skipping document type ", group.Type, " for case ", folder.ID, ": no fields registered")
				continue
			}
			tasks = append(tasks, extractionTask{caseID: folder.ID, group: group})
		}
	}

	outcomes := s.runTasks(ctx, tasks)

	// Merge task outcomes into one row per case, in scan order
	caseRows := make(map[string]map[string]any, len(caseFolders))
	rowOrder := make([]string, 0, len(caseFolders))
	failedTasks := 0
	for i := range tasks {
		outcome := outcomes[i]
		row, ok := caseRows[outcome.caseID]
		if !ok {
			row = map[string]any{"CASE_ID": outcome.caseID}
			caseRows[outcome.caseID] = row
			rowOrder = append(rowOrder, outcome.caseID)
		}
		for key, value := range outcome.cells {
			row[key] = value
		}
		if outcome.failed {
			failedTasks++
		}
	}
	for _, caseID := range rowOrder {
		rows = append(rows, caseRows[caseID])
	}

	if len(rows) == 0 {
		s.logger.Warn("No data was extracted from any case")
		rows = append(rows, map[string]any{"Status": "No data extracted"})
	}

	reportPath := filepath.Join(s.settings.TempDir, fmt.Sprintf("%s_%s.xlsx", s.settings.ReportBasename, request.JobID))
	s.logger.Info("Saving aggregated data from ", len(rows), " rows to ", reportPath)
	if err := s.reportWriter.Write(reportPath, rows); err != nil {
		return nil, err
	}

	return &cases.ProcessingResult{
		ReportPath:      reportPath,
		CaseCount:       len(caseFolders),
		DocumentCount:   documentCount,
		TaskCount:       len(tasks),
		FailedTaskCount: failedTasks,
	}, nil
}

// runTasks executes the extraction tasks through a semaphore bounded pool of
// at most MaxWorkers concurrent model calls. Every task writes only its own
// outcome slot.
func (s *caseProcessingService) runTasks(ctx context.Context, tasks []extractionTask) []taskOutcome {
	outcomes := make([]taskOutcome, len(tasks))
	if len(tasks) == 0 {
		return outcomes
	}

	workers := s.settings.MaxWorkers
	if workers < 1 {
		workers = 1
	}
	s.logger.Info("Submitting ", len(tasks), " document extraction tasks to ", workers, " workers")

	// Buffered channel as a semaphore to limit concurrency
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i := range tasks {
		wg.Add(1)
		go func(index int, task extractionTask) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				outcomes[index] = abortedOutcome(task, ctx.Err())
				return
			}
			defer func() { <-sem }()

			outcomes[index] = s.runTask(ctx, task)
		}(i, tasks[i])
	}
	wg.Wait()

	return outcomes
}

// runTask resolves the document type, reads the page files and calls the
// extractor. Panics are converted into a failed outcome so one bad task
// cannot take the whole run down.
func (s *caseProcessingService) runTask(ctx context.Context, task extractionTask) (outcome taskOutcome) {
	outcome = taskOutcome{caseID: task.caseID, cells: map[string]any{}}

	defer func() {
		if recovered := recover(); recovered != nil {
			s.logger.Error("Extraction task failed for case ", task.caseID, ", doc ", task.group.Type, ": ", recovered)
			outcome.cells = map[string]any{
				task.group.Type + "_Processing_Error": fmt.Sprintf("Task execution failed: %v", recovered),
			}
			outcome.failed = true
		}
	}()

	s.logger.Info("Starting extraction for case ", task.caseID, ", doc ", task.group.Type, ", pages ", len(task.group.Pages))

	pages, ok := s.readPages(task)
	if !ok {
		outcome.cells[task.group.Type+"_Processing_Status"] = "No result from extraction"
		return outcome
	}

	docType := task.group.Type
	if docType == documents.DocumentTypeUnknown {
		verdict, err := s.classifier.ClassifyDocument(ctx, pages, documents.KnownTypes())
		if err != nil {
			s.logger.Error("Classification failed for case ", task.caseID, ": ", err)
			outcome.cells[docType+"_Processing_Error"] = formatExtractionError(err)
			outcome.failed = true
			return outcome
		}
		if !documents.IsRegistered(verdict.ClassifiedType) {
			s.logger.Warn("Classifier returned ", verdict.ClassifiedType, " for case ", task.caseID, ": no fields registered, skipping")
			return outcome
		}
		s.logger.Info("Classified unknown document in case ", task.caseID, " as ", verdict.ClassifiedType)
		docType = verdict.ClassifiedType
	}

	fields, registered := documents.FieldsFor(docType)
	if !registered {
		return outcome
	}

	started := time.Now()
	result, err := s.extractor.ExtractFields(ctx, &extraction.ExtractionRequest{
		CaseID:       task.caseID,
		DocumentType: docType,
		Fields:       fields,
		Pages:        pages,
	})
	if err != nil {
		s.collector.RecordDocument(docType, metrics.OutcomeFailed, time.Since(started))
		s.logger.Error("Extraction failed for case ", task.caseID, ", doc ", docType, ": ", err)
		outcome.cells[docType+"_Processing_Error"] = formatExtractionError(err)
		outcome.failed = true
		return outcome
	}
	s.collector.RecordDocument(docType, metrics.OutcomeSucceeded, time.Since(started))
	s.logger.Info("Successfully processed case ", task.caseID, ", doc ", docType)

	for field, fieldResult := range result.Fields {
		base := docType + "_" + field
		outcome.cells[base+"_Value"] = fieldResult.Value
		outcome.cells[base+"_Confidence"] = fieldResult.Confidence
		outcome.cells[base+"_Reasoning"] = fieldResult.Reasoning
	}
	for field, raw := range result.RawFields {
		s.logger.Warn("Unexpected format for field ", field, " in case ", task.caseID, ", doc ", docType)
		outcome.cells[docType+"_"+field+"_Raw"] = raw
	}

	return outcome
}

// readPages loads the page files of a group in page order. A missing or
// unreadable page invalidates the whole group since the model needs the
// complete document.
func (s *caseProcessingService) readPages(task extractionTask) ([][]byte, bool) {
	if len(task.group.Pages) == 0 {
		s.logger.Warn("No PDF files provided for case ", task.caseID, ", doc ", task.group.Type)
		return nil, false
	}

	pages := make([][]byte, 0, len(task.group.Pages))
	for _, page := range task.group.Pages {
		content, err := os.ReadFile(page.Path)
		if err != nil {
			s.logger.Error("Error reading file ", page.Path, ": ", err)
			return nil, false
		}
		pages = append(pages, content)
	}

	return pages, true
}

// abortedOutcome records a task that never ran because the run was canceled.
func abortedOutcome(task extractionTask, cause error) taskOutcome {
	return taskOutcome{
		caseID: task.caseID,
		cells: map[string]any{
			task.group.Type + "_Processing_Error": fmt.Sprintf("Task execution failed: %v", cause),
		},
		failed: true,
	}
}

// formatExtractionError renders an extraction failure the way the report
// records it in the document's Processing_Error cell.
func formatExtractionError(err error) string {
	var blocked *extraction.BlockedError
	if errors.As(err, &blocked) {
		return fmt.Sprintf("Content Blocked: %s", blocked.FinishReason)
	}
	if errors.Is(err, extraction.ErrMalformedResponse) {
		return "JSON Decode Error"
	}
	var apiErr *extraction.APICallError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("Vertex AI API Error: %v", apiErr.Err)
	}
	return fmt.Sprintf("Unexpected Error: %v", err)
}

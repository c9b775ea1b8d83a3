package report

import (
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/cases"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/documents"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/pkg/logger"
)

const (
	sheetName          = "Extracted Data"
	defaultColumnWidth = 28.0
)

type excelWriter struct {
	logger logger.Logger
}

// NewExcelWriter creates a ReportWriter which renders case rows into an
// xlsx workbook with a bold, frozen header row
func NewExcelWriter(logger logger.Logger) cases.ReportWriter {
	return &excelWriter{logger: logger}
}

// Write renders rows into a workbook at path. Missing and nil cells are
// left empty. Failures are wrapped in a ReportError so callers can map
// them onto a report failure response
func (w *excelWriter) Write(path string, rows []map[string]any) error {
	columns := buildColumns(rows)

	file := excelize.NewFile()
	defer func() {
		if err := file.Close(); err != nil {
			w.logger.Warn("Failed to close workbook for ", path, ": ", err)
		}
	}()

	if err := file.SetSheetName("Sheet1", sheetName); err != nil {
		return &cases.ReportError{Err: err}
	}

	if err := w.writeHeader(file, columns); err != nil {
		return err
	}

	for rowIndex, row := range rows {
		for columnIndex, column := range columns {
			value, found := row[column]
			if !found || value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(columnIndex+1, rowIndex+2)
			if err != nil {
				return &cases.ReportError{Err: err}
			}
			if err := file.SetCellValue(sheetName, cell, value); err != nil {
				return &cases.ReportError{Err: err}
			}
		}
	}

	if err := file.SaveAs(path); err != nil {
		w.logger.Error("Failed to save report to ", path, ": ", err)
		return &cases.ReportError{Err: err}
	}

	w.logger.Info("Saved report with ", len(rows), " rows and ", len(columns), " columns to ", path)
	return nil
}

func (w *excelWriter) writeHeader(file *excelize.File, columns []string) error {
	if len(columns) == 0 {
		return nil
	}

	for index, column := range columns {
		cell, err := excelize.CoordinatesToCellName(index+1, 1)
		if err != nil {
			return &cases.ReportError{Err: err}
		}
		if err := file.SetCellValue(sheetName, cell, column); err != nil {
			return &cases.ReportError{Err: err}
		}
	}

	headerStyle, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return &cases.ReportError{Err: err}
	}
	firstCell, err := excelize.CoordinatesToCellName(1, 1)
	if err != nil {
		return &cases.ReportError{Err: err}
	}
	lastCell, err := excelize.CoordinatesToCellName(len(columns), 1)
	if err != nil {
		return &cases.ReportError{Err: err}
	}
	if err := file.SetCellStyle(sheetName, firstCell, lastCell, headerStyle); err != nil {
		return &cases.ReportError{Err: err}
	}

	lastColumn, err := excelize.ColumnNumberToName(len(columns))
	if err != nil {
		return &cases.ReportError{Err: err}
	}
	if err := file.SetColWidth(sheetName, "A", lastColumn, defaultColumnWidth); err != nil {
		return &cases.ReportError{Err: err}
	}

	panes := &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}
	if err := file.SetPanes(sheetName, panes); err != nil {
		return &cases.ReportError{Err: err}
	}
	return nil
}

// buildColumns derives a stable column order from the union of keys across
// rows. The case identifier leads, case level status columns follow, then
// every registered document type contributes its error, status and field
// columns in catalog order. Keys outside the catalog are sorted at the end
func buildColumns(rows []map[string]any) []string {
	present := make(map[string]bool)
	for _, row := range rows {
		for key := range row {
			present[key] = true
		}
	}

	columns := make([]string, 0, len(present))
	used := make(map[string]bool, len(present))
	take := func(key string) {
		if present[key] && !used[key] {
			columns = append(columns, key)
			used[key] = true
		}
	}

	take("CASE_ID")
	take("Status")
	take("Processing_Status")

	for _, docType := range documents.RegisteredTypes() {
		take(docType + "_Processing_Error")
		take(docType + "_Processing_Status")
		fields, _ := documents.FieldsFor(docType)
		for _, field := range fields {
			base := docType + "_" + field.Name
			take(base + "_Value")
			take(base + "_Confidence")
			take(base + "_Reasoning")
			take(base + "_Raw")
		}
	}

	extras := make([]string, 0, len(present))
	for key := range present {
		if !used[key] {
			extras = append(extras, key)
		}
	}
	sort.Strings(extras)

	return append(columns, extras...)
}

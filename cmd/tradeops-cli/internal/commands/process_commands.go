package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/app"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/cases"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/extraction"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/infrastructure/intake"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/infrastructure/report"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/infrastructure/vertexai"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/pkg/config"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/pkg/logger"
)

// ProcessCommandHandler encapsulates logic for running the extraction
// pipeline offline via CLI, without a job ledger or API server.
type ProcessCommandHandler struct {
	logger logger.Logger
}

// NewProcessCommandHandler initializes and returns a ProcessCommandHandler
// instance with a configured logger.
func NewProcessCommandHandler() (*ProcessCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &ProcessCommandHandler{
		logger: loggerInstance,
	}, nil
}

// ProcessCmd runs a zip archive of case folders through the extraction
// pipeline and writes the consolidated Excel report to the requested path
func (commandHandler *ProcessCommandHandler) ProcessCmd(cmd *cobra.Command, _ []string) {
	inputZip, err := cmd.Flags().GetString("input-zip")
	if err != nil {
		commandHandler.logger.Error("invalid input-zip flag ", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag ", err)
		return
	}
	maxWorkers, err := cmd.Flags().GetInt("max-workers")
	if err != nil {
		commandHandler.logger.Error("invalid max-workers flag ", err)
		return
	}
	classifyUnknown, err := cmd.Flags().GetBool("classify-unknown")
	if err != nil {
		commandHandler.logger.Error("invalid classify-unknown flag ", err)
		return
	}
	location, err := cmd.Flags().GetString("location")
	if err != nil {
		commandHandler.logger.Error("invalid location flag ", err)
		return
	}
	model, err := cmd.Flags().GetString("model")
	if err != nil {
		commandHandler.logger.Error("invalid model flag ", err)
		return
	}

	if inputZip == "" {
		commandHandler.logger.Error("input-zip flag is required")
		return
	}

	settings := &config.ProcessingSettings{
		TempDir:         os.TempDir(),
		MaxWorkers:      maxWorkers,
		ReportBasename:  "extracted_data",
		ClassifyUnknown: classifyUnknown,
	}
	if err := settings.Validate(); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	vertexSettings := &config.VertexSettings{
		ProjectID:       os.Getenv("GOOGLE_CLOUD_PROJECT"),
		Location:        location,
		Model:           model,
		CredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
	}
	if err := vertexSettings.Validate(); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	archiveIntake, err := intake.NewZipIntake(settings.TempDir, classifyUnknown, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	ctx := cmd.Context()

	extractor, err := vertexai.NewGeminiExtractor(ctx, vertexSettings, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer func() {
		if err := extractor.Close(); err != nil {
			commandHandler.logger.Warn("Failed to close model client: ", err)
		}
	}()

	var classifier extraction.DocumentClassifier
	if classifyUnknown {
		classifier = extractor
	}

	processingService, err := app.NewCaseProcessingService(
		archiveIntake, extractor, classifier,
		report.NewExcelWriter(commandHandler.logger),
		settings, nil, commandHandler.logger,
	)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	result, err := processingService.ProcessArchive(ctx, &cases.ProcessingRequest{
		JobID:       uuid.NewString(),
		ArchivePath: filepath.Clean(inputZip),
	})
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := moveReport(result.ReportPath, outputFile); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Processed ", result.CaseCount, " cases with ",
		result.TaskCount, " extraction tasks (", result.FailedTaskCount, " failed)")
	commandHandler.logger.Info("Report saved to ", outputFile)
}

// moveReport relocates the generated workbook, copying when rename crosses
// filesystem boundaries
func moveReport(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	content, err := os.ReadFile(filepath.Clean(src))
	if err != nil {
		return err
	}
	if err := os.WriteFile(dst, content, 0600); err != nil {
		return err
	}
	return os.Remove(src)
}

// InitProcessCommands registers processing-related commands
func InitProcessCommands(rootCmd *cobra.Command) error {
	handler, err := NewProcessCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create process command handler %w", err)
	}

	var processCmd = &cobra.Command{
		Use:   "process",
		Short: "Process a zip archive of case folders into an Excel report",
		Run:   handler.ProcessCmd,
	}
	processCmd.Flags().StringP("input-zip", "", "", "Path to the zip archive of case folders")
	processCmd.Flags().StringP("output-file", "", "extracted_data.xlsx", "Path of the Excel report to write")
	processCmd.Flags().IntP("max-workers", "", 4, "Number of concurrent extraction tasks")
	processCmd.Flags().BoolP("classify-unknown", "", false, "Classify PDF groups whose filename matches no document type")
	processCmd.Flags().StringP("location", "", "asia-south1", "Vertex AI region")
	processCmd.Flags().StringP("model", "", "gemini-1.5-pro-002", "Gemini model name")
	rootCmd.AddCommand(processCmd)

	return nil
}

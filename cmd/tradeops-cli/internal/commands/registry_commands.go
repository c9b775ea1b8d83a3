package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/documents"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/pkg/logger"
)

// RegistryCommandHandler encapsulates logic for inspecting the document
// registry via CLI.
type RegistryCommandHandler struct {
	logger logger.Logger
}

// NewRegistryCommandHandler initializes and returns a RegistryCommandHandler
// instance with a configured logger.
func NewRegistryCommandHandler() (*RegistryCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &RegistryCommandHandler{
		logger: loggerInstance,
	}, nil
}

// ListFieldsCmd prints the registered document types and their extraction fields
func (commandHandler *RegistryCommandHandler) ListFieldsCmd(cmd *cobra.Command, _ []string) {
	docType, err := cmd.Flags().GetString("doc-type")
	if err != nil {
		commandHandler.logger.Error("invalid doc-type flag ", err)
		return
	}
	withDescriptions, err := cmd.Flags().GetBool("descriptions")
	if err != nil {
		commandHandler.logger.Error("invalid descriptions flag ", err)
		return
	}

	types := documents.RegisteredTypes()
	if len(docType) > 0 {
		if !documents.IsRegistered(docType) {
			commandHandler.logger.Error("no fields registered for document type ", docType)
			return
		}
		types = []string{docType}
	}

	for _, documentType := range types {
		fields, _ := documents.FieldsFor(documentType)
		fmt.Printf("%s (%d fields)\n", documentType, len(fields))
		for _, field := range fields {
			if withDescriptions {
				fmt.Printf("  %s: %s\n", field.Name, field.Description)
			} else {
				fmt.Printf("  %s\n", field.Name)
			}
		}
	}
}

// DetectCmd shows the document type and page number that filename detection
// resolves for a PDF name, using the same rules as archive intake
func (commandHandler *RegistryCommandHandler) DetectCmd(cmd *cobra.Command, _ []string) {
	filename, err := cmd.Flags().GetString("filename")
	if err != nil {
		commandHandler.logger.Error("invalid filename flag ", err)
		return
	}
	if filename == "" {
		commandHandler.logger.Error("filename flag is required")
		return
	}

	page := documents.ParsePageNumber(filename)

	docType, err := documents.DetectType(documents.BaseName(filename))
	if err != nil {
		fmt.Printf("%s: type %s (page %d)\n", filename, documents.DocumentTypeUnknown, page)
		return
	}

	registered := "registered"
	if !documents.IsRegistered(docType) {
		registered = "not registered for extraction"
	}
	fmt.Printf("%s: type %s (page %d, %s)\n", filename, docType, page, registered)
}

// InitRegistryCommands registers document-registry-related commands
func InitRegistryCommands(rootCmd *cobra.Command) error {
	handler, err := NewRegistryCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create registry command handler %w", err)
	}

	var listFieldsCmd = &cobra.Command{
		Use:   "list-fields",
		Short: "List registered document types and their extraction fields",
		Run:   handler.ListFieldsCmd,
	}
	listFieldsCmd.Flags().StringP("doc-type", "", "", "Limit the listing to one document type")
	listFieldsCmd.Flags().BoolP("descriptions", "", false, "Include field descriptions")
	rootCmd.AddCommand(listFieldsCmd)

	var detectCmd = &cobra.Command{
		Use:   "detect",
		Short: "Show the document type and page detected from a PDF filename",
		Run:   handler.DetectCmd,
	}
	detectCmd.Flags().StringP("filename", "", "", "PDF filename to run detection on")
	rootCmd.AddCommand(detectCmd)

	return nil
}

// Package main is the entry point for the tradeops-cli application.
// It initializes the root command and registers the sub-commands for offline
// archive processing and document registry inspection, then executes the
// command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/SoubhikGhosh/TradeOps-Data-Extraction/cmd/tradeops-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "tradeops-cli",
		Short: "Trade document extraction CLI tool",
		Long: `tradeops-cli is a command-line tool for extracting structured data from
trade finance documents. It runs zip archives of case folders through the
Vertex AI extraction pipeline without a running API server, and inspects the
document registry used for filename detection.

Processing requires the following environment variables:
- GOOGLE_CLOUD_PROJECT
- GOOGLE_APPLICATION_CREDENTIALS (when not running on GCP)`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	// Register processing commands
	if err := commands.InitProcessCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize process commands: %w", err)
	}

	// Register registry commands
	if err := commands.InitRegistryCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize registry commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}

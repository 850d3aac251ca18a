// Package main provides the evidence_vault CLI for managing career evidence
// and applying reasoning synthesis to resume bullets.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/evidence-vault/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "evidence_vault",
	Short: "Evidence vault and reasoning synthesis CLI",
	Long:  "Evidence Vault stores verifiable career evidence and uses it to enhance resume bullets with quantified, attributable claims.",
}

var (
	jsonLog bool
	debug   bool
	verbose bool
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonLog, "json-log", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print formatted summaries of results")
}

// newLogger builds the process logger from the persistent flags.
func newLogger() (*zap.Logger, error) {
	log, err := logger.New(jsonLog, debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return log, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

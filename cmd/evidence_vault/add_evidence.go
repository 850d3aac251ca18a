// Package main provides the evidence_vault CLI for managing career evidence
// and applying reasoning synthesis to resume bullets.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/evidence-vault/internal/bank"
	"github.com/jonathan/evidence-vault/internal/config"
	"github.com/jonathan/evidence-vault/internal/vault"
)

var addEvidenceCmd = &cobra.Command{
	Use:   "add-evidence",
	Short: "Add evidence items from a bank file to the store",
	Long:  "Loads an evidence bank JSON file, validates each item, and appends them to the user's evidence store in PostgreSQL.",
	RunE:  runAddEvidence,
}

var addEvidenceInput string

func init() {
	addEvidenceCmd.Flags().StringVarP(&addEvidenceInput, "in", "i", "", "Path to evidence bank JSON file (required)")

	if err := addEvidenceCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(addEvidenceCmd)
}

func runAddEvidence(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	store, err := vault.ConnectPG(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer store.Close()

	b, err := bank.LoadEvidenceBank(addEvidenceInput)
	if err != nil {
		return fmt.Errorf("failed to load evidence bank: %w", err)
	}

	for i := range b.Evidence {
		id, err := store.AddEvidence(ctx, b.UserID, &b.Evidence[i])
		if err != nil {
			return fmt.Errorf("failed to add evidence item %d (%s): %w", i, b.Evidence[i].Title, err)
		}
		log.Info("evidence item stored",
			zap.String("evidence_id", id),
			zap.String("title", b.Evidence[i].Title),
		)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Added %d evidence items for user %s\n", len(b.Evidence), b.UserID)

	return nil
}

// Package main provides the evidence_vault CLI for managing career evidence
// and applying reasoning synthesis to resume bullets.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/evidence-vault/internal/config"
	"github.com/jonathan/evidence-vault/internal/observability"
	"github.com/jonathan/evidence-vault/internal/types"
)

var findEvidenceCmd = &cobra.Command{
	Use:   "find-evidence",
	Short: "Find evidence supporting a resume bullet",
	Long:  "Retrieves the top evidence items applicable to a bullet under the given company and timeframe constraints, ranked by relevance.",
	RunE:  runFindEvidence,
}

var (
	findUserID    string
	findBullet    string
	findBank      string
	findCompany   string
	findStartDate string
	findEndDate   string
	findOutput    string
)

func init() {
	findEvidenceCmd.Flags().StringVarP(&findUserID, "user", "u", "", "User ID to search evidence for (required)")
	findEvidenceCmd.Flags().StringVarP(&findBullet, "bullet", "b", "", "Resume bullet text (required)")
	findEvidenceCmd.Flags().StringVar(&findBank, "bank", "", "Path to evidence bank JSON file (uses DATABASE_URL when omitted)")
	findEvidenceCmd.Flags().StringVar(&findCompany, "company", "", "Company the bullet is claimed under")
	findEvidenceCmd.Flags().StringVar(&findStartDate, "start", "", "Role start date (YYYY-MM-DD)")
	findEvidenceCmd.Flags().StringVar(&findEndDate, "end", "", "Role end date (YYYY-MM-DD, empty means present)")
	findEvidenceCmd.Flags().StringVarP(&findOutput, "out", "o", "", "Path to output JSON file (stdout when omitted)")

	if err := findEvidenceCmd.MarkFlagRequired("user"); err != nil {
		panic(fmt.Sprintf("failed to mark user flag as required: %v", err))
	}
	if err := findEvidenceCmd.MarkFlagRequired("bullet"); err != nil {
		panic(fmt.Sprintf("failed to mark bullet flag as required: %v", err))
	}

	rootCmd.AddCommand(findEvidenceCmd)
}

func runFindEvidence(cmd *cobra.Command, _ []string) error {
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

	store, closeStore, err := openStore(ctx, cfg, findBank)
	if err != nil {
		return err
	}
	defer closeStore()

	svc, cleanup, err := newService(ctx, cfg, store, log)
	if err != nil {
		return err
	}
	defer cleanup()

	matchContext := types.MatchContext{
		Company:   findCompany,
		StartDate: findStartDate,
		EndDate:   findEndDate,
	}

	evidence, err := svc.FindSupportingEvidence(ctx, findUserID, findBullet, matchContext)
	if err != nil {
		return fmt.Errorf("failed to find supporting evidence: %w", err)
	}

	if verbose {
		observability.NewPrinter(os.Stdout).PrintEvidence(evidence)
	}

	jsonBytes, err := json.MarshalIndent(evidence, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal evidence: %w", err)
	}

	if findOutput == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}

	outputDir := filepath.Dir(findOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(findOutput, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Found %d supporting evidence items\n", len(evidence))
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", findOutput)

	return nil
}

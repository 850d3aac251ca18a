// Package main provides the evidence_vault CLI for managing career evidence
// and applying reasoning synthesis to resume bullets.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/evidence-vault/internal/config"
	"github.com/jonathan/evidence-vault/internal/observability"
	"github.com/jonathan/evidence-vault/internal/synthesis"
	"github.com/jonathan/evidence-vault/internal/types"
)

var validateBulletCmd = &cobra.Command{
	Use:   "validate-bullet",
	Short: "Validate a synthesized bullet against compliance rules",
	Long:  "Checks an RS bullet JSON file for sufficient confidence, acceptable risk level, and synthesis attribution, and prints the validation result.",
	RunE:  runValidateBullet,
}

var validateBulletInput string

func init() {
	validateBulletCmd.Flags().StringVarP(&validateBulletInput, "in", "i", "", "Path to RS bullet JSON file (required)")

	if err := validateBulletCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}

	rootCmd.AddCommand(validateBulletCmd)
}

func runValidateBullet(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var bullet types.RSBullet
	if err := readJSONFile(validateBulletInput, &bullet); err != nil {
		return fmt.Errorf("failed to load bullet: %w", err)
	}

	result := synthesis.ValidateRSBullet(bullet, cfg.ConfidenceThreshold)

	if verbose {
		observability.NewPrinter(os.Stdout).PrintValidation(&result)
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal validation result: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))

	if !result.Valid {
		return fmt.Errorf("bullet failed validation with %d issues", len(result.Issues))
	}

	return nil
}

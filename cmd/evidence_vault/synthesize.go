// Package main provides the evidence_vault CLI for managing career evidence
// and applying reasoning synthesis to resume bullets.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/evidence-vault/internal/config"
	"github.com/jonathan/evidence-vault/internal/observability"
	"github.com/jonathan/evidence-vault/internal/types"
)

// synthesizeConcurrency bounds how many bullets are enhanced in parallel.
// Each bullet may trigger an embedding call, so this also limits API pressure.
const synthesizeConcurrency = 4

var synthesizeCmd = &cobra.Command{
	Use:   "synthesize",
	Short: "Apply reasoning synthesis to resume bullets",
	Long:  "Reads resume bullets (one per line), enhances each with evidence-backed quantification and skills, and writes the resulting bullets as JSON.",
	RunE:  runSynthesize,
}

var (
	synthUserID       string
	synthInput        string
	synthBank         string
	synthCompany      string
	synthStartDate    string
	synthEndDate      string
	synthRequirements []string
	synthOutput       string
)

func init() {
	synthesizeCmd.Flags().StringVarP(&synthUserID, "user", "u", "", "User ID whose evidence backs the bullets (required)")
	synthesizeCmd.Flags().StringVarP(&synthInput, "in", "i", "", "Path to text file with one bullet per line (required)")
	synthesizeCmd.Flags().StringVar(&synthBank, "bank", "", "Path to evidence bank JSON file (uses DATABASE_URL when omitted)")
	synthesizeCmd.Flags().StringVar(&synthCompany, "company", "", "Company the bullets are claimed under")
	synthesizeCmd.Flags().StringVar(&synthStartDate, "start", "", "Role start date (YYYY-MM-DD)")
	synthesizeCmd.Flags().StringVar(&synthEndDate, "end", "", "Role end date (YYYY-MM-DD, empty means present)")
	synthesizeCmd.Flags().StringSliceVar(&synthRequirements, "requirements", nil, "Job requirement skills, comma separated")
	synthesizeCmd.Flags().StringVarP(&synthOutput, "out", "o", "", "Path to output RS bullets JSON file (required)")

	if err := synthesizeCmd.MarkFlagRequired("user"); err != nil {
		panic(fmt.Sprintf("failed to mark user flag as required: %v", err))
	}
	if err := synthesizeCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := synthesizeCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(synthesizeCmd)
}

func runSynthesize(cmd *cobra.Command, _ []string) error {
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

	bullets, err := readBullets(synthInput)
	if err != nil {
		return err
	}
	if len(bullets) == 0 {
		return fmt.Errorf("no bullets found in %s", synthInput)
	}

	store, closeStore, err := openStore(ctx, cfg, synthBank)
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
		Company:   synthCompany,
		StartDate: synthStartDate,
		EndDate:   synthEndDate,
	}

	results := make([]types.RSBullet, len(bullets))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(synthesizeConcurrency)
	for i, bullet := range bullets {
		i, bullet := i, bullet
		group.Go(func() error {
			results[i] = svc.ApplyReasoningSynthesis(groupCtx, synthUserID, bullet, matchContext, synthRequirements)
			return nil
		})
	}
	// Synthesis never returns errors; failures degrade to fail-safe bullets.
	_ = group.Wait()

	enhanced := capEnhancedBullets(results, cfg.MaxBulletsPerResume)

	if verbose {
		observability.NewPrinter(os.Stdout).PrintRSBullets(results)
	}

	jsonBytes, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal bullets: %w", err)
	}

	outputDir := filepath.Dir(synthOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(synthOutput, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	log.Info("synthesis run completed",
		zap.Int("bullets", len(results)),
		zap.Int("enhanced", enhanced),
	)
	_, _ = fmt.Fprintf(os.Stdout, "Synthesized %d bullets (%d enhanced)\n", len(results), enhanced)
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", synthOutput)

	return nil
}

// capEnhancedBullets enforces the per-resume limit on enhanced bullets.
// Bullets past the cap revert to their original text, keeping input order.
// Returns the number of bullets left enhanced.
func capEnhancedBullets(bullets []types.RSBullet, maxEnhanced int) int {
	applied := 0
	for i := range bullets {
		if !bullets[i].RSApplied {
			continue
		}
		applied++
		if applied <= maxEnhanced {
			continue
		}
		bullets[i].EnhancedText = bullets[i].OriginalText
		bullets[i].RSApplied = false
		bullets[i].RSBasis = "per-resume synthesis limit reached; original text retained"
		bullets[i].Quantification = nil
		bullets[i].Confidence = 1.0
		bullets[i].RiskLevel = types.RiskLow
	}
	if applied > maxEnhanced {
		return maxEnhanced
	}
	return applied
}

// readBullets loads one bullet per non-empty line.
func readBullets(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bullets file: %w", err)
	}
	defer f.Close()

	var bullets []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			bullets = append(bullets, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bullets file: %w", err)
	}
	return bullets, nil
}

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
	"github.com/jonathan/evidence-vault/internal/matching"
	"github.com/jonathan/evidence-vault/internal/observability"
	"github.com/jonathan/evidence-vault/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score how well a user profile matches a job posting",
	Long:  "Analyzes skills, experience, education, location, and salary fit between a user profile and a job posting, and writes the weighted analysis as JSON.",
	RunE:  runMatch,
}

var (
	matchJobFile     string
	matchProfileFile string
	matchOutput      string
)

func init() {
	matchCmd.Flags().StringVarP(&matchJobFile, "job", "j", "", "Path to job posting JSON file (required)")
	matchCmd.Flags().StringVarP(&matchProfileFile, "profile", "p", "", "Path to user profile JSON file (required)")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output analysis JSON file (stdout when omitted)")

	if err := matchCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	if err := matchCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	var job types.JobPosting
	if err := readJSONFile(matchJobFile, &job); err != nil {
		return fmt.Errorf("failed to load job posting: %w", err)
	}

	var profile types.UserProfile
	if err := readJSONFile(matchProfileFile, &profile); err != nil {
		return fmt.Errorf("failed to load user profile: %w", err)
	}

	weights := matching.Weights{
		Skills:     cfg.SkillsWeight,
		Experience: cfg.ExperienceWeight,
		Education:  cfg.EducationWeight,
	}
	matcher := matching.NewMatcher(weights, log)
	analysis := matcher.AnalyzeJobMatch(job, profile)

	if verbose {
		observability.NewPrinter(os.Stdout).PrintMatchAnalysis(&analysis)
	}

	jsonBytes, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	if matchOutput == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}

	outputDir := filepath.Dir(matchOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(matchOutput, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Overall match score: %d\n", analysis.OverallMatchScore)
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", matchOutput)

	return nil
}

// readJSONFile reads and unmarshals a JSON file into v.
func readJSONFile(path string, v interface{}) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	if err := json.Unmarshal(content, v); err != nil {
		return fmt.Errorf("failed to unmarshal JSON from %s: %w", path, err)
	}
	return nil
}

// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultConfidenceThreshold = 0.7
	DefaultMaxBulletsPerResume = 15
	DefaultMaxEvidenceItems    = 1000
	DefaultSkillsWeight        = 0.4
	DefaultExperienceWeight    = 0.4
	DefaultEducationWeight     = 0.2
)

// Config holds runtime configuration loaded from the environment.
type Config struct {
	// Reasoning synthesis
	ConfidenceThreshold float64 // Minimum bullet confidence considered safe
	MaxBulletsPerResume int     // Maximum enhanced bullets allowed per resume
	MaxEvidenceItems    int     // Per-user cap on stored evidence items

	// Match scoring weights
	SkillsWeight     float64
	ExperienceWeight float64
	EducationWeight  float64

	// External services
	APIKey      string // Gemini API key for semantic retrieval
	DatabaseURL string // PostgreSQL connection URL
}

// Load reads configuration from the environment, applying defaults for
// anything unset. A .env file in the working directory is loaded first if
// present; real environment variables take precedence over it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}

	var err error
	if cfg.ConfidenceThreshold, err = floatEnv("RS_CONFIDENCE_THRESHOLD", DefaultConfidenceThreshold); err != nil {
		return nil, err
	}
	if cfg.MaxBulletsPerResume, err = intEnv("MAX_RS_BULLETS_PER_RESUME", DefaultMaxBulletsPerResume); err != nil {
		return nil, err
	}
	if cfg.MaxEvidenceItems, err = intEnv("MAX_EVIDENCE_ITEMS", DefaultMaxEvidenceItems); err != nil {
		return nil, err
	}
	if cfg.SkillsWeight, err = floatEnv("SKILLS_MATCH_WEIGHT", DefaultSkillsWeight); err != nil {
		return nil, err
	}
	if cfg.ExperienceWeight, err = floatEnv("EXPERIENCE_MATCH_WEIGHT", DefaultExperienceWeight); err != nil {
		return nil, err
	}
	if cfg.EducationWeight, err = floatEnv("EDUCATION_MATCH_WEIGHT", DefaultEducationWeight); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 1 {
		return fmt.Errorf("config error: RS_CONFIDENCE_THRESHOLD must be between 0 and 1, got %g", c.ConfidenceThreshold)
	}
	if c.MaxBulletsPerResume <= 0 {
		return fmt.Errorf("config error: MAX_RS_BULLETS_PER_RESUME must be positive, got %d", c.MaxBulletsPerResume)
	}
	if c.MaxEvidenceItems <= 0 {
		return fmt.Errorf("config error: MAX_EVIDENCE_ITEMS must be positive, got %d", c.MaxEvidenceItems)
	}
	for name, w := range map[string]float64{
		"SKILLS_MATCH_WEIGHT":     c.SkillsWeight,
		"EXPERIENCE_MATCH_WEIGHT": c.ExperienceWeight,
		"EDUCATION_MATCH_WEIGHT":  c.EducationWeight,
	} {
		if w < 0 || w > 1 {
			return fmt.Errorf("config error: %s must be between 0 and 1, got %g", name, w)
		}
	}
	if sum := c.SkillsWeight + c.ExperienceWeight + c.EducationWeight; math.Abs(sum-1.0) > 0.001 {
		return fmt.Errorf("config error: match weights must sum to 1.0, got %g", sum)
	}
	return nil
}

func floatEnv(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("config error: %s is not a valid number: %q", key, raw)
	}
	return v, nil
}

func intEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("config error: %s is not a valid integer: %q", key, raw)
	}
	return v, nil
}

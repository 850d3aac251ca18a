// Package bank provides functionality to load and validate evidence bank files.
package bank

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/evidence-vault/internal/schemas"
	"github.com/jonathan/evidence-vault/internal/types"
)

// EvidenceBank is a user's collection of evidence items as stored on disk.
type EvidenceBank struct {
	UserID   string                `json:"user_id"`
	Evidence []types.EvidenceInput `json:"evidence"`
}

// LoadEvidenceBank loads an evidence bank from a JSON file. When the bank
// schema can be resolved on disk the file is validated against it first;
// otherwise loading proceeds on JSON parsing alone.
func LoadEvidenceBank(path string) (*EvidenceBank, error) {
	if schemaPath := schemas.ResolveSchemaPath(schemas.EvidenceBankSchema); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return nil, &LoadError{
				Message: fmt.Sprintf("evidence bank %s failed schema validation", path),
				Cause:   err,
			}
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	var b EvidenceBank
	if err := json.Unmarshal(content, &b); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	if b.UserID == "" {
		return nil, &LoadError{Message: "evidence bank is missing user_id"}
	}

	return &b, nil
}

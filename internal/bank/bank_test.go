package bank

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBankFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bank.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadEvidenceBank_Valid(t *testing.T) {
	path := writeBankFile(t, `{
		"user_id": "user-1",
		"evidence": [
			{
				"type": "achievement",
				"title": "Deployment speedup",
				"description": "Reduced deployment time by rebuilding the CI pipeline",
				"company": "Acme Corp",
				"skills": ["Go", "Docker"],
				"metrics": {"improvement_percentage": 20},
				"confidence": 0.9,
				"verification_status": "verified"
			}
		]
	}`)

	b, err := LoadEvidenceBank(path)

	require.NoError(t, err)
	assert.Equal(t, "user-1", b.UserID)
	require.Len(t, b.Evidence, 1)
	assert.Equal(t, "Deployment speedup", b.Evidence[0].Title)
	assert.Equal(t, "Acme Corp", b.Evidence[0].Company)
	require.NotNil(t, b.Evidence[0].Confidence)
	assert.Equal(t, 0.9, *b.Evidence[0].Confidence)
}

func TestLoadEvidenceBank_MissingUserID(t *testing.T) {
	path := writeBankFile(t, `{
		"evidence": []
	}`)

	_, err := LoadEvidenceBank(path)

	require.Error(t, err)
	var loadErr *LoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestLoadEvidenceBank_InvalidJSON(t *testing.T) {
	path := writeBankFile(t, `{"user_id": "user-1",`)

	_, err := LoadEvidenceBank(path)

	require.Error(t, err)
	var loadErr *LoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestLoadEvidenceBank_FileNotFound(t *testing.T) {
	_, err := LoadEvidenceBank(filepath.Join(t.TempDir(), "absent.json"))

	require.Error(t, err)
	var loadErr *LoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestLoadEvidenceBank_RejectsUnknownFields(t *testing.T) {
	path := writeBankFile(t, `{
		"user_id": "user-1",
		"evidence": [],
		"extra_field": true
	}`)

	_, err := LoadEvidenceBank(path)

	require.Error(t, err)
}

package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"count": {"type": "integer", "minimum": 0}
	}
}`

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"name": "release", "count": 3}`)

	assert.NoError(t, err)
}

func TestValidateJSONString_MissingRequiredField(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"count": 3}`)

	require.Error(t, err)
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
	assert.Contains(t, validationErr.Errors[0].Message, "name")
}

func TestValidateJSONString_WrongType(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"name": "release", "count": "three"}`)

	require.Error(t, err)
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "count", validationErr.Errors[0].Field)
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 42}`, `{}`)

	require.Error(t, err)
	var schemaErr *SchemaLoadError
	assert.True(t, errors.As(err, &schemaErr))
}

func TestValidateJSON_MissingSchemaFile(t *testing.T) {
	err := ValidateJSON(filepath.Join(t.TempDir(), "absent.schema.json"), "also-absent.json")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")
}

func TestValidateJSON_EvidenceBankSchemaAccepts(t *testing.T) {
	schemaPath := ResolveSchemaPath(EvidenceBankSchema)
	require.NotEmpty(t, schemaPath, "evidence bank schema not found on disk")

	bankPath := filepath.Join(t.TempDir(), "bank.json")
	writeFile(t, bankPath, `{"user_id": "user-1", "evidence": [{"title": "Launch", "description": "Shipped the launch"}]}`)

	assert.NoError(t, ValidateJSON(schemaPath, bankPath))
}

func TestValidateJSON_EvidenceBankSchemaRejectsBadConfidence(t *testing.T) {
	schemaPath := ResolveSchemaPath(EvidenceBankSchema)
	require.NotEmpty(t, schemaPath, "evidence bank schema not found on disk")

	bankPath := filepath.Join(t.TempDir(), "bank.json")
	writeFile(t, bankPath, `{"user_id": "user-1", "evidence": [{"title": "Launch", "description": "Shipped the launch", "confidence": 1.5}]}`)

	err := ValidateJSON(schemaPath, bankPath)

	require.Error(t, err)
	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

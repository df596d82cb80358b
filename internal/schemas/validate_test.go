package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recordSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["socCode", "title"],
	"properties": {
		"socCode": {"type": "string", "pattern": "^[0-9]{2}-[0-9]{4}$"},
		"title": {"type": "string"},
		"educationLevel": {"type": "string"}
	}
}`

func TestValidateString_Valid(t *testing.T) {
	doc := `{"socCode": "15-1252", "title": "Software Developers", "educationLevel": "BD"}`

	err := ValidateString(recordSchema, doc)
	assert.NoError(t, err)
}

func TestValidateString_MissingRequiredField(t *testing.T) {
	doc := `{"title": "Software Developers"}`

	err := ValidateString(recordSchema, doc)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateString_PatternMismatch(t *testing.T) {
	doc := `{"socCode": "151252", "title": "Software Developers"}`

	err := ValidateString(recordSchema, doc)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	found := false
	for _, fe := range validationErr.Errors {
		if fe.Field == "socCode" {
			found = true
		}
	}
	assert.True(t, found, "expected a socCode field error, got %v", validationErr.Errors)
}

func TestValidateString_BadSchema(t *testing.T) {
	err := ValidateString(`{"type": `, `{}`)
	require.Error(t, err)

	_, ok := err.(*SchemaLoadError)
	assert.True(t, ok, "error should be SchemaLoadError type, got %T", err)
}

func TestValidateFile_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()

	schemaPath := filepath.Join(tmpDir, "record.schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(recordSchema), 0644))

	docPath := filepath.Join(tmpDir, "record.json")
	require.NoError(t, os.WriteFile(docPath, []byte(`{"socCode": "29-1141", "title": "Registered Nurses"}`), 0644))

	assert.NoError(t, ValidateFile(schemaPath, docPath))

	badPath := filepath.Join(tmpDir, "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte(`{"socCode": 42}`), 0644))

	err := ValidateFile(schemaPath, badPath)
	require.Error(t, err)
	_, ok := err.(*ValidationError)
	assert.True(t, ok)
}

func TestValidateFile_MissingFiles(t *testing.T) {
	tmpDir := t.TempDir()
	schemaPath := filepath.Join(tmpDir, "record.schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(recordSchema), 0644))

	err := ValidateFile(schemaPath, filepath.Join(tmpDir, "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = ValidateFile(filepath.Join(tmpDir, "nope.schema.json"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateFile_DatasetSchema(t *testing.T) {
	schemaPath := ResolveSchemaPath("schemas/occupation_dataset.schema.json")
	require.NotEmpty(t, schemaPath, "dataset schema should be resolvable from the package directory")

	tmpDir := t.TempDir()
	docPath := filepath.Join(tmpDir, "dataset.json")
	doc := `[{"socCode": "15-1252", "title": "Software Developers", "educationLevel": "BD", "medianWage": 120730}]`
	require.NoError(t, os.WriteFile(docPath, []byte(doc), 0644))

	assert.NoError(t, ValidateFile(schemaPath, docPath))
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "socCode", Message: "is required"},
			{Field: "title", Message: "must be a string"},
		},
	}

	msg := err.Error()
	assert.Contains(t, msg, "validation failed")
	assert.Contains(t, msg, "socCode")
	assert.Contains(t, msg, "title")
}

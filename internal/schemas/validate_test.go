package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-deck/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"}
	}
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateJSON_ValidJSON(t *testing.T) {
	schemaPath := writeFile(t, "schema.json", personSchema)
	jsonPath := writeFile(t, "doc.json", `{"name": "Jane"}`)

	err := ValidateJSON(schemaPath, jsonPath)
	assert.NoError(t, err)
}

func TestValidateJSON_InvalidJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "missing field", content: `{"age": 30}`},
		{name: "wrong type", content: `{"name": 42}`},
	}

	schemaPath := writeFile(t, "schema.json", personSchema)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jsonPath := writeFile(t, "doc.json", tt.content)

			err := ValidateJSON(schemaPath, jsonPath)
			require.Error(t, err)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr), "error should be ValidationError type")
			assert.NotEmpty(t, validationErr.Errors)
		})
	}
}

func TestValidateJSON_NonExistentFiles(t *testing.T) {
	schemaPath := writeFile(t, "schema.json", personSchema)
	jsonPath := writeFile(t, "doc.json", `{"name": "Jane"}`)

	err := ValidateJSON(filepath.Join(t.TempDir(), "nonexistent_schema.json"), jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = ValidateJSON(schemaPath, filepath.Join(t.TempDir(), "nonexistent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_MalformedJSON(t *testing.T) {
	schemaPath := writeFile(t, "schema.json", personSchema)
	malformed := writeFile(t, "malformed.json", "{ invalid json }")

	err := ValidateJSON(schemaPath, malformed)
	require.Error(t, err)
}

func TestValidateJSONString(t *testing.T) {
	assert.NoError(t, ValidateJSONString(personSchema, `{"name": "test"}`))

	err := ValidateJSONString(personSchema, `{"age": 30}`)
	require.Error(t, err)
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 12}`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "age", Message: "must be a number"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "1. name: is required")
	assert.Contains(t, errorMsg, "2. age")
}

func TestValidateRecord_Valid(t *testing.T) {
	record := types.NewResumeRecord()
	record.Name = "Jane Doe"
	record.Skills = []string{"Go", "SQL", "Go"}
	record.Education = []types.EducationEntry{{Degree: "BSc", Institution: "MIT", Start: "2016", End: "2020"}}
	record.Experience = []types.ExperienceEntry{{Position: "Engineer", Company: "Acme"}}

	assert.NoError(t, ValidateRecord(record))
}

func TestValidateRecord_Empty(t *testing.T) {
	assert.NoError(t, ValidateRecord(types.NewResumeRecord()))
}

func TestValidateRecord_NullLists(t *testing.T) {
	err := ValidateRecord(&types.ResumeRecord{})

	require.Error(t, err)
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, err.Error(), "skills")
}

func TestValidateRecord_EmptyPosition(t *testing.T) {
	record := types.NewResumeRecord()
	record.Experience = []types.ExperienceEntry{{Company: "Acme"}}

	err := ValidateRecord(record)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "position")
}

func TestValidateRecord_UnknownField(t *testing.T) {
	err := ValidateRecord(map[string]any{
		"name": "", "role": "", "email": "", "phone": "", "address": "", "summary": "",
		"skills": []string{}, "education": []any{}, "experience": []any{},
		"photo": "me.png",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "photo")
}

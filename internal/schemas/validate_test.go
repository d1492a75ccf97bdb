package schemas

import (
	"errors"
	"testing"

	schemafiles "github.com/jonathan/career-compass/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Schema: "careers.schema.json",
		Errors: []FieldError{
			{Field: "0.title", Message: "is required"},
			{Field: "1.demand_score", Message: "must be less than or equal to 100"},
		},
	}

	assert.Equal(t, "validation against careers.schema.json failed:\n"+
		"  - 0.title: is required\n"+
		"  - 1.demand_score: must be less than or equal to 100", err.Error())
}

func TestValidateDocument_Malformed(t *testing.T) {
	err := ValidateDocument(schemafiles.Careers, []byte(`[{"career_id": `))
	var docErr *DocumentError
	require.True(t, errors.As(err, &docErr), "got %v", err)
	assert.Equal(t, schemafiles.Careers, docErr.Schema)
}

func TestCompile_Caches(t *testing.T) {
	first, err := compile(schemafiles.Profile)
	require.NoError(t, err)
	second, err := compile(schemafiles.Profile)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestValidateDocument_Careers(t *testing.T) {
	tests := []struct {
		name      string
		document  string
		wantError bool
	}{
		{
			name: "valid corpus",
			document: `[{"career_id": "software_developer", "title": "Software Developer",
				"key_skills": ["Go"], "avg_salary": 110000, "demand_score": 90,
				"growth_trend": {"5y_growth_pct": 22, "explain": "steady"}}]`,
		},
		{name: "empty corpus", document: `[]`},
		{name: "missing title", document: `[{"career_id": "x"}]`, wantError: true},
		{name: "demand out of range", document: `[{"career_id": "x", "title": "X", "demand_score": 140}]`, wantError: true},
		{name: "object instead of array", document: `{"careers": []}`, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(schemafiles.Careers, []byte(tt.document))
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr), "got %v", err)
			assert.Equal(t, schemafiles.Careers, validationErr.Schema)
		})
	}
}

func TestValidateDocument_MentorsAcceptsBothShapes(t *testing.T) {
	mentor := `{"id": "mentor_1", "name": "Sarah Chen", "industry": "technology", "rating": 4.9}`

	assert.NoError(t, ValidateDocument(schemafiles.Mentors, []byte(`[`+mentor+`]`)))
	assert.NoError(t, ValidateDocument(schemafiles.Mentors, []byte(`{"mentors": [`+mentor+`]}`)))
	assert.Error(t, ValidateDocument(schemafiles.Mentors, []byte(`[{"id": "mentor_1"}]`)))
	assert.Error(t, ValidateDocument(schemafiles.Mentors, []byte(`[{"id": "m", "name": "M", "rating": 7}]`)))
}

func TestValidateDocument_Profile(t *testing.T) {
	assert.NoError(t, ValidateDocument(schemafiles.Profile, []byte(`{"interests": "science", "strengths": "math, logic"}`)))
	assert.NoError(t, ValidateDocument(schemafiles.Profile, []byte(`{"strengths": ["math", "logic"]}`)))
	assert.Error(t, ValidateDocument(schemafiles.Profile, []byte(`{"strengths": 3}`)))
}

func TestValidateDocument_UnknownSchema(t *testing.T) {
	err := ValidateDocument("nope.schema.json", []byte(`{}`))
	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "nope.schema.json", loadErr.Path)
}

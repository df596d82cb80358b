package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/career-compass/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schemaFiles = []string{
	"occupation_dataset.schema.json",
	"assessment_profile.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_DeclareJSONSchemaShape(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err)

			var schemaObj map[string]interface{}
			err = json.Unmarshal(data, &schemaObj)
			require.NoError(t, err)

			_, hasType := schemaObj["type"]
			_, hasSchema := schemaObj["$schema"]
			assert.True(t, hasType && hasSchema,
				"schema should declare both $schema and type")
		})
	}
}

func TestOccupationDatasetSchema_AcceptsGeneratedRecord(t *testing.T) {
	dataset := `[
		{
			"socCode": "15-1252",
			"title": "Software Developers",
			"educationLevel": "BD",
			"medianWage": 130160,
			"totalEmployment": 1656880,
			"metadata": {
				"careerCluster": "stem",
				"secondaryClusters": ["business"],
				"workEnvironment": {
					"setting": ["office", "remote"],
					"schedule": ["standard", "flexible"],
					"physicalDemands": "sedentary",
					"travelRequired": "none"
				},
				"skills": {
					"analytical": 9,
					"creative": 6,
					"social": 4,
					"technical": 10,
					"leadership": 4,
					"physical": 1,
					"detail": 8
				},
				"workStyle": {
					"independence": "mixed",
					"structure": "moderate",
					"variety": "moderate",
					"pace": "moderate",
					"peopleInteraction": "moderate"
				},
				"values": ["innovation", "problem_solving"],
				"outlook": {
					"growth": "much_faster_than_average",
					"automationRisk": "low"
				},
				"keywords": ["software", "developers", "programming"],
				"certifications": []
			}
		}
	]`

	err := schemas.ValidateFile("occupation_dataset.schema.json", writeTemp(t, dataset))
	assert.NoError(t, err)
}

func TestOccupationDatasetSchema_RejectsBadRecords(t *testing.T) {
	cases := map[string]string{
		"missing title":      `[{"socCode": "15-1252"}]`,
		"bad code format":    `[{"socCode": "151252", "title": "Software Developers"}]`,
		"negative wage":      `[{"socCode": "15-1252", "title": "Software Developers", "medianWage": -1}]`,
		"unknown cluster":    `[{"socCode": "15-1252", "title": "Software Developers", "metadata": {"careerCluster": "finance", "workEnvironment": {"setting": [], "schedule": [], "physicalDemands": "sedentary", "travelRequired": "none"}, "skills": {"analytical": 5, "creative": 5, "social": 5, "technical": 5, "leadership": 5, "physical": 5, "detail": 5}, "workStyle": {"independence": "mixed", "structure": "moderate", "variety": "moderate", "pace": "moderate", "peopleInteraction": "moderate"}, "values": [], "outlook": {"growth": "stable", "automationRisk": "medium"}, "keywords": []}}]`,
		"skill out of range": `[{"socCode": "15-1252", "title": "Software Developers", "metadata": {"careerCluster": "stem", "workEnvironment": {"setting": [], "schedule": [], "physicalDemands": "sedentary", "travelRequired": "none"}, "skills": {"analytical": 11, "creative": 5, "social": 5, "technical": 5, "leadership": 5, "physical": 5, "detail": 5}, "workStyle": {"independence": "mixed", "structure": "moderate", "variety": "moderate", "pace": "moderate", "peopleInteraction": "moderate"}, "values": [], "outlook": {"growth": "stable", "automationRisk": "medium"}, "keywords": []}}]`,
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			err := schemas.ValidateFile("occupation_dataset.schema.json", writeTemp(t, doc))
			require.Error(t, err)
			var ve *schemas.ValidationError
			assert.ErrorAs(t, err, &ve, "expected a validation failure, not a load error")
		})
	}
}

func TestAssessmentProfileSchema_AcceptsProfile(t *testing.T) {
	profile := `{
		"skills": {
			"analytical": 8,
			"creative": 5,
			"social": 6,
			"technical": 9,
			"leadership": 4,
			"physical": 2,
			"detail": 7
		},
		"values": ["innovation"],
		"settings": ["office", "remote"],
		"schedules": ["standard"]
	}`

	err := schemas.ValidateFile("assessment_profile.schema.json", writeTemp(t, profile))
	assert.NoError(t, err)
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

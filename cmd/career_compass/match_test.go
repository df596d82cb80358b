package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/types"
)

func writeMatchFixtures(t *testing.T) (datasetPath, profilePath string) {
	t.Helper()
	dir := t.TempDir()

	datasetPath = filepath.Join(dir, "occupations.json")
	profilePath = filepath.Join(dir, "profile.json")

	dataset := `[
		{"socCode": "15-1252", "title": "Software Developers", "educationLevel": "BD"},
		{"socCode": "31-1131", "title": "Nursing Assistants", "educationLevel": "PS"}
	]`
	profile := `{
		"skills": {
			"analytical": 9, "creative": 5, "social": 4, "technical": 9,
			"leadership": 4, "physical": 2, "detail": 8
		}
	}`

	require.NoError(t, os.WriteFile(datasetPath, []byte(dataset), 0644))
	require.NoError(t, os.WriteFile(profilePath, []byte(profile), 0644))
	return datasetPath, profilePath
}

func TestMatchCommand_FlagsValidation(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "match", "--in", "occupations.json")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestMatchCommand_JSONOutput(t *testing.T) {
	binaryPath := getBinaryPath(t)
	datasetPath, profilePath := writeMatchFixtures(t)

	// Generate metadata first so matching has something to score
	gen := exec.Command(binaryPath, "generate", "--in", datasetPath)
	gen.Env = append(os.Environ(), "DATABASE_URL=")
	output, err := gen.CombinedOutput()
	require.NoError(t, err, "generate failed: %s", output)

	cmd := exec.Command(binaryPath, "match", "--in", datasetPath, "--profile", profilePath, "--json")
	output, err = cmd.CombinedOutput()
	require.NoError(t, err, "match failed: %s", output)

	var page types.MatchPage
	require.NoError(t, json.Unmarshal(output, &page))
	require.Len(t, page.Results, 2)
	assert.Equal(t, "15-1252", page.Results[0].SOCCode,
		"a technical profile should rank software development first")
}

func TestMatchCommand_RejectsInvalidProfile(t *testing.T) {
	binaryPath := getBinaryPath(t)
	datasetPath, _ := writeMatchFixtures(t)

	badProfile := filepath.Join(t.TempDir(), "profile.json")
	require.NoError(t, os.WriteFile(badProfile, []byte(`{"skills": {"analytical": 42}}`), 0644))

	cmd := exec.Command(binaryPath, "match", "--in", datasetPath, "--profile", badProfile)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "invalid assessment profile")
}

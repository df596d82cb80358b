package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"dataset": "data/occupations.json",
		"workers": 8,
		"top_n": 10,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "data/occupations.json", cfg.Dataset)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, 10, cfg.TopN)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_NegativeValues(t *testing.T) {
	cfg := &Config{
		Workers: -1,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "workers")
}

func TestValidate_PortRange(t *testing.T) {
	cfg := &Config{Port: 70000}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "port")
}

func TestValidate_MissingDataset(t *testing.T) {
	cfg := &Config{
		Dataset: filepath.Join(t.TempDir(), "missing.json"),
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "dataset file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "occupations.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte("[]"), 0644))

	cfg := &Config{
		Dataset: tmpFile,
		Workers: 4,
		Port:    8080,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Dataset: "data/occupations.json",
		Output:  "data/generated.json",
		Workers: 4,
		TopN:    20,
	}

	partial := Config{
		Dataset: "custom.json",
		Port:    9090,
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "custom.json", merged.Dataset)
	assert.Equal(t, 9090, merged.Port)

	// Default values should fill in empty fields
	assert.Equal(t, "data/generated.json", merged.Output)
	assert.Equal(t, 4, merged.Workers)
	assert.Equal(t, 20, merged.TopN)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Dataset: "occupations.json",
		Workers: 2,
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "occupations.json", merged.Dataset)
	assert.Equal(t, 2, merged.Workers)
}

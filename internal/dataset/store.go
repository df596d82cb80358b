// Package dataset loads and persists the occupation dataset as a JSON file.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/career-compass/internal/schemas"
	"github.com/jonathan/career-compass/internal/types"
)

var socCodePattern = regexp.MustCompile(`^[0-9]{2}-[0-9]{4}$`)

// Store reads and writes occupation dataset files.
type Store struct {
	validator *validator.Validate
}

// NewStore creates a Store with a fresh validator instance.
func NewStore() *Store {
	return &Store{
		validator: validator.New(),
	}
}

// Load reads and validates the dataset at path. Every record must carry a
// well-formed SOC code and a non-empty title; a single bad record fails the
// whole load so batch runs never operate on partial input.
func (s *Store) Load(path string) ([]types.OccupationRecord, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	var records []types.OccupationRecord
	if err := json.Unmarshal(content, &records); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	for i, rec := range records {
		if err := s.validateRecord(rec); err != nil {
			return nil, &RecordError{Index: i, SOCCode: rec.SOCCode, Cause: err}
		}
	}

	return records, nil
}

// Save writes records as indented JSON. The file is written to a temp path
// in the same directory and renamed into place, so a crash mid-write never
// leaves a truncated dataset behind.
func (s *Store) Save(path string, records []types.OccupationRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal dataset: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".dataset-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write dataset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// ValidateFile checks the dataset at path against the occupation dataset
// JSON Schema. Returns nil when the schema file cannot be located, so
// schema validation degrades to a no-op outside the repo tree.
func (s *Store) ValidateFile(path string) error {
	schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", "occupation_dataset.schema.json"))
	if schemaPath == "" {
		return nil
	}
	return schemas.ValidateFile(schemaPath, path)
}

func (s *Store) validateRecord(rec types.OccupationRecord) error {
	if err := s.validator.Struct(rec); err != nil {
		return err
	}
	if !socCodePattern.MatchString(rec.SOCCode) {
		return fmt.Errorf("malformed SOC code %q", rec.SOCCode)
	}
	if rec.EducationLevel != "" && !types.ValidEducationLevel(rec.EducationLevel) {
		return fmt.Errorf("unknown education level %q", rec.EducationLevel)
	}
	if rec.MedianWage < 0 {
		return fmt.Errorf("negative median wage %v", rec.MedianWage)
	}
	if rec.TotalEmployment < 0 {
		return fmt.Errorf("negative total employment %d", rec.TotalEmployment)
	}
	return nil
}

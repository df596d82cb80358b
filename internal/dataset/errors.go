package dataset

import "fmt"

// LoadError represents an error during file I/O or JSON parsing.
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// RecordError pinpoints a single invalid record inside an otherwise
// parseable dataset file.
type RecordError struct {
	Index   int
	SOCCode string
	Cause   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("invalid record %d (soc=%q): %v", e.Index, e.SOCCode, e.Cause)
}

func (e *RecordError) Unwrap() error {
	return e.Cause
}

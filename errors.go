package main

import "fmt"

// ValidationError reports bad caller input: non-positive capital, an
// out-of-range withdrawal rate or horizon, an unknown strategy or index
// identifier, or comparing a strategy against itself. It is raised before
// any computation starts.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation: " + e.Message
	}
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for a named input field.
func NewValidationError(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// DataUnavailableError reports a year outside a data series' coverage.
// EarliestYear/LatestYear describe the coverage of the series so callers
// can surface the valid range to the user.
type DataUnavailableError struct {
	Series       string
	Year         int
	EarliestYear int
	LatestYear   int
}

func (e *DataUnavailableError) Error() string {
	return fmt.Sprintf("data unavailable: %s has no data for %d (coverage %d-%d)",
		e.Series, e.Year, e.EarliestYear, e.LatestYear)
}

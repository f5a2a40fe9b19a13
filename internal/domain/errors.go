package domain

import "errors"

var (
	// ErrNotFound indicates a session, question, or task does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates a missing or malformed input field.
	ErrValidation = errors.New("validation failed")

	// ErrGenerationFailed indicates the generator was unreachable or
	// returned output violating its declared schema.
	ErrGenerationFailed = errors.New("generation failed")

	// ErrConflict indicates a concurrent duplicate insert was detected.
	// Callers resolve it by re-reading the now-existing rows.
	ErrConflict = errors.New("concurrent write conflict")
)

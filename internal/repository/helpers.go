package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/emmavds/softseason/internal/domain"
)

const dateLayout = "2006-01-02"

// marshalStrings converts a string slice to a value suitable for SQLite
// storage. Returns nil (SQL NULL) for a nil slice.
func marshalStrings(values []string) (interface{}, error) {
	if values == nil {
		return nil, nil
	}
	data, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("marshaling string list: %w", err)
	}
	return string(data), nil
}

// unmarshalStrings parses a nullable JSON column back into a string slice.
// Returns nil if the column is NULL or empty.
func unmarshalStrings(s sql.NullString) ([]string, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	var values []string
	if err := json.Unmarshal([]byte(s.String), &values); err != nil {
		return nil, fmt.Errorf("unmarshaling string list: %w", err)
	}
	return values, nil
}

// nullableString converts a *string to a value suitable for SQLite storage.
func nullableString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

// fromNullString converts a sql.NullString back to a *string.
func fromNullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// isUniqueViolation reports whether err is a SQLite unique constraint
// failure. The modernc driver surfaces these as plain error strings.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// wrapConflict maps unique constraint failures onto domain.ErrConflict so
// orchestrators can recover by re-reading, and passes other errors through.
func wrapConflict(err error, what string) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", domain.ErrConflict, what)
	}
	return err
}

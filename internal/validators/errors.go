package validators

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrors maps a field name to a validation message. It implements error so
// a validation failure can travel through the persistence layer as a single value
// while still being rendered per-field by the form and admin handlers.
type FieldErrors map[string]string

// Error implements the error interface
func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e[f]))
	}
	return strings.Join(parts, "; ")
}

// Add records a message for a field, keeping the first message per field
func (e FieldErrors) Add(field, message string) {
	if _, exists := e[field]; !exists {
		e[field] = message
	}
}

// OrNil returns e as an error, or nil when no field failed
func (e FieldErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

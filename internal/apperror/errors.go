// Package apperror defines the error types returned by the ledger and its collaborators.
package apperror

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError reports field-level validation failures. Fields maps a
// field name to the message that should be shown next to it.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NotFoundError is returned when an operation targets an unknown transaction id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("transaction %q not found", e.ID)
}

// MalformedImportError reports an import payload that does not have the
// expected shape. Row is the zero-based record index, or -1 when the failure
// concerns the document as a whole.
type MalformedImportError struct {
	Format string
	Row    int
	Reason string
	Err    error
}

func (e *MalformedImportError) Error() string {
	msg := fmt.Sprintf("malformed %s import: %s", e.Format, e.Reason)
	if e.Row >= 0 {
		msg = fmt.Sprintf("malformed %s import at record %d: %s", e.Format, e.Row, e.Reason)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedImportError) Unwrap() error {
	return e.Err
}

// StorageError wraps a failure of the persistence substrate.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

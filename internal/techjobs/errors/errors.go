package errors

import (
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound     = fmt.Errorf("not found")
	ErrInvalidInput = fmt.Errorf("invalid input")
	ErrInUse        = fmt.Errorf("in use")
)

// FieldErrors maps a form field to the message describing why it was rejected.
// It unwraps to ErrInvalidInput.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, f[field])
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(parts, "; "))
}

func (f FieldErrors) Unwrap() error {
	return ErrInvalidInput
}

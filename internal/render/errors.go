package render

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrFieldTooLong is matched by every *FieldTooLongError.
	ErrFieldTooLong = errors.New("card field too long")
	// ErrInternalConsistency is matched by every *ConsistencyError.
	ErrInternalConsistency = errors.New("card layout constants are inconsistent")
)

// Violation describes one field over its limit.
type Violation struct {
	Field  string // card field name, e.g. "agent_name"
	Limit  int
	Actual int
	Unit   string // "characters", "control characters", "words", "columns" or "lines"
}

func (v Violation) String() string {
	return fmt.Sprintf("%s exceeds %d %s (has %d)", v.Field, v.Limit, v.Unit, v.Actual)
}

// FieldTooLongError lists every field that would break the footer or header
// layout.
type FieldTooLongError struct {
	Violations []Violation
}

func (e *FieldTooLongError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return "card field validation failed: " + strings.Join(parts, "; ")
}

// Fields returns the distinct offending field names in report order.
func (e *FieldTooLongError) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, v := range e.Violations {
		if !seen[v.Field] {
			seen[v.Field] = true
			fields = append(fields, v.Field)
		}
	}
	return fields
}

func (e *FieldTooLongError) Is(target error) bool {
	return target == ErrFieldTooLong
}

// ConsistencyError means the composed card is not CardWidth x CardHeight.
// It points at a defect in the layout constants, never at bad input.
type ConsistencyError struct {
	Detail string
}

func (e *ConsistencyError) Error() string {
	return "card composition error: " + e.Detail
}

func (e *ConsistencyError) Unwrap() error {
	return ErrInternalConsistency
}

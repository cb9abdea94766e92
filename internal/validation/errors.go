package validation

import (
	"fmt"
	"strings"
)

// FieldError is a single rule violation, carrying the JSON path of the
// offending field and a human-readable message. Cross-field violations are
// attached to one designated field per the ordering in crossfield.go.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the structured result of validating an aggregate. A nil/empty
// Errors means the payload is valid.
type Errors []FieldError

func (e *Errors) Add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// First returns the first recorded violation, or nil.
func (e Errors) First() *FieldError {
	if len(e) == 0 {
		return nil
	}
	return &e[0]
}

// ForFields filters the error set down to violations whose field path starts
// with one of the given roots ("milestones" matches "milestones[2].name").
func (e Errors) ForFields(roots ...string) Errors {
	var out Errors
	for _, fe := range e {
		root := fe.Field
		if i := strings.IndexAny(root, "[."); i >= 0 {
			root = root[:i]
		}
		for _, r := range roots {
			if root == r {
				out = append(out, fe)
				break
			}
		}
	}
	return out
}

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation: no errors"
	}
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

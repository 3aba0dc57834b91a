// Package schema gates every external boundary: the incoming build request,
// the site plan returned by the AI service and the file list sent for export.
// All validators are pure and report every violation, not just the first.
package schema

import (
	"fmt"
	"strings"
)

// FieldError describes one violated field. Field is a JSON path such as
// "theme.primary" or "sections[2]".
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects all field violations found in one document.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether a violation was recorded for field.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// covers reports whether field, or one of its parents, already has a
// violation: "theme" covers "theme.primary", "sections" covers "sections[0]".
func (e *ValidationError) covers(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field || strings.HasPrefix(field, f.Field+".") || strings.HasPrefix(field, f.Field+"[") {
			return true
		}
	}
	return false
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// orNil keeps callers from returning a typed nil inside an error interface.
func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

package vendordoc

import (
	"errors"
	"strings"
)

// ErrTemplateNotFound is returned when the resolved template path does not exist.
var ErrTemplateNotFound = errors.New("template not found")

// ValidationError reports required request fields that were missing.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "no data provided"
	}
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

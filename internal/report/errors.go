package report

import (
	"errors"
	"fmt"
)

// ErrTemplateNotFound indicates the report template is missing or
// unreadable. This is fatal for the whole generation request.
var ErrTemplateNotFound = errors.New("report template not found")

// ErrWriteFailure indicates the output workbook could not be persisted.
// This is fatal for the whole generation request.
var ErrWriteFailure = errors.New("report write failure")

// GenerateError attaches the offending path to one of the fatal kinds.
type GenerateError struct {
	Kind error
	Path string
	Err  error
}

func (e *GenerateError) Error() string {
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
}

// Unwrap exposes the inner cause.
func (e *GenerateError) Unwrap() error { return e.Err }

// Is matches against the error kind, so errors.Is(err, ErrTemplateNotFound)
// works on wrapped generate errors.
func (e *GenerateError) Is(target error) bool { return errors.Is(e.Kind, target) }

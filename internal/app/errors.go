// Package app holds the state shared by the open documents of one notepad
// process: tabs, the untitled counter, recent files and the clipboard.
package app

import (
	"errors"
	"fmt"
)

// Session errors.
var (
	// ErrDocumentNotFound indicates no open tab has the given ID.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrUnsavedChanges indicates a dirty tab was closed without discarding.
	ErrUnsavedChanges = errors.New("unsaved changes")

	// ErrNoActiveDocument indicates no tab is open.
	ErrNoActiveDocument = errors.New("no active document")
)

// OperationError represents an error that occurred during a specific operation.
type OperationError struct {
	Op     string // Operation name (e.g., "close", "save")
	Target string // Target of the operation (e.g., tab title)
	Err    error  // Underlying error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{
		Op:     op,
		Target: target,
		Err:    err,
	}
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}

	msg := e.Op
	if e.Target != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Target)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

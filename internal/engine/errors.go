package engine

import (
	"errors"

	"github.com/fwj185/notepad/internal/engine/buffer"
)

// Errors returned by document operations.
var (
	// ErrOffsetOutOfRange indicates an offset is outside the valid text range.
	ErrOffsetOutOfRange = buffer.ErrOffsetOutOfRange

	// ErrRangeInvalid indicates an invalid range (e.g., end < start).
	ErrRangeInvalid = buffer.ErrRangeInvalid

	// ErrLineOutOfRange indicates a line number outside [1, LineCount()].
	ErrLineOutOfRange = errors.New("line out of range")

	// ErrReadOnly indicates an edit was attempted on a read-only document.
	ErrReadOnly = errors.New("document is read-only")

	// ErrNoClipboard indicates a clipboard operation without a clipboard.
	ErrNoClipboard = errors.New("no clipboard configured")
)

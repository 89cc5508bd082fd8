package buffer

import "fmt"

// EditKind identifies which mutation produced an Edit.
type EditKind uint8

const (
	EditInsert EditKind = iota
	EditDelete
	EditReplace
	EditSetText
)

// String returns the string representation of the edit kind.
func (k EditKind) String() string {
	switch k {
	case EditInsert:
		return "insert"
	case EditDelete:
		return "delete"
	case EditReplace:
		return "replace"
	case EditSetText:
		return "set"
	default:
		return "unknown"
	}
}

// Edit describes a committed mutation.
// Before is the full text prior to the mutation and After the full text
// once it was applied.
type Edit struct {
	Kind   EditKind
	Range  Range  // Range in Before that was removed or replaced
	Text   string // Text that took its place
	Before string
	After  string
}

// String returns a human-readable representation of the edit.
func (e Edit) String() string {
	return fmt.Sprintf("%s%s %q", e.Kind, e.Range, e.Text)
}

// EditHook receives edit notifications from a Buffer.
type EditHook func(Edit)

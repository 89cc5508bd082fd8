// Package buffer holds the text of a single open document together with its
// caret and selection.
//
// Text is stored as a sequence of Unicode scalar values and every offset in
// this package counts runes, not bytes:
//
//	buf := buffer.NewBufferFromString("Hello, World!")
//
//	buf.Insert(7, "Beautiful ")        // "Hello, Beautiful World!"
//	buf.Delete(buffer.NewRange(0, 7))  // "Beautiful World!"
//
// # Edit notifications
//
// Every mutating call (SetText, Insert, Delete, Replace) follows the same
// two-phase protocol: the current text is captured, the change is applied,
// and only then is the edit hook invoked with an Edit describing the previous
// and resulting text. Mutations that leave the text unchanged do not notify.
//
// Restore is the one entry point that replaces the text without notifying.
// It exists for undo and redo, which must not be recorded as new edits.
//
// # Offsets
//
// Mutations validate their offsets and return ErrOffsetOutOfRange or
// ErrRangeInvalid instead of clamping. Caret movement is not an edit, so
// SetCaret clamps silently.
//
// A Buffer is not safe for concurrent use.
package buffer

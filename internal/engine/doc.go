// Package engine provides the editing core for a single open document.
//
// The engine package serves as the facade over its sub-packages:
//
//   - buffer: the text, caret and selection, with edit notifications
//   - history: snapshot-based undo/redo
//   - search: literal, case and whole-word aware matching with wraparound
//   - replace: replace-next and replace-all on top of search
//   - tracking: differences from the last saved snapshot
//
// The engine performs no I/O. Whoever owns a Document supplies content with
// New or Load, reads it back with Text, and calls MarkClean after saving.
//
// # Basic Usage
//
//	d := engine.New(engine.WithContent("Hello, World!"))
//
//	d.Replace(engine.Range{Start: 7, End: 12}, "Go") // "Hello, Go!"
//	d.IsDirty()                                       // true
//
//	d.Undo()    // "Hello, World!"
//	d.IsDirty() // false, the text matches the clean snapshot again
//
// Offsets count runes, never bytes.
//
// # Undo/Redo
//
// Every committed edit pushes one snapshot onto the undo stack. Edits that
// leave the text unchanged record nothing. ReplaceAll rewrites all matches
// at once, so a single Undo reverts it. The stack holds 100 entries by
// default; older entries are discarded.
//
// # Search and Replace
//
//	d := engine.New(engine.WithContent("abcabc"))
//	d.SetSearchParams("abc", true, false)
//
//	d.FindNext() // [0:3), selected
//	d.FindNext() // [3:6)
//	d.FindNext() // [0:3), wrapped
//
//	n, _ := d.ReplaceAll("abc", "x", true, false) // "xx", n == 2
//
// A search that finds nothing returns false. It is not an error.
//
// # Error Handling
//
//   - ErrOffsetOutOfRange: an edit offset outside [0, Len()]
//   - ErrRangeInvalid: a range with End < Start
//   - ErrLineOutOfRange: GoToLine outside [1, LineCount()]
//   - ErrReadOnly: an edit on a read-only document
//   - ErrNoClipboard: Cut, Copy or Paste without a clipboard
//
// Edits are never clamped. Caret movement is.
//
// A Document is not safe for concurrent use.
package engine

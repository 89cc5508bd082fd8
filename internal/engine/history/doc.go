// Package history provides undo/redo functionality for a single document.
//
// History keeps full text snapshots rather than per-edit deltas. The undo
// stack always holds at least one entry, the state the document was opened
// with, and its top is always the document's current text:
//
//	h := history.NewHistory("", 100)
//
//	h.Record("", "a")  // undo: ["", "a"]
//	h.Record("a", "ab") // undo: ["", "a", "ab"]
//
//	text, _ := h.Undo() // "a"; redo: ["ab"]
//	text, _ = h.Redo()  // "ab"
//
// Recording a new edit clears the redo stack. When the undo stack grows past
// its limit the oldest snapshots are discarded, so undo stops at the oldest
// state that is still retained.
//
// Each entry costs O(document size). This is fine for notepad-sized text;
// large documents would want diff-based entries instead.
package history

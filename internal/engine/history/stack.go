package history

// DefaultMaxEntries is the undo stack limit used when none is given.
const DefaultMaxEntries = 100

// History manages undo/redo state for a document.
type History struct {
	undoStack []string
	redoStack []string

	// Configuration
	maxEntries int
}

// NewHistory creates a history seeded with the initial content.
func NewHistory(initial string, maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{
		undoStack:  []string{initial},
		maxEntries: maxEntries,
	}
}

// Record adds the result of a committed edit to the undo stack.
// Clears the redo stack.
func (h *History) Record(before, after string) {
	if before == after {
		return
	}

	// Resynchronise if the text changed behind our back.
	if h.Current() != before {
		h.push(before)
	}
	h.push(after)

	h.redoStack = nil
}

// push adds a snapshot and enforces the entry limit.
func (h *History) push(text string) {
	h.undoStack = append(h.undoStack, text)

	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = h.undoStack[excess:]
	}
}

// Current returns the snapshot on top of the undo stack.
func (h *History) Current() string {
	return h.undoStack[len(h.undoStack)-1]
}

// Undo steps back one entry and returns the text to restore.
// Returns false when only the oldest retained state is left.
func (h *History) Undo() (string, bool) {
	if len(h.undoStack) <= 1 {
		return "", false
	}

	top := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, top)

	return h.Current(), true
}

// Redo re-applies the last undone entry and returns the text to restore.
// Returns false when there is nothing to redo.
func (h *History) Redo() (string, bool) {
	if len(h.redoStack) == 0 {
		return "", false
	}

	text := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.push(text)

	return text, true
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 1
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// Len returns the number of snapshots on the undo stack,
// including the current state.
func (h *History) Len() int {
	return len(h.undoStack)
}

// UndoCount returns the number of undo operations available.
func (h *History) UndoCount() int {
	return len(h.undoStack) - 1
}

// RedoCount returns the number of redo operations available.
func (h *History) RedoCount() int {
	return len(h.redoStack)
}

// Reset discards all history and seeds it with content.
func (h *History) Reset(content string) {
	h.undoStack = []string{content}
	h.redoStack = nil
}

// SetMaxEntries changes the maximum number of undo entries.
// If the current stack is larger, oldest entries are removed.
func (h *History) SetMaxEntries(max int) {
	if max <= 0 {
		max = DefaultMaxEntries
	}

	h.maxEntries = max

	if len(h.undoStack) > max {
		excess := len(h.undoStack) - max
		h.undoStack = h.undoStack[excess:]
	}
}

// MaxEntries returns the maximum number of undo entries.
func (h *History) MaxEntries() int {
	return h.maxEntries
}

package engine

import (
	"github.com/fwj185/notepad/internal/engine/buffer"
	"github.com/fwj185/notepad/internal/engine/history"
	"github.com/fwj185/notepad/internal/engine/replace"
	"github.com/fwj185/notepad/internal/engine/search"
	"github.com/fwj185/notepad/internal/engine/tracking"
	"github.com/fwj185/notepad/internal/logging"
)

// Re-export commonly used types for convenience.
type (
	// Offset is a rune position in the document.
	Offset = buffer.Offset

	// Range represents a rune range in the document.
	Range = buffer.Range

	// Change represents a difference from the clean snapshot.
	Change = tracking.Change
)

// Document is the editing core for one open document. It combines the text
// buffer, undo/redo history, search state and the cosmetic style attributes.
//
// A Document is not safe for concurrent use.
type Document struct {
	buf     *buffer.Buffer
	history *history.History
	search  *search.State

	// Dirty tracking
	clean string
	dirty bool

	// Collaborators
	clipboard Clipboard
	logger    *logging.Logger

	// Configuration
	style          Style
	zoom           Zoom
	timeLayout     string
	maxUndoEntries int
	readOnly       bool

	// Initialization
	initContent string
}

// New creates a new Document with the given options.
func New(opts ...Option) *Document {
	d := &Document{
		style:          DefaultStyle(),
		zoom:           DefaultZoom(),
		timeLayout:     DefaultTimeLayout,
		maxUndoEntries: DefaultMaxUndoEntries,
		logger:         logging.Null(),
	}

	for _, opt := range opts {
		opt(d)
	}

	d.buf = buffer.NewBufferFromString(d.initContent, buffer.WithEditHook(d.onEdit))
	// The buffer replaces invalid UTF-8 with U+FFFD; snapshots must match it.
	d.history = history.NewHistory(d.buf.Text(), d.maxUndoEntries)
	d.clean = d.buf.Text()
	d.logger = d.logger.WithComponent("engine")

	return d
}

// onEdit is the buffer's edit hook. It runs after every committed mutation
// and is the only place history entries are recorded.
func (d *Document) onEdit(e buffer.Edit) {
	d.history.Record(e.Before, e.After)
	if e.After != d.clean {
		d.dirty = true
	}
}

// restore replaces the text for undo/redo, bypassing the edit hook.
func (d *Document) restore(text string) {
	d.buf.Restore(text)
	d.dirty = text != d.clean
}

// Content

// Text returns the full document content.
func (d *Document) Text() string {
	return d.buf.Text()
}

// Len returns the length of the document in runes.
func (d *Document) Len() Offset {
	return d.buf.Len()
}

// SetText replaces the entire content. It is an edit: it is recorded in the
// history and marks the document dirty.
func (d *Document) SetText(content string) error {
	if d.readOnly {
		return ErrReadOnly
	}
	d.buf.SetText(content)
	return nil
}

// Load replaces the content with externally supplied text, such as a file
// that was just read. History is reset and the document is clean.
func (d *Document) Load(content string) {
	d.buf.Restore(content)
	d.buf.SetCaret(0)
	d.history.Reset(d.buf.Text())
	d.clean = d.buf.Text()
	d.dirty = false
	if d.search != nil {
		d.search.Reset()
	}
}

// IsReadOnly returns true if the document rejects edits.
func (d *Document) IsReadOnly() bool {
	return d.readOnly
}

// Dirty State

// IsDirty returns true if the text differs from the last clean snapshot.
func (d *Document) IsDirty() bool {
	return d.dirty
}

// MarkClean records the current text as persisted.
func (d *Document) MarkClean() {
	d.clean = d.buf.Text()
	d.dirty = false
}

// ChangesSinceClean returns the differences between the last clean snapshot
// and the current text.
func (d *Document) ChangesSinceClean() []Change {
	return tracking.Diff(d.clean, d.buf.Text())
}

// Edits

// Insert inserts text at the given offset.
// Returns the offset just past the inserted text.
func (d *Document) Insert(offset Offset, text string) (Offset, error) {
	if d.readOnly {
		return 0, ErrReadOnly
	}
	return d.buf.Insert(offset, text)
}

// Delete removes the text in the given range.
func (d *Document) Delete(r Range) error {
	if d.readOnly {
		return ErrReadOnly
	}
	return d.buf.Delete(r)
}

// Replace replaces the text in the given range.
// Returns the range now covered by the new text.
func (d *Document) Replace(r Range, text string) (Range, error) {
	if d.readOnly {
		return Range{}, ErrReadOnly
	}
	return d.buf.Replace(r, text)
}

// Undo/Redo

// Undo restores the previous history entry. Returns false when there is
// nothing to undo. The caret moves to the end of the text.
func (d *Document) Undo() bool {
	if d.readOnly {
		return false
	}
	text, ok := d.history.Undo()
	if !ok {
		return false
	}
	d.restore(text)
	d.logger.Debug("undo: %d entries left", d.history.Len())
	return true
}

// Redo re-applies the last undone entry. Returns false when there is nothing
// to redo. The caret moves to the end of the text.
func (d *Document) Redo() bool {
	if d.readOnly {
		return false
	}
	text, ok := d.history.Redo()
	if !ok {
		return false
	}
	d.restore(text)
	d.logger.Debug("redo: %d redo entries left", d.history.RedoCount())
	return true
}

// CanUndo returns true if undo is available.
func (d *Document) CanUndo() bool {
	return d.history.CanUndo()
}

// CanRedo returns true if redo is available.
func (d *Document) CanRedo() bool {
	return d.history.CanRedo()
}

// UndoCount returns the number of undo operations available.
func (d *Document) UndoCount() int {
	return d.history.UndoCount()
}

// RedoCount returns the number of redo operations available.
func (d *Document) RedoCount() int {
	return d.history.RedoCount()
}

// HistoryLen returns the number of snapshots on the undo stack, including
// the current state.
func (d *Document) HistoryLen() int {
	return d.history.Len()
}

// Caret and Selection

// Caret returns the caret offset.
func (d *Document) Caret() Offset {
	return d.buf.Caret()
}

// SetCaret moves the caret, clamping to the text, and clears the selection.
func (d *Document) SetCaret(offset Offset) {
	d.buf.SetCaret(offset)
}

// Selection returns the selected range, if any.
func (d *Document) Selection() (Range, bool) {
	return d.buf.Selection()
}

// Select selects the given range and moves the caret to its end.
func (d *Document) Select(r Range) error {
	return d.buf.Select(r)
}

// ClearSelection removes the selection.
func (d *Document) ClearSelection() {
	d.buf.ClearSelection()
}

// SelectAll selects the whole text.
func (d *Document) SelectAll() {
	d.buf.SelectAll()
}

// SelectedText returns the selected text, or "" without a selection.
func (d *Document) SelectedText() string {
	return d.buf.SelectedText()
}

// Search and Replace

// searchState returns the search state, creating it on first use.
func (d *Document) searchState() *search.State {
	if d.search == nil {
		d.search = search.NewState()
	}
	return d.search
}

// SetSearchParams sets the active query and forgets the last match.
func (d *Document) SetSearchParams(pattern string, matchCase, wholeWord bool) {
	d.searchState().Set(search.NewQuery(pattern, matchCase, wholeWord))
}

// SearchQuery returns the active query.
func (d *Document) SearchQuery() search.Query {
	return d.searchState().Query()
}

// LastMatchStart returns the start of the most recent match.
func (d *Document) LastMatchStart() (Offset, bool) {
	return d.searchState().LastMatchStart()
}

// FindNext selects the next match after the caret, wrapping around the end
// of the text. Returns false if the pattern does not occur or is empty.
func (d *Document) FindNext() (Range, bool) {
	return d.searchState().Next(d.buf)
}

// FindPrevious selects the previous match, wrapping around the start of the
// text. Returns false if the pattern does not occur or is empty.
func (d *Document) FindPrevious() (Range, bool) {
	return d.searchState().Previous(d.buf)
}

// ReplaceNext replaces the selection if it is the current match, then moves
// to the next match. Returns whether a replacement happened.
func (d *Document) ReplaceNext(replacement string) (bool, error) {
	if d.readOnly {
		return false, ErrReadOnly
	}
	return replace.Next(d.buf, d.searchState(), replacement)
}

// ReplaceAll replaces every match in one edit and returns the number of
// replacements. The active search query is not changed.
func (d *Document) ReplaceAll(pattern, replacement string, matchCase, wholeWord bool) (int, error) {
	if d.readOnly {
		return 0, ErrReadOnly
	}
	n := replace.ReplaceAll(d.buf, search.NewQuery(pattern, matchCase, wholeWord), replacement)
	d.logger.WithField("pattern", pattern).Debug("replace all: %d replacements", n)
	return n, nil
}

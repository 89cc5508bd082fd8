package buffer

import (
	"errors"
	"fmt"
)

// Errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
)

// Buffer holds document text along with caret and selection state.
// It provides the primary interface for text manipulation.
type Buffer struct {
	text []rune

	caret     Offset
	selection Range
	selected  bool

	onEdit EditHook
}

// NewBuffer creates a new empty buffer.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewBufferFromString creates a buffer with initial content.
// Construction is not an edit and does not invoke the edit hook.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	b := NewBuffer(opts...)
	b.text = []rune(s)
	return b
}

// SetEditHook replaces the edit hook. A nil hook disables notifications.
func (b *Buffer) SetEditHook(hook EditHook) {
	b.onEdit = hook
}

// Read Operations

// Text returns the full buffer content as a string.
func (b *Buffer) Text() string {
	return string(b.text)
}

// Len returns the total length of the buffer in runes.
func (b *Buffer) Len() Offset {
	return len(b.text)
}

// IsEmpty returns true if the buffer has no content.
func (b *Buffer) IsEmpty() bool {
	return len(b.text) == 0
}

// Slice returns the text in the given range.
func (b *Buffer) Slice(r Range) (string, error) {
	if err := b.checkRange(r); err != nil {
		return "", err
	}
	return string(b.text[r.Start:r.End]), nil
}

// RuneAt returns the rune at offset, or false if offset is past the end.
func (b *Buffer) RuneAt(offset Offset) (rune, bool) {
	if offset < 0 || offset >= len(b.text) {
		return 0, false
	}
	return b.text[offset], true
}

// Write Operations

// SetText replaces the entire content, moves the caret to 0 and clears the
// selection.
func (b *Buffer) SetText(s string) {
	whole := Range{Start: 0, End: len(b.text)}
	before := b.Text()
	b.text = []rune(s)
	b.caret = 0
	b.selected = false
	b.commit(Edit{
		Kind:   EditSetText,
		Range:  whole,
		Text:   s,
		Before: before,
	})
}

// Insert inserts text at the given offset.
// Returns the offset just past the inserted text.
func (b *Buffer) Insert(offset Offset, s string) (Offset, error) {
	r, err := b.replace(EditInsert, Range{Start: offset, End: offset}, s)
	if err != nil {
		return 0, fmt.Errorf("insert at %d: %w", offset, err)
	}
	return r.End, nil
}

// Delete removes the text in the given range.
func (b *Buffer) Delete(r Range) error {
	if _, err := b.replace(EditDelete, r, ""); err != nil {
		return fmt.Errorf("delete %s: %w", r, err)
	}
	return nil
}

// Replace replaces the text in the given range.
// Returns the range now covered by the new text.
func (b *Buffer) Replace(r Range, s string) (Range, error) {
	kind := EditReplace
	if r.IsEmpty() {
		kind = EditInsert
	}
	newRange, err := b.replace(kind, r, s)
	if err != nil {
		return Range{}, fmt.Errorf("replace %s: %w", r, err)
	}
	return newRange, nil
}

func (b *Buffer) replace(kind EditKind, r Range, s string) (Range, error) {
	if err := b.checkRange(r); err != nil {
		return Range{}, err
	}

	before := b.Text()
	ins := []rune(s)

	text := make([]rune, 0, len(b.text)-r.Len()+len(ins))
	text = append(text, b.text[:r.Start]...)
	text = append(text, ins...)
	text = append(text, b.text[r.End:]...)
	b.text = text

	newRange := Range{Start: r.Start, End: r.Start + len(ins)}
	b.caret = newRange.End
	b.selected = false

	b.commit(Edit{
		Kind:   kind,
		Range:  r,
		Text:   s,
		Before: before,
	})
	return newRange, nil
}

// commit finishes a mutation by notifying the hook.
// Mutations that did not change the text are not reported.
func (b *Buffer) commit(e Edit) {
	e.After = b.Text()
	if e.After == e.Before || b.onEdit == nil {
		return
	}
	b.onEdit(e)
}

// Restore replaces the content without notifying the edit hook.
// The caret moves to the end of the text and the selection is cleared.
func (b *Buffer) Restore(s string) {
	b.text = []rune(s)
	b.caret = len(b.text)
	b.selected = false
}

// Caret and Selection

// Caret returns the caret offset.
func (b *Buffer) Caret() Offset {
	return b.caret
}

// SetCaret moves the caret, clamping to [0, Len()], and clears the selection.
func (b *Buffer) SetCaret(offset Offset) {
	b.caret = max(0, min(offset, len(b.text)))
	b.selected = false
}

// Selection returns the selected range, if any.
func (b *Buffer) Selection() (Range, bool) {
	return b.selection, b.selected
}

// Select selects the given range and moves the caret to its end.
// An empty range clears the selection and places the caret.
func (b *Buffer) Select(r Range) error {
	if err := b.checkRange(r); err != nil {
		return fmt.Errorf("select %s: %w", r, err)
	}
	b.caret = r.End
	b.selection = r
	b.selected = !r.IsEmpty()
	return nil
}

// SelectAll selects the whole text.
func (b *Buffer) SelectAll() {
	_ = b.Select(Range{Start: 0, End: len(b.text)})
}

// ClearSelection removes the selection, keeping the caret where it is.
func (b *Buffer) ClearSelection() {
	b.selected = false
}

// SelectedText returns the selected text, or "" without a selection.
func (b *Buffer) SelectedText() string {
	if !b.selected {
		return ""
	}
	return string(b.text[b.selection.Start:b.selection.End])
}

func (b *Buffer) checkOffset(offset Offset) error {
	if offset < 0 || offset > len(b.text) {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrOffsetOutOfRange, offset, len(b.text))
	}
	return nil
}

func (b *Buffer) checkRange(r Range) error {
	if !r.IsValid() {
		return fmt.Errorf("%w: %s", ErrRangeInvalid, r)
	}
	if err := b.checkOffset(r.Start); err != nil {
		return err
	}
	return b.checkOffset(r.End)
}

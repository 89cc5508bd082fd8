package engine

import (
	"fmt"
	"time"
)

// Clipboard is the system clipboard as seen by a document.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// Position is a 1-based line and column, as shown in a status bar.
type Position struct {
	Line   int
	Column int
}

// ReplaceSelection replaces the selection with text, or inserts text at the
// caret when nothing is selected.
func (d *Document) ReplaceSelection(text string) error {
	if d.readOnly {
		return ErrReadOnly
	}
	if sel, ok := d.buf.Selection(); ok {
		_, err := d.buf.Replace(sel, text)
		return err
	}
	_, err := d.buf.Insert(d.buf.Caret(), text)
	return err
}

// DeleteSelection removes the selected text. Without a selection it does
// nothing.
func (d *Document) DeleteSelection() error {
	if d.readOnly {
		return ErrReadOnly
	}
	sel, ok := d.buf.Selection()
	if !ok {
		return nil
	}
	return d.buf.Delete(sel)
}

// Copy writes the selection to the clipboard.
func (d *Document) Copy() error {
	if d.clipboard == nil {
		return ErrNoClipboard
	}
	if _, ok := d.buf.Selection(); !ok {
		return nil
	}
	if err := d.clipboard.WriteAll(d.buf.SelectedText()); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	return nil
}

// Cut copies the selection to the clipboard and removes it.
func (d *Document) Cut() error {
	if d.readOnly {
		return ErrReadOnly
	}
	if err := d.Copy(); err != nil {
		return err
	}
	return d.DeleteSelection()
}

// Paste replaces the selection, or inserts at the caret, with the clipboard
// contents.
func (d *Document) Paste() error {
	if d.readOnly {
		return ErrReadOnly
	}
	if d.clipboard == nil {
		return ErrNoClipboard
	}
	text, err := d.clipboard.ReadAll()
	if err != nil {
		return fmt.Errorf("paste: %w", err)
	}
	if text == "" {
		return nil
	}
	return d.ReplaceSelection(text)
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return d.buf.LineCount()
}

// Position returns the caret's 1-based line and column.
func (d *Document) Position() Position {
	p := d.buf.OffsetToPoint(d.buf.Caret())
	return Position{Line: p.Line + 1, Column: p.Column + 1}
}

// GoToLine moves the caret to the start of the 1-based line.
func (d *Document) GoToLine(line int) error {
	offset, ok := d.buf.LineStartOffset(line - 1)
	if !ok {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrLineOutOfRange, line, d.buf.LineCount())
	}
	d.buf.SetCaret(offset)
	return nil
}

// InsertTimeDate types now, formatted with the configured layout, over the
// selection or at the caret.
func (d *Document) InsertTimeDate(now time.Time) error {
	return d.ReplaceSelection(now.Format(d.timeLayout))
}

// TimeLayout returns the layout used by InsertTimeDate.
func (d *Document) TimeLayout() string {
	return d.timeLayout
}

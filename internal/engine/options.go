package engine

import (
	"github.com/fwj185/notepad/internal/engine/history"
	"github.com/fwj185/notepad/internal/logging"
)

// Default configuration values.
const (
	DefaultMaxUndoEntries = history.DefaultMaxEntries
	DefaultTimeLayout     = "2006/01/02 15:04:05"
)

// Option configures a Document during creation.
type Option func(*Document)

// WithContent sets the initial content of the document.
func WithContent(content string) Option {
	return func(d *Document) {
		d.initContent = content
	}
}

// WithMaxUndoEntries sets the maximum number of undo history entries.
func WithMaxUndoEntries(max int) Option {
	return func(d *Document) {
		if max > 0 {
			d.maxUndoEntries = max
		}
	}
}

// WithStyle sets the initial style attributes.
func WithStyle(style Style) Option {
	return func(d *Document) {
		d.style = style
	}
}

// WithZoom sets the zoom limits.
func WithZoom(zoom Zoom) Option {
	return func(d *Document) {
		if zoom.Valid() {
			d.zoom = zoom
		}
	}
}

// WithClipboard sets the clipboard used by Cut, Copy and Paste.
func WithClipboard(cb Clipboard) Option {
	return func(d *Document) {
		d.clipboard = cb
	}
}

// WithTimeLayout sets the time layout used by InsertTimeDate.
func WithTimeLayout(layout string) Option {
	return func(d *Document) {
		if layout != "" {
			d.timeLayout = layout
		}
	}
}

// WithLogger sets the logger. Documents log nothing by default.
func WithLogger(l *logging.Logger) Option {
	return func(d *Document) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithReadOnly creates a read-only document.
// Edit operations will return ErrReadOnly.
func WithReadOnly() Option {
	return func(d *Document) {
		d.readOnly = true
	}
}

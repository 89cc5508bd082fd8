package app

import (
	"path/filepath"

	"github.com/google/uuid"

	"github.com/fwj185/notepad/internal/engine"
)

// DirtyMarker prefixes the title of a tab with unsaved changes.
const DirtyMarker = "● "

// Tab is one open document.
type Tab struct {
	// ID identifies the tab for the lifetime of the session.
	ID uuid.UUID

	// Doc is the editing core.
	Doc *engine.Document

	path string
	name string
}

// Path returns the file the tab was opened from or saved to, or "" for an
// untitled document.
func (t *Tab) Path() string {
	return t.path
}

// IsUntitled returns true if the tab has never been saved.
func (t *Tab) IsUntitled() bool {
	return t.path == ""
}

// Name returns the display name without the dirty marker.
func (t *Tab) Name() string {
	return t.name
}

// Title returns the display name, marked when the document is dirty.
func (t *Tab) Title() string {
	if t.Doc.IsDirty() {
		return DirtyMarker + t.name
	}
	return t.name
}

func (t *Tab) setPath(path string) {
	t.path = path
	t.name = filepath.Base(path)
}

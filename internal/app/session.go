package app

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/fwj185/notepad/internal/config"
	"github.com/fwj185/notepad/internal/engine"
	"github.com/fwj185/notepad/internal/logging"
)

// Option configures a Session.
type Option func(*Session)

// WithClipboard sets the clipboard shared by every tab.
func WithClipboard(cb engine.Clipboard) Option {
	return func(s *Session) {
		s.clipboard = cb
	}
}

// WithLogger sets the session logger. Tabs log through it too.
func WithLogger(l *logging.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// Session manages the open tabs of one process.
type Session struct {
	mu sync.RWMutex

	tabs   map[uuid.UUID]*Tab
	order  []uuid.UUID // open order, for navigation
	active *Tab

	untitled int      // last untitled number handed out
	recent   []string // most recent first

	cfg       *config.Config
	style     engine.Style
	clipboard engine.Clipboard
	logger    *logging.Logger
}

// NewSession creates an empty session. A nil cfg uses config.Default().
func NewSession(cfg *config.Config, opts ...Option) *Session {
	if cfg == nil {
		cfg = config.Default()
	}

	s := &Session{
		tabs:   make(map[uuid.UUID]*Tab),
		cfg:    cfg,
		logger: logging.Null(),
		style: engine.Style{
			Family:   cfg.Font.Family,
			Size:     cfg.Font.Size,
			Bold:     cfg.Font.Bold,
			Italic:   cfg.Font.Italic,
			WordWrap: cfg.Editor.WordWrap,
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	s.logger = s.logger.WithComponent("session")
	return s
}

// newDocument creates a document with the session's settings.
func (s *Session) newDocument(content string) *engine.Document {
	opts := []engine.Option{
		engine.WithContent(content),
		engine.WithMaxUndoEntries(s.cfg.Editor.HistoryLimit),
		engine.WithTimeLayout(s.cfg.Editor.TimeFormat),
		engine.WithStyle(s.style),
		engine.WithZoom(engine.Zoom{
			Min:     s.cfg.Zoom.Min,
			Max:     s.cfg.Zoom.Max,
			Step:    s.cfg.Zoom.Step,
			Default: s.cfg.Zoom.Default,
		}),
		engine.WithLogger(s.logger),
	}
	if s.clipboard != nil {
		opts = append(opts, engine.WithClipboard(s.clipboard))
	}
	return engine.New(opts...)
}

// add registers a tab and makes it active. Caller holds the lock.
func (s *Session) add(t *Tab) {
	s.tabs[t.ID] = t
	s.order = append(s.order, t.ID)
	s.active = t
}

// NewUntitled opens an empty tab named "<prefix> N".
func (s *Session) NewUntitled() *Tab {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.untitled++
	t := &Tab{
		ID:   uuid.New(),
		Doc:  s.newDocument(""),
		name: fmt.Sprintf("%s %d", s.cfg.Session.UntitledPrefix, s.untitled),
	}
	s.add(t)

	s.logger.WithField("tab", t.ID).Debug("new %s", t.name)
	return t
}

// Open opens content read from path in a new tab, or activates the tab that
// already shows path. The path is recorded in the recent files list.
func (s *Session) Open(path, content string) *Tab {
	path = filepath.Clean(path)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.touchRecent(path)

	for _, id := range s.order {
		if t := s.tabs[id]; t.path == path {
			s.active = t
			return t
		}
	}

	t := &Tab{
		ID:  uuid.New(),
		Doc: s.newDocument(content),
	}
	t.setPath(path)
	s.add(t)

	s.logger.WithFields(map[string]any{"tab": t.ID, "path": path}).
		Info("opened %d runes", t.Doc.Len())
	return t
}

// Saved records that the tab's text was written to path.
func (s *Session) Saved(id uuid.UUID, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tabs[id]
	if !ok {
		return NewOperationError("save", id.String(), ErrDocumentNotFound)
	}

	path = filepath.Clean(path)
	t.Doc.MarkClean()
	t.setPath(path)
	s.touchRecent(path)

	s.logger.WithFields(map[string]any{"tab": id, "path": path}).Info("saved")
	return nil
}

// Close closes a tab. A dirty tab is refused with ErrUnsavedChanges.
func (s *Session) Close(id uuid.UUID) error {
	return s.close(id, false)
}

// Discard closes a tab, dropping any unsaved changes.
func (s *Session) Discard(id uuid.UUID) error {
	return s.close(id, true)
}

func (s *Session) close(id uuid.UUID, force bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tabs[id]
	if !ok {
		return NewOperationError("close", id.String(), ErrDocumentNotFound)
	}
	if !force && t.Doc.IsDirty() {
		return NewOperationError("close", t.name, ErrUnsavedChanges)
	}

	delete(s.tabs, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	if s.active == t {
		if len(s.order) > 0 {
			s.active = s.tabs[s.order[len(s.order)-1]]
		} else {
			s.active = nil
		}
	}

	s.logger.WithField("tab", id).Debug("closed %s", t.name)
	return nil
}

// Tab returns an open tab by ID.
func (s *Session) Tab(id uuid.UUID) (*Tab, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tabs[id]
	return t, ok
}

// Tabs returns the open tabs in the order they were opened.
func (s *Session) Tabs() []*Tab {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tabs := make([]*Tab, 0, len(s.order))
	for _, id := range s.order {
		tabs = append(tabs, s.tabs[id])
	}
	return tabs
}

// Count returns the number of open tabs.
func (s *Session) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tabs)
}

// Active returns the active tab.
func (s *Session) Active() (*Tab, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.active == nil {
		return nil, ErrNoActiveDocument
	}
	return s.active, nil
}

// SetActive makes the tab with the given ID active.
func (s *Session) SetActive(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tabs[id]
	if !ok {
		return NewOperationError("activate", id.String(), ErrDocumentNotFound)
	}
	s.active = t
	return nil
}

// Next activates the tab after the active one, wrapping around.
func (s *Session) Next() *Tab {
	return s.cycle(1)
}

// Previous activates the tab before the active one, wrapping around.
func (s *Session) Previous() *Tab {
	return s.cycle(-1)
}

func (s *Session) cycle(delta int) *Tab {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.order) == 0 || s.active == nil {
		return nil
	}

	for i, id := range s.order {
		if id == s.active.ID {
			next := (i + delta + len(s.order)) % len(s.order)
			s.active = s.tabs[s.order[next]]
			break
		}
	}
	return s.active
}

// Dirty returns the tabs with unsaved changes.
func (s *Session) Dirty() []*Tab {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var dirty []*Tab
	for _, id := range s.order {
		if t := s.tabs[id]; t.Doc.IsDirty() {
			dirty = append(dirty, t)
		}
	}
	return dirty
}

// Recent returns the recent files, most recent first.
func (s *Session) Recent() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.recent...)
}

// ClearRecent empties the recent files list.
func (s *Session) ClearRecent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recent = nil
}

// touchRecent moves path to the front of the recent list. Caller holds the
// lock.
func (s *Session) touchRecent(path string) {
	if path == "" {
		return
	}

	recent := make([]string, 0, len(s.recent)+1)
	recent = append(recent, path)
	for _, p := range s.recent {
		if p != path {
			recent = append(recent, p)
		}
	}
	if limit := max(s.cfg.Session.MaxRecent, 0); len(recent) > limit {
		recent = recent[:limit]
	}
	s.recent = recent
}

// ApplyFontToAll sets the font of every open tab and of tabs opened later.
func (s *Session) ApplyFontToAll(family string, size float64, bold, italic bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.style.Family = family
	s.style.Size = size
	s.style.Bold = bold
	s.style.Italic = italic

	for _, t := range s.tabs {
		t.Doc.SetFont(family, size, bold, italic)
	}
}

// Package clipboard connects documents to a clipboard.
package clipboard

import (
	"errors"
	"sync"

	"github.com/atotto/clipboard"
)

// Clipboard reads and writes clipboard text.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// ErrUnsupported is returned when the platform has no usable clipboard.
var ErrUnsupported = errors.New("clipboard unsupported on this system")

// System is the operating system clipboard.
type System struct{}

// NewSystem returns the system clipboard, or ErrUnsupported when no
// clipboard utility is available (e.g. a headless Linux box without xclip).
func NewSystem() (*System, error) {
	if clipboard.Unsupported {
		return nil, ErrUnsupported
	}
	return &System{}, nil
}

// ReadAll returns the clipboard text.
func (*System) ReadAll() (string, error) {
	return clipboard.ReadAll()
}

// WriteAll replaces the clipboard text.
func (*System) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Memory is an in-process clipboard, shared by every document in a session
// when no system clipboard is available.
type Memory struct {
	mu   sync.Mutex
	text string
}

// NewMemory creates an empty in-memory clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// ReadAll returns the stored text.
func (m *Memory) ReadAll() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

// WriteAll stores text.
func (m *Memory) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}

// Open returns the system clipboard when possible and a Memory clipboard
// otherwise.
func Open() Clipboard {
	if sys, err := NewSystem(); err == nil {
		return sys
	}
	return NewMemory()
}

package search

import "github.com/fwj185/notepad/internal/engine/buffer"

// State holds the active query of a document and the start of the last
// match it produced.
type State struct {
	query     Query
	lastStart buffer.Offset
	hasLast   bool
}

// NewState creates an empty search state.
func NewState() *State {
	return &State{}
}

// Set installs a new query and forgets the last match.
func (s *State) Set(q Query) {
	s.query = q
	s.Reset()
}

// Reset forgets the last match but keeps the query.
func (s *State) Reset() {
	s.lastStart = 0
	s.hasLast = false
}

// Query returns the active query.
func (s *State) Query() Query {
	return s.query
}

// LastMatchStart returns the start of the most recent match.
func (s *State) LastMatchStart() (buffer.Offset, bool) {
	return s.lastStart, s.hasLast
}

// Next finds the next match from the caret and selects it.
func (s *State) Next(buf *buffer.Buffer) (buffer.Range, bool) {
	r, ok := FindNext(buf.Text(), s.query, buf.Caret())
	return s.apply(buf, r, ok)
}

// Previous finds the previous match and selects it. The scan starts at the
// selection start when there is a selection, so repeated calls walk back
// through the matches instead of re-selecting the current one.
func (s *State) Previous(buf *buffer.Buffer) (buffer.Range, bool) {
	from := buf.Caret()
	if sel, ok := buf.Selection(); ok {
		from = sel.Start
	}
	r, ok := FindPrevious(buf.Text(), s.query, from)
	return s.apply(buf, r, ok)
}

func (s *State) apply(buf *buffer.Buffer, r buffer.Range, ok bool) (buffer.Range, bool) {
	if !ok {
		return buffer.Range{}, false
	}
	if err := buf.Select(r); err != nil {
		return buffer.Range{}, false
	}
	s.lastStart = r.Start
	s.hasLast = true
	return r, true
}

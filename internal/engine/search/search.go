package search

import (
	"unicode"

	"github.com/fwj185/notepad/internal/engine/buffer"
)

// Options controls how a pattern is compared with the text.
type Options struct {
	MatchCase bool
	WholeWord bool
}

// Query is a pattern together with its matching options.
type Query struct {
	Pattern string
	Options
}

// NewQuery creates a query.
func NewQuery(pattern string, matchCase, wholeWord bool) Query {
	return Query{
		Pattern: pattern,
		Options: Options{MatchCase: matchCase, WholeWord: wholeWord},
	}
}

// IsEmpty returns true if the query can never match.
func (q Query) IsEmpty() bool {
	return q.Pattern == ""
}

// FindNext returns the first match starting at or after from. If there is
// none, the search wraps and returns the first match before from.
func FindNext(text string, q Query, from buffer.Offset) (buffer.Range, bool) {
	s := newScanner(text, q)
	if s == nil {
		return buffer.Range{}, false
	}
	from = s.clamp(from)

	for p := from; p <= s.lastStart(); p++ {
		if s.matchAt(p) {
			return s.rangeAt(p), true
		}
	}
	// Wrap around
	for p := 0; p < from && p <= s.lastStart(); p++ {
		if s.matchAt(p) {
			return s.rangeAt(p), true
		}
	}
	return buffer.Range{}, false
}

// FindPrevious returns the last match whose start precedes from. If there is
// none, the search wraps and returns the last match in the text.
func FindPrevious(text string, q Query, from buffer.Offset) (buffer.Range, bool) {
	s := newScanner(text, q)
	if s == nil {
		return buffer.Range{}, false
	}
	from = s.clamp(from)

	for p := min(from-1, s.lastStart()); p >= 0; p-- {
		if s.matchAt(p) {
			return s.rangeAt(p), true
		}
	}
	// Wrap around
	for p := s.lastStart(); p >= from; p-- {
		if s.matchAt(p) {
			return s.rangeAt(p), true
		}
	}
	return buffer.Range{}, false
}

// FindAll returns every non-overlapping match from left to right.
// After a match, scanning resumes at its end.
func FindAll(text string, q Query) []buffer.Range {
	s := newScanner(text, q)
	if s == nil {
		return nil
	}

	var matches []buffer.Range
	for p := 0; p <= s.lastStart(); {
		if !s.matchAt(p) {
			p++
			continue
		}
		r := s.rangeAt(p)
		matches = append(matches, r)
		p = r.End
	}
	return matches
}

// MatchesAt reports whether r is exactly a match of q in text.
func MatchesAt(text string, q Query, r buffer.Range) bool {
	s := newScanner(text, q)
	if s == nil || r.Start < 0 || r.Len() != len(s.pattern) || r.Start > s.lastStart() {
		return false
	}
	return s.matchAt(r.Start)
}

// IsWordRune reports whether r is part of a word for whole-word matching.
// Non-spacing marks belong to the word of the rune they combine with.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.Is(unicode.Mn, r)
}

// scanner compares a folded pattern against folded text.
type scanner struct {
	text      []rune
	pattern   []rune
	wholeWord bool
}

func newScanner(text string, q Query) *scanner {
	if q.IsEmpty() {
		return nil
	}
	s := &scanner{
		text:      []rune(text),
		pattern:   []rune(q.Pattern),
		wholeWord: q.WholeWord,
	}
	if !q.MatchCase {
		fold(s.text)
		fold(s.pattern)
	}
	return s
}

// fold lower-cases runes in place. The rune count never changes.
func fold(rs []rune) {
	for i, r := range rs {
		rs[i] = unicode.ToLower(r)
	}
}

func (s *scanner) clamp(offset buffer.Offset) buffer.Offset {
	return max(0, min(offset, len(s.text)))
}

// lastStart is the greatest offset at which a match could begin.
// It is negative when the pattern is longer than the text.
func (s *scanner) lastStart() buffer.Offset {
	return len(s.text) - len(s.pattern)
}

func (s *scanner) rangeAt(p buffer.Offset) buffer.Range {
	return buffer.Range{Start: p, End: p + len(s.pattern)}
}

func (s *scanner) matchAt(p buffer.Offset) bool {
	for i, r := range s.pattern {
		if s.text[p+i] != r {
			return false
		}
	}
	if !s.wholeWord {
		return true
	}

	end := p + len(s.pattern)
	if p > 0 && IsWordRune(s.text[p-1]) {
		return false
	}
	if end < len(s.text) && IsWordRune(s.text[end]) {
		return false
	}
	return true
}

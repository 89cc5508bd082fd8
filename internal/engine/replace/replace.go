// Package replace substitutes search matches in a buffer.
//
// Replacements go through the buffer's mutation API, so they are recorded by
// whatever edit hook the buffer carries. ReplaceAll rewrites every match in
// a single mutation and therefore produces a single undo entry.
package replace

import (
	"strings"

	"github.com/fwj185/notepad/internal/engine/buffer"
	"github.com/fwj185/notepad/internal/engine/search"
)

// Result is the outcome of replacing all matches in a text.
type Result struct {
	Text    string
	Count   int
	Matches []buffer.Range // Match ranges in the original text
}

// All replaces every non-overlapping match of q in text.
// The count is the number of matches found, never derived from lengths.
func All(text string, q search.Query, replacement string) Result {
	matches := search.FindAll(text, q)
	if len(matches) == 0 {
		return Result{Text: text}
	}

	runes := []rune(text)
	var sb strings.Builder
	sb.Grow(len(text))

	prev := 0
	for _, m := range matches {
		sb.WriteString(string(runes[prev:m.Start]))
		sb.WriteString(replacement)
		prev = m.End
	}
	sb.WriteString(string(runes[prev:]))

	return Result{
		Text:    sb.String(),
		Count:   len(matches),
		Matches: matches,
	}
}

// ReplaceAll replaces every match of q in buf as one mutation and returns
// the number of replacements. The buffer is untouched when nothing matches.
func ReplaceAll(buf *buffer.Buffer, q search.Query, replacement string) int {
	res := All(buf.Text(), q, replacement)
	if res.Count == 0 {
		return 0
	}
	buf.SetText(res.Text)
	return res.Count
}

// Next replaces the current selection if it is exactly a match of the active
// query, then moves on to the following match. A selection that does not
// match is left alone; only the search advances.
func Next(buf *buffer.Buffer, st *search.State, replacement string) (bool, error) {
	q := st.Query()
	if q.IsEmpty() {
		return false, nil
	}

	replaced := false
	if sel, ok := buf.Selection(); ok && search.MatchesAt(buf.Text(), q, sel) {
		if _, err := buf.Replace(sel, replacement); err != nil {
			return false, err
		}
		replaced = true
	}

	st.Next(buf)
	return replaced, nil
}

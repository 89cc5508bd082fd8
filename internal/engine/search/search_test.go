package search

import (
	"testing"

	"github.com/fwj185/notepad/internal/engine/buffer"
)

func TestFindNext(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		query Query
		from  buffer.Offset
		want  buffer.Range
		found bool
	}{
		{"from start", "abcabc", NewQuery("abc", true, false), 0, buffer.NewRange(0, 3), true},
		{"after first", "abcabc", NewQuery("abc", true, false), 3, buffer.NewRange(3, 6), true},
		{"wraps", "abcabc", NewQuery("abc", true, false), 6, buffer.NewRange(0, 3), true},
		{"wraps from middle", "abc xyz", NewQuery("abc", true, false), 2, buffer.NewRange(0, 3), true},
		{"case sensitive miss", "Hello", NewQuery("hello", true, false), 0, buffer.Range{}, false},
		{"case insensitive", "say HeLLo", NewQuery("hello", false, false), 0, buffer.NewRange(4, 9), true},
		{"insensitive pattern case", "say hello", NewQuery("HELLO", false, false), 0, buffer.NewRange(4, 9), true},
		{"literal metacharacters", "a.b a*b", NewQuery("a*b", true, false), 0, buffer.NewRange(4, 7), true},
		{"unicode offsets", "日本語 日本", NewQuery("日本", true, false), 1, buffer.NewRange(4, 6), true},
		{"empty pattern", "abc", NewQuery("", true, false), 0, buffer.Range{}, false},
		{"pattern longer than text", "ab", NewQuery("abc", true, false), 0, buffer.Range{}, false},
		{"not found", "abc", NewQuery("xyz", false, false), 1, buffer.Range{}, false},
		{"from past end clamps", "abc", NewQuery("b", true, false), 10, buffer.NewRange(1, 2), true},
		{"overlapping candidates", "aaa", NewQuery("aa", true, false), 1, buffer.NewRange(1, 3), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := FindNext(tt.text, tt.query, tt.from)
			if found != tt.found || got != tt.want {
				t.Errorf("FindNext() = %s, %v; want %s, %v", got, found, tt.want, tt.found)
			}
		})
	}
}

func TestFindNextWholeWord(t *testing.T) {
	text := "cat category cat"
	q := NewQuery("cat", true, true)

	var starts []buffer.Offset
	from := 0
	for i := 0; i < 3; i++ {
		r, ok := FindNext(text, q, from)
		if !ok {
			t.Fatal("expected a match")
		}
		starts = append(starts, r.Start)
		from = r.End
	}

	want := []buffer.Offset{0, 13, 0}
	for i := range want {
		if starts[i] != want[i] {
			t.Errorf("match %d starts at %d, want %d", i, starts[i], want[i])
		}
	}
}

func TestWholeWordBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		query Query
		found bool
		start buffer.Offset
	}{
		{"punctuation", "(cat)", NewQuery("cat", true, true), true, 1},
		{"underscore is a word rune", "cat_x cat", NewQuery("cat", true, true), true, 6},
		{"digit is a word rune", "cat1", NewQuery("cat", true, true), false, 0},
		{"letters outside ascii", "écat cat", NewQuery("cat", true, true), true, 5},
		{"case insensitive", "a CAT b", NewQuery("cat", false, true), true, 2},
		{"only inside words", "concatenate", NewQuery("cat", false, true), false, 0},
		{"combining mark extends word", "cafe\u0301", NewQuery("cafe", true, true), false, 0},
		{"combining mark then match", "cafe\u0301 cafe", NewQuery("cafe", true, true), true, 6},
		{"decomposed pattern", "x cafe\u0301 y", NewQuery("cafe\u0301", true, true), true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, found := FindNext(tt.text, tt.query, 0)
			if found != tt.found {
				t.Fatalf("found = %v, want %v", found, tt.found)
			}
			if found && r.Start != tt.start {
				t.Errorf("start = %d, want %d", r.Start, tt.start)
			}
		})
	}
}

func TestFindPrevious(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		query Query
		from  buffer.Offset
		want  buffer.Range
		found bool
	}{
		{"before from", "abcabc", NewQuery("abc", true, false), 6, buffer.NewRange(3, 6), true},
		{"start must precede from", "abcabc", NewQuery("abc", true, false), 3, buffer.NewRange(0, 3), true},
		{"wraps to end", "abcabc", NewQuery("abc", true, false), 0, buffer.NewRange(3, 6), true},
		{"case insensitive", "ABC abc", NewQuery("abc", false, false), 4, buffer.NewRange(0, 3), true},
		{"whole word skips embedded", "cat category", NewQuery("cat", true, true), 12, buffer.NewRange(0, 3), true},
		{"whole word wraps", "x cat", NewQuery("cat", true, true), 1, buffer.NewRange(2, 5), true},
		{"empty pattern", "abc", NewQuery("", false, false), 3, buffer.Range{}, false},
		{"not found", "abc", NewQuery("d", false, false), 3, buffer.Range{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := FindPrevious(tt.text, tt.query, tt.from)
			if found != tt.found || got != tt.want {
				t.Errorf("FindPrevious() = %s, %v; want %s, %v", got, found, tt.want, tt.found)
			}
		})
	}
}

func TestFindAll(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		query Query
		want  []buffer.Range
	}{
		{"simple", "foo foo foo", NewQuery("foo", true, false),
			[]buffer.Range{{Start: 0, End: 3}, {Start: 4, End: 7}, {Start: 8, End: 11}}},
		{"non-overlapping", "aaaa", NewQuery("aa", true, false),
			[]buffer.Range{{Start: 0, End: 2}, {Start: 2, End: 4}}},
		{"odd overlap", "aaa", NewQuery("aa", true, false),
			[]buffer.Range{{Start: 0, End: 2}}},
		{"whole word", "cat category cat", NewQuery("cat", true, true),
			[]buffer.Range{{Start: 0, End: 3}, {Start: 13, End: 16}}},
		{"case insensitive", "Foo fOO", NewQuery("foo", false, false),
			[]buffer.Range{{Start: 0, End: 3}, {Start: 4, End: 7}}},
		{"empty pattern", "abc", NewQuery("", true, false), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindAll(tt.text, tt.query)
			if len(got) != len(tt.want) {
				t.Fatalf("FindAll() returned %d matches, want %d: %v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("match %d = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMatchesAt(t *testing.T) {
	text := "Foo category"

	if !MatchesAt(text, NewQuery("foo", false, false), buffer.NewRange(0, 3)) {
		t.Error("expected case-insensitive match at [0:3)")
	}
	if MatchesAt(text, NewQuery("foo", true, false), buffer.NewRange(0, 3)) {
		t.Error("case-sensitive query should not match")
	}
	if MatchesAt(text, NewQuery("cat", true, true), buffer.NewRange(4, 7)) {
		t.Error("whole-word query should not match inside a word")
	}
	if MatchesAt(text, NewQuery("Foo", true, false), buffer.NewRange(0, 4)) {
		t.Error("range length must equal the pattern length")
	}
	if MatchesAt(text, NewQuery("ry", true, false), buffer.NewRange(11, 13)) {
		t.Error("range past the end should not match")
	}
}

func TestStateNextSelects(t *testing.T) {
	buf := buffer.NewBufferFromString("abcabc")
	st := NewState()
	st.Set(NewQuery("abc", true, false))

	want := []buffer.Range{{Start: 0, End: 3}, {Start: 3, End: 6}, {Start: 0, End: 3}}
	for i, w := range want {
		r, ok := st.Next(buf)
		if !ok || r != w {
			t.Fatalf("call %d: Next() = %s, %v; want %s", i, r, ok, w)
		}
		sel, ok := buf.Selection()
		if !ok || sel != w {
			t.Errorf("call %d: selection = %s, want %s", i, sel, w)
		}
		start, ok := st.LastMatchStart()
		if !ok || start != w.Start {
			t.Errorf("call %d: LastMatchStart() = %d, want %d", i, start, w.Start)
		}
	}
}

func TestStatePreviousWalksBack(t *testing.T) {
	buf := buffer.NewBufferFromString("ab ab ab")
	buf.SetCaret(buf.Len())
	st := NewState()
	st.Set(NewQuery("ab", true, false))

	want := []buffer.Offset{6, 3, 0, 6}
	for i, w := range want {
		r, ok := st.Previous(buf)
		if !ok || r.Start != w {
			t.Fatalf("call %d: Previous() = %s, %v; want start %d", i, r, ok, w)
		}
	}
}

func TestStateSetResetsLastMatch(t *testing.T) {
	buf := buffer.NewBufferFromString("abc")
	st := NewState()
	st.Set(NewQuery("b", true, false))
	st.Next(buf)

	if _, ok := st.LastMatchStart(); !ok {
		t.Fatal("expected a last match")
	}

	st.Set(NewQuery("c", true, false))
	if _, ok := st.LastMatchStart(); ok {
		t.Error("Set should clear the last match")
	}
	if st.Query().Pattern != "c" {
		t.Errorf("expected pattern %q, got %q", "c", st.Query().Pattern)
	}
}

func TestStateNotFoundKeepsSelection(t *testing.T) {
	buf := buffer.NewBufferFromString("abc")
	_ = buf.Select(buffer.NewRange(0, 1))
	st := NewState()
	st.Set(NewQuery("zzz", true, false))

	if _, ok := st.Next(buf); ok {
		t.Fatal("expected no match")
	}
	if sel, ok := buf.Selection(); !ok || sel != buffer.NewRange(0, 1) {
		t.Errorf("selection changed on miss: %s, %v", sel, ok)
	}
}

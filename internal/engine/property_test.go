package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func genText() *rapid.Generator[string] {
	return rapid.StringOf(rapid.SampledFrom([]rune("ab xyé_\n")))
}

func TestPropertyDeleteUndoRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := genText().Draw(t, "text")
		d := New(WithContent(text))

		n := d.Len()
		start := rapid.IntRange(0, n).Draw(t, "start")
		end := rapid.IntRange(start, n).Draw(t, "end")

		require.NoError(t, d.Delete(Range{Start: start, End: end}))
		d.Undo()
		require.Equal(t, text, d.Text())
		require.False(t, d.IsDirty())
	})
}

// Any sequence of edits followed by undoing all of them restores the
// original text, and redoing all of them restores the final text.
func TestPropertyUndoRedoConsistency(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		initial := genText().Draw(t, "initial")
		d := New(WithContent(initial))

		states := []string{initial}
		steps := rapid.IntRange(1, 20).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			n := d.Len()
			start := rapid.IntRange(0, n).Draw(t, "start")
			end := rapid.IntRange(start, n).Draw(t, "end")
			ins := genText().Draw(t, "insert")

			_, err := d.Replace(Range{Start: start, End: end}, ins)
			require.NoError(t, err)
			if d.Text() != states[len(states)-1] {
				states = append(states, d.Text())
			}
		}

		require.Equal(t, len(states)-1, d.UndoCount())
		for i := len(states) - 2; i >= 0; i-- {
			require.True(t, d.Undo())
			require.Equal(t, states[i], d.Text())
		}
		require.False(t, d.Undo())
		require.False(t, d.IsDirty())

		for i := 1; i < len(states); i++ {
			require.True(t, d.Redo())
			require.Equal(t, states[i], d.Text())
		}
		require.False(t, d.CanRedo())
	})
}

// ReplaceAll reports exactly the number of non-overlapping matches.
func TestPropertyReplaceAllCount(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringOf(rapid.SampledFrom([]rune("aAbB éÉ_"))).Draw(t, "text")
		pattern := rapid.StringOfN(rapid.SampledFrom([]rune("aAbéÉ")), 1, 3, -1).Draw(t, "pattern")
		matchCase := rapid.Bool().Draw(t, "matchCase")

		want := strings.Count(text, pattern)
		if !matchCase {
			want = strings.Count(strings.ToLower(text), strings.ToLower(pattern))
		}

		d := New(WithContent(text))
		n, err := d.ReplaceAll(pattern, "", matchCase, false)
		require.NoError(t, err)
		require.Equal(t, want, n)
		if want == 0 {
			require.Equal(t, text, d.Text())
		}
	})
}

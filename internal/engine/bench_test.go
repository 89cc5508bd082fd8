package engine

import (
	"strings"
	"testing"
)

func BenchmarkInsert(b *testing.B) {
	d := New(WithContent(strings.Repeat("lorem ipsum ", 1000)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d.Insert(d.Len()/2, "x")
	}
}

func BenchmarkUndoRedo(b *testing.B) {
	d := New(WithContent(strings.Repeat("lorem ipsum ", 1000)))
	for i := 0; i < 50; i++ {
		_, _ = d.Insert(d.Len(), "x")
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Undo()
		d.Redo()
	}
}

func BenchmarkFindNext(b *testing.B) {
	d := New(WithContent(strings.Repeat("lorem ipsum dolor ", 1000)))
	d.SetSearchParams("Dolor", false, true)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.FindNext()
	}
}

func BenchmarkReplaceAll(b *testing.B) {
	text := strings.Repeat("lorem ipsum dolor ", 1000)
	d := New(WithContent(text))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Load(text)
		_, _ = d.ReplaceAll("ipsum", "IPSUM", true, false)
	}
}

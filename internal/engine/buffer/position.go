package buffer

import "fmt"

// Point represents a line and column position.
// Both Line and Column are 0-indexed and Column counts runes.
type Point struct {
	Line   int
	Column int
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// LineCount returns the number of lines. An empty buffer has one line.
func (b *Buffer) LineCount() int {
	n := 1
	for _, r := range b.text {
		if r == '\n' {
			n++
		}
	}
	return n
}

// LineStartOffset returns the offset of the first rune of the 0-indexed line.
func (b *Buffer) LineStartOffset(line int) (Offset, bool) {
	if line < 0 {
		return 0, false
	}
	if line == 0 {
		return 0, true
	}
	seen := 0
	for i, r := range b.text {
		if r != '\n' {
			continue
		}
		seen++
		if seen == line {
			return i + 1, true
		}
	}
	return 0, false
}

// OffsetToPoint converts an offset to a line/column position.
// The offset is clamped to the buffer.
func (b *Buffer) OffsetToPoint(offset Offset) Point {
	offset = max(0, min(offset, len(b.text)))
	var p Point
	for _, r := range b.text[:offset] {
		if r == '\n' {
			p.Line++
			p.Column = 0
		} else {
			p.Column++
		}
	}
	return p
}

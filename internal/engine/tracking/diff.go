package tracking

import (
	"fmt"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/fwj185/notepad/internal/engine/buffer"
)

// ChangeType categorizes the type of a change.
type ChangeType uint8

const (
	// ChangeInsert indicates text was inserted (OldText is empty).
	ChangeInsert ChangeType = iota
	// ChangeDelete indicates text was deleted (NewText is empty).
	ChangeDelete
	// ChangeReplace indicates text was replaced.
	ChangeReplace
)

// String returns the string representation of the change type.
func (ct ChangeType) String() string {
	switch ct {
	case ChangeInsert:
		return "insert"
	case ChangeDelete:
		return "delete"
	case ChangeReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Change is one contiguous difference between two texts.
type Change struct {
	Type ChangeType

	// Range covers OldText in the older text.
	Range buffer.Range

	OldText string
	NewText string
}

// String returns a human-readable representation of the change.
func (c Change) String() string {
	return fmt.Sprintf("%s%s %q -> %q", c.Type, c.Range, c.OldText, c.NewText)
}

// Diff computes the changes that turn before into after.
// A deletion directly followed by an insertion is reported as one replace.
func Diff(before, after string) []Change {
	if before == after {
		return nil
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(before, after, false))

	var (
		changes []Change
		pending *Change
		pos     buffer.Offset
	)

	flush := func() {
		if pending == nil {
			return
		}
		switch {
		case pending.OldText == "":
			pending.Type = ChangeInsert
		case pending.NewText == "":
			pending.Type = ChangeDelete
		default:
			pending.Type = ChangeReplace
		}
		changes = append(changes, *pending)
		pending = nil
	}

	for _, d := range diffs {
		n := utf8.RuneCountInString(d.Text)
		if d.Type == diffmatchpatch.DiffEqual {
			flush()
			pos += n
			continue
		}

		if pending == nil {
			pending = &Change{Range: buffer.Range{Start: pos, End: pos}}
		}
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			pending.OldText += d.Text
			pending.Range.End += n
			pos += n
		case diffmatchpatch.DiffInsert:
			pending.NewText += d.Text
		}
	}
	flush()

	return changes
}

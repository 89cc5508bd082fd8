// Package tracking reports how a document changed between two snapshots.
//
// It is used to answer "what changed since the last save?" without keeping
// per-edit deltas: the clean snapshot and the current text are diffed on
// demand.
//
//	changes := tracking.Diff("hello world", "hello there world")
//	// [{Type: insert, Range: [6:6), NewText: "there "}]
//
// Ranges are rune offsets into the older text.
package tracking

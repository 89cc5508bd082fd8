// Package search finds literal patterns in document text.
//
// A Query pairs a pattern with two options:
//
//   - MatchCase: when false, text and pattern are compared rune by rune after
//     lower-casing each rune, so offsets are never shifted by folding.
//   - WholeWord: the runes on both sides of a match must be non-word runes
//     (anything but a letter, digit or '_') or a text boundary.
//
// Patterns are always literal; there are no metacharacters. An empty pattern
// never matches.
//
// FindNext and FindPrevious scan from an offset and wrap around the end of
// the text, so a match anywhere in the document is always found. FindAll
// returns non-overlapping matches from left to right, the set ReplaceAll
// operates on.
//
// State carries the active query between consecutive "find next" calls and
// applies matches to a buffer as selections.
package search

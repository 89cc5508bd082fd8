// Package config loads notepad settings.
//
// Settings come from three places, later ones overriding earlier ones:
//
//  1. Built-in defaults (Default)
//  2. A TOML file (Load, LoadFromReader)
//  3. NOTEPAD_* environment variables (ApplyEnv)
//
// # Configuration File
//
//	[editor]
//	history_limit = 100
//	time_format = "2006/01/02 15:04:05"
//	word_wrap = true
//
//	[font]
//	family = "Microsoft YaHei"
//	size = 14
//
//	[zoom]
//	min = 8
//	max = 72
//	step = 2
//	default = 14
//
//	[session]
//	max_recent = 10
//	untitled_prefix = "Untitled"
//
//	[logging]
//	level = "info"
//
// Keys missing from the file keep their default values. A missing file is
// not an error.
//
// # Error Handling
//
//   - ParseError: the file is not valid TOML or has mistyped values
//   - ErrValidationFailed: a value is out of range (wrapped by Validate)
package config

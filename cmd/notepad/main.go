// Package main is the entry point for the notepad command line tool.
//
// notepad opens a file in an editing session, optionally runs a search or a
// replace-all over it, and writes the resulting text.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/fwj185/notepad/internal/app"
	"github.com/fwj185/notepad/internal/clipboard"
	"github.com/fwj185/notepad/internal/config"
	"github.com/fwj185/notepad/internal/engine"
	"github.com/fwj185/notepad/internal/logging"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var (
	// errHelp signals that usage was printed on request.
	errHelp = errors.New("help requested")

	// errNotUTF8 rejects files that would not survive a round trip.
	errNotUTF8 = errors.New("file is not valid UTF-8")
)

type options struct {
	ConfigPath  string
	LogLevel    string
	Find        string
	Replace     string
	HasReplace  bool
	MatchCase   bool
	WholeWord   bool
	Output      string
	Line        int
	ShowVersion bool
	File        string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, errHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if opts.ShowVersion {
		fmt.Fprintf(stdout, "notepad %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.Logging.Level)
	logCfg.Output = stderr
	logger := logging.New(logCfg)

	if err := edit(opts, cfg, logger, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("notepad", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config")
	fs.StringVar(&opts.Find, "find", "", "Text to search for")
	fs.StringVar(&opts.Replace, "replace", "", "Replace every match of -find with this text")
	fs.BoolVar(&opts.MatchCase, "match-case", false, "Match case when searching")
	fs.BoolVar(&opts.WholeWord, "whole-word", false, "Match whole words only")
	fs.StringVar(&opts.Output, "o", "", "Write the result to this file instead of stdout")
	fs.IntVar(&opts.Line, "line", 0, "Go to this 1-based line and report the caret position")
	fs.BoolVar(&opts.ShowVersion, "version", false, "Show version information")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "notepad - plain text editing from the command line\n\n")
		fmt.Fprintf(stderr, "Usage: notepad [options] <file>\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  notepad -find TODO notes.txt                  Count matches\n")
		fmt.Fprintf(stderr, "  notepad -find foo -replace bar -o out.txt in.txt  Replace all\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, errHelp
		}
		return opts, err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "replace" {
			opts.HasReplace = true
		}
	})

	if opts.ShowVersion {
		return opts, nil
	}

	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return opts, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", opts.LogLevel)
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return opts, fmt.Errorf("expected exactly one file, got %d", fs.NArg())
	}
	opts.File = fs.Arg(0)

	if opts.HasReplace && opts.Find == "" {
		return opts, errors.New("-replace requires -find")
	}

	return opts, nil
}

// loadConfig applies the file, the environment and then the flags.
func loadConfig(opts options) (*config.Config, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		var err error
		if cfg, err = config.Load(opts.ConfigPath); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func edit(opts options, cfg *config.Config, logger *logging.Logger, stdout, stderr io.Writer) error {
	data, err := os.ReadFile(opts.File)
	if err != nil {
		return err
	}
	if !utf8.Valid(data) {
		return fmt.Errorf("%s: %w", opts.File, errNotUTF8)
	}

	session := app.NewSession(cfg, app.WithLogger(logger), app.WithClipboard(clipboard.Open()))
	tab := session.Open(opts.File, string(data))
	doc := tab.Doc

	if opts.Line > 0 {
		if err := doc.GoToLine(opts.Line); err != nil {
			return err
		}
		pos := doc.Position()
		fmt.Fprintf(stderr, "line %d, column %d of %d lines\n", pos.Line, pos.Column, doc.LineCount())
	}

	if opts.Find != "" {
		if opts.HasReplace {
			n, err := doc.ReplaceAll(opts.Find, opts.Replace, opts.MatchCase, opts.WholeWord)
			if err != nil {
				return err
			}
			fmt.Fprintf(stderr, "replaced %d occurrence(s)\n", n)
		} else {
			n := countMatches(doc, opts.Find, opts.MatchCase, opts.WholeWord)
			fmt.Fprintf(stderr, "found %d match(es)\n", n)
		}
	}

	if opts.Output == "" {
		_, err := io.WriteString(stdout, doc.Text())
		return err
	}

	if err := os.WriteFile(opts.Output, []byte(doc.Text()), 0644); err != nil {
		return err
	}
	return session.Saved(tab.ID, opts.Output)
}

// countMatches walks FindNext from the start of the text until it wraps
// back to the first match.
func countMatches(doc *engine.Document, pattern string, matchCase, wholeWord bool) int {
	doc.SetSearchParams(pattern, matchCase, wholeWord)
	doc.SetCaret(0)

	first, ok := doc.FindNext()
	if !ok {
		return 0
	}

	n := 1
	for n <= doc.Len() {
		r, _ := doc.FindNext()
		if r.Start == first.Start {
			break
		}
		n++
	}
	return n
}

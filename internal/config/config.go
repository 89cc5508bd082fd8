package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix of environment variables read by ApplyEnv.
const EnvPrefix = "NOTEPAD_"

// Config is the complete notepad configuration.
type Config struct {
	Editor  EditorConfig  `toml:"editor"`
	Font    FontConfig    `toml:"font"`
	Zoom    ZoomConfig    `toml:"zoom"`
	Session SessionConfig `toml:"session"`
	Logging LoggingConfig `toml:"logging"`
}

// EditorConfig holds document editing settings.
type EditorConfig struct {
	// HistoryLimit is the maximum number of undo snapshots per document.
	HistoryLimit int `toml:"history_limit"`

	// TimeFormat is the Go time layout used by Insert Time/Date.
	TimeFormat string `toml:"time_format"`

	// WordWrap is the initial word wrap state of new documents.
	WordWrap bool `toml:"word_wrap"`
}

// FontConfig holds the initial font of new documents.
type FontConfig struct {
	Family string  `toml:"family"`
	Size   float64 `toml:"size"`
	Bold   bool    `toml:"bold"`
	Italic bool    `toml:"italic"`
}

// ZoomConfig bounds font size changes.
type ZoomConfig struct {
	Min     float64 `toml:"min"`
	Max     float64 `toml:"max"`
	Step    float64 `toml:"step"`
	Default float64 `toml:"default"`
}

// SessionConfig holds settings for the set of open documents.
type SessionConfig struct {
	// MaxRecent caps the recent files list.
	MaxRecent int `toml:"max_recent"`

	// UntitledPrefix names new documents, as in "Untitled 1".
	UntitledPrefix string `toml:"untitled_prefix"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn" or "error".
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			HistoryLimit: 100,
			TimeFormat:   "2006/01/02 15:04:05",
			WordWrap:     true,
		},
		Font: FontConfig{
			Family: "Microsoft YaHei",
			Size:   14,
		},
		Zoom: ZoomConfig{
			Min:     8,
			Max:     72,
			Step:    2,
			Default: 14,
		},
		Session: SessionConfig{
			MaxRecent:      10,
			UntitledPrefix: "Untitled",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the TOML file at path over the defaults.
// A missing file yields the defaults without error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return parse(path, data)
}

// LoadFromReader reads TOML from r over the defaults.
func LoadFromReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return parse("<reader>", data)
}

// parse decodes data over the defaults, so absent keys keep default values.
func parse(source string, data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg); err != nil {
		perr := &ParseError{
			Path:    source,
			Message: err.Error(),
			Err:     err,
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return nil, perr
	}
	return cfg, nil
}

// Marshal encodes the configuration as TOML.
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// envSetting applies one environment variable to a config.
type envSetting func(c *Config, value string) error

// envMapping maps environment variables to settings.
var envMapping = map[string]envSetting{
	EnvPrefix + "HISTORY_LIMIT": func(c *Config, v string) error {
		return setInt(&c.Editor.HistoryLimit, v)
	},
	EnvPrefix + "TIME_FORMAT": func(c *Config, v string) error {
		c.Editor.TimeFormat = v
		return nil
	},
	EnvPrefix + "WORD_WRAP": func(c *Config, v string) error {
		return setBool(&c.Editor.WordWrap, v)
	},
	EnvPrefix + "FONT_FAMILY": func(c *Config, v string) error {
		c.Font.Family = v
		return nil
	},
	EnvPrefix + "FONT_SIZE": func(c *Config, v string) error {
		return setFloat(&c.Font.Size, v)
	},
	EnvPrefix + "MAX_RECENT": func(c *Config, v string) error {
		return setInt(&c.Session.MaxRecent, v)
	},
	EnvPrefix + "UNTITLED_PREFIX": func(c *Config, v string) error {
		c.Session.UntitledPrefix = v
		return nil
	},
	EnvPrefix + "LOG_LEVEL": func(c *Config, v string) error {
		c.Logging.Level = v
		return nil
	},
}

// ApplyEnv overrides settings from NOTEPAD_* environment variables.
// Empty values are treated as valid values, not as unset.
func (c *Config) ApplyEnv() error {
	return c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	var errs []error
	for name, set := range envMapping {
		val, ok := lookup(name)
		if !ok {
			continue
		}
		if err := set(c, val); err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: %w", name, val, err))
		}
	}
	return errors.Join(errs...)
}

func setInt(dst *int, s string) error {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return ErrInvalidEnv
	}
	*dst = i
	return nil
}

func setFloat(dst *float64, s string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return ErrInvalidEnv
	}
	*dst = f
	return nil
}

func setBool(dst *bool, s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		*dst = true
	case "false", "no", "off", "0":
		*dst = false
	default:
		return ErrInvalidEnv
	}
	return nil
}

// layoutProbe differs from the reference time in every field, so a layout
// with at least one time field never formats to itself.
var layoutProbe = time.Date(2001, time.February, 3, 4, 5, 6, 0, time.UTC)

// Validate checks every setting and returns all failures joined.
// Each failure matches ErrValidationFailed.
func (c *Config) Validate() error {
	var errs []error
	fail := func(path, msg string, v any) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: v})
	}

	if c.Editor.HistoryLimit < 1 {
		fail("editor.history_limit", "must be at least 1", c.Editor.HistoryLimit)
	}
	if c.Editor.TimeFormat == "" {
		fail("editor.time_format", "must not be empty", c.Editor.TimeFormat)
	} else if layoutProbe.Format(c.Editor.TimeFormat) == c.Editor.TimeFormat {
		fail("editor.time_format", "contains no time fields", c.Editor.TimeFormat)
	}

	if c.Font.Family == "" {
		fail("font.family", "must not be empty", c.Font.Family)
	}
	if c.Font.Size < c.Zoom.Min || c.Font.Size > c.Zoom.Max {
		fail("font.size", fmt.Sprintf("must be within [%g, %g]", c.Zoom.Min, c.Zoom.Max), c.Font.Size)
	}

	if c.Zoom.Min <= 0 {
		fail("zoom.min", "must be positive", c.Zoom.Min)
	}
	if c.Zoom.Max < c.Zoom.Min {
		fail("zoom.max", "must not be below zoom.min", c.Zoom.Max)
	}
	if c.Zoom.Step <= 0 {
		fail("zoom.step", "must be positive", c.Zoom.Step)
	}
	if c.Zoom.Default < c.Zoom.Min || c.Zoom.Default > c.Zoom.Max {
		fail("zoom.default", fmt.Sprintf("must be within [%g, %g]", c.Zoom.Min, c.Zoom.Max), c.Zoom.Default)
	}

	if c.Session.MaxRecent < 0 {
		fail("session.max_recent", "must not be negative", c.Session.MaxRecent)
	}
	if strings.TrimSpace(c.Session.UntitledPrefix) == "" {
		fail("session.untitled_prefix", "must not be blank", c.Session.UntitledPrefix)
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		fail("logging.level", "must be debug, info, warn or error", c.Logging.Level)
	}

	return errors.Join(errs...)
}

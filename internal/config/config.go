// Package config loads CLI settings from defaults, an optional config file,
// SONGBIRD_* environment variables and flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Display DisplayConfig `mapstructure:"display"`
	Data    DataConfig    `mapstructure:"data"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type DisplayConfig struct {
	// PreviewLimit caps the values printed per tensor; 0 prints all.
	PreviewLimit int  `mapstructure:"preview_limit"`
	Nested       bool `mapstructure:"nested"`
}

type DataConfig struct {
	Delimiter  string  `mapstructure:"delimiter"`
	Comment    string  `mapstructure:"comment"`
	Target     string  `mapstructure:"target"`
	TrainRatio float64 `mapstructure:"train_ratio"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

// binding ties a config key to the flag that overrides it.
type binding struct {
	key  string
	flag string
}

var bindings = []binding{
	{"log.level", "log-level"},
	{"log.format", "log-format"},
	{"display.preview_limit", "preview-limit"},
	{"display.nested", "nested"},
	{"data.delimiter", "delimiter"},
	{"data.comment", "comment"},
	{"data.target", "target"},
	{"data.train_ratio", "train-ratio"},
}

func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: LogFormatText,
		},
		Display: DisplayConfig{
			PreviewLimit: 32,
			Nested:       false,
		},
		Data: DataConfig{
			Delimiter:  ",",
			Comment:    "",
			Target:     "output",
			TrainRatio: 0.8,
		},
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("log-level", defaults.Log.Level, "Log level (debug|info|warn|error)")
	fs.String("log-format", defaults.Log.Format, "Log format (text|json)")
	fs.Int("preview-limit", defaults.Display.PreviewLimit, "Values printed per tensor (0 = all)")
	fs.Bool("nested", defaults.Display.Nested, "Print tensors with one bracket level per axis")
	fs.String("delimiter", defaults.Data.Delimiter, "Field delimiter for delimited text input")
	fs.String("comment", defaults.Data.Comment, "Comment character for delimited text input (empty disables)")
	fs.String("target", defaults.Data.Target, "Target column for train/test splits")
	fs.Float64("train-ratio", defaults.Data.TrainRatio, "Fraction of rows in the train set, in (0, 1)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix("SONGBIRD")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("songbird")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("log.level", c.Log.Level)
	v.SetDefault("log.format", c.Log.Format)
	v.SetDefault("display.preview_limit", c.Display.PreviewLimit)
	v.SetDefault("display.nested", c.Display.Nested)
	v.SetDefault("data.delimiter", c.Data.Delimiter)
	v.SetDefault("data.comment", c.Data.Comment)
	v.SetDefault("data.target", c.Data.Target)
	v.SetDefault("data.train_ratio", c.Data.TrainRatio)
}

// bindFlags binds each registered flag to its nested key. Flags only win
// over file and env values when set on the command line.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, b := range bindings {
		f := fs.Lookup(b.flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(b.key, f); err != nil {
			return fmt.Errorf("bind flag --%s: %w", b.flag, err)
		}
	}
	return nil
}

// Validate rejects settings the commands cannot run with.
func (c Config) Validate() error {
	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("invalid log format %q (want %s|%s)", c.Log.Format, LogFormatText, LogFormatJSON)
	}
	if c.Display.PreviewLimit < 0 {
		return fmt.Errorf("preview limit must be >= 0, got %d", c.Display.PreviewLimit)
	}
	if !(c.Data.TrainRatio > 0 && c.Data.TrainRatio < 1) {
		return fmt.Errorf("train ratio must be in (0, 1), got %v", c.Data.TrainRatio)
	}
	if strings.TrimSpace(c.Data.Target) == "" {
		return errors.New("target column must not be empty")
	}

	delim, err := c.Data.DelimiterRune()
	if err != nil {
		return err
	}
	comment, err := c.Data.CommentRune()
	if err != nil {
		return err
	}
	if comment != 0 && comment == delim {
		return fmt.Errorf("comment character %q must differ from the delimiter", c.Data.Comment)
	}
	return nil
}

// DelimiterRune returns the single-character delimiter. "\t" is accepted as
// an escape for tab.
func (d DataConfig) DelimiterRune() (rune, error) {
	s := d.Delimiter
	if s == `\t` {
		s = "\t"
	}
	r, ok := singleRune(s)
	if !ok || r == '"' || r == '\r' || r == '\n' {
		return 0, fmt.Errorf("invalid delimiter %q (want one character other than quote or newline)", d.Delimiter)
	}
	return r, nil
}

// CommentRune returns the comment character, or 0 when comments are disabled.
func (d DataConfig) CommentRune() (rune, error) {
	if d.Comment == "" {
		return 0, nil
	}
	r, ok := singleRune(d.Comment)
	if !ok || r == '"' || r == '\r' || r == '\n' {
		return 0, fmt.Errorf("invalid comment character %q", d.Comment)
	}
	return r, nil
}

func singleRune(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, false
	}
	return r, true
}

// ParseLogLevel maps a level name to a slog.Level. An empty name means info.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
	}
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lambdv/songbird/internal/config"
	"github.com/lambdv/songbird/internal/frame"
	"github.com/lambdv/songbird/tensor"
)

const version = "v0.1.0"

var (
	cfgFile   string
	activeCfg config.Config
	loaded    bool
)

func NewRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:           "songbird",
		Short:         "Inspect tabular data as tensors and write train/test splits",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(config.LoadOptions{
				Cmd:        cmd,
				ConfigFile: cfgFile,
				Defaults:   defaults,
			})
			if err != nil {
				return err
			}
			activeCfg = cfg
			loaded = true
			setupLogger(cmd.ErrOrStderr(), cfg.Log)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Optional config file (yaml|toml|json)")
	config.RegisterFlags(cmd.PersistentFlags(), defaults)

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newInspectCmd())
	cmd.AddCommand(newSplitCmd())
	cmd.AddCommand(newShowCmd())

	return cmd
}

// setupLogger configures the process-wide slog default logger.
func setupLogger(w io.Writer, lc config.LogConfig) {
	lvl, err := config.ParseLogLevel(lc.Level)
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	if strings.EqualFold(lc.Format, config.LogFormatJSON) {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(h))
}

func requireConfig() (config.Config, error) {
	if !loaded {
		return config.Config{}, fmt.Errorf("configuration not loaded")
	}
	return activeCfg, nil
}

func frameOptions(cfg config.Config) (frame.Options, error) {
	delim, err := cfg.Data.DelimiterRune()
	if err != nil {
		return frame.Options{}, err
	}
	comment, err := cfg.Data.CommentRune()
	if err != nil {
		return frame.Options{}, err
	}
	return frame.Options{Delimiter: delim, Comment: comment}, nil
}

// render formats t according to the display settings.
func render(t *tensor.Tensor, d config.DisplayConfig) string {
	if d.Nested {
		return t.Nested()
	}
	return t.Preview(d.PreviewLimit)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "songbird %s\n", version)
			return err
		},
	}
}

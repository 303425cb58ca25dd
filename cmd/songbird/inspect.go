package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lambdv/songbird/internal/frame"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.csv>",
		Short: "Load delimited text and summarize it as a tensor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}
			opts, err := frameOptions(cfg)
			if err != nil {
				return err
			}

			path := args[0]
			f, err := frame.LoadFile(path, opts)
			if err != nil {
				return err
			}
			slog.Debug("frame loaded", "path", path, "rows", f.Len(), "columns", len(f.Header()))

			x, err := f.Tensor()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			header := f.Header()
			fmt.Fprintf(out, "file:    %s\n", path)
			fmt.Fprintf(out, "rows:    %d\n", f.Len())
			fmt.Fprintf(out, "columns: %s\n", strings.Join(header, ", "))
			fmt.Fprintf(out, "shape:   %v\n", x.Shape())

			if f.Len() > 0 {
				means, err := x.MeanAxis(0, false)
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "column\tmean")
				for i, name := range header {
					m, err := means.Get(i)
					if err != nil {
						return err
					}
					fmt.Fprintf(tw, "%s\t%s\n", name, strconv.FormatFloat(m, 'g', 6, 64))
				}
				if err := tw.Flush(); err != nil {
					return err
				}
			}

			_, err = fmt.Fprintln(out, render(x, cfg.Display))
			return err
		},
	}
}

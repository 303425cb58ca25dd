package main

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/lambdv/songbird/internal/serialization"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <file.safetensors>",
		Short: "List the tensors stored in a SafeTensors file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			f, err := serialization.LoadFile(args[0])
			if err != nil {
				return err
			}
			slog.Debug("safetensors loaded", "path", args[0], "tensors", len(f.Tensors))

			out := cmd.OutOrStdout()
			for _, k := range slices.Sorted(maps.Keys(f.Metadata)) {
				fmt.Fprintf(out, "# %s: %s\n", k, f.Metadata[k])
			}
			for _, name := range f.Names() {
				t := f.Tensors[name]
				fmt.Fprintf(out, "%s %v\n", name, t.Shape())
				if _, err := fmt.Fprintf(out, "  %s\n", render(t, cfg.Display)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

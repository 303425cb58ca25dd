package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lambdv/songbird/internal/frame"
	"github.com/lambdv/songbird/internal/serialization"
	"github.com/lambdv/songbird/internal/tensor"
)

func newSplitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "split <file.csv> <out.safetensors>",
		Short: "Split delimited text into train/test tensors and save them",
		Long: "Split rows into a train and a test set on the configured target column " +
			"and write x_train, y_train, x_test and y_test to a SafeTensors file.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}
			opts, err := frameOptions(cfg)
			if err != nil {
				return err
			}

			src, dst := args[0], args[1]
			f, err := frame.LoadFile(src, opts)
			if err != nil {
				return err
			}

			s, err := f.Split(cfg.Data.TrainRatio, cfg.Data.Target)
			if err != nil {
				return err
			}
			xTrain, yTrain, err := s.Train.Tensors()
			if err != nil {
				return fmt.Errorf("train set: %w", err)
			}
			xTest, yTest, err := s.Test.Tensors()
			if err != nil {
				return fmt.Errorf("test set: %w", err)
			}

			tensors := map[string]*tensor.Tensor{
				"x_train": xTrain,
				"y_train": yTrain,
				"x_test":  xTest,
				"y_test":  yTest,
			}
			metadata := map[string]string{
				"source":      filepath.Base(src),
				"target":      cfg.Data.Target,
				"train_ratio": strconv.FormatFloat(cfg.Data.TrainRatio, 'g', -1, 64),
			}
			if err := serialization.SaveFile(dst, tensors, metadata); err != nil {
				return err
			}
			slog.Info("split written", "path", dst, "train_rows", s.Train.Len(), "test_rows", s.Test.Len())

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "train: x%v y%v\n", xTrain.Shape(), yTrain.Shape())
			fmt.Fprintf(out, "test:  x%v y%v\n", xTest.Shape(), yTest.Shape())
			_, err = fmt.Fprintf(out, "wrote %s\n", dst)
			return err
		},
	}
}

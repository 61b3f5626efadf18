// Copyright 2025 The giagrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package main provides the giagrad CLI: version info, a gradient self
// test, and Graphviz export of a recorded computation graph.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Ivisayanel/giagrad/autodiff"
	"github.com/Ivisayanel/giagrad/backend/cpu"
	"github.com/Ivisayanel/giagrad/tensor"
)

const version = "v0.1.0-dev"

type adBackend = *autodiff.Backend[*cpu.Backend]

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	root := &cobra.Command{
		Use:   "giagrad",
		Short: "giagrad - a tensor library with reverse-mode automatic differentiation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(newVersionCmd())
	root.AddCommand(newSelftestCmd(logger))
	root.AddCommand(newGraphCmd(logger))

	if err := root.Execute(); err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("giagrad %s\n", version)
		},
	}
}

// buildDemo records loss = sum(min(a) * c) on the given backend and returns
// the input tensors and the loss.
func buildDemo(ad adBackend) (a, c, loss *tensor.Tensor[float32, adBackend]) {
	a, err := tensor.FromSlice([]float32{3, 1, 4, 1, 5, 9}, tensor.Shape{2, 3}, ad)
	if err != nil {
		panic(err)
	}
	a.Named("a").RequireGrad()

	c, err = tensor.FromSlice([]float32{2, 7, 1, 8, 2, 8}, tensor.Shape{2, 3}, ad)
	if err != nil {
		panic(err)
	}
	c.Named("c").RequireGrad()

	loss = a.Min().Mul(c).Sum().Named("loss")
	return a, c, loss
}

func newSelftestCmd(logger zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run a small end-to-end gradient computation and print the results",
		RunE: func(cmd *cobra.Command, args []string) error {
			ad := autodiff.New(cpu.New())
			ad.Tape().StartRecording()

			a, c, loss := buildDemo(ad)

			grads := autodiff.Backward(loss, ad)
			autodiff.Attach(grads, ad, a, c)

			logger.Info().
				Int("ops", ad.Tape().NumOps()).
				Float32("loss", loss.Item()).
				Msg("backward pass complete")

			fmt.Printf("loss = %v\n", loss.Item())
			fmt.Printf("a.grad = %v\n", a.Grad().Data())
			fmt.Printf("c.grad = %v\n", c.Grad().Data())
			return nil
		},
	}
}

func newGraphCmd(logger zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Print the recorded computation graph in Graphviz DOT format",
		RunE: func(cmd *cobra.Command, args []string) error {
			ad := autodiff.New(cpu.New())
			ad.Tape().StartRecording()

			_, _, loss := buildDemo(ad)

			logger.Info().
				Int("ops", ad.Tape().NumOps()).
				Str("output", loss.Name()).
				Msg("graph recorded")

			fmt.Print(ad.Tape().DOT())
			return nil
		},
	}
}

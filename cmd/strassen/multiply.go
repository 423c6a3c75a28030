// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvstrassen/matrix"
	"github.com/katalvlaran/lvstrassen/matrixio"
	"github.com/katalvlaran/lvstrassen/strassen"
)

func newMultiplyCmd(a *app) *cobra.Command {
	var (
		threshold     int
		parallelDepth int
		printAll      bool
	)

	cmd := &cobra.Command{
		Use:   "multiply A.txt B.txt",
		Short: "Multiply two matrices and print the sum of the product's entries",
		Long: `multiply reads two square matrices and prints the sum of all entries of A·B.
A path of "-" reads that operand from standard input. With --print the
operands and the product are also written as tab-separated tables.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("threshold") {
				a.cfg.Threshold = threshold
			}
			if cmd.Flags().Changed("parallel-depth") {
				a.cfg.ParallelDepth = parallelDepth
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			ma, err := readOperand(cmd, args[0])
			if err != nil {
				return err
			}
			mb, err := readOperand(cmd, args[1])
			if err != nil {
				return err
			}
			a.logger.Debug("operands loaded",
				zap.String("a", args[0]), zap.String("b", args[1]), zap.Int("size", ma.Size()))

			opts := append(a.cfg.Options(), strassen.WithLogger(a.logger))
			mc, err := strassen.MultiplyContext(cmd.Context(), ma, mb, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if printAll {
				for _, p := range []struct {
					name string
					m    *matrix.Square
				}{{"A", ma}, {"B", mb}, {"C", mc}} {
					if err := matrixio.Write(out, p.name, p.m); err != nil {
						return err
					}
				}
			}
			sum, err := matrix.SumOfEntries(mc)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, sum)
			return err
		},
	}

	cmd.Flags().IntVar(&threshold, "threshold", strassen.DefaultThreshold, "Size at or below which brute force is used")
	cmd.Flags().IntVar(&parallelDepth, "parallel-depth", strassen.DefaultParallelDepth, "Recursion levels that compute products concurrently")
	cmd.Flags().BoolVar(&printAll, "print", false, "Print A, B and C before the sum")

	return cmd
}

func readOperand(cmd *cobra.Command, path string) (*matrix.Square, error) {
	if path == "-" {
		m, err := matrixio.Parse(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return m, nil
	}

	return matrixio.ReadFile(path)
}

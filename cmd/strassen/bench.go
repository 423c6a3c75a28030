// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math/rand"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvstrassen/matrix"
	"github.com/katalvlaran/lvstrassen/strassen"
)

// errMismatch reports a Strassen product that differs from brute force.
var errMismatch = errors.New("strassen and brute-force products differ")

func newBenchCmd(a *app) *cobra.Command {
	var (
		sizes     []int
		bound     int32
		seed      int64
		threshold int
		depth     int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare brute force and Strassen on random matrices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("threshold") {
				a.cfg.Threshold = threshold
			}
			if cmd.Flags().Changed("parallel-depth") {
				a.cfg.ParallelDepth = depth
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			rng := rand.New(rand.NewSource(seed))
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "n\tpadded\tbrute\tstrassen\tleaves\tequal")
			for _, n := range sizes {
				x, err := matrix.Random(n, matrix.Element(bound), rng)
				if err != nil {
					return err
				}
				y, err := matrix.Random(n, matrix.Element(bound), rng)
				if err != nil {
					return err
				}

				start := time.Now()
				want, err := matrix.BruteForce(x, y)
				if err != nil {
					return err
				}
				bruteDur := time.Since(start)

				var st strassen.Stats
				opts := append(a.cfg.Options(), strassen.WithLogger(a.logger), strassen.WithStats(&st))
				start = time.Now()
				got, err := strassen.MultiplyContext(cmd.Context(), x, y, opts...)
				if err != nil {
					return err
				}
				strassenDur := time.Since(start)

				equal := want.Equal(got)
				fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%d\t%t\n",
					n, matrix.NextPowerOfTwo(n), bruteDur.Round(time.Microsecond),
					strassenDur.Round(time.Microsecond), st.BaseProducts(), equal)
				a.logger.Debug("bench size done",
					zap.Int("size", n), zap.Duration("brute", bruteDur), zap.Duration("strassen", strassenDur))
				if !equal {
					_ = tw.Flush()
					return fmt.Errorf("n=%d: %w", n, errMismatch)
				}
			}

			return tw.Flush()
		},
	}

	cmd.Flags().IntSliceVar(&sizes, "sizes", []int{64, 100, 128, 256}, "Matrix sizes to benchmark")
	cmd.Flags().Int32Var(&bound, "bound", 1000, "Entries are drawn from [-bound, bound]")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Random seed")
	cmd.Flags().IntVar(&threshold, "threshold", strassen.DefaultThreshold, "Size at or below which brute force is used")
	cmd.Flags().IntVar(&depth, "parallel-depth", strassen.DefaultParallelDepth, "Recursion levels that compute products concurrently")

	return cmd
}

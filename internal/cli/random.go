package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvassign/matrixio"
)

const (
	defaultRandomMin = 1
	defaultRandomMax = 20
)

// randomOpts holds the command-line flags for the random command.
type randomOpts struct {
	min, max int64
	seed     int64
	format   string
}

func (c *CLI) randomCommand() *cobra.Command {
	opts := randomOpts{min: defaultRandomMin, max: defaultRandomMax, format: string(matrixio.FormatJSON)}

	cmd := &cobra.Command{
		Use:   "random N",
		Short: "Generate a random N×N cost matrix",
		Long: `Random writes an N×N matrix with integer costs drawn uniformly from
[--min, --max]. The same --seed always yields the same matrix.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("N must be an integer: %w", err)
			}
			f, err := matrixio.ParseFormat(opts.format)
			if err != nil {
				return fmt.Errorf("--format %q: %w", opts.format, err)
			}

			cost, err := matrixio.Random(n, opts.min, opts.max, opts.seed)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("generated matrix", "n", n, "seed", opts.seed)

			return matrixio.Encode(cmd.OutOrStdout(), f, cost)
		},
	}

	cmd.Flags().Int64Var(&opts.min, "min", opts.min, "smallest cost")
	cmd.Flags().Int64Var(&opts.max, "max", opts.max, "largest cost")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed (0 uses a fixed default)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: json, csv, toml")

	return cmd
}

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvassign/hungarian"
	"github.com/katalvlaran/lvassign/matrixio"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	format     string  // input format; inferred from the extension when empty
	algorithm  string  // "konig" or "potentials"
	extraction string  // "carried" or "greedy"
	eps        float64 // zero tolerance for float matrices
	output     string  // "text" or "json"
}

func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve [file|-]",
		Short: "Solve the assignment problem for a cost matrix",
		Long: `Solve reads a square cost matrix (JSON, CSV or TOML) from a file or
stdin and prints the minimum-cost assignment.`,
		Example: `  lvassign solve costs.csv
  lvassign random 5 | lvassign solve --format json -
  lvassign solve --algorithm potentials --output json costs.toml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			solverOpts, err := c.solverOptions(cmd, opts)
			if err != nil {
				return err
			}
			return c.runSolve(cmd, path, opts, solverOpts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "input format: json, csv, toml (default: from extension, json for stdin)")
	cmd.Flags().StringVar(&opts.algorithm, "algorithm", "", "solver: konig or potentials (default from config)")
	cmd.Flags().StringVar(&opts.extraction, "extraction", "", "final matching for konig: carried or greedy (default from config)")
	cmd.Flags().Float64Var(&opts.eps, "eps", hungarian.DefaultEps, "zero tolerance for fractional costs")
	cmd.Flags().StringVarP(&opts.output, "output", "o", outputText, "output: text or json")

	return cmd
}

// solverOptions starts from the config and applies flags the user set.
func (c *CLI) solverOptions(cmd *cobra.Command, opts solveOpts) (hungarian.Options, error) {
	cfg := c.Config
	if opts.algorithm != "" {
		cfg.Solver.Algorithm = opts.algorithm
	}
	if opts.extraction != "" {
		cfg.Solver.Extraction = opts.extraction
	}
	if cmd.Flags().Changed("eps") {
		cfg.Solver.Eps = opts.eps
	}

	return cfg.SolverOptions()
}

func (c *CLI) runSolve(cmd *cobra.Command, path string, opts solveOpts, solverOpts hungarian.Options) error {
	logger := loggerFromContext(cmd.Context())

	m, err := readMatrix(cmd.InOrStdin(), path, opts.format)
	if err != nil {
		return err
	}
	logger.Debug("matrix loaded", "path", path, "rows", m.Rows())

	solverOpts.OnRound = func(ri hungarian.RoundInfo) {
		logger.Debug("covering round", "round", ri.Round, "matched", ri.Matched, "lines", ri.Lines, "delta", ri.Delta)
	}

	prog := newProgress(logger)
	sol, err := matrixio.Solve(m, solverOpts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Solved %dx%d matrix", m.Rows(), m.Rows()))

	return writeOutcome(cmd.OutOrStdout(), opts.output, m.Cost, outcome{
		TotalCost:   sol.TotalCost,
		Assignment:  sol.Assignment,
		Adjustments: sol.Adjustments,
		Algorithm:   solverOpts.Algo.String(),
	})
}

// readMatrix decodes path, or stdin when path is "-".
func readMatrix(stdin io.Reader, path, format string) (matrixio.Matrix, error) {
	var f matrixio.Format
	if format != "" {
		var err error
		if f, err = matrixio.ParseFormat(format); err != nil {
			return matrixio.Matrix{}, fmt.Errorf("--format %q: %w", format, err)
		}
	}

	if path == "-" {
		if f == "" {
			f = matrixio.FormatJSON
		}
		return matrixio.Decode(stdin, f)
	}

	return matrixio.ReadFile(path, f)
}

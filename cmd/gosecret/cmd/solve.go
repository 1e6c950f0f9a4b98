package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/gosecret/internal/config"
	"github.com/dbsmedya/gosecret/internal/loader"
	"github.com/dbsmedya/gosecret/internal/logger"
	"github.com/dbsmedya/gosecret/internal/report"
	"github.com/dbsmedya/gosecret/internal/solver"
	"github.com/dbsmedya/gosecret/internal/store"
)

// Reconstruction flags
var (
	selectorName  string
	crossValidate bool
	strict        bool
	workers       int
	storePath     string
)

var solveCmd = &cobra.Command{
	Use:   "solve FILE...",
	Short: "Reconstruct the secret of each share file",
	Long: `Solve decodes every share in each file and recovers the polynomial's
constant term from k of them using Lagrange interpolation at zero.

Shares that fail to decode are excluded and reported; the case fails only
if fewer than k shares remain. Files are solved in parallel.

Example:
  gosecret solve testcase1.json testcase2.json
  gosecret solve --cross-validate --selector last-k shares.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&selectorName, "selector", "",
		"Share selection strategy (first-k, last-k)")
	solveCmd.Flags().BoolVar(&crossValidate, "cross-validate", false,
		"Check unselected shares against the reconstructed polynomial")
	solveCmd.Flags().BoolVar(&strict, "strict", false,
		"Fail a case when cross-validation finds an inconsistent share")
	solveCmd.Flags().IntVarP(&workers, "workers", "w", 0,
		"Override number of files solved in parallel")
	solveCmd.Flags().StringVar(&storePath, "store", "",
		"Record results in the history database at this path")

	rootCmd.AddCommand(solveCmd)
}

// solveOverrides returns the global overrides plus the solve flags.
func solveOverrides() config.Overrides {
	o := GetCLIOverrides()
	o.Selector = selectorName
	o.CrossValidate = crossValidate
	o.Strict = strict
	o.Workers = workers
	o.StorePath = storePath
	return o
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(solveOverrides())
	if err != nil {
		return err
	}
	defer log.Sync()

	opts, err := solver.OptionsFromConfig(cfg.Reconstruction)
	if err != nil {
		return fmt.Errorf("invalid reconstruction settings: %w", err)
	}

	cases, err := loader.LoadFiles(args)
	if err != nil {
		return fmt.Errorf("failed to load shares: %w", err)
	}

	ctx, stop := setupSignalHandler(context.Background(), func(sig os.Signal) {
		log.Warnw("Received signal, stopping", "signal", sig.String())
	})
	defer stop()

	results, err := solver.New(opts, log).SolveAll(ctx, cases)
	if err != nil {
		return err
	}

	r, err := report.New(cmd.OutOrStdout(), cfg.Output.Format, cfg.Output.Color)
	if err != nil {
		return err
	}
	if err := r.Secrets(results); err != nil {
		return err
	}

	if cfg.Store.Enabled {
		if err := recordResults(cfg.Store.Path, opts.Selector.Name(), results, log); err != nil {
			return err
		}
	}

	if solver.Failed(results) {
		return fmt.Errorf("one or more cases failed")
	}
	return nil
}

// recordResults appends every successful result to the history store.
func recordResults(path, selector string, results []*solver.Result, log *logger.Logger) error {
	st, err := store.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer st.Close()

	for _, res := range results {
		s := res.Secret()
		if s == nil {
			continue
		}
		e, err := st.Put(store.Entry{
			Case:     res.Case,
			Secret:   s.String(),
			N:        res.N,
			K:        res.K,
			Selector: selector,
			Selected: res.Reconstruction.SelectedIndices(),
		})
		if err != nil {
			return fmt.Errorf("failed to record %s: %w", res.Case, err)
		}
		log.WithCase(res.Case).Debugw("Recorded result", "seq", e.Seq, "path", path)
	}
	return nil
}

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/gosecret/internal/loader"
	"github.com/dbsmedya/gosecret/internal/report"
	"github.com/dbsmedya/gosecret/internal/solver"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE...",
	Short: "Show decoded shares and whether enough remain",
	Long: `Inspect decodes every share without reconstructing the secret and
prints each base-10 value, each decoding failure and a sufficiency verdict
comparing the number of decoded shares with the threshold k.

Example:
  gosecret inspect testcase2.json
  gosecret inspect --format json shares/*.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(GetCLIOverrides())
	if err != nil {
		return err
	}
	defer log.Sync()

	cases, err := loader.LoadFiles(args)
	if err != nil {
		return fmt.Errorf("failed to load shares: %w", err)
	}

	ctx, stop := setupSignalHandler(context.Background(), func(sig os.Signal) {
		log.Warnw("Received signal, stopping", "signal", sig.String())
	})
	defer stop()

	s := solver.New(solver.Options{Workers: cfg.Reconstruction.Workers}, log)
	results, err := s.InspectAll(ctx, cases)
	if err != nil {
		return err
	}

	r, err := report.New(cmd.OutOrStdout(), cfg.Output.Format, cfg.Output.Color)
	if err != nil {
		return err
	}
	if err := r.Shares(results); err != nil {
		return err
	}

	for _, res := range results {
		if res.Err != nil || !res.Sufficient() {
			return fmt.Errorf("one or more cases have too few decodable shares")
		}
	}
	return nil
}

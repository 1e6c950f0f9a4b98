package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/gosecret/internal/store"
)

var (
	historyCase  string
	historyStore string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List reconstructions recorded by solve --store",
	Long: `History reads the result database and lists the cases it holds, or
every recorded reconstruction of one case.

Example:
  gosecret history --store gosecret.db
  gosecret history --store gosecret.db --case testcase2.json`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyCase, "case", "",
		"Show entries of this case only")
	historyCmd.Flags().StringVar(&historyStore, "store", "",
		"History database path (defaults to store.path from config)")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	overrides := GetCLIOverrides()
	overrides.StorePath = historyStore
	cfg, err := loadConfig(overrides)
	if err != nil {
		return err
	}

	st, err := store.Open(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer st.Close()

	if historyCase == "" {
		names, err := st.Cases()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			cmd.Printf("No results recorded in %s\n", cfg.Store.Path)
			return nil
		}
		for _, name := range names {
			e, err := st.Latest(name)
			if err != nil {
				return err
			}
			cmd.Printf("%s: secret = %s (%d run(s), last %s)\n",
				name, e.Secret, e.Seq, e.SolvedAt.Format(time.RFC3339))
		}
		return nil
	}

	entries, err := st.History(historyCase)
	if err != nil {
		return err
	}
	cmd.Printf("History of %s:\n", historyCase)
	for _, e := range entries {
		cmd.Printf("  #%d  %s  secret=%s  k=%d  selector=%s  shares=%v\n",
			e.Seq, e.SolvedAt.Format(time.RFC3339), e.Secret, e.K, e.Selector, e.Selected)
	}
	return nil
}

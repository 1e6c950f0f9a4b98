package cmd

import (
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/gosecret/internal/radix"
	"github.com/dbsmedya/gosecret/internal/secret"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Long: `Print the gosecret version, the build it came from and the
reconstruction capabilities compiled into it.`,
	Run: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) {
	cmd.Printf("gosecret %s (commit %s)\n", Version, Commit)
	cmd.Printf("  bases:     %d-%d\n", radix.MinBase, radix.MaxBase)
	cmd.Printf("  selectors: %s (default %s)\n",
		strings.Join(secret.SelectorNames(), ", "), secret.New().Selector().Name())
	cmd.Printf("  runtime:   %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

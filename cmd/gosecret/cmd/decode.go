package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/gosecret/internal/radix"
)

var decodeBase int

var decodeCmd = &cobra.Command{
	Use:   "decode DIGITS...",
	Short: "Convert values from a base to base 10",
	Long: `Decode converts each digit string from the given base (2-36) to an
exact base-10 integer. Letters are case-insensitive.

Example:
  gosecret decode --base 16 e1b5e05623d881f
  gosecret decode -b 2 111 1010`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().IntVarP(&decodeBase, "base", "b", 10,
		"Base of the input digits (2-36)")

	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0
	for _, digits := range args {
		v, err := radix.Decode(digits, decodeBase)
		if err != nil {
			fmt.Fprintf(out, "%s: error: %v\n", digits, err)
			failed++
			continue
		}
		fmt.Fprintf(out, "%s = %s\n", digits, v)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d values could not be decoded", failed, len(args))
	}
	return nil
}

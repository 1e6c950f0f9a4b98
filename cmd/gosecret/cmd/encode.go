package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/gosecret/internal/radix"
)

var encodeBase int

var encodeCmd = &cobra.Command{
	Use:   "encode NUMBER...",
	Short: "Convert base-10 values to another base",
	Long: `Encode writes each non-negative base-10 integer in the given base
(2-36) using lowercase digits. It is the inverse of decode and is handy for
preparing share files.

Example:
  gosecret encode --base 4 39`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEncode,
}

func init() {
	encodeCmd.Flags().IntVarP(&encodeBase, "base", "b", 16,
		"Base of the output digits (2-36)")

	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	if !radix.ValidBase(encodeBase) {
		return fmt.Errorf("invalid base %d: must be between %d and %d", encodeBase, radix.MinBase, radix.MaxBase)
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, number := range args {
		v, err := radix.Decode(number, 10)
		if err != nil {
			fmt.Fprintf(out, "%s: error: %v\n", number, err)
			failed++
			continue
		}
		s, err := radix.Encode(v, encodeBase)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s = %s\n", number, s)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d values are not base-10 integers", failed, len(args))
	}
	return nil
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// add <a> <b>: print a + b, grouped if either operand is grouped.
func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <a> <b>",
		Short: "Print the exact sum of two non-negative decimal numerals",
		Example: `  bigsum add 999 1
  bigsum add 1,234,567,890 9,876,543,210`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := appCtx.Adder.Sum(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Sum)
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "reject separators not placed every three digits")
	return cmd
}

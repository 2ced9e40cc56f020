package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyClear bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent searches, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "forget all recent searches")
}

func runHistory(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if historyClear {
		if err := application.History.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Search history cleared.")
		return nil
	}

	terms := application.History.Terms()
	if len(terms) == 0 {
		fmt.Fprintln(out, "No recent searches.")
		return nil
	}
	for i, term := range terms {
		fmt.Fprintf(out, "%d. %s\n", i+1, term)
	}
	return nil
}

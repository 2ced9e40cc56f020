package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/filmfinder/internal/omdb"
	"github.com/five82/filmfinder/internal/ui"
)

var watchlistCmd = &cobra.Command{
	Use:   "watchlist",
	Short: "List liked movies",
	Long: `List liked movies in the order they were added.

Examples:
  filmfinder watchlist
  filmfinder watchlist add tt0078748
  filmfinder watchlist remove tt0078748`,
	Args: cobra.NoArgs,
	RunE: runWatchlist,
}

var watchlistAddCmd = &cobra.Command{
	Use:   "add <id>",
	Short: "Fetch a title and add it to the watchlist",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatchlistAdd,
}

var watchlistRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a title from the watchlist",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatchlistRemove,
}

func init() {
	watchlistCmd.Flags().BoolVar(&jsonOutput, "json", false, "print JSON")
	watchlistCmd.AddCommand(watchlistAddCmd)
	watchlistCmd.AddCommand(watchlistRemoveCmd)
}

func runWatchlist(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	items := application.Watchlist.Items()
	if jsonOutput {
		return writeJSON(out, items)
	}
	if len(items) == 0 {
		fmt.Fprintln(out, "Your watchlist is empty.")
		return nil
	}
	fmt.Fprintln(out, movieTable(items, nil))
	return nil
}

func runWatchlistAdd(cmd *cobra.Command, args []string) error {
	detail, err := application.Catalog.Details(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("%s: %w", ui.ErrorText(err), err)
	}
	movie := detail.Summary()
	if application.Watchlist.Contains(movie.ID) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is already in your watchlist.\n", movie.Title)
		return nil
	}
	application.Watchlist.Add(movie)
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s).\n", movie.Title, movie.Year)
	return nil
}

func runWatchlistRemove(cmd *cobra.Command, args []string) error {
	id := args[0]
	if !application.Watchlist.Contains(id) {
		return fmt.Errorf("%s is not in your watchlist", id)
	}
	application.Watchlist.Remove(omdb.MovieSummary{ID: id})
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s.\n", id)
	return nil
}

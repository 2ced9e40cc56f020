package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/five82/filmfinder/internal/omdb"
	"github.com/five82/filmfinder/internal/ui"
)

var searchPage int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the catalog by title",
	Long: `Search the catalog by title and print one page of results.

The query is recorded in the recent search history.

Examples:
  filmfinder search alien
  filmfinder search "star wars" --page 2
  filmfinder search batman --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchPage, "page", "p", 1, "result page (1-based)")
	searchCmd.Flags().BoolVar(&jsonOutput, "json", false, "print JSON")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	// A failed write is logged; the search still runs.
	_ = application.History.Record(query)

	page, err := application.Catalog.Search(cmd.Context(), query, searchPage)
	if err != nil {
		return fmt.Errorf("%s: %w", ui.ErrorText(err), err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return writeJSON(out, page)
	}

	fmt.Fprintln(out, ui.ResultSummary(page))
	if page.NoResults() {
		if page.Message != "" {
			fmt.Fprintf(out, "Upstream said: %s\n", page.Message)
		}
		return nil
	}

	fmt.Fprintln(out, movieTable(page.Movies, application.Watchlist.Contains))
	fmt.Fprintf(out, "Page %d/%d\n", page.Page, page.PageCount)
	return nil
}

// movieTable renders summaries with a liked marker.
func movieTable(movies []omdb.MovieSummary, liked func(id string) bool) string {
	rows := make([][]string, 0, len(movies))
	for _, m := range movies {
		marker := ""
		if liked != nil && liked(m.ID) {
			marker = "♥"
		}
		rows = append(rows, []string{marker, m.ID, m.Year, m.Title})
	}
	return table.New().
		Border(lipgloss.HiddenBorder()).
		Headers("", "ID", "YEAR", "TITLE").
		Rows(rows...).
		Render()
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/filmfinder/internal/ui"
)

var detailsCmd = &cobra.Command{
	Use:   "details <id>",
	Short: "Show the full record for one title",
	Long: `Show the full record for one title by IMDb id.

Examples:
  filmfinder details tt0078748
  filmfinder details tt0078748 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runDetails,
}

func init() {
	detailsCmd.Flags().BoolVar(&jsonOutput, "json", false, "print JSON")
}

func runDetails(cmd *cobra.Command, args []string) error {
	detail, err := application.Catalog.Details(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("%s: %w", ui.ErrorText(err), err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return writeJSON(out, detail)
	}

	liked := ""
	if application.Watchlist.Contains(detail.IMDbID) {
		liked = "  ♥"
	}
	fmt.Fprintf(out, "%s (%s)%s\n\n", detail.Title, detail.Year, liked)
	fields := []struct {
		label string
		value string
	}{
		{"Rated", detail.Rated},
		{"Released", detail.Released},
		{"Runtime", detail.Runtime},
		{"Genre", detail.Genre},
		{"Director", detail.Director},
		{"Writer", detail.Writer},
		{"Actors", detail.Actors},
		{"Plot", detail.Plot},
		{"Language", detail.Language},
		{"Country", detail.Country},
		{"Awards", detail.Awards},
		{"Poster", detail.Poster},
		{"Rating", detail.IMDbRating},
		{"Votes", detail.IMDbVotes},
		{"IMDb ID", detail.IMDbID},
		{"Type", detail.Type},
	}
	for _, f := range fields {
		fmt.Fprintf(out, "%-10s %s\n", f.label+":", f.value)
	}
	return nil
}

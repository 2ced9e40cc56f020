package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/filmfinder/internal/logtail"
)

var (
	logLines int
	logRaw   bool
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Print the end of the log file",
	Args:  cobra.NoArgs,
	RunE:  runLogs,
}

func init() {
	logsCmd.Flags().IntVarP(&logLines, "lines", "n", 50, "number of lines (0 for all)")
	logsCmd.Flags().BoolVar(&logRaw, "raw", false, "print JSON records unformatted")
}

func runLogs(cmd *cobra.Command, args []string) error {
	path := application.Config.LogFile
	lines, err := logtail.Read(application.Fs, path, logLines)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(lines) == 0 {
		fmt.Fprintf(out, "No log entries in %s.\n", path)
		return nil
	}
	if !logRaw {
		lines = logtail.FormatLines(lines)
	}
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
	return nil
}

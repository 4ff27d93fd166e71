// filepath: internal/cli/scan.go
package cli

import (
	"fmt"

	"mediabridge/internal/scanner"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan <dir>",
	Short: "Add the audio files under a directory to the media index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScan(cmd, args[0])
	},
}

func runScan(cmd *cobra.Command, dir string) error {
	repo, err := openIndex()
	if err != nil {
		return err
	}
	defer repo.Close()

	s := scanner.NewScanner(repo, cfg.Media.Extensions)
	report, err := s.Scan(cmd.Context(), dir)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "scanned %d, added %d (%s), skipped %d, failed %d\n",
		report.Scanned, report.Added, humanize.Bytes(uint64(report.AddedBytes)), report.Skipped, report.Failed)
	return nil
}

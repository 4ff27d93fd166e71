// filepath: internal/cli/root.go
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	// Version info
	Version   = "0.3.0"
	StartTime time.Time
)

// RootCmd represents the base command when called without any subcommands.
// It starts the HTTP server.
var RootCmd = &cobra.Command{
	Use:     "mediabridge",
	Short:   "Media index deletion bridge",
	Long:    `Deletes audio files from the media index and the filesystem on behalf of a calling application.`,
	Version: Version,
	// PersistentPreRunE loads the configuration before any command runs.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	SilenceUsage: true,
	// RunE executes the main server logic.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	StartTime = time.Now()

	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	registerFlags(RootCmd)

	RootCmd.AddCommand(serveCmd)
	RootCmd.AddCommand(deleteCmd)
	RootCmd.AddCommand(scanCmd)
	RootCmd.AddCommand(migrateCmd)
	RootCmd.AddCommand(tokenCmd)
}

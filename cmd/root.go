package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stgc",
	Short: "Syncs a Shkolo class schedule with a Google Calendar",
	Long: `stgc scrapes a pupil's weekly class schedule from the Shkolo portal and
recreates it as Google Calendar events. Contiguous periods of the same
subject collapse into a single event, and vacation notices expand across
the workdays they cover.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

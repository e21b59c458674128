package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/vdimitrov/stgc/internal/config"
)

// clearCmd represents the clear command
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clears the target Google Calendar",
	Long: `Deletes every event on the target Google Calendar. The sync strategy is a
full replace, so the calendar is expected to be dedicated to the schedule;
manually created events on it are removed as well.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		calendarID, _ := cmd.Flags().GetString("calendarID")
		tokenPath, _ := cmd.Flags().GetString("tokenPath")

		cfg, err := config.Load(configPath)
		if err != nil {
			log.Fatalf("Could not load config: %v\n", err)
		}
		if calendarID != "" {
			cfg.CalendarID = calendarID
		}

		c, err := calendarFromFlags(cfg.CalendarID, tokenPath)
		if err != nil {
			log.Fatalf("Could not create Google Calendar instance: %v\n", err)
		}

		if err := c.Clear(); err != nil {
			log.Fatalf("Could not clear Google Calendar: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	clearCmd.Flags().StringP("config", "f", "stgc.toml", "Path to the stgc config file")
	clearCmd.Flags().StringP("calendarID", "c", "", "Google Calendar calendar ID (overrides config)")
	clearCmd.Flags().StringP("tokenPath", "t", "token.json", "The path to a Google OAuth token file")
}

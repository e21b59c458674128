package cmd

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vdimitrov/stgc/internal/config"
)

// scrapeCmd represents the scrape command
var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Dumps the Shkolo schedule as line-oriented text",
	Long: `Logs into the Shkolo portal, scrapes the upcoming weeks of the class
schedule and writes the line-oriented text representation to a file. The
file can be synced later with the sync command's --input flag.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		output, _ := cmd.Flags().GetString("output")
		weeks, _ := cmd.Flags().GetInt("weeks")

		cfg, err := config.Load(configPath)
		if err != nil {
			log.Fatalf("Could not load config: %v\n", err)
		}
		if weeks > 0 {
			cfg.Weeks = weeks
		}

		lines, err := scrapeLines(cfg)
		if err != nil {
			log.Fatalf("Could not scrape the Shkolo schedule: %v\n", err)
		}

		err = os.WriteFile(output, []byte(strings.Join(lines, "\n")+"\n"), 0644)
		if err != nil {
			log.Fatalf("Could not write schedule to %q: %v\n", output, err)
		}
		log.Printf("Wrote %v schedule lines to %v\n", len(lines), output)
	},
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	scrapeCmd.Flags().StringP("config", "f", "stgc.toml", "Path to the stgc config file")
	scrapeCmd.Flags().StringP("output", "o", "schedule.txt", "The path the schedule text is written to")
	scrapeCmd.Flags().IntP("weeks", "w", 0, "Amount of weeks to scrape (overrides config)")
}

package cmd

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"github.com/vdimitrov/stgc/googlecalendar"
	"github.com/vdimitrov/stgc/internal/config"
	"github.com/vdimitrov/stgc/schedule"
	"github.com/vdimitrov/stgc/shkolo"
	"github.com/vdimitrov/stgc/util"
)

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Syncs the Shkolo schedule with a Google Calendar",
	Long: `Scrapes the upcoming weeks of the Shkolo class schedule, wipes the target
Google Calendar and recreates one event per class group and vacation day.
With --input the schedule text is read from a file produced by the scrape
command instead of the portal.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		input, _ := cmd.Flags().GetString("input")
		tokenPath, _ := cmd.Flags().GetString("tokenPath")
		calendarID, _ := cmd.Flags().GetString("calendarID")
		weeks, _ := cmd.Flags().GetInt("weeks")

		cfg, err := config.Load(configPath)
		if err != nil {
			log.Fatalf("Could not load config: %v\n", err)
		}
		if calendarID != "" {
			cfg.CalendarID = calendarID
		}
		if weeks > 0 {
			cfg.Weeks = weeks
		}

		var lines []string
		if input != "" {
			b, err := os.ReadFile(input)
			if err != nil {
				log.Fatalf("Could not read schedule file %q: %v\n", input, err)
			}
			lines = strings.Split(string(b), "\n")
		} else {
			lines, err = scrapeLines(cfg)
			if err != nil {
				log.Fatalf("Could not scrape the Shkolo schedule: %v\n", err)
			}
		}

		events := schedule.NewPipelineState().Run(lines)
		log.Printf("Synthesized %v events from %v schedule lines\n", len(events), len(lines))

		c, err := calendarFromFlags(cfg.CalendarID, tokenPath)
		if err != nil {
			log.Fatalf("Could not create Google Calendar instance: %v\n", err)
		}

		if err := c.Clear(); err != nil {
			log.Fatalf("Could not clear Google Calendar: %v\n", err)
		}
		c.Push(events)
	},
}

// scrapeLines logs into the portal and pulls the configured number of weeks
// of schedule text.
func scrapeLines(cfg *config.Config) ([]string, error) {
	godotenv.Load()
	login := shkolo.LoginInfo{
		Username: os.Getenv("SHKOLO_USERNAME"),
		Password: os.Getenv("SHKOLO_PASSWORD"),
	}
	diary := shkolo.DiaryInfo{
		PupilID:     cfg.PupilID,
		ClassYearID: cfg.ClassYearID,
		SchoolYear:  cfg.SchoolYear,
	}

	s, err := shkolo.New(context.Background(), login, diary)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	return s.GetScheduleWeeks(cfg.Weeks)
}

// calendarFromFlags builds the Google Calendar client from the local
// credentials.json and the cached OAuth token.
func calendarFromFlags(calendarID, tokenPath string) (*googlecalendar.GoogleCalendar, error) {
	bytes, err := os.ReadFile("credentials.json")
	if err != nil {
		return nil, err
	}

	oauthConfig, err := google.ConfigFromJSON(bytes, calendar.CalendarScope)
	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(tokenPath, ".json") {
		tokenPath += ".json"
	}

	client, err := util.GetClient(oauthConfig, tokenPath)
	if err != nil {
		return nil, err
	}

	return googlecalendar.New(client, calendarID)
}

func init() {
	rootCmd.AddCommand(syncCmd)

	syncCmd.Flags().StringP("config", "f", "stgc.toml", "Path to the stgc config file")
	syncCmd.Flags().StringP("input", "i", "", "Read schedule text from a file instead of the portal")
	syncCmd.Flags().StringP("calendarID", "c", "", "Google Calendar calendar ID (overrides config)")
	syncCmd.Flags().IntP("weeks", "w", 0, "Amount of weeks to sync (overrides config)")
	syncCmd.Flags().StringP("tokenPath", "t", "token.json", "The path to a Google OAuth token file")
}

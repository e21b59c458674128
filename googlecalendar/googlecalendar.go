package googlecalendar

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/vdimitrov/stgc/schedule"
)

// TimeZone is the fixed zone every emitted event carries.
const TimeZone = "Europe/Sofia"

const eventDescription = "Created by StGC"

type GoogleCalendar struct {
	Service *calendar.Service
	ID      string
	Logger  *log.Logger
}

// New wraps an authorised HTTP client in a Calendar service bound to one
// target calendar.
func New(client *http.Client, calendarID string) (*GoogleCalendar, error) {
	service, err := calendar.NewService(context.Background(), option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("could not create calendar service: %w", err)
	}
	return &GoogleCalendar{
		Service: service,
		ID:      calendarID,
		Logger:  log.New(os.Stdout, "google-calendar ", log.LstdFlags),
	}, nil
}

// Clear deletes every event on the target calendar. The sync strategy is a
// destructive full replace, so everything goes, not only events this tool
// created. Individual delete failures are logged and skipped.
func (c *GoogleCalendar) Clear() error {
	pageToken := ""
	found, deleted := 0, 0
	for {
		req := c.Service.Events.List(c.ID)
		if pageToken != "" {
			req.PageToken(pageToken)
		}
		r, err := req.Do()
		if err != nil {
			return fmt.Errorf("could not retrieve events: %w", err)
		}
		for _, item := range r.Items {
			found++
			if err := c.Service.Events.Delete(c.ID, item.Id).Do(); err != nil {
				c.Logger.Printf("Could not delete event %v: %v\n", item.Id, err)
				continue
			}
			deleted++
		}
		pageToken = r.NextPageToken
		if pageToken == "" {
			break
		}
	}
	c.Logger.Printf("Deleted %v of %v events\n", deleted, found)
	return nil
}

// Push inserts one calendar event per pipeline event. Insert failures are
// logged per item and do not abort the run; a partially failed run leaves
// the calendar with fewer events than intended.
func (c *GoogleCalendar) Push(events []schedule.Event) {
	inserted := 0
	for _, e := range events {
		if _, err := c.Service.Events.Insert(c.ID, ToGoogleEvent(e)).Do(); err != nil {
			c.Logger.Printf("Could not insert event %q on %v: %v\n", e.Summary, e.Date.Format("2006-01-02"), err)
			continue
		}
		inserted++
	}
	c.Logger.Printf("Inserted %v of %v events\n", inserted, len(events))
}

// ToGoogleEvent converts a pipeline event into the Calendar API shape. The
// dateTime strings are wall-clock local to TimeZone.
func ToGoogleEvent(e schedule.Event) *calendar.Event {
	day := e.Date.Format("2006-01-02")
	return &calendar.Event{
		Summary:     e.Summary,
		ColorId:     e.ColorID,
		Description: eventDescription,
		Start:       &calendar.EventDateTime{DateTime: fmt.Sprintf("%sT%s:00", day, e.Start), TimeZone: TimeZone},
		End:         &calendar.EventDateTime{DateTime: fmt.Sprintf("%sT%s:00", day, e.End), TimeZone: TimeZone},
	}
}

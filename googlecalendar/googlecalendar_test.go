package googlecalendar

import (
	"testing"
	"time"

	"github.com/vdimitrov/stgc/schedule"
)

func TestToGoogleEvent(t *testing.T) {
	date, err := time.Parse(schedule.DateLayout, "13.01.2025")
	if err != nil {
		t.Fatalf("could not parse date: %v", err)
	}

	got := ToGoogleEvent(schedule.Event{
		Date:    date,
		Start:   "08:00",
		End:     "09:30",
		Summary: "1-2 Математика",
		ColorID: "3",
	})

	if got.Summary != "1-2 Математика" || got.ColorId != "3" {
		t.Errorf("event = %+v", got)
	}
	if got.Start.DateTime != "2025-01-13T08:00:00" {
		t.Errorf("start dateTime = %q, want %q", got.Start.DateTime, "2025-01-13T08:00:00")
	}
	if got.End.DateTime != "2025-01-13T09:30:00" {
		t.Errorf("end dateTime = %q, want %q", got.End.DateTime, "2025-01-13T09:30:00")
	}
	if got.Start.TimeZone != TimeZone || got.End.TimeZone != TimeZone {
		t.Errorf("time zones = %q/%q, want %q", got.Start.TimeZone, got.End.TimeZone, TimeZone)
	}
	if got.Description != eventDescription {
		t.Errorf("description = %q, want %q", got.Description, eventDescription)
	}
}

package schedule

import "time"

// ClassRecord is one class entry on a school day, in the order it was read.
type ClassRecord struct {
	Number string // sequence number within the day, empty for free periods
	Title  string
	Start  string // "HH:MM"
	End    string // "HH:MM"
}

// Event is the typed intermediate handed to the calendar sink. Date carries
// the calendar day only; Start and End are wall-clock times in the fixed
// schedule timezone.
type Event struct {
	Date    time.Time
	Start   string
	End     string
	Summary string
	ColorID string
}

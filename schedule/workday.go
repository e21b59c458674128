package schedule

import "time"

func isWorkday(t time.Time) bool {
	return t.Weekday() != time.Saturday && t.Weekday() != time.Sunday
}

// NextWorkday returns the first business day (Mon-Fri) strictly after t.
func NextWorkday(t time.Time) time.Time {
	next := t.AddDate(0, 0, 1)
	for !isWorkday(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Workdays returns the business days strictly between start and end, in
// order. Both bounds are exclusive: a vacation spanning a Friday to the
// following Monday expands to nothing.
func Workdays(start, end time.Time) []time.Time {
	var days []time.Time
	for cur := NextWorkday(start); cur.Before(end); cur = cur.AddDate(0, 0, 1) {
		if isWorkday(cur) {
			days = append(days, cur)
		}
	}
	return days
}

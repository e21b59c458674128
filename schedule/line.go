package schedule

import (
	"regexp"
	"strings"
	"time"
)

// LineKind identifies what a single line of scraped schedule text carries.
type LineKind int

const (
	LineIgnored LineKind = iota
	LineDate
	LineClass
	LineTimeRange
)

// DateLayout is the date format used by the portal schedule dump (eg. "03.02.2025").
const DateLayout = "02.01.2006"

var (
	dateRe      = regexp.MustCompile(`\d{2}\.\d{2}\.\d{4}`)
	timeRangeRe = regexp.MustCompile(`(\d{2}:\d{2}) - (\d{2}:\d{2})`)
)

// Line is one classified line of schedule text. For LineDate a zero Date
// marks a vacation/free block ("Date: None"). Raw holds the class descriptor
// for LineClass and the original text for LineIgnored.
type Line struct {
	Kind  LineKind
	Date  time.Time
	Raw   string
	Start string // "HH:MM"
	End   string // "HH:MM"
}

// Classify categorises a single line of schedule text. Lines carrying no
// recognisable marker come back as LineIgnored rather than being swallowed,
// so callers can tell what was dropped. A "Time range:" line whose time pair
// does not match the expected pattern is ignored as well.
func Classify(line string) Line {
	line = strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(line, "Date:"):
		match := dateRe.FindString(line)
		if match == "" {
			return Line{Kind: LineDate}
		}
		date, err := time.Parse(DateLayout, match)
		if err != nil {
			return Line{Kind: LineDate}
		}
		return Line{Kind: LineDate, Date: date}
	case strings.HasPrefix(line, "Class:"):
		return Line{Kind: LineClass, Raw: strings.TrimSpace(strings.TrimPrefix(line, "Class:"))}
	case strings.HasPrefix(line, "Time range:"):
		match := timeRangeRe.FindStringSubmatch(line)
		if match == nil {
			return Line{Kind: LineIgnored, Raw: line}
		}
		return Line{Kind: LineTimeRange, Start: match[1], End: match[2]}
	}
	return Line{Kind: LineIgnored, Raw: line}
}

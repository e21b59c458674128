package schedule

import (
	"regexp"
	"strings"
)

var (
	classNumberRe  = regexp.MustCompile(`^(\d+)\.\s*(.+)`)
	trailingRoomRe = regexp.MustCompile(`\s*\([^)]*\)\s*$`)
	ellipsisRe     = regexp.MustCompile(`\s*\([^)]*…[^)]*\)`)
)

// ParseClass splits a raw class descriptor like
//
//	"1. Промишлена електроника (ИУЧ - СПП) Митко В. Димитров 81 (Приземен 7)"
//
// into its sequence number and a cleaned title. The trailing parenthesised
// group (the room) is stripped, as is any parenthesised group the portal
// truncated with an ellipsis. Vacation phrasings carry no leading number;
// those return an empty number and the full text as the title.
func ParseClass(raw string) (number, title string) {
	raw = strings.TrimSpace(raw)
	m := classNumberRe.FindStringSubmatch(raw)
	if m == nil {
		return "", raw
	}
	number = m[1]
	title = strings.TrimSpace(m[2])
	title = strings.TrimSpace(trailingRoomRe.ReplaceAllString(title, ""))
	title = strings.TrimSpace(ellipsisRe.ReplaceAllString(title, ""))
	return number, title
}

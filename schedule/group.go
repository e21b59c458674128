package schedule

import "fmt"

// Group is a run of time-adjacent classes sharing a title, merged into a
// single calendar entry.
type Group struct {
	Numbers []string
	Title   string
	Start   string
	End     string
}

// GroupClasses merges consecutive records with the same title whose time
// ranges are exactly back to back (the next start equals the running end).
// Same-day proximity is not enough; a gap between two occurrences of the
// same subject keeps them as separate groups. A record without a sequence
// number still extends a group but contributes nothing to the number list.
func GroupClasses(records []ClassRecord) []Group {
	var groups []Group
	var cur *Group
	for _, r := range records {
		if cur != nil && r.Title == cur.Title && r.Start == cur.End {
			if r.Number != "" {
				cur.Numbers = append(cur.Numbers, r.Number)
			}
			cur.End = r.End
			continue
		}
		if cur != nil {
			groups = append(groups, *cur)
		}
		g := Group{Title: r.Title, Start: r.Start, End: r.End}
		if r.Number != "" {
			g.Numbers = append(g.Numbers, r.Number)
		}
		cur = &g
	}
	if cur != nil {
		groups = append(groups, *cur)
	}
	return groups
}

// Summary renders the calendar event summary for a group: the title alone,
// a single class number, or a first-last number range in accumulation order.
func (g Group) Summary() string {
	switch len(g.Numbers) {
	case 0:
		return g.Title
	case 1:
		return fmt.Sprintf("%s %s", g.Numbers[0], g.Title)
	}
	return fmt.Sprintf("%s-%s %s", g.Numbers[0], g.Numbers[len(g.Numbers)-1], g.Title)
}

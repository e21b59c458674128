package schedule

import "time"

// vacationRecord describes one contiguous vacation/free block. The first
// class line inside the block fixes the title; the first time range fixes
// the hours every expanded day reuses.
type vacationRecord struct {
	title string
	start string
	end   string
}

// PipelineState is the schedule parser's state machine. It consumes the
// classified line stream in document order, accumulating class records for
// the open school day and expanding vacation blocks across the workdays they
// span. One PipelineState covers exactly one run; the color map accumulates
// across all days of that run and is discarded with it.
type PipelineState struct {
	colors *ColorMap

	date     time.Time     // open school day, zero when none
	lastDate time.Time     // last concrete date seen, anchors vacation expansion
	classes  []ClassRecord // day bucket for the open school day
	pending  *ClassRecord  // class awaiting its time range

	inVacation bool
	vacation   *vacationRecord
}

func NewPipelineState() *PipelineState {
	return &PipelineState{colors: NewColorMap()}
}

// Run classifies each input line and feeds it through the state machine,
// returning the synthesized calendar events in document order. Lines whose
// structural prerequisite is missing (a time range with nothing pending, a
// class before any date) are dropped without aborting the run.
func (p *PipelineState) Run(lines []string) []Event {
	var events []Event
	for _, raw := range lines {
		events = p.feed(Classify(raw), events)
	}
	return p.finish(events)
}

func (p *PipelineState) feed(line Line, events []Event) []Event {
	switch line.Kind {
	case LineDate:
		if line.Date.IsZero() {
			p.inVacation = true
			return events
		}
		events = p.closeVacation(line.Date, events)
		events = p.flushDay(events)
		p.date = line.Date
		p.lastDate = line.Date

	case LineClass:
		number, title := ParseClass(line.Raw)
		if p.inVacation {
			// Only the first class line names the block.
			if p.vacation == nil {
				p.vacation = &vacationRecord{title: title}
			}
			return events
		}
		p.pending = &ClassRecord{Number: number, Title: title}

	case LineTimeRange:
		if p.inVacation {
			if p.vacation != nil && p.vacation.start == "" {
				p.vacation.start = line.Start
				p.vacation.end = line.End
			}
			return events
		}
		if p.pending != nil {
			p.pending.Start = line.Start
			p.pending.End = line.End
			p.classes = append(p.classes, *p.pending)
			p.pending = nil
		}
	}
	return events
}

// closeVacation expands the open vacation block across the workdays strictly
// between the last concrete date and next, one neutral-colored event per
// workday, and clears the vacation state.
func (p *PipelineState) closeVacation(next time.Time, events []Event) []Event {
	if !p.inVacation {
		return events
	}
	if p.vacation != nil && !p.lastDate.IsZero() {
		for _, day := range Workdays(p.lastDate, next) {
			events = append(events, Event{
				Date:    day,
				Start:   p.vacation.start,
				End:     p.vacation.end,
				Summary: p.vacation.title,
				ColorID: NeutralColorID,
			})
		}
	}
	p.inVacation = false
	p.vacation = nil
	return events
}

// flushDay runs the open day bucket through the grouper and emits one event
// per group, then closes the bucket.
func (p *PipelineState) flushDay(events []Event) []Event {
	if p.date.IsZero() || len(p.classes) == 0 {
		p.classes = nil
		return events
	}
	for _, g := range GroupClasses(p.classes) {
		events = append(events, Event{
			Date:    p.date,
			Start:   g.Start,
			End:     g.End,
			Summary: g.Summary(),
			ColorID: p.colors.ColorFor(g.Title),
		})
	}
	p.classes = nil
	return events
}

// finish flushes whatever the end of input left open. A vacation block that
// never closed gets a single event on the next workday after the last
// concrete date; an open day bucket is grouped and emitted as usual.
func (p *PipelineState) finish(events []Event) []Event {
	if p.inVacation && p.vacation != nil && !p.lastDate.IsZero() {
		events = append(events, Event{
			Date:    NextWorkday(p.lastDate),
			Start:   p.vacation.start,
			End:     p.vacation.end,
			Summary: p.vacation.title,
			ColorID: NeutralColorID,
		})
	}
	return p.flushDay(events)
}

package schedule

import (
	"reflect"
	"testing"
)

func TestRunGroupsASchoolDay(t *testing.T) {
	lines := []string{
		"Date: 13.01.2025",
		"Class: 1. Math (Room 5)",
		"Time range: 08:00 - 08:45",
		"Class: 2. Math (Room 5)",
		"Time range: 08:45 - 09:30",
		"Class: 3. История и цивилизации (Стая 12)",
		"Time range: 09:45 - 10:30",
	}

	want := []Event{
		{Date: mustDate(t, "13.01.2025"), Start: "08:00", End: "09:30", Summary: "1-2 Math", ColorID: "1"},
		{Date: mustDate(t, "13.01.2025"), Start: "09:45", End: "10:30", Summary: "3 История и цивилизации", ColorID: "2"},
	}

	got := NewPipelineState().Run(lines)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Run() = %+v, want %+v", got, want)
	}
}

func TestRunExpandsVacationBlockAcrossWorkdays(t *testing.T) {
	lines := []string{
		"Date: 10.01.2025", // Friday
		"Class: 1. Математика (Стая 5)",
		"Time range: 08:00 - 08:45",
		"Date: None",
		"Class: Коледна ваканция",
		"Time range: 08:00 - 13:55",
		"Date: 20.01.2025", // the Monday a week after
		"Class: 1. Математика (Стая 5)",
		"Time range: 08:00 - 08:45",
	}

	got := NewPipelineState().Run(lines)

	// Vacation events for the school week in between come first (they are
	// emitted when the block closes), then the two school days.
	vacationDays := []string{"13.01.2025", "14.01.2025", "15.01.2025", "16.01.2025", "17.01.2025"}
	if len(got) != len(vacationDays)+2 {
		t.Fatalf("Run() produced %d events, want %d", len(got), len(vacationDays)+2)
	}
	for i, day := range vacationDays {
		e := got[i]
		if e.Date.Format(DateLayout) != day {
			t.Errorf("vacation event %d on %s, want %s", i, e.Date.Format(DateLayout), day)
		}
		if e.Summary != "Коледна ваканция" || e.Start != "08:00" || e.End != "13:55" {
			t.Errorf("vacation event %d = %+v", i, e)
		}
		if e.ColorID != NeutralColorID {
			t.Errorf("vacation event %d has color %q, want neutral %q", i, e.ColorID, NeutralColorID)
		}
	}

	for i, day := range []string{"10.01.2025", "20.01.2025"} {
		e := got[len(vacationDays)+i]
		if e.Date.Format(DateLayout) != day || e.Summary != "1 Математика" {
			t.Errorf("school day event %d = %+v", i, e)
		}
	}
}

func TestRunVacationTitleFirstWins(t *testing.T) {
	lines := []string{
		"Date: 10.01.2025",
		"Class: 1. Математика (Стая 5)",
		"Time range: 08:00 - 08:45",
		"Date: None",
		"Class: Коледна ваканция",
		"Class: Нещо друго",
		"Time range: 08:00 - 13:55",
		"Date: 14.01.2025",
	}

	got := NewPipelineState().Run(lines)
	if len(got) < 1 {
		t.Fatal("Run() produced no events")
	}
	if got[0].Summary != "Коледна ваканция" {
		t.Errorf("vacation title = %q, only the first class line names the block", got[0].Summary)
	}
}

func TestRunUnclosedVacationLandsOnNextWorkday(t *testing.T) {
	lines := []string{
		"Date: 10.01.2025", // Friday
		"Class: 1. Математика (Стая 5)",
		"Time range: 08:00 - 08:45",
		"Date: None",
		"Class: Ваканция",
		"Time range: 08:00 - 13:55",
	}

	got := NewPipelineState().Run(lines)
	if len(got) != 2 {
		t.Fatalf("Run() produced %d events, want 2", len(got))
	}

	vacation := got[0]
	if vacation.Date.Format(DateLayout) != "13.01.2025" {
		t.Errorf("unclosed vacation on %s, want the Monday after", vacation.Date.Format(DateLayout))
	}
	if vacation.Summary != "Ваканция" || vacation.ColorID != NeutralColorID {
		t.Errorf("unclosed vacation event = %+v", vacation)
	}
}

func TestRunDropsOrphanMarkers(t *testing.T) {
	lines := []string{
		"Time range: 08:00 - 08:45", // no pending class
		"Class: 1. Математика",      // never gets a time range
		"Date: 13.01.2025",
		"Class: 1. Физика (Стая 2)",
		"Time range: 08:00 - 08:45",
		"Time range: 09:00 - 09:45", // no pending class again
	}

	got := NewPipelineState().Run(lines)
	if len(got) != 1 {
		t.Fatalf("Run() produced %d events, want 1", len(got))
	}
	if got[0].Summary != "1 Физика" {
		t.Errorf("event = %+v", got[0])
	}
}

func TestRunStableColorsAcrossDays(t *testing.T) {
	lines := []string{
		"Date: 13.01.2025",
		"Class: 1. Математика (Стая 5)",
		"Time range: 08:00 - 08:45",
		"Class: 2. Физика (Стая 2)",
		"Time range: 08:55 - 09:40",
		"Date: 14.01.2025",
		"Class: 1. Физика (Стая 2)",
		"Time range: 08:00 - 08:45",
		"Class: 2. Математика (Стая 5)",
		"Time range: 08:55 - 09:40",
	}

	got := NewPipelineState().Run(lines)
	if len(got) != 4 {
		t.Fatalf("Run() produced %d events, want 4", len(got))
	}

	colorsBySubject := map[string]string{}
	for _, e := range got {
		title := e.Summary[2:] // strip the "N " prefix
		if prev, ok := colorsBySubject[title]; ok && prev != e.ColorID {
			t.Errorf("subject %q got colors %q and %q in one run", title, prev, e.ColorID)
		}
		colorsBySubject[title] = e.ColorID
	}
}

func TestRunIsIdempotent(t *testing.T) {
	lines := []string{
		"Date: 10.01.2025",
		"Class: 1. Математика (Стая 5)",
		"Time range: 08:00 - 08:45",
		"Date: None",
		"Class: Ваканция",
		"Time range: 08:00 - 13:55",
		"Date: 20.01.2025",
		"Class: 1. Свободен час",
		"Time range: 08:00 - 08:45",
	}

	first := NewPipelineState().Run(lines)
	second := NewPipelineState().Run(lines)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two runs over the same input differ:\n%+v\n%+v", first, second)
	}
}

func TestRunEmptyInput(t *testing.T) {
	if got := NewPipelineState().Run(nil); got != nil {
		t.Errorf("Run(nil) = %+v, want nil", got)
	}
}

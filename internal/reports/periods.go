package reports

import (
	"sort"
	"time"

	"github.com/vendia-pos/vendia/internal/sales"
)

// Week is one Sunday-to-Saturday reporting bucket, inclusive on both ends.
type Week struct {
	Start time.Time
	End   time.Time
}

// WeekOf returns the bounds of the week containing t: the preceding (or
// same) Sunday at 00:00:00 through Saturday 23:59:59 in t's location.
func WeekOf(t time.Time) Week {
	// Go numbers Sunday as 0, so the weekday is exactly the number of days
	// back to the week's start.
	start := time.Date(t.Year(), t.Month(), t.Day()-int(t.Weekday()), 0, 0, 0, 0, t.Location())
	end := time.Date(start.Year(), start.Month(), start.Day()+6, 23, 59, 59, 0, start.Location())
	return Week{Start: start, End: end}
}

// Contains reports whether t falls inside the week.
func (w Week) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// InWeek filters sales whose timestamps parse and fall within w. Entries
// with malformed timestamps are skipped, not reported.
func InWeek(entries []sales.Sale, w Week) []sales.Sale {
	var out []sales.Sale
	for _, e := range entries {
		t, err := time.ParseInLocation(sales.TimestampLayout, e.Timestamp, w.Start.Location())
		if err != nil {
			continue
		}
		if w.Contains(t) {
			out = append(out, e)
		}
	}
	return out
}

// Bucket pairs a week with the sales recorded in it.
type Bucket struct {
	Week  Week
	Sales []sales.Sale
}

// PastWeeks groups every sale recorded before the current week into its own
// week, most recent week first. The current week is excluded and weeks
// without sales never appear; malformed timestamps are skipped.
func PastWeeks(entries []sales.Sale, now time.Time) []Bucket {
	currentStart := WeekOf(now).Start

	byStart := make(map[time.Time][]sales.Sale)
	for _, e := range entries {
		t, err := time.ParseInLocation(sales.TimestampLayout, e.Timestamp, now.Location())
		if err != nil {
			continue
		}
		if !t.Before(currentStart) {
			continue
		}
		start := WeekOf(t).Start
		byStart[start] = append(byStart[start], e)
	}

	starts := make([]time.Time, 0, len(byStart))
	for start := range byStart {
		starts = append(starts, start)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[j].Before(starts[i]) })

	buckets := make([]Bucket, 0, len(starts))
	for _, start := range starts {
		buckets = append(buckets, Bucket{Week: WeekOf(start), Sales: byStart[start]})
	}
	return buckets
}

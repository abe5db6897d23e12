// ABOUTME: Calendar-day helpers that localize instants to a time zone.
// ABOUTME: Day bounds are closed intervals [00:00, next midnight - 1ns] in the zone.
package models

import "time"

// DayKeyFormat is the layout used to key days (YYYY-MM-DD).
const DayKeyFormat = "2006-01-02"

// DateAtLocation returns local midnight of the calendar day containing t in loc.
func DateAtLocation(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// DayBounds returns the first and last instants of the local calendar day
// containing t. The day may be 23 or 25 hours long across DST changes.
func DayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(t, loc)
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end
}

// WithinDay reports whether ts lies in the closed interval [start, end].
func WithinDay(ts, start, end time.Time) bool {
	return !ts.Before(start) && !ts.After(end)
}

// DayKey formats the local calendar day containing t.
func DayKey(t time.Time, loc *time.Location) string {
	return DateAtLocation(t, loc).Format(DayKeyFormat)
}

// StartOfWeek returns local midnight of the first day of the week containing t.
func StartOfWeek(t time.Time, weekStart time.Weekday, loc *time.Location) time.Time {
	day := DateAtLocation(t, loc)
	diff := (int(day.Weekday()) - int(weekStart) + 7) % 7
	return day.AddDate(0, 0, -diff)
}

package domain

import "time"

// ParseTimezone resolves an IANA zone name, returning UTC as fallback.
func ParseTimezone(tz string) *time.Location {
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// LocalDate returns the calendar date of now in tz as midnight UTC, the
// representation used for DATE columns.
func LocalDate(now time.Time, tz *time.Location) time.Time {
	local := now.In(tz)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekStart returns the Monday on or before date. date must be a LocalDate.
func WeekStart(date time.Time) time.Time {
	offset := (int(date.Weekday()) + 6) % 7
	return date.AddDate(0, 0, -offset)
}

// CurrentStreak counts consecutive tracked days ending today, or ending
// yesterday when nothing is tracked today yet. days must be sorted newest
// first and contain only days with minutes.
func CurrentStreak(days []DayMinutes, today time.Time) int {
	if len(days) == 0 {
		return 0
	}

	sameDay := func(a, b time.Time) bool {
		return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
	}

	expected := today
	if !sameDay(days[0].Day, today) {
		expected = today.AddDate(0, 0, -1)
	}

	streak := 0
	for _, d := range days {
		if !sameDay(d.Day, expected) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak
}

// DayBounds returns the instants [start, end) covering the local calendar
// day date in tz. date must be a LocalDate.
func DayBounds(date time.Time, tz *time.Location) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, tz)
	end := time.Date(date.Year(), date.Month(), date.Day()+1, 0, 0, 0, 0, tz)
	return start.UTC(), end.UTC()
}

package calendar

import "time"

// DateOnly strips the clock from t, keeping year/month/day in t's location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CountWeekdays counts the calendar dates d with start <= d <= end whose
// weekday is Monday through Friday. Both bounds are inclusive. Returns 0
// when start is after end. Only the date parts of start and end matter.
func CountWeekdays(start, end time.Time) int {
	d := DateOnly(start)
	last := DateOnly(end)
	if d.After(last) {
		return 0
	}
	count := 0
	for !d.After(last) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			count++
		}
		d = d.AddDate(0, 0, 1)
	}
	return count
}

// MonthBounds returns the first and last calendar date of the given month.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// YearBounds returns January 1 and December 31 of the given year.
func YearBounds(year int) (time.Time, time.Time) {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local),
		time.Date(year, time.December, 31, 0, 0, 0, 0, time.Local)
}

// MinDate returns the earlier of a and b.
func MinDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

// MaxDate returns the later of a and b.
func MaxDate(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

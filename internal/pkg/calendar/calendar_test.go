package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestCountWeekdays_SingleDay(t *testing.T) {
	t.Parallel()

	// 2024-06-03 is a Monday, 2024-06-08 a Saturday, 2024-06-09 a Sunday.
	assert.Equal(t, 1, CountWeekdays(date(2024, time.June, 3), date(2024, time.June, 3)))
	assert.Equal(t, 1, CountWeekdays(date(2024, time.June, 7), date(2024, time.June, 7)))
	assert.Equal(t, 0, CountWeekdays(date(2024, time.June, 8), date(2024, time.June, 8)))
	assert.Equal(t, 0, CountWeekdays(date(2024, time.June, 9), date(2024, time.June, 9)))
}

func TestCountWeekdays_StartAfterEnd(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, CountWeekdays(date(2024, time.June, 10), date(2024, time.June, 3)))
}

func TestCountWeekdays_KnownMonths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"january 2024", date(2024, time.January, 1), date(2024, time.January, 31), 23},
		{"february 2024 leap", date(2024, time.February, 1), date(2024, time.February, 29), 21},
		{"february 2023", date(2023, time.February, 1), date(2023, time.February, 28), 20},
		{"full week", date(2024, time.June, 3), date(2024, time.June, 9), 5},
		{"across year boundary", date(2023, time.December, 29), date(2024, time.January, 2), 3},
		{"full year 2024", date(2024, time.January, 1), date(2024, time.December, 31), 262},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountWeekdays(tt.start, tt.end))
		})
	}
}

func TestCountWeekdays_IgnoresClock(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, time.June, 3, 23, 59, 59, 0, time.Local)
	end := time.Date(2024, time.June, 4, 0, 0, 1, 0, time.Local)
	assert.Equal(t, 2, CountWeekdays(start, end))
}

func TestMonthBounds(t *testing.T) {
	t.Parallel()

	start, end := MonthBounds(2024, time.February)
	assert.Equal(t, date(2024, time.February, 1), start)
	assert.Equal(t, date(2024, time.February, 29), end)

	start, end = MonthBounds(2023, time.December)
	assert.Equal(t, date(2023, time.December, 1), start)
	assert.Equal(t, date(2023, time.December, 31), end)
}

func TestYearBounds(t *testing.T) {
	t.Parallel()

	start, end := YearBounds(2022)
	assert.Equal(t, date(2022, time.January, 1), start)
	assert.Equal(t, date(2022, time.December, 31), end)
}

func TestMinMaxDate(t *testing.T) {
	t.Parallel()

	a := date(2024, time.March, 1)
	b := date(2024, time.March, 15)
	assert.Equal(t, a, MinDate(a, b))
	assert.Equal(t, b, MaxDate(a, b))
	assert.Equal(t, a, MinDate(a, a))
}

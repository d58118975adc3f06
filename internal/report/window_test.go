package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDayWindowCoversCalendarDay(t *testing.T) {
	now := time.Date(2026, time.March, 4, 23, 59, 0, 0, time.UTC)

	start, end := DayWindow(now)
	require.Equal(t, time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC), start)
	require.Equal(t, time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC), end)
}

func TestWeekWindowStartsMonday(t *testing.T) {
	// 2026-03-04 is a Wednesday.
	now := time.Date(2026, time.March, 4, 12, 0, 0, 0, time.UTC)

	start, end := WeekWindow(now)
	require.Equal(t, time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC), start)
	require.Equal(t, time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC), end)
	require.Equal(t, time.Monday, start.Weekday())
}

func TestWeekWindowOnSundayBelongsToPrecedingMonday(t *testing.T) {
	// 2026-03-08 is a Sunday; the week started on 2026-03-02.
	now := time.Date(2026, time.March, 8, 23, 59, 0, 0, time.UTC)

	start, end := WeekWindow(now)
	require.Equal(t, time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC), start)
	require.Equal(t, time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC), end)
}

func TestWeekWindowOnMonday(t *testing.T) {
	now := time.Date(2026, time.March, 2, 0, 30, 0, 0, time.UTC)

	start, _ := WeekWindow(now)
	require.Equal(t, time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC), start)
}

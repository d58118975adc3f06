package report

import "time"

// DayWindow returns the calendar day containing now, midnight to midnight in
// now's location. Open sessions at report time are clipped at the window end,
// so a player still present at the 23:59 trigger is credited through the end
// of the day.
func DayWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}

// WeekWindow returns the calendar week containing now. Weeks start Monday
// 00:00 and span seven days.
func WeekWindow(now time.Time) (time.Time, time.Time) {
	daysSinceMonday := (int(now.Weekday()) + 6) % 7
	monday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -daysSinceMonday)
	return monday, monday.AddDate(0, 0, 7)
}

package viewmodel

import "time"

// dayKey truncates t to its calendar day in t's location.
func dayKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Streak counts consecutive days with any recorded activity, walking backward
// from today. A day with no activity stops the count, so the streak is 0
// whenever today itself has nothing recorded.
func Streak(activityDays []time.Time, today time.Time) int {
	if len(activityDays) == 0 {
		return 0
	}

	active := make(map[time.Time]bool, len(activityDays))
	for _, d := range activityDays {
		active[dayKey(d)] = true
	}

	streak := 0
	for day := dayKey(today); active[day]; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

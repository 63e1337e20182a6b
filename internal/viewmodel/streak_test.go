package viewmodel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStreakCountsConsecutiveDays(t *testing.T) {
	today := day("2024-05-10")
	days := []time.Time{
		day("2024-05-10"),
		day("2024-05-09"),
		day("2024-05-08"),
		day("2024-05-05"), // gap on the 6th and 7th
	}

	assert.Equal(t, 3, Streak(days, today))
}

func TestStreakZeroWhenTodayInactive(t *testing.T) {
	today := day("2024-05-10")
	days := []time.Time{
		day("2024-05-09"),
		day("2024-05-08"),
	}

	assert.Equal(t, 0, Streak(days, today))
}

func TestStreakStopsAtFirstGap(t *testing.T) {
	today := day("2024-05-10")
	days := []time.Time{
		day("2024-05-10"),
		day("2024-05-08"), // the 9th is missing
		day("2024-05-07"),
	}

	assert.Equal(t, 1, Streak(days, today))
}

func TestStreakIgnoresDuplicateEntriesSameDay(t *testing.T) {
	today := day("2024-05-10")
	days := []time.Time{
		day("2024-05-10"),
		day("2024-05-10"),
		day("2024-05-09"),
	}

	assert.Equal(t, 2, Streak(days, today))
}

func TestStreakEmpty(t *testing.T) {
	assert.Equal(t, 0, Streak(nil, day("2024-05-10")))
}

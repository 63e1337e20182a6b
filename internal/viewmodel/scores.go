package viewmodel

import "math"

// Default scores reported when a patient has no recent data in a category.
const (
	defaultMentalScore    = 75.0
	defaultPhysicalScore  = 85.0
	defaultLifestyleScore = 80.0

	// An activity day counts toward the lifestyle score at 30+ minutes.
	activeDayMinutes = 30
)

// HealthScores is the 0-100 score block on the patient dashboard.
type HealthScores struct {
	Overall   float64 `json:"overall_health_score"`
	Physical  float64 `json:"physical_health_score"`
	Mental    float64 `json:"mental_health_score"`
	Lifestyle float64 `json:"lifestyle_score"`
}

// CalculateHealthScores derives the dashboard scores from recent entries.
// Mental tracks average mood (1-10) scaled to 0-100. Physical starts at 100
// and loses 8 points per average severity point. Lifestyle is the share of
// window days with a 30+ minute activity. Each score falls back to its
// default when the category has no data.
func CalculateHealthScores(moodScores []int, severities []int, activityMinutesByDay []int, windowDays int) HealthScores {
	mental := defaultMentalScore
	if len(moodScores) > 0 {
		mental = clampScore(mean(moodScores) * 10)
	}

	physical := defaultPhysicalScore
	if len(severities) > 0 {
		physical = clampScore(100 - mean(severities)*8)
	}

	lifestyle := defaultLifestyleScore
	if len(activityMinutesByDay) > 0 && windowDays > 0 {
		activeDays := 0
		for _, minutes := range activityMinutesByDay {
			if minutes >= activeDayMinutes {
				activeDays++
			}
		}
		lifestyle = clampScore(float64(activeDays) / float64(windowDays) * 100)
	}

	return HealthScores{
		Overall:   round1((mental + physical + lifestyle) / 3),
		Physical:  round1(physical),
		Mental:    round1(mental),
		Lifestyle: round1(lifestyle),
	}
}

func mean(values []int) float64 {
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

func clampScore(v float64) float64 {
	return math.Min(100, math.Max(0, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

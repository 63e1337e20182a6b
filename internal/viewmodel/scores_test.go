package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateHealthScoresDefaults(t *testing.T) {
	scores := CalculateHealthScores(nil, nil, nil, 30)

	assert.Equal(t, 75.0, scores.Mental)
	assert.Equal(t, 85.0, scores.Physical)
	assert.Equal(t, 80.0, scores.Lifestyle)
	assert.Equal(t, 80.0, scores.Overall)
}

func TestCalculateHealthScoresMentalFromMood(t *testing.T) {
	// Average mood 6 scales to 60.
	scores := CalculateHealthScores([]int{5, 6, 7}, nil, nil, 30)

	assert.Equal(t, 60.0, scores.Mental)
}

func TestCalculateHealthScoresPhysicalFromSeverity(t *testing.T) {
	// Average severity 5 costs 40 points.
	scores := CalculateHealthScores(nil, []int{5, 5}, nil, 30)

	assert.Equal(t, 60.0, scores.Physical)
}

func TestCalculateHealthScoresPhysicalFloor(t *testing.T) {
	// Severity 10 would go below zero without the clamp.
	scores := CalculateHealthScores(nil, []int{10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10}, nil, 30)

	assert.Equal(t, 20.0, scores.Physical)
}

func TestCalculateHealthScoresLifestyle(t *testing.T) {
	// 15 active days (>=30 min) out of 30.
	minutes := make([]int, 20)
	for i := 0; i < 15; i++ {
		minutes[i] = 45
	}
	scores := CalculateHealthScores(nil, nil, minutes, 30)

	assert.Equal(t, 50.0, scores.Lifestyle)
}

func TestCalculateHealthScoresShortSessionsDoNotCount(t *testing.T) {
	scores := CalculateHealthScores(nil, nil, []int{10, 20, 29}, 30)

	assert.Equal(t, 0.0, scores.Lifestyle)
}

func TestCalculateHealthScoresOverallIsMean(t *testing.T) {
	scores := CalculateHealthScores([]int{10}, []int{1}, []int{60, 60, 60}, 3)

	assert.Equal(t, 100.0, scores.Mental)
	assert.Equal(t, 92.0, scores.Physical)
	assert.Equal(t, 100.0, scores.Lifestyle)
	assert.Equal(t, 97.3, scores.Overall)
}

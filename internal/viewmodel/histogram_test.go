package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatingHistogramBucketsSumToTotal(t *testing.T) {
	ratings := []int{1, 2, 2, 3, 5, 5, 5, 4}

	buckets := RatingHistogram(ratings)

	require.Len(t, buckets, 5)
	sum := 0
	for _, b := range buckets {
		sum += b
	}
	assert.Equal(t, len(ratings), sum)
	assert.Equal(t, []int{1, 2, 1, 1, 3}, buckets)
}

func TestRatingHistogramClampsOutOfRange(t *testing.T) {
	// 0 and negatives clamp to 1, anything above 5 clamps to 5.
	ratings := []int{0, -3, 6, 99, 3}

	buckets := RatingHistogram(ratings)

	sum := 0
	for _, b := range buckets {
		sum += b
	}
	assert.Equal(t, len(ratings), sum, "clamping must not drop entries")
	assert.Equal(t, 2, buckets[0])
	assert.Equal(t, 1, buckets[2])
	assert.Equal(t, 2, buckets[4])
}

func TestSeverityHistogram(t *testing.T) {
	severities := []int{1, 10, 11, 0, 5, 5}

	buckets := SeverityHistogram(severities)

	require.Len(t, buckets, 10)
	assert.Equal(t, 2, buckets[0])  // 1 and clamped 0
	assert.Equal(t, 2, buckets[4])  // two fives
	assert.Equal(t, 2, buckets[9])  // 10 and clamped 11
}

func TestHistogramEmpty(t *testing.T) {
	buckets := RatingHistogram(nil)
	require.Len(t, buckets, 5)
	for _, b := range buckets {
		assert.Zero(t, b)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(-5, 1, 5))
	assert.Equal(t, 5, Clamp(9, 1, 5))
	assert.Equal(t, 3, Clamp(3, 1, 5))
}

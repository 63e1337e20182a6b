package viewmodel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyCountsAlwaysFillsWindow(t *testing.T) {
	now := day("2024-06-15")
	times := []time.Time{
		day("2024-06-01"),
		day("2024-06-20"),
		day("2024-04-10"),
	}

	buckets := MonthlyCounts(times, 6, now)

	require.Len(t, buckets, 6, "trend output must contain exactly the window length")
	assert.Equal(t, "2024-01", buckets[0].Month)
	assert.Equal(t, "2024-06", buckets[5].Month)

	byMonth := map[string]int{}
	for _, b := range buckets {
		byMonth[b.Month] = b.Count
	}
	assert.Equal(t, 0, byMonth["2024-01"])
	assert.Equal(t, 0, byMonth["2024-02"])
	assert.Equal(t, 0, byMonth["2024-03"])
	assert.Equal(t, 1, byMonth["2024-04"])
	assert.Equal(t, 0, byMonth["2024-05"])
	assert.Equal(t, 2, byMonth["2024-06"])
}

func TestMonthlyCountsNoData(t *testing.T) {
	buckets := MonthlyCounts(nil, 6, day("2024-06-15"))

	require.Len(t, buckets, 6)
	for _, b := range buckets {
		assert.Equal(t, 0, b.Count)
	}
}

func TestMonthlyCountsCrossesYearBoundary(t *testing.T) {
	buckets := MonthlyCounts([]time.Time{day("2023-12-31")}, 3, day("2024-01-15"))

	require.Len(t, buckets, 3)
	assert.Equal(t, "2023-11", buckets[0].Month)
	assert.Equal(t, "2023-12", buckets[1].Month)
	assert.Equal(t, "2024-01", buckets[2].Month)
	assert.Equal(t, 1, buckets[1].Count)
}

func TestMonthlyCountsEndOfMonthNow(t *testing.T) {
	// Jan 31 minus one month must land in December, not skip it.
	buckets := MonthlyCounts(nil, 2, day("2024-01-31"))

	require.Len(t, buckets, 2)
	assert.Equal(t, "2023-12", buckets[0].Month)
	assert.Equal(t, "2024-01", buckets[1].Month)
}

func TestMonthlyAverages(t *testing.T) {
	now := day("2024-03-10")
	samples := []TimeSample{
		{At: day("2024-03-01"), Value: 4},
		{At: day("2024-03-05"), Value: 8},
		{At: day("2024-01-20"), Value: 5},
	}

	buckets := MonthlyAverages(samples, 3, now)

	require.Len(t, buckets, 3)
	assert.Equal(t, "2024-01", buckets[0].Month)
	assert.InDelta(t, 5.0, buckets[0].Value, 1e-9)
	assert.Equal(t, "2024-02", buckets[1].Month)
	assert.Zero(t, buckets[1].Value)
	assert.Equal(t, "2024-03", buckets[2].Month)
	assert.InDelta(t, 6.0, buckets[2].Value, 1e-9)
	assert.Equal(t, 2, buckets[2].Count)
}

func TestMonthlyCountsZeroWindow(t *testing.T) {
	assert.Nil(t, MonthlyCounts([]time.Time{day("2024-01-01")}, 0, day("2024-01-15")))
}

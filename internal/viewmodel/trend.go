package viewmodel

import "time"

// MonthBucket is one point of a month-bucketed trend series.
type MonthBucket struct {
	Month string  `json:"month"` // YYYY-MM
	Count int     `json:"count"`
	Value float64 `json:"value,omitempty"` // mean of samples, 0 for empty months
}

// monthKey formats t as the bucket key for its calendar month.
func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

// MonthlyCounts buckets timestamps into the trailing window of calendar
// months ending at the month of now. The result always has exactly window
// entries, oldest first; months with no samples appear with count 0.
func MonthlyCounts(times []time.Time, window int, now time.Time) []MonthBucket {
	if window <= 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, t := range times {
		counts[monthKey(t)]++
	}

	return fillTrailingMonths(window, now, func(key string) (int, float64) {
		return counts[key], 0
	})
}

// MonthlyAverages buckets (timestamp, value) samples into the trailing window
// of calendar months and reports the per-month mean. Empty months carry a
// zero value so charts always render the full window.
func MonthlyAverages(samples []TimeSample, window int, now time.Time) []MonthBucket {
	if window <= 0 {
		return nil
	}

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, s := range samples {
		key := monthKey(s.At)
		sums[key] += s.Value
		counts[key]++
	}

	return fillTrailingMonths(window, now, func(key string) (int, float64) {
		n := counts[key]
		if n == 0 {
			return 0, 0
		}
		return n, sums[key] / float64(n)
	})
}

// TimeSample is a timestamped numeric observation.
type TimeSample struct {
	At    time.Time
	Value float64
}

func fillTrailingMonths(window int, now time.Time, lookup func(key string) (int, float64)) []MonthBucket {
	buckets := make([]MonthBucket, 0, window)
	// Normalize to the first of the month so AddDate arithmetic never skips a
	// short month (e.g. Jan 31 minus one month).
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	for i := window - 1; i >= 0; i-- {
		month := first.AddDate(0, -i, 0)
		key := monthKey(month)
		count, value := lookup(key)
		buckets = append(buckets, MonthBucket{Month: key, Count: count, Value: value})
	}

	return buckets
}

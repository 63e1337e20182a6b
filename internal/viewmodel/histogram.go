package viewmodel

// Clamp limits v to the inclusive [min, max] range.
func Clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Histogram buckets values into min..max after clamping each value into the
// scale. The returned slice has max-min+1 buckets; index 0 is the min bucket.
// Because values are clamped rather than dropped, the bucket sum always
// equals len(values).
func Histogram(values []int, min, max int) []int {
	if max < min {
		return nil
	}

	buckets := make([]int, max-min+1)
	for _, v := range values {
		buckets[Clamp(v, min, max)-min]++
	}
	return buckets
}

// RatingHistogram buckets feedback ratings into the 1-5 scale.
func RatingHistogram(ratings []int) []int {
	return Histogram(ratings, 1, 5)
}

// SeverityHistogram buckets symptom severities into the 1-10 scale.
func SeverityHistogram(severities []int) []int {
	return Histogram(severities, 1, 10)
}

package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorrelationPerfectPositive(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	ys := []float64{2, 4, 6, 8, 10}

	assert.InDelta(t, 1.0, Correlation(xs, ys), 1e-9)
}

func TestCorrelationPerfectNegative(t *testing.T) {
	xs := []float64{1, 2, 3, 4}
	ys := []float64{8, 6, 4, 2}

	assert.InDelta(t, -1.0, Correlation(xs, ys), 1e-9)
}

func TestCorrelationUncorrelated(t *testing.T) {
	xs := []float64{1, 2, 1, 2}
	ys := []float64{5, 5, 9, 9}

	assert.InDelta(t, 0.0, Correlation(xs, ys), 1e-9)
}

func TestCorrelationZeroVariance(t *testing.T) {
	xs := []float64{3, 3, 3}
	ys := []float64{1, 2, 3}

	assert.Zero(t, Correlation(xs, ys))
}

func TestCorrelationTooFewSamples(t *testing.T) {
	assert.Zero(t, Correlation([]float64{1}, []float64{2}))
	assert.Zero(t, Correlation(nil, nil))
}

func TestCorrelationUsesShorterSeries(t *testing.T) {
	xs := []float64{1, 2, 3}
	ys := []float64{2, 4, 6, 1000}

	assert.InDelta(t, 1.0, Correlation(xs, ys), 1e-9)
}

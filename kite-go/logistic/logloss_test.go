package logistic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLoss(t *testing.T) {
	for _, px := range []float64{0.01, 0.2, 0.5, 0.73, 0.999} {
		assert.InDelta(t, -math.Log(px), LogLoss(px, 1), 1e-12)
		assert.InDelta(t, -math.Log(1-px), LogLoss(px, 0), 1e-12)
		assert.True(t, LogLoss(px, 1) >= 0)
		assert.True(t, LogLoss(px, 0) >= 0)
	}
}

func TestLogLossBoundary(t *testing.T) {
	assert.True(t, math.IsInf(LogLoss(0, 1), 1))
	assert.True(t, math.IsInf(LogLoss(1, 0), 1))
	// 0*log(0) is NaN
	assert.True(t, math.IsNaN(LogLoss(1, 1)))
}

func TestLogLosses(t *testing.T) {
	losses, err := LogLosses([]float64{0.5, 0.9}, []float64{1, 0})
	require.NoError(t, err)
	require.Len(t, losses, 2)
	assert.InDelta(t, math.Log(2), losses[0], 1e-12)
	assert.InDelta(t, -math.Log(0.1), losses[1], 1e-12)

	_, err = LogLosses([]float64{0.5}, []float64{1, 0})
	assert.Error(t, err)
}

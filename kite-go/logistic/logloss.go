package logistic

import (
	"math"

	"github.com/kiteco/logitdemo/kite-golib/errors"
)

// LogLoss is the binary cross-entropy of predicting px for outcome y.
// px of exactly 0 or 1 yields +Inf or NaN, which callers see unchanged.
func LogLoss(px, y float64) float64 {
	return -y*math.Log(px) - (1-y)*math.Log(1-px)
}

// LogLosses applies LogLoss element-wise
func LogLosses(px, y []float64) ([]float64, error) {
	if len(px) != len(y) {
		return nil, errors.Errorf("length mismatch: %d probabilities, %d outcomes", len(px), len(y))
	}
	losses := make([]float64, len(px))
	for i := range px {
		losses[i] = LogLoss(px[i], y[i])
	}
	return losses, nil
}

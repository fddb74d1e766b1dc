package logistic

import (
	"github.com/montanaflynn/stats"
)

// FitPoint is a sample scored against a candidate fit
type FitPoint struct {
	Sample
	PX      float64 `csv:"px"`
	LogLoss float64 `csv:"log_loss"`
}

// Fit is the result of scoring samples against candidate parameters
type Fit struct {
	Params  Params
	Variant Variant
	Points  []FitPoint
	// Total is the summed log-loss over Points
	Total float64
}

// EvaluateFit scores each sample's outcome against the curve given by p and v.
// The samples are not modified.
func EvaluateFit(samples []Sample, p Params, v Variant) Fit {
	fit := Fit{
		Params:  p,
		Variant: v,
		Points:  make([]FitPoint, len(samples)),
	}
	losses := make(stats.Float64Data, len(samples))
	for i, s := range samples {
		px := v.Eval(s.X, p)
		losses[i] = LogLoss(px, float64(s.Y))
		fit.Points[i] = FitPoint{
			Sample:  s,
			PX:      px,
			LogLoss: losses[i],
		}
	}
	if len(losses) > 0 {
		// Sum only fails on empty input
		fit.Total, _ = stats.Sum(losses)
	}
	return fit
}

// Losses returns the log_loss column
func (f Fit) Losses() []float64 {
	losses := make([]float64, len(f.Points))
	for i, p := range f.Points {
		losses[i] = p.LogLoss
	}
	return losses
}

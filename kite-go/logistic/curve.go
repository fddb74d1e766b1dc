package logistic

import (
	"gonum.org/v1/gonum/floats"
)

// DefaultPoints is the number of grid points used for smooth curves
const DefaultPoints = 100

// CurvePoint is one point of a sampled logistic curve
type CurvePoint struct {
	X  float64 `csv:"x"`
	PX float64 `csv:"p_x"`
}

// LogLossPoint is the log-loss of the curve at x for each possible outcome
type LogLossPoint struct {
	X        float64 `csv:"x"`
	LogLoss0 float64 `csv:"log_loss_0"`
	LogLoss1 float64 `csv:"log_loss_1"`
}

// Grid returns n evenly spaced values from d.Min to d.Max inclusive
func Grid(d Domain, n int) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{d.Min}
	}
	xs := floats.Span(make([]float64, n), d.Min, d.Max)
	// pin the endpoint against rounding in the step
	xs[n-1] = d.Max
	return xs
}

// Curve samples the logistic curve at n evenly spaced points over d
func Curve(p Params, v Variant, d Domain, n int) []CurvePoint {
	xs := Grid(d, n)
	points := make([]CurvePoint, len(xs))
	for i, x := range xs {
		points[i] = CurvePoint{X: x, PX: v.Eval(x, p)}
	}
	return points
}

// LogLossCurve samples, over the same grid as Curve, the loss a prediction
// from the curve would incur for y=0 and for y=1
func LogLossCurve(p Params, v Variant, d Domain, n int) []LogLossPoint {
	curve := Curve(p, v, d, n)
	points := make([]LogLossPoint, len(curve))
	for i, c := range curve {
		points[i] = LogLossPoint{
			X:        c.X,
			LogLoss0: LogLoss(c.PX, 0),
			LogLoss1: LogLoss(c.PX, 1),
		}
	}
	return points
}

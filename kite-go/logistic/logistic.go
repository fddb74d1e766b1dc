package logistic

import (
	"math"
	"strings"

	"github.com/kiteco/logitdemo/kite-golib/errors"
)

// Params parameterizes a logistic curve by its offset and steepness
type Params struct {
	X0 float64
	K  float64
}

// Logistic returns 1/(1+exp(-(k*x - x0))). The offset is subtracted after scaling,
// so the midpoint sits at x = x0/k.
func Logistic(x, x0, k float64) float64 {
	return 1 / (1 + math.Exp(-(k*x - x0)))
}

// LogisticCentered returns 1/(1+exp(-k*(x - x0))), whose midpoint sits at x = x0.
func LogisticCentered(x, x0, k float64) float64 {
	return 1 / (1 + math.Exp(-k*(x-x0)))
}

// Variant selects which of the two logit forms a curve uses. The forms are
// not equivalent and are never substituted for one another.
type Variant int

// Variant values
const (
	// Offset is logit(p) = k*x - x0
	Offset Variant = iota
	// Centered is logit(p) = k*(x - x0)
	Centered
)

// Eval evaluates the variant at x
func (v Variant) Eval(x float64, p Params) float64 {
	if v == Centered {
		return LogisticCentered(x, p.X0, p.K)
	}
	return Logistic(x, p.X0, p.K)
}

// EvalAll evaluates the variant element-wise over xs
func (v Variant) EvalAll(xs []float64, p Params) []float64 {
	ps := make([]float64, len(xs))
	for i, x := range xs {
		ps[i] = v.Eval(x, p)
	}
	return ps
}

// Logit describes the linear predictor of the variant, for plot titles
func (v Variant) Logit() string {
	if v == Centered {
		return "logit(p(x)) = k*(x - x0)"
	}
	return "logit(p(x)) = k*x - x0"
}

func (v Variant) String() string {
	if v == Centered {
		return "centered"
	}
	return "offset"
}

// UnmarshalText converts text to Variant
func (v *Variant) UnmarshalText(b []byte) error {
	switch str := strings.ToLower(strings.TrimSpace(string(b))); str {
	case "offset":
		*v = Offset
	case "centered":
		*v = Centered
	default:
		return errors.Errorf("invalid logistic variant %q", str)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

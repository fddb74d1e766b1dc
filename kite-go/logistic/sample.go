package logistic

import (
	"math/rand/v2"

	"github.com/kiteco/logitdemo/kite-golib/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// Domain is a closed interval of x values
type Domain struct {
	Min float64
	Max float64
}

var (
	// DefaultDomain is the x range samples and curves are drawn over
	DefaultDomain = Domain{Min: 0, Max: 5}

	// LowCluster and HighCluster are the overlapping ranges of the two-cluster sample
	LowCluster  = Domain{Min: 0, Max: 3}
	HighCluster = Domain{Min: 2, Max: 5}
)

// Sample is one simulated observation
type Sample struct {
	X                 float64 `csv:"x"`
	ProbabilityOfYOne float64 `csv:"probability_of_y_one"`
	Y                 int     `csv:"y"`
}

// Generator simulates samples whose outcomes follow a logistic curve.
// It draws from the source it was built with and holds no other state,
// so two generators over equally seeded sources produce identical samples.
// A Generator must not be shared between goroutines.
type Generator struct {
	Params  Params
	Variant Variant

	src rand.Source
}

// NewGenerator returns a generator drawing from src
func NewGenerator(src rand.Source, params Params, variant Variant) *Generator {
	return &Generator{
		Params:  params,
		Variant: variant,
		src:     src,
	}
}

// NewSource returns a deterministic source for seed
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed)
}

// Generate draws n samples with x uniform over DefaultDomain
func (g *Generator) Generate(n int) ([]Sample, error) {
	if n < 0 {
		return nil, errors.Errorf("negative sample count %d", n)
	}
	xs := g.uniform(DefaultDomain, n)
	return g.label(xs), nil
}

// GenerateClusters draws n0 samples with x uniform over LowCluster followed by
// n1 samples with x uniform over HighCluster
func (g *Generator) GenerateClusters(n0, n1 int) ([]Sample, error) {
	if n0 < 0 || n1 < 0 {
		return nil, errors.Errorf("negative sample counts %d, %d", n0, n1)
	}
	xs := append(g.uniform(LowCluster, n0), g.uniform(HighCluster, n1)...)
	return g.label(xs), nil
}

func (g *Generator) uniform(d Domain, n int) []float64 {
	dist := distuv.Uniform{Min: d.Min, Max: d.Max, Src: g.src}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = dist.Rand()
	}
	return xs
}

// label draws every outcome after all x values, so that the x column only
// depends on the seed and the counts
func (g *Generator) label(xs []float64) []Sample {
	samples := make([]Sample, len(xs))
	for i, x := range xs {
		p := g.Variant.Eval(x, g.Params)
		outcome := distuv.Bernoulli{P: p, Src: g.src}
		y := outcome.Rand()
		samples[i] = Sample{
			X:                 x,
			ProbabilityOfYOne: p,
			Y:                 int(y),
		}
	}
	return samples
}

// Xs returns the x column of samples
func Xs(samples []Sample) []float64 {
	xs := make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = s.X
	}
	return xs
}

// Ys returns the outcome column of samples as floats
func Ys(samples []Sample) []float64 {
	ys := make([]float64, len(samples))
	for i, s := range samples {
		ys[i] = float64(s.Y)
	}
	return ys
}

package main

import (
	"path/filepath"

	"github.com/kiteco/logitdemo/kite-go/logistic"
	"github.com/kiteco/logitdemo/kite-go/render"
	"github.com/kiteco/logitdemo/kite-golib/csvutil"
	"github.com/kiteco/logitdemo/kite-golib/errors"
	"github.com/montanaflynn/stats"
	"go.uber.org/zap"
)

// SampleFlags configures the simulated data set
type SampleFlags struct {
	Seed    uint64           `arg:"--seed" help:"random seed"`
	N       int              `arg:"--n" help:"number of points"`
	N0      int              `arg:"--n0" help:"points drawn over [0,3]; with --n1 replaces --n"`
	N1      int              `arg:"--n1" help:"points drawn over [2,5]; with --n0 replaces --n"`
	X0      float64          `arg:"--x0" help:"x offset of the generating curve"`
	K       float64          `arg:"--k" help:"steepness of the generating curve"`
	Variant logistic.Variant `arg:"--variant" help:"logit form: offset (k*x - x0) or centered (k*(x - x0))"`
}

func defaultSampleFlags() SampleFlags {
	return SampleFlags{
		Seed: 1,
		N:    40,
		X0:   2.5,
		K:    3,
	}
}

func (f SampleFlags) validate() error {
	if f.N < 0 || f.N0 < 0 || f.N1 < 0 {
		return errors.New("point counts must be non-negative")
	}
	return nil
}

func (f SampleFlags) params() logistic.Params {
	return logistic.Params{X0: f.X0, K: f.K}
}

func (f SampleFlags) generate() ([]logistic.Sample, error) {
	g := logistic.NewGenerator(logistic.NewSource(f.Seed), f.params(), f.Variant)
	if f.N0 > 0 || f.N1 > 0 {
		return g.GenerateClusters(f.N0, f.N1)
	}
	return g.Generate(f.N)
}

type sampleCmd struct {
	SampleFlags
	Out string `arg:"--out" help:"csv output path, - for stdout"`

	env `arg:"-"`
}

func newSampleCmd(e env) *sampleCmd {
	return &sampleCmd{
		SampleFlags: defaultSampleFlags(),
		Out:         csvutil.Stdio,
		env:         e,
	}
}

func (c *sampleCmd) Validate() error {
	return c.validate()
}

func (c *sampleCmd) Handle() error {
	samples, err := c.generate()
	if err != nil {
		return err
	}

	if ys := logistic.Ys(samples); len(ys) > 0 {
		rate, _ := stats.Mean(ys)
		c.log.Info("generated samples",
			zap.Int("rows", len(samples)),
			zap.Float64("positive_rate", rate),
			zap.Uint64("seed", c.Seed),
			zap.Stringer("variant", c.Variant))
	}
	return csvutil.WriteFile(c.fs, c.Out, samples)
}

type curveCmd struct {
	X0      float64          `arg:"--x0" help:"x offset"`
	K       float64          `arg:"--k" help:"steepness"`
	Min     float64          `arg:"--min" help:"lower end of the grid"`
	Max     float64          `arg:"--max" help:"upper end of the grid"`
	Points  int              `arg:"--points" help:"number of grid points"`
	Variant logistic.Variant `arg:"--variant" help:"logit form: offset or centered"`
	Losses  bool             `arg:"--losses" help:"write log_loss_0 and log_loss_1 instead of p_x"`
	Out     string           `arg:"--out" help:"csv output path, - for stdout"`
	Plot    string           `arg:"--plot" help:"also render the curve to this image path"`

	env `arg:"-"`
}

func newCurveCmd(e env) *curveCmd {
	return &curveCmd{
		X0:     2.5,
		K:      3,
		Min:    logistic.DefaultDomain.Min,
		Max:    logistic.DefaultDomain.Max,
		Points: logistic.DefaultPoints,
		Out:    csvutil.Stdio,
		env:    e,
	}
}

func (c *curveCmd) Validate() error {
	if c.Min >= c.Max {
		return errors.Errorf("--min %v must be below --max %v", c.Min, c.Max)
	}
	if c.Points < 2 {
		return errors.Errorf("need at least 2 points, got %d", c.Points)
	}
	return nil
}

func (c *curveCmd) Handle() error {
	params := logistic.Params{X0: c.X0, K: c.K}
	domain := logistic.Domain{Min: c.Min, Max: c.Max}

	curve := logistic.Curve(params, c.Variant, domain, c.Points)
	if c.Plot != "" {
		p, err := render.SmoothCurve(curve)
		if err != nil {
			return err
		}
		if err := render.SavePlot(c.fs, p, c.Plot); err != nil {
			return err
		}
		c.log.Info("wrote plot", zap.String("path", c.Plot))
	}

	if c.Losses {
		return csvutil.WriteFile(c.fs, c.Out, logistic.LogLossCurve(params, c.Variant, domain, c.Points))
	}
	return csvutil.WriteFile(c.fs, c.Out, curve)
}

type fitCmd struct {
	SampleFlags
	FitX0 float64 `arg:"--fitx0" help:"x offset of the candidate curve"`
	FitK  float64 `arg:"--fitk" help:"steepness of the candidate curve"`
	Out   string  `arg:"--out" help:"csv output path, - for stdout"`
	Plots string  `arg:"--plots" help:"directory to render data.png and fit.png into"`

	env `arg:"-"`
}

func newFitCmd(e env) *fitCmd {
	return &fitCmd{
		SampleFlags: defaultSampleFlags(),
		FitX0:       2.5,
		FitK:        3,
		Out:         csvutil.Stdio,
		env:         e,
	}
}

func (c *fitCmd) Validate() error {
	return c.validate()
}

func (c *fitCmd) Handle() error {
	samples, err := c.generate()
	if err != nil {
		return err
	}

	fit := logistic.EvaluateFit(samples, logistic.Params{X0: c.FitX0, K: c.FitK}, c.Variant)
	c.log.Info("evaluated fit",
		zap.Float64("fit_x0", c.FitX0),
		zap.Float64("fit_k", c.FitK),
		zap.Int("rows", len(fit.Points)),
		zap.Float64("total_log_loss", fit.Total))

	if c.Plots != "" {
		if err := c.plot(samples, fit); err != nil {
			return err
		}
	}
	return csvutil.WriteFile(c.fs, c.Out, fit.Points)
}

func (c *fitCmd) plot(samples []logistic.Sample, fit logistic.Fit) error {
	if err := c.fs.MkdirAll(c.Plots, 0755); err != nil {
		return errors.Wrapf(err, "error creating %s", c.Plots)
	}

	curve := logistic.Curve(c.params(), c.Variant, logistic.DefaultDomain, logistic.DefaultPoints)
	data, err := render.DataAndCurve(samples, curve, c.Variant)
	if err != nil {
		return err
	}
	if err := render.SavePlot(c.fs, data, filepath.Join(c.Plots, "data.png")); err != nil {
		return err
	}

	lossCurve := logistic.LogLossCurve(fit.Params, fit.Variant, logistic.DefaultDomain, logistic.DefaultPoints)
	loss, err := render.LogLossFit(fit, lossCurve)
	if err != nil {
		return err
	}
	if err := render.SavePlot(c.fs, loss, filepath.Join(c.Plots, "fit.png")); err != nil {
		return err
	}
	c.log.Info("wrote plots", zap.String("dir", c.Plots))
	return nil
}

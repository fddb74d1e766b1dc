package render

import (
	"fmt"
	"image/color"

	"github.com/kiteco/logitdemo/kite-go/logistic"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var dashes = []vg.Length{vg.Points(5), vg.Points(5)}

// outcomeColor colours points and loss curves by outcome
func outcomeColor(y int) color.Color {
	return plotutil.Color(y)
}

func curveXYs(curve []logistic.CurvePoint) plotter.XYs {
	xys := make(plotter.XYs, len(curve))
	for i, c := range curve {
		xys[i].X = c.X
		xys[i].Y = c.PX
	}
	return xys
}

// outcomeScatter draws one circle per sample at (x, y(sample)), coloured by outcome
func outcomeScatter(p *plot.Plot, xs []float64, outcomes []int, y func(i int) float64) error {
	for _, outcome := range []int{0, 1} {
		var xys plotter.XYs
		for i, x := range xs {
			if outcomes[i] == outcome {
				xys = append(xys, plotter.XY{X: x, Y: y(i)})
			}
		}
		if len(xys) == 0 {
			continue
		}
		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		scatter.GlyphStyle.Radius = vg.Points(4)
		scatter.GlyphStyle.Color = outcomeColor(outcome)
		p.Add(scatter)
		p.Legend.Add(fmt.Sprintf("y=%d", outcome), scatter)
	}
	return nil
}

// SmoothCurve plots p(x) over the curve's grid
func SmoothCurve(curve []logistic.CurvePoint) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = "x"
	p.Y.Label.Text = "p(x)"

	line, err := plotter.NewLine(curveXYs(curve))
	if err != nil {
		return nil, err
	}
	p.Add(line)
	return p, nil
}

// DataAndCurve plots the samples' outcomes with the generating curve overlaid
func DataAndCurve(samples []logistic.Sample, curve []logistic.CurvePoint, v logistic.Variant) (*plot.Plot, error) {
	p, err := SmoothCurve(curve)
	if err != nil {
		return nil, err
	}
	p.Title.Text = v.Logit()
	p.Y.Label.Text = "y and p(x)"

	outcomes := make([]int, len(samples))
	for i, s := range samples {
		outcomes[i] = s.Y
	}
	err = outcomeScatter(p, logistic.Xs(samples), outcomes, func(i int) float64 {
		return float64(samples[i].Y)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// LogLossFit plots each sample's log-loss as a segment rising from its point on
// the x axis, over the dashed loss curves for y=0 and y=1
func LogLossFit(fit logistic.Fit, lossCurve []logistic.LogLossPoint) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Total log-loss: %v", fit.Total)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "log loss"

	for _, outcome := range []int{0, 1} {
		xys := make(plotter.XYs, len(lossCurve))
		for i, l := range lossCurve {
			xys[i].X = l.X
			xys[i].Y = l.LogLoss0
			if outcome == 1 {
				xys[i].Y = l.LogLoss1
			}
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		line.LineStyle.Color = outcomeColor(outcome)
		line.LineStyle.Dashes = dashes
		p.Add(line)
	}

	xs := make([]float64, len(fit.Points))
	outcomes := make([]int, len(fit.Points))
	for i, pt := range fit.Points {
		xs[i] = pt.X
		outcomes[i] = pt.Y
		segment, err := plotter.NewLine(plotter.XYs{{X: pt.X, Y: 0}, {X: pt.X, Y: pt.LogLoss}})
		if err != nil {
			// an infinite loss cannot be drawn; the point still is
			continue
		}
		segment.LineStyle.Color = outcomeColor(pt.Y)
		segment.LineStyle.Width = vg.Points(1)
		p.Add(segment)
	}
	err := outcomeScatter(p, xs, outcomes, func(int) float64 { return 0 })
	if err != nil {
		return nil, err
	}
	return p, nil
}

package render

import (
	"strconv"

	"github.com/kiteco/logitdemo/kite-go/cox"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// CostVsBeta stacks each event's negative log-likelihood per beta, so that the
// height of a column is the total cost at that beta
func CostVsBeta(contributions []cox.Contribution) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = "beta"
	p.Y.Label.Text = `negative log-likelihoods ("cost")`

	betas, _ := cox.Cost(contributions)
	column := make(map[float64]int, len(betas))
	labels := make([]string, len(betas))
	for i, b := range betas {
		column[b] = i
		labels[i] = strconv.FormatFloat(b, 'g', 3, 64)
	}

	var subjects []string
	values := make(map[string]plotter.Values)
	for _, c := range contributions {
		if _, ok := values[c.Subject]; !ok {
			subjects = append(subjects, c.Subject)
			values[c.Subject] = make(plotter.Values, len(betas))
		}
		values[c.Subject][column[c.Beta]] = c.NegLogLikelihood
	}

	var below *plotter.BarChart
	for i, subject := range subjects {
		bars, err := plotter.NewBarChart(values[subject], vg.Points(20))
		if err != nil {
			return nil, err
		}
		bars.Color = plotutil.Color(i)
		bars.LineStyle.Width = 0
		if below != nil {
			bars.StackOn(below)
		}
		p.Add(bars)
		p.Legend.Add(subject, bars)
		below = bars
	}
	p.Legend.Top = true
	if len(labels) > 0 {
		p.NominalX(labels...)
	}
	return p, nil
}

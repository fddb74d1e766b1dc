package render

import (
	"path/filepath"
	"strings"

	"github.com/kiteco/logitdemo/kite-golib/errors"
	"github.com/spf13/afero"
	chart "github.com/wcharczuk/go-chart"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// Plot dimensions used by SavePlot
var (
	PlotWidth  = 6 * vg.Inch
	PlotHeight = 4 * vg.Inch
)

// SavePlot renders p to path on fs; the format is taken from the extension
func SavePlot(fs afero.Fs, p *plot.Plot, path string) (err error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	wt, err := p.WriterTo(PlotWidth, PlotHeight, format)
	if err != nil {
		return errors.Wrapf(err, "cannot render %s", path)
	}

	f, err := fs.Create(path)
	if err != nil {
		return errors.Wrapf(err, "error creating %s", path)
	}
	defer errors.Defer(&err, f.Close)

	_, err = wt.WriteTo(f)
	return errors.WrapfOrNil(err, "error writing %s", path)
}

// SaveChart renders c as a PNG to path on fs
func SaveChart(fs afero.Fs, c chart.Chart, path string) (err error) {
	f, err := fs.Create(path)
	if err != nil {
		return errors.Wrapf(err, "error creating %s", path)
	}
	defer errors.Defer(&err, f.Close)

	return errors.WrapfOrNil(c.Render(chart.PNG, f), "error rendering %s", path)
}

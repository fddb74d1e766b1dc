package render

import (
	"math"
	"strconv"

	"github.com/kiteco/logitdemo/kite-go/cox"
	chart "github.com/wcharczuk/go-chart"
)

// Dimensions of the subject timeline charts, and so of the animation frames
const (
	ChartWidth  = 800
	ChartHeight = 400
)

const (
	segmentWidth = 8.0
	markerWidth  = 16.0
	markerHalf   = 0.06
)

// SubjectTimes draws one horizontal segment per subject from 0 to its recorded
// time, coloured by covariate, with a cap marking observed events
func SubjectTimes(subjects []cox.Subject) chart.Chart {
	return timeline(subjects, nil)
}

// AtRiskFrame is SubjectTimes for one step of the at-risk walkthrough: the
// event time is marked, subjects at risk get a black marker on that line, and
// the event's likelihood contribution is the title
func AtRiskFrame(subjects []cox.Subject, frame cox.Frame) chart.Chart {
	return timeline(subjects, &frame)
}

func timeline(subjects []cox.Subject, frame *cox.Frame) chart.Chart {
	maxTime := 0.0
	for _, s := range subjects {
		maxTime = math.Max(maxTime, s.Time)
	}
	xMax := math.Ceil(maxTime)
	if xMax == 0 {
		xMax = 1
	}

	var series []chart.Series
	var yTicks []chart.Tick
	for i, s := range subjects {
		y := float64(i + 1)
		yTicks = append(yTicks, chart.Tick{Value: y, Label: s.Subject})
		color := chart.GetAlternateColor(int(math.Abs(s.X)))

		series = append(series, chart.ContinuousSeries{
			Name:    s.Subject,
			XValues: []float64{0, s.Time},
			YValues: []float64{y, y},
			Style: chart.Style{
				Show:        true,
				StrokeColor: color,
				StrokeWidth: segmentWidth,
			},
		})
		if s.Observed() {
			series = append(series, marker(s.Time, y, chart.Style{
				Show:        true,
				StrokeColor: color,
				StrokeWidth: markerWidth,
			}))
		}
		if frame != nil && frame.IsAtRisk(s.Subject) {
			series = append(series, marker(frame.Event.Time, y, chart.Style{
				Show:        true,
				StrokeColor: chart.ColorBlack,
				StrokeWidth: markerWidth,
			}))
		}
	}

	var title string
	yMax := float64(len(subjects) + 1)
	if frame != nil {
		title = cox.LikelihoodText(subjects, frame.Event.Time, frame.Event.Subject)
		series = append(series,
			chart.ContinuousSeries{
				Name:    "event time",
				XValues: []float64{frame.Event.Time, frame.Event.Time},
				YValues: []float64{0, yMax},
				Style: chart.Style{
					Show:            true,
					StrokeColor:     chart.ColorAlternateGray,
					StrokeDashArray: []float64{5.0, 5.0},
				},
			},
		)
	}

	var xTicks []chart.Tick
	for t := 0.0; t <= xMax; t++ {
		xTicks = append(xTicks, chart.Tick{Value: t, Label: strconv.FormatFloat(t, 'f', -1, 64)})
	}

	return chart.Chart{
		Title:      title,
		TitleStyle: chart.Style{Show: title != ""},
		Width:      ChartWidth,
		Height:     ChartHeight,
		XAxis: chart.XAxis{
			Name:      "time",
			NameStyle: chart.StyleShow(),
			Style:     chart.StyleShow(),
			Range:     &chart.ContinuousRange{Min: 0, Max: xMax},
			Ticks:     xTicks,
		},
		YAxis: chart.YAxis{
			Name:      "subject",
			NameStyle: chart.StyleShow(),
			Style:     chart.StyleShow(),
			Range:     &chart.ContinuousRange{Min: 0, Max: yMax},
			Ticks:     yTicks,
		},
		Series: series,
	}
}

// marker is a short thick segment centred on (x, y)
func marker(x, y float64, style chart.Style) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		XValues: []float64{x - markerHalf, x + markerHalf},
		YValues: []float64{y, y},
		Style:   style,
	}
}

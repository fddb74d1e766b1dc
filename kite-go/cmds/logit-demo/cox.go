package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kiteco/logitdemo/kite-go/cox"
	"github.com/kiteco/logitdemo/kite-go/render"
	"github.com/kiteco/logitdemo/kite-golib/csvutil"
	"github.com/kiteco/logitdemo/kite-golib/errors"
	"github.com/montanaflynn/stats"
	"go.uber.org/zap"
)

// loadSubjects reads the subject table at path, or returns the demo table if
// path is empty
func loadSubjects(e env, path string) ([]cox.Subject, error) {
	if path == "" {
		return cox.DemoSubjects(), nil
	}
	var subjects []cox.Subject
	if err := csvutil.ReadFile(e.fs, path, &subjects); err != nil {
		return nil, err
	}
	for _, s := range subjects {
		if s.Event != 0 && s.Event != 1 {
			return nil, errors.Errorf("%s: subject %s has event %d, want 0 or 1", path, s.Subject, s.Event)
		}
	}
	e.log.Info("loaded subjects", zap.String("path", path), zap.Int("rows", len(subjects)))
	return subjects, nil
}

type riskSetCmd struct {
	Subjects string   `arg:"--subjects" help:"csv with subject,time,event,x columns; demo table if empty"`
	Time     *float64 `arg:"--time" help:"query time; every event time if absent"`
	Subject  string   `arg:"--subject" help:"with --time, log this subject's likelihood label"`
	Out      string   `arg:"--out" help:"csv output path, - for stdout"`
	Plot     string   `arg:"--plot" help:"also render the subject timelines to this png path"`

	env `arg:"-"`
}

func newRiskSetCmd(e env) *riskSetCmd {
	return &riskSetCmd{
		Out: csvutil.Stdio,
		env: e,
	}
}

func (c *riskSetCmd) Validate() error {
	if c.Subject != "" && c.Time == nil {
		return errors.New("--subject requires --time")
	}
	return nil
}

func (c *riskSetCmd) Handle() error {
	subjects, err := loadSubjects(c.env, c.Subjects)
	if err != nil {
		return err
	}

	if c.Plot != "" {
		if err := render.SaveChart(c.fs, render.SubjectTimes(subjects), c.Plot); err != nil {
			return err
		}
		c.log.Info("wrote plot", zap.String("path", c.Plot))
	}

	var entries []cox.AtRiskEntry
	if c.Time != nil {
		entries = cox.AtRisk(subjects, *c.Time)
		if c.Subject != "" {
			c.log.Info("likelihood contribution",
				zap.String("subject", c.Subject),
				zap.Float64("time", *c.Time),
				zap.String("label", cox.LikelihoodLabel(subjects, *c.Time, c.Subject)))
		}
	} else {
		entries = cox.AtRiskPerEventTime(subjects)
	}
	c.log.Info("computed risk sets", zap.Int("rows", len(entries)))
	return csvutil.WriteFile(c.fs, c.Out, entries)
}

type sweepCmd struct {
	Subjects string  `arg:"--subjects" help:"csv with subject,time,event,x columns; demo table if empty"`
	BetaMin  float64 `arg:"--betamin" help:"smallest beta"`
	BetaMax  float64 `arg:"--betamax" help:"largest beta"`
	Betas    int     `arg:"--betas" help:"number of beta values"`
	Out      string  `arg:"--out" help:"csv output path, - for stdout"`
	Plot     string  `arg:"--plot" help:"also render the stacked cost chart to this image path"`

	env `arg:"-"`
}

func newSweepCmd(e env) *sweepCmd {
	return &sweepCmd{
		BetaMin: -2,
		BetaMax: 2,
		Betas:   9,
		Out:     csvutil.Stdio,
		env:     e,
	}
}

func (c *sweepCmd) Validate() error {
	if c.Betas < 1 {
		return errors.Errorf("need at least one beta, got %d", c.Betas)
	}
	if c.Betas > 1 && c.BetaMin >= c.BetaMax {
		return errors.Errorf("--betamin %v must be below --betamax %v", c.BetaMin, c.BetaMax)
	}
	return nil
}

func (c *sweepCmd) Handle() error {
	subjects, err := loadSubjects(c.env, c.Subjects)
	if err != nil {
		return err
	}

	contributions := cox.Sweep(subjects, cox.Betas(c.BetaMin, c.BetaMax, c.Betas))
	betas, costs := cox.Cost(contributions)
	if len(costs) > 0 {
		best, _ := stats.Min(costs)
		for i := range costs {
			if costs[i] == best {
				c.log.Info("lowest cost", zap.Float64("beta", betas[i]), zap.Float64("cost", best))
				break
			}
		}
	}

	if c.Plot != "" {
		p, err := render.CostVsBeta(contributions)
		if err != nil {
			return err
		}
		if err := render.SavePlot(c.fs, p, c.Plot); err != nil {
			return err
		}
		c.log.Info("wrote plot", zap.String("path", c.Plot))
	}
	return csvutil.WriteFile(c.fs, c.Out, contributions)
}

type animateCmd struct {
	Subjects string        `arg:"--subjects" help:"csv with subject,time,event,x columns; demo table if empty"`
	Out      string        `arg:"--out" help:"avi output path"`
	Interval time.Duration `arg:"--interval" help:"how long each event is shown"`
	Delay    time.Duration `arg:"--delay" help:"extra time the last event is shown"`
	Quality  int           `arg:"--quality" help:"jpeg quality of each frame, 1-100"`
	Frames   string        `arg:"--frames" help:"also write each step as a png into this directory"`

	env `arg:"-"`
}

func newAnimateCmd(e env) *animateCmd {
	return &animateCmd{
		Out:      "risk.avi",
		Interval: render.DefaultAnimationOptions.Interval,
		Delay:    render.DefaultAnimationOptions.RepeatDelay,
		Quality:  render.DefaultAnimationOptions.Quality,
		env:      e,
	}
}

func (c *animateCmd) Validate() error {
	if c.Quality < 1 || c.Quality > 100 {
		return errors.Errorf("--quality must be within 1-100, got %d", c.Quality)
	}
	if c.Out == "" || c.Out == csvutil.Stdio {
		return errors.New("--out must name a file")
	}
	return nil
}

func (c *animateCmd) Handle() error {
	subjects, err := loadSubjects(c.env, c.Subjects)
	if err != nil {
		return err
	}

	if c.Frames != "" {
		if err := c.writeFrames(subjects); err != nil {
			return err
		}
	}

	// the AVI writer needs a real file
	if err := os.MkdirAll(filepath.Dir(c.Out), 0755); err != nil {
		return errors.Wrapf(err, "error creating directory for %s", c.Out)
	}
	steps, err := render.Animate(c.Out, subjects, render.AnimationOptions{
		Interval:    c.Interval,
		RepeatDelay: c.Delay,
		Quality:     c.Quality,
	})
	if err != nil {
		return err
	}
	c.log.Info("wrote animation", zap.String("path", c.Out), zap.Int("steps", steps))
	return nil
}

func (c *animateCmd) writeFrames(subjects []cox.Subject) error {
	if err := c.fs.MkdirAll(c.Frames, 0755); err != nil {
		return errors.Wrapf(err, "error creating %s", c.Frames)
	}
	for i, frame := range cox.Frames(subjects) {
		path := framePath(c.Frames, i, frame.Event.Subject)
		if err := render.SaveChart(c.fs, render.AtRiskFrame(subjects, frame), path); err != nil {
			return err
		}
	}
	return nil
}

// framePath names the png for step i so that a directory listing sorts by step
func framePath(root string, i int, subject string) string {
	return filepath.Join(root, fmt.Sprintf("frame-%03d-%s.png", i, subject))
}

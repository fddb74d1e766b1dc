package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/kiteco/logitdemo/kite-go/cox"
	"github.com/kiteco/logitdemo/kite-go/logistic"
	"github.com/kiteco/logitdemo/kite-golib/cmdline"
	"github.com/kiteco/logitdemo/kite-golib/csvutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type harness struct {
	env
	logs *observer.ObservedLogs
}

func newHarness() harness {
	core, logs := observer.New(zapcore.InfoLevel)
	return harness{
		env:  env{fs: afero.NewMemMapFs(), log: zap.New(core)},
		logs: logs,
	}
}

func (h harness) run(args ...string) error {
	var buf bytes.Buffer
	return cmdline.Dispatch("logit-demo", args, &buf, commands(h.env)...)
}

func (h harness) read(t *testing.T, path string, out interface{}) {
	require.NoError(t, csvutil.ReadFile(h.fs, path, out))
}

func TestSampleCommand(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.run("sample", "--out", "a.csv"))
	require.NoError(t, h.run("sample", "--out", "b.csv"))
	require.NoError(t, h.run("sample", "--seed", "2", "--out", "c.csv"))

	var a, b, c []logistic.Sample
	h.read(t, "a.csv", &a)
	h.read(t, "b.csv", &b)
	h.read(t, "c.csv", &c)
	require.Len(t, a, 40)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	expected, err := logistic.NewGenerator(logistic.NewSource(1), logistic.Params{X0: 2.5, K: 3}, logistic.Offset).Generate(40)
	require.NoError(t, err)
	for i := range expected {
		assert.InDelta(t, expected[i].X, a[i].X, 1e-12)
		assert.Equal(t, expected[i].Y, a[i].Y)
	}

	assert.Len(t, h.logs.FilterMessage("generated samples").All(), 3)
}

func TestSampleCommandClusters(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.run("sample", "--n0", "5", "--n1", "7", "--variant", "centered", "--out", "s.csv"))

	var samples []logistic.Sample
	h.read(t, "s.csv", &samples)
	require.Len(t, samples, 12)
	for _, s := range samples[:5] {
		assert.True(t, s.X <= logistic.LowCluster.Max)
	}
	for _, s := range samples[5:] {
		assert.True(t, s.X >= logistic.HighCluster.Min)
	}
}

func TestSampleCommandValidation(t *testing.T) {
	h := newHarness()
	assert.Error(t, h.run("sample", "--n=-1"))
	assert.Error(t, h.run("sample", "--variant", "probit"))
}

func TestCurveCommand(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.run("curve", "--out", "curve.csv", "--plot", "curve.png"))

	var curve []logistic.CurvePoint
	h.read(t, "curve.csv", &curve)
	require.Len(t, curve, 100)
	assert.Equal(t, 0.0, curve[0].X)
	assert.Equal(t, 5.0, curve[99].X)

	exists, err := afero.Exists(h.fs, "curve.png")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, h.run("curve", "--losses", "--points", "10", "--out", "losses.csv"))
	var losses []logistic.LogLossPoint
	h.read(t, "losses.csv", &losses)
	require.Len(t, losses, 10)
	assert.True(t, losses[0].LogLoss1 > losses[0].LogLoss0)

	assert.Error(t, h.run("curve", "--min", "5", "--max", "1"))
	assert.Error(t, h.run("curve", "--points", "1"))
}

func TestFitCommand(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.run("fit", "--fitx0", "2", "--fitk", "2.5", "--out", "fit.csv", "--plots", "plots"))

	var points []logistic.FitPoint
	h.read(t, "fit.csv", &points)
	require.Len(t, points, 40)

	var total float64
	for _, p := range points {
		assert.InDelta(t, logistic.Logistic(p.X, 2, 2.5), p.PX, 1e-12)
		total += p.LogLoss
	}

	entries := h.logs.FilterMessage("evaluated fit").All()
	require.Len(t, entries, 1)
	logged, ok := entries[0].ContextMap()["total_log_loss"].(float64)
	require.True(t, ok)
	assert.InDelta(t, total, logged, 1e-9)

	for _, name := range []string{"data.png", "fit.png"} {
		exists, err := afero.Exists(h.fs, filepath.Join("plots", name))
		require.NoError(t, err)
		assert.True(t, exists, name)
	}
}

func writeSubjects(t *testing.T, h harness, path string) {
	subjects := []cox.Subject{
		{Subject: "A", Time: 1, Event: 0},
		{Subject: "B", Time: 2, Event: 1},
		{Subject: "C", Time: 3, Event: 0},
		{Subject: "D", Time: 4, Event: 1},
	}
	require.NoError(t, csvutil.WriteFile(h.fs, path, subjects))
}

func TestRiskSetCommand(t *testing.T) {
	h := newHarness()
	writeSubjects(t, h, "subjects.csv")

	require.NoError(t, h.run("riskset", "--subjects", "subjects.csv", "--time", "2", "--subject", "B", "--out", "at2.csv"))
	var at2 []cox.AtRiskEntry
	h.read(t, "at2.csv", &at2)
	assert.Equal(t, []cox.AtRiskEntry{
		{Time: 2, Subject: "B"},
		{Time: 2, Subject: "C"},
		{Time: 2, Subject: "D"},
	}, at2)

	labels := h.logs.FilterMessage("likelihood contribution").All()
	require.Len(t, labels, 1)
	assert.Equal(t, `\frac{L_B}{L_B + L_C + L_D}`, labels[0].ContextMap()["label"])

	require.NoError(t, h.run("riskset", "--subjects", "subjects.csv", "--out", "all.csv", "--plot", "subjects.png"))
	var all []cox.AtRiskEntry
	h.read(t, "all.csv", &all)
	require.Len(t, all, 4)
	assert.Equal(t, 2.0, all[0].Time)
	assert.Equal(t, cox.AtRiskEntry{Time: 4, Subject: "D"}, all[3])

	exists, err := afero.Exists(h.fs, "subjects.png")
	require.NoError(t, err)
	assert.True(t, exists)

	assert.Error(t, h.run("riskset", "--subject", "B"))
	assert.Error(t, h.run("riskset", "--subjects", "missing.csv"))
}

func TestLoadSubjectsRejectsBadEvent(t *testing.T) {
	h := newHarness()
	require.NoError(t, csvutil.WriteFile(h.fs, "bad.csv", []cox.Subject{{Subject: "A", Time: 1, Event: 2}}))
	_, err := loadSubjects(h.env, "bad.csv")
	assert.Error(t, err)

	demo, err := loadSubjects(h.env, "")
	require.NoError(t, err)
	assert.Equal(t, cox.DemoSubjects(), demo)
}

func TestSweepCommand(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.run("sweep", "--out", "sweep.csv", "--plot", "cost.png"))

	var contributions []cox.Contribution
	h.read(t, "sweep.csv", &contributions)
	// 9 betas, 3 events in the demo table
	require.Len(t, contributions, 27)
	assert.Equal(t, -2.0, contributions[0].Beta)
	assert.Equal(t, "B", contributions[0].Subject)

	exists, err := afero.Exists(h.fs, "cost.png")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Len(t, h.logs.FilterMessage("lowest cost").All(), 1)

	assert.Error(t, h.run("sweep", "--betas", "0"))
}

func TestAnimateCommand(t *testing.T) {
	h := newHarness()
	out := filepath.Join(t.TempDir(), "video", "risk.avi")
	require.NoError(t, h.run("animate", "--out", out, "--interval", "500ms", "--delay", "0s", "--frames", "frames"))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.True(t, info.Size() > 0)

	frames, err := afero.ReadDir(h.fs, "frames")
	require.NoError(t, err)
	require.Len(t, frames, 3)
	assert.Equal(t, "frame-000-B.png", frames[0].Name())

	assert.Error(t, h.run("animate", "--quality", "0"))
}

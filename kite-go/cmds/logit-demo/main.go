package main

import (
	"github.com/kiteco/logitdemo/kite-golib/cmdline"
	"github.com/kiteco/logitdemo/kite-golib/logging"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// env carries what every command needs besides its flags
type env struct {
	fs  afero.Fs
	log *zap.Logger
}

func commands(e env) []cmdline.Command {
	return []cmdline.Command{
		{Name: "sample", Synopsis: "simulate outcomes from a logistic curve", Args: newSampleCmd(e)},
		{Name: "curve", Synopsis: "sample a logistic curve or its log-loss curves on a grid", Args: newCurveCmd(e)},
		{Name: "fit", Synopsis: "score simulated outcomes against a candidate curve", Args: newFitCmd(e)},
		{Name: "riskset", Synopsis: "list the subjects at risk at a time or at every event", Args: newRiskSetCmd(e)},
		{Name: "sweep", Synopsis: "partial likelihood contributions over a range of beta", Args: newSweepCmd(e)},
		{Name: "animate", Synopsis: "render the at-risk walkthrough as an MJPEG video", Args: newAnimateCmd(e)},
	}
}

func main() {
	e := env{
		fs:  afero.NewOsFs(),
		log: logging.Logger,
	}
	cmdline.MustDispatch(commands(e)...)
}

package render

import (
	"bytes"
	"image"
	"image/jpeg"
	_ "image/png" // decodes rendered chart frames
	"time"

	"github.com/icza/mjpeg"
	"github.com/kiteco/logitdemo/kite-go/cox"
	"github.com/kiteco/logitdemo/kite-golib/errors"
	chart "github.com/wcharczuk/go-chart"
)

// AnimationOptions controls the pacing of Animate
type AnimationOptions struct {
	// Interval is how long each frame is shown
	Interval time.Duration
	// RepeatDelay is how much longer the last frame is shown
	RepeatDelay time.Duration
	// Quality is the JPEG quality of each frame
	Quality int
}

// DefaultAnimationOptions shows each event for two seconds
var DefaultAnimationOptions = AnimationOptions{
	Interval:    2 * time.Second,
	RepeatDelay: 2 * time.Second,
	Quality:     90,
}

// animationFPS is the video frame rate; frames are repeated to fill Interval
const animationFPS = 4

// repeats returns how many video frames cover d, at least one
func repeats(d time.Duration) int {
	n := int(d.Seconds()*animationFPS + 0.5)
	if n < 1 {
		return 1
	}
	return n
}

// Animate writes an MJPEG AVI to path with one step per observed event, in
// ascending event time, each showing the event's risk set. It returns the
// number of steps written.
func Animate(path string, subjects []cox.Subject, opts AnimationOptions) (steps int, err error) {
	frames := cox.Frames(subjects)
	if len(frames) == 0 {
		return 0, errors.New("no observed events to animate")
	}

	aw, err := mjpeg.New(path, ChartWidth, ChartHeight, animationFPS)
	if err != nil {
		return 0, errors.Wrapf(err, "error creating %s", path)
	}
	defer errors.Defer(&err, aw.Close)

	for i, frame := range frames {
		data, err := encodeFrame(AtRiskFrame(subjects, frame), opts.Quality)
		if err != nil {
			return i, errors.Wrapf(err, "frame for subject %s", frame.Event.Subject)
		}

		n := repeats(opts.Interval)
		if i == len(frames)-1 && opts.RepeatDelay > 0 {
			n += repeats(opts.RepeatDelay)
		}
		for j := 0; j < n; j++ {
			if err := aw.AddFrame(data); err != nil {
				return i, errors.Wrapf(err, "error writing %s", path)
			}
		}
	}
	return len(frames), nil
}

// encodeFrame renders c and re-encodes it as JPEG, the only format MJPEG holds
func encodeFrame(c chart.Chart, quality int) ([]byte, error) {
	var rendered bytes.Buffer
	if err := c.Render(chart.PNG, &rendered); err != nil {
		return nil, err
	}
	img, _, err := image.Decode(&rendered)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

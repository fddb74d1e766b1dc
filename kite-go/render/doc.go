// Package render draws the tables produced by the logistic and cox packages:
// logistic figures with gonum/plot, subject timelines with go-chart, and the
// at-risk walkthrough as an MJPEG video.
package render

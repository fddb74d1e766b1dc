package cox

import (
	"fmt"
	"sort"
	"strings"
)

// Subject is one row of a survival table
type Subject struct {
	Subject string  `csv:"subject"`
	Time    float64 `csv:"time"`
	// Event is 1 if the event was observed at Time, 0 if the subject was censored
	Event int `csv:"event"`
	// X is the subject's covariate
	X float64 `csv:"x"`
}

// Observed reports whether the subject's event was observed
func (s Subject) Observed() bool {
	return s.Event == 1
}

// AtRiskEntry records that Subject was at risk at Time
type AtRiskEntry struct {
	Time    float64 `csv:"time"`
	Subject string  `csv:"subject"`
}

// AtRisk returns the subjects whose recorded time is at or after t, in input
// order. A subject whose event or censoring happens exactly at t is at risk.
// The result is empty, not nil, when nobody is at risk.
func AtRisk(subjects []Subject, t float64) []AtRiskEntry {
	entries := []AtRiskEntry{}
	for _, s := range subjects {
		if s.Time >= t {
			entries = append(entries, AtRiskEntry{Time: t, Subject: s.Subject})
		}
	}
	return entries
}

// LikelihoodLabel returns subject's partial likelihood contribution at t as a
// LaTeX fraction, e.g. \frac{L_B}{L_B + L_C + L_D}
func LikelihoodLabel(subjects []Subject, t float64, subject string) string {
	num, den := likelihoodTerms(subjects, t, subject)
	return `\frac{` + num + `}{` + den + `}`
}

// LikelihoodText is LikelihoodLabel as plain text, e.g. L_B / (L_B + L_C + L_D)
func LikelihoodText(subjects []Subject, t float64, subject string) string {
	num, den := likelihoodTerms(subjects, t, subject)
	return fmt.Sprintf("%s / (%s)", num, den)
}

func likelihoodTerms(subjects []Subject, t float64, subject string) (string, string) {
	atRisk := AtRisk(subjects, t)
	if len(atRisk) == 0 {
		return "L_" + subject, "0"
	}
	terms := make([]string, len(atRisk))
	for i, e := range atRisk {
		terms[i] = "L_" + e.Subject
	}
	return "L_" + subject, strings.Join(terms, " + ")
}

// Events returns the subjects with an observed event, ordered by time.
// Subjects sharing a time keep their input order.
func Events(subjects []Subject) []Subject {
	var events []Subject
	for _, s := range subjects {
		if s.Observed() {
			events = append(events, s)
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time < events[j].Time
	})
	return events
}

// AtRiskPerEventTime concatenates the risk sets at every observed event time,
// in ascending time order
func AtRiskPerEventTime(subjects []Subject) []AtRiskEntry {
	entries := []AtRiskEntry{}
	for _, e := range Events(subjects) {
		entries = append(entries, AtRisk(subjects, e.Time)...)
	}
	return entries
}

// Frame is one step of the at-risk walkthrough: an observed event and the
// subjects at risk when it happened
type Frame struct {
	Event  Subject
	AtRisk []AtRiskEntry
	// Label is the event's partial likelihood contribution, see LikelihoodLabel
	Label string
}

// Frames returns one frame per observed event, in ascending time order
func Frames(subjects []Subject) []Frame {
	events := Events(subjects)
	frames := make([]Frame, len(events))
	for i, e := range events {
		frames[i] = Frame{
			Event:  e,
			AtRisk: AtRisk(subjects, e.Time),
			Label:  LikelihoodLabel(subjects, e.Time, e.Subject),
		}
	}
	return frames
}

// IsAtRisk reports whether the frame's risk set contains subject
func (f Frame) IsAtRisk(subject string) bool {
	for _, e := range f.AtRisk {
		if e.Subject == subject {
			return true
		}
	}
	return false
}

// DemoSubjects is the table used when no subjects are supplied
func DemoSubjects() []Subject {
	return []Subject{
		{Subject: "A", Time: 1, Event: 0, X: 0},
		{Subject: "B", Time: 2, Event: 1, X: 1},
		{Subject: "C", Time: 3, Event: 0, X: 0},
		{Subject: "D", Time: 4, Event: 1, X: 1},
		{Subject: "E", Time: 5, Event: 1, X: 0},
		{Subject: "F", Time: 6, Event: 0, X: 1},
	}
}

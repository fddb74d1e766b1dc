package cox

import (
	"math"

	"github.com/kiteco/logitdemo/kite-golib/errors"
	"gonum.org/v1/gonum/floats"
)

// Contribution is one event's negative log partial likelihood at Beta
type Contribution struct {
	Beta             float64 `csv:"beta"`
	Subject          string  `csv:"subject"`
	NegLogLikelihood float64 `csv:"neg_log_likelihood"`
}

// NegLogPartialLikelihood returns -log(exp(beta*x_i) / sum_j exp(beta*x_j)) for
// the observed event of subject i, where j ranges over the subjects at risk at
// its event time.
func NegLogPartialLikelihood(subjects []Subject, subject string, beta float64) (float64, error) {
	s, ok := find(subjects, subject)
	if !ok {
		return 0, errors.Errorf("unknown subject %s", subject)
	}
	if !s.Observed() {
		return 0, errors.Errorf("subject %s is censored", subject)
	}
	return negLogPartialLikelihood(subjects, s, beta), nil
}

// PartialLikelihood returns exp(beta*x_i) / sum_j exp(beta*x_j), see NegLogPartialLikelihood
func PartialLikelihood(subjects []Subject, subject string, beta float64) (float64, error) {
	nll, err := NegLogPartialLikelihood(subjects, subject, beta)
	if err != nil {
		return 0, err
	}
	return math.Exp(-nll), nil
}

func negLogPartialLikelihood(subjects []Subject, s Subject, beta float64) float64 {
	var scores []float64
	for _, r := range subjects {
		if r.Time >= s.Time {
			scores = append(scores, beta*r.X)
		}
	}
	// s is in its own risk set, so scores is never empty
	return floats.LogSumExp(scores) - beta*s.X
}

// Sweep computes each event's contribution at every beta. Rows are ordered by
// beta in the given order, then by event time.
func Sweep(subjects []Subject, betas []float64) []Contribution {
	events := Events(subjects)
	contributions := make([]Contribution, 0, len(betas)*len(events))
	for _, beta := range betas {
		for _, e := range events {
			contributions = append(contributions, Contribution{
				Beta:             beta,
				Subject:          e.Subject,
				NegLogLikelihood: negLogPartialLikelihood(subjects, e, beta),
			})
		}
	}
	return contributions
}

// Cost sums the contributions at each beta, in first-seen order of beta
func Cost(contributions []Contribution) (betas []float64, costs []float64) {
	index := make(map[float64]int)
	for _, c := range contributions {
		i, ok := index[c.Beta]
		if !ok {
			i = len(betas)
			index[c.Beta] = i
			betas = append(betas, c.Beta)
			costs = append(costs, 0)
		}
		costs[i] += c.NegLogLikelihood
	}
	return betas, costs
}

// Betas returns n evenly spaced values from min to max inclusive
func Betas(min, max float64, n int) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{min}
	}
	betas := floats.Span(make([]float64, n), min, max)
	betas[n-1] = max
	return betas
}

func find(subjects []Subject, subject string) (Subject, bool) {
	for _, s := range subjects {
		if s.Subject == subject {
			return s, true
		}
	}
	return Subject{}, false
}

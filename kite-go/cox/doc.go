// Package cox computes the risk sets behind the Cox partial likelihood: which
// subjects are still at risk at each observed event time, the likelihood
// term each event contributes, and how that term varies with the
// coefficient beta of a single covariate.
package cox

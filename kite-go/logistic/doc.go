// Package logistic simulates binary outcome data from a logistic curve and
// scores candidate curves against it with log-loss.
//
// Two logit forms are supported and kept apart, see Variant. Random draws
// come from a caller-owned rand.Source passed to NewGenerator; the package
// holds no global random state.
package logistic

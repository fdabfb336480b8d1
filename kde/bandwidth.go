// SPDX-License-Identifier: MIT

package kde

import (
	"math"

	"github.com/katalvlaran/lvsci/mathx"
	"github.com/katalvlaran/lvsci/stats"
)

// Rule computes a bandwidth from a sample.
type Rule func(sample []float64) float64

// MinBandwidth is the floor applied by the reference rules, so a constant
// sample still yields a usable (very narrow) estimate.
const MinBandwidth = 1e-6

const (
	nrdFactor  = 1.06
	nrd0Factor = 0.9
	iqrToSigma = 1.34
)

// spread returns min(σ, IQR/1.34), falling back to σ when the IQR collapses.
func spread(sample []float64) float64 {
	sd := stats.StdDev(sample)
	iqr := stats.IQR(sample) / iqrToSigma
	if iqr > 0 && iqr < sd {
		return iqr
	}

	return sd
}

func reference(factor float64) Rule {
	return func(sample []float64) float64 {
		n := len(sample)
		if n == 0 {
			return math.NaN()
		}
		h := factor * spread(sample) * math.Pow(float64(n), -0.2)
		if !(h > MinBandwidth) { // NaN-safe
			return MinBandwidth
		}

		return h
	}
}

// NRD is the normal reference distribution rule 1.06·min(σ, IQR/1.34)·n^(-1/5).
func NRD(sample []float64) float64 { return reference(nrdFactor)(sample) }

// NRD0 is Silverman's rule of thumb 0.9·min(σ, IQR/1.34)·n^(-1/5).
func NRD0(sample []float64) float64 { return reference(nrd0Factor)(sample) }

// Fixed ignores the sample and always returns h.
func Fixed(h float64) Rule { return Rule(mathx.Constant(h)) }

// RuleByName resolves "nrd" or "nrd0".
// Errors: ErrUnknownRule.
func RuleByName(name string) (Rule, error) {
	switch name {
	case "nrd":
		return NRD, nil
	case "nrd0":
		return NRD0, nil
	}

	return nil, kdeErrorf("RuleByName", name, ErrUnknownRule)
}

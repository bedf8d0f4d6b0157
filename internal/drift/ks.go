package drift

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ksTwoSample computes the two-sample Kolmogorov-Smirnov statistic and its
// asymptotic p-value (with Stephens' small-sample correction) for the null
// hypothesis that both samples come from the same distribution.
func ksTwoSample(base, current []float64) (statistic, pValue float64, err error) {
	if len(base) == 0 || len(current) == 0 {
		return 0, 0, fmt.Errorf("need non-empty samples, got %d and %d", len(base), len(current))
	}

	b := append([]float64(nil), base...)
	c := append([]float64(nil), current...)
	sort.Float64s(b)
	sort.Float64s(c)

	// Both empirical CDFs are step functions jumping at sample points, so the
	// supremum of their difference is attained at one of them.
	d := 0.0
	for _, points := range [][]float64{b, c} {
		for _, q := range points {
			diff := math.Abs(stat.CDF(q, stat.Empirical, b, nil) - stat.CDF(q, stat.Empirical, c, nil))
			if diff > d {
				d = diff
			}
		}
	}

	n1 := float64(len(b))
	n2 := float64(len(c))
	en := math.Sqrt(n1 * n2 / (n1 + n2))
	lambda := (en + 0.12 + 0.11/en) * d

	return d, kolmogorovQ(lambda), nil
}

// kolmogorovQ evaluates the Kolmogorov survival function
// Q(lambda) = 2 * sum_{k>=1} (-1)^(k-1) * exp(-2 k^2 lambda^2).
// Returns 1 when the series fails to converge, which happens for vanishing
// lambda (identical samples).
func kolmogorovQ(lambda float64) float64 {
	if lambda <= 0 {
		return 1.0
	}

	a2 := -2.0 * lambda * lambda
	sign := 1.0
	sum := 0.0
	prevTerm := 0.0
	for k := 1; k <= 100; k++ {
		term := sign * math.Exp(a2*float64(k)*float64(k))
		sum += term
		abs := math.Abs(term)
		if abs <= 1e-12*prevTerm || abs <= 1e-16*sum {
			p := 2 * sum
			// Floating point can push the partial sum slightly outside [0,1].
			return math.Min(1.0, math.Max(0.0, p))
		}
		sign = -sign
		prevTerm = abs
	}
	return 1.0
}

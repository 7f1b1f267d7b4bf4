package services

import "math"

// Reverse flips a raw value on its scale so negatively worded items align
// with their dimension's intended direction
func Reverse(value, min, max float64) float64 {
	return (max + min) - value
}

// Normalize rescales a raw score onto 0-100 given its possible range. A
// degenerate range maps to the midpoint instead of dividing by zero.
func Normalize(raw, minPossible, maxPossible float64) float64 {
	if minPossible == maxPossible {
		return 50
	}
	return ((raw - minPossible) / (maxPossible - minPossible)) * 100
}

// Percentile ranks a normalized score against a normal distribution with
// mean 50 and standard deviation 15, returned as 0-100.
func Percentile(score float64) float64 {
	z := (score - 50) / 15
	return normalCDF(z) * 100
}

// normalCDF approximates the standard normal CDF with the Abramowitz-Stegun
// 26.2.17 rational polynomial (error < 7.5e-8). Negative z is mirrored so
// cdf(-z) is exactly 1-cdf(z).
func normalCDF(z float64) float64 {
	if z == 0 {
		return 0.5
	}
	if z < 0 {
		return 1 - normalCDF(-z)
	}
	t := 1 / (1 + 0.2316419*z)
	poly := t * (0.319381530 + t*(-0.356563782+t*(1.781477937+t*(-1.821255978+t*1.330274429))))
	return 1 - math.Exp(-z*z/2)/math.Sqrt(2*math.Pi)*poly
}

// round2 rounds to 2 decimal places
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package analytics

import "math"

// Round1 rounds to one decimal place, half away from zero.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func ptr[T any](v T) *T {
	return &v
}

// mean returns the arithmetic mean, or false for an empty slice
func mean(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), true
}

// roundedMean is mean rounded to one decimal, nil for an empty slice
func roundedMean(values []float64) *float64 {
	m, ok := mean(values)
	if !ok {
		return nil
	}
	return ptr(Round1(m))
}

// populationStdDev returns the population standard deviation, or false for
// an empty slice
func populationStdDev(values []float64) (float64, bool) {
	m, ok := mean(values)
	if !ok {
		return 0, false
	}
	var sq float64
	for _, v := range values {
		d := v - m
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(values))), true
}

// constant reports whether every value equals the first one. Summed squared
// deviations of such a series can come out a few ulps above zero.
func constant(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}

// Pearson computes the Pearson correlation coefficient of two equal-length
// series, rounded to two decimals. It returns nil when fewer than two pairs
// exist, the lengths differ, or either series has zero variance.
func Pearson(xs, ys []float64) *float64 {
	n := len(xs)
	if n != len(ys) || n < 2 {
		return nil
	}
	if constant(xs) || constant(ys) {
		return nil
	}

	meanX, _ := mean(xs)
	meanY, _ := mean(ys)

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	if varX == 0 || varY == 0 {
		return nil
	}

	r := cov / math.Sqrt(varX*varY)
	r = math.Max(-1, math.Min(1, r))

	return ptr(Round2(r))
}

// slope returns the least-squares slope of ys against xs
func slope(xs, ys []float64) float64 {
	n := float64(len(xs))
	var sumX, sumY, sumXY, sumXX float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumXX += xs[i] * xs[i]
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}

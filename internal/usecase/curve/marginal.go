package curve

const (
	// DefaultDiminishingThreshold is the marginal return below which spend is
	// annotated as past the point of diminishing returns. Illustrative only.
	DefaultDiminishingThreshold = 0.2

	// DefaultDiminishingMinSpend skips the flat start of sigmoidal curves
	DefaultDiminishingMinSpend = 100.0
)

// MarginalResponse returns the backward finite difference Δy/Δx at every sample
// The first sample has no predecessor and is reported as 0
func MarginalResponse(xs, ys []float64) []float64 {
	n := min(len(xs), len(ys))
	out := make([]float64, n)
	for i := 1; i < n; i++ {
		dx := xs[i] - xs[i-1]
		if dx == 0 {
			continue
		}
		out[i] = (ys[i] - ys[i-1]) / dx
	}
	return out
}

// DiminishingReturnsPoint finds the first input beyond minX whose marginal
// return drops below threshold
// found is false when the curve never drops below the threshold in the sampled range
func DiminishingReturnsPoint(xs, ys []float64, threshold, minX float64) (x float64, found bool) {
	marginal := MarginalResponse(xs, ys)
	for i := 1; i < len(marginal); i++ {
		if marginal[i] < threshold && xs[i] > minX {
			return xs[i], true
		}
	}
	return 0, false
}

package domain

import (
	"fmt"
	"math"
)

// SpendFamily tags adjustments made to spend inputs
const SpendFamily CurveFamily = "SPEND"

// AlignSpend returns spend resized to n periods
// Periods beyond the supplied spend are zero; extra spend is dropped
func AlignSpend(spend []float64, n int) []float64 {
	if n < 0 {
		n = 0
	}
	out := make([]float64, n)
	copy(out, spend)
	return out
}

// ValidateSpend ensures every spend value is finite, non-negative and within MaxMagnitude
func ValidateSpend(spend []float64) error {
	for i, v := range spend {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > MaxMagnitude {
			return &ParameterError{
				Family: SpendFamily,
				Field:  fmt.Sprintf("spend[%d]", i),
				Value:  v,
				Reason: fmt.Sprintf("must be finite and within [0, %g]", MaxMagnitude),
			}
		}
	}
	return nil
}

// ClampSpend returns a copy of spend with negative and NaN values replaced by 0
// and values above MaxMagnitude capped
func ClampSpend(spend []float64) ([]float64, []Adjustment) {
	var adj []Adjustment
	out := make([]float64, len(spend))
	b := bound{lo: 0, hi: MaxMagnitude, fallback: 0}
	for i, v := range spend {
		out[i] = b.clamp(SpendFamily, fmt.Sprintf("spend[%d]", i), v, &adj)
	}
	return out, adj
}

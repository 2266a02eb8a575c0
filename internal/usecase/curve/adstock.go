// Package curve holds the closed-form transfer functions behind every chart:
// adstock carryover kernels and spend saturation curves.
//
// Every function here is pure and total. None of them validate their
// parameters; callers are expected to validate or clamp at the boundary
// (see domain.CurveParameters) before evaluating a curve.
package curve

import "math"

// GeometricAdstock advances the geometric adstock recurrence by one period
// Logic: A_t = x_t + θ·A_{t-1}
// The first period uses prev = 0
func GeometricAdstock(x, prev, decay float64) float64 {
	return x + decay*prev
}

// GeometricAdstockSeries applies the recurrence over inputs in increasing time order
// Expanded form: A_t = x_t + θ·x_{t-1} + θ²·x_{t-2} + ...
func GeometricAdstockSeries(inputs []float64, decay float64) []float64 {
	out := make([]float64, len(inputs))
	prev := 0.0
	for t, x := range inputs {
		prev = GeometricAdstock(x, prev, decay)
		out[t] = prev
	}
	return out
}

// WeibullWeight is the Weibull survival kernel exp(-(lag/scale)^shape)
// The weight at lag 0 is always 1.
//   - shape < 1: front-loaded, drops quickly then lingers
//   - shape = 1: exponential, identical to geometric decay with θ = exp(-1/scale)
//   - shape > 1: delayed, holds near 1 before falling off around lag ≈ scale
func WeibullWeight(lag int, shape, scale float64) float64 {
	if lag <= 0 {
		return 1
	}
	return math.Exp(-math.Pow(float64(lag)/scale, shape))
}

// WeibullKernel returns the weights for lags 0..n-1
func WeibullKernel(n int, shape, scale float64) []float64 {
	if n < 0 {
		n = 0
	}
	w := make([]float64, n)
	for lag := range w {
		w[lag] = WeibullWeight(lag, shape, scale)
	}
	return w
}

// WeibullAdstock computes the adstock at period t from the input history x_0..x_t
// Logic: A_t = Σ_{lag=0}^{t} x_{t-lag} · exp(-(lag/λ)^k)
func WeibullAdstock(history []float64, shape, scale float64) float64 {
	t := len(history) - 1
	sum := 0.0
	for lag := 0; lag <= t; lag++ {
		sum += history[t-lag] * WeibullWeight(lag, shape, scale)
	}
	return sum
}

// WeibullAdstockSeries convolves inputs with the Weibull kernel, O(n²) in len(inputs)
func WeibullAdstockSeries(inputs []float64, shape, scale float64) []float64 {
	kernel := WeibullKernel(len(inputs), shape, scale)
	out := make([]float64, len(inputs))
	for t := range inputs {
		sum := 0.0
		for lag := 0; lag <= t; lag++ {
			sum += inputs[t-lag] * kernel[lag]
		}
		out[t] = sum
	}
	return out
}

// PeriodsToDecay returns the number of periods until a single impulse retains
// at most fraction of its original effect, i.e. the smallest n with decay^n <= fraction
// Returns 0 when decay is 0 and -1 when the effect never decays (decay >= 1)
func PeriodsToDecay(decay, fraction float64) int {
	if fraction >= 1 || decay <= 0 {
		return 0
	}
	if decay >= 1 || fraction <= 0 {
		return -1
	}
	n := math.Ceil(math.Log(fraction) / math.Log(decay))
	// Guard against log rounding putting an exact power one period late
	if n > 1 && math.Pow(decay, n-1) <= fraction {
		n--
	}
	return int(n)
}

// EquivalentDecay returns the geometric decay that matches a Weibull kernel with shape 1
func EquivalentDecay(scale float64) float64 {
	return math.Exp(-1 / scale)
}

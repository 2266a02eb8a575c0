package curve

import "math"

// HillSaturation calculates R = a·x^n / (c^n + x^n)
// Monotonically increasing in x for a > 0 and bounded above by a.
// Sigmoidal when n > 1, hyperbolic (Michaelis-Menten) when n = 1.
//
// Evaluated as a / (1 + (c/x)^n) so large exponents do not overflow x^n.
func HillSaturation(x, a, n, c float64) float64 {
	if x <= 0 {
		return 0
	}
	ratio := c / x
	if ratio == 1 {
		return a / 2
	}
	return a / (1 + math.Pow(ratio, n))
}

// LogisticSaturation calculates R = a / (1 + e^{-b(x-c)}), an S-curve centred at c
func LogisticSaturation(x, a, b, c float64) float64 {
	return a / (1 + math.Exp(-b*(x-c)))
}

// LogSaturation calculates R = a·ln(1 + b·x)
// Unbounded with immediately diminishing marginal returns; requires x >= 0 and b > 0
func LogSaturation(x, a, b float64) float64 {
	return a * math.Log1p(b*x)
}

// MichaelisMentenSaturation calculates R = a·x / (c + x), the Hill curve with n = 1
func MichaelisMentenSaturation(x, a, c float64) float64 {
	if x <= 0 {
		return 0
	}
	return a * x / (c + x)
}

// ExponentialSaturation calculates R = a·(1 - e^{-x/s})
func ExponentialSaturation(x, a, s float64) float64 {
	return a * -math.Expm1(-x/s)
}

// LinearReference is the unsaturated comparison line through (0, 0) and (xMax, a)
func LinearReference(x, xMax, a float64) float64 {
	if xMax == 0 {
		return 0
	}
	return x / xMax * a
}

// HillInflectionPoint returns the spend where the Hill curve switches from
// convex to concave: x* = c·((n-1)/(n+1))^{1/n}
// For n <= 1 the curve is concave everywhere and ok is false.
func HillInflectionPoint(n, c float64) (x float64, ok bool) {
	if n <= 1 {
		return 0, false
	}
	return c * math.Pow((n-1)/(n+1), 1/n), true
}

package curve

import (
	"fmt"

	"github.com/jonalee1/adstock-visualization/internal/domain"
)

// Evaluate computes one output per sample for the given parameter set
// Saturation families map each x in xs to a response.
// Adstock families ignore xs and transform spend, which must already be aligned with the domain.
func Evaluate(params domain.CurveParameters, xs, spend []float64) ([]float64, error) {
	switch p := params.(type) {
	case domain.GeometricParams:
		return GeometricAdstockSeries(spend, p.Decay), nil
	case domain.WeibullParams:
		return WeibullAdstockSeries(spend, p.Shape, p.Scale), nil
	case domain.HillParams:
		return mapInputs(xs, func(x float64) float64 { return HillSaturation(x, p.MaxResponse, p.Shape, p.HalfMax) }), nil
	case domain.LogisticParams:
		return mapInputs(xs, func(x float64) float64 { return LogisticSaturation(x, p.MaxResponse, p.Slope, p.Midpoint) }), nil
	case domain.LogParams:
		return mapInputs(xs, func(x float64) float64 { return LogSaturation(x, p.Scale, p.Rate) }), nil
	case domain.MichaelisMentenParams:
		return mapInputs(xs, func(x float64) float64 { return MichaelisMentenSaturation(x, p.MaxResponse, p.HalfMax) }), nil
	case domain.ExponentialParams:
		return mapInputs(xs, func(x float64) float64 { return ExponentialSaturation(x, p.MaxResponse, p.Scale) }), nil
	default:
		return nil, fmt.Errorf("unsupported curve parameters %T", params)
	}
}

func mapInputs(xs []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

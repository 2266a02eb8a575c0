package series

import (
	"github.com/jonalee1/adstock-visualization/internal/domain"
	"github.com/jonalee1/adstock-visualization/internal/usecase/curve"
)

// AnnotationKind names a display-only marker attached to a series
type AnnotationKind string

const (
	AnnotationInflection  AnnotationKind = "INFLECTION_POINT"
	AnnotationDiminishing AnnotationKind = "DIMINISHING_RETURNS"
	AnnotationDecay       AnnotationKind = "PERIODS_TO_DECAY"
)

// DecayFraction is the retained share used for the periods-to-decay annotation
const DecayFraction = 0.1

// Annotation is a display marker for one variant
// Present is false when the marker does not exist for the parameters
// (e.g. no inflection point for a Hill coefficient <= 1)
type Annotation struct {
	Variant string
	Kind    AnnotationKind
	Value   float64
	Present bool
}

// Annotate derives display markers from a computed series
// Logic:
//   - Hill variants: inflection point
//   - Geometric variants: periods until an impulse retains DecayFraction of its effect
//   - Saturation variants: diminishing-returns point when threshold > 0
func Annotate(s *domain.Series, threshold float64) []Annotation {
	var out []Annotation
	xs := s.Xs()
	for i, v := range s.Variants {
		switch p := v.Params.(type) {
		case domain.HillParams:
			x, ok := curve.HillInflectionPoint(p.Shape, p.HalfMax)
			out = append(out, Annotation{Variant: v.Label, Kind: AnnotationInflection, Value: x, Present: ok})
		case domain.GeometricParams:
			n := curve.PeriodsToDecay(p.Decay, DecayFraction)
			out = append(out, Annotation{Variant: v.Label, Kind: AnnotationDecay, Value: float64(n), Present: n >= 0})
		}

		if threshold > 0 && !v.Params.Family().IsAdstock() && len(xs) > 1 {
			x, found := curve.DiminishingReturnsPoint(xs, s.Column(i), threshold, curve.DefaultDiminishingMinSpend)
			out = append(out, Annotation{Variant: v.Label, Kind: AnnotationDiminishing, Value: x, Present: found})
		}
	}
	return out
}

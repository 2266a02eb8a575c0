package series

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonalee1/adstock-visualization/internal/domain"
	"github.com/jonalee1/adstock-visualization/internal/usecase/curve"
)

func TestAnnotate_HillInflection(t *testing.T) {
	service, _ := newTestService(PolicyClamp)

	result, err := service.ComputeSeries(Request{
		Domain: domain.NewSampleDomain(0, 1000, 10),
		Variants: []domain.Variant{
			{Label: "sigmoidal", Params: domain.HillParams{MaxResponse: 1000, Shape: 2, HalfMax: 500}},
			{Label: "hyperbolic", Params: domain.HillParams{MaxResponse: 1000, Shape: 1, HalfMax: 500}},
		},
	})
	require.NoError(t, err)

	annotations := Annotate(result, 0)
	require.Len(t, annotations, 2)

	assert.Equal(t, "sigmoidal", annotations[0].Variant)
	assert.Equal(t, AnnotationInflection, annotations[0].Kind)
	assert.True(t, annotations[0].Present)
	assert.Equal(t, 289.0, math.Round(annotations[0].Value))

	assert.Equal(t, "hyperbolic", annotations[1].Variant)
	assert.False(t, annotations[1].Present)
}

func TestAnnotate_PeriodsToDecay(t *testing.T) {
	service, _ := newTestService(PolicyClamp)

	result, err := service.ComputeSeries(Request{
		Domain: domain.PeriodDomain(20),
		Spend:  []float64{100},
		Variants: []domain.Variant{
			{Label: "θ=0.3", Params: domain.GeometricParams{Decay: 0.3}},
			{Label: "θ=0.6", Params: domain.GeometricParams{Decay: 0.6}},
			{Label: "θ=0.9", Params: domain.GeometricParams{Decay: 0.9}},
			{Label: "weibull", Params: domain.DefaultWeibullParams()},
		},
	})
	require.NoError(t, err)

	annotations := Annotate(result, curve.DefaultDiminishingThreshold)
	require.Len(t, annotations, 3, "weibull variants and adstock diminishing points are not annotated")
	assert.Equal(t, []float64{2, 5, 22}, []float64{annotations[0].Value, annotations[1].Value, annotations[2].Value})
	for _, a := range annotations {
		assert.Equal(t, AnnotationDecay, a.Kind)
		assert.True(t, a.Present)
	}
}

func TestAnnotate_DiminishingReturns(t *testing.T) {
	service, _ := newTestService(PolicyClamp)

	result, err := service.ComputeSeries(Request{
		Domain: domain.NewSampleDomain(0, 1000, 25),
		Variants: []domain.Variant{
			{Label: "s-shaped", Params: domain.HillParams{MaxResponse: 1000, Shape: 0.5, HalfMax: 300}},
		},
	})
	require.NoError(t, err)

	annotations := Annotate(result, curve.DefaultDiminishingThreshold)
	require.Len(t, annotations, 2)
	assert.Equal(t, AnnotationInflection, annotations[0].Kind)
	assert.False(t, annotations[0].Present)
	assert.Equal(t, AnnotationDiminishing, annotations[1].Kind)
	assert.True(t, annotations[1].Present)
	assert.Greater(t, annotations[1].Value, 100.0)
}

func TestAnnotate_EmptySeries(t *testing.T) {
	s := &domain.Series{
		Labels:   []string{"hill"},
		Points:   []domain.DataPoint{},
		Variants: []domain.Variant{{Label: "hill", Params: domain.DefaultHillParams()}},
	}
	annotations := Annotate(s, 0.2)
	require.Len(t, annotations, 1)
	assert.Equal(t, AnnotationInflection, annotations[0].Kind)
}

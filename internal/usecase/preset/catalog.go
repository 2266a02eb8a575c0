package preset

import (
	"github.com/jonalee1/adstock-visualization/internal/domain"
	"github.com/jonalee1/adstock-visualization/internal/usecase/series"
)

// Reference spend series used by the adstock demonstrations
var (
	// CampaignSpend ramps up to 250, back down, then stops
	CampaignSpend = []float64{100, 150, 200, 250, 200, 150, 100, 50}

	// DelayedCampaignSpend is CampaignSpend starting after four idle periods
	DelayedCampaignSpend = []float64{0, 0, 0, 0, 100, 150, 200, 250, 200, 150, 100, 50}

	// ImpulseSpend is a single burst of 100 in period 5
	ImpulseSpend = []float64{0, 0, 0, 0, 0, 100}
)

// Preset is a named, ready-to-compute parameter snapshot
type Preset struct {
	Name        string
	Description string
	Domain      domain.SampleDomain
	Spend       []float64
	Variants    []domain.Variant
	Marginal    bool
	LinearMax   float64
}

// Request builds an independent series request from the preset
func (p Preset) Request() series.Request {
	variants := make([]domain.Variant, len(p.Variants))
	copy(variants, p.Variants)
	var spend []float64
	if p.Spend != nil {
		spend = make([]float64, len(p.Spend))
		copy(spend, p.Spend)
	}
	return series.Request{
		Domain:    p.Domain,
		Spend:     spend,
		Variants:  variants,
		Marginal:  p.Marginal,
		LinearMax: p.LinearMax,
	}
}

// Catalog returns every built-in preset in display order
// A fresh slice is returned on each call so callers may modify it freely
func Catalog() []Preset {
	return []Preset{
		{
			Name:        "geometric-decay",
			Description: "Geometric adstock of a ramped campaign with low, medium and high decay",
			Domain:      domain.PeriodDomain(20),
			Spend:       CampaignSpend,
			Variants: []domain.Variant{
				{Label: "Adstock (θ=0.3)", Params: domain.GeometricParams{Decay: 0.3}},
				{Label: "Adstock (θ=0.6)", Params: domain.GeometricParams{Decay: 0.6}},
				{Label: "Adstock (θ=0.9)", Params: domain.GeometricParams{Decay: 0.9}},
			},
		},
		{
			Name:        "weibull-campaign",
			Description: "Geometric vs Weibull adstock over a campaign that starts in period 4",
			Domain:      domain.PeriodDomain(20),
			Spend:       DelayedCampaignSpend,
			Variants:    weibullVariants(),
		},
		{
			Name:        "weibull-impulse",
			Description: "Geometric vs Weibull response to a single burst of spend",
			Domain:      domain.PeriodDomain(16),
			Spend:       ImpulseSpend,
			Variants:    weibullVariants(),
		},
		{
			Name:        "saturation-models",
			Description: "Hill, logistic, log and Michaelis-Menten saturation side by side",
			Domain:      domain.NewSampleDomain(0, 100, 5),
			Variants: []domain.Variant{
				{Label: "Hill (Sigmoidal)", Params: domain.HillParams{MaxResponse: 100, Shape: 2, HalfMax: 50}},
				{Label: "Hill (Hyperbolic)", Params: domain.HillParams{MaxResponse: 100, Shape: 1, HalfMax: 30}},
				{Label: "Hill (Steep S-curve)", Params: domain.HillParams{MaxResponse: 100, Shape: 4, HalfMax: 70}},
				{Label: "Logistic", Params: domain.LogisticParams{MaxResponse: 100, Slope: 0.1, Midpoint: 50}},
				{Label: "Log", Params: domain.LogParams{Scale: 25, Rate: 0.1}},
				{Label: "Michaelis-Menten", Params: domain.MichaelisMentenParams{MaxResponse: 100, HalfMax: 20}},
			},
		},
		{
			Name:        "hill-explorer",
			Description: "Hill response with its marginal response and a linear reference",
			Domain:      domain.NewSampleDomain(0, 1000, 10),
			Variants: []domain.Variant{
				{Label: "Response (Hill)", Params: domain.DefaultHillParams()},
			},
			Marginal:  true,
			LinearMax: 1000,
		},
		{
			Name:        "saturation-intensity",
			Description: "S-shaped and exponential diminishing-returns curves at saturation intensity 0.5, with a linear reference",
			Domain:      domain.NewSampleDomain(0, 1000, 25),
			Variants: []domain.Variant{
				{Label: "S-shaped Saturation", Params: IntensityHill(0.5)},
				{Label: "Diminishing Returns", Params: IntensityExponential(0.5)},
			},
			LinearMax: IntensityMaxResponse,
		},
	}
}

// IntensityMaxResponse is the plateau of both intensity curves and the end of their linear reference
const IntensityMaxResponse = 1000

// IntensityHill is the S-shaped curve driven by a single saturation intensity in [0.1, 2]
func IntensityHill(intensity float64) domain.HillParams {
	return domain.HillParams{MaxResponse: IntensityMaxResponse, Shape: intensity, HalfMax: 300}
}

// IntensityExponential is the exponential diminishing-returns curve for a saturation intensity
func IntensityExponential(intensity float64) domain.ExponentialParams {
	return domain.ExponentialParams{MaxResponse: IntensityMaxResponse, Scale: 300 * (1 + intensity)}
}

func weibullVariants() []domain.Variant {
	return []domain.Variant{
		{Label: "Geometric (θ=0.7)", Params: domain.GeometricParams{Decay: 0.7}},
		{Label: "Weibull Fast Decay", Params: domain.WeibullParams{Shape: 0.7, Scale: 2}},
		{Label: "Weibull Exponential", Params: domain.WeibullParams{Shape: 1, Scale: 3}},
		{Label: "Weibull Delayed Peak", Params: domain.WeibullParams{Shape: 2, Scale: 3}},
		{Label: "Weibull Slow Build", Params: domain.WeibullParams{Shape: 3, Scale: 5}},
	}
}

package series

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jonalee1/adstock-visualization/internal/domain"
	"github.com/jonalee1/adstock-visualization/internal/usecase/curve"
)

// Policy decides what happens to out-of-domain parameters at the boundary
type Policy string

const (
	// PolicyClamp snaps invalid values to the nearest valid bound and continues
	PolicyClamp Policy = "clamp"
	// PolicyReject returns the *domain.ParameterError to the caller
	PolicyReject Policy = "reject"
)

// DefaultMaxSamples bounds the sample domain of one computation.
// It is also the ceiling for Options.MaxSamples: Weibull convolution is quadratic in the sample count.
const DefaultMaxSamples = 10000

// Request is an immutable snapshot of everything one computation needs
type Request struct {
	Domain domain.SampleDomain

	// Spend per period for adstock variants, aligned with Domain by index.
	// Missing periods are treated as zero spend.
	Spend []float64

	Variants []domain.Variant

	// Marginal appends a "<label> marginal" column for every saturation variant
	Marginal bool

	// LinearMax appends a straight reference line reaching LinearMax at the last sample.
	// Zero disables it.
	LinearMax float64
}

// Options configures a SeriesService
type Options struct {
	Policy     Policy
	MaxSamples int
}

// SeriesService turns parameter snapshots into data series for a renderer
type SeriesService struct {
	Logger     *zerolog.Logger
	Policy     Policy
	MaxSamples int
}

// NewSeriesService creates a new SeriesService instance
func NewSeriesService(logger *zerolog.Logger, opts Options) *SeriesService {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	if opts.Policy == "" {
		opts.Policy = PolicyClamp
	}
	if opts.MaxSamples <= 0 || opts.MaxSamples > DefaultMaxSamples {
		opts.MaxSamples = DefaultMaxSamples
	}
	return &SeriesService{
		Logger:     logger,
		Policy:     opts.Policy,
		MaxSamples: opts.MaxSamples,
	}
}

// ComputeSeries evaluates every variant over the sample domain
// Logic:
//  1. Check the domain and every parameter set at the boundary (clamp or reject per Policy)
//  2. Return an empty series for a degenerate domain
//  3. Align spend with the domain when any variant is an adstock family
//  4. Evaluate each variant and reject any non-finite output
//  5. Append the optional marginal and linear reference columns
func (s *SeriesService) ComputeSeries(req Request) (*domain.Series, error) {
	if len(req.Variants) == 0 {
		return nil, errors.New("request must have at least one variant")
	}

	sampleDomain, variants, adjustments, err := s.checkBoundary(req)
	if err != nil {
		return nil, err
	}

	labels := make([]string, len(variants))
	adstock := false
	for i, v := range variants {
		labels[i] = v.Label
		if v.Params.Family().IsAdstock() {
			adstock = true
		}
	}

	result := &domain.Series{
		Labels:      labels,
		Points:      []domain.DataPoint{},
		Variants:    variants,
		Adjustments: adjustments,
	}

	if sampleDomain.IsEmpty() {
		s.Logger.Debug().Strs("variants", labels).Msg("degenerate sample domain, returning empty series")
		return result, nil
	}

	xs := sampleDomain.Values()

	var spend []float64
	if adstock {
		aligned := domain.AlignSpend(req.Spend, len(xs))
		spend, err = s.checkSpend(aligned, result)
		if err != nil {
			return nil, err
		}
		result.Inputs = spend
	}

	columns := make([][]float64, 0, len(variants))
	for _, v := range variants {
		ys, err := curve.Evaluate(v.Params, xs, spend)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate %s: %w", v.Label, err)
		}
		if i := firstNonFinite(ys); i >= 0 {
			return nil, fmt.Errorf("%w: %s at x=%g", domain.ErrNonFiniteOutput, v.Label, xs[i])
		}
		columns = append(columns, ys)
	}

	if req.Marginal {
		for i, v := range variants {
			if v.Params.Family().IsAdstock() {
				continue
			}
			result.Labels = append(result.Labels, v.Label+" marginal")
			columns = append(columns, curve.MarginalResponse(xs, columns[i]))
		}
	}

	if req.LinearMax != 0 && isFinite(req.LinearMax) {
		last := xs[len(xs)-1]
		linear := make([]float64, len(xs))
		for i, x := range xs {
			linear[i] = curve.LinearReference(x, last, req.LinearMax)
		}
		result.Labels = append(result.Labels, "linear")
		columns = append(columns, linear)
	}

	for j := len(variants); j < len(columns); j++ {
		if i := firstNonFinite(columns[j]); i >= 0 {
			return nil, fmt.Errorf("%w: %s at x=%g", domain.ErrNonFiniteOutput, result.Labels[j], xs[i])
		}
	}

	result.Points = make([]domain.DataPoint, len(xs))
	for i, x := range xs {
		values := make([]float64, len(columns))
		for j, col := range columns {
			values[j] = col[i]
		}
		result.Points[i] = domain.DataPoint{X: x, Values: values}
	}

	s.Logger.Debug().
		Int("samples", len(xs)).
		Strs("columns", result.Labels).
		Int("adjustments", len(result.Adjustments)).
		Msg("computed series")

	return result, nil
}

// checkBoundary applies the policy to the domain and every variant
func (s *SeriesService) checkBoundary(req Request) (domain.SampleDomain, []domain.Variant, []domain.Adjustment, error) {
	var adjustments []domain.Adjustment
	sampleDomain := req.Domain

	switch s.Policy {
	case PolicyReject:
		if err := sampleDomain.Validate(s.MaxSamples); err != nil {
			return sampleDomain, nil, nil, fmt.Errorf("failed to validate sample domain: %w", err)
		}
	default:
		var adj []domain.Adjustment
		sampleDomain, adj = sampleDomain.Clamp(s.MaxSamples)
		adjustments = append(adjustments, s.logAdjustments("", adj)...)
	}

	variants := make([]domain.Variant, len(req.Variants))
	for i, v := range req.Variants {
		if v.Params == nil {
			return sampleDomain, nil, nil, fmt.Errorf("variant %d has no parameters", i)
		}
		label := v.Label
		if label == "" {
			label = strings.ToLower(string(v.Params.Family()))
		}

		params := v.Params
		switch s.Policy {
		case PolicyReject:
			if err := params.Validate(); err != nil {
				return sampleDomain, nil, nil, fmt.Errorf("failed to validate %s: %w", label, err)
			}
		default:
			var adj []domain.Adjustment
			params, adj = params.Clamp()
			adjustments = append(adjustments, s.logAdjustments(label, adj)...)
		}

		variants[i] = domain.Variant{Label: label, Params: params}
	}

	return sampleDomain, variants, adjustments, nil
}

func (s *SeriesService) checkSpend(spend []float64, result *domain.Series) ([]float64, error) {
	if s.Policy == PolicyReject {
		if err := domain.ValidateSpend(spend); err != nil {
			return nil, fmt.Errorf("failed to validate spend: %w", err)
		}
		return spend, nil
	}
	clamped, adj := domain.ClampSpend(spend)
	result.Adjustments = append(result.Adjustments, s.logAdjustments("spend", adj)...)
	return clamped, nil
}

func (s *SeriesService) logAdjustments(variant string, adj []domain.Adjustment) []domain.Adjustment {
	for _, a := range adj {
		s.Logger.Warn().
			Str("variant", variant).
			Str("family", string(a.Family)).
			Str("field", a.Field).
			Float64("from", a.From).
			Float64("to", a.To).
			Msg("clamped out-of-range parameter")
	}
	return adj
}

func firstNonFinite(values []float64) int {
	for i, v := range values {
		if !isFinite(v) {
			return i
		}
	}
	return -1
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

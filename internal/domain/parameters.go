package domain

import (
	"fmt"
	"math"
	"strings"
)

// CurveFamily represents the transfer function a parameter set belongs to
type CurveFamily string

const (
	CurveFamilyGeometric       CurveFamily = "GEOMETRIC"
	CurveFamilyWeibull         CurveFamily = "WEIBULL"
	CurveFamilyHill            CurveFamily = "HILL"
	CurveFamilyLogistic        CurveFamily = "LOGISTIC"
	CurveFamilyLog             CurveFamily = "LOG"
	CurveFamilyMichaelisMenten CurveFamily = "MICHAELIS_MENTEN"
	CurveFamilyExponential     CurveFamily = "EXPONENTIAL"
)

// IsAdstock reports whether the family transforms a spend series over time
// rather than mapping a single spend level to a response
func (f CurveFamily) IsAdstock() bool {
	return f == CurveFamilyGeometric || f == CurveFamilyWeibull
}

const (
	// MinPositive is the bound strictly positive parameters are clamped to
	MinPositive = 1e-6

	// MaxMagnitude bounds every otherwise unbounded parameter and input so
	// downstream arithmetic stays finite
	MaxMagnitude = 1e12

	// MaxShape bounds Hill and Weibull shape exponents
	MaxShape = 100.0
)

// CurveParameters is an immutable parameter snapshot for one curve family
type CurveParameters interface {
	// Family returns the curve family these parameters drive
	Family() CurveFamily

	// Validate returns a *ParameterError for the first out-of-domain field
	Validate() error

	// Clamp returns a copy with every field snapped into its valid range,
	// along with the adjustments that were made
	Clamp() (CurveParameters, []Adjustment)

	// Fields lists the parameter names and values in display order
	Fields() []Field

	// WithField returns a copy with the named field replaced.
	// The result is not validated.
	WithField(name string, value float64) (CurveParameters, error)
}

// Field is a named parameter value
type Field struct {
	Name  string
	Value float64
}

// Adjustment records a parameter that was changed by clamping
type Adjustment struct {
	Family CurveFamily
	Field  string
	From   float64
	To     float64
}

func (a Adjustment) String() string {
	return fmt.Sprintf("%s.%s: %g -> %g", strings.ToLower(string(a.Family)), a.Field, a.From, a.To)
}

// bound describes the valid interval of one field
type bound struct {
	lo, hi      float64
	loExclusive bool
	fallback    float64
}

func (b bound) check(family CurveFamily, field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ParameterError{Family: family, Field: field, Value: v, Reason: "must be finite"}
	}
	if b.loExclusive && v <= b.lo {
		return &ParameterError{Family: family, Field: field, Value: v, Reason: fmt.Sprintf("must be > %g", b.lo)}
	}
	if v < b.lo {
		return &ParameterError{Family: family, Field: field, Value: v, Reason: fmt.Sprintf("must be >= %g", b.lo)}
	}
	if v > b.hi {
		return &ParameterError{Family: family, Field: field, Value: v, Reason: fmt.Sprintf("must be <= %g", b.hi)}
	}
	return nil
}

func (b bound) clamp(family CurveFamily, field string, v float64, adj *[]Adjustment) float64 {
	out := v
	switch {
	case math.IsNaN(v):
		out = b.fallback
	case b.loExclusive && v <= b.lo:
		out = b.lo + MinPositive
	case v < b.lo:
		out = b.lo
	case v > b.hi:
		out = b.hi
	}
	if out != v {
		*adj = append(*adj, Adjustment{Family: family, Field: field, From: v, To: out})
	}
	return out
}

func unitBound(fallback float64) bound {
	return bound{lo: 0, hi: 1, fallback: fallback}
}

func positiveBound(fallback float64) bound {
	return bound{lo: 0, hi: MaxMagnitude, loExclusive: true, fallback: fallback}
}

func shapeBound(fallback float64) bound {
	return bound{lo: 0, hi: MaxShape, loExclusive: true, fallback: fallback}
}

// amplitudeBound keeps scale-like fields non-negative so every saturation curve is non-decreasing
func amplitudeBound(fallback float64) bound {
	return bound{lo: 0, hi: MaxMagnitude, fallback: fallback}
}

func magnitudeBound(fallback float64) bound {
	return bound{lo: -MaxMagnitude, hi: MaxMagnitude, fallback: fallback}
}

// fieldSpec ties a field name to its accessor pointer and bound
type fieldSpec struct {
	name  string
	ptr   *float64
	bound bound
}

func validateSpecs(family CurveFamily, specs []fieldSpec) error {
	for _, s := range specs {
		if err := s.bound.check(family, s.name, *s.ptr); err != nil {
			return err
		}
	}
	return nil
}

func clampSpecs(family CurveFamily, specs []fieldSpec) []Adjustment {
	var adj []Adjustment
	for _, s := range specs {
		*s.ptr = s.bound.clamp(family, s.name, *s.ptr, &adj)
	}
	return adj
}

func listSpecs(specs []fieldSpec) []Field {
	out := make([]Field, len(specs))
	for i, s := range specs {
		out[i] = Field{Name: s.name, Value: *s.ptr}
	}
	return out
}

func setSpec(family CurveFamily, specs []fieldSpec, name string, value float64) error {
	for _, s := range specs {
		if s.name == name {
			*s.ptr = value
			return nil
		}
	}
	return fmt.Errorf("%w: %s has no field %q", ErrUnknownField, family, name)
}

// GeometricParams drives geometric adstock: A_t = x_t + Decay·A_{t-1}
type GeometricParams struct {
	Decay float64 // retention fraction per period, [0, 1]
}

// DefaultGeometricParams returns the medium-decay setting
func DefaultGeometricParams() GeometricParams {
	return GeometricParams{Decay: 0.6}
}

func (p *GeometricParams) specs() []fieldSpec {
	d := DefaultGeometricParams()
	return []fieldSpec{{"decay", &p.Decay, unitBound(d.Decay)}}
}

func (p GeometricParams) Family() CurveFamily { return CurveFamilyGeometric }

func (p GeometricParams) Validate() error { return validateSpecs(p.Family(), p.specs()) }

func (p GeometricParams) Clamp() (CurveParameters, []Adjustment) {
	adj := clampSpecs(p.Family(), p.specs())
	return p, adj
}

func (p GeometricParams) Fields() []Field { return listSpecs(p.specs()) }

func (p GeometricParams) WithField(name string, value float64) (CurveParameters, error) {
	if err := setSpec(p.Family(), p.specs(), name, value); err != nil {
		return nil, err
	}
	return p, nil
}

// WeibullParams drives Weibull adstock with kernel exp(-(lag/Scale)^Shape)
type WeibullParams struct {
	Shape float64 // k > 0
	Scale float64 // λ > 0
}

// DefaultWeibullParams returns the kernel equivalent to exponential decay over three periods
func DefaultWeibullParams() WeibullParams {
	return WeibullParams{Shape: 1, Scale: 3}
}

func (p *WeibullParams) specs() []fieldSpec {
	d := DefaultWeibullParams()
	return []fieldSpec{
		{"shape", &p.Shape, shapeBound(d.Shape)},
		{"scale", &p.Scale, positiveBound(d.Scale)},
	}
}

func (p WeibullParams) Family() CurveFamily { return CurveFamilyWeibull }

func (p WeibullParams) Validate() error { return validateSpecs(p.Family(), p.specs()) }

func (p WeibullParams) Clamp() (CurveParameters, []Adjustment) {
	adj := clampSpecs(p.Family(), p.specs())
	return p, adj
}

func (p WeibullParams) Fields() []Field { return listSpecs(p.specs()) }

func (p WeibullParams) WithField(name string, value float64) (CurveParameters, error) {
	if err := setSpec(p.Family(), p.specs(), name, value); err != nil {
		return nil, err
	}
	return p, nil
}

// HillParams drives R = a·x^n / (c^n + x^n)
type HillParams struct {
	MaxResponse float64 // a
	Shape       float64 // n > 0, the Hill coefficient
	HalfMax     float64 // c > 0, spend producing a/2
}

// DefaultHillParams returns the sigmoidal setting used by the Hill explorer
func DefaultHillParams() HillParams {
	return HillParams{MaxResponse: 1000, Shape: 2, HalfMax: 500}
}

func (p *HillParams) specs() []fieldSpec {
	d := DefaultHillParams()
	return []fieldSpec{
		{"max_response", &p.MaxResponse, amplitudeBound(d.MaxResponse)},
		{"shape", &p.Shape, shapeBound(d.Shape)},
		{"half_max", &p.HalfMax, positiveBound(d.HalfMax)},
	}
}

func (p HillParams) Family() CurveFamily { return CurveFamilyHill }

func (p HillParams) Validate() error { return validateSpecs(p.Family(), p.specs()) }

func (p HillParams) Clamp() (CurveParameters, []Adjustment) {
	adj := clampSpecs(p.Family(), p.specs())
	return p, adj
}

func (p HillParams) Fields() []Field { return listSpecs(p.specs()) }

func (p HillParams) WithField(name string, value float64) (CurveParameters, error) {
	if err := setSpec(p.Family(), p.specs(), name, value); err != nil {
		return nil, err
	}
	return p, nil
}

// LogisticParams drives R = a / (1 + e^{-b(x-c)})
type LogisticParams struct {
	MaxResponse float64 // a
	Slope       float64 // b
	Midpoint    float64 // c
}

func DefaultLogisticParams() LogisticParams {
	return LogisticParams{MaxResponse: 100, Slope: 0.1, Midpoint: 50}
}

func (p *LogisticParams) specs() []fieldSpec {
	d := DefaultLogisticParams()
	return []fieldSpec{
		{"max_response", &p.MaxResponse, amplitudeBound(d.MaxResponse)},
		{"slope", &p.Slope, amplitudeBound(d.Slope)},
		{"midpoint", &p.Midpoint, magnitudeBound(d.Midpoint)},
	}
}

func (p LogisticParams) Family() CurveFamily { return CurveFamilyLogistic }

func (p LogisticParams) Validate() error { return validateSpecs(p.Family(), p.specs()) }

func (p LogisticParams) Clamp() (CurveParameters, []Adjustment) {
	adj := clampSpecs(p.Family(), p.specs())
	return p, adj
}

func (p LogisticParams) Fields() []Field { return listSpecs(p.specs()) }

func (p LogisticParams) WithField(name string, value float64) (CurveParameters, error) {
	if err := setSpec(p.Family(), p.specs(), name, value); err != nil {
		return nil, err
	}
	return p, nil
}

// LogParams drives R = a·ln(1 + b·x)
type LogParams struct {
	Scale float64 // a
	Rate  float64 // b > 0
}

func DefaultLogParams() LogParams {
	return LogParams{Scale: 25, Rate: 0.1}
}

func (p *LogParams) specs() []fieldSpec {
	d := DefaultLogParams()
	return []fieldSpec{
		{"scale", &p.Scale, amplitudeBound(d.Scale)},
		{"rate", &p.Rate, positiveBound(d.Rate)},
	}
}

func (p LogParams) Family() CurveFamily { return CurveFamilyLog }

func (p LogParams) Validate() error { return validateSpecs(p.Family(), p.specs()) }

func (p LogParams) Clamp() (CurveParameters, []Adjustment) {
	adj := clampSpecs(p.Family(), p.specs())
	return p, adj
}

func (p LogParams) Fields() []Field { return listSpecs(p.specs()) }

func (p LogParams) WithField(name string, value float64) (CurveParameters, error) {
	if err := setSpec(p.Family(), p.specs(), name, value); err != nil {
		return nil, err
	}
	return p, nil
}

// MichaelisMentenParams drives R = a·x / (c + x)
type MichaelisMentenParams struct {
	MaxResponse float64 // a
	HalfMax     float64 // c > 0
}

func DefaultMichaelisMentenParams() MichaelisMentenParams {
	return MichaelisMentenParams{MaxResponse: 100, HalfMax: 20}
}

func (p *MichaelisMentenParams) specs() []fieldSpec {
	d := DefaultMichaelisMentenParams()
	return []fieldSpec{
		{"max_response", &p.MaxResponse, amplitudeBound(d.MaxResponse)},
		{"half_max", &p.HalfMax, positiveBound(d.HalfMax)},
	}
}

func (p MichaelisMentenParams) Family() CurveFamily { return CurveFamilyMichaelisMenten }

func (p MichaelisMentenParams) Validate() error { return validateSpecs(p.Family(), p.specs()) }

func (p MichaelisMentenParams) Clamp() (CurveParameters, []Adjustment) {
	adj := clampSpecs(p.Family(), p.specs())
	return p, adj
}

func (p MichaelisMentenParams) Fields() []Field { return listSpecs(p.specs()) }

func (p MichaelisMentenParams) WithField(name string, value float64) (CurveParameters, error) {
	if err := setSpec(p.Family(), p.specs(), name, value); err != nil {
		return nil, err
	}
	return p, nil
}

// ExponentialParams drives R = a·(1 - e^{-x/s})
type ExponentialParams struct {
	MaxResponse float64 // a
	Scale       float64 // s > 0
}

// DefaultExponentialParams matches saturation intensity 0.5 over a 300 base scale
func DefaultExponentialParams() ExponentialParams {
	return ExponentialParams{MaxResponse: 1000, Scale: 450}
}

func (p *ExponentialParams) specs() []fieldSpec {
	d := DefaultExponentialParams()
	return []fieldSpec{
		{"max_response", &p.MaxResponse, amplitudeBound(d.MaxResponse)},
		{"scale", &p.Scale, positiveBound(d.Scale)},
	}
}

func (p ExponentialParams) Family() CurveFamily { return CurveFamilyExponential }

func (p ExponentialParams) Validate() error { return validateSpecs(p.Family(), p.specs()) }

func (p ExponentialParams) Clamp() (CurveParameters, []Adjustment) {
	adj := clampSpecs(p.Family(), p.specs())
	return p, adj
}

func (p ExponentialParams) Fields() []Field { return listSpecs(p.specs()) }

func (p ExponentialParams) WithField(name string, value float64) (CurveParameters, error) {
	if err := setSpec(p.Family(), p.specs(), name, value); err != nil {
		return nil, err
	}
	return p, nil
}

// DefaultParams returns the default parameter set for a family
func DefaultParams(family CurveFamily) (CurveParameters, error) {
	switch family {
	case CurveFamilyGeometric:
		return DefaultGeometricParams(), nil
	case CurveFamilyWeibull:
		return DefaultWeibullParams(), nil
	case CurveFamilyHill:
		return DefaultHillParams(), nil
	case CurveFamilyLogistic:
		return DefaultLogisticParams(), nil
	case CurveFamilyLog:
		return DefaultLogParams(), nil
	case CurveFamilyMichaelisMenten:
		return DefaultMichaelisMentenParams(), nil
	case CurveFamilyExponential:
		return DefaultExponentialParams(), nil
	default:
		return nil, fmt.Errorf("unknown curve family %q", family)
	}
}

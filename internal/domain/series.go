package domain

// Variant is one output column of a series: a display label and the parameters that produce it
type Variant struct {
	Label  string
	Params CurveParameters
}

// DataPoint is one input coordinate and the response of every variant at that input
// Values[i] belongs to Series.Labels[i]
type DataPoint struct {
	X      float64
	Values []float64
}

// Series is the output of one computation pass
// It is never mutated after being returned; a parameter change produces a new Series
type Series struct {
	Labels []string
	Points []DataPoint

	// Variants holds the effective parameters after boundary checks, in column order
	Variants []Variant

	// Inputs holds the spend per period when any variant is an adstock family,
	// aligned with Points. Nil for pure saturation series.
	Inputs []float64

	// Adjustments lists every parameter that was clamped at the boundary
	Adjustments []Adjustment
}

// Len returns the number of data points
func (s *Series) Len() int {
	return len(s.Points)
}

// Column returns the values of the variant at index i across all points
func (s *Series) Column(i int) []float64 {
	out := make([]float64, len(s.Points))
	for j, p := range s.Points {
		out[j] = p.Values[i]
	}
	return out
}

// Xs returns the input coordinates
func (s *Series) Xs() []float64 {
	out := make([]float64, len(s.Points))
	for j, p := range s.Points {
		out[j] = p.X
	}
	return out
}

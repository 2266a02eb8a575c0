package domain

import (
	"fmt"
	"math"
)

// DomainFamily tags adjustments made to the sample domain itself
const DomainFamily CurveFamily = "DOMAIN"

// SampleDomain is an evenly spaced sequence of non-negative inputs:
// Start, Start+Step, ..., Start+(Count-1)*Step
// For adstock families the values are period indexes, for saturation families spend levels
type SampleDomain struct {
	Start float64
	Step  float64
	Count int
}

// NewSampleDomain builds the domain covering [start, stop] inclusive.
// Non-finite bounds, a non-positive step or stop < start produce an empty domain.
func NewSampleDomain(start, stop, step float64) SampleDomain {
	d := SampleDomain{Start: start, Step: step}
	if !isFinite(start) || !isFinite(stop) || !isFinite(step) || step <= 0 || stop < start {
		return d
	}
	// Tolerance keeps stop inclusive when (stop-start)/step is a float just below an integer
	n := math.Floor((stop-start)/step+1e-9) + 1
	if n > math.MaxInt32 {
		n = math.MaxInt32
	}
	d.Count = int(n)
	return d
}

// PeriodDomain returns the period index domain 0, 1, ..., periods-1
func PeriodDomain(periods int) SampleDomain {
	if periods < 0 {
		periods = 0
	}
	return SampleDomain{Start: 0, Step: 1, Count: periods}
}

// IsEmpty reports whether the domain is degenerate
func (d SampleDomain) IsEmpty() bool {
	return d.Count <= 0
}

// At returns the i-th sample
func (d SampleDomain) At(i int) float64 {
	return d.Start + float64(i)*d.Step
}

// Values returns a fresh slice of every sample in order
func (d SampleDomain) Values() []float64 {
	if d.IsEmpty() {
		return []float64{}
	}
	out := make([]float64, d.Count)
	for i := range out {
		out[i] = d.At(i)
	}
	return out
}

// Validate ensures the domain can be sampled
// An empty domain is valid; callers check IsEmpty and produce an empty series
func (d SampleDomain) Validate(maxSamples int) error {
	if d.Count < 0 {
		return fmt.Errorf("%w: sample count cannot be negative", ErrDegenerateDomain)
	}
	if d.IsEmpty() {
		return nil
	}
	if !isFinite(d.Start) || d.Start < 0 {
		return fmt.Errorf("%w: domain start must be finite and non-negative", ErrInvalidParameter)
	}
	if !isFinite(d.Step) || d.Step < MinPositive {
		return fmt.Errorf("%w: domain step must be finite and >= %g", ErrInvalidParameter, MinPositive)
	}
	if d.Start > MaxMagnitude || d.Step > MaxMagnitude {
		return fmt.Errorf("%w: domain bounds exceed %g", ErrInvalidParameter, MaxMagnitude)
	}
	if maxSamples > 0 && d.Count > maxSamples {
		return fmt.Errorf("%w: domain has %d samples, limit is %d", ErrInvalidParameter, d.Count, maxSamples)
	}
	return nil
}

// Clamp snaps start and step into range and truncates the domain to maxSamples.
// Steps below MinPositive are raised to it so finite differences stay finite.
func (d SampleDomain) Clamp(maxSamples int) (SampleDomain, []Adjustment) {
	var adj []Adjustment
	if d.IsEmpty() {
		d.Count = 0
		return d, adj
	}
	d.Start = bound{lo: 0, hi: MaxMagnitude, fallback: 0}.clamp(DomainFamily, "start", d.Start, &adj)
	d.Step = bound{lo: MinPositive, hi: MaxMagnitude, fallback: 1}.clamp(DomainFamily, "step", d.Step, &adj)
	if maxSamples > 0 && d.Count > maxSamples {
		adj = append(adj, Adjustment{Family: DomainFamily, Field: "count", From: float64(d.Count), To: float64(maxSamples)})
		d.Count = maxSamples
	}
	return d, adj
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

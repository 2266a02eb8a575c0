package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSampleDomain(t *testing.T) {
	tests := []struct {
		name      string
		start     float64
		stop      float64
		step      float64
		wantCount int
	}{
		{"saturation comparison range", 0, 100, 5, 21},
		{"hill explorer range", 0, 1000, 10, 101},
		{"stop not on grid", 0, 99, 5, 20},
		{"fractional step stays inclusive", 0, 1, 0.1, 11},
		{"single point", 7, 7, 1, 1},
		{"stop before start", 10, 0, 1, 0},
		{"zero step", 0, 10, 0, 0},
		{"negative step", 0, 10, -1, 0},
		{"NaN bound", math.NaN(), 10, 1, 0},
		{"infinite stop", 0, math.Inf(1), 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewSampleDomain(tt.start, tt.stop, tt.step)
			assert.Equal(t, tt.wantCount, d.Count)
			assert.Equal(t, tt.wantCount == 0, d.IsEmpty())
		})
	}
}

func TestSampleDomain_Values(t *testing.T) {
	d := NewSampleDomain(0, 20, 5)
	assert.Equal(t, []float64{0, 5, 10, 15, 20}, d.Values())

	assert.Equal(t, []float64{0, 1, 2}, PeriodDomain(3).Values())

	empty := PeriodDomain(-4)
	assert.True(t, empty.IsEmpty())
	assert.NotNil(t, empty.Values())
	assert.Empty(t, empty.Values())
}

func TestSampleDomain_Validate(t *testing.T) {
	tests := []struct {
		name    string
		domain  SampleDomain
		max     int
		wantErr bool
	}{
		{"empty is valid", SampleDomain{}, 100, false},
		{"period domain", PeriodDomain(20), 100, false},
		{"negative start", SampleDomain{Start: -1, Step: 1, Count: 3}, 100, true},
		{"zero step", SampleDomain{Start: 0, Step: 0, Count: 3}, 100, true},
		{"NaN step", SampleDomain{Start: 0, Step: math.NaN(), Count: 3}, 100, true},
		{"step below smallest positive", SampleDomain{Start: 0, Step: 1e-300, Count: 3}, 100, true},
		{"too many samples", PeriodDomain(101), 100, true},
		{"no sample limit", PeriodDomain(100000), 0, false},
		{"negative count", SampleDomain{Start: 0, Step: 1, Count: -1}, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.domain.Validate(tt.max)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	assert.ErrorIs(t, SampleDomain{Step: 1, Count: -1}.Validate(100), ErrDegenerateDomain)

	err := PeriodDomain(101).Validate(100)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestSampleDomain_Clamp(t *testing.T) {
	d, adj := SampleDomain{Start: -5, Step: 0, Count: 500}.Clamp(100)

	assert.Equal(t, SampleDomain{Start: 0, Step: MinPositive, Count: 100}, d)
	require.Len(t, adj, 3)
	assert.Equal(t, "start", adj[0].Field)
	assert.Equal(t, "step", adj[1].Field)
	assert.Equal(t, "count", adj[2].Field)
	assert.Equal(t, DomainFamily, adj[0].Family)
	assert.NoError(t, d.Validate(100))
}

func TestSampleDomain_ClampEmpty(t *testing.T) {
	d, adj := SampleDomain{Start: math.NaN(), Step: -1, Count: 0}.Clamp(100)
	assert.True(t, d.IsEmpty())
	assert.Empty(t, adj)
}

func TestSeries_Columns(t *testing.T) {
	s := &Series{
		Labels: []string{"a", "b"},
		Points: []DataPoint{
			{X: 0, Values: []float64{1, 2}},
			{X: 5, Values: []float64{3, 4}},
		},
	}

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []float64{0, 5}, s.Xs())
	assert.Equal(t, []float64{1, 3}, s.Column(0))
	assert.Equal(t, []float64{2, 4}, s.Column(1))
}

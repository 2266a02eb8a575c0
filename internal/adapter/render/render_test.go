package render

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonalee1/adstock-visualization/internal/domain"
	"github.com/jonalee1/adstock-visualization/internal/usecase/series"
)

func hillSeries() *domain.Series {
	return &domain.Series{
		Labels: []string{"hill"},
		Points: []domain.DataPoint{
			{X: 0, Values: []float64{0}},
			{X: 500, Values: []float64{500}},
			{X: 1000, Values: []float64{800}},
		},
		Variants: []domain.Variant{{Label: "hill", Params: domain.DefaultHillParams()}},
	}
}

func adstockSeries() *domain.Series {
	return &domain.Series{
		Labels: []string{"adstock"},
		Points: []domain.DataPoint{
			{X: 0, Values: []float64{100}},
			{X: 1, Values: []float64{60}},
		},
		Variants: []domain.Variant{{Label: "adstock", Params: domain.GeometricParams{Decay: 0.6}}},
		Inputs:   []float64{100, 0},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatAuto, false},
		{"auto", FormatAuto, false},
		{"TABLE", FormatTable, false},
		{" csv ", FormatCSV, false},
		{"json", FormatJSON, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, FormatCSV, Resolve(FormatAuto, &buf), "non-terminal writers get CSV")
	assert.Equal(t, FormatJSON, Resolve(FormatJSON, &buf))
	assert.Equal(t, FormatTable, Resolve(FormatTable, &buf))
}

func TestRenderer_CSV(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, FormatCSV, 2)

	require.NoError(t, r.Render(Document{Series: hillSeries()}))
	assert.Equal(t, "x,hill\n0.00,0.00\n500.00,500.00\n1000.00,800.00\n", buf.String())
}

func TestRenderer_CSVAdstockIncludesSpend(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, FormatCSV, 1)

	require.NoError(t, r.Render(Document{Series: adstockSeries()}))
	assert.Equal(t, "period,spend,adstock\n0,100.0,100.0\n1,0.0,60.0\n", buf.String())
}

func TestRenderer_CSVEmptySeries(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, FormatCSV, 2)

	s := &domain.Series{Labels: []string{"hill"}, Points: []domain.DataPoint{}}
	require.NoError(t, r.Render(Document{Series: s}))
	assert.Equal(t, "x,hill\n", buf.String())
}

func TestRenderer_Table(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, FormatTable, 2)

	s := hillSeries()
	s.Adjustments = []domain.Adjustment{{Family: domain.CurveFamilyHill, Field: "half_max", From: 0, To: domain.MinPositive}}

	doc := Document{
		Title:  "Hill explorer",
		Series: s,
		Annotations: []series.Annotation{
			{Variant: "hill", Kind: series.AnnotationInflection, Value: 288.6751, Present: true},
			{Variant: "hill", Kind: series.AnnotationDiminishing, Present: false},
		},
	}
	require.NoError(t, r.Render(doc))

	out := buf.String()
	assert.Contains(t, out, "Hill explorer")
	assert.Contains(t, out, "hill")
	assert.Contains(t, out, "500.00")
	assert.Contains(t, out, "800.00")
	assert.Contains(t, out, "inflection point at x = 288.68")
	assert.Contains(t, out, "no diminishing-returns point in range")
	assert.Contains(t, out, "clamped hill.half_max: 0 -> 1e-06")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// title, blank, header, rule, three rows, blank, two annotations, blank, one adjustment
	assert.Len(t, lines, 12)
}

func TestRenderer_TableEmptySeries(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, FormatTable, 2)

	s := &domain.Series{Labels: []string{"hill"}, Points: []domain.DataPoint{}}
	require.NoError(t, r.Render(Document{Series: s}))
	assert.Contains(t, buf.String(), "(empty sample domain)")
}

func TestRenderer_JSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, FormatJSON, 1)

	s := adstockSeries()
	s.Points[1].Values[0] = 60.04
	s.Adjustments = []domain.Adjustment{{Family: domain.CurveFamilyGeometric, Field: "decay", From: math.NaN(), To: 0.6}}

	doc := Document{
		Series: s,
		Annotations: []series.Annotation{
			{Variant: "adstock", Kind: series.AnnotationDecay, Value: 5, Present: true},
		},
	}
	require.NoError(t, r.Render(doc))

	var decoded struct {
		Labels []string `json:"labels"`
		Points []struct {
			X      float64   `json:"x"`
			Values []float64 `json:"values"`
		} `json:"points"`
		Inputs   []float64 `json:"inputs"`
		Variants []struct {
			Label  string             `json:"label"`
			Family string             `json:"family"`
			Params map[string]float64 `json:"params"`
		} `json:"variants"`
		Annotations []struct {
			Kind    string  `json:"kind"`
			Value   float64 `json:"value"`
			Present bool    `json:"present"`
		} `json:"annotations"`
		Adjustments []struct {
			Field string `json:"field"`
			From  string `json:"from"`
		} `json:"adjustments"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, []string{"adstock"}, decoded.Labels)
	require.Len(t, decoded.Points, 2)
	assert.Equal(t, 60.0, decoded.Points[1].Values[0])
	assert.Equal(t, []float64{100, 0}, decoded.Inputs)
	require.Len(t, decoded.Variants, 1)
	assert.Equal(t, "GEOMETRIC", decoded.Variants[0].Family)
	assert.Equal(t, 0.6, decoded.Variants[0].Params["decay"])
	require.Len(t, decoded.Annotations, 1)
	assert.Equal(t, "PERIODS_TO_DECAY", decoded.Annotations[0].Kind)
	require.Len(t, decoded.Adjustments, 1)
	assert.Equal(t, "NaN", decoded.Adjustments[0].From)
}

func TestRenderer_Rounding(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, FormatCSV, 2)
	assert.Equal(t, "2.35", r.fixed(2.345))
	assert.Equal(t, "-2.35", r.fixed(-2.345))
	assert.Equal(t, "0.00", r.fixed(0.001))

	r = NewRenderer(&bytes.Buffer{}, FormatCSV, 0)
	assert.Equal(t, "3", r.fixed(2.5))
}

func TestRenderer_NegativePrecisionUsesDefault(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, FormatCSV, -1)
	assert.Equal(t, DefaultPrecision, r.Precision)
}

func TestRenderer_NilSeries(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, FormatCSV, 2)
	assert.Error(t, r.Render(Document{}))
}

func TestDescribeAnnotation(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, FormatTable, 2)

	tests := []struct {
		name string
		in   series.Annotation
		want string
	}{
		{
			name: "no inflection",
			in:   series.Annotation{Variant: "h", Kind: series.AnnotationInflection},
			want: "h: no inflection point (shape <= 1)",
		},
		{
			name: "diminishing",
			in:   series.Annotation{Variant: "h", Kind: series.AnnotationDiminishing, Value: 325, Present: true},
			want: "h: diminishing returns from x = 325.00",
		},
		{
			name: "decay",
			in:   series.Annotation{Variant: "g", Kind: series.AnnotationDecay, Value: 22, Present: true},
			want: "g: decays to 10% after 22 periods",
		},
		{
			name: "never decays",
			in:   series.Annotation{Variant: "g", Kind: series.AnnotationDecay, Value: -1},
			want: "g: effect never decays to 10%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.describeAnnotation(tt.in))
		})
	}
}

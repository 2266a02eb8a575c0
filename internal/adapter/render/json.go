package render

import (
	"encoding/json"
	"strconv"

	"github.com/jonalee1/adstock-visualization/internal/domain"
)

type jsonDocument struct {
	Title       string           `json:"title,omitempty"`
	Labels      []string         `json:"labels"`
	Points      []jsonPoint      `json:"points"`
	Inputs      []float64        `json:"inputs,omitempty"`
	Variants    []jsonVariant    `json:"variants"`
	Annotations []jsonAnnotation `json:"annotations,omitempty"`
	Adjustments []jsonAdjustment `json:"adjustments,omitempty"`
}

type jsonPoint struct {
	X      float64   `json:"x"`
	Values []float64 `json:"values"`
}

type jsonVariant struct {
	Label  string             `json:"label"`
	Family domain.CurveFamily `json:"family"`
	Params map[string]float64 `json:"params"`
}

type jsonAnnotation struct {
	Variant string  `json:"variant"`
	Kind    string  `json:"kind"`
	Value   float64 `json:"value"`
	Present bool    `json:"present"`
}

// From is a string because the rejected value may be NaN or infinite
type jsonAdjustment struct {
	Family domain.CurveFamily `json:"family"`
	Field  string             `json:"field"`
	From   string             `json:"from"`
	To     float64            `json:"to"`
}

func (r *Renderer) writeJSON(doc Document) error {
	s := doc.Series
	out := jsonDocument{
		Title:  doc.Title,
		Labels: s.Labels,
		Points: make([]jsonPoint, len(s.Points)),
	}

	for i, p := range s.Points {
		values := make([]float64, len(p.Values))
		for j, v := range p.Values {
			values[j] = r.round(v).InexactFloat64()
		}
		out.Points[i] = jsonPoint{X: r.round(p.X).InexactFloat64(), Values: values}
	}

	if s.Inputs != nil {
		out.Inputs = make([]float64, len(s.Inputs))
		for i, v := range s.Inputs {
			out.Inputs[i] = r.round(v).InexactFloat64()
		}
	}

	out.Variants = make([]jsonVariant, len(s.Variants))
	for i, v := range s.Variants {
		params := make(map[string]float64)
		for _, f := range v.Params.Fields() {
			params[f.Name] = f.Value
		}
		out.Variants[i] = jsonVariant{Label: v.Label, Family: v.Params.Family(), Params: params}
	}

	for _, a := range doc.Annotations {
		out.Annotations = append(out.Annotations, jsonAnnotation{
			Variant: a.Variant,
			Kind:    string(a.Kind),
			Value:   r.round(a.Value).InexactFloat64(),
			Present: a.Present,
		})
	}

	for _, adj := range s.Adjustments {
		out.Adjustments = append(out.Adjustments, jsonAdjustment{
			Family: adj.Family,
			Field:  adj.Field,
			From:   strconv.FormatFloat(adj.From, 'g', -1, 64),
			To:     adj.To,
		})
	}

	enc := json.NewEncoder(r.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

package cli

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jonalee1/adstock-visualization/internal/domain"
	"github.com/jonalee1/adstock-visualization/internal/usecase/preset"
)

var errInvalidInput = errors.New("invalid input")

// parseSpend reads a comma-separated spend list such as "100,150,200"
// Empty input yields nil.
func parseSpend(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, part := range parts {
		d, err := decimal.NewFromString(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: spend[%d] %q is not a number", errInvalidInput, i, part)
		}
		out[i] = d.InexactFloat64()
	}
	return out, nil
}

// parseValue reads one parameter value; NaN and Inf are accepted so the boundary policy can act on them
func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", errInvalidInput, s)
	}
	return v, nil
}

// applyFields sets every name=value pair on params, in name order so errors are stable
func applyFields(params domain.CurveParameters, fields map[string]string) (domain.CurveParameters, error) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		v, err := parseValue(fields[name])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		params, err = params.WithField(strings.TrimSpace(name), v)
		if err != nil {
			return nil, err
		}
	}
	return params, nil
}

// parseCurve reads a curve spec of the form "family[:field=value,...]", e.g.
// "hill:max_response=100,shape=2,half_max=50". Unset fields keep the family default.
func parseCurve(spec string) (domain.CurveParameters, error) {
	name, rest, _ := strings.Cut(spec, ":")

	family, err := preset.ParseFamily(name)
	if err != nil {
		return nil, err
	}
	params, err := domain.DefaultParams(family)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]string)
	if strings.TrimSpace(rest) != "" {
		for _, pair := range strings.Split(rest, ",") {
			k, v, ok := strings.Cut(pair, "=")
			if !ok {
				return nil, fmt.Errorf("%w: %q in curve %q is not field=value", errInvalidInput, pair, spec)
			}
			fields[strings.TrimSpace(k)] = v
		}
	}
	return applyFields(params, fields)
}

// curveLabel names a variant after its family and field values, e.g. "hill max_response=100 shape=2 half_max=50"
func curveLabel(params domain.CurveParameters) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(string(params.Family())))
	for _, f := range params.Fields() {
		fmt.Fprintf(&b, " %s=%s", f.Name, formatFloat(f.Value))
	}
	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

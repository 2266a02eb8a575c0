package preset

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/jonalee1/adstock-visualization/internal/domain"
)

// ErrNotFound is returned when a name matches no preset or family
var ErrNotFound = errors.New("not found")

// maxTypoDistance is the edit distance still offered as a suggestion
const maxTypoDistance = 3

var familyNames = map[string]domain.CurveFamily{
	"geometric":        domain.CurveFamilyGeometric,
	"weibull":          domain.CurveFamilyWeibull,
	"hill":             domain.CurveFamilyHill,
	"logistic":         domain.CurveFamilyLogistic,
	"log":              domain.CurveFamilyLog,
	"michaelis-menten": domain.CurveFamilyMichaelisMenten,
	"exponential":      domain.CurveFamilyExponential,
}

// Find returns the preset with the given name (case-insensitive)
func Find(name string) (Preset, error) {
	catalog := Catalog()
	names := make([]string, len(catalog))
	for i, p := range catalog {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
		names[i] = p.Name
	}
	return Preset{}, notFound("preset", name, names)
}

// ParseFamily maps a user-facing family name such as "michaelis-menten" to its CurveFamily
func ParseFamily(name string) (domain.CurveFamily, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "_", "-")
	if f, ok := familyNames[key]; ok {
		return f, nil
	}
	return "", notFound("curve family", name, FamilyNames())
}

// FamilyNames lists the user-facing family names in sorted order
func FamilyNames() []string {
	names := make([]string, 0, len(familyNames))
	for n := range familyNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Suggest ranks candidates that look like name
// Subsequence matches come first (closest first), then near-miss typos
func Suggest(name string, candidates []string) []string {
	ranks := fuzzy.RankFindNormalizedFold(name, candidates)
	sort.Sort(ranks)

	seen := make(map[string]bool)
	var out []string
	for _, r := range ranks {
		out = append(out, r.Target)
		seen[r.Target] = true
	}

	lower := strings.ToLower(name)
	for _, c := range candidates {
		if seen[c] {
			continue
		}
		if fuzzy.LevenshteinDistance(lower, strings.ToLower(c)) <= maxTypoDistance {
			out = append(out, c)
		}
	}
	return out
}

func notFound(kind, name string, candidates []string) error {
	suggestions := Suggest(name, candidates)
	if len(suggestions) == 0 {
		return fmt.Errorf("%s %q %w", kind, name, ErrNotFound)
	}
	return fmt.Errorf("%s %q %w, did you mean %s?", kind, name, ErrNotFound, strings.Join(suggestions, ", "))
}

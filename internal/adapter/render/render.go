// Package render writes computed series as a terminal table, CSV or JSON.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jonalee1/adstock-visualization/internal/domain"
	"github.com/jonalee1/adstock-visualization/internal/usecase/series"
)

// Format selects the output encoding
type Format string

const (
	FormatAuto  Format = "auto"
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
)

// DefaultPrecision is the number of decimals used when none is configured
const DefaultPrecision = 2

// ParseFormat validates a user-supplied format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatAuto, FormatTable, FormatCSV, FormatJSON:
		return f, nil
	case "":
		return FormatAuto, nil
	default:
		return "", fmt.Errorf("invalid output format %q: must be one of auto, table, csv, json", s)
	}
}

// Resolve turns FormatAuto into a concrete format for w
// Terminals get a table, anything else (pipes, files, buffers) gets CSV
func Resolve(f Format, w io.Writer) Format {
	if f != FormatAuto {
		return f
	}
	if file, ok := w.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		return FormatTable
	}
	return FormatCSV
}

// Document is everything one render pass writes
type Document struct {
	Title       string
	Series      *domain.Series
	Annotations []series.Annotation
}

// Renderer writes documents to Out in a fixed format
type Renderer struct {
	Out       io.Writer
	Format    Format
	Precision int

	printer *message.Printer
	styles  *Styles
}

// NewRenderer creates a new Renderer, resolving FormatAuto against out
func NewRenderer(out io.Writer, format Format, precision int) *Renderer {
	if precision < 0 {
		precision = DefaultPrecision
	}
	return &Renderer{
		Out:       out,
		Format:    Resolve(format, out),
		Precision: precision,
		printer:   message.NewPrinter(language.English),
		styles:    NewStyles(out),
	}
}

// Render writes doc in the renderer's format
func (r *Renderer) Render(doc Document) error {
	if doc.Series == nil {
		return fmt.Errorf("nothing to render: series is nil")
	}
	switch r.Format {
	case FormatTable:
		return r.writeTable(doc)
	case FormatCSV:
		return r.writeCSV(doc)
	case FormatJSON:
		return r.writeJSON(doc)
	default:
		return fmt.Errorf("unsupported output format %q", r.Format)
	}
}

// round applies half-away-from-zero rounding to the configured precision
func (r *Renderer) round(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(int32(r.Precision))
}

// fixed formats v with exactly Precision decimals and no grouping
func (r *Renderer) fixed(v float64) string {
	return r.round(v).StringFixed(int32(r.Precision))
}

// human formats v for people: rounded, grouped by thousands
func (r *Renderer) human(v float64) string {
	return r.printer.Sprintf(fmt.Sprintf("%%.%df", r.Precision), r.round(v).InexactFloat64())
}

// describeAnnotation renders one annotation as a sentence
func (r *Renderer) describeAnnotation(a series.Annotation) string {
	switch a.Kind {
	case series.AnnotationInflection:
		if !a.Present {
			return fmt.Sprintf("%s: no inflection point (shape <= 1)", a.Variant)
		}
		return fmt.Sprintf("%s: inflection point at x = %s", a.Variant, r.human(a.Value))
	case series.AnnotationDiminishing:
		if !a.Present {
			return fmt.Sprintf("%s: no diminishing-returns point in range", a.Variant)
		}
		return fmt.Sprintf("%s: diminishing returns from x = %s", a.Variant, r.human(a.Value))
	case series.AnnotationDecay:
		if !a.Present {
			return fmt.Sprintf("%s: effect never decays to %.0f%%", a.Variant, series.DecayFraction*100)
		}
		return fmt.Sprintf("%s: decays to %.0f%% after %d periods", a.Variant, series.DecayFraction*100, int(a.Value))
	default:
		return fmt.Sprintf("%s: %s = %s", a.Variant, a.Kind, r.human(a.Value))
	}
}

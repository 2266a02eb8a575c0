package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jonalee1/adstock-visualization/internal/domain"
)

const columnGap = "  "

// tableHeader returns the column names; adstock series are indexed by period and carry spend
func tableHeader(s *domain.Series) []string {
	header := make([]string, 0, len(s.Labels)+2)
	if s.Inputs != nil {
		header = append(header, "period", "spend")
	} else {
		header = append(header, "x")
	}
	return append(header, s.Labels...)
}

func (r *Renderer) writeTable(doc Document) error {
	s := doc.Series
	header := tableHeader(s)

	rows := make([][]string, len(s.Points))
	for i, p := range s.Points {
		row := make([]string, 0, len(header))
		if s.Inputs != nil {
			row = append(row, fmt.Sprintf("%d", i), r.human(s.Inputs[i]))
		} else {
			row = append(row, r.human(p.X))
		}
		for _, v := range p.Values {
			row = append(row, r.human(v))
		}
		rows[i] = row
	}

	widths := make([]int, len(header))
	for c, h := range header {
		widths[c] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for c, cell := range row {
			if w := lipgloss.Width(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}

	var b strings.Builder
	if doc.Title != "" {
		b.WriteString(r.styles.Title.Render(doc.Title))
		b.WriteString("\n\n")
	}

	cells := make([]string, len(header))
	for c, h := range header {
		cells[c] = r.styles.Header.Render(padLeft(h, widths[c]))
	}
	b.WriteString(strings.Join(cells, columnGap))
	b.WriteString("\n")

	rules := make([]string, len(header))
	for c := range header {
		rules[c] = strings.Repeat("─", widths[c])
	}
	b.WriteString(r.styles.Muted.Render(strings.Join(rules, columnGap)))
	b.WriteString("\n")

	for _, row := range rows {
		for c, cell := range row {
			cells[c] = r.styles.Cell.Render(padLeft(cell, widths[c]))
		}
		b.WriteString(strings.Join(cells, columnGap))
		b.WriteString("\n")
	}

	if len(s.Points) == 0 {
		b.WriteString(r.styles.Muted.Render("(empty sample domain)"))
		b.WriteString("\n")
	}

	if len(doc.Annotations) > 0 {
		b.WriteString("\n")
		for _, a := range doc.Annotations {
			b.WriteString(r.styles.Annotation.Render(r.describeAnnotation(a)))
			b.WriteString("\n")
		}
	}

	if len(s.Adjustments) > 0 {
		b.WriteString("\n")
		for _, adj := range s.Adjustments {
			b.WriteString(r.styles.Warning.Render("clamped " + adj.String()))
			b.WriteString("\n")
		}
	}

	_, err := fmt.Fprint(r.Out, b.String())
	return err
}

func padLeft(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return strings.Repeat(" ", gap) + s
	}
	return s
}

package render

import (
	"encoding/csv"
	"strconv"
)

// writeCSV writes one header row and one row per data point
// Annotations and adjustments are left out so the output stays machine-readable
func (r *Renderer) writeCSV(doc Document) error {
	s := doc.Series
	w := csv.NewWriter(r.Out)

	if err := w.Write(tableHeader(s)); err != nil {
		return err
	}

	for i, p := range s.Points {
		record := make([]string, 0, len(p.Values)+2)
		if s.Inputs != nil {
			record = append(record, strconv.Itoa(i), r.fixed(s.Inputs[i]))
		} else {
			record = append(record, r.fixed(p.X))
		}
		for _, v := range p.Values {
			record = append(record, r.fixed(v))
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

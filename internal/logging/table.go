// Package logging generates fluency reports and console output for analyzed
// files. This file contains the aligned metric table shared by the report
// writer and the console display.

package logging

import (
	"fmt"
	"strings"
)

// MetricRow is one line of a metric table. Values are pre-formatted strings so
// rows can mix decimal precision and integer counts freely.
type MetricRow struct {
	Label          string // e.g. "Instability"
	Value          string // pre-formatted value, right-aligned
	Unit           string // unit suffix, "" for unitless
	Interpretation string // optional prose, only rendered when non-empty
}

// MetricTable formats rows with aligned label, value, unit, and interpretation
// columns. Column widths are computed from the widest entry in each column.
type MetricTable struct {
	Rows []MetricRow
}

// String renders the table. Labels are left-aligned, values right-aligned;
// the interpretation column is only emitted if any row carries one.
func (t *MetricTable) String() string {
	if len(t.Rows) == 0 {
		return ""
	}

	labelWidth, valueWidth, unitWidth := 0, 0, 0
	hasInterpretation := false
	for _, row := range t.Rows {
		if len(row.Label) > labelWidth {
			labelWidth = len(row.Label)
		}
		if len(row.Value) > valueWidth {
			valueWidth = len(row.Value)
		}
		if len(row.Unit) > unitWidth {
			unitWidth = len(row.Unit)
		}
		if row.Interpretation != "" {
			hasInterpretation = true
		}
	}

	var b strings.Builder
	for _, row := range t.Rows {
		var line strings.Builder
		fmt.Fprintf(&line, "  %-*s  %*s", labelWidth, row.Label, valueWidth, row.Value)
		if unitWidth > 0 {
			fmt.Fprintf(&line, " %-*s", unitWidth, row.Unit)
		}
		if hasInterpretation && row.Interpretation != "" {
			fmt.Fprintf(&line, "  %s", row.Interpretation)
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

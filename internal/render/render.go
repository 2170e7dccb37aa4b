// Package render turns computed statistics into styled terminal output.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/byteskew/internal/bytestats"
)

// Report bundles every statistic the summary view displays.
type Report struct {
	// Count is the number of bytes in the input sequence.
	Count int
	// Mean is the arithmetic average of the sequence.
	Mean float32
	// Median is the selection-based median of the sequence.
	Median float32
	// StdDev is the population standard deviation of the sequence.
	StdDev float32
	// Skew is Pearson's second skewness coefficient of the sequence.
	Skew float32
}

// BuildReport computes the full report over data, reusing the mean for the
// standard deviation rather than recomputing it. It returns false when data
// is empty.
func BuildReport(data []byte) (Report, bool) {
	avg, ok := bytestats.Mean(data)
	if !ok {
		return Report{}, false
	}
	med, ok := bytestats.Median(data)
	if !ok {
		return Report{}, false
	}
	std, ok := bytestats.StdDevPop(avg, data)
	if !ok {
		return Report{}, false
	}
	return Report{
		Count:  len(data),
		Mean:   avg,
		Median: med,
		StdDev: std,
		Skew:   3 * (avg - med) / std,
	}, true
}

// Summary renders the report as a labeled block with a faint footer,
// formatting each statistic to the given number of decimal places.
func Summary(r Report, precision int) string {
	labelStyle := lipgloss.NewStyle().Bold(true).Width(8)
	headerStyle := lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	footerStyle := lipgloss.NewStyle().Faint(true)

	var builder strings.Builder
	builder.WriteString(headerStyle.Render("Byte Statistics") + "\n")

	rows := []struct {
		label string
		value float32
	}{
		{"Mean", r.Mean},
		{"Median", r.Median},
		{"StdDev", r.StdDev},
		{"Skew", r.Skew},
	}
	for _, row := range rows {
		builder.WriteString(fmt.Sprintf("%s %.*f\n", labelStyle.Render(row.label), precision, row.value))
	}
	builder.WriteString(footerStyle.Render(fmt.Sprintf("  >>> [Bytes: %d] [Normalization: population] [Sqrt: approximate]", r.Count)))
	return builder.String()
}

// Value renders a single labeled statistic on one line.
func Value(label string, v float32, precision int) string {
	labelStyle := lipgloss.NewStyle().Bold(true)
	return fmt.Sprintf("%s %.*f", labelStyle.Render(label+":"), precision, v)
}

// RankResult renders the outcome of an order-statistic lookup: the rank,
// the index the value lives at, and the value itself.
func RankResult(rank, index int, value byte) string {
	labelStyle := lipgloss.NewStyle().Bold(true)
	faint := lipgloss.NewStyle().Faint(true)
	return fmt.Sprintf("%s %d %s",
		labelStyle.Render(fmt.Sprintf("Rank %d value:", rank)),
		value,
		faint.Render(fmt.Sprintf("(first occurrence at index %d)", index)),
	)
}

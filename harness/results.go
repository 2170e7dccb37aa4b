// harness/results.go
// Package: harness
package harness

import (
	"fmt"
	"io"
	"time"
)

// buildSuiteResult groups trials by size and computes the per-size
// summaries reported to the user.
func buildSuiteResult(cfg SuiteConfig, trials []TrialResult) SuiteResult {
	bySize := map[int][]TrialResult{}
	for _, tr := range trials {
		bySize[tr.Size] = append(bySize[tr.Size], tr)
	}

	var summaries []SizeSummary
	for _, size := range cfg.Sizes {
		rows := bySize[size]
		if len(rows) == 0 {
			continue
		}

		var sel, srt, ratios []float64
		allMatch := true
		for _, tr := range rows {
			sel = append(sel, tr.SelectionMicros)
			srt = append(srt, tr.SortMicros)
			if tr.SelectionMicros > 0 {
				ratios = append(ratios, tr.SortMicros/tr.SelectionMicros)
			}
			allMatch = allMatch && tr.Match
		}
		ratioMean, ratioStd := meanStd(ratios)

		summaries = append(summaries, SizeSummary{
			Size:         size,
			SelectionP50: simpleQuantile(sel, 0.50),
			SelectionP95: simpleQuantile(sel, 0.95),
			SortP50:      simpleQuantile(srt, 0.50),
			SortP95:      simpleQuantile(srt, 0.95),
			RatioMean:    ratioMean,
			RatioStd:     ratioStd,
			AllMatch:     allMatch,
		})
	}

	return SuiteResult{
		Config:      cfg,
		Trials:      trials,
		Summaries:   summaries,
		GeneratedAt: time.Now(),
	}
}

// PrintSummary writes a concise per-size report of the suite results.
func PrintSummary(w io.Writer, res SuiteResult) {
	for _, s := range res.Summaries {
		fmt.Fprintf(w, "SIZE: %d\n", s.Size)
		fmt.Fprintf(w, "  SELECTION p50/p95: %.1f / %.1f us\n", s.SelectionP50, s.SelectionP95)
		fmt.Fprintf(w, "  SORT      p50/p95: %.1f / %.1f us\n", s.SortP50, s.SortP95)
		fmt.Fprintf(w, "  SORT/SELECTION ratio: %.2f +/- %.2f\n", s.RatioMean, s.RatioStd)
		if !s.AllMatch {
			fmt.Fprintf(w, "  WARNING: strategies disagreed on at least one trial\n")
		}
	}
}

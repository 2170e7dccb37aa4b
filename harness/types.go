// harness/types.go
// Package: harness
package harness

import "time"

// SuiteConfig configures the entire benchmark run.
type SuiteConfig struct {
	// Sequence lengths to benchmark.
	Sizes []int `json:"sizes"`

	// Number of timed trials per size.
	Trials int `json:"trials"`

	// Seed for the generated byte sequences, so runs are reproducible.
	Seed int64 `json:"seed"`
}

// TrialResult captures one timed median computation over one generated
// sequence, for both strategies.
type TrialResult struct {
	Size  int `json:"size"`
	Trial int `json:"trial"`

	// Client timings (monotonic)
	SelectionMicros float64 `json:"selection_us"` // selection-based median, O(1) space
	SortMicros      float64 `json:"sort_us"`      // sort-a-copy reference median

	// Agreement between the two strategies on this sequence.
	Median float32 `json:"median"`
	Match  bool    `json:"match"`
}

// SizeSummary aggregates per-size stats for reporting.
type SizeSummary struct {
	Size int `json:"size"`

	// p50/p95 latency per strategy across all trials of this size
	SelectionP50 float64 `json:"selection_p50_us"`
	SelectionP95 float64 `json:"selection_p95_us"`
	SortP50      float64 `json:"sort_p50_us"`
	SortP95      float64 `json:"sort_p95_us"`

	// Mean +/- std of the sort/selection time ratio
	RatioMean float64 `json:"ratio_mean"`
	RatioStd  float64 `json:"ratio_std"`

	// Whether every trial's selection median matched the sorted reference.
	AllMatch bool `json:"all_match"`
}

// SuiteResult is the top-level artifact returned by RunMedianSuite.
type SuiteResult struct {
	Config      SuiteConfig   `json:"config"`
	Trials      []TrialResult `json:"trials"`
	Summaries   []SizeSummary `json:"summaries"`
	GeneratedAt time.Time     `json:"generated_at"`
}

// harness/runner.go
// Package: harness
package harness

import (
	"errors"
	"math/rand"
	"slices"
	"time"

	"github.com/mwiater/byteskew/internal/bytestats"
)

// RunMedianSuite is the single computational entrypoint. Provide a
// SuiteConfig and it returns detailed per-trial and per-size results for
// the selection-based median versus a sort-a-copy reference.
func RunMedianSuite(cfg SuiteConfig) (SuiteResult, error) {
	if len(cfg.Sizes) == 0 {
		cfg.Sizes = []int{64, 1024, 16384}
	}
	for _, size := range cfg.Sizes {
		if size <= 0 {
			return SuiteResult{}, errors.New("sequence sizes must be positive")
		}
	}
	if cfg.Trials <= 0 {
		cfg.Trials = 5
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	var all []TrialResult

	for _, size := range cfg.Sizes {
		for i := 0; i < cfg.Trials; i++ {
			data := make([]byte, size)
			rng.Read(data)

			start := time.Now()
			med, _ := bytestats.Median(data)
			selMicros := float64(time.Since(start).Nanoseconds()) / 1e3

			start = time.Now()
			ref := sortMedian(data)
			sortMicros := float64(time.Since(start).Nanoseconds()) / 1e3

			all = append(all, TrialResult{
				Size:            size,
				Trial:           i,
				SelectionMicros: selMicros,
				SortMicros:      sortMicros,
				Median:          med,
				Match:           med == ref,
			})
		}
	}

	return buildSuiteResult(cfg, all), nil
}

// sortMedian is the reference strategy: sort a copy and index the middle.
// The copy is what the selection-based median exists to avoid.
func sortMedian(data []byte) float32 {
	cp := slices.Clone(data)
	slices.Sort(cp)
	mid := len(cp) / 2
	med := float32(cp[mid])
	if len(cp)%2 == 0 {
		med = (med + float32(cp[mid-1])) / 2
	}
	return med
}

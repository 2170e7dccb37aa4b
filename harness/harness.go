// harness/harness.go
// Package: harness
package harness

import (
	"io"

	"github.com/k0kubun/pp"
)

// Run executes the median benchmark suite with the given config, dumping
// the effective configuration first and writing the per-size summary to w.
func Run(w io.Writer, cfg SuiteConfig) error {
	pp.Println(cfg)

	res, err := RunMedianSuite(cfg)
	if err != nil {
		return err
	}

	PrintSummary(w, res)
	return nil
}

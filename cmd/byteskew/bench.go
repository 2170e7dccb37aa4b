// cmd/byteskew/bench.go
package byteskew

import (
	"github.com/spf13/cobra"

	"github.com/mwiater/byteskew/harness"
)

var runSuite = harness.Run

var (
	benchTrials int
	benchSizes  []int
	benchSeed   int64
)

// benchCmd implements 'bench', which times the selection-based median
// against a sort-a-copy median across sequence sizes.
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the selection-based median against sorting",
	Long: `The 'bench' command generates random byte sequences of the configured
sizes and times the O(1)-space selection-based median against a reference
median that sorts a copy, reporting p50/p95 latencies per size.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := harness.SuiteConfig{
			Sizes:  benchSizes,
			Trials: benchTrials,
			Seed:   benchSeed,
		}
		return runSuite(cmd.OutOrStdout(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().IntVarP(&benchTrials, "trials", "t", 5, "trials per sequence size")
	benchCmd.Flags().IntSliceVarP(&benchSizes, "sizes", "s", nil, "sequence sizes to benchmark (default 64,1024,16384)")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", 42, "seed for the generated byte sequences")
}

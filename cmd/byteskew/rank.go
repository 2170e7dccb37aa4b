// cmd/byteskew/rank.go
package byteskew

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwiater/byteskew/internal/bytestats"
	"github.com/mwiater/byteskew/internal/render"
)

var rankK int

// rankCmd implements 'rank', which locates the k-th smallest byte in the
// input without sorting it.
var rankCmd = &cobra.Command{
	Use:   "rank [file]",
	Short: "Locate the k-th order statistic of the input bytes",
	Long: `The 'rank' command reads a byte sequence from the given file, or from
stdin when no file is given, and prints the value that would occupy the
given 0-indexed rank if the sequence were sorted ascending, together with
the index of its first occurrence. The sequence itself is never sorted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readSequence(pathArg(args))
		if err != nil {
			return err
		}
		idx, ok := bytestats.KthIndex(data, rankK)
		if !ok {
			return fmt.Errorf("rank %d is out of range for a %d byte sequence", rankK, len(data))
		}
		fmt.Fprintln(cmd.OutOrStdout(), render.RankResult(rankK, idx, data[idx]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)
	rankCmd.Flags().IntVarP(&rankK, "rank", "k", 0, "0-indexed rank of the order statistic to locate")
}

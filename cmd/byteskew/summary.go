// cmd/byteskew/summary.go
package byteskew

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/byteskew/internal/render"
)

// summaryCmd implements 'summary', which prints the full statistics
// report for the input bytes.
var summaryCmd = &cobra.Command{
	Use:   "summary [file]",
	Short: "Print mean, median, standard deviation, and skew",
	Long: `The 'summary' command reads a byte sequence from the given file, or from
stdin when no file is given, and prints the byte count, mean, selection-based
median, population standard deviation, and Pearson (median) skew.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readSequence(pathArg(args))
		if err != nil {
			return err
		}
		report, ok := render.BuildReport(data)
		if !ok {
			return errors.New("input is empty, nothing to compute")
		}
		fmt.Fprintln(cmd.OutOrStdout(), render.Summary(report, viper.GetInt("precision")))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

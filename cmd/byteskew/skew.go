// cmd/byteskew/skew.go
package byteskew

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/byteskew/internal/bytestats"
	"github.com/mwiater/byteskew/internal/input"
	"github.com/mwiater/byteskew/internal/render"
)

var readSequence = input.ReadSequence

// skewCmd implements 'skew', which prints Pearson's second skewness
// coefficient of the input bytes.
var skewCmd = &cobra.Command{
	Use:   "skew [file]",
	Short: "Print the Pearson (median) skew of the input bytes",
	Long: `The 'skew' command reads a byte sequence from the given file, or from
stdin when no file is given, and prints Pearson's second skewness
coefficient: 3*(mean-median)/stddev. A constant sequence prints a
non-finite value, since its standard deviation is zero.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readSequence(pathArg(args))
		if err != nil {
			return err
		}
		skew, ok := bytestats.PearsonSkewMedian(data)
		if !ok {
			return errors.New("input is empty, nothing to compute")
		}
		fmt.Fprintln(cmd.OutOrStdout(), render.Value("Pearson (median) skew", skew, viper.GetInt("precision")))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(skewCmd)
}

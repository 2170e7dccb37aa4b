// cmd/byteskew/root.go
package byteskew

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd is the base Cobra command for the byteskew application.
// All subcommands are attached to this root to form the complete CLI.
var rootCmd = &cobra.Command{
	Use:   "byteskew",
	Short: "Descriptive statistics over raw byte sequences",
	Long: `byteskew computes the mean, median, population standard deviation, and
Pearson's second skewness coefficient over the bytes of a file or stdin.
The median is found by repeated selection sweeps, so the input is never
sorted, copied, or mutated.`,
}

// Execute runs the root Cobra command and all registered subcommands.
// It prints any returned error and exits the process with a non-zero
// status code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// pathArg extracts the optional input path argument; an absent argument
// selects stdin.
func pathArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func init() {
	rootCmd.PersistentFlags().IntP("precision", "p", 4, "decimal places in rendered statistics")
	viper.BindPFlag("precision", rootCmd.PersistentFlags().Lookup("precision"))
}

// cmd/byteskew/watch.go
package byteskew

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/byteskew/internal/tui"
)

var startWatch = tui.StartWatch

var watchInterval time.Duration

// watchCmd implements 'watch', the live statistics view over a file that
// is being written to.
var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Live statistics view over a changing file",
	Long: `The 'watch' command re-reads the given file on an interval, recomputes
the full statistics report, and displays it in an interactive terminal view
until 'q' is pressed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return startWatch(args[0], viper.GetDuration("interval"), viper.GetInt("precision"))
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVarP(&watchInterval, "interval", "i", 2*time.Second, "delay between re-reads of the watched file")
	viper.BindPFlag("interval", watchCmd.Flags().Lookup("interval"))
}

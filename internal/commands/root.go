package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "marketdash",
	Short: "Quota-aware market dashboard client",
	Long: `A terminal client for the mini market dashboard proxy.

It signs in against the proxy, fetches your profile and the tradable asset
list in parallel, and renders a ranked dashboard:
• Favorites pinned to the top, upstream order preserved
• Case-insensitive search over name and symbol
• Free-plan quota banner (10 upstream requests per day)
• Upstream throttling and personal quota exhaustion reported as distinct conditions`,
	Version: "1.0.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

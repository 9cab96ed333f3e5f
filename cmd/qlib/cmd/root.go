package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/qLib/core/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "qlib",
	Short: "qLib - diagnostics foundation for quantitative applications",
	Long: `qLib is the configuration and logging foundation of the
quantitative finance stack.

Commands:
  version   - build and runtime information
  config    - show and validate the effective configuration
  logstress - concurrent logging and rotation exercise`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: discovered qlib.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadStore loads the configuration from --config or via discovery
func loadStore() (*config.Store, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.Discover(config.DefaultDiscoveryOptions())
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}

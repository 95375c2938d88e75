package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// verbose switches the logger to debug level.
	verbose bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "vectorx",
	})

	rootCmd = &cobra.Command{
		Use:          "vectorx",
		Short:        "Exercise the vectorx growable array",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(growthCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(rangeCmd)
}

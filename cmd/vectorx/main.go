// Command vectorx is a small harness around the vectorx package: it traces
// capacity growth, runs YAML operation scripts and prints integer ranges.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

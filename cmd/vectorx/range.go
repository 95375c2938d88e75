package main

import (
	"fmt"
	"strconv"

	"github.com/comalice/vectorx"
	"github.com/spf13/cobra"
)

var rangeCmd = &cobra.Command{
	Use:   "range START END",
	Short: "Print the integers from START to END inclusive",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("start: %w", err)
		}
		end, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("end: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), vectorx.Range(start, end))
		return nil
	},
}

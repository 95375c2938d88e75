package main

import (
	"fmt"

	"github.com/comalice/vectorx/internal/script"
	"github.com/spf13/cobra"
)

var (
	runFormat string

	runCmd = &cobra.Command{
		Use:   "run SCRIPT",
		Short: "Run a YAML operation script and print the resulting vector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := script.Format(runFormat)
			if err := format.Validate(); err != nil {
				return err
			}

			s, err := script.Load(args[0])
			if err != nil {
				return err
			}
			logger.Debug("loaded script", "name", s.Name, "steps", len(s.Steps), "capacity", s.Capacity)

			out := cmd.OutOrStdout()
			v, err := s.Run(func(r script.Result) {
				fmt.Fprintf(out, "%3d %-15s ok=%-5t len=%-4d cap=%-4d %s\n",
					r.Step, r.Op, r.OK, r.Len, r.Cap, r.Pretty)
			})
			if err != nil {
				logger.Error("script failed", "name", s.Name, "err", err)
				return err
			}
			return script.Encode(out, format, v)
		},
	}
)

func init() {
	runCmd.Flags().StringVarP(&runFormat, "format", "f", string(script.FormatYAML), "output encoding: yaml, json or cbor")
}

package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tsldemo",
		Short:         "Exercise the tslog asynchronous category logger",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringP("config", "c", "", "YAML settings file (TSL_* variables override it)")

	root.AddCommand(newRunCmd(), newConfigCmd())
	return root
}

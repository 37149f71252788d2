package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/philipp01105/tslog/config"
	"github.com/philipp01105/tslog/core"
)

func newConfigCmd() *cobra.Command {
	var showEnv, showCategories bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective settings as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showEnv {
				text, err := config.Describe()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			}

			path, _ := cmd.Flags().GetString("config")
			settings, err := config.Load(path)
			if err != nil {
				return err
			}
			if showCategories {
				return printCategories(cmd, settings)
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(settings); err != nil {
				return fmt.Errorf("encode settings: %w", err)
			}
			return enc.Close()
		},
	}
	cmd.Flags().BoolVar(&showEnv, "env", false, "list the supported environment variables instead")
	cmd.Flags().BoolVar(&showCategories, "categories", false, "list the categories and the file family each is written to")
	return cmd
}

// printCategories lists built-in and configured categories, one per line
func printCategories(cmd *cobra.Command, settings config.Settings) error {
	// SinkConfig registers the configured categories
	if _, err := settings.SinkConfig(); err != nil {
		return err
	}
	for _, cat := range core.Categories() {
		fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s  %s\n", cat, cat.Code(), cat.Family())
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTypesCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List declared struct types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, _, err := loadRegistry(cmd, cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, aType := range registry.Types() {
				fmt.Fprintf(out, "%v\n", aType.Name())
				for _, attribute := range aType.Attributes() {
					fmt.Fprintf(out, "  %v: %v\n", attribute.Name, attribute.Kind)
				}
			}
			return nil
		},
	}
}

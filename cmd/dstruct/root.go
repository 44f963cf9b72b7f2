package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/viant/dstruct"
)

func newRootCmd(cfg *Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dstruct",
		Short:         "dstruct constructs and validates typed structs",
		Long:          `dstruct declares struct types from YAML, casts input documents into them and validates the result with OpenAPI or JSON schemas.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("types", "", "YAML file with struct type declarations")
	_ = rootCmd.MarkPersistentFlagRequired("types")
	rootCmd.AddCommand(newValidateCmd(cfg), newTypesCmd(cfg))
	return rootCmd
}

func loadRegistry(cmd *cobra.Command, cfg *Config) (*dstruct.Registry, *slog.Logger, error) {
	logger, err := cfg.Logger()
	if err != nil {
		return nil, nil, err
	}
	location, err := cmd.Flags().GetString("types")
	if err != nil {
		return nil, nil, err
	}
	data, err := os.ReadFile(location)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read types %v: %w", location, err)
	}
	registry := dstruct.NewRegistry(cfg.Options(logger)...)
	if _, err = registry.Load(data); err != nil {
		return nil, nil, fmt.Errorf("failed to load types %v: %w", location, err)
	}
	return registry, logger, nil
}

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/viant/dstruct"
	"github.com/viant/dstruct/internal/jsonvalue"
	"github.com/viant/dstruct/schema/jsonschema"
	"github.com/viant/dstruct/schema/openapi"
)

var errInvalid = errors.New("struct is not valid")

type report struct {
	Canonical map[string]interface{} `json:"canonical"`
	Errors    dstruct.ErrorMap       `json:"errors"`
}

func newValidateCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [input.json|input.yaml]",
		Short: "Construct a struct from input document and validate it",
		Long:  `Constructs a struct of the named type from JSON or YAML input (keys are processed in document order), attaches the supplied schemas and prints canonical values with errors.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, cfg, args[0])
		},
	}
	cmd.Flags().String("type", "", "struct type name")
	cmd.Flags().StringArray("openapi", nil, "OpenAPI schema file (YAML or JSON), repeatable")
	cmd.Flags().StringArray("jsonschema", nil, "JSON schema file, repeatable")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

func runValidate(cmd *cobra.Command, cfg *Config, location string) error {
	registry, logger, err := loadRegistry(cmd, cfg)
	if err != nil {
		return err
	}
	typeName, _ := cmd.Flags().GetString("type")
	input, err := readInput(location)
	if err != nil {
		return err
	}
	aStruct, err := registry.New(typeName, input)
	if err != nil {
		return err
	}
	schemas, err := loadSchemas(cmd)
	if err != nil {
		return err
	}
	aStruct.AddSchema(schemas...)
	errs := aStruct.Errors()
	canonical, err := jsonvalue.Normalize(aStruct.Canonical())
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(&report{Canonical: canonical, Errors: errs}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	if !errs.IsEmpty() {
		logger.Info("struct is not valid", "type", typeName, "input", location, "fields", errs.Fields())
		return errInvalid
	}
	return nil
}

func readInput(location string) (dstruct.Input, error) {
	data, err := os.ReadFile(location)
	if err != nil {
		return nil, fmt.Errorf("failed to read input %v: %w", location, err)
	}
	switch strings.ToLower(filepath.Ext(location)) {
	case ".yaml", ".yml":
		return dstruct.DecodeYAML(data)
	default:
		return dstruct.DecodeJSON(data)
	}
}

func loadSchemas(cmd *cobra.Command) ([]dstruct.Schema, error) {
	var result []dstruct.Schema
	openapiLocations, _ := cmd.Flags().GetStringArray("openapi")
	for _, location := range openapiLocations {
		data, err := os.ReadFile(location)
		if err != nil {
			return nil, fmt.Errorf("failed to read openapi schema %v: %w", location, err)
		}
		schema, err := openapi.Load(data)
		if err != nil {
			return nil, fmt.Errorf("failed to load openapi schema %v: %w", location, err)
		}
		result = append(result, schema)
	}
	jsonSchemaLocations, _ := cmd.Flags().GetStringArray("jsonschema")
	for _, location := range jsonSchemaLocations {
		data, err := os.ReadFile(location)
		if err != nil {
			return nil, fmt.Errorf("failed to read json schema %v: %w", location, err)
		}
		url, err := filepath.Abs(location)
		if err != nil {
			return nil, err
		}
		schema, err := jsonschema.Compile("file://"+filepath.ToSlash(url), data)
		if err != nil {
			return nil, err
		}
		result = append(result, schema)
	}
	return result, nil
}

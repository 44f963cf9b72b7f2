// Package openapi adapts OpenAPI 3 schemas (kin-openapi) to dstruct validation schemas.
package openapi

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/goccy/go-json"
	"github.com/viant/dstruct"
	"github.com/viant/dstruct/internal/jsonvalue"
	"gopkg.in/yaml.v3"
)

// BaseKey collects errors that do not belong to a single attribute
const BaseKey = ""

// Schema represents OpenAPI object schema validating struct canonical mapping
type Schema struct {
	schema  *openapi3.Schema
	options []openapi3.SchemaValidationOption
}

// New creates a schema
func New(schema *openapi3.Schema, opts ...openapi3.SchemaValidationOption) *Schema {
	return &Schema{schema: schema, options: opts}
}

// Load loads a schema from YAML or JSON document
func Load(data []byte, opts ...openapi3.SchemaValidationOption) (*Schema, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse openapi schema: %w", err)
	}
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to encode openapi schema: %w", err)
	}
	schema := &openapi3.Schema{}
	if err = schema.UnmarshalJSON(encoded); err != nil {
		return nil, fmt.Errorf("failed to decode openapi schema: %w", err)
	}
	if err = schema.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid openapi schema: %w", err)
	}
	return New(schema, opts...), nil
}

// Evaluate validates canonical mapping, errors are keyed by the first JSON pointer segment
func (s *Schema) Evaluate(canonical map[string]interface{}) dstruct.ErrorMap {
	result := dstruct.ErrorMap{}
	value, err := jsonvalue.Normalize(canonical)
	if err != nil {
		result[BaseKey] = []string{err.Error()}
		return result
	}
	opts := append([]openapi3.SchemaValidationOption{openapi3.MultiErrors()}, s.options...)
	collect(s.schema.VisitJSON(value, opts...), result)
	return result
}

func collect(err error, result dstruct.ErrorMap) {
	switch actual := err.(type) {
	case nil:
	case openapi3.MultiError:
		for _, item := range actual {
			collect(item, result)
		}
	case *openapi3.SchemaError:
		key := BaseKey
		if pointer := actual.JSONPointer(); len(pointer) > 0 {
			key = pointer[0]
		}
		result[key] = append(result[key], actual.Reason)
	default:
		result[BaseKey] = append(result[BaseKey], err.Error())
	}
}

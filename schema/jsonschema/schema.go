// Package jsonschema adapts JSON Schema (santhosh-tekuri/jsonschema) to dstruct validation schemas.
package jsonschema

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	jschema "github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/viant/dstruct"
	"github.com/viant/dstruct/internal/jsonvalue"
)

const (
	// BaseKey collects errors that do not belong to a single attribute
	BaseKey = ""
	// RequiredMessage is reported for each missing required property
	RequiredMessage = "is required"

	defaultURL = "mem:dstruct"
)

var quotedName = regexp.MustCompile(`'((?:[^'\\]|\\.)*)'`)

// Schema represents compiled JSON schema validating struct canonical mapping
type Schema struct {
	schema *jschema.Schema
}

// New creates a schema
func New(schema *jschema.Schema) *Schema {
	return &Schema{schema: schema}
}

// Compile compiles JSON schema source registered under url
func Compile(url string, source []byte) (*Schema, error) {
	if url == "" {
		url = defaultURL
	}
	compiler := jschema.NewCompiler()
	if err := compiler.AddResource(url, bytes.NewReader(source)); err != nil {
		return nil, fmt.Errorf("failed to add json schema %v: %w", url, err)
	}
	schema, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("failed to compile json schema %v: %w", url, err)
	}
	return New(schema), nil
}

// Evaluate validates canonical mapping, errors are keyed by the first instance location segment
func (s *Schema) Evaluate(canonical map[string]interface{}) dstruct.ErrorMap {
	result := dstruct.ErrorMap{}
	value, err := jsonvalue.Normalize(canonical)
	if err != nil {
		result[BaseKey] = []string{err.Error()}
		return result
	}
	err = s.schema.Validate(value)
	if err == nil {
		return result
	}
	var validationErr *jschema.ValidationError
	if !errors.As(err, &validationErr) {
		result[BaseKey] = []string{err.Error()}
		return result
	}
	collect(validationErr, result)
	return result
}

func collect(err *jschema.ValidationError, result dstruct.ErrorMap) {
	if len(err.Causes) > 0 {
		for _, cause := range err.Causes {
			collect(cause, result)
		}
		return
	}
	key := attributeKey(err.InstanceLocation)
	if key == BaseKey && strings.HasSuffix(err.KeywordLocation, "/required") {
		if matches := quotedName.FindAllStringSubmatch(err.Message, -1); len(matches) > 0 {
			for _, match := range matches {
				name := strings.ReplaceAll(match[1], `\'`, `'`)
				result[name] = append(result[name], RequiredMessage)
			}
			return
		}
	}
	result[key] = append(result[key], err.Message)
}

func attributeKey(location string) string {
	location = strings.TrimPrefix(location, "/")
	if index := strings.Index(location, "/"); index != -1 {
		location = location[:index]
	}
	return strings.NewReplacer("~1", "/", "~0", "~").Replace(location)
}

package dstruct

import (
	"fmt"
	"sort"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

type (
	// Declarations represents struct type declarations document
	Declarations struct {
		Types []*Declaration `mapstructure:"types"`
	}

	// Declaration represents a struct type declaration
	Declaration struct {
		Name        string              `mapstructure:"name"`
		DateLayouts []string            `mapstructure:"dateLayouts"`
		DateFormats []string            `mapstructure:"dateFormats"`
		Attributes  map[string][]string `mapstructure:"attributes"`
	}
)

// ParseDeclarations parses YAML (or JSON) declarations document
func ParseDeclarations(data []byte) (*Declarations, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse declarations: %w", err)
	}
	ret := &Declarations{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           ret,
	})
	if err != nil {
		return nil, err
	}
	if err = decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode declarations: %w", err)
	}
	for i, declaration := range ret.Types {
		if declaration == nil || declaration.Name == "" {
			return nil, fmt.Errorf("invalid declaration at position %v: name was empty", i)
		}
	}
	return ret, nil
}

// KindAttributes returns attribute names grouped by kind, aliased kind keys are merged in key order
func (d *Declaration) KindAttributes() (Attributes, error) {
	kindNames := make([]string, 0, len(d.Attributes))
	for kindName := range d.Attributes {
		kindNames = append(kindNames, kindName)
	}
	sort.Strings(kindNames)
	var result = make(Attributes, len(d.Attributes))
	for _, kindName := range kindNames {
		names := d.Attributes[kindName]
		kind, err := ParseKind(kindName)
		if err != nil {
			return nil, fmt.Errorf("invalid declaration %v: %w", d.Name, err)
		}
		result[kind] = append(result[kind], names...)
	}
	return result, nil
}

// Options returns declaration type options
func (d *Declaration) Options() []Option {
	var result []Option
	if len(d.DateLayouts) > 0 {
		result = append(result, WithDateLayouts(d.DateLayouts...))
	}
	if len(d.DateFormats) > 0 {
		result = append(result, WithDateFormat(d.DateFormats...))
	}
	return result
}

// Load declares all types from YAML declarations document
func (r *Registry) Load(data []byte, opts ...Option) ([]*Type, error) {
	declarations, err := ParseDeclarations(data)
	if err != nil {
		return nil, err
	}
	var result = make([]*Type, 0, len(declarations.Types))
	for _, declaration := range declarations.Types {
		attributes, err := declaration.KindAttributes()
		if err != nil {
			return nil, err
		}
		typeOptions := append(append([]Option{}, opts...), declaration.Options()...)
		result = append(result, r.Declare(declaration.Name, attributes, typeOptions...))
	}
	return result, nil
}

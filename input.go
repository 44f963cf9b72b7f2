package dstruct

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/francoispqt/gojay"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

type (
	// Entry represents input key value pair
	Entry struct {
		Key   string
		Value interface{}
	}

	// Input represents ordered construction input
	Input []Entry

	jsonInput struct {
		input *Input
	}
)

// Pairs creates an input from alternating keys and values
func Pairs(keyValues ...interface{}) Input {
	var result = make(Input, 0, (len(keyValues)+1)/2)
	for i := 0; i < len(keyValues); i += 2 {
		entry := Entry{Key: fmt.Sprint(keyValues[i])}
		if key, ok := keyValues[i].(string); ok {
			entry.Key = key
		}
		if i+1 < len(keyValues) {
			entry.Value = keyValues[i+1]
		}
		result = append(result, entry)
	}
	return result
}

// FromMap creates an input from a map, Go maps are unordered so keys are sorted
func FromMap(values map[string]interface{}) Input {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	var result = make(Input, 0, len(keys))
	for _, key := range keys {
		result = append(result, Entry{Key: key, Value: values[key]})
	}
	return result
}

// Keys returns input keys in order
func (i Input) Keys() []string {
	var result = make([]string, 0, len(i))
	for _, entry := range i {
		result = append(result, entry.Key)
	}
	return result
}

// Map returns input as map, later duplicated keys win
func (i Input) Map() map[string]interface{} {
	var result = make(map[string]interface{}, len(i))
	for _, entry := range i {
		result[entry.Key] = entry.Value
	}
	return result
}

// DecodeJSON decodes JSON object into input preserving key order
func DecodeJSON(data []byte) (Input, error) {
	var result = Input{}
	if err := gojay.UnmarshalJSONObject(data, &jsonInput{input: &result}); err != nil {
		return nil, fmt.Errorf("failed to decode json input: %w", err)
	}
	return result, nil
}

// UnmarshalJSONObject decodes object key value, numbers are kept as json.Number
func (j *jsonInput) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	var raw gojay.EmbeddedJSON
	if err := dec.EmbeddedJSON(&raw); err != nil {
		return err
	}
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	var value interface{}
	if err := decoder.Decode(&value); err != nil {
		return fmt.Errorf("failed to decode %v: %w", key, err)
	}
	*j.input = append(*j.input, Entry{Key: key, Value: value})
	return nil
}

// NKeys returns 0 to decode all keys
func (j *jsonInput) NKeys() int {
	return 0
}

// DecodeYAML decodes YAML mapping into input preserving key order
func DecodeYAML(data []byte) (Input, error) {
	var document yaml.Node
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("failed to decode yaml input: %w", err)
	}
	if len(document.Content) == 0 {
		return Input{}, nil
	}
	node := document.Content[0]
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("failed to decode yaml input: expected mapping at line %v", node.Line)
	}
	var result = make(Input, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var value interface{}
		if err := node.Content[i+1].Decode(&value); err != nil {
			return nil, fmt.Errorf("failed to decode yaml input key %v: %w", node.Content[i].Value, err)
		}
		result = append(result, Entry{Key: node.Content[i].Value, Value: value})
	}
	return result, nil
}

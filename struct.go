package dstruct

import (
	"fmt"
	"maps"
	"reflect"
	"sync"
	"time"
)

// Struct represents struct instance
type Struct struct {
	structType *Type
	values     []interface{}
	assigned   []bool
	canonical  map[string]interface{}
	unknownKey ErrorMap
	schemas    []Schema
	errors     ErrorMap
	evaluated  bool
	mux        sync.Mutex
}

// New creates a struct, input is processed in order; the first key without declared attribute
// is reported as unknown key and stops further processing
func New(structType *Type, input Input) *Struct {
	ret := &Struct{
		structType: structType,
		values:     make([]interface{}, structType.Len()),
		assigned:   make([]bool, structType.Len()),
		canonical:  make(map[string]interface{}, structType.Len()),
	}
	for i, entry := range input {
		attribute := structType.Lookup(entry.Key)
		if attribute == nil {
			ret.unknownKey = ErrorMap{entry.Key: {UnknownKeyMessage}}
			structType.logger.Debug("unknown struct key", "type", structType.name, "key", entry.Key, "skipped", len(input)-i-1)
			break
		}
		ret.assign(attribute, entry.Value)
	}
	return ret
}

func (s *Struct) assign(attribute *Attribute, raw interface{}) {
	value, ok := attribute.Cast(raw)
	if !ok {
		value = nil
	}
	s.values[attribute.Index] = value
	s.assigned[attribute.Index] = true
	s.canonical[attribute.Name] = value
}

// Type returns struct type
func (s *Struct) Type() *Type {
	return s.structType
}

// Canonical returns a copy of attribute name to casted value mapping
func (s *Struct) Canonical() map[string]interface{} {
	return maps.Clone(s.canonical)
}

// Has returns true if attribute was assigned, including assignments that could not be casted
func (s *Struct) Has(name string) bool {
	attribute := s.structType.Lookup(name)
	if attribute == nil {
		return false
	}
	return s.assigned[attribute.Index]
}

// Value returns attribute value, nil when attribute has no value
func (s *Struct) Value(name string) (interface{}, error) {
	attribute, err := s.attribute(name)
	if err != nil {
		return nil, err
	}
	return s.values[attribute.Index], nil
}

// String returns string attribute value
func (s *Struct) String(name string) (string, error) {
	value, err := s.kindValue(name, String)
	if err != nil {
		return "", err
	}
	text, _ := value.(string)
	return text, nil
}

// Int returns integer attribute value
func (s *Struct) Int(name string) (int, error) {
	value, err := s.kindValue(name, Integer)
	if err != nil {
		return 0, err
	}
	number, _ := value.(int)
	return number, nil
}

// Bool returns boolean attribute value
func (s *Struct) Bool(name string) (bool, error) {
	value, err := s.kindValue(name, Boolean)
	if err != nil {
		return false, err
	}
	flag, _ := value.(bool)
	return flag, nil
}

// Array returns array attribute value
func (s *Struct) Array(name string) ([]interface{}, error) {
	value, err := s.kindValue(name, Array)
	if err != nil || value == nil {
		return nil, err
	}
	if items, ok := value.([]interface{}); ok {
		return items, nil
	}
	rValue := reflect.ValueOf(value)
	var result = make([]interface{}, rValue.Len())
	for i := range result {
		result[i] = rValue.Index(i).Interface()
	}
	return result, nil
}

// Date returns date attribute value
func (s *Struct) Date(name string) (time.Time, error) {
	value, err := s.kindValue(name, Date)
	if err != nil {
		return time.Time{}, err
	}
	ts, _ := value.(time.Time)
	return ts, nil
}

func (s *Struct) kindValue(name string, kind Kind) (interface{}, error) {
	attribute, err := s.attribute(name)
	if err != nil {
		return nil, err
	}
	if attribute.Kind != kind {
		return nil, fmt.Errorf("attribute %v is %v, not %v", name, attribute.Kind, kind)
	}
	return s.values[attribute.Index], nil
}

func (s *Struct) attribute(name string) (*Attribute, error) {
	attribute := s.structType.Lookup(name)
	if attribute == nil {
		return nil, fmt.Errorf("failed to lookup attribute %v at %v", name, s.structType.name)
	}
	return attribute, nil
}

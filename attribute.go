package dstruct

import (
	"github.com/viant/dstruct/cast"
	"github.com/viant/xunsafe"
)

type (
	// Attribute represents declared struct attribute
	Attribute struct {
		Name   string
		Kind   Kind
		Index  int
		caster cast.Func
		field  *xunsafe.Field
	}

	// Attributes represents attribute names grouped by kind
	Attributes map[Kind][]string
)

// Cast casts raw value with attribute kind caster, ok is false when no value could be produced
func (a *Attribute) Cast(raw interface{}) (interface{}, bool) {
	return a.caster(raw)
}

// Field returns Go struct field the attribute was derived from or nil
func (a *Attribute) Field() *xunsafe.Field {
	return a.field
}

// Names returns all attribute names in kind processing order
func (a Attributes) Names() []string {
	var result []string
	for _, kind := range kinds {
		result = append(result, a[kind]...)
	}
	return result
}

package dstruct

import (
	"log/slog"
	"reflect"
	"sync"

	"github.com/viant/dstruct/cast"
)

// Type represents struct type metadata, an ordered set of attributes keyed by name
type Type struct {
	name       string
	attributes []*Attribute
	index      map[string]int
	casters    *cast.Set
	options    *options
	logger     *slog.Logger
	rType      reflect.Type
	bindings   sync.Map // map[reflect.Type]*binding
	generate   sync.Once
	generated  reflect.Type
}

// NewType creates a struct type, kinds are processed in String, Integer, Boolean, Array, Date order;
// when the same name is declared under more than one kind the later kind caster wins
func NewType(name string, attributes Attributes, opts ...Option) *Type {
	ret := newType(name, newOptions(opts))
	for _, kind := range kinds {
		caster := kind.caster(ret.casters)
		for _, attrName := range attributes[kind] {
			ret.add(attrName, kind, caster)
		}
	}
	return ret
}

func newType(name string, options *options) *Type {
	return &Type{
		name:    name,
		index:   map[string]int{},
		casters: options.casters(),
		options: options,
		logger:  options.logger,
	}
}

func (t *Type) add(name string, kind Kind, caster cast.Func) *Attribute {
	if index, ok := t.index[name]; ok {
		attribute := t.attributes[index]
		attribute.Kind = kind
		attribute.caster = caster
		return attribute
	}
	attribute := &Attribute{Name: name, Kind: kind, Index: len(t.attributes), caster: caster}
	t.index[name] = attribute.Index
	t.attributes = append(t.attributes, attribute)
	return attribute
}

// Name returns type name
func (t *Type) Name() string {
	return t.name
}

// Lookup returns an attribute or nil
func (t *Type) Lookup(name string) *Attribute {
	index, ok := t.index[name]
	if !ok {
		return nil
	}
	return t.attributes[index]
}

// Attributes returns attributes in declaration order
func (t *Type) Attributes() []*Attribute {
	return t.attributes
}

// Names returns attribute names in declaration order
func (t *Type) Names() []string {
	var result = make([]string, 0, len(t.attributes))
	for _, attribute := range t.attributes {
		result = append(result, attribute.Name)
	}
	return result
}

// Len returns attribute count
func (t *Type) Len() int {
	return len(t.attributes)
}

// Type returns Go struct type the struct type was derived from or nil
func (t *Type) Type() reflect.Type {
	return t.rType
}

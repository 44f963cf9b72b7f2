package dstruct

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/viant/dstruct/cast"
	"github.com/viant/dstruct/conv"
	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
)

type (
	binding struct {
		fields []*boundField
		marker *Marker
	}

	boundField struct {
		attribute *Attribute
		field     *xunsafe.Field
		markerPos int
	}
)

// Bind copies struct values into dest Go struct pointer.
// Fields are matched by attribute name; attributes without value leave fields untouched.
// When dest defines a set marker holder, every assigned attribute is flagged.
func (s *Struct) Bind(dest interface{}) error {
	rValue := reflect.ValueOf(dest)
	if rValue.Kind() != reflect.Ptr || rValue.IsNil() || rValue.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("failed to bind: expected non nil struct pointer, but had %T", dest)
	}
	aBinding, err := s.structType.binding(rValue.Type().Elem())
	if err != nil {
		return err
	}
	ptr := xunsafe.AsPointer(dest)
	if aBinding.marker != nil {
		aBinding.marker.EnsureHolder(ptr)
	}
	for _, bound := range aBinding.fields {
		index := bound.attribute.Index
		if !s.assigned[index] {
			continue
		}
		if aBinding.marker != nil && bound.markerPos != -1 {
			if err = aBinding.marker.Set(ptr, bound.markerPos, true); err != nil {
				return fmt.Errorf("failed to mark %v: %w", bound.attribute.Name, err)
			}
		}
		value := s.values[index]
		if value == nil {
			continue
		}
		target := reflect.NewAt(bound.field.Type, bound.field.Pointer(ptr)).Elem()
		if err = assign(target, value); err != nil {
			return fmt.Errorf("failed to bind %v: %w", bound.attribute.Name, err)
		}
	}
	return nil
}

func (t *Type) binding(rType reflect.Type) (*binding, error) {
	if cached, ok := t.bindings.Load(rType); ok {
		return cached.(*binding), nil
	}
	caseFormat := t.options.caseFormat
	if !caseFormat.IsDefined() {
		caseFormat = text.CaseFormatLowerCamel
	}
	ret := &binding{}
	if HasMarker(rType) {
		marker, err := NewMarker(rType, WithNoStrictMarker())
		if err != nil {
			return nil, fmt.Errorf("failed to create marker for %v: %w", rType, err)
		}
		ret.marker = marker
	}
	for i := 0; i < rType.NumField(); i++ {
		field := rType.Field(i)
		spec, err := newFieldSpec(field, caseFormat, false)
		if err != nil {
			return nil, fmt.Errorf("failed to bind %v.%v: %w", rType.Name(), field.Name, err)
		}
		if spec == nil {
			continue
		}
		attribute := t.lookupField(spec.name, field.Name)
		if attribute == nil {
			continue
		}
		bound := &boundField{attribute: attribute, field: xunsafe.NewField(field), markerPos: -1}
		if ret.marker != nil {
			if pos := ret.marker.Index(field.Name); pos != -1 && pos < len(ret.marker.fields) && ret.marker.fields[pos] != nil {
				bound.markerPos = pos
			}
		}
		ret.fields = append(ret.fields, bound)
	}
	t.bindings.Store(rType, ret)
	return ret, nil
}

func (t *Type) lookupField(names ...string) *Attribute {
	for _, name := range names {
		if attribute := t.Lookup(name); attribute != nil {
			return attribute
		}
	}
	for _, name := range names {
		folded := foldName(name)
		for _, attribute := range t.attributes {
			if foldName(attribute.Name) == folded {
				return attribute
			}
		}
	}
	return nil
}

func foldName(name string) string {
	return strings.ToLower(strings.NewReplacer("_", "", "-", "").Replace(name))
}

var converter = newConverter()

func newConverter() *conv.Converter {
	ret := conv.NewConverter(conv.Options{DateLayout: cast.DateLayout})
	stringType := reflect.TypeOf("")
	ret.RegisterConversion(stringType, timeType, func(src interface{}, dest interface{}, opts conv.Options) error {
		ts, ok := cast.Date(src)
		if !ok {
			return fmt.Errorf("cannot convert %q to %v", src, timeType)
		}
		*(dest.(*time.Time)) = ts.(time.Time)
		return nil
	})
	ret.RegisterConversion(timeType, stringType, func(src interface{}, dest interface{}, opts conv.Options) error {
		formatted, _ := cast.String(src)
		*(dest.(*string)) = formatted.(string)
		return nil
	})
	return ret
}

// assign converts casted value into dest field
func assign(dest reflect.Value, value interface{}) error {
	if value == nil {
		return nil
	}
	return converter.Convert(value, dest.Addr().Interface())
}

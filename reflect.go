package dstruct

import (
	"fmt"
	"reflect"
	"time"

	"github.com/viant/dstruct/cast"
	"github.com/viant/tagly/format"
	"github.com/viant/tagly/format/text"
	ftime "github.com/viant/tagly/format/time"
	"github.com/viant/xunsafe"
)

var timeType = reflect.TypeOf(time.Time{})

type fieldSpec struct {
	name       string
	kind       Kind
	timeLayout string
}

// TypeOf derives struct type from a Go struct type.
// Attribute kind comes from the dstruct tag or the field type, attribute name from the format tag name
// or the field name formatted with the configured case format (lowerCamel by default)
func TypeOf(rType reflect.Type, opts ...Option) (*Type, error) {
	structType := ensureStruct(rType)
	if structType == nil {
		return nil, fmt.Errorf("failed to derive struct type: %v is not a struct", rType)
	}
	options := newOptions(opts)
	if !options.caseFormat.IsDefined() {
		options.caseFormat = text.CaseFormatLowerCamel
	}
	ret := newType(structType.Name(), options)
	ret.rType = structType
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		spec, err := newFieldSpec(field, options.caseFormat, true)
		if err != nil {
			return nil, fmt.Errorf("failed to derive %v.%v: %w", structType.Name(), field.Name, err)
		}
		if spec == nil {
			continue
		}
		caster := spec.kind.caster(ret.casters)
		if spec.timeLayout != "" {
			casters := cast.NewSet(append([]cast.Option{cast.WithDateLayouts(spec.timeLayout)}, options.castOptions...)...)
			caster = spec.kind.caster(casters)
		}
		attribute := ret.add(spec.name, spec.kind, caster)
		attribute.field = xunsafe.NewField(field)
	}
	return ret, nil
}

// newFieldSpec returns nil spec for skipped fields
func newFieldSpec(field reflect.StructField, caseFormat text.CaseFormat, withKind bool) (*fieldSpec, error) {
	if !field.IsExported() || IsSetMarker(field.Tag) {
		return nil, nil
	}
	kindTag := field.Tag.Get(TagName)
	if kindTag == "-" {
		return nil, nil
	}
	tag, err := format.Parse(field.Tag)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		tag = &format.Tag{}
	}
	if tag.Ignore {
		return nil, nil
	}
	ret := &fieldSpec{name: attributeName(field.Name, tag, caseFormat), timeLayout: tag.TimeLayout}
	if ret.timeLayout == "" && tag.DateFormat != "" {
		ret.timeLayout = ftime.DateFormatToTimeLayout(tag.DateFormat)
	}
	if !withKind {
		return ret, nil
	}
	if kindTag != "" {
		if ret.kind, err = ParseKind(kindTag); err != nil {
			return nil, err
		}
		return ret, nil
	}
	kind, ok := inferKind(field.Type)
	if !ok {
		return nil, fmt.Errorf("unable to infer attribute kind for %v, use %v tag", field.Type, TagName)
	}
	ret.kind = kind
	return ret, nil
}

func attributeName(fieldName string, tag *format.Tag, caseFormat text.CaseFormat) string {
	if tag.Name != "" {
		return tag.Name
	}
	if !caseFormat.IsDefined() {
		return fieldName
	}
	if fieldName == "ID" {
		switch caseFormat {
		case text.CaseFormatLower, text.CaseFormatLowerCamel, text.CaseFormatLowerUnderscore:
			return "id"
		}
	}
	src := text.DetectCaseFormat(fieldName)
	if !src.IsDefined() {
		src = text.CaseFormatUpperCamel
	}
	return src.Format(fieldName, caseFormat)
}

func inferKind(rType reflect.Type) (Kind, bool) {
	if rType.Kind() == reflect.Ptr {
		rType = rType.Elem()
	}
	if rType == timeType {
		return Date, true
	}
	switch rType.Kind() {
	case reflect.String:
		return String, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Integer, true
	case reflect.Bool:
		return Boolean, true
	case reflect.Slice, reflect.Array:
		return Array, true
	}
	return 0, false
}

func ensureStruct(t reflect.Type) reflect.Type {
	if t == nil {
		return nil
	}
	switch t.Kind() {
	case reflect.Struct:
		return t
	case reflect.Ptr:
		return ensureStruct(t.Elem())
	}
	return nil
}

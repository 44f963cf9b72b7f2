package dstruct

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
)

// MarkerFieldName is the set marker holder field name of generated struct types
const MarkerFieldName = "Has"

var kindTypes = map[Kind]reflect.Type{
	String:  reflect.TypeOf(""),
	Integer: reflect.TypeOf(0),
	Boolean: reflect.TypeOf(true),
	Array:   reflect.TypeOf([]interface{}{}),
	Date:    reflect.TypeOf(time.Time{}),
}

// GenMarkerFields generate marker struct fields
func GenMarkerFields(t reflect.Type) []reflect.StructField {
	var result []reflect.StructField
	if t = ensureStruct(t); t == nil {
		return result
	}
	boolType := reflect.TypeOf(true)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if IsSetMarker(field.Tag) || !field.IsExported() {
			continue
		}
		result = append(result, reflect.StructField{Name: field.Name, Type: boolType})
	}
	return result
}

// StructOf returns Go struct type holding struct type attributes.
// Types derived with TypeOf return their source type, declared types get a generated struct
// with one exported field per attribute and a Has set marker.
func (t *Type) StructOf() reflect.Type {
	if t.rType != nil {
		return t.rType
	}
	t.generate.Do(func() {
		t.generated = t.genStructType()
	})
	return t.generated
}

func (t *Type) genStructType() reflect.Type {
	used := map[string]bool{MarkerFieldName: true}
	fields := make([]reflect.StructField, 0, len(t.attributes)+1)
	for _, attribute := range t.attributes {
		fields = append(fields, reflect.StructField{
			Name: uniqueName(fieldName(attribute.Name), used),
			Type: kindTypes[attribute.Kind],
		})
	}
	markerType := reflect.StructOf(GenMarkerFields(reflect.StructOf(fields)))
	fields = append(fields, reflect.StructField{
		Name: MarkerFieldName,
		Type: reflect.PointerTo(markerType),
		Tag:  reflect.StructTag(SetMarkerTag + `:"true"`),
	})
	rType := reflect.StructOf(fields)

	aBinding := &binding{}
	marker, err := NewMarker(rType)
	if err != nil {
		t.logger.Warn("failed to create generated struct marker", "type", t.name, "error", err)
	} else {
		aBinding.marker = marker
	}
	for i, attribute := range t.attributes {
		bound := &boundField{attribute: attribute, field: xunsafe.NewField(rType.Field(i)), markerPos: -1}
		if aBinding.marker != nil {
			bound.markerPos = i
		}
		aBinding.fields = append(aBinding.fields, bound)
	}
	t.bindings.Store(rType, aBinding)
	return rType
}

// fieldName returns exported Go identifier for an attribute name
func fieldName(name string) string {
	src := text.DetectCaseFormat(name)
	if src.IsDefined() {
		name = src.Format(name, text.CaseFormatUpperCamel)
	}
	builder := strings.Builder{}
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			builder.WriteRune(r)
		}
	}
	ret := []rune(builder.String())
	if len(ret) == 0 || !unicode.IsLetter(ret[0]) {
		return "A" + string(ret)
	}
	ret[0] = unicode.ToUpper(ret[0])
	if !unicode.IsUpper(ret[0]) {
		return "A" + string(ret)
	}
	return string(ret)
}

func uniqueName(name string, used map[string]bool) string {
	candidate := name
	for i := 1; used[candidate]; i++ {
		candidate = name + strconv.Itoa(i)
	}
	used[candidate] = true
	return candidate
}

// Interface returns a pointer to a Go struct of StructOf type populated with struct values
func (s *Struct) Interface() (interface{}, error) {
	rType := s.structType.StructOf()
	if rType == nil {
		return nil, fmt.Errorf("failed to generate struct type for %v", s.structType.name)
	}
	ret := reflect.New(rType).Interface()
	if err := s.Bind(ret); err != nil {
		return nil, err
	}
	return ret, nil
}

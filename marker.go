package dstruct

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/viant/xunsafe"
)

type (
	// Marker represents Go struct attribute presence marker
	Marker struct {
		t        reflect.Type
		holder   *xunsafe.Field
		fields   []*xunsafe.Field
		index    map[string]int //owner field name to marker field position
		noStrict bool
	}

	// MarkerOption represents marker option
	MarkerOption func(m *Marker)
)

// WithMarkerIndex returns marker option with field name to position mapping
func WithMarkerIndex(index map[string]int) MarkerOption {
	return func(m *Marker) {
		m.index = index
	}
}

// WithNoStrictMarker returns marker option ignoring marker fields without owner field
func WithNoStrictMarker() MarkerOption {
	return func(m *Marker) {
		m.noStrict = true
	}
}

// Index returns mapped field position or -1
func (p *Marker) Index(name string) int {
	pos, ok := p.index[name]
	if !ok {
		return -1
	}
	return pos
}

// EnsureHolder allocates nil marker holder
func (p *Marker) EnsureHolder(ptr unsafe.Pointer) {
	if p.holder == nil || p.CanUseHolder(ptr) {
		return
	}
	holder := reflect.NewAt(p.holder.Type, p.holder.Pointer(ptr)).Elem()
	holder.Set(reflect.New(p.holder.Type.Elem()))
}

// CanUseHolder returns true if marker holder is set
func (p *Marker) CanUseHolder(ptr unsafe.Pointer) bool {
	if p.holder == nil {
		return false
	}
	if p.holder.Type.Kind() != reflect.Ptr {
		return true
	}
	return !p.holder.IsNil(ptr)
}

func (p *Marker) holderPointer(ptr unsafe.Pointer) unsafe.Pointer {
	if p.holder.Type.Kind() == reflect.Ptr {
		return p.holder.ValuePointer(ptr)
	}
	return p.holder.Pointer(ptr)
}

// Set sets field marker
func (p *Marker) Set(ptr unsafe.Pointer, pos int, flag bool) error {
	if !p.CanUseHolder(ptr) {
		return fmt.Errorf("holder was empty")
	}
	if pos < 0 || pos >= len(p.fields) || p.fields[pos] == nil {
		return fmt.Errorf("field at position %v was missing in set marker", pos)
	}
	p.fields[pos].SetBool(p.holderPointer(ptr), flag)
	return nil
}

// SetAll sets all marker fields with supplied flag
func (p *Marker) SetAll(ptr unsafe.Pointer, flag bool) error {
	if !p.CanUseHolder(ptr) {
		return fmt.Errorf("failed to set all due to holder was empty")
	}
	markerPtr := p.holderPointer(ptr)
	for _, field := range p.fields {
		if field == nil {
			continue
		}
		field.SetBool(markerPtr, flag)
	}
	return nil
}

// IsSet returns true if field has been flagged, without holder all fields are assumed set
func (p *Marker) IsSet(ptr unsafe.Pointer, pos int) bool {
	if !p.CanUseHolder(ptr) {
		return true
	}
	if pos < 0 || pos >= len(p.fields) || p.fields[pos] == nil {
		return false
	}
	return p.fields[pos].Bool(p.holderPointer(ptr))
}

func (p *Marker) init() error {
	if p.holder == nil {
		return fmt.Errorf("holder was empty for %s", p.t.String())
	}
	if len(p.index) == 0 {
		return fmt.Errorf("struct has no markable fields")
	}
	size := 0
	for _, pos := range p.index {
		if pos >= size {
			size = pos + 1
		}
	}
	p.fields = make([]*xunsafe.Field, size)
	holderType := ensureStruct(p.holder.Type)
	if holderType == nil {
		return fmt.Errorf("marker holder %v is not a struct", p.holder.Type)
	}
	for i := 0; i < holderType.NumField(); i++ {
		markerField := holderType.Field(i)
		pos, ok := p.index[markerField.Name]
		if !ok {
			if p.noStrict {
				continue
			}
			return fmt.Errorf("marker field: '%v' does not have corresponding struct field", markerField.Name)
		}
		if markerField.Type.Kind() != reflect.Bool {
			return fmt.Errorf("marker field: '%v' is not bool", markerField.Name)
		}
		p.fields[pos] = xunsafe.NewField(markerField)
	}
	return nil
}

// NewMarker returns Go struct presence marker, the struct needs a field tagged with setMarker
func NewMarker(t reflect.Type, opts ...MarkerOption) (*Marker, error) {
	if t = ensureStruct(t); t == nil {
		return nil, fmt.Errorf("supplied type is not struct")
	}
	var result = &Marker{t: t, index: make(map[string]int, t.NumField())}
	for _, opt := range opts {
		opt(result)
	}
	hasIndex := len(result.index) > 0
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if IsSetMarker(field.Tag) {
			result.holder = xunsafe.NewField(field)
			continue
		}
		if !hasIndex {
			result.index[field.Name] = i
		}
	}
	return result, result.init()
}

// HasMarker returns true if Go struct type defines marker holder
func HasMarker(t reflect.Type) bool {
	if t = ensureStruct(t); t == nil {
		return false
	}
	for i := 0; i < t.NumField(); i++ {
		if IsSetMarker(t.Field(i).Tag) {
			return true
		}
	}
	return false
}

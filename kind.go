package dstruct

import (
	"fmt"
	"strings"

	"github.com/viant/dstruct/cast"
)

// Kind represents attribute kind
type Kind int

const (
	// String string attribute kind
	String Kind = iota
	// Integer integer attribute kind
	Integer
	// Boolean boolean attribute kind
	Boolean
	// Array array attribute kind
	Array
	// Date date attribute kind
	Date
)

// kinds lists kinds in declaration processing order
var kinds = []Kind{String, Integer, Boolean, Array, Date}

// String returns kind name
func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Integer:
		return "integer"
	case Boolean:
		return "boolean"
	case Array:
		return "array"
	case Date:
		return "date"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// IsValid returns true if kind is defined
func (k Kind) IsValid() bool {
	return k >= String && k <= Date
}

func (k Kind) caster(set *cast.Set) cast.Func {
	switch k {
	case Integer:
		return set.Integer
	case Boolean:
		return set.Boolean
	case Array:
		return set.Array
	case Date:
		return set.Date
	}
	return set.String
}

// ParseKind parses kind name, both singular and plural forms are accepted
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "string", "strings", "str":
		return String, nil
	case "integer", "integers", "int", "ints":
		return Integer, nil
	case "boolean", "booleans", "bool", "bools":
		return Boolean, nil
	case "array", "arrays", "slice", "slices":
		return Array, nil
	case "date", "dates", "time":
		return Date, nil
	}
	return 0, fmt.Errorf("unsupported attribute kind: %q", name)
}

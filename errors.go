package dstruct

import (
	"sort"
	"strings"
)

// UnknownKeyMessage is reported for input key without declared attribute
const UnknownKeyMessage = "unknown key"

// ErrorMap represents attribute name to ordered error messages mapping
type ErrorMap map[string][]string

// IsEmpty returns true if there are no errors
func (e ErrorMap) IsEmpty() bool {
	return len(e) == 0
}

// Fields returns sorted attribute names with errors
func (e ErrorMap) Fields() []string {
	var result = make([]string, 0, len(e))
	for name := range e {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// Merge merges other errors, messages of the same attribute are replaced, not appended
func (e ErrorMap) Merge(other ErrorMap) ErrorMap {
	for name, messages := range other {
		e[name] = messages
	}
	return e
}

// Clone returns a copy
func (e ErrorMap) Clone() ErrorMap {
	if e == nil {
		return nil
	}
	var result = make(ErrorMap, len(e))
	for name, messages := range e {
		result[name] = append([]string(nil), messages...)
	}
	return result
}

// Error returns errors text
func (e ErrorMap) Error() string {
	builder := strings.Builder{}
	for i, name := range e.Fields() {
		if i > 0 {
			builder.WriteString("; ")
		}
		builder.WriteString(name)
		builder.WriteString(": ")
		builder.WriteString(strings.Join(e[name], ", "))
	}
	return builder.String()
}

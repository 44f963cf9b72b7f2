package dstruct

import (
	"reflect"
	"strings"
)

const (
	// TagName defines attribute kind tag, i.e. `dstruct:"date"`, `dstruct:"-"` skips a field
	TagName = "dstruct"

	// SetMarkerTag defines set marker tag
	SetMarkerTag = "setMarker"

	presenceMarkerTag = "presenceMarker"

	legacyMarkerTag = "presenceIndex"

	legacyTagFragment = "presence=true"
)

// IsSetMarker returns true if field holds attribute presence flags
func IsSetMarker(tag reflect.StructTag) bool {
	for _, name := range []string{SetMarkerTag, presenceMarkerTag, legacyMarkerTag} {
		if _, ok := tag.Lookup(name); ok {
			return true
		}
	}
	return strings.Contains(string(tag), legacyTagFragment)
}

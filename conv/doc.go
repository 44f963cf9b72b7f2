// Package conv provides a reflection-based value converter used to copy casted
// struct values into Go fields of a different but compatible type.
// It supports primitives with overflow checks, slices, time parsing and custom
// conversion functions registered per source/destination type.
package conv

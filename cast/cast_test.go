package cast

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type customInt int

type customFlag bool

func TestSet_String(t *testing.T) {
	var testCases = []struct {
		description string
		raw         interface{}
		expect      string
	}{
		{description: "string", raw: "abc", expect: "abc"},
		{description: "nil", raw: nil, expect: ""},
		{description: "int", raw: 123, expect: "123"},
		{description: "float", raw: 123.5, expect: "123.5"},
		{description: "integral float", raw: float64(12), expect: "12"},
		{description: "bool", raw: true, expect: "true"},
		{description: "bytes", raw: []byte("xyz"), expect: "xyz"},
		{description: "date", raw: time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC), expect: "2020-01-02"},
		{description: "error", raw: errors.New("boom"), expect: "boom"},
		{description: "slice", raw: []int{1, 2}, expect: "[1 2]"},
	}
	for _, testCase := range testCases {
		actual, ok := String(testCase.raw)
		assert.True(t, ok, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestSet_Integer(t *testing.T) {
	var testCases = []struct {
		description string
		raw         interface{}
		expect      interface{}
		expectOk    bool
	}{
		{description: "numeric string", raw: "123", expect: 123, expectOk: true},
		{description: "padded string", raw: " 42 ", expect: 42, expectOk: true},
		{description: "negative string", raw: "-7", expect: -7, expectOk: true},
		{description: "hex string", raw: "0x1A", expect: 26, expectOk: true},
		{description: "underscore string", raw: "1_000", expect: 1000, expectOk: true},
		{description: "int", raw: 5, expect: 5, expectOk: true},
		{description: "int64", raw: int64(64), expect: 64, expectOk: true},
		{description: "uint8", raw: uint8(8), expect: 8, expectOk: true},
		{description: "integral float", raw: float64(123), expect: 123, expectOk: true},
		{description: "json number", raw: json.Number("77"), expect: 77, expectOk: true},
		{description: "json number above float precision", raw: json.Number("9007199254740993"), expect: 9007199254740993, expectOk: true},
		{description: "integral json number", raw: json.Number("2.0"), expect: 2, expectOk: true},
		{description: "fractional json number", raw: json.Number("2.5")},
		{description: "named int", raw: customInt(3), expect: 3, expectOk: true},
		{description: "pointer", raw: func() *int { v := 9; return &v }(), expect: 9, expectOk: true},
		{description: "alpha string", raw: "abc"},
		{description: "fractional string", raw: "12.5"},
		{description: "fractional float", raw: 12.5},
		{description: "nan", raw: math.NaN()},
		{description: "nil", raw: nil},
		{description: "empty string", raw: ""},
		{description: "bool", raw: true},
		{description: "overflow", raw: uint64(math.MaxUint64)},
		{description: "struct", raw: struct{ ID int }{ID: 1}},
	}
	for _, testCase := range testCases {
		actual, ok := Integer(testCase.raw)
		assert.Equal(t, testCase.expectOk, ok, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestSet_Boolean(t *testing.T) {
	yes := true
	var testCases = []struct {
		description string
		raw         interface{}
		expect      interface{}
		expectOk    bool
	}{
		{description: "true", raw: true, expect: true, expectOk: true},
		{description: "false", raw: false, expect: false, expectOk: true},
		{description: "pointer", raw: &yes, expect: true, expectOk: true},
		{description: "named bool", raw: customFlag(true), expect: true, expectOk: true},
		{description: "nil", raw: nil},
		{description: "nil pointer", raw: (*bool)(nil)},
		{description: "true string", raw: "true"},
		{description: "false string", raw: "false"},
		{description: "zero", raw: 0},
		{description: "one", raw: 1},
	}
	for _, testCase := range testCases {
		actual, ok := Boolean(testCase.raw)
		assert.Equal(t, testCase.expectOk, ok, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestSet_Array(t *testing.T) {
	var testCases = []struct {
		description string
		raw         interface{}
		expect      interface{}
		expectOk    bool
	}{
		{description: "slice", raw: []interface{}{1}, expect: []interface{}{1}, expectOk: true},
		{description: "typed slice", raw: []string{"a", "b"}, expect: []string{"a", "b"}, expectOk: true},
		{description: "array", raw: [2]int{1, 2}, expect: []interface{}{1, 2}, expectOk: true},
		{description: "scalar", raw: "abc", expect: []interface{}{"abc"}, expectOk: true},
		{description: "number", raw: 3, expect: []interface{}{3}, expectOk: true},
		{description: "nil", raw: nil, expect: []interface{}{}, expectOk: true},
		{description: "slice pointer", raw: &[]int{4}, expect: []int{4}, expectOk: true},
		{description: "map", raw: map[string]interface{}{"a": 1}},
		{description: "func", raw: func() {}},
	}
	for _, testCase := range testCases {
		actual, ok := Array(testCase.raw)
		assert.Equal(t, testCase.expectOk, ok, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestSet_Date(t *testing.T) {
	expect := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	var testCases = []struct {
		description string
		raw         interface{}
		options     []Option
		expectOk    bool
	}{
		{description: "iso date", raw: "2020-01-02", expectOk: true},
		{description: "rfc3339", raw: "2020-01-02T15:04:05Z", expectOk: true},
		{description: "rfc3339 with offset", raw: "2020-01-02T23:30:00+02:00", expectOk: true},
		{description: "slashes", raw: "2020/01/02", expectOk: true},
		{description: "compact number", raw: 20200102, expectOk: true},
		{description: "text month", raw: "Jan 2, 2020", expectOk: true},
		{description: "time value", raw: time.Date(2020, 1, 2, 10, 11, 12, 0, time.UTC), expectOk: true},
		{description: "custom layout", raw: "02|01|2020", options: []Option{WithDateLayouts("02|01|2006")}, expectOk: true},
		{description: "iso date format", raw: "02.01.2020", options: []Option{WithDateFormat("DD.MM.YYYY")}, expectOk: true},
		{description: "garbage", raw: "not a date"},
		{description: "nil", raw: nil},
		{description: "empty", raw: ""},
		{description: "bool", raw: true},
	}
	for _, testCase := range testCases {
		set := NewSet(testCase.options...)
		actual, ok := set.Date(testCase.raw)
		assert.Equal(t, testCase.expectOk, ok, testCase.description)
		if !testCase.expectOk {
			assert.Nil(t, actual, testCase.description)
			continue
		}
		assert.True(t, expect.Equal(actual.(time.Time)), testCase.description)
	}
}

func TestSet_Idempotent(t *testing.T) {
	set := NewSet()
	var testCases = []struct {
		description string
		caster      Func
		raw         interface{}
	}{
		{description: "string", caster: set.String, raw: 12},
		{description: "integer", caster: set.Integer, raw: "12"},
		{description: "boolean", caster: set.Boolean, raw: false},
		{description: "array", caster: set.Array, raw: "x"},
		{description: "date", caster: set.Date, raw: "2021-03-04T05:06:07Z"},
	}
	for _, testCase := range testCases {
		first, ok := testCase.caster(testCase.raw)
		assert.True(t, ok, testCase.description)
		second, ok := testCase.caster(first)
		assert.True(t, ok, testCase.description)
		assert.Equal(t, first, second, testCase.description)
	}
}

package conv

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConverter_Convert(t *testing.T) {
	converter := NewConverter(DefaultOptions())
	age := 30
	var testCases = []struct {
		description string
		src         interface{}
		dest        func() interface{}
		expect      interface{}
		expectError bool
	}{
		{description: "int to string", src: 123, dest: func() interface{} { return new(string) }, expect: "123"},
		{description: "bytes to string", src: []byte("abc"), dest: func() interface{} { return new(string) }, expect: "abc"},
		{description: "string to int", src: "42", dest: func() interface{} { return new(int) }, expect: 42},
		{description: "int to int8", src: 100, dest: func() interface{} { return new(int8) }, expect: int8(100)},
		{description: "int8 overflow", src: 1000, dest: func() interface{} { return new(int8) }, expectError: true},
		{description: "int to uint16", src: 7, dest: func() interface{} { return new(uint16) }, expect: uint16(7)},
		{description: "negative to uint", src: -1, dest: func() interface{} { return new(uint) }, expectError: true},
		{description: "int to float", src: 2, dest: func() interface{} { return new(float64) }, expect: float64(2)},
		{description: "int to pointer", src: 30, dest: func() interface{} { return new(*int) }, expect: &age},
		{description: "string to bool", src: "true", dest: func() interface{} { return new(bool) }, expect: true},
		{description: "interfaces to strings", src: []interface{}{"a", "b"}, dest: func() interface{} { return new([]string) }, expect: []string{"a", "b"}},
		{description: "mixed to floats", src: []interface{}{1.5, 2}, dest: func() interface{} { return new([]float64) }, expect: []float64{1.5, 2}},
		{description: "strings to interfaces", src: []string{"x"}, dest: func() interface{} { return new([]interface{}) }, expect: []interface{}{"x"}},
		{description: "scalar to slice", src: 5, dest: func() interface{} { return new([]int) }, expect: []int{5}},
		{description: "string to time", src: "2001-02-03", dest: func() interface{} { return new(time.Time) }, expect: time.Date(2001, 2, 3, 0, 0, 0, 0, time.UTC)},
		{description: "map to int", src: map[string]int{}, dest: func() interface{} { return new(int) }, expectError: true},
	}
	for _, testCase := range testCases {
		dest := testCase.dest()
		err := converter.Convert(testCase.src, dest)
		if testCase.expectError {
			assert.Error(t, err, testCase.description)
			continue
		}
		if !assert.NoError(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, reflect.ValueOf(dest).Elem().Interface(), testCase.description)
	}
}

func TestConverter_RegisterConversion(t *testing.T) {
	converter := NewConverter(Options{DateLayout: "02|01|2006"})
	converter.RegisterConversion(reflect.TypeOf(time.Time{}), reflect.TypeOf(""), func(src interface{}, dest interface{}, opts Options) error {
		*(dest.(*string)) = src.(time.Time).Format(opts.DateLayout)
		return nil
	})
	var text string
	assert.NoError(t, converter.Convert(time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC), &text))
	assert.Equal(t, "02|01|2020", text)

	var ts time.Time
	assert.NoError(t, converter.Convert("05|06|2021", &ts))
	assert.Equal(t, time.Date(2021, 6, 5, 0, 0, 0, 0, time.UTC), ts)
}

func TestConverter_ConvertInvalidDest(t *testing.T) {
	converter := NewConverter(DefaultOptions())
	var value int
	assert.Error(t, converter.Convert(1, nil))
	assert.Error(t, converter.Convert(1, value))
	assert.Error(t, converter.Convert(1, (*int)(nil)))
	assert.NoError(t, converter.Convert(nil, &value))
	assert.Equal(t, 0, value)
}

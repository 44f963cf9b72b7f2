package cast

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the layout used to render date only values
const DateLayout = "2006-01-02"

// Func casts a raw value, ok is false when no value could be produced
type Func func(raw interface{}) (value interface{}, ok bool)

// Set represents a set of kind casters sharing options
type Set struct {
	options Options
	layouts []string
}

var builtInLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.000",
	"2006-01-02 15:04:05",
	DateLayout,
	"2006/01/02",
	"20060102",
	"02 Jan 2006",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"Mon, 2 Jan 2006",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.RFC822Z,
	time.RFC822,
	time.UnixDate,
	time.ANSIC,
}

var defaultSet = NewSet()

// NewSet creates a caster set
func NewSet(opts ...Option) *Set {
	ret := &Set{}
	ret.options.Apply(opts...)
	ret.layouts = make([]string, 0, len(ret.options.DateLayouts)+len(builtInLayouts))
	ret.layouts = append(ret.layouts, ret.options.DateLayouts...)
	ret.layouts = append(ret.layouts, builtInLayouts...)
	return ret
}

// Options returns set options
func (s *Set) Options() Options {
	return s.options
}

// String casts raw value to string, it always succeeds
func (s *Set) String(raw interface{}) (interface{}, bool) {
	return asString(raw), true
}

// Integer casts raw value to int, fractional or non numeric values yield no value
func (s *Set) Integer(raw interface{}) (interface{}, bool) {
	switch actual := raw.(type) {
	case nil:
		return nil, false
	case int:
		return actual, true
	case int8:
		return int(actual), true
	case int16:
		return int(actual), true
	case int32:
		return int(actual), true
	case int64:
		return int64ToInt(actual)
	case uint:
		return uint64ToInt(uint64(actual))
	case uint8:
		return int(actual), true
	case uint16:
		return int(actual), true
	case uint32:
		return uint64ToInt(uint64(actual))
	case uint64:
		return uint64ToInt(actual)
	case float32:
		return floatToInt(float64(actual))
	case float64:
		return floatToInt(actual)
	case json.Number:
		if ret, ok := parseInt(string(actual)); ok {
			return ret, true
		}
		value, err := actual.Float64()
		if err != nil {
			return nil, false
		}
		return floatToInt(value)
	case string:
		return parseInt(actual)
	case []byte:
		return parseInt(string(actual))
	case bool:
		return nil, false
	}
	rValue := reflect.ValueOf(raw)
	switch rValue.Kind() {
	case reflect.Ptr:
		if rValue.IsNil() {
			return nil, false
		}
		return s.Integer(rValue.Elem().Interface())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int64ToInt(rValue.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return uint64ToInt(rValue.Uint())
	case reflect.Float32, reflect.Float64:
		return floatToInt(rValue.Float())
	case reflect.String:
		return parseInt(rValue.String())
	}
	return nil, false
}

// Boolean casts raw value to bool, only boolean literals are accepted
func (s *Set) Boolean(raw interface{}) (interface{}, bool) {
	switch actual := raw.(type) {
	case nil:
		return nil, false
	case bool:
		return actual, true
	case *bool:
		if actual == nil {
			return nil, false
		}
		return *actual, true
	}
	if rValue := reflect.ValueOf(raw); rValue.Kind() == reflect.Bool {
		return rValue.Bool(), true
	}
	return nil, false
}

// Array casts raw value to a sequence, scalars are wrapped, slices pass through
func (s *Set) Array(raw interface{}) (interface{}, bool) {
	if raw == nil {
		return []interface{}{}, true
	}
	rValue := reflect.ValueOf(raw)
	switch rValue.Kind() {
	case reflect.Slice:
		return raw, true
	case reflect.Array:
		ret := make([]interface{}, rValue.Len())
		for i := range ret {
			ret[i] = rValue.Index(i).Interface()
		}
		return ret, true
	case reflect.Ptr:
		if rValue.IsNil() {
			return []interface{}{}, true
		}
		switch rValue.Elem().Kind() {
		case reflect.Slice, reflect.Array:
			return s.Array(rValue.Elem().Interface())
		}
		return []interface{}{raw}, true
	case reflect.Map, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return nil, false
	}
	return []interface{}{raw}, true
}

// Date casts raw value to a UTC date (time.Time at midnight)
func (s *Set) Date(raw interface{}) (interface{}, bool) {
	switch actual := raw.(type) {
	case nil:
		return nil, false
	case time.Time:
		return truncateDate(actual), true
	case *time.Time:
		if actual == nil {
			return nil, false
		}
		return truncateDate(*actual), true
	case bool:
		return nil, false
	}
	text := strings.TrimSpace(asString(raw))
	if text == "" {
		return nil, false
	}
	for _, layout := range s.layouts {
		if ts, err := time.Parse(layout, text); err == nil {
			return truncateDate(ts), true
		}
	}
	return nil, false
}

// String casts raw value with default set
func String(raw interface{}) (interface{}, bool) { return defaultSet.String(raw) }

// Integer casts raw value with default set
func Integer(raw interface{}) (interface{}, bool) { return defaultSet.Integer(raw) }

// Boolean casts raw value with default set
func Boolean(raw interface{}) (interface{}, bool) { return defaultSet.Boolean(raw) }

// Array casts raw value with default set
func Array(raw interface{}) (interface{}, bool) { return defaultSet.Array(raw) }

// Date casts raw value with default set
func Date(raw interface{}) (interface{}, bool) { return defaultSet.Date(raw) }

func asString(raw interface{}) string {
	switch actual := raw.(type) {
	case nil:
		return ""
	case string:
		return actual
	case []byte:
		return string(actual)
	case bool:
		return strconv.FormatBool(actual)
	case int:
		return strconv.Itoa(actual)
	case int64:
		return strconv.FormatInt(actual, 10)
	case int32:
		return strconv.FormatInt(int64(actual), 10)
	case uint64:
		return strconv.FormatUint(actual, 10)
	case float32:
		return strconv.FormatFloat(float64(actual), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(actual, 'f', -1, 64)
	case json.Number:
		return actual.String()
	case time.Time:
		return formatTime(actual)
	case *time.Time:
		if actual == nil {
			return ""
		}
		return formatTime(*actual)
	case fmt.Stringer:
		return actual.String()
	case error:
		return actual.Error()
	}
	return fmt.Sprint(raw)
}

func formatTime(ts time.Time) string {
	if ts.Equal(truncateDate(ts)) && ts.Location() == time.UTC {
		return ts.Format(DateLayout)
	}
	return ts.Format(time.RFC3339Nano)
}

func truncateDate(ts time.Time) time.Time {
	year, month, day := ts.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func parseInt(text string) (interface{}, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, false
	}
	value, err := strconv.ParseInt(text, 0, strconv.IntSize)
	if err != nil {
		return nil, false
	}
	return int(value), true
}

func int64ToInt(value int64) (interface{}, bool) {
	if value > math.MaxInt || value < math.MinInt {
		return nil, false
	}
	return int(value), true
}

func uint64ToInt(value uint64) (interface{}, bool) {
	if value > math.MaxInt {
		return nil, false
	}
	return int(value), true
}

func floatToInt(value float64) (interface{}, bool) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value != math.Trunc(value) {
		return nil, false
	}
	if value >= math.MaxInt || value < math.MinInt {
		return nil, false
	}
	return int(value), true
}

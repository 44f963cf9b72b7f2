package conv

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"
)

// DefaultDateLayout is the default layout used for time parsing when no layout is specified
const DefaultDateLayout = "2006-01-02"

var timeType = reflect.TypeOf(time.Time{})

type (
	// Options contains converter configuration
	Options struct {
		// DateLayout specifies the layout for time parsing
		DateLayout string
	}

	// Converter converts values between Go types
	Converter struct {
		options       Options
		customConvMap sync.Map // map[typeKey]ConversionFunc
	}

	// ConversionFunc defines a custom conversion function, dest is a pointer to destination type
	ConversionFunc func(src interface{}, dest interface{}, opts Options) error

	typeKey struct {
		srcType  reflect.Type
		destType reflect.Type
	}
)

// DefaultOptions returns default conversion options
func DefaultOptions() Options {
	return Options{DateLayout: DefaultDateLayout}
}

// NewConverter creates a converter
func NewConverter(options Options) *Converter {
	return &Converter{options: options}
}

// RegisterConversion registers a custom conversion function between source and destination types
func (c *Converter) RegisterConversion(srcType, destType reflect.Type, fn ConversionFunc) {
	c.customConvMap.Store(typeKey{srcType, destType}, fn)
}

// Convert converts src into value pointed by dest; nil src leaves dest untouched
func (c *Converter) Convert(src interface{}, dest interface{}) error {
	if dest == nil {
		return errors.New("destination cannot be nil")
	}
	destValue := reflect.ValueOf(dest)
	if destValue.Kind() != reflect.Ptr {
		return errors.New("destination must be a pointer")
	}
	if destValue.IsNil() {
		return errors.New("destination pointer cannot be nil")
	}
	if src == nil {
		return nil
	}
	srcValue := reflect.ValueOf(src)
	srcType := srcValue.Type()
	destType := destValue.Elem().Type()

	if v, ok := c.customConvMap.Load(typeKey{srcType, destType}); ok {
		return v.(ConversionFunc)(src, dest, c.options)
	}
	if srcType.AssignableTo(destType) {
		destValue.Elem().Set(srcValue)
		return nil
	}

	switch destType.Kind() {
	case reflect.String:
		return c.convertToString(destValue, srcValue)
	case reflect.Bool:
		return c.convertToBool(destValue, srcValue)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return c.convertToInt(destValue, srcValue)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return c.convertToUint(destValue, srcValue)
	case reflect.Float32, reflect.Float64:
		return c.convertToFloat(destValue, srcValue)
	case reflect.Ptr:
		item := reflect.New(destType.Elem())
		if err := c.Convert(src, item.Interface()); err != nil {
			return err
		}
		destValue.Elem().Set(item)
		return nil
	}

	if srcType.ConvertibleTo(destType) {
		destValue.Elem().Set(srcValue.Convert(destType))
		return nil
	}
	return c.convertComplex(destValue, srcValue)
}

func (c *Converter) convertComplex(destValue, srcValue reflect.Value) error {
	srcValue = indirect(srcValue)
	if !srcValue.IsValid() {
		return nil
	}
	destType := destValue.Type().Elem()
	switch destType.Kind() {
	case reflect.Slice:
		return c.convertToSlice(destValue, srcValue)
	case reflect.Struct:
		if destType == timeType {
			return c.convertToTime(destValue, srcValue)
		}
	}
	return fmt.Errorf("unsupported conversion: %v to %v", srcValue.Type(), destType)
}

func (c *Converter) convertToString(destValue, srcValue reflect.Value) error {
	var result string
	switch srcValue.Kind() {
	case reflect.String:
		result = srcValue.String()
	case reflect.Bool:
		result = strconv.FormatBool(srcValue.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result = strconv.FormatInt(srcValue.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		result = strconv.FormatUint(srcValue.Uint(), 10)
	case reflect.Float32:
		result = strconv.FormatFloat(srcValue.Float(), 'f', -1, 32)
	case reflect.Float64:
		result = strconv.FormatFloat(srcValue.Float(), 'f', -1, 64)
	case reflect.Slice:
		if srcValue.Type().Elem().Kind() != reflect.Uint8 {
			return fmt.Errorf("cannot convert %v to string", srcValue.Type())
		}
		result = string(srcValue.Bytes())
	default:
		return fmt.Errorf("cannot convert %v to string", srcValue.Type())
	}
	destValue.Elem().SetString(result)
	return nil
}

func (c *Converter) convertToBool(destValue, srcValue reflect.Value) error {
	var result bool
	switch srcValue.Kind() {
	case reflect.Bool:
		result = srcValue.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result = srcValue.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		result = srcValue.Uint() != 0
	case reflect.String:
		var err error
		if result, err = strconv.ParseBool(srcValue.String()); err != nil {
			return err
		}
	default:
		return fmt.Errorf("cannot convert %v to bool", srcValue.Type())
	}
	destValue.Elem().SetBool(result)
	return nil
}

func (c *Converter) convertToInt(destValue, srcValue reflect.Value) error {
	var result int64
	switch srcValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result = srcValue.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := srcValue.Uint()
		if v > uint64(1<<63-1) {
			return fmt.Errorf("value %d overflows %v", v, destValue.Elem().Type())
		}
		result = int64(v)
	case reflect.Float32, reflect.Float64:
		result = int64(srcValue.Float())
	case reflect.Bool:
		if srcValue.Bool() {
			result = 1
		}
	case reflect.String:
		var err error
		if strings.Contains(srcValue.String(), ".") {
			var f float64
			f, err = strconv.ParseFloat(srcValue.String(), 64)
			result = int64(f)
		} else {
			result, err = strconv.ParseInt(strings.TrimSpace(srcValue.String()), 0, 64)
		}
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("cannot convert %v to int", srcValue.Type())
	}
	if destValue.Elem().OverflowInt(result) {
		return fmt.Errorf("value %d overflows %v", result, destValue.Elem().Type())
	}
	destValue.Elem().SetInt(result)
	return nil
}

func (c *Converter) convertToUint(destValue, srcValue reflect.Value) error {
	var result uint64
	switch srcValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := srcValue.Int()
		if v < 0 {
			return fmt.Errorf("cannot convert negative value %d to unsigned int", v)
		}
		result = uint64(v)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		result = srcValue.Uint()
	case reflect.Float32, reflect.Float64:
		v := srcValue.Float()
		if v < 0 {
			return fmt.Errorf("cannot convert negative value %f to unsigned int", v)
		}
		result = uint64(v)
	case reflect.Bool:
		if srcValue.Bool() {
			result = 1
		}
	case reflect.String:
		var err error
		if result, err = strconv.ParseUint(strings.TrimSpace(srcValue.String()), 0, 64); err != nil {
			return err
		}
	default:
		return fmt.Errorf("cannot convert %v to uint", srcValue.Type())
	}
	if destValue.Elem().OverflowUint(result) {
		return fmt.Errorf("value %d overflows %v", result, destValue.Elem().Type())
	}
	destValue.Elem().SetUint(result)
	return nil
}

func (c *Converter) convertToFloat(destValue, srcValue reflect.Value) error {
	var result float64
	switch srcValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result = float64(srcValue.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		result = float64(srcValue.Uint())
	case reflect.Float32, reflect.Float64:
		result = srcValue.Float()
	case reflect.String:
		var err error
		if result, err = strconv.ParseFloat(strings.TrimSpace(srcValue.String()), 64); err != nil {
			return err
		}
	default:
		return fmt.Errorf("cannot convert %v to float", srcValue.Type())
	}
	if destValue.Elem().OverflowFloat(result) {
		return fmt.Errorf("value %v overflows %v", result, destValue.Elem().Type())
	}
	destValue.Elem().SetFloat(result)
	return nil
}

func (c *Converter) convertToTime(destValue, srcValue reflect.Value) error {
	var ts time.Time
	switch srcValue.Kind() {
	case reflect.String:
		layout := c.options.DateLayout
		if layout == "" {
			layout = DefaultDateLayout
		}
		var err error
		for _, candidate := range []string{layout, time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
			if ts, err = time.Parse(candidate, srcValue.String()); err == nil {
				break
			}
		}
		if err != nil {
			return fmt.Errorf("cannot parse time string '%s': %w", srcValue.String(), err)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		ts = time.Unix(srcValue.Int(), 0).UTC()
	case reflect.Struct:
		if srcValue.Type() != timeType {
			return fmt.Errorf("cannot convert struct %v to time.Time", srcValue.Type())
		}
		ts = srcValue.Interface().(time.Time)
	default:
		return fmt.Errorf("cannot convert %v to time.Time", srcValue.Type())
	}
	destValue.Elem().Set(reflect.ValueOf(ts))
	return nil
}

func (c *Converter) convertToSlice(destValue, srcValue reflect.Value) error {
	destType := destValue.Type().Elem()
	destElemType := destType.Elem()
	if destElemType.Kind() == reflect.Uint8 && srcValue.Kind() == reflect.String {
		destValue.Elem().SetBytes([]byte(srcValue.String()))
		return nil
	}
	if srcValue.Kind() != reflect.Slice && srcValue.Kind() != reflect.Array {
		item := reflect.New(destElemType)
		if err := c.Convert(srcValue.Interface(), item.Interface()); err != nil {
			return err
		}
		sliceValue := reflect.MakeSlice(destType, 1, 1)
		sliceValue.Index(0).Set(item.Elem())
		destValue.Elem().Set(sliceValue)
		return nil
	}
	length := srcValue.Len()
	sliceValue := reflect.MakeSlice(destType, length, length)
	for i := 0; i < length; i++ {
		item := reflect.New(destElemType)
		if err := c.Convert(srcValue.Index(i).Interface(), item.Interface()); err != nil {
			return fmt.Errorf("error converting slice element %d: %w", i, err)
		}
		sliceValue.Index(i).Set(item.Elem())
	}
	destValue.Elem().Set(sliceValue)
	return nil
}

func indirect(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Ptr && !v.IsNil() {
		v = v.Elem()
	}
	return v
}

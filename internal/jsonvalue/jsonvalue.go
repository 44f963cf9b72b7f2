// Package jsonvalue converts canonical struct values into plain JSON values
// (nil, bool, float64, string, []interface{}, map[string]interface{}).
package jsonvalue

import (
	"fmt"
	"reflect"
	"time"

	"github.com/goccy/go-json"
)

// DateLayout is used to render date values
const DateLayout = "2006-01-02"

// Normalize converts canonical mapping into JSON object value
func Normalize(canonical map[string]interface{}) (map[string]interface{}, error) {
	prepared := make(map[string]interface{}, len(canonical))
	for key, value := range canonical {
		prepared[key] = prepare(value)
	}
	data, err := json.Marshal(prepared)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize canonical values: %w", err)
	}
	var result map[string]interface{}
	if err = json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to normalize canonical values: %w", err)
	}
	return result, nil
}

func prepare(value interface{}) interface{} {
	switch actual := value.(type) {
	case nil:
		return nil
	case time.Time:
		return formatTime(actual)
	case *time.Time:
		if actual == nil {
			return nil
		}
		return formatTime(*actual)
	case []interface{}:
		result := make([]interface{}, len(actual))
		for i, item := range actual {
			result[i] = prepare(item)
		}
		return result
	}
	rValue := reflect.ValueOf(value)
	if rValue.Kind() == reflect.Slice && rValue.Type().Elem() == reflect.TypeOf(time.Time{}) {
		result := make([]interface{}, rValue.Len())
		for i := range result {
			result[i] = prepare(rValue.Index(i).Interface())
		}
		return result
	}
	return value
}

func formatTime(ts time.Time) string {
	if ts.Hour() == 0 && ts.Minute() == 0 && ts.Second() == 0 && ts.Nanosecond() == 0 {
		return ts.Format(DateLayout)
	}
	return ts.Format(time.RFC3339Nano)
}

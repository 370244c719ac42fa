package conv

import (
	"fmt"
	"reflect"
)

// AsObject returns v as a string keyed map.
func AsObject(v any) (map[string]any, bool) {
	switch actual := v.(type) {
	case map[string]any:
		return actual, true
	case map[string]string:
		result := make(map[string]any, len(actual))
		for k, item := range actual {
			result[k] = item
		}
		return result, true
	case map[any]any:
		result := make(map[string]any, len(actual))
		for k, item := range actual {
			key, ok := k.(string)
			if !ok {
				key = fmt.Sprint(k)
			}
			result[key] = item
		}
		return result, true
	}
	return nil, false
}

// AsSlice returns v as []any for any slice or array value.
func AsSlice(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	if actual, ok := v.([]any); ok {
		return actual, true
	}
	value := reflect.ValueOf(v)
	switch value.Kind() {
	case reflect.Slice, reflect.Array:
		result := make([]any, value.Len())
		for i := range result {
			result[i] = value.Index(i).Interface()
		}
		return result, true
	}
	return nil, false
}

// AsStringMap returns v as map[string]string; every value has to be a string.
func AsStringMap(v any) (map[string]string, bool) {
	if actual, ok := v.(map[string]string); ok {
		result := make(map[string]string, len(actual))
		for k, item := range actual {
			result[k] = item
		}
		return result, true
	}
	object, ok := AsObject(v)
	if !ok {
		return nil, false
	}
	result := make(map[string]string, len(object))
	for k, item := range object {
		text, ok := item.(string)
		if !ok {
			return nil, false
		}
		result[k] = text
	}
	return result, true
}

// Package jsonhelpers provides helper functions for building and decoding the
// generic map representation of an OpenAPI document, with support for the
// fields that are not modelled explicitly (x-* extensions and everything else
// captured in Extra).
//
// The Get* helpers remove the key they read, so whatever is left in the map
// after all known fields were taken is exactly the Extra content.
package jsonhelpers

import (
	"encoding/json"
	"fmt"
	"maps"
)

// MarshalWithExtras marshals a base map while merging in extra fields.
// This is used in custom MarshalJSON implementations to combine known fields
// with unknown fields (typically x-* properties).
func MarshalWithExtras(base map[string]any, extras map[string]any) ([]byte, error) {
	maps.Copy(base, extras)
	return json.Marshal(base)
}

// Normalize converts every map[any]any produced by the YAML decoder (for
// example for unquoted numeric response codes) into map[string]any, recursively.
func Normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, item := range val {
			val[k] = Normalize(item)
		}
		return val
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = Normalize(item)
		}
		return out
	case []any:
		for i, item := range val {
			val[i] = Normalize(item)
		}
		return val
	default:
		return v
	}
}

// GetString extracts a string value from a map and removes it.
// Scalars that are not strings (e.g. an unquoted version 1.0) are formatted.
func GetString(m map[string]any, key string) string {
	v, ok := m[key]
	if !ok {
		return ""
	}
	delete(m, key)
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	case map[string]any, []any:
		return ""
	default:
		return fmt.Sprint(s)
	}
}

// GetBool extracts a boolean value from a map and removes it.
// Returns false if the key doesn't exist or value is not a bool.
func GetBool(m map[string]any, key string) bool {
	if v, ok := m[key]; ok {
		delete(m, key)
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// GetStringSlice extracts a list of strings from a map and removes it.
// Non-string entries are skipped.
func GetStringSlice(m map[string]any, key string) []string {
	if v, ok := m[key]; ok {
		delete(m, key)
		if arr, ok := v.([]any); ok {
			result := make([]string, 0, len(arr))
			for _, item := range arr {
				if s, ok := item.(string); ok {
					result = append(result, s)
				}
			}
			return result
		}
	}
	return nil
}

// GetMap extracts a nested object from a map and removes it.
// Returns nil if the key doesn't exist or the value is not an object.
func GetMap(m map[string]any, key string) map[string]any {
	if v, ok := m[key]; ok {
		delete(m, key)
		if obj, ok := v.(map[string]any); ok {
			return obj
		}
	}
	return nil
}

// GetSlice extracts a list from a map and removes it.
func GetSlice(m map[string]any, key string) []any {
	if v, ok := m[key]; ok {
		delete(m, key)
		if arr, ok := v.([]any); ok {
			return arr
		}
	}
	return nil
}

// GetAny extracts any value from a map and removes it.
func GetAny(m map[string]any, key string) any {
	if v, ok := m[key]; ok {
		delete(m, key)
		return v
	}
	return nil
}

// Remainder returns m when it still holds keys, nil otherwise.
func Remainder(m map[string]any) map[string]any {
	if len(m) == 0 {
		return nil
	}
	return m
}

// SetIfNotEmpty sets a string value if it is not empty.
func SetIfNotEmpty(m map[string]any, key string, value string) {
	if value != "" {
		m[key] = value
	}
}

// SetIfNotNil sets a value if it is not nil.
// Callers holding typed pointers use SetIfPtrNotNil instead.
func SetIfNotNil(m map[string]any, key string, value any) {
	if value != nil {
		m[key] = value
	}
}

// SetIfPtrNotNil sets a pointer value if the pointer is not nil.
func SetIfPtrNotNil[T any](m map[string]any, key string, value *T) {
	if value != nil {
		m[key] = value
	}
}

// SetIfTrue sets a boolean value only when it is true.
func SetIfTrue(m map[string]any, key string, value bool) {
	if value {
		m[key] = value
	}
}

// SetIfSliceNotEmpty sets a slice value if it is not empty.
func SetIfSliceNotEmpty[T any](m map[string]any, key string, value []T) {
	if len(value) > 0 {
		m[key] = value
	}
}

// SetIfMapNotEmpty sets a map value if it is not empty.
func SetIfMapNotEmpty[K comparable, V any](m map[string]any, key string, value map[K]V) {
	if len(value) > 0 {
		m[key] = value
	}
}

package nhl

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// decodeJSON deserializes a success-path body into the target shape.
// Unknown payload fields are ignored so upstream additions never break
// decoding; any structural failure surfaces as a DecodeError carrying
// the shape name.
func decodeJSON(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return &DecodeError{Shape: shapeName(v), Err: err}
	}
	return nil
}

// requireFields checks that every named payload key is present in the
// raw object. Shapes whose fields must not silently zero-fill call
// this from their UnmarshalJSON before decoding proper.
func requireFields(data []byte, shape string, fields ...string) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return &DecodeError{Shape: shape, Err: err}
	}
	for _, f := range fields {
		if _, ok := raw[f]; !ok {
			return &DecodeError{Shape: shape, Field: f}
		}
	}
	return nil
}

func shapeName(v any) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return fmt.Sprintf("%T", v)
	}
	return t.Name()
}

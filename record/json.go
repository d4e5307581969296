package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Object is a decoded JSON object that remembers the order its keys appeared
// in the document. Values are *Object, []any, string, float64, bool, or nil.
type Object struct {
	keys   []string
	values map[string]any
}

// Len returns the number of keys.
func (o *Object) Len() int {
	return len(o.keys)
}

// Keys returns the keys in document order.
func (o *Object) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Get returns the value for key and whether the key is present.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

func (o *Object) set(key string, v any) {
	if o.values == nil {
		o.values = make(map[string]any)
	}
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Decode parses a JSON document, preserving object key order.
// encoding/json's map[string]any loses the order, which would make column
// ordering nondeterministic, so objects are decoded off the token stream.
func Decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}

	// Anything after the first value means the body was not a single
	// JSON document.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after JSON value")
	}

	return v, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		// string, float64, bool, or nil
		return tok, nil
	}

	switch delim {
	case '{':
		return decodeObject(dec)
	case '[':
		return decodeArray(dec)
	default:
		return nil, fmt.Errorf("unexpected delimiter %q", delim)
	}
}

func decodeObject(dec *json.Decoder) (*Object, error) {
	obj := &Object{values: make(map[string]any)}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode object key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %T, not string", keyTok)
		}

		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj.set(key, v)
	}

	// Consume the closing '}'.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode object end: %w", err)
	}

	return obj, nil
}

func decodeArray(dec *json.Decoder) ([]any, error) {
	arr := []any{}

	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}

	// Consume the closing ']'.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode array end: %w", err)
	}

	return arr, nil
}

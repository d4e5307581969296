package record

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyResult reports that one of the broker's "no data" markers was found
// where a record set was expected. The broker does not reliably distinguish
// "no rows" from "feature unavailable", so this is kept separate from a
// genuinely empty but well-formed record set.
var ErrEmptyResult = errors.New("empty result")

// IsEmptyMarker reports whether v is one of the broker's "no data"
// representations: JSON null or the literal string "null". Which form a
// given endpoint uses is not consistent, so every documented key-path check
// goes through this one predicate. An absent key is the third form and is
// handled by Lookup directly.
func IsEmptyMarker(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == "null"
}

// Lookup walks a documented key path into a decoded response envelope and
// returns the value at the end of it. An absent key or an empty marker at
// any step yields ErrEmptyResult.
func Lookup(v any, path ...string) (any, error) {
	cur := v
	for i, key := range path {
		at := strings.Join(path[:i+1], ".")

		if IsEmptyMarker(cur) {
			return nil, fmt.Errorf("%s: %w", at, ErrEmptyResult)
		}
		obj, ok := cur.(*Object)
		if !ok {
			return nil, fmt.Errorf("%s: expected object, got %T", at, cur)
		}
		next, ok := obj.Get(key)
		if !ok {
			return nil, fmt.Errorf("%s: %w", at, ErrEmptyResult)
		}
		cur = next
	}

	if IsEmptyMarker(cur) {
		return nil, fmt.Errorf("%s: %w", strings.Join(path, "."), ErrEmptyResult)
	}
	return cur, nil
}

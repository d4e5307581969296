// Package record flattens the broker's nested JSON responses into
// rectangular record sets.
//
// The broker returns a mix of shapes for the same logical concept: a single
// object, an object wrapping an array of children, JSON null, or the literal
// string "null". This package normalizes all of them behind three
// operations:
//
//   - Decode parses JSON while preserving object key order, so column order
//     is the document order and stable across identical responses.
//   - Lookup walks a documented key path (e.g. "gainloss", "closed_position")
//     and reports ErrEmptyResult for any of the broker's "no data" markers.
//   - Normalize flattens the value at that path into a Set: one row per
//     object, nested objects as dot-joined columns, arrays left opaque.
//
// The normalizer never coerces numeric-looking strings; type coercion is the
// responsibility of the endpoint operation that documents it.
package record

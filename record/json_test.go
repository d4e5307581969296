package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePreservesKeyOrder(t *testing.T) {
	// Key order here is deliberately non-alphabetical; a map-based decode
	// would lose it.
	body := []byte(`{"zeta": 1, "alpha": 2, "mid": {"b": 1, "a": 2}}`)

	v, err := Decode(body)
	require.NoError(t, err)

	obj, ok := v.(*Object)
	require.True(t, ok)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, obj.Keys())

	mid, ok := obj.Get("mid")
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, mid.(*Object).Keys())
}

func TestDecodeScalars(t *testing.T) {
	body := []byte(`{"s": "15.73", "n": 15.73, "b": true, "z": null}`)

	v, err := Decode(body)
	require.NoError(t, err)
	obj := v.(*Object)

	s, _ := obj.Get("s")
	assert.Equal(t, "15.73", s)

	n, _ := obj.Get("n")
	assert.Equal(t, 15.73, n)

	b, _ := obj.Get("b")
	assert.Equal(t, true, b)

	z, ok := obj.Get("z")
	assert.True(t, ok)
	assert.Nil(t, z)
}

func TestDecodeArrays(t *testing.T) {
	v, err := Decode([]byte(`[{"a": 1}, {"a": 2}]`))
	require.NoError(t, err)

	arr, ok := v.([]any)
	require.True(t, ok)
	require.Len(t, arr, 2)

	first := arr[0].(*Object)
	a, _ := first.Get("a")
	assert.Equal(t, float64(1), a)
}

func TestDecodeInvalidJSON(t *testing.T) {
	_, err := Decode([]byte(`<html>not json</html>`))
	assert.Error(t, err)
}

func TestDecodeTrailingData(t *testing.T) {
	_, err := Decode([]byte(`{"a": 1}{"b": 2}`))
	assert.Error(t, err)
}

func TestObjectGet(t *testing.T) {
	v, err := Decode([]byte(`{"a": 1}`))
	require.NoError(t, err)
	obj := v.(*Object)

	_, ok := obj.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, 1, obj.Len())
}

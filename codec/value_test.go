package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/lensmap"
	"github.com/reoring/lensmap/codec"
)

func TestValue_String_RoundTrip(t *testing.T) {
	s := codec.String()

	v, err := s.Transform("asdf")
	require.NoError(t, err)
	assert.Equal(t, "asdf", v)

	back, err := s.ReverseTransform(v)
	require.NoError(t, err)
	assert.Equal(t, "asdf", back)
}

func TestValue_WrongDynamicType(t *testing.T) {
	_, err := codec.Bool().ReverseTransform("true")
	require.Error(t, err)

	iss, ok := lensmap.AsIssues(err)
	require.True(t, ok)
	require.Len(t, iss, 1)
	assert.Equal(t, lensmap.CodeInvalidType, iss[0].Code)
	assert.Equal(t, "bool", iss[0].Hint)
	assert.Equal(t, "string", iss[0].Params["got"])
}

func TestArray_WithSlice(t *testing.T) {
	tags := lensmap.Compose(lensmap.Slice(codec.String()), codec.Array())

	v, err := tags.Transform([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, v)

	back, err := tags.ReverseTransform([]any{"x", "y", "z"})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, back)

	_, err = tags.ReverseTransform([]any{"x", 1})
	require.Error(t, err)
}

func TestObject_AcceptsInterfaceKeyedMaps(t *testing.T) {
	obj := codec.Object()

	m, err := obj.Transform(map[any]any{"a": 1, "b": "x"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1, "b": "x"}, m)

	_, err = obj.Transform(map[any]any{1: "x"})
	require.Error(t, err)

	_, err = obj.Transform([]any{})
	require.Error(t, err)

	v, err := obj.ReverseTransform(map[string]any{"k": true})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"k": true}, v)
}

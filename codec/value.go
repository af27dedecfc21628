package codec

import (
	"fmt"

	"github.com/reoring/lensmap"
)

// Value returns a Transformer between T and the generic representation.
// The forward direction boxes the value; the reverse direction requires the
// dynamic type to be exactly T.
func Value[T any]() lensmap.TransformerOf[T, any] {
	return lensmap.New(
		func(v T) (any, error) { return v, nil },
		func(v any) (T, error) {
			tv, ok := v.(T)
			if !ok {
				var zero T
				return zero, invalidType(fmt.Sprintf("%T", zero), v)
			}
			return tv, nil
		},
	)
}

// String converts between string and the generic representation.
func String() lensmap.TransformerOf[string, any] { return Value[string]() }

// Bool converts between bool and the generic representation.
func Bool() lensmap.TransformerOf[bool, any] { return Value[bool]() }

// Array converts between a generic sequence and the generic representation.
// Combine with lensmap.Slice to map the elements.
func Array() lensmap.TransformerOf[[]any, any] { return Value[[]any]() }

// Object is the dictionary transformer for the in-memory generic
// representation: a representation value is a map[string]any. YAML-style
// maps with interface keys are accepted as long as every key is a string.
func Object() lensmap.TransformerOf[any, map[string]any] {
	return lensmap.New(
		func(v any) (map[string]any, error) {
			switch m := v.(type) {
			case map[string]any:
				return m, nil
			case map[any]any:
				out := make(map[string]any, len(m))
				for k, vv := range m {
					ks, ok := k.(string)
					if !ok {
						return nil, lensmap.Issues{{Code: lensmap.CodeInvalidType, Message: fmt.Sprintf("non-string object key %v", k), Hint: "string"}}
					}
					out[ks] = vv
				}
				return out, nil
			default:
				return nil, invalidType("object", v)
			}
		},
		func(m map[string]any) (any, error) { return m, nil },
	)
}

func invalidType(expected string, got any) lensmap.Issues {
	return lensmap.Issues{{
		Code:    lensmap.CodeInvalidType,
		Message: fmt.Sprintf("expected %s, got %T", expected, got),
		Hint:    expected,
		Params:  map[string]any{"expected": expected, "got": fmt.Sprintf("%T", got)},
	}}
}

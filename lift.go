package lensmap

// Optional lifts t over optional values. A nil input transforms to absent
// without invoking t; a non-nil input delegates to t. The reverse direction
// always delegates and yields a non-nil pointer, so no representation maps
// back to nil. Use Nullable when absence must round-trip.
func Optional[A, B any](t Transformer[A, B], absent B) TransformerOf[*A, B] {
	return New(
		func(a *A) (B, error) {
			if a == nil {
				return absent, nil
			}
			return t.Transform(*a)
		},
		func(b B) (*A, error) {
			a, err := t.ReverseTransform(b)
			if err != nil {
				return nil, err
			}
			return &a, nil
		},
	)
}

// Nullable is the symmetric form of Optional: representations accepted by
// isNull reverse-transform to nil instead of being passed to t.
func Nullable[A, B any](t Transformer[A, B], null B, isNull func(B) bool) TransformerOf[*A, B] {
	opt := Optional(t, null)
	return New(
		opt.Transform,
		func(b B) (*A, error) {
			if isNull(b) {
				return nil, nil
			}
			return opt.ReverseTransform(b)
		},
	)
}

// IsNil reports whether v is the untyped nil. It is the usual isNull
// predicate for Nullable over the generic representation.
func IsNil(v any) bool { return v == nil }

// Slice lifts t over slices, mapping element by element in order. The first
// failing element aborts the whole conversion and no partial result is
// returned. An empty input yields an empty, non-nil output.
func Slice[A, B any](t Transformer[A, B]) TransformerOf[[]A, []B] {
	return New(
		func(as []A) ([]B, error) { return mapSlice(as, t.Transform) },
		func(bs []B) ([]A, error) { return mapSlice(bs, t.ReverseTransform) },
	)
}

func mapSlice[X, Y any](xs []X, f func(X) (Y, error)) ([]Y, error) {
	out := make([]Y, 0, len(xs))
	for _, x := range xs {
		y, err := f(x)
		if err != nil {
			return nil, err
		}
		out = append(out, y)
	}
	return out, nil
}

package lensmap

// Transformer performs bidirectional conversion between a value A and its
// representation B. No round-trip guarantee is implied: ReverseTransform of
// Transform(a) need not equal a.
type Transformer[A, B any] interface {
	Transform(a A) (B, error)        // A -> B
	ReverseTransform(b B) (A, error) // B -> A
}

// TransformerOf is a Transformer backed by a pair of functions.
type TransformerOf[A, B any] struct {
	to   func(A) (B, error)
	from func(B) (A, error)
}

// New returns a Transformer that uses to for the forward direction and from
// for the reverse direction.
func New[A, B any](to func(A) (B, error), from func(B) (A, error)) TransformerOf[A, B] {
	return TransformerOf[A, B]{to: to, from: from}
}

func (t TransformerOf[A, B]) Transform(a A) (B, error)        { return t.to(a) }
func (t TransformerOf[A, B]) ReverseTransform(b B) (A, error) { return t.from(b) }

// Identity returns a Transformer[T,T] that passes values through unchanged.
func Identity[T any]() TransformerOf[T, T] {
	id := func(v T) (T, error) { return v, nil }
	return New(id, id)
}

// Compose chains first and second. The forward direction runs first then
// second; the reverse direction runs second then first. The first error stops
// the chain and is returned unchanged.
func Compose[A, B, C any](first Transformer[A, B], second Transformer[B, C]) TransformerOf[A, C] {
	return New(
		func(a A) (C, error) {
			b, err := first.Transform(a)
			if err != nil {
				var zero C
				return zero, err
			}
			return second.Transform(b)
		},
		func(c C) (A, error) {
			b, err := second.ReverseTransform(c)
			if err != nil {
				var zero A
				return zero, err
			}
			return first.ReverseTransform(b)
		},
	)
}

// Invert swaps the directions of t.
func Invert[A, B any](t Transformer[A, B]) TransformerOf[B, A] {
	return New(t.ReverseTransform, t.Transform)
}

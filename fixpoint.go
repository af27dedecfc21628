package lensmap

// Lazy forwards to an adapter produced on demand. The supplier runs once per
// call and its result is not cached.
type Lazy[M, B any] struct {
	supply func() Adapter[M, B]
}

// NewLazy wraps supply. supply is not called until the first Encode, Decode,
// Transform or ReverseTransform.
func NewLazy[M, B any](supply func() Adapter[M, B]) *Lazy[M, B] {
	return &Lazy[M, B]{supply: supply}
}

func (l *Lazy[M, B]) Encode(m M) (B, error)         { return l.supply().Encode(m) }
func (l *Lazy[M, B]) Decode(seed M, b B) (M, error) { return l.supply().Decode(seed, b) }
func (l *Lazy[M, B]) Transform(m M) (B, error)      { return l.Encode(m) }
func (l *Lazy[M, B]) ReverseTransform(b B) (M, error) {
	return l.Decode(DefaultOf[M](), b)
}

// Fix builds a self-referential adapter. f receives a handle to the adapter
// being defined and returns its definition; the handle resolves to another
// Fix(f) only when a traversal reaches it, so construction terminates and
// recursion depth follows the data being converted.
//
//	tree := lensmap.Fix(func(self lensmap.Adapter[Node, any]) lensmap.Adapter[Node, any] {
//	    return lensmap.Object[Node, any](codec.Object()).
//	        Field("value", valueLens).
//	        Field("child", lensmap.Through(childLens, lensmap.Nullable(lensmap.Lift(self, Node{}), nil, lensmap.IsNil))).
//	        MustBuild()
//	})
func Fix[M, B any](f func(self Adapter[M, B]) Adapter[M, B]) Adapter[M, B] {
	return f(NewLazy(func() Adapter[M, B] { return Fix(f) }))
}

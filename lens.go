package lensmap

// Lens focuses on one part A of a whole S. Both directions may fail; Set
// returns an updated whole and never mutates its argument unless the caller's
// set function does.
type Lens[S, A any] struct {
	get func(S) (A, error)
	set func(S, A) (S, error)
}

// NewLens creates a lens from fallible get and set functions.
func NewLens[S, A any](get func(S) (A, error), set func(S, A) (S, error)) Lens[S, A] {
	return Lens[S, A]{get: get, set: set}
}

// PureLens creates a lens from total get and set functions.
func PureLens[S, A any](get func(S) A, set func(S, A) S) Lens[S, A] {
	return NewLens(
		func(s S) (A, error) { return get(s), nil },
		func(s S, a A) (S, error) { return set(s, a), nil },
	)
}

// Get retrieves the focused value.
func (l Lens[S, A]) Get(s S) (A, error) { return l.get(s) }

// Set returns the whole with the focused value replaced.
func (l Lens[S, A]) Set(s S, a A) (S, error) { return l.set(s, a) }

// Valid reports whether both accessors are present.
func (l Lens[S, A]) Valid() bool { return l.get != nil && l.set != nil }

// IdentityLens focuses on the whole value.
func IdentityLens[S any]() Lens[S, S] {
	return PureLens(
		func(s S) S { return s },
		func(_ S, s S) S { return s },
	)
}

// ComposeLens focuses inner within the part focused by outer.
func ComposeLens[S, A, B any](outer Lens[S, A], inner Lens[A, B]) Lens[S, B] {
	return NewLens(
		func(s S) (B, error) {
			a, err := outer.Get(s)
			if err != nil {
				var zero B
				return zero, err
			}
			return inner.Get(a)
		},
		func(s S, b B) (S, error) {
			a, err := outer.Get(s)
			if err != nil {
				return s, err
			}
			a, err = inner.Set(a, b)
			if err != nil {
				return s, err
			}
			return outer.Set(s, a)
		},
	)
}

// Through maps the focus of l through t: Get transforms the field value into
// its representation and Set reverse-transforms the representation before
// storing it. This is how a typed field lens becomes a Field of a structural
// adapter.
func Through[S, A, B any](l Lens[S, A], t Transformer[A, B]) Lens[S, B] {
	return NewLens(
		func(s S) (B, error) {
			a, err := l.Get(s)
			if err != nil {
				var zero B
				return zero, err
			}
			return t.Transform(a)
		},
		func(s S, b B) (S, error) {
			a, err := t.ReverseTransform(b)
			if err != nil {
				return s, err
			}
			return l.Set(s, a)
		},
	)
}

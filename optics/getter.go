package optics

// Getter is a read-only optic focusing on exactly one value.
type Getter[S, A any] struct {
	get func(S) A
}

// NewGetter creates a getter from a get function.
func NewGetter[S, A any](get func(S) A) Getter[S, A] {
	return Getter[S, A]{get: get}
}

// Get retrieves the focused value.
func (g Getter[S, A]) Get(source S) A {
	return g.get(source)
}

// AsFold widens the getter to a single-value fold.
func (g Getter[S, A]) AsFold() Fold[S, A] {
	return Fold[S, A]{
		getAll: func(s S) []A { return []A{g.get(s)} },
	}
}

// ComposeGetter creates a getter focusing deeper.
func ComposeGetter[S, A, B any](outer Getter[S, A], inner Getter[A, B]) Getter[S, B] {
	return Getter[S, B]{
		get: func(s S) B { return inner.get(outer.get(s)) },
	}
}

package optics

// Traversal is an optic focusing on zero or more values, with both a pure
// multi-focus modify and an enumeration of the foci.
type Traversal[S, T, A, B any] struct {
	getAll func(S) []A
	modify func(S, func(A) B) T
}

// SimpleTraversal is a Traversal whose updates never change the static type.
type SimpleTraversal[S, A any] = Traversal[S, S, A, A]

// NewTraversal creates a traversal from getAll and modify functions. The two
// must agree: modify visits exactly the foci getAll lists, in order.
func NewTraversal[S, T, A, B any](getAll func(S) []A, modify func(S, func(A) B) T) Traversal[S, T, A, B] {
	return Traversal[S, T, A, B]{getAll: getAll, modify: modify}
}

// SliceTraversal creates a traversal over every element of a slice.
func SliceTraversal[A, B any]() Traversal[[]A, []B, A, B] {
	return Traversal[[]A, []B, A, B]{
		getAll: func(s []A) []A { return s },
		modify: func(s []A, fn func(A) B) []B {
			out := make([]B, len(s))
			for i, a := range s {
				out[i] = fn(a)
			}
			return out
		},
	}
}

// GetAll returns every focused value in order.
func (t Traversal[S, T, A, B]) GetAll(source S) []A {
	return t.getAll(source)
}

// Modify applies a function to every focus.
func (t Traversal[S, T, A, B]) Modify(source S, fn func(A) B) T {
	return t.modify(source, fn)
}

// Set replaces every focus with a value.
func (t Traversal[S, T, A, B]) Set(source S, value B) T {
	return t.modify(source, func(A) B { return value })
}

// AsFold discards the write capability.
func (t Traversal[S, T, A, B]) AsFold() Fold[S, A] {
	return Fold[S, A]{getAll: t.getAll}
}

// AsSetter discards the read capability.
func (t Traversal[S, T, A, B]) AsSetter() Setter[S, T, A, B] {
	return Setter[S, T, A, B]{modify: t.modify}
}

// ComposeTraversal creates a traversal focusing deeper through every outer
// focus.
func ComposeTraversal[S, T, A, B, C, D any](outer Traversal[S, T, A, B], inner Traversal[A, B, C, D]) Traversal[S, T, C, D] {
	return Traversal[S, T, C, D]{
		getAll: func(s S) []C {
			var out []C
			for _, a := range outer.getAll(s) {
				out = append(out, inner.getAll(a)...)
			}
			return out
		},
		modify: func(s S, fn func(C) D) T {
			return outer.modify(s, func(a A) B { return inner.modify(a, fn) })
		},
	}
}

package optics

import "github.com/rossh/Monocle/functional"

// Iso is a total, always-matching bijection between a source and its focus.
type Iso[S, T, A, B any] struct {
	get        func(S) A
	reverseGet func(B) T
}

// SimpleIso is an Iso whose updates never change the static type.
type SimpleIso[S, A any] = Iso[S, S, A, A]

// NewIso creates an iso from get and reverseGet functions. A lawful iso is a
// bijection: the two functions invert each other.
func NewIso[S, T, A, B any](get func(S) A, reverseGet func(B) T) Iso[S, T, A, B] {
	return Iso[S, T, A, B]{get: get, reverseGet: reverseGet}
}

// Get converts the source to its focus.
func (i Iso[S, T, A, B]) Get(source S) A {
	return i.get(source)
}

// ReverseGet converts a focus back to the source.
func (i Iso[S, T, A, B]) ReverseGet(value B) T {
	return i.reverseGet(value)
}

// Modify applies a function across the bijection.
func (i Iso[S, T, A, B]) Modify(source S, fn func(A) B) T {
	return i.reverseGet(fn(i.get(source)))
}

// Set replaces the focus.
func (i Iso[S, T, A, B]) Set(_ S, value B) T {
	return i.reverseGet(value)
}

// Reverse flips the bijection.
func (i Iso[S, T, A, B]) Reverse() Iso[B, A, T, S] {
	return Iso[B, A, T, S]{get: i.reverseGet, reverseGet: i.get}
}

// AsPrism widens the iso to a prism that never fails to match.
func (i Iso[S, T, A, B]) AsPrism() Prism[S, T, A, B] {
	return Prism[S, T, A, B]{
		getOrModify: func(s S) functional.Either[T, A] {
			return functional.Right[T](i.get(s))
		},
		reverseGet: i.reverseGet,
	}
}

// AsLens widens the iso to a lens.
func (i Iso[S, T, A, B]) AsLens() Lens[S, T, A, B] {
	return Lens[S, T, A, B]{
		get: i.get,
		set: func(_ S, b B) T { return i.reverseGet(b) },
	}
}

// ComposeIso creates an iso focusing deeper.
func ComposeIso[S, T, A, B, C, D any](outer Iso[S, T, A, B], inner Iso[A, B, C, D]) Iso[S, T, C, D] {
	return Iso[S, T, C, D]{
		get:        func(s S) C { return inner.get(outer.get(s)) },
		reverseGet: func(d D) T { return outer.reverseGet(inner.reverseGet(d)) },
	}
}

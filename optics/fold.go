package optics

import "github.com/rossh/Monocle/functional"

// Fold is a read-only optic aggregating zero or more values.
type Fold[S, A any] struct {
	getAll func(S) []A
}

// NewFold creates a fold from a function listing every focus.
func NewFold[S, A any](getAll func(S) []A) Fold[S, A] {
	return Fold[S, A]{getAll: getAll}
}

// GetAll returns every focused value in order.
func (f Fold[S, A]) GetAll(source S) []A {
	return f.getAll(source)
}

// HeadOption returns the first focused value, if any.
func (f Fold[S, A]) HeadOption(source S) functional.Option[A] {
	values := f.getAll(source)
	if len(values) == 0 {
		return functional.None[A]()
	}
	return functional.Some(values[0])
}

// IsEmpty reports whether the fold has no focus in the source.
func (f Fold[S, A]) IsEmpty(source S) bool {
	return len(f.getAll(source)) == 0
}

// Length returns the number of foci in the source.
func (f Fold[S, A]) Length(source S) int {
	return len(f.getAll(source))
}

// FoldMap maps every focus into the monoid and combines the results,
// starting from the monoid's identity element.
func FoldMap[S, A, M any](f Fold[S, A], m Monoid[M], source S, fn func(A) M) M {
	acc := m.Empty()
	for _, a := range f.getAll(source) {
		acc = m.Combine(acc, fn(a))
	}
	return acc
}

// ComposeFold creates a fold aggregating through every outer focus.
func ComposeFold[S, A, B any](outer Fold[S, A], inner Fold[A, B]) Fold[S, B] {
	return Fold[S, B]{
		getAll: func(s S) []B {
			var out []B
			for _, a := range outer.getAll(s) {
				out = append(out, inner.getAll(a)...)
			}
			return out
		},
	}
}

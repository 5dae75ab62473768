package optics

import "github.com/rossh/Monocle/functional"

// Composition of a prism with every optic kind. The result is always the
// weaker of the two operands: only prism-with-prism (and prism-with-iso)
// stays a prism, because both sides keep total reconstruction.

// ComposePrism creates a prism focusing deeper. When the inner prism rejects
// an outer focus, its untouched payload is rebuilt through the outer
// ReverseGet, so the overall failure carries the whole source unchanged.
func ComposePrism[S, T, A, B, C, D any](outer Prism[S, T, A, B], inner Prism[A, B, C, D]) Prism[S, T, C, D] {
	return Prism[S, T, C, D]{
		getOrModify: func(s S) functional.Either[T, C] {
			return functional.MatchEither(outer.getOrModify(s),
				func(t T) functional.Either[T, C] { return functional.Left[T, C](t) },
				func(a A) functional.Either[T, C] {
					return functional.MatchEither(inner.getOrModify(a),
						func(b B) functional.Either[T, C] { return functional.Left[T, C](outer.reverseGet(b)) },
						func(c C) functional.Either[T, C] { return functional.Right[T](c) },
					)
				},
			)
		},
		reverseGet: func(d D) T { return outer.reverseGet(inner.reverseGet(d)) },
	}
}

// ComposePrismIso creates a prism through a bijection: the iso contributes a
// match that never fails.
func ComposePrismIso[S, T, A, B, C, D any](outer Prism[S, T, A, B], inner Iso[A, B, C, D]) Prism[S, T, C, D] {
	return ComposePrism(outer, inner.AsPrism())
}

// ComposePrismLens creates an optional: the prism makes the read partial and
// the lens has no total reconstruction, so neither capability survives whole.
func ComposePrismLens[S, T, A, B, C, D any](outer Prism[S, T, A, B], inner Lens[A, B, C, D]) Optional[S, T, C, D] {
	return Optional[S, T, C, D]{
		getOrModify: func(s S) functional.Either[T, C] {
			return functional.MapEitherRight(outer.getOrModify(s), inner.get)
		},
		set: func(s S, d D) T {
			return outer.Modify(s, func(a A) B { return inner.set(a, d) })
		},
	}
}

// ComposePrismOptional creates an optional focusing deeper.
func ComposePrismOptional[S, T, A, B, C, D any](outer Prism[S, T, A, B], inner Optional[A, B, C, D]) Optional[S, T, C, D] {
	return Optional[S, T, C, D]{
		getOrModify: func(s S) functional.Either[T, C] {
			return functional.MatchEither(outer.getOrModify(s),
				func(t T) functional.Either[T, C] { return functional.Left[T, C](t) },
				func(a A) functional.Either[T, C] {
					return functional.MatchEither(inner.getOrModify(a),
						func(b B) functional.Either[T, C] { return functional.Left[T, C](outer.reverseGet(b)) },
						func(c C) functional.Either[T, C] { return functional.Right[T](c) },
					)
				},
			)
		},
		set: func(s S, d D) T {
			return outer.Modify(s, func(a A) B { return inner.Set(a, d) })
		},
	}
}

// ComposePrismTraversal creates a traversal: the prism contributes zero or
// one focus feeding the inner traversal.
func ComposePrismTraversal[S, T, A, B, C, D any](outer Prism[S, T, A, B], inner Traversal[A, B, C, D]) Traversal[S, T, C, D] {
	return Traversal[S, T, C, D]{
		getAll: func(s S) []C {
			return functional.MatchOption(outer.GetOption(s),
				func(a A) []C { return inner.getAll(a) },
				func() []C { return nil },
			)
		},
		modify: func(s S, fn func(C) D) T {
			return outer.Modify(s, func(a A) B { return inner.modify(a, fn) })
		},
	}
}

// ComposePrismSetter creates a setter: only the write capability survives.
func ComposePrismSetter[S, T, A, B, C, D any](outer Prism[S, T, A, B], inner Setter[A, B, C, D]) Setter[S, T, C, D] {
	return Setter[S, T, C, D]{
		modify: func(s S, fn func(C) D) T {
			return outer.Modify(s, func(a A) B { return inner.modify(a, fn) })
		},
	}
}

// ComposePrismGetter creates a fold of zero or one value: the prism's match
// decides whether the getter is consulted at all.
func ComposePrismGetter[S, T, A, B, C any](outer Prism[S, T, A, B], inner Getter[A, C]) Fold[S, C] {
	return Fold[S, C]{
		getAll: func(s S) []C {
			return functional.MatchOption(outer.GetOption(s),
				func(a A) []C { return []C{inner.get(a)} },
				func() []C { return nil },
			)
		},
	}
}

// ComposePrismFold creates a fold aggregating the inner foci of a matched
// source, or nothing.
func ComposePrismFold[S, T, A, B, C any](outer Prism[S, T, A, B], inner Fold[A, C]) Fold[S, C] {
	return Fold[S, C]{
		getAll: func(s S) []C {
			return functional.MatchOption(outer.GetOption(s),
				func(a A) []C { return inner.getAll(a) },
				func() []C { return nil },
			)
		},
	}
}

package optics

import "github.com/rossh/Monocle/functional"

// Optional is an optic whose read may fail but whose write is total: the
// weakest kind that still exposes both a get and a set.
type Optional[S, T, A, B any] struct {
	getOrModify func(S) functional.Either[T, A]
	set         func(S, B) T
}

// SimpleOptional is an Optional whose updates never change the static type.
type SimpleOptional[S, A any] = Optional[S, S, A, A]

// NewOptional creates an optional from its two defining functions.
func NewOptional[S, T, A, B any](getOrModify func(S) functional.Either[T, A], set func(S, B) T) Optional[S, T, A, B] {
	return Optional[S, T, A, B]{getOrModify: getOrModify, set: set}
}

// NewSimpleOptional creates a monomorphic optional from getOption and set
// functions.
func NewSimpleOptional[S, A any](getOption func(S) functional.Option[A], set func(S, A) S) SimpleOptional[S, A] {
	return SimpleOptional[S, A]{
		getOrModify: func(s S) functional.Either[S, A] {
			return functional.MatchOption(getOption(s),
				func(a A) functional.Either[S, A] { return functional.Right[S](a) },
				func() functional.Either[S, A] { return functional.Left[S, A](s) },
			)
		},
		set: set,
	}
}

// GetOrModify attempts to extract the focused value. On failure the Left
// branch carries the source unchanged, retyped at T.
func (o Optional[S, T, A, B]) GetOrModify(source S) functional.Either[T, A] {
	return o.getOrModify(source)
}

// GetOption attempts to extract the focused value, discarding the failure
// payload.
func (o Optional[S, T, A, B]) GetOption(source S) functional.Option[A] {
	return functional.MatchEither(o.getOrModify(source),
		func(T) functional.Option[A] { return functional.None[A]() },
		func(a A) functional.Option[A] { return functional.Some(a) },
	)
}

// Set replaces the focused value if present; on a failed match the source
// passes through unchanged.
func (o Optional[S, T, A, B]) Set(source S, value B) T {
	return functional.MatchEither(o.getOrModify(source),
		func(t T) T { return t },
		func(A) T { return o.set(source, value) },
	)
}

// SetOption replaces the focused value, reporting a failed match as None.
func (o Optional[S, T, A, B]) SetOption(source S, value B) functional.Option[T] {
	return o.ModifyOption(source, func(A) B { return value })
}

// Modify applies a function to the focused value if present; on a failed
// match the source passes through unchanged.
func (o Optional[S, T, A, B]) Modify(source S, fn func(A) B) T {
	return functional.MatchEither(o.getOrModify(source),
		func(t T) T { return t },
		func(a A) T { return o.set(source, fn(a)) },
	)
}

// ModifyOption applies a function to the focused value, reporting a failed
// match as None.
func (o Optional[S, T, A, B]) ModifyOption(source S, fn func(A) B) functional.Option[T] {
	return functional.MatchEither(o.getOrModify(source),
		func(T) functional.Option[T] { return functional.None[T]() },
		func(a A) functional.Option[T] { return functional.Some(o.set(source, fn(a))) },
	)
}

// IsMatching reports whether the optional matches the source.
func (o Optional[S, T, A, B]) IsMatching(source S) bool {
	return o.getOrModify(source).IsRight()
}

// AsFold discards the write capability.
func (o Optional[S, T, A, B]) AsFold() Fold[S, A] {
	return Fold[S, A]{
		getAll: func(s S) []A { return o.GetOption(s).ToSlice() },
	}
}

// AsTraversal widens zero-or-one focus to the traversal contract.
func (o Optional[S, T, A, B]) AsTraversal() Traversal[S, T, A, B] {
	return Traversal[S, T, A, B]{
		getAll: func(s S) []A { return o.GetOption(s).ToSlice() },
		modify: o.Modify,
	}
}

// AsSetter discards the read capability.
func (o Optional[S, T, A, B]) AsSetter() Setter[S, T, A, B] {
	return Setter[S, T, A, B]{modify: o.Modify}
}

// ComposeOptional creates an optional focusing deeper.
func ComposeOptional[S, T, A, B, C, D any](outer Optional[S, T, A, B], inner Optional[A, B, C, D]) Optional[S, T, C, D] {
	return Optional[S, T, C, D]{
		getOrModify: func(s S) functional.Either[T, C] {
			return functional.MatchEither(outer.getOrModify(s),
				func(t T) functional.Either[T, C] { return functional.Left[T, C](t) },
				func(a A) functional.Either[T, C] {
					return functional.MatchEither(inner.getOrModify(a),
						func(b B) functional.Either[T, C] { return functional.Left[T, C](outer.set(s, b)) },
						func(c C) functional.Either[T, C] { return functional.Right[T](c) },
					)
				},
			)
		},
		set: func(s S, d D) T {
			return outer.Modify(s, func(a A) B { return inner.set(a, d) })
		},
	}
}

// ModifyOptionalF applies an effectful function to the focused value,
// sequencing the result through the supplied Effect capability.
func ModifyOptionalF[S, T, A, B, FB, FT any](o Optional[S, T, A, B], eff Effect[B, FB, T, FT], source S, fn func(A) FB) FT {
	return functional.MatchEither(o.getOrModify(source),
		func(t T) FT { return eff.Lift(t) },
		func(a A) FT { return eff.Map(fn(a), func(b B) T { return o.set(source, b) }) },
	)
}

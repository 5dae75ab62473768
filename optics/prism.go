// Package optics provides composable generic optics: Prism for sum types,
// Lens for product types, and the weaker kinds (Iso, Optional, Traversal,
// Setter, Getter, Fold) they compose into. Every optic is an immutable value
// built from plain functions; a failed match is data, never an error.
package optics

import "github.com/rossh/Monocle/functional"

// Prism provides access to sum types (variants). The four type parameters
// allow an update to change the static type of both the source (S to T) and
// the focus (A to B); SimplePrism covers the common case where they coincide.
//
// A lawful prism satisfies:
//  1. GetOrModify(s) = Right(a) implies ReverseGet(a) = s (monomorphic case).
//  2. GetOrModify(ReverseGet(b)) = Right(b).
//  3. GetOrModify(s) = Left(t) implies every update of s returns t unchanged.
type Prism[S, T, A, B any] struct {
	getOrModify func(S) functional.Either[T, A]
	reverseGet  func(B) T
}

// SimplePrism is a Prism whose updates never change the static type.
type SimplePrism[S, A any] = Prism[S, S, A, A]

// NewPrism creates a prism from its two defining functions. On a failed match
// getOrModify must return the source unchanged, reinterpreted at type T.
func NewPrism[S, T, A, B any](getOrModify func(S) functional.Either[T, A], reverseGet func(B) T) Prism[S, T, A, B] {
	return Prism[S, T, A, B]{getOrModify: getOrModify, reverseGet: reverseGet}
}

// NewSimplePrism creates a monomorphic prism from getOption and reverseGet
// functions. The failed-match payload is the source itself, so no-match
// inertness holds by construction.
func NewSimplePrism[S, A any](getOption func(S) functional.Option[A], reverseGet func(A) S) SimplePrism[S, A] {
	return SimplePrism[S, A]{
		getOrModify: func(s S) functional.Either[S, A] {
			return functional.MatchOption(getOption(s),
				func(a A) functional.Either[S, A] { return functional.Right[S](a) },
				func() functional.Either[S, A] { return functional.Left[S, A](s) },
			)
		},
		reverseGet: reverseGet,
	}
}

// Identity creates the identity prism: every source matches and is its own
// focus. It is the unit of ComposePrism.
func Identity[S any]() SimplePrism[S, S] {
	return SimplePrism[S, S]{
		getOrModify: func(s S) functional.Either[S, S] { return functional.Right[S](s) },
		reverseGet:  func(s S) S { return s },
	}
}

// GetOrModify attempts to extract the focused value. On failure the Left
// branch carries the source unchanged, retyped at T.
func (p Prism[S, T, A, B]) GetOrModify(source S) functional.Either[T, A] {
	return p.getOrModify(source)
}

// ReverseGet constructs the source from the focused value. It is total.
func (p Prism[S, T, A, B]) ReverseGet(value B) T {
	return p.reverseGet(value)
}

// GetOption attempts to extract the focused value, discarding the failure
// payload.
func (p Prism[S, T, A, B]) GetOption(source S) functional.Option[A] {
	return functional.MatchEither(p.getOrModify(source),
		func(T) functional.Option[A] { return functional.None[A]() },
		func(a A) functional.Option[A] { return functional.Some(a) },
	)
}

// Modify applies a function to the focused value if present; on a failed
// match the source passes through unchanged.
func (p Prism[S, T, A, B]) Modify(source S, fn func(A) B) T {
	return functional.MatchEither(p.getOrModify(source),
		func(t T) T { return t },
		func(a A) T { return p.reverseGet(fn(a)) },
	)
}

// ModifyOption applies a function to the focused value, reporting a failed
// match as None instead of passing the source through.
func (p Prism[S, T, A, B]) ModifyOption(source S, fn func(A) B) functional.Option[T] {
	return functional.MatchEither(p.getOrModify(source),
		func(T) functional.Option[T] { return functional.None[T]() },
		func(a A) functional.Option[T] { return functional.Some(p.reverseGet(fn(a))) },
	)
}

// Set replaces the focused value if the prism matches.
func (p Prism[S, T, A, B]) Set(source S, value B) T {
	return p.Modify(source, func(A) B { return value })
}

// SetOption replaces the focused value, reporting a failed match as None.
func (p Prism[S, T, A, B]) SetOption(source S, value B) functional.Option[T] {
	return p.ModifyOption(source, func(A) B { return value })
}

// IsMatching reports whether the prism matches the source.
func (p Prism[S, T, A, B]) IsMatching(source S) bool {
	return p.getOrModify(source).IsRight()
}

// Reverse exposes reconstruction as a read-only accessor.
func (p Prism[S, T, A, B]) Reverse() Getter[B, T] {
	return Getter[B, T]{get: p.reverseGet}
}

// ModifyF applies an effectful function to the focused value, sequencing the
// result through the supplied Effect capability. On a match the wrapped new
// focus is mapped through ReverseGet; on a failed match the untouched payload
// is lifted directly, so inertness holds inside the effect as well.
func ModifyF[S, T, A, B, FB, FT any](p Prism[S, T, A, B], eff Effect[B, FB, T, FT], source S, fn func(A) FB) FT {
	return functional.MatchEither(p.getOrModify(source),
		func(t T) FT { return eff.Lift(t) },
		func(a A) FT { return eff.Map(fn(a), p.reverseGet) },
	)
}

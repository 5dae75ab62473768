package optics

import (
	"strconv"

	"github.com/rossh/Monocle/functional"
)

// Stock prisms for the variants of the functional container types plus a few
// general-purpose constructors.

// Some creates a prism for Option[T] that focuses on the Some case.
func Some[T any]() SimplePrism[functional.Option[T], T] {
	return NewSimplePrism(
		func(o functional.Option[T]) functional.Option[T] { return o },
		functional.Some[T],
	)
}

// Ok creates a prism for Result[T] that focuses on the success case.
func Ok[T any]() SimplePrism[functional.Result[T], T] {
	return NewSimplePrism(
		functional.ResultToOption[T],
		functional.Ok[T],
	)
}

// LeftOf creates a prism for Either[L, R] that focuses on the Left case.
func LeftOf[L, R any]() SimplePrism[functional.Either[L, R], L] {
	return NewSimplePrism(
		func(e functional.Either[L, R]) functional.Option[L] {
			if e.IsLeft() {
				return functional.Some(e.LeftValue())
			}
			return functional.None[L]()
		},
		functional.Left[L, R],
	)
}

// RightOf creates a prism for Either[L, R] that focuses on the Right case.
func RightOf[L, R any]() SimplePrism[functional.Either[L, R], R] {
	return NewSimplePrism(
		func(e functional.Either[L, R]) functional.Option[R] {
			if e.IsRight() {
				return functional.Some(e.RightValue())
			}
			return functional.None[R]()
		},
		functional.Right[L, R],
	)
}

// Only creates a prism matching exactly one value. The focus carries no
// information; reconstruction always yields the value.
func Only[T comparable](value T) SimplePrism[T, struct{}] {
	return NewSimplePrism(
		func(s T) functional.Option[struct{}] {
			if s == value {
				return functional.Some(struct{}{})
			}
			return functional.None[struct{}]()
		},
		func(struct{}) T { return value },
	)
}

// Nearly creates a prism matching every value the predicate accepts, with a
// canonical representative for reconstruction. Lawful only when
// pred(value) holds.
func Nearly[T any](value T, pred func(T) bool) SimplePrism[T, struct{}] {
	return NewSimplePrism(
		func(s T) functional.Option[struct{}] {
			if pred(s) {
				return functional.Some(struct{}{})
			}
			return functional.None[struct{}]()
		},
		func(struct{}) T { return value },
	)
}

// StringToInt creates a prism from decimal strings to int. Only canonical
// forms match: leading zeros, a "+" or bare "-" sign, and magnitudes outside
// the int range do not round-trip and are rejected.
func StringToInt() SimplePrism[string, int] {
	return NewSimplePrism(
		func(s string) functional.Option[int] {
			n, err := strconv.Atoi(s)
			if err != nil || strconv.Itoa(n) != s {
				return functional.None[int]()
			}
			return functional.Some(n)
		},
		strconv.Itoa,
	)
}

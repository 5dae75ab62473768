package optics

import "github.com/rossh/Monocle/functional"

// Effect is the minimal capability an effectful modify needs from a wrapper
// type: lifting a plain value into the wrapper and mapping a plain function
// over a wrapped value. Any container with those two operations works;
// Option, Result and the bare identity wrapper are provided.
type Effect[B, FB, T, FT any] struct {
	Lift func(T) FT
	Map  func(FB, func(B) T) FT
}

// OptionEffect sequences an effectful modify through Option.
func OptionEffect[B, T any]() Effect[B, functional.Option[B], T, functional.Option[T]] {
	return Effect[B, functional.Option[B], T, functional.Option[T]]{
		Lift: functional.Some[T],
		Map: func(fb functional.Option[B], fn func(B) T) functional.Option[T] {
			return functional.MapOption(fb, fn)
		},
	}
}

// ResultEffect sequences an effectful modify through Result.
func ResultEffect[B, T any]() Effect[B, functional.Result[B], T, functional.Result[T]] {
	return Effect[B, functional.Result[B], T, functional.Result[T]]{
		Lift: functional.Ok[T],
		Map: func(fb functional.Result[B], fn func(B) T) functional.Result[T] {
			return functional.MapResult(fb, fn)
		},
	}
}

// IdentityEffect sequences an effectful modify through no wrapper at all,
// reducing ModifyF to Modify.
func IdentityEffect[B, T any]() Effect[B, B, T, T] {
	return Effect[B, B, T, T]{
		Lift: func(t T) T { return t },
		Map:  func(b B, fn func(B) T) T { return fn(b) },
	}
}

// Monoid is the aggregation capability a fold needs from its result type: an
// identity element and an associative combine.
type Monoid[M any] struct {
	Empty   func() M
	Combine func(M, M) M
}

// SumMonoid aggregates by integer addition.
func SumMonoid() Monoid[int] {
	return Monoid[int]{
		Empty:   func() int { return 0 },
		Combine: func(a, b int) int { return a + b },
	}
}

// AppendMonoid aggregates by slice concatenation.
func AppendMonoid[T any]() Monoid[[]T] {
	return Monoid[[]T]{
		Empty: func() []T { return nil },
		Combine: func(a, b []T) []T {
			out := make([]T, 0, len(a)+len(b))
			out = append(out, a...)
			return append(out, b...)
		},
	}
}

// AnyMonoid aggregates by boolean or.
func AnyMonoid() Monoid[bool] {
	return Monoid[bool]{
		Empty:   func() bool { return false },
		Combine: func(a, b bool) bool { return a || b },
	}
}

// AllMonoid aggregates by boolean and.
func AllMonoid() Monoid[bool] {
	return Monoid[bool]{
		Empty:   func() bool { return true },
		Combine: func(a, b bool) bool { return a && b },
	}
}

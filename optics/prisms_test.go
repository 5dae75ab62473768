package optics

import (
	"errors"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/rossh/Monocle/functional"
)

func TestSomePrism(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	p := Some[int]()

	properties.Property("Some matches and round-trips", prop.ForAll(
		func(n int) bool {
			opt := p.GetOption(functional.Some(n))
			return opt.IsSome() && opt.Unwrap() == n &&
				p.ReverseGet(n) == functional.Some(n)
		},
		gen.Int(),
	))

	properties.Property("None never matches and updates are inert", prop.ForAll(
		func(b int) bool {
			source := functional.None[int]()
			return p.GetOption(source).IsNone() && p.Set(source, b) == source
		},
		gen.Int(),
	))

	properties.TestingRun(t)
}

func TestOkPrism(t *testing.T) {
	p := Ok[int]()

	t.Run("success matches", func(t *testing.T) {
		opt := p.GetOption(functional.Ok(42))
		if opt.IsNone() || opt.Unwrap() != 42 {
			t.Error("expected Some(42)")
		}
	})

	t.Run("failure does not match and is inert", func(t *testing.T) {
		source := functional.Err[int](errors.New("boom"))
		if p.GetOption(source).IsSome() {
			t.Error("expected no match")
		}
		got := p.Modify(source, func(x int) int { return x + 1 })
		if got.IsOk() || got.UnwrapErr().Error() != "boom" {
			t.Error("expected Err(boom) unchanged")
		}
	})

	t.Run("ReverseGet builds a success", func(t *testing.T) {
		if p.ReverseGet(7).Unwrap() != 7 {
			t.Error("expected Ok(7)")
		}
	})
}

func TestEitherPrisms(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	left := LeftOf[int, string]()
	right := RightOf[int, string]()

	properties.Property("LeftOf and RightOf partition the sum", prop.ForAll(
		func(isLeft bool, n int, s string) bool {
			source := intOrString(isLeft, n, s)
			return left.IsMatching(source) != right.IsMatching(source)
		},
		gen.Bool(), gen.Int(), gen.AnyString(),
	))

	properties.Property("RightOf round-trips", prop.ForAll(
		func(s string) bool {
			res := right.GetOrModify(right.ReverseGet(s))
			return res.IsRight() && res.RightValue() == s
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

func TestOnlyPrism(t *testing.T) {
	p := Only("yes")

	t.Run("matches exactly the value", func(t *testing.T) {
		if !p.IsMatching("yes") {
			t.Error("expected match")
		}
		if p.IsMatching("no") {
			t.Error("expected no match")
		}
	})

	t.Run("reconstruction yields the value", func(t *testing.T) {
		if p.ReverseGet(struct{}{}) != "yes" {
			t.Error("expected yes")
		}
	})

	t.Run("no-match is inert", func(t *testing.T) {
		if p.Set("no", struct{}{}) != "no" {
			t.Error("expected no unchanged")
		}
	})
}

func TestNearlyPrism(t *testing.T) {
	nonNegative := Nearly(0, func(n int) bool { return n >= 0 })

	t.Run("predicate decides the match", func(t *testing.T) {
		if !nonNegative.IsMatching(3) {
			t.Error("expected match on 3")
		}
		if nonNegative.IsMatching(-1) {
			t.Error("expected no match on -1")
		}
	})

	t.Run("reconstruction yields the representative", func(t *testing.T) {
		if nonNegative.ReverseGet(struct{}{}) != 0 {
			t.Error("expected 0")
		}
	})
}

func TestStringToIntPrism(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	p := StringToInt()

	properties.Property("every int round-trips through its decimal form", prop.ForAll(
		func(n int) bool {
			res := p.GetOrModify(p.ReverseGet(n))
			return res.IsRight() && res.RightValue() == n
		},
		gen.Int(),
	))

	properties.Property("every matched string round-trips back to itself", prop.ForAll(
		func(s string) bool {
			opt := p.GetOption(s)
			if opt.IsNone() {
				return true
			}
			return p.ReverseGet(opt.Unwrap()) == s
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)

	t.Run("rejects non-canonical forms", func(t *testing.T) {
		rejected := []string{
			"", "-", "007", "-0", "+5", "12a", "one", "1.5", "--3",
			"9223372036854775808",  // MaxInt + 1
			"-9223372036854775809", // MinInt - 1
			"99999999999999999999",
		}
		for _, s := range rejected {
			if p.GetOption(s).IsSome() {
				t.Errorf("expected no match for %q", s)
			}
		}
	})

	t.Run("accepts canonical forms", func(t *testing.T) {
		cases := map[string]int{"0": 0, "7": 7, "-3": -3, "120": 120}
		for s, want := range cases {
			opt := p.GetOption(s)
			if opt.IsNone() || opt.Unwrap() != want {
				t.Errorf("expected %q to match %d", s, want)
			}
		}
	})

	t.Run("boundary ints round-trip", func(t *testing.T) {
		for _, n := range []int{math.MinInt, math.MinInt + 1, math.MaxInt - 1, math.MaxInt} {
			res := p.GetOrModify(p.ReverseGet(n))
			if !res.IsRight() || res.RightValue() != n {
				t.Errorf("expected %d to round-trip, got %v", n, res)
			}
		}
	})
}

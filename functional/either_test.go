package functional

import (
	"strconv"
	"testing"
)

func TestEitherBasicOperations(t *testing.T) {
	t.Run("Left creates left value", func(t *testing.T) {
		e := Left[string, int]("error")
		if !e.IsLeft() || e.IsRight() {
			t.Error("expected Left")
		}
		if e.LeftValue() != "error" {
			t.Errorf("expected error, got %s", e.LeftValue())
		}
	})

	t.Run("Right creates right value", func(t *testing.T) {
		e := Right[string](42)
		if e.IsLeft() || !e.IsRight() {
			t.Error("expected Right")
		}
		if e.RightValue() != 42 {
			t.Errorf("expected 42, got %d", e.RightValue())
		}
	})

	t.Run("LeftValue panics on Right", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic")
			}
		}()
		Right[string](42).LeftValue()
	})

	t.Run("RightValue panics on Left", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic")
			}
		}()
		Left[string, int]("error").RightValue()
	})
}

func TestEitherDefaults(t *testing.T) {
	t.Run("LeftOr returns left value", func(t *testing.T) {
		if Left[string, int]("error").LeftOr("default") != "error" {
			t.Error("expected left value")
		}
	})

	t.Run("LeftOr returns default on Right", func(t *testing.T) {
		if Right[string](42).LeftOr("default") != "default" {
			t.Error("expected default")
		}
	})

	t.Run("RightOr returns right value", func(t *testing.T) {
		if Right[string](42).RightOr(0) != 42 {
			t.Error("expected right value")
		}
	})

	t.Run("RightOr returns default on Left", func(t *testing.T) {
		if Left[string, int]("error").RightOr(100) != 100 {
			t.Error("expected default")
		}
	})
}

func TestEitherTransformations(t *testing.T) {
	t.Run("MapEitherRight transforms the right value", func(t *testing.T) {
		got := MapEitherRight(Right[string](21), func(x int) int { return x * 2 })
		if got.RightValue() != 42 {
			t.Error("expected 42")
		}
	})

	t.Run("MapEitherRight passes Left through", func(t *testing.T) {
		got := MapEitherRight(Left[string, int]("e"), func(x int) int { return x * 2 })
		if !got.IsLeft() || got.LeftValue() != "e" {
			t.Error("expected Left(e)")
		}
	})

	t.Run("MapEitherLeft transforms the left value", func(t *testing.T) {
		got := MapEitherLeft(Left[int, string](7), strconv.Itoa)
		if got.LeftValue() != "7" {
			t.Error("expected Left(7) as string")
		}
	})

	t.Run("FlatMapEitherRight chains", func(t *testing.T) {
		got := FlatMapEitherRight(Right[string](2), func(x int) Either[string, int] {
			if x > 0 {
				return Right[string](x * 10)
			}
			return Left[string, int]("neg")
		})
		if got.RightValue() != 20 {
			t.Error("expected 20")
		}
	})

	t.Run("MatchEither selects the branch", func(t *testing.T) {
		got := MatchEither(Left[string, int]("e"),
			func(l string) string { return "left:" + l },
			func(int) string { return "right" },
		)
		if got != "left:e" {
			t.Error("expected left branch")
		}
	})

	t.Run("Swap exchanges the sides", func(t *testing.T) {
		got := Left[string, int]("e").Swap()
		if !got.IsRight() || got.RightValue() != "e" {
			t.Error("expected Right(e)")
		}
	})
}

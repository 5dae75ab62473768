package functional

// Result represents the outcome of an operation that may fail.
// It contains either a success value or an error.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

// Ok creates a successful Result.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Err creates a failed Result.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err, ok: false}
}

// IsOk returns true if the Result is successful.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// IsErr returns true if the Result is an error.
func (r Result[T]) IsErr() bool {
	return !r.ok
}

// Unwrap returns the success value or panics on error.
func (r Result[T]) Unwrap() T {
	if !r.ok {
		panic("called Unwrap on Err: " + r.err.Error())
	}
	return r.value
}

// UnwrapErr returns the error or panics on success.
func (r Result[T]) UnwrapErr() error {
	if r.ok {
		panic("called UnwrapErr on Ok")
	}
	return r.err
}

// UnwrapOr returns the success value or a default.
func (r Result[T]) UnwrapOr(defaultValue T) T {
	if r.ok {
		return r.value
	}
	return defaultValue
}

// MapResult applies a transformation function to the success value.
func MapResult[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.ok {
		return Ok(fn(r.value))
	}
	return Err[U](r.err)
}

// FlatMapResult applies a function that returns a Result.
func FlatMapResult[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.ok {
		return fn(r.value)
	}
	return Err[U](r.err)
}

// MatchResult executes one of two functions and returns the result.
func MatchResult[T, U any](r Result[T], onOk func(T) U, onErr func(error) U) U {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// OptionToResult converts Option[T] to Result[T] with the provided error for None.
func OptionToResult[T any](opt Option[T], err error) Result[T] {
	if opt.IsSome() {
		return Ok(opt.Unwrap())
	}
	return Err[T](err)
}

// ResultToOption converts Result[T] to Option[T], discarding the error.
func ResultToOption[T any](res Result[T]) Option[T] {
	if res.IsOk() {
		return Some(res.Unwrap())
	}
	return None[T]()
}

// EitherToResult converts Either[error, T] to Result[T].
func EitherToResult[T any](e Either[error, T]) Result[T] {
	if e.IsRight() {
		return Ok(e.RightValue())
	}
	return Err[T](e.LeftValue())
}

// ResultToEither converts Result[T] to Either[error, T].
func ResultToEither[T any](r Result[T]) Either[error, T] {
	if r.IsOk() {
		return Right[error, T](r.Unwrap())
	}
	return Left[error, T](r.UnwrapErr())
}

package optics

// Lens provides access to nested immutable structures: a total get paired
// with a total set.
type Lens[S, T, A, B any] struct {
	get func(S) A
	set func(S, B) T
}

// SimpleLens is a Lens whose updates never change the static type.
type SimpleLens[S, A any] = Lens[S, S, A, A]

// NewLens creates a lens from get and set functions.
func NewLens[S, T, A, B any](get func(S) A, set func(S, B) T) Lens[S, T, A, B] {
	return Lens[S, T, A, B]{get: get, set: set}
}

// Get retrieves the focused value.
func (l Lens[S, T, A, B]) Get(source S) A {
	return l.get(source)
}

// Set returns a new structure with the focused value replaced.
func (l Lens[S, T, A, B]) Set(source S, value B) T {
	return l.set(source, value)
}

// Modify applies a function to the focused value.
func (l Lens[S, T, A, B]) Modify(source S, fn func(A) B) T {
	return l.set(source, fn(l.get(source)))
}

// AsGetter discards the write capability.
func (l Lens[S, T, A, B]) AsGetter() Getter[S, A] {
	return Getter[S, A]{get: l.get}
}

// AsSetter discards the read capability.
func (l Lens[S, T, A, B]) AsSetter() Setter[S, T, A, B] {
	return Setter[S, T, A, B]{modify: l.Modify}
}

// ComposeLens creates a lens focusing deeper.
func ComposeLens[S, T, A, B, C, D any](outer Lens[S, T, A, B], inner Lens[A, B, C, D]) Lens[S, T, C, D] {
	return Lens[S, T, C, D]{
		get: func(s S) C { return inner.get(outer.get(s)) },
		set: func(s S, d D) T { return outer.set(s, inner.set(outer.get(s), d)) },
	}
}

// First creates a lens for the first element of a pair.
func First[A, B any]() SimpleLens[Pair[A, B], A] {
	return SimpleLens[Pair[A, B], A]{
		get: func(p Pair[A, B]) A { return p.First },
		set: func(p Pair[A, B], a A) Pair[A, B] { return Pair[A, B]{First: a, Second: p.Second} },
	}
}

// Second creates a lens for the second element of a pair.
func Second[A, B any]() SimpleLens[Pair[A, B], B] {
	return SimpleLens[Pair[A, B], B]{
		get: func(p Pair[A, B]) B { return p.Second },
		set: func(p Pair[A, B], b B) Pair[A, B] { return Pair[A, B]{First: p.First, Second: b} },
	}
}

// Pair is a generic two-element product used by the First and Second lenses.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MapAt creates a lens for a map value at a specific key. Reads of a missing
// key see the default; writes copy the map.
func MapAt[K comparable, V any](key K, defaultVal V) SimpleLens[map[K]V, V] {
	return SimpleLens[map[K]V, V]{
		get: func(m map[K]V) V {
			if v, ok := m[key]; ok {
				return v
			}
			return defaultVal
		},
		set: func(m map[K]V, v V) map[K]V {
			result := make(map[K]V, len(m)+1)
			for k, val := range m {
				result[k] = val
			}
			result[key] = v
			return result
		},
	}
}

// SliceAt creates a lens for a slice element at a specific index.
// Out-of-range reads see the default; out-of-range writes are no-ops.
func SliceAt[T any](index int, defaultVal T) SimpleLens[[]T, T] {
	return SimpleLens[[]T, T]{
		get: func(s []T) T {
			if index >= 0 && index < len(s) {
				return s[index]
			}
			return defaultVal
		},
		set: func(s []T, v T) []T {
			if index < 0 || index >= len(s) {
				return s
			}
			result := make([]T, len(s))
			copy(result, s)
			result[index] = v
			return result
		},
	}
}

package optics

// Setter is a write-only optic: it can modify or replace its foci but cannot
// report them.
type Setter[S, T, A, B any] struct {
	modify func(S, func(A) B) T
}

// SimpleSetter is a Setter whose updates never change the static type.
type SimpleSetter[S, A any] = Setter[S, S, A, A]

// NewSetter creates a setter from a modify function.
func NewSetter[S, T, A, B any](modify func(S, func(A) B) T) Setter[S, T, A, B] {
	return Setter[S, T, A, B]{modify: modify}
}

// Modify applies a function to every focus.
func (st Setter[S, T, A, B]) Modify(source S, fn func(A) B) T {
	return st.modify(source, fn)
}

// Set replaces every focus with a value.
func (st Setter[S, T, A, B]) Set(source S, value B) T {
	return st.modify(source, func(A) B { return value })
}

// ComposeSetter creates a setter writing deeper.
func ComposeSetter[S, T, A, B, C, D any](outer Setter[S, T, A, B], inner Setter[A, B, C, D]) Setter[S, T, C, D] {
	return Setter[S, T, C, D]{
		modify: func(s S, fn func(C) D) T {
			return outer.modify(s, func(a A) B { return inner.modify(a, fn) })
		},
	}
}

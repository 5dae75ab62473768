package optics

// Weakening views. Each reinterprets a Prism as a strictly weaker optic kind
// by capturing the same two defining functions; no behavior changes, only
// capability is dropped.

// AsOptional forgets that reconstruction is total: the write path goes
// through Set, ignoring the previous focus.
func (p Prism[S, T, A, B]) AsOptional() Optional[S, T, A, B] {
	return Optional[S, T, A, B]{
		getOrModify: p.getOrModify,
		set:         func(_ S, b B) T { return p.reverseGet(b) },
	}
}

// AsTraversal widens the zero-or-one focus to the traversal contract.
func (p Prism[S, T, A, B]) AsTraversal() Traversal[S, T, A, B] {
	return Traversal[S, T, A, B]{
		getAll: func(s S) []A { return p.GetOption(s).ToSlice() },
		modify: p.Modify,
	}
}

// AsSetter discards the read capability.
func (p Prism[S, T, A, B]) AsSetter() Setter[S, T, A, B] {
	return Setter[S, T, A, B]{modify: p.Modify}
}

// AsFold discards the write capability, aggregating over zero or one value.
func (p Prism[S, T, A, B]) AsFold() Fold[S, A] {
	return Fold[S, A]{
		getAll: func(s S) []A { return p.GetOption(s).ToSlice() },
	}
}

package callbacks

// BoolRegistry dispatches to callbacks until one returns true, for
// "did any handler claim this" style events.
// Registration methods work as on Registry.
type BoolRegistry[A any] struct {
	*list[func(A) bool]
}

// NewBoolRegistry creates an empty BoolRegistry for callbacks taking A.
func NewBoolRegistry[A any](opts ...Option) *BoolRegistry[A] {
	return &BoolRegistry[A]{list: newList[func(A) bool](opts...)}
}

// DispatchUntilTrue calls the callbacks in registration order and returns
// true at the first one returning true, without calling the rest.
// Returns false if every callback returns false or none is registered.
func (r *BoolRegistry[A]) DispatchUntilTrue(arg A) bool {
	entries := r.snapshot()
	for i, e := range entries {
		claimed, _ := guard(r.list, e.handle, func() bool {
			return e.fn(arg)
		})
		if claimed {
			r.shortCircuit(e.handle, i, len(entries))
			return true
		}
	}
	return false
}

// Dispatch calls every callback once with arg and discards the results.
func (r *BoolRegistry[A]) Dispatch(arg A) {
	for _, e := range r.snapshot() {
		guard(r.list, e.handle, func() bool {
			return e.fn(arg)
		})
	}
}

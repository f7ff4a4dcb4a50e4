package callbacks

// ContainerRegistry dispatches to callbacks until one returns a non-empty
// result. Earlier registrations take precedence.
// Registration methods work as on Registry.
type ContainerRegistry[A, R any] struct {
	*list[func(A) R]
	isEmpty func(R) bool
}

// NewContainerRegistryFunc creates an empty ContainerRegistry that uses
// isEmpty to test results. Panics if isEmpty is nil.
func NewContainerRegistryFunc[A, R any](isEmpty func(R) bool, opts ...Option) *ContainerRegistry[A, R] {
	if isEmpty == nil {
		panic("callbacks: nil isEmpty predicate")
	}
	return &ContainerRegistry[A, R]{
		list:    newList[func(A) R](opts...),
		isEmpty: isEmpty,
	}
}

// NewContainerRegistry creates an empty ContainerRegistry for result types
// implementing Emptier, such as Optional.
func NewContainerRegistry[A any, R Emptier](opts ...Option) *ContainerRegistry[A, R] {
	return NewContainerRegistryFunc[A](func(r R) bool { return r.IsEmpty() }, opts...)
}

// NewSliceRegistry creates an empty ContainerRegistry whose callbacks return
// slices. A slice of length zero is empty.
func NewSliceRegistry[A, E any](opts ...Option) *ContainerRegistry[A, []E] {
	return NewContainerRegistryFunc[A](func(r []E) bool { return len(r) == 0 }, opts...)
}

// NewMapRegistry creates an empty ContainerRegistry whose callbacks return
// maps. A map of length zero is empty.
func NewMapRegistry[A any, K comparable, V any](opts ...Option) *ContainerRegistry[A, map[K]V] {
	return NewContainerRegistryFunc[A](func(r map[K]V) bool { return len(r) == 0 }, opts...)
}

// NewStringRegistry creates an empty ContainerRegistry whose callbacks return
// strings. The empty string is empty.
func NewStringRegistry[A any](opts ...Option) *ContainerRegistry[A, string] {
	return NewContainerRegistryFunc[A](func(r string) bool { return r == "" }, opts...)
}

// DispatchUntilNonEmpty calls the callbacks in registration order and returns
// the first non-empty result. Callbacks after it are not called.
// Returns the zero R if every result is empty or no callback is registered.
func (r *ContainerRegistry[A, R]) DispatchUntilNonEmpty(arg A) R {
	entries := r.snapshot()
	for i, e := range entries {
		result, recovered := guard(r.list, e.handle, func() R {
			return e.fn(arg)
		})
		if recovered || r.isEmpty(result) {
			continue
		}
		r.shortCircuit(e.handle, i, len(entries))
		return result
	}

	var zero R
	return zero
}

// Dispatch calls every callback once with arg and discards the results.
func (r *ContainerRegistry[A, R]) Dispatch(arg A) {
	for _, e := range r.snapshot() {
		guard(r.list, e.handle, func() R {
			return e.fn(arg)
		})
	}
}

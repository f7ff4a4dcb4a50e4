package callbacks

// Registry invokes every registered callback on each dispatch.
//
// Every registry type provides Register, Subscribe, Deregister,
// DeregisterAll, Len, Handles and Stats; only the dispatch methods differ.
type Registry[A any] struct {
	*list[func(A)]
}

// NewRegistry creates an empty Registry for callbacks taking A.
// Callbacks needing several values take a struct.
func NewRegistry[A any](opts ...Option) *Registry[A] {
	return &Registry[A]{list: newList[func(A)](opts...)}
}

// Dispatch calls every callback once with arg, in registration order.
// The set of callbacks is fixed when Dispatch starts.
func (r *Registry[A]) Dispatch(arg A) {
	for _, e := range r.snapshot() {
		guard(r.list, e.handle, func() struct{} {
			e.fn(arg)
			return struct{}{}
		})
	}
}

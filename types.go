// Package callbacks provides generic callback registries with handle-based
// deregistration and fixed dispatch policies.
//
// A registry holds an ordered list of callbacks. Register appends a callback
// and returns a Handle; Deregister removes it again. Dispatch invokes the
// callbacks synchronously on the caller's goroutine, in registration order,
// under the policy of the registry type:
//
//   - Registry invokes every callback.
//   - ContainerRegistry stops at the first callback returning a non-empty result.
//   - BoolRegistry stops at the first callback returning true.
//   - FallibleRegistry stops at the first callback returning an error.
//
// Quick example:
//
//	resolvers := callbacks.NewStringRegistry[string]()
//	resolvers.Register(func(key string) string { return os.Getenv(key) })
//	resolvers.Register(func(key string) string { return defaults[key] })
//
//	value := resolvers.DispatchUntilNonEmpty("HOME")
//
// Concurrency: all registry methods are safe for concurrent use. Dispatch
// works on a snapshot taken when it starts, so a callback may register,
// deregister or dispatch on its own registry; such changes apply from the next
// dispatch onward.
//
// Callback failures are not isolated unless WithPanicHandler is set: a panic
// unwinds through Dispatch and the remaining callbacks are skipped.
package callbacks

// Handle identifies one registered callback.
// Handles are strictly increasing per registry and never reused.
// The zero Handle is never issued.
type Handle uint64

// Emptier is implemented by result types that know when they carry nothing.
type Emptier interface {
	// IsEmpty reports whether the value represents absence of a result.
	IsEmpty() bool
}

// entry pairs a callback with the handle it was registered under.
type entry[F any] struct {
	handle Handle
	fn     F
}

// Stats provides runtime metrics for a registry.
type Stats struct {
	// ID is the unique instance identifier of the registry.
	ID string

	// Name is the label configured with WithName.
	Name string

	// Callbacks is the number of registered callbacks.
	Callbacks int

	// LastHandle is the most recently issued handle, zero if none.
	LastHandle Handle

	// Dispatches counts dispatch rounds started.
	Dispatches uint64

	// ShortCircuits counts rounds ended by a callback meeting the registry's
	// stop condition (non-empty result, true, or error).
	ShortCircuits uint64

	// Recovered counts callback panics handed to the PanicHandler.
	Recovered uint64
}

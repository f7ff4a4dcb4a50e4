package callbacks

import (
	goerrors "github.com/goliatone/go-errors"
)

// FallibleRegistry dispatches to callbacks that report failure with an error.
// Register, Subscribe, Deregister, DeregisterAll, Len, Handles and Stats
// work as on Registry.
type FallibleRegistry[A any] struct {
	*list[func(A) error]
}

// NewFallibleRegistry creates an empty FallibleRegistry for callbacks taking A.
func NewFallibleRegistry[A any](opts ...Option) *FallibleRegistry[A] {
	return &FallibleRegistry[A]{list: newList[func(A) error](opts...)}
}

// Dispatch calls the callbacks in registration order and stops at the first
// one returning an error. That error is returned wrapped in a go-errors
// *Error, so errors.Is and errors.As reach the original. A callback error
// that is itself a *Error keeps its category and text code on the wrapper.
// FailedHandle identifies the callback. Callbacks after the failing one are
// not called.
func (r *FallibleRegistry[A]) Dispatch(arg A) error {
	entries := r.snapshot()
	for i, e := range entries {
		err, _ := guard(r.list, e.handle, func() error {
			return e.fn(arg)
		})
		if err != nil {
			r.shortCircuit(e.handle, i, len(entries))
			return r.callbackError(err, e.handle, i)
		}
	}
	return nil
}

// DispatchAll calls every callback once with arg, whether or not earlier
// callbacks failed, and returns all failures joined in registration order.
// Returns nil if no callback failed.
func (r *FallibleRegistry[A]) DispatchAll(arg A) error {
	var errs []error
	for i, e := range r.snapshot() {
		err, _ := guard(r.list, e.handle, func() error {
			return e.fn(arg)
		})
		if err != nil {
			errs = append(errs, r.callbackError(err, e.handle, i))
		}
	}
	return goerrors.Join(errs...)
}

package callbacks

// Optional holds a value or nothing. The zero Optional holds nothing.
// It gives result types without an emptiness notion one, for use with
// NewContainerRegistry.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the held value and whether there is one.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// OrElse returns the held value, or fallback if there is none.
func (o Optional[T]) OrElse(fallback T) T {
	if !o.ok {
		return fallback
	}
	return o.value
}

// IsEmpty reports whether o holds nothing.
func (o Optional[T]) IsEmpty() bool {
	return !o.ok
}

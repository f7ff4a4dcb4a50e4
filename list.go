package callbacks

import (
	"cmp"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// list is the ordered collection of callbacks shared by every registry type.
// It owns registration and deregistration; the registry types built on top of
// it add a dispatch policy.
//
// F is the callback signature. A nil F must not be registered.
type list[F any] struct {
	// entries is copy-on-write: it is replaced, never modified in place, so a
	// dispatch can iterate a slice taken under the read lock.
	entries []entry[F]
	mu      sync.RWMutex

	last          atomic.Uint64
	dispatches    atomic.Uint64
	shortCircuits atomic.Uint64
	recovered     atomic.Uint64

	id           string
	name         string
	log          zerolog.Logger
	panicHandler PanicHandler
}

// newList creates an empty list.
func newList[F any](opts ...Option) *list[F] {
	o := newOptions(opts)
	id := uuid.NewString()
	return &list[F]{
		id:   id,
		name: o.name,
		log: o.logger.With().
			Str("component", "callbacks").
			Str("registry", o.name).
			Str("registry_id", id).
			Logger(),
		panicHandler: o.panicHandler,
	}
}

// nextHandle mints a handle greater than every handle minted before.
func (l *list[F]) nextHandle() Handle {
	return Handle(l.last.Add(1))
}

// Register appends callback and returns its handle.
// The callback runs after every callback registered before it.
func (l *list[F]) Register(callback F) Handle {
	l.mu.Lock()
	// Minted under the lock so entries stay sorted by handle.
	h := l.nextHandle()
	l.entries = append(slices.Clip(l.entries), entry[F]{handle: h, fn: callback})
	count := len(l.entries)
	l.mu.Unlock()

	l.log.Debug().
		Uint64("handle", uint64(h)).
		Int("callbacks", count).
		Msg("callback registered")
	return h
}

// Subscribe registers callback and returns a Subscription for it.
func (l *list[F]) Subscribe(callback F) *Subscription {
	return &Subscription{
		handle:     l.Register(callback),
		deregister: l.Deregister,
	}
}

// Deregister removes the callback registered under handle.
// Returns false if handle is unknown or was already removed.
func (l *list[F]) Deregister(handle Handle) bool {
	l.mu.Lock()
	i, found := slices.BinarySearchFunc(l.entries, handle, func(e entry[F], h Handle) int {
		return cmp.Compare(e.handle, h)
	})
	if !found {
		l.mu.Unlock()
		return false
	}
	l.entries = slices.Concat(l.entries[:i], l.entries[i+1:])
	count := len(l.entries)
	l.mu.Unlock()

	l.log.Debug().
		Uint64("handle", uint64(handle)).
		Int("callbacks", count).
		Msg("callback deregistered")
	return true
}

// DeregisterAll removes every callback. Handles are not reset.
func (l *list[F]) DeregisterAll() {
	l.mu.Lock()
	removed := len(l.entries)
	l.entries = nil
	l.mu.Unlock()

	l.log.Debug().Int("removed", removed).Msg("all callbacks deregistered")
}

// Len returns the number of registered callbacks.
func (l *list[F]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Handles returns the handles of the registered callbacks in dispatch order.
func (l *list[F]) Handles() []Handle {
	l.mu.RLock()
	defer l.mu.RUnlock()

	handles := make([]Handle, len(l.entries))
	for i, e := range l.entries {
		handles[i] = e.handle
	}
	return handles
}

// Stats returns runtime metrics for the registry.
func (l *list[F]) Stats() Stats {
	return Stats{
		ID:            l.id,
		Name:          l.name,
		Callbacks:     l.Len(),
		LastHandle:    Handle(l.last.Load()),
		Dispatches:    l.dispatches.Load(),
		ShortCircuits: l.shortCircuits.Load(),
		Recovered:     l.recovered.Load(),
	}
}

// snapshot starts a dispatch round and returns the entries live at its start.
// The returned slice must not be modified.
func (l *list[F]) snapshot() []entry[F] {
	l.mu.RLock()
	entries := l.entries
	l.mu.RUnlock()

	l.dispatches.Add(1)
	l.log.Trace().Int("callbacks", len(entries)).Msg("dispatch started")
	return entries
}

// shortCircuit records a round that stopped at position out of total.
func (l *list[F]) shortCircuit(handle Handle, position, total int) {
	l.shortCircuits.Add(1)
	l.log.Trace().
		Uint64("handle", uint64(handle)).
		Int("position", position).
		Int("skipped", total-position-1).
		Msg("dispatch short-circuited")
}

// guard runs call for the callback registered under handle.
// With a PanicHandler configured a panic is recovered and reported, and guard
// returns the zero R with recovered set. Otherwise the panic propagates.
func guard[F, R any](l *list[F], handle Handle, call func() R) (result R, recovered bool) {
	if l.panicHandler == nil {
		return call(), false
	}

	defer func() {
		if r := recover(); r != nil {
			l.recovered.Add(1)
			l.log.Warn().
				Uint64("handle", uint64(handle)).
				Interface("panic", r).
				Msg("callback panicked")
			l.panicHandler(handle, r)

			var zero R
			result, recovered = zero, true
		}
	}()
	return call(), false
}

package callbacks

// Subscription represents one registered callback.
// Call Close() to deregister it and prevent further invocations.
// Subscriptions come from Subscribe; the zero Subscription refers to no
// callback and its Close does nothing.
type Subscription struct {
	handle     Handle
	deregister func(Handle) bool
}

// Handle returns the handle the callback was registered under.
func (s *Subscription) Handle() Handle {
	return s.handle
}

// Close removes the callback from its registry.
// Returns true only for the call that removed it; later calls return false.
func (s *Subscription) Close() bool {
	if s.deregister == nil {
		return false
	}
	return s.deregister(s.handle)
}

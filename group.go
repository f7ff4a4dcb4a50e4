package callbacks

import "sync"

// Group collects subscriptions, possibly from different registries, so a
// component can deregister all of its callbacks with one Close.
// The zero Group is ready to use.
type Group struct {
	subs   []*Subscription
	closed bool
	mu     sync.Mutex
}

// Add puts subs into the group.
// On a closed group the subscriptions are closed immediately.
func (g *Group) Add(subs ...*Subscription) {
	g.mu.Lock()
	if !g.closed {
		g.subs = append(g.subs, subs...)
		g.mu.Unlock()
		return
	}
	g.mu.Unlock()

	for _, s := range subs {
		s.Close()
	}
}

// Len returns the number of subscriptions held.
func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.subs)
}

// Close deregisters every subscription in the group and reports how many
// callbacks were removed. Subscriptions already closed elsewhere are skipped.
// Safe to call multiple times; later calls remove nothing.
func (g *Group) Close() int {
	g.mu.Lock()
	g.closed = true
	subs := g.subs
	g.subs = nil
	g.mu.Unlock()

	removed := 0
	for _, s := range subs {
		if s.Close() {
			removed++
		}
	}
	return removed
}

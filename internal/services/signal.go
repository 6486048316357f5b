package services

import "sync"

// Signal is a payload-free in-process broadcast. The cart service fires it
// after every mutating call so navigation chrome can recompute its badge.
// Subscribers are invoked synchronously, in no particular order.
type Signal struct {
	mu   sync.Mutex
	subs map[int]func()
	next int
}

func NewSignal() *Signal {
	return &Signal{subs: make(map[int]func())}
}

// Subscribe registers fn and returns a cancel func that removes it.
func (s *Signal) Subscribe(fn func()) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.next
	s.next++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Signal) Notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	// Called outside the lock so a subscriber may subscribe or cancel.
	for _, fn := range fns {
		fn()
	}
}

package observe

import "sync"

// Unsubscribe detaches a subscriber. Calling it more than once is a no-op.
type Unsubscribe func()

// Subject holds a current value and notifies subscribers on every Set.
// Subscribers receive the current value immediately on Subscribe, so a
// subscription can be dropped and re-established at any time without missing
// the latest state.
type Subject[T any] struct {
	mu     sync.Mutex
	value  T
	nextID uint64
	subs   map[uint64]func(T)
	order  []uint64
}

func NewSubject[T any](initial T) *Subject[T] {
	return &Subject[T]{
		value: initial,
		subs:  map[uint64]func(T){},
	}
}

func (s *Subject[T]) Value() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set stores v and emits it to every subscriber in subscription order.
func (s *Subject[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	callbacks := s.snapshotLocked()
	s.mu.Unlock()

	for _, cb := range callbacks {
		cb(v)
	}
}

// Update applies fn to the current value and emits the result.
func (s *Subject[T]) Update(fn func(T) T) {
	s.mu.Lock()
	v := fn(s.value)
	s.value = v
	callbacks := s.snapshotLocked()
	s.mu.Unlock()

	for _, cb := range callbacks {
		cb(v)
	}
}

func (s *Subject[T]) Subscribe(onNext func(T)) Unsubscribe {
	if onNext == nil {
		return func() {}
	}

	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subs[id] = onNext
	s.order = append(s.order, id)
	v := s.value
	s.mu.Unlock()

	onNext(v)

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(id) })
	}
}

func (s *Subject[T]) remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subs[id]; !ok {
		return
	}
	delete(s.subs, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *Subject[T]) snapshotLocked() []func(T) {
	out := make([]func(T), 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.subs[id])
	}
	return out
}

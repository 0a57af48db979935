package observe

import "sync"

// Combined re-emits fn(a, b) whenever either upstream subject changes.
type Combined[A, B, R any] struct {
	*Subject[R]

	mu      sync.Mutex
	combine func(A, B) R
	a       A
	b       B
	depth   int
	dirty   bool
	detachA Unsubscribe
	detachB Unsubscribe
}

// CombineLatest subscribes to both subjects and exposes their latest
// combined value. Close detaches it from the upstream subjects.
func CombineLatest[A, B, R any](a *Subject[A], b *Subject[B], combine func(A, B) R) *Combined[A, B, R] {
	c := &Combined[A, B, R]{
		combine: combine,
		a:       a.Value(),
		b:       b.Value(),
	}
	c.Subject = NewSubject(combine(c.a, c.b))

	// Subscribe replays the current values; both are already folded in above.
	primed := false
	c.detachA = a.Subscribe(func(v A) {
		if !primed {
			return
		}
		c.mu.Lock()
		c.a = v
		c.mu.Unlock()
		c.changed()
	})
	c.detachB = b.Subscribe(func(v B) {
		if !primed {
			return
		}
		c.mu.Lock()
		c.b = v
		c.mu.Unlock()
		c.changed()
	})
	primed = true
	return c
}

// Batch runs fn with emission suspended. If any upstream changed while fn
// ran, exactly one combined value is emitted afterwards.
func (c *Combined[A, B, R]) Batch(fn func()) {
	c.mu.Lock()
	c.depth++
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.depth--
		emit := c.depth == 0 && c.dirty
		if emit {
			c.dirty = false
		}
		v := c.combine(c.a, c.b)
		c.mu.Unlock()
		if emit {
			c.Set(v)
		}
	}()

	fn()
}

func (c *Combined[A, B, R]) Close() {
	c.detachA()
	c.detachB()
}

func (c *Combined[A, B, R]) changed() {
	c.mu.Lock()
	if c.depth > 0 {
		c.dirty = true
		c.mu.Unlock()
		return
	}
	v := c.combine(c.a, c.b)
	c.mu.Unlock()
	c.Set(v)
}

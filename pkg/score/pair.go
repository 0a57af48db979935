package score

import (
	"fmt"

	"github.com/go-go-golems/catsdogs/pkg/content"
	"github.com/go-go-golems/catsdogs/pkg/observe"
)

// Snapshot is the combined value of both counters.
type Snapshot struct {
	Cats int `json:"cats"`
	Dogs int `json:"dogs"`
}

func (s Snapshot) Text() string {
	return fmt.Sprintf("Score: %d cats and %d dogs", s.Cats, s.Dogs)
}

// Pair holds one counter per category. Counters only go up, except for Reset
// which zeroes both and emits a single snapshot.
type Pair struct {
	cats     *observe.Subject[int]
	dogs     *observe.Subject[int]
	combined *observe.Combined[int, int, Snapshot]
}

func NewPair() *Pair {
	p := &Pair{
		cats: observe.NewSubject(0),
		dogs: observe.NewSubject(0),
	}
	p.combined = observe.CombineLatest(p.cats, p.dogs, func(c, d int) Snapshot {
		return Snapshot{Cats: c, Dogs: d}
	})
	return p
}

// Increment bumps the counter for c. None is ignored.
func (p *Pair) Increment(c content.Category) {
	switch c {
	case content.Cats:
		p.cats.Update(inc)
	case content.Dogs:
		p.dogs.Update(inc)
	}
}

func (p *Pair) Reset() {
	p.combined.Batch(func() {
		p.cats.Set(0)
		p.dogs.Set(0)
	})
}

// Observe delivers the current snapshot immediately and one snapshot per
// subsequent mutation.
func (p *Pair) Observe(onNext func(Snapshot)) observe.Unsubscribe {
	return p.combined.Subscribe(onNext)
}

func (p *Pair) Snapshot() Snapshot {
	return p.combined.Value()
}

func (p *Pair) Text() string {
	return p.Snapshot().Text()
}

func inc(v int) int { return v + 1 }

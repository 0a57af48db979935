package score

import (
	"math/rand"
	"testing"

	"github.com/go-go-golems/catsdogs/pkg/content"
	"github.com/stretchr/testify/require"
)

func TestPair_InitialState(t *testing.T) {
	p := NewPair()
	require.Equal(t, Snapshot{}, p.Snapshot())
	require.Equal(t, "Score: 0 cats and 0 dogs", p.Text())
}

func TestPair_ScoreTracksRandomIncrements(t *testing.T) {
	p := NewPair()
	var texts []string
	unsub := p.Observe(func(s Snapshot) { texts = append(texts, s.Text()) })
	defer unsub()

	r := rand.New(rand.NewSource(42))
	cats, dogs := 0, 0
	for i := 0; i < 200; i++ {
		if r.Intn(2) == 0 {
			p.Increment(content.Cats)
			cats++
		} else {
			p.Increment(content.Dogs)
			dogs++
		}
		require.Equal(t, Snapshot{Cats: cats, Dogs: dogs}, p.Snapshot())
		require.Equal(t, p.Text(), texts[len(texts)-1])
	}
	// initial replay plus one per mutation
	require.Len(t, texts, 201)
}

func TestPair_ResetEmitsSingleZeroSnapshot(t *testing.T) {
	p := NewPair()
	for i := 0; i < 3; i++ {
		p.Increment(content.Cats)
	}
	p.Increment(content.Dogs)
	p.Increment(content.Dogs)

	var got []Snapshot
	unsub := p.Observe(func(s Snapshot) { got = append(got, s) })
	defer unsub()

	p.Reset()
	require.Equal(t, []Snapshot{{Cats: 3, Dogs: 2}, {}}, got)
	require.Equal(t, "Score: 0 cats and 0 dogs", p.Text())
}

func TestPair_IncrementNoneIsIgnored(t *testing.T) {
	p := NewPair()
	calls := 0
	unsub := p.Observe(func(Snapshot) { calls++ })
	defer unsub()

	p.Increment(content.None)
	require.Equal(t, 1, calls)
	require.Equal(t, Snapshot{}, p.Snapshot())
}

package observe

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubject_ReplaysCurrentValueOnSubscribe(t *testing.T) {
	s := NewSubject(3)

	var got []int
	unsub := s.Subscribe(func(v int) { got = append(got, v) })
	defer unsub()

	s.Set(4)
	s.Update(func(v int) int { return v + 1 })
	require.Equal(t, []int{3, 4, 5}, got)
	require.Equal(t, 5, s.Value())
}

func TestSubject_UnsubscribeStopsDeliveryAndIsRestartable(t *testing.T) {
	s := NewSubject("a")

	var first []string
	unsub := s.Subscribe(func(v string) { first = append(first, v) })
	s.Set("b")
	unsub()
	unsub()
	s.Set("c")
	require.Equal(t, []string{"a", "b"}, first)

	var second []string
	unsub = s.Subscribe(func(v string) { second = append(second, v) })
	defer unsub()
	s.Set("d")
	require.Equal(t, []string{"c", "d"}, second)
}

func TestSubject_NilSubscriberIgnored(t *testing.T) {
	s := NewSubject(1)
	unsub := s.Subscribe(nil)
	unsub()
	s.Set(2)
	require.Equal(t, 2, s.Value())
}

func TestCombineLatest_EmitsOnEitherChange(t *testing.T) {
	a := NewSubject(0)
	b := NewSubject(0)
	c := CombineLatest(a, b, func(x, y int) string { return fmt.Sprintf("%d/%d", x, y) })
	defer c.Close()

	var got []string
	unsub := c.Subscribe(func(v string) { got = append(got, v) })
	defer unsub()

	a.Set(1)
	b.Set(2)
	a.Set(3)
	require.Equal(t, []string{"0/0", "1/0", "1/2", "3/2"}, got)
}

func TestCombineLatest_BatchEmitsOnce(t *testing.T) {
	a := NewSubject(5)
	b := NewSubject(7)
	c := CombineLatest(a, b, func(x, y int) int { return x + y })
	defer c.Close()

	var got []int
	unsub := c.Subscribe(func(v int) { got = append(got, v) })
	defer unsub()

	c.Batch(func() {
		a.Set(0)
		b.Set(0)
	})
	require.Equal(t, []int{12, 0}, got)

	c.Batch(func() {})
	require.Equal(t, []int{12, 0}, got)
}

func TestCombineLatest_CloseDetachesUpstream(t *testing.T) {
	a := NewSubject(1)
	b := NewSubject(1)
	c := CombineLatest(a, b, func(x, y int) int { return x * y })
	c.Close()

	a.Set(10)
	require.Equal(t, 1, c.Value())
}

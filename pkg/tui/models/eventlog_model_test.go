package models

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-go-golems/catsdogs/pkg/journal"
	"github.com/go-go-golems/catsdogs/pkg/tui"
	"github.com/stretchr/testify/require"
)

func TestEventLog_AppendOrdersBySeq(t *testing.T) {
	m := NewEventLogModel().WithSize(80, 12)
	for _, seq := range []uint64{3, 1, 4, 2} {
		m = m.Append(tui.EventLogEntry{Seq: seq, At: time.Now(), Text: fmt.Sprintf("e%d", seq)})
	}

	texts := make([]string, 0, m.Len())
	for _, e := range m.entries {
		texts = append(texts, e.Text)
	}
	require.Equal(t, []string{"e1", "e2", "e3", "e4"}, texts)
}

func TestEventLog_JournalBurstArrivesInPublishOrder(t *testing.T) {
	const n = 300

	ps := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 64}, watermill.NopLogger{})
	defer func() { _ = ps.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan tea.Msg, n)
	fwd := &tui.JournalForwarder{Sub: ps, Send: func(m tea.Msg) { got <- m }}
	require.NoError(t, fwd.Subscribe(ctx))
	go func() { _ = fwd.Run(ctx) }()

	pub := journal.NewPublisher(ps)
	for i := 1; i <= n; i++ {
		require.NoError(t, pub.Publish("burst", map[string]int{"i": i}))
	}

	m := NewEventLogModel().WithSize(80, 12)
	for i := 0; i < n; i++ {
		select {
		case msg := <-got:
			m = m.Append(msg.(tui.EventLogAppendMsg).Entry)
		case <-time.After(5 * time.Second):
			t.Fatalf("received %d of %d entries", i, n)
		}
	}

	require.Equal(t, n, m.Len())
	for i, e := range m.entries {
		require.Equal(t, uint64(i+1), e.Seq)
		require.Equal(t, fmt.Sprintf(`burst {"i":%d}`, i+1), e.Text)
	}
}

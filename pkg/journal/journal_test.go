package journal

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_RoundTripSummary(t *testing.T) {
	env, err := NewEnvelope("score.changed", map[string]int{"cats": 1})
	require.NoError(t, err)
	b, err := env.MarshalJSONBytes()
	require.NoError(t, err)

	parsed, err := ParseEnvelope(b)
	require.NoError(t, err)
	require.Equal(t, "score.changed", parsed.Type)
	require.Equal(t, `score.changed {"cats":1}`, parsed.Summary())

	_, err = NewEnvelope("", nil)
	require.Error(t, err)
	_, err = ParseEnvelope([]byte(`{"payload":{}}`))
	require.Error(t, err)

	bare, err := NewEnvelope("reset", nil)
	require.NoError(t, err)
	require.Equal(t, "reset", bare.Summary())
}

func TestPublisher_PublishesToTopic(t *testing.T) {
	ps := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 16}, watermill.NopLogger{})
	defer func() { _ = ps.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	msgs, err := ps.Subscribe(ctx, TopicEvents)
	require.NoError(t, err)

	p := NewPublisher(ps)
	p.Record("trigger", map[string]string{"category": "cats"})

	select {
	case m := <-msgs:
		env, err := ParseEnvelope(m.Payload)
		require.NoError(t, err)
		require.Equal(t, "trigger", env.Type)
		require.JSONEq(t, `{"category":"cats"}`, string(env.Payload))
		m.Ack()
	case <-ctx.Done():
		t.Fatal("no message received")
	}
}

func TestPublisher_AssignsIncreasingSeq(t *testing.T) {
	ps := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 16}, watermill.NopLogger{})
	defer func() { _ = ps.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	msgs, err := ps.Subscribe(ctx, TopicEvents)
	require.NoError(t, err)

	p := NewPublisher(ps)
	for _, kind := range []string{"trigger", "load.result", "score.changed", "display.changed"} {
		require.NoError(t, p.Publish(kind, nil))
	}

	bySeq := map[uint64]string{}
	for len(bySeq) < 4 {
		select {
		case m := <-msgs:
			env, err := ParseEnvelope(m.Payload)
			require.NoError(t, err)
			bySeq[env.Seq] = env.Type
			m.Ack()
		case <-ctx.Done():
			t.Fatal("missing messages")
		}
	}
	require.Equal(t, map[uint64]string{
		1: "trigger",
		2: "load.result",
		3: "score.changed",
		4: "display.changed",
	}, bySeq)
}

package tui

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-go-golems/catsdogs/pkg/journal"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// JournalForwarder turns journal envelopes into event log entries for the
// running program.
type JournalForwarder struct {
	Sub   message.Subscriber
	Topic string
	Send  func(tea.Msg)

	msgs <-chan *message.Message
}

// Subscribe attaches to the journal topic. The pub/sub is not persistent,
// so call it before anything is recorded. Run subscribes itself if needed.
func (f *JournalForwarder) Subscribe(ctx context.Context) error {
	if f.Sub == nil {
		return errors.New("missing Subscriber")
	}
	if f.msgs != nil {
		return nil
	}
	topic := f.Topic
	if topic == "" {
		topic = journal.TopicEvents
	}
	msgs, err := f.Sub.Subscribe(ctx, topic)
	if err != nil {
		return errors.Wrap(err, "subscribe journal")
	}
	f.msgs = msgs
	return nil
}

func (f *JournalForwarder) Run(ctx context.Context) error {
	if f.Send == nil {
		return errors.New("missing Send")
	}
	if err := f.Subscribe(ctx); err != nil {
		return err
	}
	msgs := f.msgs

	for {
		select {
		case <-ctx.Done():
			return nil
		case m, ok := <-msgs:
			if !ok {
				return nil
			}
			env, err := journal.ParseEnvelope(m.Payload)
			m.Ack()
			if err != nil {
				log.Warn().Err(err).Msg("skipping malformed journal message")
				continue
			}
			f.Send(EventLogAppendMsg{Entry: EventLogEntry{Seq: env.Seq, At: env.At, Text: env.Summary()}})
		}
	}
}

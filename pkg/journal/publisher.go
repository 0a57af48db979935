package journal

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog/log"
)

// Publisher writes journal records to a watermill topic. Publishing errors
// are logged and otherwise ignored; the journal never blocks the screen.
// Publish must be called from a single goroutine.
type Publisher struct {
	Pub   message.Publisher
	Topic string

	seq uint64
}

func NewPublisher(pub message.Publisher) *Publisher {
	return &Publisher{Pub: pub, Topic: TopicEvents}
}

func (p *Publisher) Record(kind string, payload any) {
	if err := p.Publish(kind, payload); err != nil {
		log.Warn().Err(err).Str("kind", kind).Msg("journal publish failed")
	}
}

func (p *Publisher) Publish(kind string, payload any) error {
	env, err := NewEnvelope(kind, payload)
	if err != nil {
		return err
	}
	p.seq++
	env.Seq = p.seq
	b, err := env.MarshalJSONBytes()
	if err != nil {
		return err
	}
	topic := p.Topic
	if topic == "" {
		topic = TopicEvents
	}
	return p.Pub.Publish(topic, message.NewMessage(watermill.NewUUID(), b))
}

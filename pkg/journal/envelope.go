package journal

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// Envelope is the JSON form of one journal record.
// Seq orders envelopes from one Publisher; delivery order is not guaranteed.
type Envelope struct {
	Seq     uint64          `json:"seq"`
	Type    string          `json:"type"`
	At      time.Time       `json:"at"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func NewEnvelope(typ string, payload any) (Envelope, error) {
	if typ == "" {
		return Envelope{}, errors.New("missing envelope type")
	}
	env := Envelope{Type: typ, At: time.Now()}
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return Envelope{}, errors.Wrapf(err, "marshal %s payload", typ)
		}
		env.Payload = b
	}
	return env, nil
}

func (e Envelope) MarshalJSONBytes() ([]byte, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return nil, errors.Wrap(err, "marshal envelope")
	}
	return b, nil
}

func ParseEnvelope(b []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return Envelope{}, errors.Wrap(err, "parse envelope")
	}
	if env.Type == "" {
		return Envelope{}, errors.New("envelope without type")
	}
	return env, nil
}

// Summary renders the envelope as a single log line.
func (e Envelope) Summary() string {
	if len(e.Payload) == 0 || string(e.Payload) == "null" {
		return e.Type
	}
	return e.Type + " " + string(e.Payload)
}

package coordinator

import "github.com/go-go-golems/catsdogs/pkg/display"

// Recorder receives a record of every state transition. It is an
// observation sink and never feeds back into the coordinator.
type Recorder interface {
	Record(kind string, payload any)
}

const (
	KindTrigger        = "trigger"
	KindLoadResult     = "load.result"
	KindScoreChanged   = "score.changed"
	KindDisplayChanged = "display.changed"
	KindReset          = "reset"
)

type TriggerRecord struct {
	Reason     string `json:"reason"`
	Category   string `json:"category"`
	Generation uint64 `json:"generation"`
}

type LoadResultRecord struct {
	Category   string `json:"category"`
	Generation uint64 `json:"generation"`
	Kind       string `json:"kind"`
	Stale      bool   `json:"stale,omitempty"`
	Discarded  bool   `json:"discarded,omitempty"`
	Error      string `json:"error,omitempty"`
}

type DisplayRecord struct {
	State string `json:"state"`
	Text  string `json:"text,omitempty"`
	Ref   string `json:"ref,omitempty"`
}

type ResetRecord struct {
	Generation uint64 `json:"generation"`
}

type nopRecorder struct{}

func (nopRecorder) Record(string, any) {}

func newLoadResultRecord(msg LoadResultMsg, stale, discarded bool) LoadResultRecord {
	rec := LoadResultRecord{
		Category:   msg.Category.String(),
		Generation: msg.Generation,
		Kind:       msg.Result.Kind.String(),
		Stale:      stale,
		Discarded:  discarded,
	}
	if msg.Result.Err != nil {
		rec.Error = msg.Result.Err.Error()
	}
	return rec
}

func newDisplayRecord(d *display.Display) DisplayRecord {
	return DisplayRecord{State: d.State().String(), Text: d.Text(), Ref: d.Ref()}
}

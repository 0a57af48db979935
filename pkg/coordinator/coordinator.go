package coordinator

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-go-golems/catsdogs/pkg/content"
	"github.com/go-go-golems/catsdogs/pkg/display"
	"github.com/go-go-golems/catsdogs/pkg/observe"
	"github.com/go-go-golems/catsdogs/pkg/score"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// StalePolicy decides what happens to a load result that was issued before
// the latest trigger or reset.
type StalePolicy string

const (
	StaleDiscard StalePolicy = "discard"
	StaleApply   StalePolicy = "apply"
)

func ParseStalePolicy(s string) (StalePolicy, error) {
	switch StalePolicy(s) {
	case "", StaleDiscard:
		return StaleDiscard, nil
	case StaleApply:
		return StaleApply, nil
	}
	return "", errors.Errorf("unknown stale policy %q", s)
}

type Options struct {
	Loader       content.Loader
	Materializer display.Materializer
	Policy       StalePolicy
	Recorder     Recorder
}

// Coordinator is the screen's state machine. All of its methods must be
// called from a single goroutine, normally the bubbletea program loop. Loads
// and image materializations are returned as tea.Cmds and come back as
// messages through Update.
type Coordinator struct {
	ctx    context.Context
	cancel context.CancelFunc

	loader   content.Loader
	pair     *score.Pair
	display  *display.Display
	policy   StalePolicy
	recorder Recorder

	selected   content.Category
	generation uint64
	inFlight   int
	closed     bool

	unsubScore observe.Unsubscribe
}

func New(ctx context.Context, opts Options) *Coordinator {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)

	c := &Coordinator{
		ctx:      ctx,
		cancel:   cancel,
		loader:   opts.Loader,
		pair:     score.NewPair(),
		display:  display.New(ctx, opts.Materializer),
		policy:   opts.Policy,
		recorder: opts.Recorder,
	}
	if c.policy == "" {
		c.policy = StaleDiscard
	}
	if c.recorder == nil {
		c.recorder = nopRecorder{}
	}

	primed := false
	c.unsubScore = c.pair.Observe(func(s score.Snapshot) {
		if primed {
			c.recorder.Record(KindScoreChanged, s)
		}
	})
	primed = true
	return c
}

func (c *Coordinator) Selected() content.Category { return c.selected }
func (c *Coordinator) Score() score.Snapshot { return c.pair.Snapshot() }
func (c *Coordinator) ScoreText() string { return c.pair.Text() }
func (c *Coordinator) Display() *display.Display { return c.display }
func (c *Coordinator) Generation() uint64 { return c.generation }

// Loading reports whether any load is still outstanding.
func (c *Coordinator) Loading() bool { return c.inFlight > 0 }

// ObserveScore subscribes to score snapshots.
func (c *Coordinator) ObserveScore(onNext func(score.Snapshot)) observe.Unsubscribe {
	return c.pair.Observe(onNext)
}

// Close cancels in-flight work. Messages arriving afterwards are ignored.
func (c *Coordinator) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.cancel()
	c.unsubScore()
}

func (c *Coordinator) Update(msg tea.Msg) tea.Cmd {
	if c.closed {
		return nil
	}
	switch v := msg.(type) {
	case CategoryChangedMsg:
		return c.categoryChanged(v.Category)
	case MoreRequestedMsg:
		return c.more()
	case ResetRequestedMsg:
		c.reset()
		return nil
	case LoadResultMsg:
		return c.applyResult(v)
	case display.MaterializedMsg:
		if c.display.Update(v) {
			c.recordDisplay()
		}
		return nil
	}
	return nil
}

func (c *Coordinator) categoryChanged(cat content.Category) tea.Cmd {
	if !cat.Loadable() {
		log.Warn().Str("category", cat.String()).Msg("ignoring category change to non-loadable category")
		return nil
	}
	c.selected = cat
	return c.trigger("category", cat)
}

func (c *Coordinator) more() tea.Cmd {
	if !c.selected.Loadable() {
		log.Debug().Msg("more requested with nothing selected")
		return nil
	}
	return c.trigger("more", c.selected)
}

func (c *Coordinator) reset() {
	c.generation++
	c.selected = content.None
	c.pair.Reset()
	c.display.Reset()
	c.recorder.Record(KindReset, ResetRecord{Generation: c.generation})
	c.recordDisplay()
}

func (c *Coordinator) trigger(reason string, cat content.Category) tea.Cmd {
	if c.loader == nil {
		log.Error().Msg("no loader configured")
		return nil
	}

	c.generation++
	c.inFlight++
	gen := c.generation
	c.recorder.Record(KindTrigger, TriggerRecord{Reason: reason, Category: cat.String(), Generation: gen})
	log.Debug().Str("reason", reason).Str("category", cat.String()).Uint64("generation", gen).Msg("load triggered")

	ctx := c.ctx
	loader := c.loader
	return func() tea.Msg {
		return LoadResultMsg{Generation: gen, Category: cat, Result: loader.Fetch(ctx, cat)}
	}
}

func (c *Coordinator) applyResult(msg LoadResultMsg) tea.Cmd {
	if c.inFlight > 0 {
		c.inFlight--
	}

	stale := msg.Generation != c.generation
	if stale && c.policy == StaleDiscard {
		log.Debug().Uint64("generation", msg.Generation).Uint64("current", c.generation).Msg("discarding stale load result")
		c.recorder.Record(KindLoadResult, newLoadResultRecord(msg, true, true))
		return nil
	}
	c.recorder.Record(KindLoadResult, newLoadResultRecord(msg, stale, false))

	var cmd tea.Cmd
	switch msg.Result.Kind {
	case content.ResultText:
		c.display.SetText(msg.Result.Value)
		c.pair.Increment(content.Cats)
	case content.ResultImage:
		pair := c.pair
		cmd = c.display.SetImage(msg.Result.Value, func() {
			pair.Increment(content.Dogs)
		})
	default:
		c.display.SetText(msg.Category.FailureText())
	}
	c.recordDisplay()
	return cmd
}

func (c *Coordinator) recordDisplay() {
	c.recorder.Record(KindDisplayChanged, newDisplayRecord(c.display))
}

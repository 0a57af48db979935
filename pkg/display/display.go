package display

import (
	"context"
	"image"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

const ImageFailureText = "Failed to load an image"

type State int

const (
	StateEmpty State = iota
	StateText
	StateImagePending
	StateImageShown
)

func (s State) String() string {
	switch s {
	case StateText:
		return "text"
	case StateImagePending:
		return "image-pending"
	case StateImageShown:
		return "image-shown"
	default:
		return "empty"
	}
}

// MaterializedMsg carries the outcome of a SetImage back into the program
// loop. Token identifies the SetImage call it answers.
type MaterializedMsg struct {
	Token uint64
	Ref   string
	Image image.Image
	Err   error
}

// Display renders whatever it was last told to show. It owns no business
// logic; the only decision it makes is downgrading a failed image to text.
type Display struct {
	ctx          context.Context
	materializer Materializer

	state      State
	text       string
	ref        string
	img        image.Image
	token      uint64
	onRendered func()

	cache renderCache
}

func New(ctx context.Context, m Materializer) *Display {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Display{ctx: ctx, materializer: m}
}

func (d *Display) State() State { return d.state }
func (d *Display) Text() string { return d.text }
func (d *Display) Ref() string { return d.ref }

func (d *Display) Image() image.Image { return d.img }

// Reset hides all content.
func (d *Display) Reset() {
	d.set(StateEmpty, "", "", nil)
}

func (d *Display) SetText(s string) {
	d.set(StateText, s, "", nil)
}

// SetImage moves to ImagePending and returns the command that materializes
// ref. onRendered fires from Update once the image is renderable; it never
// fires if materialization fails or another command supersedes this one.
func (d *Display) SetImage(ref string, onRendered func()) tea.Cmd {
	d.set(StateImagePending, "", ref, nil)
	d.onRendered = onRendered

	token := d.token
	ctx := d.ctx
	m := d.materializer
	return func() tea.Msg {
		if m == nil {
			return MaterializedMsg{Token: token, Ref: ref, Err: errNoMaterializer}
		}
		img, err := m.Materialize(ctx, ref)
		return MaterializedMsg{Token: token, Ref: ref, Image: img, Err: err}
	}
}

// Update applies a materialization result. It reports whether the message
// was addressed to the current SetImage.
func (d *Display) Update(msg MaterializedMsg) bool {
	if msg.Token != d.token || d.state != StateImagePending {
		log.Debug().Str("ref", msg.Ref).Msg("dropping superseded image")
		return false
	}

	if msg.Err != nil || msg.Image == nil {
		log.Warn().Err(msg.Err).Str("ref", msg.Ref).Msg("image materialization failed")
		d.SetText(ImageFailureText)
		return true
	}

	cb := d.onRendered
	d.onRendered = nil
	d.state = StateImageShown
	d.img = msg.Image
	d.cache = renderCache{}
	if cb != nil {
		cb()
	}
	return true
}

func (d *Display) set(s State, text, ref string, img image.Image) {
	d.token++
	d.state = s
	d.text = text
	d.ref = ref
	d.img = img
	d.onRendered = nil
	d.cache = renderCache{}
}

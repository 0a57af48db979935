package display

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

type renderCache struct {
	width  int
	height int
	out    string
}

// View renders the current state into a width x height cell area.
func (d *Display) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	switch d.state {
	case StateText:
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Bold(true).Render(d.text))
	case StateImagePending:
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Faint(true).Render("loading image…"))
	case StateImageShown:
		if d.cache.out != "" && d.cache.width == width && d.cache.height == height {
			return d.cache.out
		}
		out := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, RenderHalfBlocks(d.img, width, height))
		d.cache = renderCache{width: width, height: height, out: out}
		return out
	default:
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, "")
	}
}

// RenderHalfBlocks draws img with one "▀" per cell: the foreground carries
// the upper pixel and the background the lower one. Aspect ratio is kept.
func RenderHalfBlocks(img image.Image, width, height int) string {
	if img == nil || width <= 0 || height <= 0 {
		return ""
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return ""
	}

	w, h := fit(b.Dx(), b.Dy(), width, height*2)
	if h%2 == 1 {
		h++
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	rows := make([]string, 0, h/2)
	var sb strings.Builder
	for y := 0; y < h; y += 2 {
		sb.Reset()
		for x := 0; x < w; x++ {
			sb.WriteString(lipgloss.NewStyle().
				Foreground(hex(dst.At(x, y))).
				Background(hex(dst.At(x, y+1))).
				Render("▀"))
		}
		rows = append(rows, sb.String())
	}
	return strings.Join(rows, "\n")
}

func fit(srcW, srcH, maxW, maxH int) (int, int) {
	w, h := maxW, srcH*maxW/srcW
	if h > maxH {
		h = maxH
		w = srcW * maxH / srcH
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

func hex(c color.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}

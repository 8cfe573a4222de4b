package renderer2d

import (
	"github.com/hubastard/poliosis/engine/colors"
	"github.com/hubastard/poliosis/engine/geom"
)

// TextRequest is a queued string in pixel space (origin top-left, Y down).
// Scale is the glyph size in pixels on each axis.
type TextRequest struct {
	X, Y   float32
	Text   string
	Color  colors.Color
	ScaleX float32
	ScaleY float32
}

// TextQueue collects text for the sink to rasterize after the geometry pass.
type TextQueue struct {
	width, height int
	reqs          []TextRequest
}

func (q *TextQueue) SetViewport(width, height int) { q.width, q.height = width, height }
func (q *TextQueue) Viewport() (int, int)          { return q.width, q.height }
func (q *TextQueue) Requests() []TextRequest       { return q.reqs }
func (q *TextQueue) Reset()                        { q.reqs = q.reqs[:0] }

// Queue converts an NDC position to pixels and records the request.
// The scale is relative to the viewport, so text grows with the window.
func (q *TextQueue) Queue(pos geom.Point, s string, c colors.Color, scale float32) {
	w := float32(q.width)
	h := float32(q.height)
	q.reqs = append(q.reqs, TextRequest{
		X:      w/2 + (pos.X/2)*w + 1,
		Y:      h/2 + (-pos.Y/2)*h,
		Text:   s,
		Color:  c,
		ScaleX: (scale / 2) * w,
		ScaleY: (scale / 2) * h,
	})
}

// DrawText queues s at pos. scale is in NDC units, so the glyph size follows
// the viewport width horizontally and its height vertically.
func (rd *Renderer2D) DrawText(pos geom.Point, s string, c colors.Color, scale float32) {
	if s == "" {
		return
	}
	rd.text.Queue(pos, s, c, scale)
}

// MeasureText returns the NDC size s would take at scale. ok is false when
// the sink cannot measure text.
func (rd *Renderer2D) MeasureText(s string, scale float32) (width, height float32, ok bool) {
	m, ok := rd.sink.(TextMeasurer)
	if !ok {
		return 0, 0, false
	}
	w, h := rd.text.Viewport()
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	fw, fh := float32(w), float32(h)
	pw, ph := m.MeasureText(s, (scale/2)*fw, (scale/2)*fh)
	return pw * 2 / fw, ph * 2 / fh, true
}

package ui

import (
	"github.com/hubastard/poliosis/engine/colors"
	"github.com/hubastard/poliosis/engine/core"
	"github.com/hubastard/poliosis/engine/geom"
	"github.com/hubastard/poliosis/engine/gfx/renderer2d"
)

// UIButton is a filled, labelled rectangle that fires onClick when its mouse
// button (left by default) is pressed inside it. Only one region exists per
// mouse button, so two buttons drawn on the same button shadow each other.
type UIButton struct {
	label   *UILabel
	width   float32
	padding float32
	bg      colors.Color
	mouse   core.MouseButton
	fit     bool
	onClick func()
}

func Button(str string, onClick func()) *UIButton {
	return &UIButton{
		label:   Label(str),
		width:   0.3,
		padding: 0.01,
		bg:      colors.Black,
		onClick: onClick,
	}
}

func (b *UIButton) Width(w float32) *UIButton          { b.width, b.fit = w, false; return b }
func (b *UIButton) Padding(p float32) *UIButton        { b.padding = p; return b }
func (b *UIButton) BgColor(c colors.Color) *UIButton   { b.bg = c; return b }
func (b *UIButton) TextColor(c colors.Color) *UIButton { b.label.Color(c); return b }
func (b *UIButton) Scale(s float32) *UIButton          { b.label.Scale(s); return b }
func (b *UIButton) Mouse(m core.MouseButton) *UIButton { b.mouse = m; return b }

// FitText sizes the button to its label plus padding whenever the renderer
// can measure text. Otherwise the last width is kept.
func (b *UIButton) FitText() *UIButton { b.fit = true; return b }

func (b *UIButton) Label() *UILabel  { return b.label }
func (b *UIButton) Bg() colors.Color { return b.bg }
func (b *UIButton) Height() float32  { return b.label.Height() + 2*b.padding }

// Bounds is the button's rectangle when drawn at pos.
func (b *UIButton) Bounds(pos geom.Point) geom.Rect {
	return geom.Rect{pos, pos.Add(geom.Pt(b.width, -b.Height()))}
}

func (b *UIButton) Draw(rd *renderer2d.Renderer2D, in *core.Input, pos geom.Point) {
	if b.fit {
		if w, _, ok := rd.MeasureText(b.label.text, b.label.scale); ok {
			b.width = w + 2*b.padding
		}
	}
	r := b.Bounds(pos)
	rd.DrawRect(r, b.bg)
	b.label.Draw(rd, in, pos.AddXSubY(b.padding))
	if in == nil || b.onClick == nil {
		return
	}
	in.AddMouseClickCallback(b.mouse, &r, func(a core.Action) {
		if a == core.ActionPress {
			b.onClick()
		}
	})
}

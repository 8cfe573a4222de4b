package ui

import (
	"github.com/hubastard/poliosis/engine/colors"
	"github.com/hubastard/poliosis/engine/core"
	"github.com/hubastard/poliosis/engine/geom"
	"github.com/hubastard/poliosis/engine/gfx/renderer2d"
)

// UIMenu is a framed panel stacking widgets top to bottom.
type UIMenu struct {
	corners   geom.Rect
	thickness float32
	bg        colors.Color
	frame     colors.Color
	spacing   float32
	widgets   []Widget
}

// Menu returns a panel over corners with a 0.01 white frame on black.
func Menu(corners geom.Rect) *UIMenu {
	return &UIMenu{
		corners:   corners,
		thickness: 0.01,
		bg:        colors.Black,
		frame:     colors.White,
	}
}

func (m *UIMenu) Frame(thickness float32) *UIMenu   { m.thickness = thickness; return m }
func (m *UIMenu) BgColor(c colors.Color) *UIMenu    { m.bg = c; return m }
func (m *UIMenu) FrameColor(c colors.Color) *UIMenu { m.frame = c; return m }
func (m *UIMenu) Spacing(s float32) *UIMenu         { m.spacing = s; return m }
func (m *UIMenu) Add(w ...Widget) *UIMenu           { m.widgets = append(m.widgets, w...); return m }

func (m *UIMenu) Corners() geom.Rect { return m.corners }
func (m *UIMenu) Widgets() []Widget  { return m.widgets }

// Offsets returns where each widget is drawn. The first sits one frame plus
// one spacing inside the top-left corner. Widget i is pushed down by
// spacing*i on top of the heights of the widgets above it.
func (m *UIMenu) Offsets() []geom.Point {
	inset := m.thickness + m.spacing
	at := m.corners[0].AddXSubY(inset)
	out := make([]geom.Point, len(m.widgets))
	for i, w := range m.widgets {
		at.Y -= m.spacing * float32(i)
		out[i] = at
		at.Y -= w.Height()
	}
	return out
}

func (m *UIMenu) Draw(rd *renderer2d.Renderer2D, in *core.Input) {
	rd.DrawRect(m.corners, m.bg)
	rd.DrawBox(m.corners, m.thickness, m.frame)
	for i, at := range m.Offsets() {
		m.widgets[i].Draw(rd, in, at)
	}
}

package ui

import (
	"github.com/hubastard/poliosis/engine/colors"
	"github.com/hubastard/poliosis/engine/core"
	"github.com/hubastard/poliosis/engine/geom"
	"github.com/hubastard/poliosis/engine/gfx/renderer2d"
)

const DefaultScale = 0.05

type UILabel struct {
	text  string
	scale float32
	color colors.Color
}

func Label(str string) *UILabel {
	return &UILabel{text: str, scale: DefaultScale, color: colors.White}
}

func (l *UILabel) Text() string                  { return l.text }
func (l *UILabel) SetText(s string) *UILabel     { l.text = s; return l }
func (l *UILabel) Scale(s float32) *UILabel      { l.scale = s; return l }
func (l *UILabel) Color(c colors.Color) *UILabel { l.color = c; return l }
func (l *UILabel) TextColor() colors.Color       { return l.color }
func (l *UILabel) Height() float32               { return l.scale }

func (l *UILabel) Draw(rd *renderer2d.Renderer2D, _ *core.Input, pos geom.Point) {
	rd.DrawText(pos, l.text, l.color, l.scale)
}

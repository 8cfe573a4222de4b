// Package ui draws immediate-mode menus from renderer2d shapes. Widgets are
// redrawn every frame and re-register their hit regions while drawn.
package ui

import (
	"github.com/hubastard/poliosis/engine/core"
	"github.com/hubastard/poliosis/engine/geom"
	"github.com/hubastard/poliosis/engine/gfx/renderer2d"
)

// Widget is anything a Menu can stack. pos is the widget's top-left corner
// in NDC.
type Widget interface {
	Draw(rd *renderer2d.Renderer2D, in *core.Input, pos geom.Point)
	Height() float32
}

// Context groups the menus drawn in one frame.
type Context struct {
	menus []*UIMenu
}

func (c *Context) Add(m *UIMenu) *UIMenu {
	c.menus = append(c.menus, m)
	return m
}

func (c *Context) Draw(rd *renderer2d.Renderer2D, in *core.Input) {
	for _, m := range c.menus {
		m.Draw(rd, in)
	}
}

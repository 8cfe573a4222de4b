// Package scene maps a tile grid onto the NDC frame.
package scene

import (
	"math"

	"github.com/hubastard/poliosis/engine/geom"
)

const (
	MinVisible = 1
	MaxVisible = 199
)

// TileCamera shows a window of Cols x Rows tiles centered on (X, Y).
// Tile (X, Y) is drawn in the middle of the frame.
type TileCamera struct {
	X, Y       int
	Cols, Rows int
}

func NewTileCamera(cols, rows int) *TileCamera {
	c := &TileCamera{}
	c.SetVisible(cols, rows)
	return c
}

func (c *TileCamera) Move(dx, dy int) { c.X += dx; c.Y += dy }

// SetVisible clamps both counts to [MinVisible, MaxVisible] and rounds even
// counts up, so one tile always sits in the middle.
func (c *TileCamera) SetVisible(cols, rows int) {
	c.Cols = visibleCount(cols)
	c.Rows = visibleCount(rows)
}

func visibleCount(n int) int {
	n = min(max(n, MinVisible), MaxVisible)
	if n%2 == 0 {
		n++
	}
	return n
}

// Zoom grows or shrinks the view by delta tiles on each axis.
func (c *TileCamera) Zoom(delta int) { c.SetVisible(c.Cols+delta, c.Rows+delta) }

// TileSize is one tile's extent in NDC.
func (c *TileCamera) TileSize() (w, h float32) {
	return 2 / float32(c.Cols), 2 / float32(c.Rows)
}

// span is the half-open range of view offsets on an axis of n tiles.
func span(n int) (lo, hi int) { return -(n - 1) / 2, (n + 1) / 2 }

// Rect is the NDC box of the tile at view offset (col, row), top-left first.
func (c *TileCamera) Rect(col, row int) geom.Rect {
	w, h := c.TileSize()
	ox := w * float32(col)
	oy := h * float32(row)
	return geom.Rect{
		geom.Pt(ox-w/2, oy+h/2),
		geom.Pt(ox+w/2, oy-h/2),
	}
}

// Visible calls f for every tile in view with its world coordinates and
// screen box, column by column.
func (c *TileCamera) Visible(f func(x, y int, r geom.Rect)) {
	clo, chi := span(c.Cols)
	rlo, rhi := span(c.Rows)
	for col := clo; col < chi; col++ {
		for row := rlo; row < rhi; row++ {
			f(col+c.X, row+c.Y, c.Rect(col, row))
		}
	}
}

// Pick returns the world tile under an NDC point.
func (c *TileCamera) Pick(p geom.Point) (x, y int) {
	w, h := c.TileSize()
	col := int(math.Floor(float64(p.X/w) + 0.5))
	row := int(math.Floor(float64(p.Y/h) + 0.5))
	return col + c.X, row + c.Y
}

// InView reports whether the world tile (x, y) is drawn.
func (c *TileCamera) InView(x, y int) bool {
	clo, chi := span(c.Cols)
	rlo, rhi := span(c.Rows)
	col, row := x-c.X, y-c.Y
	return col >= clo && col < chi && row >= rlo && row < rhi
}

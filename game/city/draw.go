package city

import (
	"fmt"
	"math"

	"github.com/hubastard/poliosis/engine/colors"
	"github.com/hubastard/poliosis/engine/core"
	"github.com/hubastard/poliosis/engine/geom"
	"github.com/hubastard/poliosis/engine/gfx/renderer2d"
	"github.com/hubastard/poliosis/engine/scene"
	"github.com/hubastard/poliosis/engine/ui"
)

const (
	tileThickness = 0.01
	groundLines   = 3
)

var (
	airColor    = colors.FromRGB(0.01, 0.01, 0.01)
	groundColor = colors.FromRGB(0.2, 0.08, 0)
	selectColor = colors.Yellow
)

// BuildingColor shades a building by health per tier: grey at full health,
// drifting toward red as it wears.
func BuildingColor(t Tile) colors.Color {
	d := t.Health/t.Tier - 100
	return colors.FromRGB(0.3-d/100, 0.3+d/200, 0.3+d/300)
}

// TileColor is the color a tile is drawn in.
func TileColor(t Tile, selected bool) colors.Color {
	if selected {
		return selectColor
	}
	switch t.Kind {
	case Ground:
		return groundColor
	case Building:
		return BuildingColor(t)
	default:
		return airColor
	}
}

// DrawTile lowers one tile to boxes: air is a plain frame, ground a crossed
// box and a building a box with one line per tier.
func DrawTile(rd *renderer2d.Renderer2D, r geom.Rect, t Tile, selected bool) {
	c := TileColor(t, selected)
	switch t.Kind {
	case Ground:
		rd.DrawCrossedBox(r, tileThickness, c, groundLines)
	case Building:
		rd.DrawLinedBox(r, tileThickness, c, uint8(t.Tier), false)
	default:
		rd.DrawBox(r, tileThickness, c)
	}
}

// DrawGrid draws every tile in the camera's view. Positions outside the
// world are left empty.
func (c *City) DrawGrid(rd *renderer2d.Renderer2D, cam *scene.TileCamera) {
	cam.Visible(func(x, y int, r geom.Rect) {
		at := C(x, y)
		t, ok := c.Grid.Get(at)
		if !ok {
			return
		}
		DrawTile(rd, r, t, at == c.Selected)
	})
}

// DrawSelectionArrow points a dart from the frame edge toward the selection
// when it is out of view.
func (c *City) DrawSelectionArrow(rd *renderer2d.Renderer2D, cam *scene.TileCamera) {
	if cam.InView(c.Selected.X, c.Selected.Y) {
		return
	}
	dx := float64(c.Selected.X - cam.X)
	dy := float64(c.Selected.Y - cam.Y)
	l := math.Hypot(dx, dy)
	d := geom.Pt(float32(dx/l), float32(dy/l))
	n := geom.Pt(-d.Y, d.X)
	at := d.Scale(0.85)
	rd.DrawConcavePoly([]geom.Point{
		at.Add(d.Scale(0.06)),
		at.Sub(d.Scale(0.04)).Add(n.Scale(0.04)),
		at.Sub(d.Scale(0.01)),
		at.Sub(d.Scale(0.04)).Sub(n.Scale(0.04)),
	}, selectColor)
}

// HUD is the overlay: selection info, money and the build menu.
type HUD struct {
	PlacingOpen bool

	place   func(tier int)
	coord   *ui.UILabel
	filling *ui.UILabel
	detail  *ui.UILabel
	money   *ui.UILabel
	info    *ui.UIMenu
	wallet  *ui.UIMenu
	placing *ui.UIMenu

	// panels drawn every frame; the build menu is drawn on demand
	panels ui.Context
}

// NewHUD builds the overlay. place is called with the tier of a clicked
// build menu row.
func NewHUD(place func(tier int)) *HUD {
	h := &HUD{
		place:   place,
		coord:   ui.Label(""),
		filling: ui.Label(""),
		detail:  ui.Label(""),
		money:   ui.Label(""),
	}
	h.info = ui.Menu(geom.R(0.25, 1, 1, 0.7)).Spacing(0.015).Add(h.coord, h.filling, h.detail)
	h.wallet = ui.Menu(geom.R(-1, 1, -0.5, 0.9)).Spacing(0.015).Add(h.money)
	h.placing = ui.Menu(geom.R(0.6, 0.7, 1, 0.375))
	for tier := MinTier; tier <= MaxTier; tier++ {
		h.placing.Add(ui.Label(fmt.Sprintf("%d) Tier %d", tier, tier)))
	}
	h.panels.Add(h.info)
	h.panels.Add(h.wallet)
	return h
}

// Update refreshes the labels from the city.
func (h *HUD) Update(c *City) {
	h.coord.SetText(c.Selected.String())
	t, ok := c.SelectedTile()
	switch {
	case !ok:
		h.filling.SetText("filling: none")
		h.detail.SetText("")
	case t.IsBuilding():
		h.filling.SetText(fmt.Sprintf("filling: Building (tier %d)", int(t.Tier)))
		h.detail.SetText(fmt.Sprintf("pressure: %.0f, health: %.1f", t.Pressure, t.Health))
	default:
		h.filling.SetText("filling: " + t.Kind.String())
		h.detail.SetText("")
	}
	money := fmt.Sprintf("Money: %d", c.Money)
	if c.Paused {
		money += " (paused)"
	}
	h.money.SetText(money)
}

// TierAt returns the build menu row under p.
func (h *HUD) TierAt(p geom.Point) (int, bool) {
	r := h.placing.Corners()
	if !r.Contains(p) {
		return 0, false
	}
	rows := h.placing.Widgets()
	for i, at := range h.placing.Offsets() {
		if p.Y <= at.Y && p.Y > at.Y-rows[i].Height() {
			return MinTier + i, true
		}
	}
	return 0, false
}

// Draw draws the panels. While the build menu is open it owns the left
// mouse button.
func (h *HUD) Draw(rd *renderer2d.Renderer2D, in *core.Input) {
	if h.PlacingOpen {
		h.placing.Draw(rd, in)
		if in != nil {
			r := h.placing.Corners()
			in.AddMouseClickCallback(core.MouseLeft, &r, func(a core.Action) {
				if a != core.ActionPress {
					return
				}
				if tier, ok := h.TierAt(in.Cursor()); ok && h.place != nil {
					h.place(tier)
				}
			})
		}
	}
	h.panels.Draw(rd, in)
}

// Package city is a small tile city: buildings stacked on ground, settling
// under their own weight and paying rent while they stand.
package city

import (
	"cmp"
	"fmt"
	"slices"
)

// Coord is a tile position. +Y is up. Coords order by X, then Y.
type Coord struct{ X, Y int }

func C(x, y int) Coord { return Coord{X: x, Y: y} }

func (c Coord) Compare(o Coord) int {
	if r := cmp.Compare(c.X, o.X); r != 0 {
		return r
	}
	return cmp.Compare(c.Y, o.Y)
}

func (c Coord) Less(o Coord) bool { return c.Compare(o) < 0 }
func (c Coord) Above() Coord      { return Coord{c.X, c.Y + 1} }
func (c Coord) Below() Coord      { return Coord{c.X, c.Y - 1} }
func (c Coord) String() string    { return fmt.Sprintf("x: %d, y: %d", c.X, c.Y) }

type Kind uint8

const (
	Air Kind = iota
	Ground
	Building
)

func (k Kind) String() string {
	switch k {
	case Ground:
		return "Ground"
	case Building:
		return "Building"
	default:
		return "Air"
	}
}

// Tile is one grid cell. Health, Tier and Pressure only mean something for
// buildings.
type Tile struct {
	Kind     Kind
	Health   float32
	Tier     float32
	Pressure float32
}

func AirTile() Tile    { return Tile{Kind: Air} }
func GroundTile() Tile { return Tile{Kind: Ground} }

// NewBuilding is a fresh building of the given tier at full health.
func NewBuilding(tier int) Tile {
	return Tile{Kind: Building, Health: float32(tier) * 100, Tier: float32(tier)}
}

func (t Tile) IsBuilding() bool { return t.Kind == Building }

func (t Tile) String() string {
	if t.Kind != Building {
		return t.Kind.String()
	}
	return fmt.Sprintf("Building (tier %d, health %.1f, pressure %.0f)", int(t.Tier), t.Health, t.Pressure)
}

// Cell pairs a tile with its position.
type Cell struct {
	Coord
	Tile
}

// Grid is a sparse map of tiles. Positions never set are outside the world.
type Grid struct {
	tiles map[Coord]Tile
}

func NewGrid() *Grid { return &Grid{tiles: map[Coord]Tile{}} }

func (g *Grid) Len() int { return len(g.tiles) }

func (g *Grid) Get(c Coord) (Tile, bool) {
	t, ok := g.tiles[c]
	return t, ok
}

func (g *Grid) Set(c Coord, t Tile) { g.tiles[c] = t }

// Coords returns every position in Coord order.
func (g *Grid) Coords() []Coord {
	out := make([]Coord, 0, len(g.tiles))
	for c := range g.tiles {
		out = append(out, c)
	}
	slices.SortFunc(out, Coord.Compare)
	return out
}

// Flatten returns every cell in Coord order.
func (g *Grid) Flatten() []Cell {
	coords := g.Coords()
	out := make([]Cell, len(coords))
	for i, c := range coords {
		out[i] = Cell{c, g.tiles[c]}
	}
	return out
}

// Each calls f for every cell in Coord order.
func (g *Grid) Each(f func(c Coord, t Tile)) {
	for _, c := range g.Coords() {
		f(c, g.tiles[c])
	}
}

// Buildings lists building positions in Coord order.
func (g *Grid) Buildings() []Coord {
	var out []Coord
	for _, c := range g.Coords() {
		if g.tiles[c].IsBuilding() {
			out = append(out, c)
		}
	}
	return out
}

// Generate fills columns [-halfWidth, halfWidth] with ground from y = -depth
// to 0 and air from 1 to height.
func Generate(halfWidth, depth, height int) *Grid {
	g := NewGrid()
	for x := -halfWidth; x <= halfWidth; x++ {
		for y := -depth; y <= 0; y++ {
			g.Set(C(x, y), GroundTile())
		}
		for y := 1; y <= height; y++ {
			g.Set(C(x, y), AirTile())
		}
	}
	return g
}

// Package geom holds the 2D coordinate type used by the renderer.
// Points live in normalized device space: the visible frame is [-1,1] on both
// axes and +Y points up.
package geom

import "github.com/go-gl/mathgl/mgl32"

type Point struct {
	X, Y float32
}

var Origin = Point{}

func Pt(x, y float32) Point { return Point{X: x, Y: y} }

func FromArray(v [2]float32) Point { return Point{X: v[0], Y: v[1]} }

func (p Point) Array() [2]float32 { return [2]float32{p.X, p.Y} }

func (p Point) Vec2() mgl32.Vec2 { return mgl32.Vec2{p.X, p.Y} }

// Vec3 appends z=0, the form vertices are built from.
func (p Point) Vec3() [3]float32 { return p.Vec2().Vec3(0) }

// Len is the distance from the origin.
func (p Point) Len() float32 { return p.Vec2().Len() }

func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }
func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y} }

func (p Point) AddScalar(v float32) Point { return Point{p.X + v, p.Y + v} }
func (p Point) SubScalar(v float32) Point { return Point{p.X - v, p.Y - v} }

// AddXSubY moves right and down by v; used for padding inside UI frames.
func (p Point) AddXSubY(v float32) Point { return Point{p.X + v, p.Y - v} }

func (p Point) Scale(v float32) Point { return Point{p.X * v, p.Y * v} }

// Within reports whether p lies in the rectangle spanned by two opposite
// corners a and b. Bounds are inclusive and the corner order does not matter.
func (p Point) Within(a, b Point) bool {
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}

// Rect is a pair of opposite corners.
type Rect [2]Point

func R(x0, y0, x1, y1 float32) Rect { return Rect{Pt(x0, y0), Pt(x1, y1)} }

func (r Rect) Contains(p Point) bool { return p.Within(r[0], r[1]) }

// FullScreen covers the whole NDC frame, top-left to bottom-right.
var FullScreen = R(-1, 1, 1, -1)

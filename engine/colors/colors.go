package colors

import "github.com/go-gl/mathgl/mgl32"

// Color is RGBA with components nominally in [0,1]. Values are never clamped;
// out of range channels are left for the blend stage to deal with.
type Color [4]float32

var (
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
	Transparent = Color{0, 0, 0, 0}

	Magenta  = Color{1, 0, 1, 1}
	Cyan     = Color{0, 1, 1, 1}
	Yellow   = Color{1, 1, 0, 1}
	Gray     = Color{0.5, 0.5, 0.5, 1}
	DarkGray = Color{0.08, 0.10, 0.12, 1}
)

func FromRGB(r, g, b float32) Color     { return Color{r, g, b, 1} }
func FromRGBA(r, g, b, a float32) Color { return Color{r, g, b, a} }
func FromArray3(v [3]float32) Color     { return Color{v[0], v[1], v[2], 1} }
func FromArray4(v [4]float32) Color     { return Color(v) }

// FromBytes3 maps 0..255 channels to 0..1 with an opaque alpha.
func FromBytes3(v [3]uint8) Color {
	return Color{float32(v[0]) / 255, float32(v[1]) / 255, float32(v[2]) / 255, 1}
}

// FromBytes4 maps RGB from 0..255 but alpha from 0..100 (a percentage).
// Saved colors depend on this, so 255 alpha yields 2.55.
func FromBytes4(v [4]uint8) Color {
	return Color{float32(v[0]) / 255, float32(v[1]) / 255, float32(v[2]) / 255, float32(v[3]) / 100}
}

func (c Color) R() float32 { return c[0] }
func (c Color) G() float32 { return c[1] }
func (c Color) B() float32 { return c[2] }
func (c Color) A() float32 { return c[3] }

func (c Color) Array3() [3]float32 { return [3]float32{c[0], c[1], c[2]} }
func (c Color) Array4() [4]float32 { return [4]float32(c) }

func (c Color) vec() mgl32.Vec4           { return mgl32.Vec4(c) }
func (c Color) rgb() mgl32.Vec3           { return c.vec().Vec3() }
func withA(v mgl32.Vec3, a float32) Color { return Color(v.Vec4(a)) }

// Add sums RGB and keeps the receiver's alpha.
func (c Color) Add(o Color) Color { return withA(c.rgb().Add(o.rgb()), c[3]) }

// Sub subtracts RGB and keeps the receiver's alpha.
func (c Color) Sub(o Color) Color { return withA(c.rgb().Sub(o.rgb()), c[3]) }

func (c Color) AddWithAlpha(o Color) Color { return Color(c.vec().Add(o.vec())) }
func (c Color) SubWithAlpha(o Color) Color { return Color(c.vec().Sub(o.vec())) }

// Scale multiplies RGB by f. Alpha is untouched.
func (c Color) Scale(f float32) Color { return withA(c.rgb().Mul(f), c[3]) }

func (c Color) MulRGB(m [3]float32) Color {
	return Color{c[0] * m[0], c[1] * m[1], c[2] * m[2], c[3]}
}

func (c Color) MulRGBA(m [4]float32) Color {
	return Color{c[0] * m[0], c[1] * m[1], c[2] * m[2], c[3] * m[3]}
}

func (c Color) WithRed(r float32) Color {
	c[0] = r
	return c
}

func (c Color) WithGreen(g float32) Color {
	c[1] = g
	return c
}

func (c Color) WithBlue(b float32) Color {
	c[2] = b
	return c
}

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

package text

// Quad is one glyph rectangle in pixels with its atlas UVs.
type Quad struct {
	X0, Y0, X1, Y1 float32
	U0, V0, U1, V1 float32
}

// AppendQuads lays s out with its top-left corner at (x,y). scaleX and
// scaleY are the requested em size in pixels on each axis, so text may be
// stretched. Newlines start a new line; runes missing from the atlas
// advance by a space.
func (a *Atlas) AppendQuads(dst []Quad, x, y float32, s string, scaleX, scaleY float32) []Quad {
	sx := scaleX / a.SizePx
	sy := scaleY / a.SizePx
	penX := x
	baseY := y + a.Ascent*sy
	prev := rune(-1)

	for _, r := range s {
		if r == '\n' {
			penX = x
			baseY += a.LineHeight() * sy
			prev = -1
			continue
		}
		g, ok := a.Glyphs[r]
		if !ok {
			penX += a.Glyphs[' '].Advance * sx
			prev = -1
			continue
		}
		if prev >= 0 {
			penX += a.Kern(prev, r) * sx
		}
		if g.W > 0 && g.H > 0 {
			left := penX + g.BearingX*sx
			top := baseY - g.BearingY*sy
			dst = append(dst, Quad{
				X0: left, Y0: top,
				X1: left + float32(g.W)*sx, Y1: top + float32(g.H)*sy,
				U0: g.U0, V0: g.V0, U1: g.U1, V1: g.V1,
			})
		}
		penX += g.Advance * sx
		prev = r
	}
	return dst
}

// Measure returns the pixel size of s's layout box at the given scale.
func (a *Atlas) Measure(s string, scaleX, scaleY float32) (width, height float32) {
	var lineW float32
	lines := 1
	prev := rune(-1)
	for _, r := range s {
		if r == '\n' {
			width = max(width, lineW)
			lineW = 0
			lines++
			prev = -1
			continue
		}
		g, ok := a.Glyphs[r]
		if !ok {
			lineW += a.Glyphs[' '].Advance
			prev = -1
			continue
		}
		if prev >= 0 {
			lineW += a.Kern(prev, r)
		}
		lineW += g.Advance
		prev = r
	}
	width = max(width, lineW)
	height = float32(lines) * a.LineHeight()
	return width * scaleX / a.SizePx, height * scaleY / a.SizePx
}

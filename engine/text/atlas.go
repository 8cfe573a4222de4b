// Package text rasterizes a font into a single-channel glyph atlas and lays
// out strings as textured quads in pixel space (origin top-left, Y down).
package text

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type Glyph struct {
	Rune     rune
	Advance  float32 // pixels
	BearingX float32 // left bearing in pixels
	BearingY float32 // baseline to glyph top in pixels
	W, H     int     // bitmap size
	U0, V0   float32 // UVs in atlas
	U1, V1   float32
}

// Atlas holds coverage for Latin-1 at one pixel size.
type Atlas struct {
	SizePx                   float32
	Ascent, Descent, LineGap float32
	Glyphs                   map[rune]Glyph
	Pixels                   *image.Alpha
	Size                     int // atlas is Size x Size

	kern map[[2]rune]float32
	face font.Face
}

const (
	atlasPadding = 2
	atlasMinSize = 256
	atlasMaxSize = 4096
)

// Default builds an atlas from the Go regular font.
func Default(sizePx float64) (*Atlas, error) {
	return NewAtlas(goregular.TTF, sizePx)
}

// NewAtlas parses an OpenType/TrueType font and packs runes 32..255 into a
// shelf atlas, doubling its size until everything fits.
func NewAtlas(ttf []byte, sizePx float64) (*Atlas, error) {
	if sizePx <= 0 {
		return nil, fmt.Errorf("font size %v must be positive", sizePx)
	}
	ft, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: sizePx, DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}

	m := face.Metrics()
	ascent := float32(m.Ascent.Round())
	descent := float32(-m.Descent.Round())
	lineGap := float32(m.Height.Round()) - ascent + descent

	type meas struct {
		r      rune
		w, h   int
		adv    float32
		bx, by float32
	}
	var glyphs []meas
	for r := rune(32); r <= 255; r++ {
		br, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		glyphs = append(glyphs, meas{
			r:   r,
			w:   (br.Max.X - br.Min.X).Ceil(),
			h:   (br.Max.Y - br.Min.Y).Ceil(),
			adv: float32(adv.Round()),
			bx:  float32(br.Min.X.Floor()),
			by:  float32(-br.Min.Y.Floor()),
		})
	}

	var pos map[rune]image.Point
	size := atlasMinSize
	for {
		pos = packShelves(size, len(glyphs), func(i int) (rune, int, int) {
			return glyphs[i].r, glyphs[i].w, glyphs[i].h
		})
		if pos != nil {
			break
		}
		size *= 2
		if size > atlasMaxSize {
			_ = face.Close()
			return nil, fmt.Errorf("font atlas too large (>%d)", atlasMaxSize)
		}
	}

	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	drawer := &font.Drawer{Dst: dst, Src: image.Opaque, Face: face}

	a := &Atlas{
		SizePx:  float32(sizePx),
		Ascent:  ascent,
		Descent: descent,
		LineGap: lineGap,
		Glyphs:  make(map[rune]Glyph, len(glyphs)),
		Pixels:  dst,
		Size:    size,
		kern:    map[[2]rune]float32{},
		face:    face,
	}
	s := float32(size)
	for _, g := range glyphs {
		gl := Glyph{Rune: g.r, Advance: g.adv, BearingX: g.bx, BearingY: g.by, W: g.w, H: g.h}
		if p, ok := pos[g.r]; ok {
			// Dot sits on the baseline, shifted left by the bearing.
			drawer.Dot = fixed.P(p.X-int(g.bx), p.Y+int(g.by))
			drawer.DrawString(string(g.r))
			gl.U0, gl.V0 = float32(p.X)/s, float32(p.Y)/s
			gl.U1, gl.V1 = float32(p.X+g.w)/s, float32(p.Y+g.h)/s
		}
		a.Glyphs[g.r] = gl
	}

	for _, l := range glyphs {
		for _, r := range glyphs {
			if dx := face.Kern(l.r, r.r); dx != 0 {
				a.kern[[2]rune{l.r, r.r}] = float32(dx) / 64
			}
		}
	}
	return a, nil
}

// packShelves places n boxes in rows. It returns nil if they do not fit.
// Empty boxes (spaces) get no slot.
func packShelves(size, n int, box func(i int) (rune, int, int)) map[rune]image.Point {
	pos := make(map[rune]image.Point, n)
	x, y, rowH := atlasPadding, atlasPadding, 0
	for i := 0; i < n; i++ {
		r, w, h := box(i)
		if w == 0 || h == 0 {
			continue
		}
		if w+2*atlasPadding > size {
			return nil
		}
		if x+w+atlasPadding > size {
			x = atlasPadding
			y += rowH + atlasPadding
			rowH = 0
		}
		if y+h+atlasPadding > size {
			return nil
		}
		pos[r] = image.Pt(x, y)
		x += w + atlasPadding
		rowH = max(rowH, h)
	}
	return pos
}

func (a *Atlas) Kern(l, r rune) float32 { return a.kern[[2]rune{l, r}] }

// LineHeight is the baseline-to-baseline distance at atlas size.
func (a *Atlas) LineHeight() float32 { return a.Ascent - a.Descent + a.LineGap }

func (a *Atlas) Close() error {
	if a.face == nil {
		return nil
	}
	err := a.face.Close()
	a.face = nil
	return err
}

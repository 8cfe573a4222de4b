// Package glbackend presents Renderer2D frames with OpenGL 3.3 core.
package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hubastard/poliosis/engine/gfx/renderer2d"
	"github.com/hubastard/poliosis/engine/logging"
	"github.com/hubastard/poliosis/engine/profiler"
	"github.com/hubastard/poliosis/engine/text"
)

// Presenter swaps the window's back buffer.
type Presenter interface {
	SwapBuffers()
}

// Sink implements renderer2d.Sink. It owns a geometry pipeline fed from a
// dynamic VBO/EBO pair and a text pipeline sampling the glyph atlas.
// A GL context must be current on the calling thread.
type Sink struct {
	present Presenter
	atlas   *text.Atlas
	clear   [4]float32
	width   int
	height  int

	geoProgram uint32
	geoVAO     uint32
	geoVBO     uint32
	geoEBO     uint32
	vboBytes   int
	eboBytes   int

	textProgram uint32
	textVAO     uint32
	textVBO     uint32
	atlasTex    uint32
	uViewport   int32
	textBytes   int

	floats []float32
	glyphs []float32
	quads  []text.Quad
}

var _ renderer2d.Sink = (*Sink)(nil)

func NewSink(p Presenter, atlas *text.Atlas, clearColor [4]float32, width, height int) (*Sink, error) {
	s := &Sink{present: p, atlas: atlas, clear: clearColor}
	if err := s.init(); err != nil {
		s.Destroy()
		return nil, fmt.Errorf("gl sink: %w", err)
	}
	s.Resize(width, height)
	logging.Logger().Info("gl sink ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"atlas", atlas.Size)
	return s, nil
}

func (s *Sink) init() error {
	var err error
	if s.geoProgram, err = loadProgram("geometry"); err != nil {
		return err
	}
	if s.textProgram, err = loadProgram("text"); err != nil {
		return err
	}

	gl.GenVertexArrays(1, &s.geoVAO)
	gl.BindVertexArray(s.geoVAO)
	gl.GenBuffers(1, &s.geoVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.geoVBO)
	gl.GenBuffers(1, &s.geoEBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, s.geoEBO)
	for _, a := range renderer2d.Layout.Attributes {
		gl.EnableVertexAttribArray(uint32(a.Location))
		gl.VertexAttribPointerWithOffset(uint32(a.Location), int32(a.Size), gl.FLOAT, false,
			int32(renderer2d.Layout.Stride), uintptr(a.Offset))
	}
	gl.BindVertexArray(0)

	gl.GenVertexArrays(1, &s.textVAO)
	gl.BindVertexArray(s.textVAO)
	gl.GenBuffers(1, &s.textVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.textVBO)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, glyphStride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, glyphStride, 2*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, glyphStride, 4*4)
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.GenTextures(1, &s.atlasTex)
	gl.BindTexture(gl.TEXTURE_2D, s.atlasTex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(s.atlas.Size), int32(s.atlas.Size), 0,
		gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(s.atlas.Pixels.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.UseProgram(s.textProgram)
	s.uViewport = gl.GetUniformLocation(s.textProgram, gl.Str("uViewport\x00"))
	gl.Uniform1i(gl.GetUniformLocation(s.textProgram, gl.Str("uAtlas\x00")), 0)
	gl.UseProgram(0)

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	return surfaceError(gl.GetError())
}

// MeasureText sizes s with the atlas the sink draws text from.
func (s *Sink) MeasureText(str string, scaleX, scaleY float32) (float32, float32) {
	return s.atlas.Measure(str, scaleX, scaleY)
}

func (s *Sink) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width, s.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Submit draws the geometry, then the text on top, and presents.
func (s *Sink) Submit(vertices []renderer2d.Vertex, indices []uint16, texts []renderer2d.TextRequest) error {
	end := profiler.Start("gl.Submit")
	defer end()

	if err := framebufferError(gl.CheckFramebufferStatus(gl.FRAMEBUFFER)); err != nil {
		return err
	}

	c := s.clear
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	if len(indices) > 0 {
		s.drawGeometry(vertices, indices)
	}
	if len(texts) > 0 {
		s.drawText(texts)
	}
	if err := surfaceError(gl.GetError()); err != nil {
		return err
	}
	s.present.SwapBuffers()
	return nil
}

func (s *Sink) drawGeometry(vertices []renderer2d.Vertex, indices []uint16) {
	s.floats = renderer2d.Flatten(s.floats, vertices)
	vb := len(s.floats) * 4
	ib := len(indices) * 2

	gl.UseProgram(s.geoProgram)
	gl.BindVertexArray(s.geoVAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, s.geoVBO)
	if vb > s.vboBytes {
		s.vboBytes = grow(vb)
		gl.BufferData(gl.ARRAY_BUFFER, s.vboBytes, nil, gl.DYNAMIC_DRAW)
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, vb, gl.Ptr(s.floats))

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, s.geoEBO)
	if ib > s.eboBytes {
		s.eboBytes = grow(ib)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, s.eboBytes, nil, gl.DYNAMIC_DRAW)
	}
	gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, ib, gl.Ptr(indices))

	gl.DrawElements(gl.TRIANGLES, int32(len(indices)), gl.UNSIGNED_SHORT, nil)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

func (s *Sink) drawText(texts []renderer2d.TextRequest) {
	s.glyphs = s.glyphs[:0]
	for _, t := range texts {
		s.quads = s.atlas.AppendQuads(s.quads[:0], t.X, t.Y, t.Text, t.ScaleX, t.ScaleY)
		s.glyphs = appendGlyphVertices(s.glyphs, s.quads, t.Color.Array4())
	}
	if len(s.glyphs) == 0 {
		return
	}
	n := len(s.glyphs) * 4

	gl.UseProgram(s.textProgram)
	gl.Uniform2f(s.uViewport, float32(s.width), float32(s.height))
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, s.atlasTex)
	gl.BindVertexArray(s.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.textVBO)
	if n > s.textBytes {
		s.textBytes = grow(n)
		gl.BufferData(gl.ARRAY_BUFFER, s.textBytes, nil, gl.DYNAMIC_DRAW)
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, n, gl.Ptr(s.glyphs))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(s.glyphs)/glyphFloats))
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)
}

// grow rounds a byte size up to a power of two, at least 4 KiB.
func grow(n int) int {
	size := 4096
	for size < n {
		size *= 2
	}
	return size
}

// Destroy releases GL objects. The atlas stays owned by the caller.
func (s *Sink) Destroy() {
	for _, b := range []*uint32{&s.geoVBO, &s.geoEBO, &s.textVBO} {
		if *b != 0 {
			gl.DeleteBuffers(1, b)
			*b = 0
		}
	}
	for _, v := range []*uint32{&s.geoVAO, &s.textVAO} {
		if *v != 0 {
			gl.DeleteVertexArrays(1, v)
			*v = 0
		}
	}
	if s.atlasTex != 0 {
		gl.DeleteTextures(1, &s.atlasTex)
		s.atlasTex = 0
	}
	for _, p := range []*uint32{&s.geoProgram, &s.textProgram} {
		if *p != 0 {
			gl.DeleteProgram(*p)
			*p = 0
		}
	}
}

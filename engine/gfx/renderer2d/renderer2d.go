package renderer2d

import (
	"errors"
	"fmt"

	"github.com/hubastard/poliosis/engine/logging"
	"github.com/hubastard/poliosis/engine/profiler"
)

var (
	ErrDegenerateShape = errors.New("renderer2d: degenerate shape")
	ErrBufferFull      = errors.New("renderer2d: vertex buffer full")
)

// Statistics captures the counts generated during a renderer frame.
type Statistics struct {
	Shapes   int
	Vertices int
	Indices  int
	Texts    int
	Skipped  int
	Frame    uint64
}

func (s Statistics) Triangles() int { return s.Indices / 3 }

// Renderer2D accumulates one frame of geometry and text. Every draw call
// appends to the buffers; Render hands them to the sink and starts over.
type Renderer2D struct {
	sink Sink

	verts []Vertex
	inds  []uint16
	text  TextQueue

	stats Statistics
	last  Statistics
	err   error
}

// New creates a renderer submitting to sink, sized to the given framebuffer.
func New(sink Sink, width, height int) *Renderer2D {
	rd := &Renderer2D{
		sink:  sink,
		verts: make([]Vertex, 0, 1024),
		inds:  make([]uint16, 0, 2048),
	}
	rd.text.SetViewport(width, height)
	return rd
}

func (rd *Renderer2D) Vertices() []Vertex        { return rd.verts }
func (rd *Renderer2D) Indices() []uint16         { return rd.inds }
func (rd *Renderer2D) Texts() []TextRequest      { return rd.text.Requests() }
func (rd *Renderer2D) Size() (width, height int) { return rd.text.Viewport() }
func (rd *Renderer2D) FrameStats() Statistics    { return rd.currentStats() }
func (rd *Renderer2D) Stats() Statistics         { return rd.last }
func (rd *Renderer2D) Err() error                { return rd.err }

// Resize applies a new framebuffer size. Zero-area sizes are ignored.
func (rd *Renderer2D) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	rd.text.SetViewport(width, height)
	if rd.sink != nil {
		rd.sink.Resize(width, height)
	}
}

// Render submits the frame and clears the buffers, even when the sink fails.
func (rd *Renderer2D) Render() error {
	end := profiler.Start("Renderer2D.Render")
	defer end()

	var err error
	if rd.sink != nil {
		err = rd.sink.Submit(rd.verts, rd.inds, rd.text.Requests())
	}

	rd.last = rd.currentStats()
	rd.stats = Statistics{Frame: rd.last.Frame + 1}
	rd.err = nil
	rd.verts = rd.verts[:0]
	rd.inds = rd.inds[:0]
	rd.text.Reset()

	if err != nil {
		return fmt.Errorf("render frame %d: %w", rd.last.Frame, err)
	}
	return nil
}

func (rd *Renderer2D) currentStats() Statistics {
	s := rd.stats
	s.Vertices = len(rd.verts)
	s.Indices = len(rd.inds)
	s.Texts = len(rd.text.Requests())
	return s
}

// reserve checks that n more vertices fit the 16-bit index range and
// returns the index of the first one.
func (rd *Renderer2D) reserve(n int) (uint16, bool) {
	if len(rd.verts)+n > MaxVertices {
		rd.skip(ErrBufferFull)
		return 0, false
	}
	rd.stats.Shapes++
	return uint16(len(rd.verts)), true
}

func (rd *Renderer2D) skip(err error) {
	rd.stats.Skipped++
	if rd.err == nil {
		rd.err = err
	}
	logging.Logger().Debug("shape skipped", "err", err, "vertices", len(rd.verts))
}

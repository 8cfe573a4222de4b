package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hubastard/poliosis/engine/gfx/renderer2d"
	"github.com/hubastard/poliosis/engine/text"
)

// glyph vertex: pos2 + uv2 + color4
const (
	glyphFloats = 8
	glyphStride = glyphFloats * 4
)

// appendGlyphVertices expands quads into two triangles each.
func appendGlyphVertices(dst []float32, quads []text.Quad, c [4]float32) []float32 {
	for _, q := range quads {
		corners := [6][4]float32{
			{q.X0, q.Y0, q.U0, q.V0},
			{q.X1, q.Y0, q.U1, q.V0},
			{q.X1, q.Y1, q.U1, q.V1},
			{q.X0, q.Y0, q.U0, q.V0},
			{q.X1, q.Y1, q.U1, q.V1},
			{q.X0, q.Y1, q.U0, q.V1},
		}
		for _, v := range corners {
			dst = append(dst, v[0], v[1], v[2], v[3], c[0], c[1], c[2], c[3])
		}
	}
	return dst
}

// surfaceError maps a GL error code to the frame error the loop acts on.
func surfaceError(code uint32) error {
	switch code {
	case gl.NO_ERROR:
		return nil
	case gl.OUT_OF_MEMORY:
		return &renderer2d.SurfaceError{Kind: renderer2d.SurfaceOutOfMemory, Err: glErr(code)}
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return &renderer2d.SurfaceError{Kind: renderer2d.SurfaceOutdated, Err: glErr(code)}
	default:
		return &renderer2d.SurfaceError{Kind: renderer2d.SurfaceOther, Err: glErr(code)}
	}
}

// framebufferError reports an incomplete default framebuffer, which happens
// while the window is minimized or its surface is being recreated.
func framebufferError(status uint32) error {
	if status == gl.FRAMEBUFFER_COMPLETE {
		return nil
	}
	return &renderer2d.SurfaceError{Kind: renderer2d.SurfaceLost, Err: glErr(status)}
}

type glErr uint32

func (e glErr) Error() string {
	switch uint32(e) {
	case gl.INVALID_ENUM:
		return "gl: invalid enum"
	case gl.INVALID_VALUE:
		return "gl: invalid value"
	case gl.INVALID_OPERATION:
		return "gl: invalid operation"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "gl: invalid framebuffer operation"
	case gl.OUT_OF_MEMORY:
		return "gl: out of memory"
	case gl.FRAMEBUFFER_UNDEFINED:
		return "gl: framebuffer undefined"
	default:
		return fmt.Sprintf("gl: error 0x%x", uint32(e))
	}
}

package renderer2d

import (
	"github.com/hubastard/poliosis/engine/colors"
	"github.com/hubastard/poliosis/engine/geom"
)

// Vertex: pos3 + color4 => 7 floats, tightly packed.
type Vertex struct {
	Position [3]float32
	Color    [4]float32
}

const (
	vFloats      = 7
	VertexStride = vFloats * 4
	// 16-bit indices cap a frame at this many vertices.
	MaxVertices = 1 << 16
)

func NewVertex(p geom.Point, c colors.Color) Vertex {
	return Vertex{Position: p.Vec3(), Color: c.Array4()}
}

type AttribType int

const (
	AttribFloat32 AttribType = iota
)

type VertexAttrib struct {
	Location int
	Size     int // components
	Type     AttribType
	Offset   int // bytes
}

type VertexLayout struct {
	Stride     int
	Attributes []VertexAttrib
}

// Layout is what shaders consuming Renderer2D output must declare.
var Layout = VertexLayout{
	Stride: VertexStride,
	Attributes: []VertexAttrib{
		{Location: 0, Size: 3, Type: AttribFloat32, Offset: 0},     // pos
		{Location: 1, Size: 4, Type: AttribFloat32, Offset: 3 * 4}, // color
	},
}

// Flatten writes vertices into dst as raw floats in Layout order.
func Flatten(dst []float32, verts []Vertex) []float32 {
	dst = dst[:0]
	for _, v := range verts {
		dst = append(dst,
			v.Position[0], v.Position[1], v.Position[2],
			v.Color[0], v.Color[1], v.Color[2], v.Color[3],
		)
	}
	return dst
}

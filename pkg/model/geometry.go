package model

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Segment is a line segment in whatever space its producer documents.
type Segment struct {
	A, B mgl64.Vec3
}

// Edges returns the wireframe of the mesh in local space.
func (m *Mesh) Edges() []Segment {
	if m == nil {
		return nil
	}
	switch m.Kind {
	case MeshBox:
		return boxEdges(m.Size)
	case MeshCylinder:
		return cylinderEdges(m.Size.X(), m.Size.Y()/2, m.Segments)
	}
	return nil
}

func boxEdges(size mgl64.Vec3) []Segment {
	h := size.Mul(0.5)
	c := [8]mgl64.Vec3{
		{-h[0], -h[1], -h[2]}, {h[0], -h[1], -h[2]}, {h[0], h[1], -h[2]}, {-h[0], h[1], -h[2]},
		{-h[0], -h[1], h[2]}, {h[0], -h[1], h[2]}, {h[0], h[1], h[2]}, {-h[0], h[1], h[2]},
	}
	idx := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
	edges := make([]Segment, 0, len(idx))
	for _, e := range idx {
		edges = append(edges, Segment{A: c[e[0]], B: c[e[1]]})
	}
	return edges
}

// cylinderEdges builds two rim rings joined by spokes and every other side line.
func cylinderEdges(length, radius float64, segments int) []Segment {
	if segments < 3 {
		segments = 3
	}
	half := length / 2
	ring := func(x float64, i int) mgl64.Vec3 {
		a := 2 * math.Pi * float64(i) / float64(segments)
		return mgl64.Vec3{x, radius * math.Cos(a), radius * math.Sin(a)}
	}
	edges := make([]Segment, 0, segments*3)
	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		edges = append(edges,
			Segment{A: ring(-half, i), B: ring(-half, next)},
			Segment{A: ring(half, i), B: ring(half, next)},
		)
		if i%2 == 0 {
			edges = append(edges, Segment{A: ring(-half, i), B: ring(half, i)})
		}
	}
	// 轮毂辐条
	for i := 0; i < segments; i += segments / 3 {
		edges = append(edges, Segment{A: mgl64.Vec3{half, 0, 0}, B: ring(half, i)})
	}
	return edges
}

// WorldEdges transforms the wireframe of every mesh in the subtree into world
// space using root as the parent matrix.
func (n *MeshNode) WorldEdges(root mgl64.Mat4) []ColoredSegment {
	var out []ColoredSegment
	n.Walk(root, func(node *MeshNode, world mgl64.Mat4) {
		if node.Mesh == nil {
			return
		}
		for _, e := range node.Mesh.Edges() {
			out = append(out, ColoredSegment{
				Segment: Segment{
					A: mgl64.TransformCoordinate(e.A, world),
					B: mgl64.TransformCoordinate(e.B, world),
				},
				Material: node.Mesh.Material,
			})
		}
	})
	return out
}

// ColoredSegment is a world-space segment with the material it came from.
type ColoredSegment struct {
	Segment
	Material Material
}

// Package geometry holds the vertex and surface definitions of rigid objects.
package geometry

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/Faultbox/vectorviewer/pkg/math"
)

// ErrInvalidTopology is returned when a surface does not fit its vertex set.
var ErrInvalidTopology = errors.New("invalid surface topology")

// VertexSet is an ordered, immutable list of homogeneous object-space points.
type VertexSet struct {
	nodes []math.Vec4
}

// NewVertexSet stores points with an appended W = 1.
func NewVertexSet(points []math.Vec3) VertexSet {
	nodes := make([]math.Vec4, len(points))
	for i, p := range points {
		nodes[i] = p.Homogeneous()
	}
	return VertexSet{nodes: nodes}
}

// Len returns the number of vertices.
func (vs VertexSet) Len() int {
	return len(vs.nodes)
}

// At returns vertex i.
func (vs VertexSet) At(i int) math.Vec4 {
	return vs.nodes[i]
}

// Nodes returns a copy of all vertices.
func (vs VertexSet) Nodes() []math.Vec4 {
	out := make([]math.Vec4, len(vs.nodes))
	copy(out, vs.nodes)
	return out
}

// Surface is a polygon face over vertex indices.
type Surface struct {
	ID        int
	Color     color.RGBA
	EdgeWidth int   // 0 fills the polygon, >0 strokes it with this width
	Nodes     []int // vertex indices, clockwise in object space

	// Depth is the mean world-space Z of Nodes, recomputed every frame.
	Depth float64
}

// NewSurface stores a surface definition verbatim.
func NewSurface(id int, c color.RGBA, edgeWidth int, nodes []int) Surface {
	idx := make([]int, len(nodes))
	copy(idx, nodes)
	return Surface{
		ID:        id,
		Color:     c,
		EdgeWidth: edgeWidth,
		Nodes:     idx,
	}
}

// Validate checks that every surface has at least three distinct indices
// that reference vertices of vs.
func Validate(vs VertexSet, surfaces []Surface) error {
	for _, s := range surfaces {
		if len(s.Nodes) < 3 {
			return fmt.Errorf("surface %d: %d nodes, need at least 3: %w", s.ID, len(s.Nodes), ErrInvalidTopology)
		}
		seen := make(map[int]bool, len(s.Nodes))
		for _, n := range s.Nodes {
			if n < 0 || n >= vs.Len() {
				return fmt.Errorf("surface %d: node %d out of range [0,%d): %w", s.ID, n, vs.Len(), ErrInvalidTopology)
			}
			if seen[n] {
				return fmt.Errorf("surface %d: node %d repeated: %w", s.ID, n, ErrInvalidTopology)
			}
			seen[n] = true
		}
	}
	return nil
}

// Copyright 2023 The Dzahui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data: meshes read from geometry (.obj)
// files and simulation definitions read from (.sim) JSON files
package inp

import (
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Ztol is the tolerance to consider a coordinate constant along the mesh
const Ztol = 1e-7

// nAdjInterior is the element-adjacency count of an interior vertex in a 1D
// line mesh; vertices with fewer adjacent cells lie on the boundary
const nAdjInterior = 2

// MalformedMeshError indicates bad connectivity data: an empty cell list or a
// cell referencing an out-of-range vertex id
type MalformedMeshError struct {
	Msg string
}

func (e *MalformedMeshError) Error() string {
	return io.Sf("malformed mesh: %s", e.Msg)
}

// Vert holds vertex data
type Vert struct {
	Id int       // id
	C  []float64 // embedding coordinates (size==3 from .obj input)
	X  float64   // solving coordinate along the mesh line
}

// Cell holds cell (element) data. Cells are immutable after the mesh is built
type Cell struct {
	Id    int   // id
	Verts []int // ordered vertex ids; lin2 cells have two
}

// Mesh holds a line mesh for 1D FE analyses. No mutation happens after load
type Mesh struct {

	// input
	Verts []*Vert // vertices, ordered by ascending X
	Cells []*Cell // cells

	// derived
	FnamePath  string  // complete filename path, if read from a file
	Xmin, Xmax float64 // domain extremities
	BryVerts   []int   // boundary vertex ids, ascending; computed once at load
}

// NewMesh builds and validates a mesh from a list of solving coordinates and
// cell connectivity. Vertices keep a zero y and z embedding coordinate
func NewMesh(coords []float64, cells [][]int) (*Mesh, error) {
	if len(cells) < 1 {
		return nil, &MalformedMeshError{"mesh must have at least one cell"}
	}
	if len(coords) < 2 {
		return nil, &MalformedMeshError{"mesh must have at least two vertices"}
	}
	var o Mesh
	o.Verts = make([]*Vert, len(coords))
	for i, x := range coords {
		o.Verts[i] = &Vert{Id: i, C: []float64{x, 0, 0}, X: x}
	}
	o.Cells = make([]*Cell, len(cells))
	for i, vids := range cells {
		if len(vids) != 2 {
			return nil, &MalformedMeshError{io.Sf("cell %d has %d vertices; lin2 cells need 2", i, len(vids))}
		}
		for _, v := range vids {
			if v < 0 || v >= len(coords) {
				return nil, &MalformedMeshError{io.Sf("cell %d references vertex %d out of range [0,%d)", i, v, len(coords))}
			}
		}
		o.Cells[i] = &Cell{Id: i, Verts: []int{vids[0], vids[1]}}
	}
	o.derived()
	return &o, nil
}

// NewLineMesh builds a uniform mesh over [xmin,xmax] with ndiv cells
func NewLineMesh(xmin, xmax float64, ndiv int) (*Mesh, error) {
	if ndiv < 1 {
		return nil, &MalformedMeshError{io.Sf("ndiv=%d must be at least 1", ndiv)}
	}
	coords := utl.LinSpace(xmin, xmax, ndiv+1)
	cells := make([][]int, ndiv)
	for i := 0; i < ndiv; i++ {
		cells[i] = []int{i, i + 1}
	}
	return NewMesh(coords, cells)
}

// ReadMsh reads a mesh for 1D FE analyses from a triangulated geometry (.obj)
// file. Only vertex positions and connectivity are consumed; materials,
// textures and normals are ignored. The vertices must lie on a line parallel
// to one of the axes; they are sorted by the varying coordinate and segment
// cells are derived between consecutive vertices
func ReadMsh(path string) (*Mesh, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var coords [][]float64
	for lineno, line := range strings.Split(string(b), "\n") {
		f := strings.Fields(strings.TrimSpace(line))
		if len(f) == 0 || f[0] != "v" {
			continue // faces and the rest of the .obj vocabulary are not needed in 1D
		}
		if len(f) < 4 {
			return nil, &MalformedMeshError{io.Sf("%s:%d: vertex line needs three coordinates", path, lineno+1)}
		}
		c := make([]float64, 3)
		for i := 0; i < 3; i++ {
			c[i], err = strconv.ParseFloat(f[1+i], 64)
			if err != nil {
				return nil, &MalformedMeshError{io.Sf("%s:%d: cannot parse vertex coordinate %q", path, lineno+1, f[1+i])}
			}
		}
		coords = append(coords, c)
	}
	if len(coords) < 2 {
		return nil, &MalformedMeshError{io.Sf("%s: found %d vertices; at least two are needed", path, len(coords))}
	}

	axis, err := varyingAxis(coords)
	if err != nil {
		return nil, err
	}

	// sort along the varying axis; ties are impossible on a valid line mesh
	sort.Slice(coords, func(i, j int) bool { return coords[i][axis] < coords[j][axis] })

	var o Mesh
	o.FnamePath = path
	o.Verts = make([]*Vert, len(coords))
	for i, c := range coords {
		o.Verts[i] = &Vert{Id: i, C: c, X: c[axis]}
	}
	o.Cells = make([]*Cell, len(coords)-1)
	for i := 0; i < len(coords)-1; i++ {
		o.Cells[i] = &Cell{Id: i, Verts: []int{i, i + 1}}
	}
	o.derived()
	return &o, nil
}

// varyingAxis finds the single axis along which the vertices vary
func varyingAxis(coords [][]float64) (int, error) {
	axis := -1
	for j := 0; j < 3; j++ {
		lo, hi := coords[0][j], coords[0][j]
		for _, c := range coords {
			lo = math.Min(lo, c[j])
			hi = math.Max(hi, c[j])
		}
		if hi-lo > Ztol {
			if axis >= 0 {
				return -1, &MalformedMeshError{"vertices must lie on a line parallel to the x, y or z axis"}
			}
			axis = j
		}
	}
	if axis < 0 {
		return -1, &MalformedMeshError{"all vertices are coincident"}
	}
	return axis, nil
}

// derived computes extremities and boundary vertices
func (o *Mesh) derived() {
	o.Xmin, o.Xmax = o.Verts[0].X, o.Verts[0].X
	for _, v := range o.Verts {
		o.Xmin = math.Min(o.Xmin, v.X)
		o.Xmax = math.Max(o.Xmax, v.X)
	}
	nadj := make([]int, len(o.Verts))
	for _, c := range o.Cells {
		for _, v := range c.Verts {
			nadj[v]++
		}
	}
	o.BryVerts = nil
	for i, n := range nadj {
		if n > 0 && n < nAdjInterior {
			o.BryVerts = append(o.BryVerts, i)
		}
	}
	sort.Ints(o.BryVerts)
}

// Nverts returns the number of vertices
func (o *Mesh) Nverts() int { return len(o.Verts) }

// IsBry tells whether vertex id lies on the boundary
func (o *Mesh) IsBry(id int) bool {
	i := sort.SearchInts(o.BryVerts, id)
	return i < len(o.BryVerts) && o.BryVerts[i] == id
}

// Coords returns the solving coordinates of all vertices, in vertex order
func (o *Mesh) Coords() []float64 {
	x := make([]float64, len(o.Verts))
	for i, v := range o.Verts {
		x[i] = v.X
	}
	return x
}

// String returns a short description of the mesh
func (o *Mesh) String() string {
	return io.Sf("mesh{nverts=%d, ncells=%d, x=[%g,%g]}", len(o.Verts), len(o.Cells), o.Xmin, o.Xmax)
}

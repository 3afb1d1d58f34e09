// Copyright 2023 The Dzahui Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// equation families
const (
	EqnDiffusion = "diffusion" // ρ ∂u/∂t - μ u″ + b u′ = s
	EqnPressure  = "pressure"  // (1/ρ) p′ = f, pinned by the hydrostatic constant
	EqnNone      = "none"      // mesh viewing only; no solve loop
)

// InconsistentBoundaryError indicates boundary data referencing a vertex that
// does not exist in the mesh or does not lie on its boundary. It is reported
// at configuration-freeze time, before any solve attempt
type InconsistentBoundaryError struct {
	VertId int
}

func (e *InconsistentBoundaryError) Error() string {
	return io.Sf("inconsistent boundary data: vertex %d is not a boundary vertex of the mesh", e.VertId)
}

// Data holds global simulation data
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	Mshfile string `json:"mshfile"` // file path of the geometry (.obj) file
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/dzahui
}

// NodeBc holds one Dirichlet condition: a prescribed value at a boundary vertex
type NodeBc struct {
	Vert  int     `json:"vert"`  // boundary vertex id
	Value float64 `json:"value"` // prescribed value
}

// EquationData holds the definition of the governing equation
type EquationData struct {
	Family  string    `json:"family"`  // "diffusion", "pressure" or "none"
	Steady  bool      `json:"steady"`  // time-independent formulation
	Mu      float64   `json:"mu"`      // diffusion coefficient
	B       float64   `json:"b"`       // advection velocity
	Rho     float64   `json:"rho"`     // density
	Hp      float64   `json:"hp"`      // hydrostatic pressure constant (pressure family)
	Source  *FuncData `json:"source"`  // force function f(x)
	Bcs     []*NodeBc `json:"bcs"`     // Dirichlet conditions
	IniVals []float64 `json:"inivals"` // initial values at interior vertices (transient only)
}

// SolverData holds FEM solver data
type SolverData struct {
	Nsteps int     `json:"nsteps"` // number of time steps for transient runs
	Dt     float64 `json:"dt"`     // time step size
	Theta  float64 `json:"theta"`  // θ-scheme parameter; 1 => backward Euler, 0 => explicit
	Tol    float64 `json:"tol"`    // convergence tolerance on the field change; 0 => run all steps
	Nip    int     `json:"nip"`    // number of integration points per element
	LinSol string  `json:"linsol"` // "thomas" or "dense"
}

// ViewerData holds window data for the renderer
type ViewerData struct {
	Show   bool    `json:"show"`   // open the viewer window
	Width  int     `json:"width"`  // window width; default 800
	Height int     `json:"height"` // window height; default 600
	Fps    float64 `json:"fps"`    // target frame rate; default 60
	Title  string  `json:"title"`  // window title
}

// Simulation holds all simulation data. A Simulation is built once, validated
// and frozen by Freeze (or ReadSim) before solving begins, and is read-only
// thereafter
type Simulation struct {

	// input
	Data     Data         `json:"data"`     // global data
	Equation EquationData `json:"equation"` // governing equation
	Solver   SolverData   `json:"solver"`   // solver parameters
	Viewer   ViewerData   `json:"viewer"`   // window parameters

	// derived
	Key    string     // simulation key; e.g. diffusion01.sim => diffusion01
	Msh    *Mesh      // the mesh
	Ffunc  ScalarFunc // resolved force function
	frozen bool
}

// ReadSim reads a simulation from a (.sim) JSON file, loads its mesh and
// freezes the result. Fails fast with descriptive errors on missing fields
func ReadSim(simfilepath string) (*Simulation, error) {
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("cannot read simulation file:\n%v", err)
	}
	var o Simulation
	if err := json.Unmarshal(b, &o); err != nil {
		return nil, chk.Err("cannot parse simulation file %q:\n%v", simfilepath, err)
	}
	o.Key = io.FnKey(simfilepath)
	if o.Data.Mshfile != "" {
		dir := filepath.Dir(simfilepath)
		o.Msh, err = ReadMsh(filepath.Join(dir, o.Data.Mshfile))
		if err != nil {
			return nil, err
		}
	}
	if err := o.Freeze(); err != nil {
		return nil, err
	}
	return &o, nil
}

// Freeze validates the simulation and marks it immutable. All fatal
// configuration errors are reported here, before the first assemble
func (o *Simulation) Freeze() (err error) {
	if o.frozen {
		return
	}
	if o.Msh == nil {
		return chk.Err("simulation %q has no mesh", o.Key)
	}
	if o.Ffunc == nil {
		fd := o.Equation.Source
		if fd == nil {
			fd = &FuncData{Name: "zero"}
		}
		o.Ffunc, err = fd.Get()
		if err != nil {
			return
		}
	}
	eq := &o.Equation
	switch eq.Family {
	case EqnDiffusion:
		if eq.Mu <= 0 {
			return chk.Err("diffusion equation needs mu > 0 (got %g)", eq.Mu)
		}
		if !eq.Steady {
			if eq.Rho <= 0 {
				return chk.Err("time-dependent diffusion needs rho > 0 (got %g)", eq.Rho)
			}
			if o.Solver.Dt <= 0 {
				return chk.Err("time-dependent diffusion needs dt > 0 (got %g)", o.Solver.Dt)
			}
			if o.Solver.Nsteps < 1 {
				return chk.Err("time-dependent diffusion needs nsteps > 0 (got %d)", o.Solver.Nsteps)
			}
			nint := o.Msh.Nverts() - len(o.Msh.BryVerts)
			if eq.IniVals != nil && len(eq.IniVals) != nint {
				return chk.Err("initial values must have one entry per interior vertex: %d given, %d needed", len(eq.IniVals), nint)
			}
		}
	case EqnPressure:
		if !eq.Steady {
			return chk.Err("pressure equation is time-independent; set steady")
		}
		if eq.Rho <= 0 {
			return chk.Err("pressure equation needs rho > 0 (got %g)", eq.Rho)
		}
	case EqnNone:
	default:
		return chk.Err("unknown equation family %q", eq.Family)
	}
	seen := make(map[int]bool)
	for _, bc := range eq.Bcs {
		if !o.Msh.IsBry(bc.Vert) {
			return &InconsistentBoundaryError{bc.Vert}
		}
		if seen[bc.Vert] {
			return chk.Err("vertex %d has more than one prescribed value", bc.Vert)
		}
		seen[bc.Vert] = true
	}
	if o.Solver.Theta < 0 || o.Solver.Theta > 1 {
		return chk.Err("theta must lie in [0,1] (got %g)", o.Solver.Theta)
	}
	if o.Solver.Nip == 0 {
		o.Solver.Nip = 3
	}
	if o.Solver.Nip < 2 {
		return chk.Err("nip must be at least 2 (got %d)", o.Solver.Nip)
	}
	if o.Solver.LinSol == "" {
		o.Solver.LinSol = "thomas"
	}
	if o.Viewer.Width == 0 {
		o.Viewer.Width = 800
	}
	if o.Viewer.Height == 0 {
		o.Viewer.Height = 600
	}
	if o.Viewer.Fps == 0 {
		o.Viewer.Fps = 60
	}
	if o.Viewer.Title == "" {
		o.Viewer.Title = "dzahui: " + o.Key
	}
	o.frozen = true
	return
}

// Frozen tells whether the simulation has been validated and frozen
func (o *Simulation) Frozen() bool { return o.frozen }

// builder //////////////////////////////////////////////////////////////////////////////////////////

// SimBuilder assembles a Simulation programmatically, mirroring the .sim file
// structure. Call Freeze to validate and obtain the immutable Simulation
type SimBuilder struct {
	sim Simulation
}

// NewSim returns a new builder with an empty simulation
func NewSim(key string) *SimBuilder {
	o := new(SimBuilder)
	o.sim.Key = key
	return o
}

// SetMesh sets the mesh
func (o *SimBuilder) SetMesh(msh *Mesh) *SimBuilder {
	o.sim.Msh = msh
	return o
}

// SolveDiffusion selects the time-independent diffusion equation
func (o *SimBuilder) SolveDiffusion(mu, b float64) *SimBuilder {
	o.sim.Equation.Family = EqnDiffusion
	o.sim.Equation.Steady = true
	o.sim.Equation.Mu = mu
	o.sim.Equation.B = b
	return o
}

// SolveTimeDependentDiffusion selects the time-dependent diffusion equation
func (o *SimBuilder) SolveTimeDependentDiffusion(mu, b, rho float64) *SimBuilder {
	o.sim.Equation.Family = EqnDiffusion
	o.sim.Equation.Steady = false
	o.sim.Equation.Mu = mu
	o.sim.Equation.B = b
	o.sim.Equation.Rho = rho
	return o
}

// SolveStaticPressure selects the hydrostatic pressure equation
func (o *SimBuilder) SolveStaticPressure(rho, hp float64) *SimBuilder {
	o.sim.Equation.Family = EqnPressure
	o.sim.Equation.Steady = true
	o.sim.Equation.Rho = rho
	o.sim.Equation.Hp = hp
	return o
}

// SetBcs prescribes the values at the left and right domain extremities
func (o *SimBuilder) SetBcs(left, right float64) *SimBuilder {
	o.sim.Equation.Bcs = nil
	return o.AddBc(0, left).AddBc(-1, right)
}

// AddBc prescribes a value at one boundary vertex; vert==-1 means the last one
func (o *SimBuilder) AddBc(vert int, value float64) *SimBuilder {
	if vert == -1 && o.sim.Msh != nil {
		vert = o.sim.Msh.Nverts() - 1
	}
	o.sim.Equation.Bcs = append(o.sim.Equation.Bcs, &NodeBc{vert, value})
	return o
}

// SetIniVals sets the initial values at interior vertices (transient only)
func (o *SimBuilder) SetIniVals(vals ...float64) *SimBuilder {
	o.sim.Equation.IniVals = vals
	return o
}

// SetForceFunc sets the force function as a closure
func (o *SimBuilder) SetForceFunc(f ScalarFunc) *SimBuilder {
	o.sim.Ffunc = f
	return o
}

// SetTimeControl sets the step size and number of steps
func (o *SimBuilder) SetTimeControl(dt float64, nsteps int) *SimBuilder {
	o.sim.Solver.Dt = dt
	o.sim.Solver.Nsteps = nsteps
	return o
}

// SetTheta sets the θ-scheme parameter
func (o *SimBuilder) SetTheta(theta float64) *SimBuilder {
	o.sim.Solver.Theta = theta
	return o
}

// SetTol sets the convergence tolerance on the field change per step
func (o *SimBuilder) SetTol(tol float64) *SimBuilder {
	o.sim.Solver.Tol = tol
	return o
}

// SetNip sets the number of integration points per element
func (o *SimBuilder) SetNip(nip int) *SimBuilder {
	o.sim.Solver.Nip = nip
	return o
}

// SetLinSol selects the linear solver by name
func (o *SimBuilder) SetLinSol(name string) *SimBuilder {
	o.sim.Solver.LinSol = name
	return o
}

// SetDirOut sets the output directory for saved results
func (o *SimBuilder) SetDirOut(dirout string) *SimBuilder {
	o.sim.Data.DirOut = dirout
	return o
}

// WithViewer enables the viewer window
func (o *SimBuilder) WithViewer(width, height int, fps float64) *SimBuilder {
	o.sim.Viewer.Show = true
	o.sim.Viewer.Width = width
	o.sim.Viewer.Height = height
	o.sim.Viewer.Fps = fps
	return o
}

// Freeze validates and returns the immutable simulation
func (o *SimBuilder) Freeze() (*Simulation, error) {
	if err := o.sim.Freeze(); err != nil {
		return nil, err
	}
	return &o.sim, nil
}

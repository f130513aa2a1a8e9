package main

import (
	"time"

	"github.com/chazu/geomkit/pkg/engine"
	"github.com/chazu/geomkit/pkg/kernel"
	"github.com/chazu/geomkit/pkg/kernel/sdfx"
	"github.com/chazu/geomkit/pkg/logging"
	"github.com/chazu/geomkit/pkg/tessellate"
)

// colorPalette is a default palette used to assign distinct colors to meshes.
var colorPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// Config holds the knobs exposed on the command line. Zero fields take the
// package defaults.
type Config struct {
	Timeout   time.Duration // engine.DefaultTimeout
	MeshCells int           // sdfx.DefaultMeshCells
}

// App runs the script -> scene -> mesh pipeline.
type App struct {
	engine *engine.Engine
	kernel kernel.Kernel
}

// MeshData is the JSON-serializable mesh format.
type MeshData struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	PartName string    `json:"partName"`
	Color    string    `json:"color"`
}

// EvalErrorData is a JSON-serializable eval error or warning.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// EvalResult is the full result of one evaluation.
type EvalResult struct {
	Value    string          `json:"value"`
	Meshes   []MeshData      `json:"meshes"`
	Errors   []EvalErrorData `json:"errors"`
	Warnings []EvalErrorData `json:"warnings"`
}

// NewApp creates an App with default settings and the sdfx kernel.
func NewApp() *App {
	return NewAppWithConfig(Config{})
}

func NewAppWithConfig(cfg Config) *App {
	return &App{
		engine: engine.NewEngineWithOptions(engine.Options{Timeout: cfg.Timeout}),
		kernel: sdfx.NewWithOptions(sdfx.Options{MeshCells: cfg.MeshCells}),
	}
}

// Evaluate takes script source and returns mesh data + errors.
func (a *App) Evaluate(source string) EvalResult {
	result := EvalResult{
		Meshes:   []MeshData{},
		Errors:   []EvalErrorData{},
		Warnings: []EvalErrorData{},
	}
	log := logging.Logger()

	// Step 1: Evaluate the source into a scene.
	res, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		log.Error("evaluate failed", "err", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}

	// Step 2: Convert eval errors.
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}
	result.Value = res.Value
	for _, w := range res.Warnings {
		result.Warnings = append(result.Warnings, EvalErrorData{Message: w.Message})
	}

	// Step 3: Tessellate the scene into triangle meshes.
	meshes, err := tessellate.Tessellate(res.Scene, a.kernel)
	if err != nil {
		log.Error("tessellate failed", "err", err)
		result.Errors = append(result.Errors, EvalErrorData{
			Message: "tessellation failed: " + err.Error(),
		})
		return result
	}

	// Step 4: Convert kernel meshes to MeshData.
	for i, m := range meshes {
		result.Meshes = append(result.Meshes, MeshData{
			Vertices: m.Vertices,
			Normals:  m.Normals,
			Indices:  m.Indices,
			PartName: m.PartName,
			Color:    colorPalette[i%len(colorPalette)],
		})
	}

	return result
}

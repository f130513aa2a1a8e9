// Package engine evaluates geometry scripts. It wraps zygomys in a
// sandboxed environment, exposes the geom and shape types as builtins and
// produces a scene.Scene from user source code.
package engine

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/geomkit/pkg/logging"
	"github.com/chazu/geomkit/pkg/scene"
)

// DefaultTimeout is the limit for a single evaluation unless Options says
// otherwise.
const DefaultTimeout = 5 * time.Second

// Options configures an Engine. Zero fields take their defaults.
type Options struct {
	Timeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	return o
}

// EvalError represents a non-fatal error encountered during evaluation,
// such as a parse error, a runtime error in user code, or a scene that
// fails validation.
type EvalError struct {
	Line    int
	Col     int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// EvalWarning is an advisory finding about the produced scene.
type EvalWarning struct {
	Message string
	NodeID  scene.NodeID
}

// Result is the output of a successful evaluation.
type Result struct {
	Scene    *scene.Scene
	Value    string // printed form of the last expression
	Warnings []EvalWarning
}

// Engine wraps the zygomys interpreter. It is safe for concurrent use;
// each call to Evaluate creates a fresh sandboxed environment for
// determinism.
type Engine struct {
	opts       Options
	mu         sync.Mutex
	generation uint64
}

// NewEngine creates an Engine with default options.
func NewEngine() *Engine {
	return NewEngineWithOptions(Options{})
}

func NewEngineWithOptions(opts Options) *Engine {
	return &Engine{opts: opts.withDefaults()}
}

// Timeout reports the evaluation limit in use.
func (e *Engine) Timeout() time.Duration { return e.opts.Timeout }

// Evaluate runs source and returns the scene it builds.
//
// Return semantics:
//   - On success: returns result + nil errors + nil error
//   - On parse/eval/validation failure: returns nil + eval errors + nil error
//   - On fatal failure (timeout, panic, superseded): returns nil + nil + error
func (e *Engine) Evaluate(source string) (*Result, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	log := logging.Logger()
	log.Debug("evaluation started", "generation", gen, "bytes", len(source))
	start := time.Now()

	ch := make(chan evalResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()

		res, evalErrs, err := e.evaluate(source)
		ch <- evalResult{result: res, errors: evalErrs, err: err}
	}()

	res, evalErrs, err := waitWithTimeout(ch, gen, &e.mu, &e.generation, e.opts.Timeout)
	switch {
	case err != nil:
		log.Warn("evaluation failed", "generation", gen, "err", err)
	default:
		log.Debug("evaluation finished",
			"generation", gen,
			"elapsed", time.Since(start),
			"errors", len(evalErrs))
		if res != nil && logging.Enabled(slog.LevelDebug) {
			log.Debug("scene built",
				"generation", gen,
				"nodes", res.Scene.NodeCount(),
				"shapes", len(res.Scene.Shapes()),
				"roots", len(res.Scene.Roots),
				"warnings", len(res.Warnings))
		}
	}
	return res, evalErrs, err
}

// evaluate performs the actual zygomys evaluation in a fresh sandbox.
func (e *Engine) evaluate(source string) (*Result, []EvalError, error) {
	// Empty source is a valid program that produces an empty scene.
	if strings.TrimSpace(source) == "" {
		return &Result{Scene: scene.New()}, nil, nil
	}

	// Sandbox mode keeps user code away from the filesystem and syscalls.
	env := zygo.NewZlispSandbox()
	defer env.Stop()

	b := newBuilder()
	registerBuiltins(env, b)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		return nil, parseZygomysError(err), nil
	}

	val, err := env.Run()
	if err != nil {
		return nil, parseZygomysError(err), nil
	}

	s := b.finish()
	vr := scene.ValidateAll(s)
	if !vr.OK() {
		evalErrs := make([]EvalError, 0, len(vr.Errors))
		for _, ve := range vr.Errors {
			evalErrs = append(evalErrs, EvalError{Message: ve.Error()})
		}
		return nil, evalErrs, nil
	}

	res := &Result{Scene: s}
	if val != nil && val != zygo.SexpNull {
		res.Value = val.SexpString(nil)
	}
	for _, w := range vr.Warnings {
		res.Warnings = append(res.Warnings, EvalWarning{Message: w.Message, NodeID: w.NodeID})
	}
	return res, nil, nil
}

// linePattern matches zygomys error messages that include "Error on line N: ..."
var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// linePatternShort matches simpler "line N: ..." patterns.
var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

// parseZygomysError converts a zygomys error into one or more EvalError
// values, extracting the line number when the message carries one.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()

	for _, re := range []*regexp.Regexp{linePattern, linePatternShort} {
		if m := re.FindStringSubmatch(msg); m != nil {
			line, _ := strconv.Atoi(m[1])
			return []EvalError{{
				Line:    line,
				Message: strings.TrimSpace(m[2]),
			}}
		}
	}

	return []EvalError{{Message: strings.TrimSpace(msg)}}
}

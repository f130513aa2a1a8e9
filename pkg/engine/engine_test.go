package engine

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/chazu/geomkit/pkg/logging"
)

func TestEngineOptions(t *testing.T) {
	if got := NewEngine().Timeout(); got != DefaultTimeout {
		t.Errorf("default timeout = %s, want %s", got, DefaultTimeout)
	}
	if got := NewEngineWithOptions(Options{Timeout: time.Second}).Timeout(); got != time.Second {
		t.Errorf("timeout = %s, want 1s", got)
	}
	if got := NewEngineWithOptions(Options{Timeout: -1}).Timeout(); got != DefaultTimeout {
		t.Errorf("negative timeout should fall back to default, got %s", got)
	}
}

func TestEvaluateEmptyString(t *testing.T) {
	for _, src := range []string{"", "   \n\t  \n  "} {
		res, evalErrs, err := NewEngine().Evaluate(src)
		if err != nil {
			t.Fatalf("unexpected fatal error: %v", err)
		}
		if len(evalErrs) > 0 {
			t.Fatalf("unexpected eval errors: %v", evalErrs)
		}
		if res == nil || res.Scene == nil {
			t.Fatal("expected non-nil scene")
		}
		if res.Scene.NodeCount() != 0 {
			t.Errorf("expected empty scene, got %d nodes", res.Scene.NodeCount())
		}
	}
}

func TestEvaluateValidExpression(t *testing.T) {
	res, evalErrs, err := NewEngine().Evaluate("(+ 1 2)")
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if res.Scene.NodeCount() != 0 {
		t.Errorf("expected empty scene, got %d nodes", res.Scene.NodeCount())
	}
	if res.Value != "3" {
		t.Errorf("value = %q, want %q", res.Value, "3")
	}
}

func TestEvaluateValuePrintsGeometry(t *testing.T) {
	source := `
(def a (vector2d 1 2))
(def b (vector2d 3 4))
(add a b)
`
	res, evalErrs, err := NewEngine().Evaluate(source)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("unexpected eval errors: %v", evalErrs)
	}
	if res.Value != "Vector2d(4, 6)" {
		t.Errorf("value = %q, want %q", res.Value, "Vector2d(4, 6)")
	}
}

func TestEvaluateSyntaxError(t *testing.T) {
	res, evalErrs, err := NewEngine().Evaluate("(+ 1 2")
	if err != nil {
		t.Fatalf("expected non-fatal eval error, got fatal: %v", err)
	}
	if res != nil {
		t.Fatal("expected nil result on syntax error")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected at least one eval error for syntax error")
	}
	if evalErrs[0].Message == "" {
		t.Error("eval error message should not be empty")
	}
}

func TestEvaluateUndefinedSymbol(t *testing.T) {
	res, evalErrs, err := NewEngine().Evaluate("(+ 1 undefined-symbol)")
	if err != nil {
		t.Fatalf("expected non-fatal eval error, got fatal: %v", err)
	}
	if res != nil {
		t.Fatal("expected nil result on eval error")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected at least one eval error for undefined symbol")
	}
}

func TestEvaluateGeometryErrorIsEvalError(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"singular matrix", `(invert (matrix2d 1 2 2 4))`, "singular"},
		{"zero direction", `(dir2d 0 0)`, "zero"},
		{"zero vector angle", `(angle (vector2d 0 0) (vector2d 1 0))`, "zero"},
		{"null scale", `(trsf-scale (point2d 0 0) 0)`, "scale"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, evalErrs, err := NewEngine().Evaluate(tt.src)
			if err != nil {
				t.Fatalf("expected non-fatal eval error, got fatal: %v", err)
			}
			if res != nil {
				t.Fatal("expected nil result")
			}
			if len(evalErrs) == 0 {
				t.Fatal("expected an eval error")
			}
			if !strings.Contains(strings.ToLower(evalErrs[0].Message), tt.want) {
				t.Errorf("message %q should mention %q", evalErrs[0].Message, tt.want)
			}
		})
	}
}

func TestEvaluateValidationFailure(t *testing.T) {
	// The cone closes at height 4, well before 10.
	source := `(defshape "spike" (cone 4 (- 0 (radians 45)) 10))`
	res, evalErrs, err := NewEngine().Evaluate(source)
	if err != nil {
		t.Fatalf("unexpected fatal error: %v", err)
	}
	if res != nil {
		t.Fatal("expected nil result for an invalid scene")
	}
	if len(evalErrs) == 0 || !strings.Contains(evalErrs[0].Message, "cone closes") {
		t.Fatalf("expected cone validation error, got %v", evalErrs)
	}
}

func TestEvaluateSyntaxErrorHasLineInfo(t *testing.T) {
	res, evalErrs, err := NewEngine().Evaluate("(+ 1 2)\n(+ 3")
	if err != nil {
		t.Fatalf("expected non-fatal eval error, got fatal: %v", err)
	}
	if res != nil {
		t.Fatal("expected nil result on syntax error")
	}
	if len(evalErrs) == 0 {
		t.Fatal("expected at least one eval error")
	}

	// Line info depends on the zygomys error format; only the message is
	// guaranteed.
	e := evalErrs[0]
	if e.Message == "" {
		t.Error("eval error message should not be empty")
	}
	if e.Line > 0 {
		t.Logf("extracted line info: line=%d, message=%q", e.Line, e.Message)
	}
}

func TestEvalErrorImplementsError(t *testing.T) {
	e := EvalError{Line: 5, Message: "something went wrong"}
	s := e.Error()
	if !strings.Contains(s, "line 5") {
		t.Errorf("Error() should contain line info, got: %s", s)
	}
	if !strings.Contains(s, "something went wrong") {
		t.Errorf("Error() should contain message, got: %s", s)
	}

	e2 := EvalError{Message: "no location"}
	if strings.Contains(e2.Error(), "line") {
		t.Errorf("Error() with no line should not contain 'line', got: %s", e2.Error())
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	eng := NewEngine()
	source := `
(defshape "ball" (sphere 5))
(group "pair" (place (shape "ball") :at (vector3d 10 0 0))
              (place (shape "ball") :at (vector3d -10 0 0)))
`
	first, evalErrs, err := eng.Evaluate(source)
	if err != nil || len(evalErrs) > 0 {
		t.Fatalf("first evaluation: err=%v evalErrs=%v", err, evalErrs)
	}
	for i := 0; i < 3; i++ {
		res, evalErrs, err := eng.Evaluate(source)
		if err != nil {
			t.Fatalf("iteration %d: unexpected fatal error: %v", i, err)
		}
		if len(evalErrs) > 0 {
			t.Fatalf("iteration %d: unexpected eval errors: %v", i, evalErrs)
		}
		if res.Scene.NodeCount() != first.Scene.NodeCount() {
			t.Fatalf("iteration %d: %d nodes, want %d", i, res.Scene.NodeCount(), first.Scene.NodeCount())
		}
		for id := range first.Scene.Nodes {
			if res.Scene.Get(id) == nil {
				t.Errorf("iteration %d: node %s missing", i, id.Short())
			}
		}
		if len(res.Scene.Roots) != 1 || res.Scene.Roots[0] != first.Scene.Roots[0] {
			t.Errorf("iteration %d: roots %v, want %v", i, res.Scene.Roots, first.Scene.Roots)
		}
	}
}

func TestEvaluateTimeout(t *testing.T) {
	var mu sync.Mutex
	var gen uint64 = 1
	ch := make(chan evalResult) // never sends

	done := make(chan struct{})
	var resultErr error
	go func() {
		defer close(done)
		_, _, resultErr = waitWithTimeout(ch, 1, &mu, &gen, 50*time.Millisecond)
	}()

	select {
	case <-done:
		if resultErr == nil {
			t.Fatal("expected timeout error, got nil")
		}
		if !strings.Contains(resultErr.Error(), "timed out") {
			t.Errorf("expected timeout error message, got: %v", resultErr)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("test itself timed out waiting for evaluation timeout")
	}
}

func TestEvaluateGenerationDiscardsStale(t *testing.T) {
	var mu sync.Mutex
	gen := uint64(2)

	ch := make(chan evalResult, 1)
	ch <- evalResult{}

	_, _, err := waitWithTimeout(ch, 1, &mu, &gen, time.Second)
	if err == nil {
		t.Fatal("expected error for stale generation")
	}
	if !strings.Contains(err.Error(), "superseded") {
		t.Errorf("expected superseded error, got: %v", err)
	}
}

func TestParseZygomysError(t *testing.T) {
	tests := []struct {
		name     string
		msg      string
		wantLine int
		wantMsg  string
	}{
		{
			name:     "error on line format",
			msg:      "Error on line 5: unexpected token\n",
			wantLine: 5,
			wantMsg:  "unexpected token",
		},
		{
			name:     "no line info",
			msg:      "some generic error",
			wantLine: 0,
			wantMsg:  "some generic error",
		},
		{
			name:     "line format lowercase",
			msg:      "error on line 12: missing paren",
			wantLine: 12,
			wantMsg:  "missing paren",
		},
		{
			name:     "short line format",
			msg:      "line 3: bad arity",
			wantLine: 3,
			wantMsg:  "bad arity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := parseZygomysError(errString(tt.msg))
			if len(errs) == 0 {
				t.Fatal("expected at least one error")
			}
			e := errs[0]
			if e.Line != tt.wantLine {
				t.Errorf("line = %d, want %d", e.Line, tt.wantLine)
			}
			if !strings.Contains(e.Message, tt.wantMsg) {
				t.Errorf("message = %q, want containing %q", e.Message, tt.wantMsg)
			}
		})
	}
}

// errString is a simple error type for testing.
type errString string

func (e errString) Error() string { return string(e) }

func TestEvaluateSceneDebugLog(t *testing.T) {
	tests := []struct {
		name  string
		level slog.Level
		want  bool
	}{
		{"debug", slog.LevelDebug, true},
		{"info", slog.LevelInfo, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logging.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: tt.level})))
			defer logging.SetLogger(nil)

			_, errs, err := NewEngine().Evaluate(`(defshape "a" (box 1 1 1)) (defshape "b" (sphere 2))`)
			if err != nil || len(errs) > 0 {
				t.Fatalf("Evaluate: %v %v", errs, err)
			}
			out := buf.String()
			if got := strings.Contains(out, "scene built"); got != tt.want {
				t.Fatalf("scene summary logged = %v, want %v (log: %s)", got, tt.want, out)
			}
			if tt.want && !strings.Contains(out, "shapes=2") {
				t.Errorf("summary missing shape count: %s", out)
			}
		})
	}
}

func TestEvaluateBooleans(t *testing.T) {
	res, errs, err := NewEngine().Evaluate(`
(defshape "plate" (box 30 30 4))
(difference (shape "plate")
            (place (cylinder 3 10) :at (vector3d 15 15 -2))
            :name "washer")
`)
	if err != nil || len(errs) > 0 {
		t.Fatalf("Evaluate: %v %v", errs, err)
	}
	washer := res.Scene.Lookup("washer")
	if washer == nil {
		t.Fatal("washer not in scene")
	}
	if len(res.Scene.Roots) != 1 || res.Scene.Roots[0] != washer.ID {
		t.Errorf("roots = %v, want only the washer", res.Scene.Roots)
	}

	// An operand that reaches no shape fails validation.
	_, errs, err = NewEngine().Evaluate(`(union (group "empty") (sphere 1))`)
	if err != nil {
		t.Fatal(err)
	}
	if len(errs) == 0 || !strings.Contains(errs[0].Message, "union operand 1 contains no shape") {
		t.Errorf("errors = %v", errs)
	}
}

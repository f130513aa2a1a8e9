package main

import (
	"fmt"
	"math"
	"os"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// 1. Empty editor: empty string -> 0 meshes, 0 errors.
// ---------------------------------------------------------------------------

func TestE2EEmptySourceExtended(t *testing.T) {
	app := newTestApp()
	result := app.Evaluate("")

	if len(result.Errors) != 0 {
		t.Errorf("expected 0 errors for empty source, got %d", len(result.Errors))
	}
	if len(result.Meshes) != 0 {
		t.Errorf("expected 0 meshes for empty source, got %d", len(result.Meshes))
	}
	if len(result.Warnings) != 0 {
		t.Errorf("expected 0 warnings for empty source, got %d", len(result.Warnings))
	}
	// Slices must be non-nil so JSON serializes them as [].
	if result.Meshes == nil {
		t.Error("Meshes should be non-nil empty slice, got nil")
	}
	if result.Errors == nil {
		t.Error("Errors should be non-nil empty slice, got nil")
	}
	if result.Warnings == nil {
		t.Error("Warnings should be non-nil empty slice, got nil")
	}
}

func TestE2EWhitespaceAndComments(t *testing.T) {
	sources := map[string]string{
		"whitespace": "   \n\t\n  ",
		"comments":   ";; a comment\n; another\n",
		"mixed":      "\n  ; indented comment\n\n",
	}
	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			result := newTestApp().Evaluate(src)
			if len(result.Errors) > 0 {
				t.Errorf("unexpected errors: %v", result.Errors)
			}
			if len(result.Meshes) != 0 {
				t.Errorf("expected 0 meshes, got %d", len(result.Meshes))
			}
		})
	}
}

// ---------------------------------------------------------------------------
// 2. Syntax errors: unmatched parens -> eval error, 0 meshes.
// ---------------------------------------------------------------------------

func TestE2ESyntaxErrorWithLineInfo(t *testing.T) {
	app := newTestApp()

	// Valid code on line 1, broken code on line 2 so line info is meaningful.
	result := app.Evaluate("(+ 1 2)\n(defshape \"test\"")

	if len(result.Errors) == 0 {
		t.Fatal("expected at least one eval error for unmatched parens")
	}
	if len(result.Meshes) != 0 {
		t.Errorf("expected 0 meshes on syntax error, got %d", len(result.Meshes))
	}
	e := result.Errors[0]
	if e.Message == "" {
		t.Error("syntax error should have a non-empty message")
	}
	t.Logf("syntax error: line=%d, col=%d, message=%q", e.Line, e.Col, e.Message)
}

func TestE2ESyntaxErrorSingleLineMissingParen(t *testing.T) {
	result := newTestApp().Evaluate("(+ 1 2")

	if len(result.Errors) == 0 {
		t.Fatal("expected eval error for missing closing paren")
	}
	if result.Errors[0].Message == "" {
		t.Error("error message should not be empty")
	}
}

// ---------------------------------------------------------------------------
// 3. Undefined shape reference -> eval error naming the shape.
// ---------------------------------------------------------------------------

func TestE2EUndefinedShapeReference(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name: "inside group",
			source: `
(defshape "shelf" (box 60 30 2))

(group "unit"
  (place (shape "nonexistent") :at (vector3d 0 0 0)))
`,
			want: "nonexistent",
		},
		{
			name:   "standalone",
			source: `(shape "ghost")`,
			want:   "ghost",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := newTestApp().Evaluate(tt.source)
			if len(result.Errors) == 0 {
				t.Fatal("expected eval error for undefined shape")
			}
			found := false
			for _, e := range result.Errors {
				if strings.Contains(e.Message, "no shape named") && strings.Contains(e.Message, tt.want) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("expected error mentioning %q, got: %v", tt.want, result.Errors)
			}
			if len(result.Meshes) != 0 {
				t.Errorf("expected 0 meshes on error, got %d", len(result.Meshes))
			}
		})
	}
}

// ---------------------------------------------------------------------------
// 4. Degenerate descriptors are rejected before tessellation.
// ---------------------------------------------------------------------------

func TestE2EDegenerateShapes(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"zero box", `(defshape "bad" (box 0 10 10))`, "must be positive"},
		{"negative box", `(defshape "bad" (box -5 10 10))`, "must be positive"},
		{"zero sphere", `(defshape "bad" (sphere 0))`, "radius"},
		{"torus minor too big", `(defshape "bad" (torus 2 5))`, "torus"},
		{"flat cone", `(defshape "bad" (cone 4 0 10))`, "semi-angle"},
		{"closing cone", `(defshape "bad" (cone 1 -0.5 10))`, "closes before height"},
		{"zero prism", `(defshape "bad" (prism (circle 3) 0))`, "height"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := newTestApp().Evaluate(tt.source)
			if len(result.Errors) == 0 {
				t.Fatalf("expected an error, got %d meshes", len(result.Meshes))
			}
			if !strings.Contains(result.Errors[0].Message, tt.want) {
				t.Errorf("error %q does not contain %q", result.Errors[0].Message, tt.want)
			}
			if len(result.Meshes) != 0 {
				t.Errorf("expected 0 meshes, got %d", len(result.Meshes))
			}
		})
	}
}

// ---------------------------------------------------------------------------
// 5. Rapid evaluation: the engine recovers cleanly between error and
//    success states.
// ---------------------------------------------------------------------------

func TestE2ERapidEvaluationAlternating(t *testing.T) {
	app := newTestApp()

	sources := []struct {
		src    string
		meshes int
		fails  bool
	}{
		{`(defshape "ok" (box 10 5 1))`, 1, false},
		{`(defshape "broken"`, 0, true},
		{``, 0, false},
		{`(shape "missing")`, 0, true},
		{`(defshape "also-ok" (sphere 3))`, 1, false},
		{`(+ 1 2)`, 0, false},
		{`;; just a comment`, 0, false},
		{`(undefined-func 1 2 3)`, 0, true},
		{`(defshape "last" (cylinder 2 6))`, 1, false},
	}

	for i, s := range sources {
		result := app.Evaluate(s.src)
		if got := len(result.Errors) > 0; got != s.fails {
			t.Errorf("iteration %d (%q): errors = %v", i, s.src, result.Errors)
		}
		if len(result.Meshes) != s.meshes {
			t.Errorf("iteration %d (%q): %d meshes, want %d", i, s.src, len(result.Meshes), s.meshes)
		}
	}
}

// ---------------------------------------------------------------------------
// 6. Scale: marching cubes adapts to the bounding box.
// ---------------------------------------------------------------------------

func TestE2ELargeDimensions(t *testing.T) {
	result := newTestApp().Evaluate(`(defshape "huge" (sphere 10000))`)
	requireNoErrors(t, result)

	if len(result.Meshes) != 1 {
		t.Fatalf("expected 1 mesh, got %d", len(result.Meshes))
	}
	m := result.Meshes[0]
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		t.Error("large sphere mesh should have geometry")
	}
	if m.PartName != "huge" {
		t.Errorf("expected part name 'huge', got %q", m.PartName)
	}
}

// ---------------------------------------------------------------------------
// 7. Groups: roots, shared shapes, empty groups.
// ---------------------------------------------------------------------------

func TestE2EMultipleGroups(t *testing.T) {
	source := `
(defshape "shelf-a" (box 60 30 2))
(defshape "shelf-b" (box 40 20 2))

(group "unit-a"
  (place (shape "shelf-a") :at (vector3d 0 0 0)))

(group "unit-b"
  (place (shape "shelf-b") :at (vector3d 70 0 0)))
`
	result := newTestApp().Evaluate(source)
	requireNoErrors(t, result)

	if len(result.Meshes) != 2 {
		t.Fatalf("expected 2 meshes from two groups, got %d", len(result.Meshes))
	}
	if result.Meshes[0].PartName != "shelf-a" || result.Meshes[1].PartName != "shelf-b" {
		t.Errorf("mesh order: %q, %q", result.Meshes[0].PartName, result.Meshes[1].PartName)
	}
	if result.Meshes[0].Color == result.Meshes[1].Color {
		t.Error("adjacent meshes share a color")
	}
}

func TestE2EGroupsWithSharedShapes(t *testing.T) {
	source := `
(defshape "panel" (box 30 20 2))
(defshape "rail" (box 30 5 2))

(group "frame-a"
  (place (shape "panel") :at (vector3d 0 0 0))
  (place (shape "rail")  :at (vector3d 0 20 0)))

(group "frame-b"
  (place (shape "panel") :at (vector3d 50 0 0))
  (place (shape "rail")  :at (vector3d 50 20 0)))
`
	result := newTestApp().Evaluate(source)
	requireNoErrors(t, result)

	if len(result.Meshes) != 4 {
		t.Fatalf("expected 4 meshes from two groups sharing shapes, got %d", len(result.Meshes))
	}
}

func TestE2EEmptyGroup(t *testing.T) {
	result := newTestApp().Evaluate(`(group "nothing")`)
	requireNoErrors(t, result)

	if len(result.Meshes) != 0 {
		t.Errorf("expected 0 meshes for an empty group, got %d", len(result.Meshes))
	}
}

func TestE2EDuplicateShapeName(t *testing.T) {
	source := `
(defshape "twin" (box 1 1 1))
(defshape "twin" (sphere 1))
`
	result := newTestApp().Evaluate(source)
	if len(result.Errors) == 0 {
		t.Fatal("expected an error for a duplicate shape name")
	}
	if !strings.Contains(result.Errors[0].Message, "already defined") {
		t.Errorf("unexpected error: %s", result.Errors[0].Message)
	}
}

func TestE2ENoEffectPlacementWarns(t *testing.T) {
	source := `
(defshape "b" (box 2 2 2))
(place (shape "b"))
`
	result := newTestApp().Evaluate(source)
	requireNoErrors(t, result)

	if len(result.Warnings) == 0 {
		t.Fatal("expected a warning for a placement with no effect")
	}
	if !strings.Contains(result.Warnings[0].Message, "has no effect") {
		t.Errorf("unexpected warning: %s", result.Warnings[0].Message)
	}
	if len(result.Meshes) != 1 {
		t.Errorf("expected 1 mesh, got %d", len(result.Meshes))
	}
}

// ---------------------------------------------------------------------------
// 8. Arithmetic feeds shape dimensions.
// ---------------------------------------------------------------------------

func TestE2EArithmeticDimensions(t *testing.T) {
	source := `
(def width 40)
(def depth (/ width 2))
(def wall (* 0.5 (- depth 16)))
(defshape "tray" (box width depth (+ wall 1)))
(defshape "pin" (cylinder (/ wall 2) (* depth 0.25)))
`
	result := newTestApp().Evaluate(source)
	requireNoErrors(t, result)

	if len(result.Meshes) != 2 {
		t.Fatalf("expected 2 meshes, got %d", len(result.Meshes))
	}
}

func TestE2EGeometryDrivesPlacement(t *testing.T) {
	// The placement offset comes from planar geometry evaluated in script.
	source := `
(def v (vector2d (point2d 0 0) (point2d 30 40)))
(def d (length v))
(defshape "ball" (sphere 5))
(place (shape "ball") :at (vector3d d 0 0))
`
	result := newTestApp().Evaluate(source)
	requireNoErrors(t, result)

	if len(result.Meshes) != 1 {
		t.Fatalf("expected 1 mesh, got %d", len(result.Meshes))
	}
	m := result.Meshes[0]
	var sum float64
	n := len(m.Vertices) / 3
	for i := 0; i < n; i++ {
		sum += float64(m.Vertices[3*i])
	}
	if cx := sum / float64(n); cx < 48 || cx > 52 {
		t.Errorf("mean x = %.2f, want about 50", cx)
	}
}

func TestE2EGeometryErrorsSurface(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"singular", `(invert (matrix2d 1 2 2 4))`, "singular"},
		{"zero direction", `(dir2d 0 0)`, "zero length"},
		{"null scale", `(invert (trsf-scale (point2d 0 0) 0))`, "scale factor is zero"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := newTestApp().Evaluate(tt.source)
			if len(result.Errors) == 0 {
				t.Fatal("expected an error")
			}
			if !strings.Contains(result.Errors[0].Message, tt.want) {
				t.Errorf("error %q does not contain %q", result.Errors[0].Message, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// 9. Color palette wraps when there are more meshes than colors.
// ---------------------------------------------------------------------------

func TestE2EColorPaletteWrapping(t *testing.T) {
	var b strings.Builder
	n := len(colorPalette) + 1
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "(defshape \"p%d\" (box 10 5 2))\n", i)
	}
	var places []string
	for i := 0; i < n; i++ {
		places = append(places, fmt.Sprintf("(place (shape \"p%d\") :at (vector3d 0 0 %d))", i, i*5))
	}
	fmt.Fprintf(&b, "(group \"many\" %s)\n", strings.Join(places, " "))

	result := newTestApp().Evaluate(b.String())
	requireNoErrors(t, result)

	if len(result.Meshes) != n {
		t.Fatalf("expected %d meshes, got %d", n, len(result.Meshes))
	}
	for i, m := range result.Meshes {
		want := colorPalette[i%len(colorPalette)]
		if m.Color != want {
			t.Errorf("mesh %d: color %q, want %q", i, m.Color, want)
		}
	}
	if result.Meshes[0].Color != result.Meshes[len(colorPalette)].Color {
		t.Error("palette should wrap around")
	}
}

// ---------------------------------------------------------------------------
// 10. Booleans produce one mesh for the combined solid.
// ---------------------------------------------------------------------------

func TestE2ECupExample(t *testing.T) {
	source, err := os.ReadFile("examples/cup.geom")
	if err != nil {
		t.Fatalf("failed to read cup.geom: %v", err)
	}
	result := newTestApp().Evaluate(string(source))
	requireNoErrors(t, result)

	if len(result.Meshes) != 1 {
		t.Fatalf("expected 1 mesh, got %d", len(result.Meshes))
	}
	m := result.Meshes[0]
	if m.PartName != "cup" {
		t.Errorf("PartName = %q, want cup", m.PartName)
	}

	// The rounded outside stays within radius 15 of the cup axis.
	for i := 0; i+2 < len(m.Vertices); i += 3 {
		dx, dy := float64(m.Vertices[i])-15, float64(m.Vertices[i+1])-15
		if r := math.Hypot(dx, dy); r > 16 {
			t.Fatalf("vertex %d at radius %.2f, outside the cup", i/3, r)
		}
	}
}

func TestE2EBooleanErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"one operand", `(union (sphere 1))`, "at least two operands"},
		{"empty operand", `(difference (sphere 1) (group "nothing"))`, "operand 2 contains no shape"},
		{"bad operand", `(intersection (sphere 1) 4)`, "expected shape or node reference"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := newTestApp().Evaluate(tt.source)
			if len(result.Errors) == 0 {
				t.Fatal("expected an error")
			}
			if !strings.Contains(result.Errors[0].Message, tt.want) {
				t.Errorf("error %q does not contain %q", result.Errors[0].Message, tt.want)
			}
		})
	}
}

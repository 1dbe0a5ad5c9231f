package scene

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/baronauta/RayTracer-sub001/pkg/core"
	"github.com/baronauta/RayTracer-sub001/pkg/geometry"
	"github.com/baronauta/RayTracer-sub001/pkg/renderer"
)

func parseString(t *testing.T, input string, extVariables map[string]float64) *Scene {
	t.Helper()
	sc, err := ParseScene(NewInputStream(strings.NewReader(input), "test"), extVariables)
	if err != nil {
		t.Fatalf("ParseScene: %v", err)
	}
	return sc
}

func parseError(t *testing.T, input string) error {
	t.Helper()
	_, err := ParseScene(NewInputStream(strings.NewReader(input), "test"), nil)
	if err == nil {
		t.Fatal("ParseScene accepted malformed input")
	}
	return err
}

func TestParseScene(t *testing.T) {
	input := `
	float clock(150)

	material sky_material(
	    diffuse(uniform(<0, 0, 0>)),
	    uniform(<0.7, 0.5, 1>)
	)
	material ground_material(
	    diffuse(checkered(<0.3, 0.5, 0.1>, <0.1, 0.2, 0.5>, 4)),
	    uniform(<0, 0, 0>)
	)

	plane sky(sky_material, translation([0, 0, 100]) * rotation_y(clock))
	plane ground(ground_material, identity)
	sphere ball(sky_material, translation([0, 0, 1]))

	camera(perspective, rotation_z(30) * translation([-4, 0, 1]), 2.0)
	`
	sc := parseString(t, input, nil)

	if got := sc.FloatVariables["clock"]; got != 150 {
		t.Errorf("clock = %g, want 150", got)
	}
	if len(sc.Materials) != 2 {
		t.Errorf("got %d materials", len(sc.Materials))
	}
	if len(sc.World.Shapes) != 3 {
		t.Fatalf("got %d world shapes", len(sc.World.Shapes))
	}
	if _, ok := sc.World.Shapes[2].(*geometry.Sphere); !ok {
		t.Errorf("third shape is %T, want *geometry.Sphere", sc.World.Shapes[2])
	}

	cam, ok := sc.Camera.(*renderer.PerspectiveCamera)
	if !ok {
		t.Fatalf("camera is %T, want *renderer.PerspectiveCamera", sc.Camera)
	}
	if cam.ScreenDistance != 2.0 {
		t.Errorf("screen distance = %g, want 2", cam.ScreenDistance)
	}

	// The sphere transform resolves to the declared translation
	ball := sc.World.Shapes[2]
	if !ball.Transform().IsClose(core.Translation(core.NewVec(0, 0, 1)), 1e-9) {
		t.Error("ball transform mismatch")
	}
}

func TestParseTransformationOrder(t *testing.T) {
	input := `
	material m(diffuse(uniform(<1, 1, 1>)), uniform(<0, 0, 0>))
	sphere s(m, translation([10, 0, 0]) * rotation_z(90))
	camera(orthogonal, identity)
	`
	sc := parseString(t, input, nil)

	// Rightmost factor applies first: rotate, then translate
	got := sc.World.Shapes[0].Transform().ApplyPoint(core.NewPoint(1, 0, 0))
	if !got.IsClose(core.NewPoint(10, 1, 0), 1e-9) {
		t.Errorf("transformed point = %v, want (10, 1, 0)", got)
	}
}

func TestParseFloatOverride(t *testing.T) {
	input := `
	float clock(150)
	material m(diffuse(uniform(<1, 1, 1>)), uniform(<0, 0, 0>))
	sphere s(m, rotation_z(clock))
	camera(orthogonal, identity)
	`
	sc := parseString(t, input, map[string]float64{"clock": 90})

	if got := sc.FloatVariables["clock"]; got != 90 {
		t.Errorf("overridden clock = %g, want 90", got)
	}
	got := sc.World.Shapes[0].Transform().ApplyVec(core.NewVec(1, 0, 0))
	if !got.IsClose(core.NewVec(0, 1, 0), 1e-9) {
		t.Errorf("rotation uses %v, want the external 90-degree value", got)
	}
}

func TestParseCSGConsumesOperands(t *testing.T) {
	input := `
	material m(diffuse(uniform(<1, 1, 1>)), uniform(<0, 0, 0>))
	sphere a(m, identity)
	sphere b(m, translation([0, 0, 0.5]))
	csg c(a, b, union, identity)
	camera(orthogonal, identity)
	`
	sc := parseString(t, input, nil)

	// a and b left the world when c took ownership
	if len(sc.World.Shapes) != 1 {
		t.Fatalf("got %d world shapes, want 1", len(sc.World.Shapes))
	}
	csg, ok := sc.World.Shapes[0].(*geometry.CSG)
	if !ok {
		t.Fatalf("world shape is %T, want *geometry.CSG", sc.World.Shapes[0])
	}
	if csg.Name() != "c" || csg.Op() != geometry.Union {
		t.Errorf("csg = %q op %v", csg.Name(), csg.Op())
	}
	left, right := csg.Children()
	if left.Name() != "a" || right.Name() != "b" {
		t.Errorf("children = %q, %q", left.Name(), right.Name())
	}
}

func TestParseCopyRestoresConsumedShape(t *testing.T) {
	input := `
	material m(diffuse(uniform(<1, 1, 1>)), uniform(<0, 0, 0>))
	sphere a(m, identity)
	sphere b(m, translation([0, 0, 0.5]))
	csg c(a, b, difference, identity)
	copy a2(a)
	camera(orthogonal, identity)
	`
	sc := parseString(t, input, nil)

	if len(sc.World.Shapes) != 2 {
		t.Fatalf("got %d world shapes, want 2", len(sc.World.Shapes))
	}
	if got := sc.World.Shapes[1].Name(); got != "a2" {
		t.Errorf("copied shape name = %q", got)
	}
}

func TestParseCopyOfCSG(t *testing.T) {
	input := `
	material m(diffuse(uniform(<1, 1, 1>)), uniform(<0, 0, 0>))
	sphere a(m, identity)
	sphere b(m, translation([0, 0, 0.5]))
	csg c(a, b, fusion, identity)
	copy c2(c)
	camera(orthogonal, identity)
	`
	sc := parseString(t, input, nil)

	if len(sc.World.Shapes) != 2 {
		t.Fatalf("got %d world shapes, want 2", len(sc.World.Shapes))
	}
	clone, ok := sc.World.Shapes[1].(*geometry.CSG)
	if !ok || clone.Name() != "c2" || clone.Op() != geometry.Fusion {
		t.Errorf("clone = %T %q", sc.World.Shapes[1], sc.World.Shapes[1].Name())
	}
}

func TestParseNestedCSG(t *testing.T) {
	input := `
	material m(diffuse(uniform(<1, 1, 1>)), uniform(<0, 0, 0>))
	sphere a(m, identity)
	sphere b(m, translation([0, 0, 0.5]))
	cube box(m, identity)
	csg inner(a, b, intersection, identity)
	csg outer(inner, box, difference, identity)
	camera(orthogonal, identity)
	`
	sc := parseString(t, input, nil)

	if len(sc.World.Shapes) != 1 {
		t.Fatalf("got %d world shapes, want 1", len(sc.World.Shapes))
	}
	outer := sc.World.Shapes[0].(*geometry.CSG)
	left, _ := outer.Children()
	if _, ok := left.(*geometry.CSG); !ok {
		t.Errorf("left child is %T, want a nested *geometry.CSG", left)
	}
}

func TestParseMotion(t *testing.T) {
	input := `
	material m(diffuse(uniform(<1, 1, 1>)), uniform(<0, 0, 0>))
	sphere s(m, identity)
	camera(orthogonal, identity)
	motion(rotation_z(12) * translation([0.1, 0, 0]), 30)
	`
	sc := parseString(t, input, nil)

	if sc.Motion == nil {
		t.Fatal("motion missing")
	}
	if sc.Motion.NumFrames != 30 {
		t.Errorf("frames = %d, want 30", sc.Motion.NumFrames)
	}
}

func TestParseMissingCamera(t *testing.T) {
	input := `
	material m(diffuse(uniform(<1, 1, 1>)), uniform(<0, 0, 0>))
	sphere s(m, identity)
	`
	err := parseError(t, input)
	var confErr *core.ConfigurationError
	if !errors.As(err, &confErr) {
		t.Errorf("error type = %T, want *core.ConfigurationError", err)
	}
}

func TestParseGrammarErrors(t *testing.T) {
	const prelude = `
	material m(diffuse(uniform(<1, 1, 1>)), uniform(<0, 0, 0>))
	sphere a(m, identity)
	sphere b(m, identity)
	`
	tests := []struct {
		name  string
		input string
	}{
		{"unknown material", `sphere s(nope, identity) camera(orthogonal, identity)`},
		{"unknown float", prelude + `sphere s(m, rotation_z(undeclared)) camera(orthogonal, identity)`},
		{"duplicate shape", prelude + `sphere a(m, identity) camera(orthogonal, identity)`},
		{"duplicate material", prelude + `material m(diffuse(uniform(<1, 1, 1>)), uniform(<0, 0, 0>)) camera(orthogonal, identity)`},
		{"duplicate camera", prelude + `camera(orthogonal, identity) camera(orthogonal, identity)`},
		{"unknown csg operand", prelude + `csg c(a, ghost, union, identity) camera(orthogonal, identity)`},
		{"operand used twice", prelude + `csg c(a, b, union, identity) csg d(a, b, union, identity) camera(orthogonal, identity)`},
		{"fractional frame count", prelude + `camera(orthogonal, identity) motion(identity, 2.5)`},
		{"negative frame count", prelude + `camera(orthogonal, identity) motion(identity, -3)`},
		{"reserved shape keyword", prelude + `shape s(m, identity) camera(orthogonal, identity)`},
		{"missing parenthesis", `float x(1`},
		{"number where identifier expected", `sphere 42(m, identity)`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parseError(t, tt.input)
			var grammarErr *GrammarError
			if !errors.As(err, &grammarErr) {
				t.Fatalf("error type = %T, want *GrammarError", err)
			}
			if grammarErr.Location.FileName != "test" {
				t.Errorf("error location = %v", grammarErr.Location)
			}
		})
	}
}

func TestParseErrorReportsLocation(t *testing.T) {
	// The stray token sits on line 2
	err := parseError(t, "float x(1)\n]")
	var grammarErr *GrammarError
	if !errors.As(err, &grammarErr) {
		t.Fatalf("error type = %T", err)
	}
	if grammarErr.Location.Line != 2 || grammarErr.Location.Col != 1 {
		t.Errorf("error at %v, want test:2:1", grammarErr.Location)
	}
}

func TestParseFloatDeclIgnoredWhenOverridden(t *testing.T) {
	input := `
	float angle(180)
	material m(diffuse(uniform(<1, 1, 1>)), uniform(<0, 0, 0>))
	sphere s(m, identity)
	camera(perspective, rotation_z(angle), 1.0)
	`
	sc := parseString(t, input, map[string]float64{"angle": 45})
	if got := sc.FloatVariables["angle"]; math.Abs(got-45) > 1e-12 {
		t.Errorf("angle = %g, want the external 45", got)
	}
}

func TestParseOrthogonalCamera(t *testing.T) {
	input := `
	material m(diffuse(uniform(<1, 1, 1>)), uniform(<0, 0, 0>))
	sphere s(m, identity)
	camera(orthogonal, translation([-2, 0, 0]))
	`
	sc := parseString(t, input, nil)

	cam, ok := sc.Camera.(*renderer.OrthogonalCamera)
	if !ok {
		t.Fatalf("camera is %T, want *renderer.OrthogonalCamera", sc.Camera)
	}
	ray := cam.FireRay(0, 0)
	if !ray.Origin.IsClose(core.NewPoint(-3, 0, 0), 1e-9) {
		t.Errorf("camera origin = %v", ray.Origin)
	}
}

package cmd

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/baronauta/RayTracer-sub001/pkg/geometry"
	"github.com/baronauta/RayTracer-sub001/pkg/renderer"
)

// Inspect parses a scene file and prints its symbol tables, which is
// handy for debugging scene descriptions without rendering them.
func Inspect(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene file argument")
	}

	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}

	floatTable := tablewriter.NewWriter(os.Stdout)
	floatTable.SetHeader([]string{"Float variable", "Value"})
	names := make([]string, 0, len(sc.FloatVariables))
	for name := range sc.FloatVariables {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		floatTable.Append([]string{name, fmt.Sprintf("%g", sc.FloatVariables[name])})
	}
	floatTable.Render()

	shapeTable := tablewriter.NewWriter(os.Stdout)
	shapeTable.SetHeader([]string{"Shape", "Kind"})
	for _, shape := range sc.World.Shapes {
		shapeTable.Append([]string{shape.Name(), shapeKind(shape)})
	}
	shapeTable.Render()

	fmt.Printf("camera: %s\n", cameraKind(sc.Camera))
	if sc.Motion != nil {
		fmt.Printf("motion: %d frames\n", sc.Motion.NumFrames)
	} else {
		fmt.Println("motion: none (single frame)")
	}
	return nil
}

func shapeKind(shape geometry.Shape) string {
	switch s := shape.(type) {
	case *geometry.Sphere:
		return "sphere"
	case *geometry.Plane:
		return "plane"
	case *geometry.Cube:
		return "cube"
	case *geometry.CSG:
		left, right := s.Children()
		return fmt.Sprintf("csg %s(%s, %s)", s.Op(), left.Name(), right.Name())
	}
	return "unknown"
}

func cameraKind(camera renderer.Camera) string {
	switch c := camera.(type) {
	case *renderer.PerspectiveCamera:
		return fmt.Sprintf("perspective (screen distance %g)", c.ScreenDistance)
	case *renderer.OrthogonalCamera:
		return "orthogonal"
	}
	return "unknown"
}

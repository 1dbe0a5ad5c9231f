package scene

import (
	"fmt"
	"os"

	"github.com/baronauta/RayTracer-sub001/pkg/core"
	"github.com/baronauta/RayTracer-sub001/pkg/geometry"
	"github.com/baronauta/RayTracer-sub001/pkg/hdr"
	"github.com/baronauta/RayTracer-sub001/pkg/log"
	"github.com/baronauta/RayTracer-sub001/pkg/material"
	"github.com/baronauta/RayTracer-sub001/pkg/renderer"
)

var logger = log.New("scene")

// Scene is the parsed result: the world, the camera, the optional camera
// motion and the resolved float-variable table
type Scene struct {
	World          *geometry.World
	Camera         renderer.Camera
	Motion         *renderer.Motion
	Materials      map[string]material.Material
	FloatVariables map[string]float64
}

// Parser holds the symbol tables of a single parse invocation. It is
// never shared: repeated parses in the same process are independent.
type Parser struct {
	stream      *InputStream
	overridden  map[string]bool
	floats      map[string]float64
	materials   map[string]material.Material
	shapes      map[string]geometry.Shape
	consumed    map[string]bool
	worldShapes []geometry.Shape
	camera      renderer.Camera
	motion      *renderer.Motion
}

// ParseScene reads a full scene description from the stream. Entries of
// extVariables override in-file float declarations of the same name.
func ParseScene(stream *InputStream, extVariables map[string]float64) (*Scene, error) {
	p := &Parser{
		stream:     stream,
		overridden: make(map[string]bool),
		floats:     make(map[string]float64),
		materials:  make(map[string]material.Material),
		shapes:     make(map[string]geometry.Shape),
		consumed:   make(map[string]bool),
	}
	for name, value := range extVariables {
		p.floats[name] = value
		p.overridden[name] = true
	}

	if err := p.parseStatements(); err != nil {
		return nil, err
	}

	if p.camera == nil {
		return nil, &core.ConfigurationError{Reason: "scene defines no camera"}
	}

	world := geometry.NewWorld()
	for _, shape := range p.worldShapes {
		world.AddShape(shape)
	}
	return &Scene{
		World:          world,
		Camera:         p.camera,
		Motion:         p.motion,
		Materials:      p.materials,
		FloatVariables: p.floats,
	}, nil
}

// ParseSceneFile opens and parses the scene file at the given path
func ParseSceneFile(path string, extVariables map[string]float64) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseScene(NewInputStream(f, path), extVariables)
}

// parseStatements drives the top-level statement loop
func (p *Parser) parseStatements() error {
	for {
		token, err := p.stream.ReadToken()
		if err != nil {
			return err
		}
		if token.Kind == EOFToken {
			return nil
		}
		if token.Kind != KeywordToken {
			return p.errorf(token, "expected a top-level statement, found %s", token.Describe())
		}

		switch token.Keyword {
		case KwFloat:
			err = p.parseFloatDecl()
		case KwMaterial:
			err = p.parseMaterialDecl()
		case KwSphere, KwPlane, KwCube:
			err = p.parseShapeDecl(token.Keyword)
		case KwShape:
			return p.errorf(token, `"shape" is reserved; declare a concrete sphere, plane or cube`)
		case KwCSG:
			err = p.parseCSGDecl()
		case KwCopy:
			err = p.parseCopyDecl()
		case KwCamera:
			err = p.parseCameraDecl(token)
		case KwMotion:
			err = p.parseMotionDecl(token)
		default:
			return p.errorf(token, "unsupported %s at top level", token.Describe())
		}
		if err != nil {
			return err
		}
	}
}

// --- token expectations -------------------------------------------------

func (p *Parser) errorf(token Token, format string, args ...interface{}) error {
	return &GrammarError{Location: token.Location, Message: fmt.Sprintf(format, args...)}
}

func (p *Parser) expectSymbol(symbol byte) error {
	token, err := p.stream.ReadToken()
	if err != nil {
		return err
	}
	if token.Kind != SymbolToken || token.Symbol != symbol {
		return p.errorf(token, "expected %q, found %s", string(symbol), token.Describe())
	}
	return nil
}

func (p *Parser) expectKeywords(candidates ...Keyword) (Keyword, error) {
	token, err := p.stream.ReadToken()
	if err != nil {
		return 0, err
	}
	if token.Kind == KeywordToken {
		for _, kw := range candidates {
			if token.Keyword == kw {
				return kw, nil
			}
		}
	}

	expected := ""
	for i, kw := range candidates {
		if i > 0 {
			expected += " or "
		}
		expected += fmt.Sprintf("%q", keywordNames[kw])
	}
	return 0, p.errorf(token, "expected %s, found %s", expected, token.Describe())
}

// expectNumber accepts a numeric literal or a float-variable reference
func (p *Parser) expectNumber() (float64, error) {
	token, err := p.stream.ReadToken()
	if err != nil {
		return 0, err
	}
	switch token.Kind {
	case NumberToken:
		return token.Number, nil
	case IdentifierToken:
		value, defined := p.floats[token.Identifier]
		if !defined {
			return 0, p.errorf(token, "unknown float variable %q", token.Identifier)
		}
		return value, nil
	}
	return 0, p.errorf(token, "expected a number, found %s", token.Describe())
}

func (p *Parser) expectString() (string, error) {
	token, err := p.stream.ReadToken()
	if err != nil {
		return "", err
	}
	if token.Kind != StringToken {
		return "", p.errorf(token, "expected a string, found %s", token.Describe())
	}
	return token.Str, nil
}

func (p *Parser) expectIdentifier() (string, Token, error) {
	token, err := p.stream.ReadToken()
	if err != nil {
		return "", token, err
	}
	if token.Kind != IdentifierToken {
		return "", token, p.errorf(token, "expected an identifier, found %s", token.Describe())
	}
	return token.Identifier, token, nil
}

// --- literal values -----------------------------------------------------

// parseVector parses a 3-vector literal [x, y, z]
func (p *Parser) parseVector() (core.Vec, error) {
	var components [3]float64
	if err := p.expectSymbol('['); err != nil {
		return core.Vec{}, err
	}
	for i := 0; i < 3; i++ {
		if i > 0 {
			if err := p.expectSymbol(','); err != nil {
				return core.Vec{}, err
			}
		}
		value, err := p.expectNumber()
		if err != nil {
			return core.Vec{}, err
		}
		components[i] = value
	}
	if err := p.expectSymbol(']'); err != nil {
		return core.Vec{}, err
	}
	return core.NewVec(components[0], components[1], components[2]), nil
}

// parseColor parses a color literal <r, g, b>
func (p *Parser) parseColor() (core.Color, error) {
	var channels [3]float64
	if err := p.expectSymbol('<'); err != nil {
		return core.Color{}, err
	}
	for i := 0; i < 3; i++ {
		if i > 0 {
			if err := p.expectSymbol(','); err != nil {
				return core.Color{}, err
			}
		}
		value, err := p.expectNumber()
		if err != nil {
			return core.Color{}, err
		}
		channels[i] = value
	}
	if err := p.expectSymbol('>'); err != nil {
		return core.Color{}, err
	}
	return core.NewColor(channels[0], channels[1], channels[2]), nil
}

// --- pigments, BRDFs, materials ----------------------------------------

func (p *Parser) parsePigment() (material.Pigment, error) {
	kw, err := p.expectKeywords(KwUniform, KwCheckered, KwImage)
	if err != nil {
		return nil, err
	}
	if err := p.expectSymbol('('); err != nil {
		return nil, err
	}

	var pigment material.Pigment
	switch kw {
	case KwUniform:
		color, err := p.parseColor()
		if err != nil {
			return nil, err
		}
		pigment = material.NewUniformPigment(color)

	case KwCheckered:
		color1, err := p.parseColor()
		if err != nil {
			return nil, err
		}
		if err := p.expectSymbol(','); err != nil {
			return nil, err
		}
		color2, err := p.parseColor()
		if err != nil {
			return nil, err
		}
		if err := p.expectSymbol(','); err != nil {
			return nil, err
		}
		squares, err := p.expectNumber()
		if err != nil {
			return nil, err
		}
		pigment = material.NewCheckeredPigment(color1, color2, int(squares))

	case KwImage:
		path, err := p.expectString()
		if err != nil {
			return nil, err
		}
		img, err := hdr.LoadImage(path)
		if err != nil {
			return nil, err
		}
		pigment = material.NewImagePigment(img)
	}

	if err := p.expectSymbol(')'); err != nil {
		return nil, err
	}
	return pigment, nil
}

func (p *Parser) parseBRDF() (material.BRDF, error) {
	kw, err := p.expectKeywords(KwDiffuse, KwSpecular)
	if err != nil {
		return nil, err
	}
	if err := p.expectSymbol('('); err != nil {
		return nil, err
	}
	pigment, err := p.parsePigment()
	if err != nil {
		return nil, err
	}
	if err := p.expectSymbol(')'); err != nil {
		return nil, err
	}

	if kw == KwSpecular {
		return material.NewSpecularBRDF(pigment), nil
	}
	return material.NewDiffuseBRDF(pigment), nil
}

// parseMaterialDecl parses `material name(brdf, emittedPigment)`
func (p *Parser) parseMaterialDecl() error {
	name, nameToken, err := p.expectIdentifier()
	if err != nil {
		return err
	}
	if _, duplicate := p.materials[name]; duplicate {
		return p.errorf(nameToken, "material %q already defined", name)
	}

	if err := p.expectSymbol('('); err != nil {
		return err
	}
	brdf, err := p.parseBRDF()
	if err != nil {
		return err
	}
	if err := p.expectSymbol(','); err != nil {
		return err
	}
	emitted, err := p.parsePigment()
	if err != nil {
		return err
	}
	if err := p.expectSymbol(')'); err != nil {
		return err
	}

	p.materials[name] = material.NewMaterial(brdf, emitted)
	return nil
}

// --- transformations ----------------------------------------------------

// parseTransformation parses a `*`-composed chain of transform atoms;
// composition is right-to-left, so the rightmost factor applies first
func (p *Parser) parseTransformation() (core.Transformation, error) {
	result := core.Identity()

	for {
		atom, err := p.parseTransformAtom()
		if err != nil {
			return core.Transformation{}, err
		}
		result = result.Compose(atom)

		next, err := p.stream.ReadToken()
		if err != nil {
			return core.Transformation{}, err
		}
		if next.Kind != SymbolToken || next.Symbol != '*' {
			p.stream.UnreadToken(next)
			return result, nil
		}
	}
}

func (p *Parser) parseTransformAtom() (core.Transformation, error) {
	kw, err := p.expectKeywords(
		KwIdentity, KwTranslation, KwScaling, KwRotationX, KwRotationY, KwRotationZ)
	if err != nil {
		return core.Transformation{}, err
	}

	if kw == KwIdentity {
		return core.Identity(), nil
	}

	if err := p.expectSymbol('('); err != nil {
		return core.Transformation{}, err
	}

	var result core.Transformation
	switch kw {
	case KwTranslation:
		v, err := p.parseVector()
		if err != nil {
			return core.Transformation{}, err
		}
		result = core.Translation(v)

	case KwScaling:
		var factors [3]float64
		for i := 0; i < 3; i++ {
			if i > 0 {
				if err := p.expectSymbol(','); err != nil {
					return core.Transformation{}, err
				}
			}
			factors[i], err = p.expectNumber()
			if err != nil {
				return core.Transformation{}, err
			}
		}
		result, err = core.Scaling(factors[0], factors[1], factors[2])
		if err != nil {
			return core.Transformation{}, err
		}

	case KwRotationX, KwRotationY, KwRotationZ:
		angle, err := p.expectNumber()
		if err != nil {
			return core.Transformation{}, err
		}
		switch kw {
		case KwRotationX:
			result = core.RotationX(angle)
		case KwRotationY:
			result = core.RotationY(angle)
		default:
			result = core.RotationZ(angle)
		}
	}

	if err := p.expectSymbol(')'); err != nil {
		return core.Transformation{}, err
	}
	return result, nil
}

// --- shapes -------------------------------------------------------------

// registerShape records a shape under its unique name and adds it to the
// world membership list
func (p *Parser) registerShape(shape geometry.Shape, nameToken Token) error {
	name := shape.Name()
	if _, duplicate := p.shapes[name]; duplicate {
		return p.errorf(nameToken, "shape %q already defined", name)
	}
	p.shapes[name] = shape
	p.worldShapes = append(p.worldShapes, shape)
	return nil
}

// removeFromWorld drops a shape from world membership, keeping its
// definition available for `copy`
func (p *Parser) removeFromWorld(name string) {
	for i, shape := range p.worldShapes {
		if shape.Name() == name {
			p.worldShapes = append(p.worldShapes[:i], p.worldShapes[i+1:]...)
			return
		}
	}
}

// parseShapeDecl parses `sphere|plane|cube name(materialName, transform)`
func (p *Parser) parseShapeDecl(kind Keyword) error {
	name, nameToken, err := p.expectIdentifier()
	if err != nil {
		return err
	}
	if err := p.expectSymbol('('); err != nil {
		return err
	}

	materialName, materialToken, err := p.expectIdentifier()
	if err != nil {
		return err
	}
	mat, defined := p.materials[materialName]
	if !defined {
		return p.errorf(materialToken, "unknown material %q", materialName)
	}

	if err := p.expectSymbol(','); err != nil {
		return err
	}
	transform, err := p.parseTransformation()
	if err != nil {
		return err
	}
	if err := p.expectSymbol(')'); err != nil {
		return err
	}

	var shape geometry.Shape
	switch kind {
	case KwSphere:
		shape = geometry.NewSphere(name, transform, mat)
	case KwPlane:
		shape = geometry.NewPlane(name, transform, mat)
	case KwCube:
		shape = geometry.NewCube(name, transform, mat)
	}
	return p.registerShape(shape, nameToken)
}

// parseCSGDecl parses `csg name(childA, childB, op, transform)`. The
// children are consumed: they leave the world and belong to the node.
func (p *Parser) parseCSGDecl() error {
	name, nameToken, err := p.expectIdentifier()
	if err != nil {
		return err
	}
	if err := p.expectSymbol('('); err != nil {
		return err
	}

	left, err := p.consumeShapeOperand()
	if err != nil {
		return err
	}
	if err := p.expectSymbol(','); err != nil {
		return err
	}
	right, err := p.consumeShapeOperand()
	if err != nil {
		return err
	}
	if err := p.expectSymbol(','); err != nil {
		return err
	}

	opKw, err := p.expectKeywords(KwUnion, KwFusion, KwIntersection, KwDifference)
	if err != nil {
		return err
	}
	var op geometry.Operation
	switch opKw {
	case KwUnion:
		op = geometry.Union
	case KwFusion:
		op = geometry.Fusion
	case KwIntersection:
		op = geometry.Intersection
	default:
		op = geometry.Difference
	}

	if err := p.expectSymbol(','); err != nil {
		return err
	}
	transform, err := p.parseTransformation()
	if err != nil {
		return err
	}
	if err := p.expectSymbol(')'); err != nil {
		return err
	}

	return p.registerShape(geometry.NewCSG(name, left, right, op, transform), nameToken)
}

// consumeShapeOperand resolves a shape identifier and transfers its
// ownership to the enclosing CSG node
func (p *Parser) consumeShapeOperand() (geometry.Shape, error) {
	name, token, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	shape, defined := p.shapes[name]
	if !defined {
		return nil, p.errorf(token, "unknown shape %q", name)
	}
	if p.consumed[name] {
		return nil, p.errorf(token,
			"shape %q is already owned by a csg node; use copy to duplicate it", name)
	}
	p.consumed[name] = true
	p.removeFromWorld(name)
	return shape, nil
}

// parseCopyDecl parses `copy newName(existingName)`: a deep duplicate of
// an existing shape, re-added to the world under the new name
func (p *Parser) parseCopyDecl() error {
	newName, newNameToken, err := p.expectIdentifier()
	if err != nil {
		return err
	}
	if err := p.expectSymbol('('); err != nil {
		return err
	}
	sourceName, sourceToken, err := p.expectIdentifier()
	if err != nil {
		return err
	}
	if err := p.expectSymbol(')'); err != nil {
		return err
	}

	source, defined := p.shapes[sourceName]
	if !defined {
		return p.errorf(sourceToken, "unknown shape %q", sourceName)
	}
	return p.registerShape(source.Clone(newName), newNameToken)
}

// --- camera and motion --------------------------------------------------

// parseCameraDecl parses `camera(perspective, transform, distance)` or
// `camera(orthogonal, transform)`
func (p *Parser) parseCameraDecl(cameraToken Token) error {
	if p.camera != nil {
		return p.errorf(cameraToken, "camera already defined")
	}

	if err := p.expectSymbol('('); err != nil {
		return err
	}
	kw, err := p.expectKeywords(KwPerspective, KwOrthogonal)
	if err != nil {
		return err
	}
	if err := p.expectSymbol(','); err != nil {
		return err
	}
	transform, err := p.parseTransformation()
	if err != nil {
		return err
	}

	if kw == KwPerspective {
		if err := p.expectSymbol(','); err != nil {
			return err
		}
		distance, err := p.expectNumber()
		if err != nil {
			return err
		}
		if err := p.expectSymbol(')'); err != nil {
			return err
		}
		p.camera = renderer.NewPerspectiveCamera(distance, transform)
		return nil
	}

	if err := p.expectSymbol(')'); err != nil {
		return err
	}
	p.camera = renderer.NewOrthogonalCamera(transform)
	return nil
}

// parseMotionDecl parses `motion(transform, numFrames)`
func (p *Parser) parseMotionDecl(motionToken Token) error {
	if p.motion != nil {
		return p.errorf(motionToken, "motion already defined")
	}

	if err := p.expectSymbol('('); err != nil {
		return err
	}
	transform, err := p.parseTransformation()
	if err != nil {
		return err
	}
	if err := p.expectSymbol(','); err != nil {
		return err
	}

	frames, err := p.expectNumber()
	if err != nil {
		return err
	}
	numFrames := int(frames)
	if float64(numFrames) != frames || numFrames < 1 {
		return p.errorf(motionToken, "frame count must be a positive integer, got %g", frames)
	}

	if err := p.expectSymbol(')'); err != nil {
		return err
	}
	p.motion = &renderer.Motion{Transform: transform, NumFrames: numFrames}
	return nil
}

// parseFloatDecl parses `float name(value)`. An externally overridden
// name keeps the external value; the in-file one is ignored with a
// warning so overrides never change silently.
func (p *Parser) parseFloatDecl() error {
	name, _, err := p.expectIdentifier()
	if err != nil {
		return err
	}
	if err := p.expectSymbol('('); err != nil {
		return err
	}
	value, err := p.expectNumber()
	if err != nil {
		return err
	}
	if err := p.expectSymbol(')'); err != nil {
		return err
	}

	if p.overridden[name] {
		logger.Warningf("float %q is overridden externally; ignoring in-file value %g", name, value)
		return nil
	}
	p.floats[name] = value
	return nil
}

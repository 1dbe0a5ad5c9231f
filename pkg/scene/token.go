// Package scene implements the textual scene-description language: a
// tokenizer and a recursive-descent parser that assemble the World, the
// Camera and the optional camera Motion from a scene file.
package scene

import "fmt"

// SourceLocation tags a token with its position for diagnostics
type SourceLocation struct {
	FileName string
	Line     int
	Col      int
}

func (l SourceLocation) String() string {
	return fmt.Sprintf("%s:%d:%d", l.FileName, l.Line, l.Col)
}

// GrammarError reports malformed scene text. It is always fatal to
// parsing and carries the exact source position.
type GrammarError struct {
	Location SourceLocation
	Message  string
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("%s: %s", e.Location, e.Message)
}

// TokenKind discriminates the token variants
type TokenKind int

const (
	KeywordToken TokenKind = iota
	IdentifierToken
	StringToken
	NumberToken
	SymbolToken
	EOFToken
)

// Keyword enumerates the reserved words of the scene language
type Keyword int

const (
	KwFloat Keyword = iota
	KwMaterial
	KwDiffuse
	KwSpecular
	KwUniform
	KwCheckered
	KwImage
	KwShape
	KwSphere
	KwPlane
	KwCube
	KwCSG
	KwUnion
	KwFusion
	KwIntersection
	KwDifference
	KwCopy
	KwIdentity
	KwTranslation
	KwScaling
	KwRotationX
	KwRotationY
	KwRotationZ
	KwCamera
	KwPerspective
	KwOrthogonal
	KwMotion
)

var keywords = map[string]Keyword{
	"float":        KwFloat,
	"material":     KwMaterial,
	"diffuse":      KwDiffuse,
	"specular":     KwSpecular,
	"uniform":      KwUniform,
	"checkered":    KwCheckered,
	"image":        KwImage,
	"shape":        KwShape,
	"sphere":       KwSphere,
	"plane":        KwPlane,
	"cube":         KwCube,
	"csg":          KwCSG,
	"union":        KwUnion,
	"fusion":       KwFusion,
	"intersection": KwIntersection,
	"difference":   KwDifference,
	"copy":         KwCopy,
	"identity":     KwIdentity,
	"translation":  KwTranslation,
	"scaling":      KwScaling,
	"rotation_x":   KwRotationX,
	"rotation_y":   KwRotationY,
	"rotation_z":   KwRotationZ,
	"camera":       KwCamera,
	"perspective":  KwPerspective,
	"orthogonal":   KwOrthogonal,
	"motion":       KwMotion,
}

var keywordNames = func() map[Keyword]string {
	names := make(map[Keyword]string, len(keywords))
	for name, kw := range keywords {
		names[kw] = name
	}
	return names
}()

// Token is the tagged variant emitted by the tokenizer. Exactly one of
// the payload fields is meaningful, selected by Kind.
type Token struct {
	Location   SourceLocation
	Kind       TokenKind
	Keyword    Keyword
	Identifier string
	Str        string
	Number     float64
	Symbol     byte
}

// Describe renders the token for error messages
func (t Token) Describe() string {
	switch t.Kind {
	case KeywordToken:
		return fmt.Sprintf("keyword %q", keywordNames[t.Keyword])
	case IdentifierToken:
		return fmt.Sprintf("identifier %q", t.Identifier)
	case StringToken:
		return fmt.Sprintf("string %q", t.Str)
	case NumberToken:
		return fmt.Sprintf("number %g", t.Number)
	case SymbolToken:
		return fmt.Sprintf("symbol %q", string(t.Symbol))
	case EOFToken:
		return "end of file"
	}
	return "unknown token"
}

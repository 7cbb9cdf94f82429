package libhex

import (
	"github.com/alecthomas/participle/v2"
	"github.com/pkg/errors"

	"github.com/polyhex-systems/gohex/gohex"
)

// A benzenoid system expr is a bracketed list of axial coordinate pairs,
// e.g. "[(1,2),(1,3),(2,2)]". Whitespace is insignificant and negative
// coordinates are allowed.

type systemExpr struct {
	Coords []coordExpr `parser:"'[' (@@ (',' @@)*)? ']'"`
}

type coordExpr struct {
	I int `parser:"'(' @('-'? Int)"`
	J int `parser:"',' @('-'? Int) ')'"`
}

var parseSystemExpr = participle.MustBuild[systemExpr]()

// ParseSystem reads a coordinate list expr into a Benzenoid. Duplicate
// coordinates collapse; the result is not canonized. The inverse of
// Benzenoid.String().
func ParseSystem(expr string) (*Benzenoid, error) {
	ast, err := parseSystemExpr.ParseString("", expr)
	if err != nil {
		return nil, errors.Wrap(gohex.ErrBadCoordExpr, err.Error())
	}
	if len(ast.Coords) == 0 {
		return nil, gohex.ErrEmptySystem
	}

	coords := make([]Coord, len(ast.Coords))
	for k, c := range ast.Coords {
		coords[k] = Coord{I: c.I, J: c.J}
	}
	return NewBenzenoidFromCoords(coords)
}

package gohex

import "errors"

// Errors
var (
	ErrUnmarshal       = errors.New("unmarshal failed")
	ErrBadCatalogParam = errors.New("bad catalog param")
	ErrBadEncoding     = errors.New("bad system encoding")
	ErrBadCoordExpr    = errors.New("bad coordinate expression")
	ErrEmptySystem     = errors.New("empty benzenoid system")
	ErrBadHexCount     = errors.New("hexagon count must be positive")
	ErrHexCountRange   = errors.New("hexagon count exceeds MaxHexCount")
	ErrNotConnected    = errors.New("benzenoid system is not connected")
	ErrNilSystem       = errors.New("nil system")
)

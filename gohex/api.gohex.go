package gohex

import (
	"io"
)

const (

	// MaxHexCount is the largest hexagon count a catalog encoding can carry
	// (the count leads the encoding as a single byte).
	MaxHexCount = 255
)

// System is a benzenoid system: a connected collection of distinct hexagons
// on the infinite hex lattice.
type System interface {

	// HexCount returns the number of hexagons in this system.
	HexCount() int

	// Coords returns the system's hexagons.
	// The returned slice should be considered read-only, and is in canonical
	// order if the system has been canonized.
	Coords() []Coord

	// Canonize replaces this system's coordinates with the canonical form of
	// its symmetry class: the lexicographically smallest normalized image over
	// all 6 rotations and their reflections.
	Canonize() error

	// AppendEncodingTo appends this system's canonical binary encoding to the
	// given buffer. See libhex for format info.
	AppendEncodingTo(in []byte) (Encoding, error)

	WriteAsString(out io.Writer, opts PrintOpts)

	// Returns a new copy of this instance.
	MakeCopy() System

	// Recycles this System instance into a pool for reuse.
	// Caller asserts that no more references to this instance will persist.
	Reclaim()
}

// Encoding is a fully serialized System. The encoding of a canonical system
// is a unique identifier of its isomorphism class.
type Encoding []byte

// OnSystemHit is a callback channel used to return Systems meeting a set of
// selection criteria. Ownership of a System travels through the channel.
type OnSystemHit chan<- System

// SystemAdder accepts candidate systems, keeping only the first of each
// isomorphism class.
type SystemAdder interface {

	// Tries to add the given system to this collection.
	// If true is returned, no isomorphic system was present and b was added.
	TryAddSystem(b System) bool
}

// CatalogContext is a container for open / active Catalog instances.
type CatalogContext interface {

	// Attaches the given Catalog to this context.
	AttachCatalog(cat Catalog)

	// Detaches the given Catalog from this context.
	DetachCatalog(cat Catalog)

	// Signals all open catalogs to close, then closes.
	Close()

	// Signals when Close() completed and all open Catalogs have been closed.
	Done() <-chan struct{}
}

// CatalogOpts specifies params for opening a libhex Catalog.
type CatalogOpts struct {
	DBPath      string // omit for an in-memory db
	ReadOnly    bool   // open in read-only mode
	MaxHexCount int    // largest hexagon count this catalog will tally
}

// Catalog wraps a database of canonical benzenoid system encodings.
type Catalog interface {
	SystemAdder

	// Returns true if this catalog was opened for read-only access.
	IsReadOnly() bool

	// NumSystems returns the number of systems in this catalog with the given
	// hexagon count. A count of 0 or out of catalog bounds returns 0.
	NumSystems(hexCount byte) int64

	// Select fires the given callback with each cataloged system that meets
	// the selection criteria.
	Select(sel Selector, onHit OnSystemHit)

	Close() error
}

// Selector is an operator that either selects a given System or not.
type Selector struct {
	MinHexCount byte // lower select bound (inclusive)
	MaxHexCount byte // upper select bound (inclusive)
}

// DefaultSelector selects all valid benzenoid systems.
var DefaultSelector = Selector{
	MinHexCount: 1,
	MaxHexCount: MaxHexCount,
}

// SelectsSystem is a convenience function used to see if a System is selected
// according to a Selector.
func (sel *Selector) SelectsSystem(b System) bool {
	h := b.HexCount()
	return h >= int(sel.MinHexCount) && h <= int(sel.MaxHexCount)
}

// PrintOpts specifies what is printed when printing a benzenoid system
type PrintOpts struct {
	Label  string // Prefix label
	Coords bool   // If set, prints the coordinate list expr
	Counts bool   // If set, prints the hexagon count
}

// DefaultPrintOpts{}
var DefaultPrintOpts = PrintOpts{
	Coords: true,
}

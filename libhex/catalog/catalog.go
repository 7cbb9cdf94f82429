package catalog

import (
	"bytes"
	"encoding/binary"
	"runtime"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"

	"github.com/polyhex-systems/gohex/gohex"
	"github.com/polyhex-systems/gohex/libhex"
)

/***

Catalog database format:

	gCatalogStateKey => catalogState

	HexCount (byte), <uvarint(i), uvarint(j)>...   => (no value)
	...

Every data key is the canonical encoding of a benzenoid system, so the key
space doubles as the isomorphism-class registry: iteration ascends by hexagon
count, and a key's presence answers "has this shape been added".

***/

var gCatalogStateKey = []byte{0x00, 0x00, 0x01}

const (
	kMajorVers = 2024
	kMinorVers = 1
)

// catalogState is the persisted catalog header: version plus per-hex-count
// system tallies.
type catalogState struct {
	MajorVers   uint64
	MinorVers   uint64
	MaxHexCount uint64
	NumSystems  []uint64 // indexed by hexagon count; [0] unused
}

func (state *catalogState) Marshal(in []byte) []byte {
	var scrap [binary.MaxVarintLen64]byte

	appendUvarint := func(buf []byte, val uint64) []byte {
		n := binary.PutUvarint(scrap[:], val)
		return append(buf, scrap[:n]...)
	}

	buf := appendUvarint(in, state.MajorVers)
	buf = appendUvarint(buf, state.MinorVers)
	buf = appendUvarint(buf, state.MaxHexCount)
	buf = appendUvarint(buf, uint64(len(state.NumSystems)))
	for _, tally := range state.NumSystems {
		buf = appendUvarint(buf, tally)
	}
	return buf
}

func (state *catalogState) Unmarshal(val []byte) error {
	rdr := bytes.NewReader(val)

	fields := []*uint64{&state.MajorVers, &state.MinorVers, &state.MaxHexCount}
	for _, field := range fields {
		v, err := binary.ReadUvarint(rdr)
		if err != nil {
			return gohex.ErrUnmarshal
		}
		*field = v
	}

	numTallies, err := binary.ReadUvarint(rdr)
	if err != nil || numTallies > gohex.MaxHexCount+1 {
		return gohex.ErrUnmarshal
	}
	state.NumSystems = make([]uint64, numTallies)
	for i := range state.NumSystems {
		v, err := binary.ReadUvarint(rdr)
		if err != nil {
			return gohex.ErrUnmarshal
		}
		state.NumSystems[i] = v
	}
	return nil
}

// catalog is a db wrapper for a benzenoid system catalog
type catalog struct {
	ctx          gohex.CatalogContext
	readOnly     bool
	stateDirty   bool
	state        catalogState
	db           *badger.DB
	CatalogDesig string
}

func OpenCatalog(ctx gohex.CatalogContext, opts gohex.CatalogOpts) (gohex.Catalog, error) {

	if opts.MaxHexCount <= 0 {
		opts.MaxHexCount = 12
	}
	if opts.MaxHexCount > gohex.MaxHexCount {
		return nil, errors.Wrap(gohex.ErrBadCatalogParam, "MaxHexCount out of range")
	}

	cat := &catalog{
		ctx:          ctx,
		readOnly:     opts.ReadOnly,
		CatalogDesig: "H1",
	}

	dbOpts := badger.DefaultOptions(opts.DBPath)
	dbOpts.ReadOnly = opts.ReadOnly
	dbOpts.DetectConflicts = false // not needed so disable for performance
	dbOpts.Logger = nil
	dbOpts.MetricsEnabled = false

	// Badger for windows currently does not support read-only mode
	if runtime.GOOS == "windows" {
		dbOpts.ReadOnly = false
	}

	var err error

	if len(opts.DBPath) == 0 {
		if opts.ReadOnly {
			return nil, errors.Wrap(gohex.ErrBadCatalogParam, "DBPath must be specified for read-only catalog")
		}
		dbOpts.InMemory = true
	}

	cat.db, err = badger.Open(dbOpts)
	if err != nil {
		return nil, err
	}

	// Once the db is open, we consider the catalog ctx blocked until the catalog closes
	ctx.AttachCatalog(cat)

	err = cat.loadState()
	if err == badger.ErrKeyNotFound {
		err = nil
		cat.stateDirty = true
		cat.state.MajorVers = kMajorVers
		cat.state.MinorVers = kMinorVers
		cat.state.MaxHexCount = uint64(opts.MaxHexCount)
		cat.state.NumSystems = make([]uint64, opts.MaxHexCount+1)
	}

	if err == nil {
		if cat.state.MajorVers != kMajorVers || cat.state.MinorVers != kMinorVers {
			err = errors.New("catalog version is incompatible")
		} else if uint64(opts.MaxHexCount) > cat.state.MaxHexCount {
			err = errors.New("catalog's MaxHexCount is below the requested MaxHexCount")
		}
	}

	if err != nil {
		cat.Close()
		return nil, err
	}

	return cat, nil
}

func (cat *catalog) IsReadOnly() bool {
	return cat.readOnly
}

func (cat *catalog) NumSystems(hexCount byte) int64 {
	if hexCount == 0 || int(hexCount) >= len(cat.state.NumSystems) {
		return 0
	}
	return int64(cat.state.NumSystems[hexCount])
}

func (cat *catalog) loadState() error {
	err := cat.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gCatalogStateKey)
		if err == nil {
			err = item.Value(func(val []byte) error {
				return cat.state.Unmarshal(val)
			})
		}
		return err
	})
	return err
}

func (cat *catalog) flushState() {
	if cat.stateDirty && !cat.readOnly {
		err := cat.db.Update(func(txn *badger.Txn) error {
			return txn.Set(gCatalogStateKey, cat.state.Marshal(nil))
		})
		if err != nil {
			panic(err)
		}
		cat.stateDirty = false
	}
}

func (cat *catalog) Close() error {
	cat.flushState()
	if cat.db != nil {
		cat.db.Close()
		cat.db = nil
		cat.ctx.DetachCatalog(cat)
		cat.ctx = nil
	}
	return nil
}

// TryAddSystem adds the given system's isomorphism class if it doesn't
// already exist.
//
// If true is returned, b was not present and was added.
//
// If false is returned, an isomorphic system already exists in the catalog
// (or the system could not be encoded).
func (cat *catalog) TryAddSystem(b gohex.System) bool {
	if cat.readOnly {
		return false
	}

	var keyBuf [256]byte
	key, err := b.AppendEncodingTo(keyBuf[:0])
	if err != nil {
		return false
	}
	hexCount := key[0]
	if uint64(hexCount) > cat.state.MaxHexCount {
		return false
	}

	txn := cat.db.NewTransaction(true)
	defer txn.Discard()

	_, err = txn.Get(key)
	if err == nil {
		return false
	} else if err != badger.ErrKeyNotFound {
		panic(err)
	}

	if err = txn.Set(key, nil); err != nil {
		panic(err)
	}
	if err = txn.Commit(); err != nil {
		panic(err)
	}

	cat.state.NumSystems[hexCount]++
	cat.stateDirty = true
	return true
}

// Select will call onHit() with all systems matching the given selector.
//
// Enumeration stops when there are no more matches.
func (cat *catalog) Select(sel gohex.Selector, onHit gohex.OnSystemHit) {
	minHex := sel.MinHexCount
	if minHex < 1 {
		minHex = 1
	}
	minKey := [1]byte{minHex}

	txn := cat.db.NewTransaction(false)
	defer txn.Discard()

	it := txn.NewIterator(badger.IteratorOptions{
		PrefetchValues: false,
	})
	defer it.Close()

	for it.Seek(minKey[:]); it.Valid(); it.Next() {
		curKey := it.Item().Key()

		// Stop when the hexagon count is over the max
		if curKey[0] > sel.MaxHexCount {
			break
		}

		b, err := libhex.NewBenzenoidFromEncoding(curKey)
		if err != nil {
			panic(err)
		}
		onHit <- b
	}
}

package libhex

import (
	"bytes"

	"github.com/dgraph-io/badger/v4"
	"github.com/emirpasic/gods/trees/redblacktree"
)

// CanonicSet allows adding canonical encodings of benzenoid systems and
// returning if an isomorphic system has already been added.
type CanonicSet interface {

	// TryAdd adds the given system if its isomorphism class is not already
	// present.
	//
	// If the canonic version of b already is in this CanonicSet, this call has
	// no effect and TryAdd() returns false.
	// If b isn't in this set, b is added and TryAdd() returns true.
	//
	// After one or more calls to TryAdd(), call Close() for cleanup.
	TryAdd(b *Benzenoid) bool

	// Close removes all previously added items from this set.
	//
	// If you make subsequent calls to TryAdd(), be sure you call Close() when
	// you're done.
	Close()
}

// NewCanonicSet returns the default in-memory CanonicSet, an ordered tree
// keyed by canonical encoding.
func NewCanonicSet() CanonicSet {
	return &memSet{}
}

// NewLSMSet returns a CanonicSet backed by an in-memory LSM db, suited for
// size classes too large to hold comfortably in a tree.
func NewLSMSet() CanonicSet {
	return &lsmSet{}
}

type memSet struct {
	tree *redblacktree.Tree
}

func encodingComparator(a, b interface{}) int {
	return bytes.Compare(a.([]byte), b.([]byte))
}

func (set *memSet) TryAdd(b *Benzenoid) bool {
	key, err := b.AppendEncodingTo(nil)
	if err != nil {
		return false
	}
	if set.tree == nil {
		set.tree = redblacktree.NewWith(encodingComparator)
	}
	if _, found := set.tree.Get([]byte(key)); found {
		return false
	}
	set.tree.Put([]byte(key), nil)
	return true
}

func (set *memSet) Close() {
	set.tree = nil
}

type lsmSet struct {
	db *badger.DB
}

func (set *lsmSet) autoOpen() {
	if set.db == nil {
		dbOpts := badger.DefaultOptions("").WithInMemory(true)
		dbOpts.Logger = nil
		dbOpts.MetricsEnabled = false

		var err error
		set.db, err = badger.Open(dbOpts)
		if err != nil {
			panic(err)
		}
	}
}

func (set *lsmSet) TryAdd(b *Benzenoid) bool {
	var buf [256]byte
	key, err := b.AppendEncodingTo(buf[:0])
	if err != nil {
		return false
	}
	return set.tryAdd(key)
}

func (set *lsmSet) tryAdd(key []byte) bool {
	set.autoOpen()

	txn := set.db.NewTransaction(true)
	defer txn.Commit()

	added := false
	_, err := txn.Get(key)
	if err == nil {
		// no-op since the key is already in the db
	} else if err == badger.ErrKeyNotFound {
		err = txn.Set(key, nil)
		added = true
	}

	if err != nil {
		panic(err)
	}

	return added
}

func (set *lsmSet) Close() {
	if set.db != nil {
		set.db.Close()
		set.db = nil
	}
}

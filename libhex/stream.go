package libhex

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/polyhex-systems/gohex/gohex"
	"github.com/polyhex-systems/gohex/libhex/render"
)

// SystemStream is a pipeline of benzenoid systems. Each stage consumes from
// its upstream Outlet and forwards (or drops) systems to its own.
type SystemStream struct {
	Outlet chan *Benzenoid
}

type AddSystemOpts struct {
	AutoCloseCatalog bool
}

func NewSystemStream() *SystemStream {
	stream := &SystemStream{
		Outlet: make(chan *Benzenoid),
	}
	return stream
}

// StreamSystem returns a stream that emits a copy of b and closes.
func StreamSystem(b *Benzenoid) *SystemStream {
	next := NewSystemStream()

	go func() {
		next.Outlet <- NewBenzenoid(b)
		next.Close()
	}()

	return next
}

func (stream *SystemStream) Close() {
	if stream.Outlet != nil {
		close(stream.Outlet)
	}
}

func (stream *SystemStream) PushSystem(b *Benzenoid) {
	stream.Outlet <- NewBenzenoid(b)
}

func (stream *SystemStream) PullSystem() *Benzenoid {
	b := <-stream.Outlet
	return b
}

func (stream *SystemStream) PullAll() int {
	count := int(0)
	for b := range stream.Outlet {
		count++
		b.Reclaim()
	}
	return count
}

// Print writes each system passing through with a 1-based index, forwarding
// every system downstream. out is closed when the stream closes.
func (stream *SystemStream) Print(out io.WriteCloser, opts gohex.PrintOpts) *SystemStream {
	next := &SystemStream{
		Outlet: make(chan *Benzenoid, 1),
	}

	go func() {
		buf := strings.Builder{}
		buf.Grow(256)

		count := 0
		for b := range stream.Outlet {
			count++
			if len(opts.Label) > 0 {
				buf.WriteString(opts.Label)
				buf.WriteByte(',')
			}
			fmt.Fprintf(&buf, "%4d  ", count)
			b.WriteAsString(&buf, gohex.PrintOpts{
				Coords: opts.Coords,
				Counts: opts.Counts,
			})
			buf.WriteByte('\n')
			out.Write([]byte(buf.String()))
			buf.Reset()
			next.Outlet <- b
		}
		out.Close()
		next.Close()
	}()

	return next
}

// AddTo pushes each system into target, forwarding only systems that were
// newly added (the first of their isomorphism class).
func (stream *SystemStream) AddTo(target gohex.SystemAdder, opts AddSystemOpts) *SystemStream {
	next := &SystemStream{
		Outlet: make(chan *Benzenoid, 1),
	}

	go func() {
		for b := range stream.Outlet {
			wasAdded := target.TryAddSystem(b)
			if wasAdded {
				next.Outlet <- b
			} else {
				b.Reclaim()
			}
		}
		if opts.AutoCloseCatalog {
			if cat, ok := target.(gohex.Catalog); ok {
				cat.Close()
			}
		}
		next.Close()
	}()

	return next
}

// SelectFromCatalog streams each cataloged system matching sel.
func SelectFromCatalog(cat gohex.Catalog, sel gohex.Selector) *SystemStream {
	next := &SystemStream{
		Outlet: make(chan *Benzenoid, 1),
	}

	onHit := make(chan gohex.System, 4)

	go func() {
		cat.Select(sel, onHit)
		close(onHit)
	}()

	go func() {
		for hit := range onHit {
			if b, ok := hit.(*Benzenoid); ok && sel.SelectsSystem(b) {
				next.Outlet <- b
			} else {
				hit.Reclaim()
			}
		}
		next.Close()
	}()

	return next
}

func (stream *SystemStream) SelectFromStream(sel gohex.Selector) *SystemStream {
	next := &SystemStream{
		Outlet: make(chan *Benzenoid, 1),
	}

	go func() {
		for b := range stream.Outlet {
			if sel.SelectsSystem(b) {
				next.Outlet <- b
			} else {
				b.Reclaim()
			}
		}
		next.Close()
	}()

	return next
}

// DropDupes forwards only the first system seen of each isomorphism class,
// dropping the rest. set is closed when the stream closes.
func (stream *SystemStream) DropDupes(set CanonicSet) *SystemStream {
	next := &SystemStream{
		Outlet: make(chan *Benzenoid, 1),
	}

	go func() {
		for b := range stream.Outlet {
			if set.TryAdd(b) {
				next.Outlet <- b
			} else {
				b.Reclaim()
			}
		}
		set.Close()
		next.Close()
	}()

	return next
}

// Canonize replaces each passing system with its canonical form.
func (stream *SystemStream) Canonize() *SystemStream {
	next := &SystemStream{
		Outlet: make(chan *Benzenoid, 1),
	}

	go func() {
		for b := range stream.Outlet {
			err := b.Canonize()
			if err != nil {
				panic(err)
			}
			next.Outlet <- b
		}
		next.Close()
	}()

	return next
}

// DrawTo renders each passing system to dir as benzenoid_<h>_<NN>.png, where
// NN is the 1-based index within the system's hexagon count, forwarding every
// system downstream.
func (stream *SystemStream) DrawTo(dir string, opts render.Opts) *SystemStream {
	next := &SystemStream{
		Outlet: make(chan *Benzenoid, 1),
	}

	go func() {
		counts := make(map[int]int)
		for b := range stream.Outlet {
			h := b.HexCount()
			counts[h]++
			pathname := filepath.Join(dir, fmt.Sprintf("benzenoid_%d_%02d.png", h, counts[h]))
			if err := render.DrawFile(b, pathname, opts); err != nil {
				panic(err)
			}
			next.Outlet <- b
		}
		next.Close()
	}()

	return next
}

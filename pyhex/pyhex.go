package pyhex

// Copyright 2018 The go-python Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/go-python/gpython/py"

	"github.com/polyhex-systems/gohex/gohex"
	"github.com/polyhex-systems/gohex/libhex"
	"github.com/polyhex-systems/gohex/libhex/catalog"
	"github.com/polyhex-systems/gohex/libhex/render"
)

var (
	LIB_VERSION = "v1.2024.1"
)

var (
	pyBenzenoidType    = py.NewType("Benzenoid", "a benzenoid system: a connected set of hexagons on the hexagonal lattice")
	pySystemStreamType = py.NewType("SystemStream", "libhex.SystemStream")
	pyCatalogType      = py.NewType("Catalog", "gohex.Catalog")
	pyWorkspaceType    = py.NewType("Workspace", "collects active session resources and catalogs")
)

// Arg 1 (int): hexLo
// Arg 2 (int): hexHi
func py_EnumBenzenoids(module py.Object, args py.Tuple) (py.Object, error) {
	var hexLo, hexHi py.Object
	err := py.ParseTuple(args, "ii", &hexLo, &hexHi)
	if err != nil {
		return nil, err
	}

	stream := libhex.EnumBenzenoids(int(hexLo.(py.Int)), int(hexHi.(py.Int)))
	return wrapSystemStream(stream), nil
}

func getSystemFromObj(obj py.Object) (b pyBenzenoid, err error) {
	if obj.Type().Name != "Benzenoid" {
		err = py.ExceptionNewf(py.TypeError, "expected Benzenoid object (got %v)", obj.Type().Name)
		return
	}
	b = obj.(pyBenzenoid)
	return
}

type pyBenzenoid struct {
	*libhex.Benzenoid
}

func (b pyBenzenoid) Type() *py.Type {
	return pyBenzenoidType
}

func (b pyBenzenoid) M__str__() (py.Object, error) {
	writer := strings.Builder{}
	b.WriteAsString(&writer, gohex.DefaultPrintOpts)
	return py.String(writer.String()), nil
}

func (b pyBenzenoid) M__repr__() (py.Object, error) {
	return b.M__str__()
}

// Arg 1 (str, optional): coordinate list expr, e.g. "[(0,0),(0,1)]".
// With no args, returns the single-hexagon system.
func py_NewBenzenoid(module py.Object, args py.Tuple) (py.Object, error) {
	if len(args) == 0 {
		return py.Object(pyBenzenoid{libhex.Unit()}), nil
	}

	expr, ok := args[0].(py.String)
	if !ok {
		return nil, py.ExceptionNewf(py.TypeError, "expected coordinate list string (got %v)", args[0].Type().Name)
	}
	b, err := libhex.ParseSystem(string(expr))
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	return py.Object(pyBenzenoid{b}), nil
}

func py_Benzenoid_NumHexes(self py.Object, args py.Tuple) (py.Object, error) {
	b := self.(pyBenzenoid)
	return py.Object(py.Int(b.HexCount())), nil
}

func py_Benzenoid_Coords(self py.Object, args py.Tuple) (py.Object, error) {
	b := self.(pyBenzenoid)

	coords := b.Coords()
	out := make(py.Tuple, len(coords))
	for k, c := range coords {
		out[k] = py.Tuple{py.Int(c.I), py.Int(c.J)}
	}
	return py.Object(out), nil
}

func py_Benzenoid_Canonize(self py.Object, args py.Tuple) (py.Object, error) {
	b := self.(pyBenzenoid)
	if err := b.Canonize(); err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	return py.Object(b), nil
}

func py_Benzenoid_Frontier(self py.Object, args py.Tuple) (py.Object, error) {
	b := self.(pyBenzenoid)

	frontier := b.Frontier()
	out := make(py.Tuple, len(frontier))
	for k, c := range frontier {
		out[k] = py.Tuple{py.Int(c.I), py.Int(c.J)}
	}
	return py.Object(out), nil
}

// Arg 1, 2 (int): the (i, j) frontier cell to add
func py_Benzenoid_Grow(self py.Object, args py.Tuple) (py.Object, error) {
	b := self.(pyBenzenoid)

	var i, j py.Object
	err := py.ParseTuple(args, "ii", &i, &j)
	if err != nil {
		return nil, err
	}

	bc, err := b.Grow(gohex.Coord{I: int(i.(py.Int)), J: int(j.(py.Int))})
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	return py.Object(pyBenzenoid{bc}), nil
}

func py_Benzenoid_Stream(self py.Object, args py.Tuple) (py.Object, error) {
	b := self.(pyBenzenoid)
	next := libhex.StreamSystem(b.Benzenoid)
	return wrapSystemStream(next), nil
}

// Arg 1, 2 (int): the (i, j) hexagon whose neighbours to return
func py_Neighbours(module py.Object, args py.Tuple) (py.Object, error) {
	var i, j py.Object
	err := py.ParseTuple(args, "ii", &i, &j)
	if err != nil {
		return nil, err
	}

	c := gohex.Coord{I: int(i.(py.Int)), J: int(j.(py.Int))}
	out := make(py.Tuple, 0, 6)
	for _, n := range c.Neighbours() {
		out = append(out, py.Tuple{py.Int(n.I), py.Int(n.J)})
	}
	return py.Object(out), nil
}

// Arg 1, 2 (Benzenoid): the two systems to compare
func py_AreIsomorphic(module py.Object, args py.Tuple) (py.Object, error) {
	if len(args) != 2 {
		return nil, py.ExceptionNewf(py.TypeError, "expected two Benzenoid objects")
	}
	b1, err := getSystemFromObj(args[0])
	if err != nil {
		return nil, err
	}
	b2, err := getSystemFromObj(args[1])
	if err != nil {
		return nil, err
	}

	iso, err := libhex.AreIsomorphic(b1.Benzenoid, b2.Benzenoid)
	if err != nil {
		return nil, py.ExceptionNewf(py.ValueError, "%v", err)
	}
	if iso {
		return py.True, nil
	}
	return py.False, nil
}

const (
	READ_ONLY = 0x01

	kWorkspaceAttr = "_Workspace"
)

type Workspace struct {
	CatalogCtx gohex.CatalogContext
}

func (ws *Workspace) Close() {
	ws.CatalogCtx.Close()
	<-ws.CatalogCtx.Done()
}

func (ws *Workspace) Type() *py.Type {
	return pyWorkspaceType
}

func py_GetWorkspace(module py.Object, args py.Tuple) (py.Object, error) {
	wsObj, _ := py.GetAttrString(module, kWorkspaceAttr)
	if wsObj == nil {
		ws := &Workspace{
			CatalogCtx: gohex.NewCatalogContext(),
		}
		wsObj = ws
		py.SetAttrString(module, kWorkspaceAttr, wsObj)
	}
	return wsObj, nil
}

func py_Workspace_CatalogExists(self py.Object, args py.Tuple) (py.Object, error) {
	_ = self.(*Workspace)

	var pathname string
	err := py.LoadTuple(args, []interface{}{&pathname})
	if err != nil {
		return nil, err
	}
	_, err = os.Stat(pathname)
	if os.IsNotExist(err) {
		return py.False, nil
	}
	return py.True, nil
}

func py_Workspace_OpenCatalog(self py.Object, args py.Tuple) (py.Object, error) {
	ws := self.(*Workspace)

	var pathname string
	var flags, maxHexCount int32
	err := py.LoadTuple(args, []interface{}{&pathname, &flags, &maxHexCount})
	if err != nil {
		return nil, err
	}

	opts := gohex.CatalogOpts{
		ReadOnly:    (flags & READ_ONLY) != 0,
		DBPath:      pathname,
		MaxHexCount: int(maxHexCount),
	}

	cat, err := catalog.OpenCatalog(ws.CatalogCtx, opts)
	if err != nil {
		return nil, py.ExceptionNewf(py.RuntimeError, "%v", err)
	}

	pyCat := pyCatalog{cat}
	return py.Object(pyCat), nil
}

type pyCatalog struct {
	gohex.Catalog
}

func (cat pyCatalog) Type() *py.Type {
	return pyCatalogType
}

func py_Catalog_Close(self py.Object, args py.Tuple) (py.Object, error) {
	cat := self.(pyCatalog)
	if cat.Catalog != nil {
		cat.Close()
	}
	return py.None, nil
}

func py_Catalog_Select(self py.Object, args py.Tuple) (py.Object, error) {
	cat := self.(pyCatalog)
	sel := gohex.DefaultSelector
	if len(args) > 0 {
		err := getSystemSelector(args[0], &sel)
		if err != nil {
			return nil, err
		}
	}

	next := libhex.SelectFromCatalog(cat, sel)
	return wrapSystemStream(next), nil
}

func py_Catalog_NumSystems(self py.Object, args py.Tuple) (py.Object, error) {
	cat := self.(pyCatalog)

	hexCount, err := py.GetInt(args[0])
	if err != nil {
		return nil, err
	}

	numSystems := cat.NumSystems(byte(hexCount))
	return py.Int(numSystems), nil
}

func py_SystemStream_Go(self py.Object, args py.Tuple) (py.Object, error) {
	stream := self.(systemStream)
	count := stream.PullAll()
	return py.Int(count), nil
}

type echoToWriter struct {
	stdout *os.File
	to     io.WriteCloser
}

func (echo *echoToWriter) Write(buf []byte) (int, error) {
	var (
		n   int
		err error
	)
	if echo.to == nil {
		n, err = echo.stdout.Write(buf)
	} else {
		n, err = echo.to.Write(buf)
	}
	return n, err
}

func (echo *echoToWriter) Close() error {
	if echo.to != nil {
		return echo.to.Close()
	}
	return nil
}

var gOutCount = int32(0)

// See lib/pyhex.py Print() docs
func py_SystemStream_Print(self py.Object, args py.Tuple, kwargs py.StringDict) (py.Object, error) {
	stream := self.(systemStream)
	var pathname string

	opts := gohex.DefaultPrintOpts

	py.LoadTuple(args, []interface{}{&opts.Label})
	if opts.Label == "" {
		py.LoadAttr(kwargs, "label", &opts.Label)
	}

	atomic.AddInt32(&gOutCount, 1)
	if opts.Label == "" {
		opts.Label = fmt.Sprintf("out[%d]", gOutCount)
	}

	py.LoadAttr(kwargs, "coords", &opts.Coords)
	py.LoadAttr(kwargs, "counts", &opts.Counts)
	py.LoadAttr(kwargs, "file", &pathname)

	writer := &echoToWriter{
		stdout: os.Stdout,
	}
	if len(pathname) > 0 {
		os.MkdirAll(filepath.Dir(pathname), 0700)

		file, err := os.OpenFile(string(pathname), os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0600)
		if err != nil {
			return nil, py.ExceptionNewf(py.FileNotFoundError, "%v", err)
		}
		writer.to = file
	}

	next := stream.Print(writer, opts)
	return wrapSystemStream(next), nil
}

type systemStream struct {
	*libhex.SystemStream
}

func (stream systemStream) Type() *py.Type {
	return pySystemStreamType
}

func wrapSystemStream(stream *libhex.SystemStream) py.Object {
	return py.Object(systemStream{stream})
}

func py_SystemStream_AddTo(self py.Object, args py.Tuple) (py.Object, error) {
	stream := self.(systemStream)
	cat, ok := args[0].(pyCatalog)
	if !ok {
		return nil, py.ExceptionNewf(py.TypeError, "expected Catalog object (got %v)", args[0].Type().Name)
	}
	if cat.IsReadOnly() {
		return nil, py.ExceptionNewf(py.PermissionError, "%v", errors.New("catalog is in read-only mode"))
	}

	next := stream.AddTo(cat, libhex.AddSystemOpts{})
	return wrapSystemStream(next), nil
}

func py_SystemStream_DropDupes(self py.Object, args py.Tuple) (py.Object, error) {
	stream := self.(systemStream)

	// A memory-resident canonic set that is auto-closed when the stream closes
	set := libhex.NewCanonicSet()
	next := stream.DropDupes(set)
	return wrapSystemStream(next), nil
}

func py_SystemStream_Canonize(self py.Object, args py.Tuple) (py.Object, error) {
	stream := self.(systemStream)
	next := stream.Canonize()
	return wrapSystemStream(next), nil
}

func py_SystemStream_Select(self py.Object, args py.Tuple) (py.Object, error) {
	sel := gohex.DefaultSelector
	err := getSystemSelector(args[0], &sel)
	if err != nil {
		return nil, err
	}
	stream := self.(systemStream)
	next := stream.SelectFromStream(sel)
	return wrapSystemStream(next), nil
}

// Arg 1 (str): output dir for benzenoid_<h>_<NN>.png files
func py_SystemStream_DrawTo(self py.Object, args py.Tuple) (py.Object, error) {
	stream := self.(systemStream)

	var dir string
	err := py.LoadTuple(args, []interface{}{&dir})
	if err != nil {
		return nil, err
	}

	next := stream.DrawTo(dir, render.Opts{})
	return wrapSystemStream(next), nil
}

func init() {

	/////////////////////////////////
	// Benzenoid
	{
		pyBenzenoidType.Dict["NumHexes"] = py.MustNewMethod("NumHexes", py_Benzenoid_NumHexes, 0, "")
		pyBenzenoidType.Dict["Coords"] = py.MustNewMethod("Coords", py_Benzenoid_Coords, 0, "exports this system's coordinates as a tuple of (i,j) pairs")
		pyBenzenoidType.Dict["Canonize"] = py.MustNewMethod("Canonize", py_Benzenoid_Canonize, 0, "")
		pyBenzenoidType.Dict["Frontier"] = py.MustNewMethod("Frontier", py_Benzenoid_Frontier, 0, "")
		pyBenzenoidType.Dict["Grow"] = py.MustNewMethod("Grow", py_Benzenoid_Grow, 0, "")
		pyBenzenoidType.Dict["Stream"] = py.MustNewMethod("Stream", py_Benzenoid_Stream, 0, "")
	}

	/////////////////////////////////
	// Catalog
	{
		pyCatalogType.Dict["Select"] = py.MustNewMethod("Select", py_Catalog_Select, 0, "")
		pyCatalogType.Dict["NumSystems"] = py.MustNewMethod("NumSystems", py_Catalog_NumSystems, 0, "")
		pyCatalogType.Dict["Close"] = py.MustNewMethod("Close", py_Catalog_Close, 0, "")
	}

	/////////////////////////////////
	// Workspace
	{
		pyWorkspaceType.Dict["OpenCatalog"] = py.MustNewMethod("OpenCatalog", py_Workspace_OpenCatalog, 0, "")
		pyWorkspaceType.Dict["CatalogExists"] = py.MustNewMethod("CatalogExists", py_Workspace_CatalogExists, 0, "")
	}

	/////////////////////////////////
	// SystemStream
	{
		pySystemStreamType.Dict["Go"] = py.MustNewMethod("Go", py_SystemStream_Go, 0, "counts the number of systems output from the SystemStream")
		pySystemStreamType.Dict["Print"] = py.MustNewMethod("Print", py_SystemStream_Print, 0, "prints each system from the SystemStream")
		pySystemStreamType.Dict["AddTo"] = py.MustNewMethod("AddTo", py_SystemStream_AddTo, 0, "")
		pySystemStreamType.Dict["Canonize"] = py.MustNewMethod("Canonize", py_SystemStream_Canonize, 0, "")
		pySystemStreamType.Dict["DropDupes"] = py.MustNewMethod("DropDupes", py_SystemStream_DropDupes, 0, "")
		pySystemStreamType.Dict["Select"] = py.MustNewMethod("Select", py_SystemStream_Select, 0, "")
		pySystemStreamType.Dict["DrawTo"] = py.MustNewMethod("DrawTo", py_SystemStream_DrawTo, 0, "")
	}

	{
		methods := []*py.Method{
			py.MustNewMethod("Benzenoid", py_NewBenzenoid, 0, ""),
			py.MustNewMethod("EnumBenzenoids", py_EnumBenzenoids, 0, ""),
			py.MustNewMethod("AreIsomorphic", py_AreIsomorphic, 0, ""),
			py.MustNewMethod("Neighbours", py_Neighbours, 0, ""),
			py.MustNewMethod("GetWorkspace", py_GetWorkspace, 0, ""),
		}

		globals := py.StringDict{
			"LIB_VERSION": py.String(LIB_VERSION),
			"PY_VERSION":  py.String("v3.4.0"),
			"MAX_HEXES":   py.Int(gohex.MaxHexCount),
		}

		py.RegisterModule(&py.ModuleImpl{
			Info: py.ModuleInfo{
				Name: "_pyhex",
				Doc:  "benzenoid system enumeration gpython module",
			},
			Methods: methods,
			Globals: globals,
			OnContextClosed: func(m *py.Module) {
				wsObj, _ := py.GetAttrString(m, kWorkspaceAttr)
				if wsObj != nil {
					wsObj.(*Workspace).Close()
				}
			},
		})

	}
}

func getSystemSelector(selObj py.Object, sel *gohex.Selector) error {
	minHexes, err := py.GetAttrString(selObj, "min")
	if err != nil {
		return err
	}
	v, err := py.GetInt(minHexes)
	if err != nil {
		return err
	}
	if v < 1 {
		v = 1
	}
	sel.MinHexCount = byte(v)

	maxHexes, err := py.GetAttrString(selObj, "max")
	if err != nil {
		return err
	}
	v, err = py.GetInt(maxHexes)
	if err != nil {
		return err
	}
	if v > gohex.MaxHexCount {
		v = gohex.MaxHexCount
	}
	sel.MaxHexCount = byte(v)

	return nil
}

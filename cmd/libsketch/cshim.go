//go:build cgo

package main

/*
#include <stdlib.h>
#include <stdint.h>
*/
import "C"

import (
	"unsafe"
)

// pointsCall describes one sketch_render_points call in Go terms. It lets
// the tests build C-owned buffers without importing "C" themselves.
type pointsCall struct {
	values   []float64 // copied into C memory; nil passes a NULL buffer
	length   uint64
	n        uint64
	misalign bool    // shift the buffer off float64 alignment
	color    []uint8 // four bytes, or nil for NULL
	path     string
	nilPath  bool
}

func (pc pointsCall) run() int {
	var buf *C.double
	if pc.values != nil {
		size := 8*len(pc.values) + 8
		mem := C.malloc(C.size_t(size))
		defer C.free(mem)
		start := mem
		if pc.misalign {
			start = unsafe.Add(mem, 1)
		}
		dst := unsafe.Slice((*byte)(start), 8*len(pc.values))
		src := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(pc.values))), 8*len(pc.values))
		copy(dst, src)
		buf = (*C.double)(start)
	}

	var color *C.uint8_t
	if pc.color != nil {
		mem := C.malloc(4)
		defer C.free(mem)
		copy(unsafe.Slice((*byte)(mem), 4), pc.color)
		color = (*C.uint8_t)(mem)
	}

	path := cPath(pc.path, pc.nilPath)
	defer C.free(unsafe.Pointer(path))

	return int(sketch_render_points(buf, C.size_t(pc.length), C.size_t(pc.n), color, path))
}

func runDemo(path string, nilPath bool) int {
	p := cPath(path, nilPath)
	defer C.free(unsafe.Pointer(p))
	return int(sketch_render_demo(p))
}

func cPath(path string, null bool) *C.char {
	if null {
		return nil
	}
	return C.CString(path)
}

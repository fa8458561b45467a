//go:build cgo

package main

/*
#include <stddef.h>
#include <stdint.h>
*/
import "C"

import (
	"errors"
	"log/slog"
	"math"
	"unsafe"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/pointbuf"
)

// Status codes returned to C callers.
const (
	statusOK            = 0
	statusInvalidBuffer = -1
	statusInvalidPath   = -2
	statusEncode        = -3
	statusInternal      = -4
)

// maxPoints bounds the point count so 3*n doubles stay within int and
// well inside the address space.
const maxPoints = min(math.MaxInt/3, 1<<40)

// sketch_render_points renders n points read from buf, which must hold
// len doubles (len == 3*n), and saves a 512x512 image to path. color is
// either NULL or a pointer to four bytes (r, g, b, a).
//
//export sketch_render_points
func sketch_render_points(buf *C.double, length C.size_t, n C.size_t, color *C.uint8_t, path *C.char) C.int {
	if path == nil {
		return statusInvalidPath
	}
	// Checked before any slice is built: an oversized length must not
	// reach unsafe.Slice.
	if uint64(n) > maxPoints || uint64(length) != 3*uint64(n) {
		sketch.Logger().Debug("libsketch: rejected buffer length",
			"length", uint64(length), "points", uint64(n))
		return statusInvalidBuffer
	}
	if buf == nil && n != 0 {
		return statusInvalidBuffer
	}
	if uintptr(unsafe.Pointer(buf))%unsafe.Alignof(float64(0)) != 0 {
		return statusInvalidBuffer
	}

	var data []float64
	if buf != nil && length > 0 {
		data = unsafe.Slice((*float64)(unsafe.Pointer(buf)), int(length))
	}
	v, err := pointbuf.NewView(data, int(n))
	if err != nil {
		sketch.Logger().Debug("libsketch: rejected buffer", "err", err)
		return statusInvalidBuffer
	}

	var col *sketch.Color
	if color != nil {
		b := unsafe.Slice((*uint8)(unsafe.Pointer(color)), 4)
		c := sketch.RGBA(b[0], b[1], b[2], b[3])
		col = &c
	}

	_, err = pointbuf.RenderFile(v, col, C.GoString(path))
	return status(err)
}

// sketch_render_demo renders the reference line and ellipse scene to path.
//
//export sketch_render_demo
func sketch_render_demo(path *C.char) C.int {
	if path == nil {
		return statusInvalidPath
	}
	return status(pointbuf.RenderDemo(C.GoString(path)))
}

func status(err error) C.int {
	var encErr *sketch.EncodeError
	switch {
	case err == nil:
		return statusOK
	case errors.Is(err, sketch.ErrUnknownFormat):
		return statusInvalidPath
	case errors.As(err, &encErr):
		sketch.Logger().Warn("libsketch: encode failed", slog.Any("err", err))
		return statusEncode
	default:
		sketch.Logger().Warn("libsketch: render failed", slog.Any("err", err))
		return statusInternal
	}
}

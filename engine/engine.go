// Package engine implements the per-frame color transform: channel-order
// conversion, 3x3 matrix multiplication per pixel, clipping and rounding.
package engine

import (
	"context"
	"fmt"

	"github.com/anthonynsimon/bild/parallel"

	"github.com/daltonview/cvdpipeline/colormatrix"
	"github.com/daltonview/cvdpipeline/frame"
	"github.com/daltonview/cvdpipeline/logger"
)

// ColorTransform applies an ordered chain of matrices to frames, one
// frame at a time. Frames are processed strictly sequentially; only the
// pixel rows within one frame are processed in parallel (every pixel is
// independent of every other).
type ColorTransform struct {
	Matrices []colormatrix.Matrix

	pool frame.Pool
}

var _ fmt.Stringer = (*ColorTransform)(nil)

func NewColorTransform(matrices []colormatrix.Matrix) *ColorTransform {
	return &ColorTransform{
		Matrices: matrices,
	}
}

func (t *ColorTransform) String() string {
	return fmt.Sprintf("ColorTransform(chain of %d)", len(t.Matrices))
}

// Process folds the whole matrix chain over one frame. The chain is
// applied strictly in sequence, matrix by matrix; it is never collapsed
// into a pre-multiplied composite, because clipping happens between the
// steps. The input frame is not mutated; intermediate frames are recycled.
func (t *ColorTransform) Process(ctx context.Context, f *frame.Frame) *frame.Frame {
	logger.Tracef(ctx, "Process(ctx, %s)", f)
	current := f
	for _, m := range t.Matrices {
		next := t.pool.Get(current.Width, current.Height)
		applyInto(current, m, next)
		if current != f {
			t.pool.Put(current)
		}
		current = next
	}
	return current
}

// Recycle returns a frame produced by Process to the internal pool.
func (t *ColorTransform) Recycle(f *frame.Frame) {
	t.pool.Put(f)
}

// Apply transforms a single frame with a single matrix, returning a new
// frame of the same dimensions. The input frame is left untouched.
//
// Per pixel: the native BGR channel order is swizzled to RGB, the matrix
// rows are dotted with the RGB vector in float64, and every resulting
// component is clipped to [0,255] and rounded to nearest (the rounding
// rule all pixel-exact expectations in this repository are fixed to).
func Apply(f *frame.Frame, m colormatrix.Matrix) *frame.Frame {
	out := frame.New(f.Width, f.Height)
	applyInto(f, m, out)
	return out
}

func applyInto(src *frame.Frame, m colormatrix.Matrix, dst *frame.Frame) {
	width := src.Width
	parallel.Line(src.Height, func(start, end int) {
		for y := start; y < end; y++ {
			rowOffset := y * width * frame.Channels
			for x := 0; x < width; x++ {
				offset := rowOffset + x*frame.Channels
				b := float64(src.Pix[offset])
				g := float64(src.Pix[offset+1])
				r := float64(src.Pix[offset+2])
				outR, outG, outB := m.Apply(r, g, b)
				dst.Pix[offset] = clipRound(outB)
				dst.Pix[offset+1] = clipRound(outG)
				dst.Pix[offset+2] = clipRound(outR)
			}
		}
	})
}

// clipRound clips v to [0,255] and rounds half away from zero.
func clipRound(v float64) byte {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return byte(v + 0.5)
}

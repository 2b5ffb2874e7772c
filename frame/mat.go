// mat.go converts between Frame and gocv.Mat at the decoder/encoder
// boundary.

package frame

import (
	"fmt"

	"gocv.io/x/gocv"
)

// FromMat copies a decoded BGR mat into a Frame.
func FromMat(mat *gocv.Mat) (*Frame, error) {
	if mat.Type() != gocv.MatTypeCV8UC3 {
		return nil, fmt.Errorf("unexpected mat type %v: expected %v (8-bit BGR)", mat.Type(), gocv.MatTypeCV8UC3)
	}
	return FromBytes(mat.Cols(), mat.Rows(), mat.ToBytes())
}

// ToMat wraps the frame's pixel buffer into a mat suitable for encoding.
// The returned mat copies the buffer; the caller must Close() it.
func (f *Frame) ToMat() (gocv.Mat, error) {
	mat, err := gocv.NewMatFromBytes(f.Height, f.Width, gocv.MatTypeCV8UC3, f.Pix)
	if err != nil {
		return gocv.Mat{}, fmt.Errorf("unable to wrap the pixel buffer into a mat: %w", err)
	}
	return mat, nil
}

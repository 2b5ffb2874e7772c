// Package frame provides the pixel buffer type passed between the video
// source, the color transform engine and the video sink.
package frame

import (
	"fmt"
)

// Channels is the amount of color channels per pixel.
const Channels = 3

// Frame is one still image of a video stream, stored as dense BGR byte
// triplets in row-major order (the native channel order of the decoder).
//
// Ownership of a Frame passes linearly from the source through the engine
// to the sink; a Frame is never shared across that boundary.
type Frame struct {
	Width  int
	Height int
	Pix    []byte
}

// New returns a zeroed frame of the given dimensions.
func New(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*Channels),
	}
}

// FromBytes wraps an existing BGR byte buffer without copying it.
func FromBytes(width, height int, pix []byte) (*Frame, error) {
	if expected := width * height * Channels; len(pix) != expected {
		return nil, fmt.Errorf("invalid pixel buffer length %d: expected %d (%dx%dx%d)", len(pix), expected, width, height, Channels)
	}
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    pix,
	}, nil
}

// Size returns the size of the pixel buffer in bytes.
func (f *Frame) Size() int {
	return f.Width * f.Height * Channels
}

func (f *Frame) String() string {
	return fmt.Sprintf("Frame(%dx%d)", f.Width, f.Height)
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	dst := New(f.Width, f.Height)
	copy(dst.Pix, f.Pix)
	return dst
}

// BGRAt returns the channel values of the pixel at (x, y) in the native
// B, G, R order.
func (f *Frame) BGRAt(x, y int) (byte, byte, byte) {
	offset := (y*f.Width + x) * Channels
	return f.Pix[offset], f.Pix[offset+1], f.Pix[offset+2]
}

// SetBGR sets the channel values of the pixel at (x, y), given in the
// native B, G, R order.
func (f *Frame) SetBGR(x, y int, b, g, r byte) {
	offset := (y*f.Width + x) * Channels
	f.Pix[offset] = b
	f.Pix[offset+1] = g
	f.Pix[offset+2] = r
}

// Package video provides the frame source and frame sink abstractions of
// the conversion pipeline, together with their OpenCV-backed
// implementations for reading and writing video files.
package video

import (
	"context"
	"fmt"

	"github.com/daltonview/cvdpipeline/frame"
)

// StreamDescriptor carries the properties of the input video stream that
// are reused unmodified for the output sink.
type StreamDescriptor struct {
	FrameRate   float64
	Width       int
	Height      int
	TotalFrames uint64
}

func (d StreamDescriptor) String() string {
	return fmt.Sprintf("StreamDescriptor(%dx%d@%.3ffps, %d frames)", d.Width, d.Height, d.FrameRate, d.TotalFrames)
}

// Source produces the frames of one video stream, strictly in stream
// order. ReadFrame returns io.EOF when the stream is exhausted.
type Source interface {
	fmt.Stringer
	Descriptor() StreamDescriptor
	ReadFrame(ctx context.Context) (*frame.Frame, error)
	Close(ctx context.Context) error
}

// Sink consumes frames in the order they are given.
type Sink interface {
	fmt.Stringer
	WriteFrame(ctx context.Context, f *frame.Frame) error
	Close(ctx context.Context) error
}

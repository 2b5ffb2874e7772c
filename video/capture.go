package video

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"gocv.io/x/gocv"

	"github.com/daltonview/cvdpipeline/frame"
	"github.com/daltonview/cvdpipeline/logger"
)

type CaptureID uint64

var nextCaptureID atomic.Uint64

// Capture reads frames from a video file through OpenCV.
type Capture struct {
	*closeChan

	ID   CaptureID
	Path string

	capture    *gocv.VideoCapture
	descriptor StreamDescriptor
	mat        gocv.Mat
}

var _ Source = (*Capture)(nil)

// OpenCapture opens the video file at the given path and reads its stream
// descriptor. The total frame count reported by the container may be
// approximate, or zero when the container does not know it.
func OpenCapture(
	ctx context.Context,
	path string,
) (_ret *Capture, _err error) {
	logger.Debugf(ctx, "OpenCapture(ctx, '%s')", path)
	defer func() { logger.Debugf(ctx, "/OpenCapture(ctx, '%s'): %p %v", path, _ret, _err) }()

	if path == "" {
		return nil, ErrOpenInput{Path: path, Err: fmt.Errorf("the provided path is empty")}
	}

	capture, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, ErrOpenInput{Path: path, Err: err}
	}
	if !capture.IsOpened() {
		capture.Close()
		return nil, ErrOpenInput{Path: path, Err: fmt.Errorf("the decoder reports the file as not opened")}
	}

	descriptor := StreamDescriptor{
		FrameRate: capture.Get(gocv.VideoCaptureFPS),
		Width:     int(capture.Get(gocv.VideoCaptureFrameWidth)),
		Height:    int(capture.Get(gocv.VideoCaptureFrameHeight)),
	}
	if totalFrames := capture.Get(gocv.VideoCaptureFrameCount); totalFrames > 0 {
		descriptor.TotalFrames = uint64(totalFrames)
	}

	c := &Capture{
		closeChan: newCloseChan(),

		ID:   CaptureID(nextCaptureID.Add(1)),
		Path: path,

		capture:    capture,
		descriptor: descriptor,
		mat:        gocv.NewMat(),
	}
	return c, nil
}

func (c *Capture) String() string {
	return fmt.Sprintf("Capture(%s)", c.Path)
}

func (c *Capture) Descriptor() StreamDescriptor {
	return c.descriptor
}

// ReadFrame pulls the next frame off the stream. It returns io.EOF when
// the stream has no more frames; OpenCV does not distinguish a clean
// end-of-stream from a mid-stream decode failure, so a truncated input
// ends the stream early instead of erroring out.
func (c *Capture) ReadFrame(
	ctx context.Context,
) (*frame.Frame, error) {
	if c.IsClosed() {
		return nil, io.EOF
	}
	if !c.capture.Read(&c.mat) || c.mat.Empty() {
		return nil, io.EOF
	}
	f, err := frame.FromMat(&c.mat)
	if err != nil {
		return nil, fmt.Errorf("unable to convert the decoded mat: %w", err)
	}
	return f, nil
}

func (c *Capture) Close(
	ctx context.Context,
) error {
	if c == nil {
		return nil
	}
	if c.IsClosed() {
		return nil
	}
	c.closeChan.Close(ctx)
	c.mat.Close()
	if err := c.capture.Close(); err != nil {
		return fmt.Errorf("unable to close the capture of '%s': %w", c.Path, err)
	}
	return nil
}

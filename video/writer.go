package video

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/xaionaro-go/xsync"
	"gocv.io/x/gocv"

	"github.com/daltonview/cvdpipeline/frame"
	"github.com/daltonview/cvdpipeline/logger"
)

// FourCC is the fixed four-character code of the output encoder; together
// with the `.mp4` container it is the only output format this package
// produces.
const FourCC = "mp4v"

type WriterID uint64

var nextWriterID atomic.Uint64

// Writer encodes frames into an .mp4 file through OpenCV, at the frame
// rate and dimensions of the given stream descriptor.
type Writer struct {
	*closeChan

	ID   WriterID
	Path string

	SenderLocker xsync.Mutex

	writer     *gocv.VideoWriter
	descriptor StreamDescriptor
}

var _ Sink = (*Writer)(nil)

func OpenWriter(
	ctx context.Context,
	path string,
	descriptor StreamDescriptor,
) (_ret *Writer, _err error) {
	logger.Debugf(ctx, "OpenWriter(ctx, '%s', %s)", path, descriptor)
	defer func() { logger.Debugf(ctx, "/OpenWriter(ctx, '%s', %s): %p %v", path, descriptor, _ret, _err) }()

	if path == "" {
		return nil, ErrOpenOutput{Path: path, Err: fmt.Errorf("the provided path is empty")}
	}

	writer, err := gocv.VideoWriterFile(
		path,
		FourCC,
		descriptor.FrameRate,
		descriptor.Width,
		descriptor.Height,
		true,
	)
	if err != nil {
		return nil, ErrOpenOutput{Path: path, Err: err}
	}
	if !writer.IsOpened() {
		writer.Close()
		return nil, ErrOpenOutput{Path: path, Err: fmt.Errorf("the encoder reports the file as not opened")}
	}

	w := &Writer{
		closeChan: newCloseChan(),

		ID:   WriterID(nextWriterID.Add(1)),
		Path: path,

		writer:     writer,
		descriptor: descriptor,
	}
	return w, nil
}

func (w *Writer) String() string {
	return fmt.Sprintf("Writer(%s)", w.Path)
}

func (w *Writer) WriteFrame(
	ctx context.Context,
	f *frame.Frame,
) error {
	if w.IsClosed() {
		return fmt.Errorf("the writer of '%s' is already closed", w.Path)
	}
	if f.Width != w.descriptor.Width || f.Height != w.descriptor.Height {
		return ErrDimensionsMismatch{
			ExpectedWidth:  w.descriptor.Width,
			ExpectedHeight: w.descriptor.Height,
			GotWidth:       f.Width,
			GotHeight:      f.Height,
		}
	}
	mat, err := f.ToMat()
	if err != nil {
		return fmt.Errorf("unable to convert the frame for encoding: %w", err)
	}
	defer mat.Close()
	return xsync.DoR1(ctx, &w.SenderLocker, func() error {
		if err := w.writer.Write(mat); err != nil {
			return fmt.Errorf("unable to encode the frame into '%s': %w", w.Path, err)
		}
		return nil
	})
}

func (w *Writer) Close(
	ctx context.Context,
) error {
	if w == nil {
		return nil
	}
	if w.IsClosed() {
		return nil
	}
	w.closeChan.Close(ctx)
	return xsync.DoR1(ctx, &w.SenderLocker, func() error {
		if err := w.writer.Close(); err != nil {
			return fmt.Errorf("unable to finalize '%s': %w", w.Path, err)
		}
		return nil
	})
}

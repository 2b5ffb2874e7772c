// dummy_test.go contains the in-memory source and sink used by the
// controller tests.

package job

import (
	"context"
	"io"

	"github.com/daltonview/cvdpipeline/frame"
	"github.com/daltonview/cvdpipeline/video"
)

type DummySource struct {
	StreamDescriptor video.StreamDescriptor
	Frames           []*frame.Frame

	ReadFrameFn        func(ctx context.Context, n int) (*frame.Frame, error)
	ReadFrameCallCount int
	CloseCallCount     int
}

var _ video.Source = (*DummySource)(nil)

func (s *DummySource) String() string {
	return "DummySource"
}

func (s *DummySource) Descriptor() video.StreamDescriptor {
	return s.StreamDescriptor
}

func (s *DummySource) ReadFrame(ctx context.Context) (*frame.Frame, error) {
	n := s.ReadFrameCallCount
	s.ReadFrameCallCount++
	if s.ReadFrameFn != nil {
		return s.ReadFrameFn(ctx, n)
	}
	if n >= len(s.Frames) {
		return nil, io.EOF
	}
	return s.Frames[n], nil
}

func (s *DummySource) Close(ctx context.Context) error {
	s.CloseCallCount++
	return nil
}

type DummySink struct {
	Frames []*frame.Frame

	WriteFrameFn        func(ctx context.Context, n int, f *frame.Frame) error
	WriteFrameCallCount int
	CloseCallCount      int
}

var _ video.Sink = (*DummySink)(nil)

func (s *DummySink) String() string {
	return "DummySink"
}

func (s *DummySink) WriteFrame(ctx context.Context, f *frame.Frame) error {
	n := s.WriteFrameCallCount
	s.WriteFrameCallCount++
	if s.WriteFrameFn != nil {
		if err := s.WriteFrameFn(ctx, n, f); err != nil {
			return err
		}
	}
	s.Frames = append(s.Frames, f.Clone())
	return nil
}

func (s *DummySink) Close(ctx context.Context) error {
	s.CloseCallCount++
	return nil
}

package video

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStreamDescriptorString(t *testing.T) {
	d := StreamDescriptor{
		FrameRate:   29.97,
		Width:       1920,
		Height:      1080,
		TotalFrames: 300,
	}
	require.Equal(t, "StreamDescriptor(1920x1080@29.970fps, 300 frames)", d.String())
}

func TestErrDimensionsMismatch(t *testing.T) {
	err := ErrDimensionsMismatch{
		ExpectedWidth:  4,
		ExpectedHeight: 4,
		GotWidth:       8,
		GotHeight:      2,
	}
	require.Contains(t, err.Error(), "8x2")
	require.Contains(t, err.Error(), "4x4")
}

func TestOpenCapture_EmptyPath(t *testing.T) {
	_, err := OpenCapture(context.Background(), "")
	require.Error(t, err)
	require.ErrorAs(t, err, &ErrOpenInput{})
}

func TestOpenWriter_EmptyPath(t *testing.T) {
	_, err := OpenWriter(context.Background(), "", StreamDescriptor{FrameRate: 30, Width: 2, Height: 2})
	require.Error(t, err)
	require.ErrorAs(t, err, &ErrOpenOutput{})
}

func TestCloseChan(t *testing.T) {
	c := newCloseChan()
	require.False(t, c.IsClosed())
	c.Close(context.Background())
	c.Close(context.Background())
	require.True(t, c.IsClosed())
	select {
	case <-c.CloseChan():
	default:
		t.Fatal("expected the close channel to be closed")
	}
}

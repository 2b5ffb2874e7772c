package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/daltonview/cvdpipeline/colormatrix"
	"github.com/daltonview/cvdpipeline/frame"
)

func solidFrame(width, height int, b, g, r byte) *frame.Frame {
	f := frame.New(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			f.SetBGR(x, y, b, g, r)
		}
	}
	return f
}

func TestApply_PreservesDimensions(t *testing.T) {
	f := solidFrame(7, 5, 1, 2, 3)
	for _, name := range colormatrix.FilterNames() {
		m, err := colormatrix.Resolve(name)
		require.NoError(t, err)

		out := Apply(f, m)
		require.Equal(t, f.Width, out.Width, name)
		require.Equal(t, f.Height, out.Height, name)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	f := solidFrame(3, 3, 10, 20, 30)
	original := f.Clone()

	m, err := colormatrix.Resolve(colormatrix.FilterNameDeuteranopia)
	require.NoError(t, err)
	Apply(f, m)

	require.Equal(t, original.Pix, f.Pix)
}

func TestApply_ClipsToByteRange(t *testing.T) {
	overdrive := colormatrix.Matrix{
		{2, 0, 0},
		{0, -1, 0},
		{0, 0, 300},
	}
	white := solidFrame(2, 2, 255, 255, 255)
	out := Apply(white, overdrive)
	b, g, r := out.BGRAt(0, 0)
	require.Equal(t, byte(255), r)
	require.Equal(t, byte(0), g)
	require.Equal(t, byte(255), b)

	black := solidFrame(2, 2, 0, 0, 0)
	out = Apply(black, overdrive)
	b, g, r = out.BGRAt(1, 1)
	require.Equal(t, byte(0), r)
	require.Equal(t, byte(0), g)
	require.Equal(t, byte(0), b)
}

func TestApply_BoundaryInputsStayInRange(t *testing.T) {
	for _, name := range colormatrix.FilterNames() {
		m, err := colormatrix.Resolve(name)
		require.NoError(t, err)
		for _, f := range []*frame.Frame{
			solidFrame(2, 2, 0, 0, 0),
			solidFrame(2, 2, 255, 255, 255),
		} {
			out := Apply(f, m)
			require.Equal(t, f.Size(), out.Size())
		}
	}
}

func TestApply_IdentityWithinRounding(t *testing.T) {
	f := frame.New(4, 4)
	for i := range f.Pix {
		f.Pix[i] = byte(i * 7)
	}

	out := Apply(f, colormatrix.Identity())
	for i := range f.Pix {
		require.InDelta(t, f.Pix[i], out.Pix[i], 1, "pixel byte #%d", i)
	}
}

// A red pixel through Protanopia: R=round(0.567*255)=145,
// G=round(0.558*255)=142, B=round(0.000*255)=0. The expectations are
// fixed to the round-to-nearest rule used by the engine.
func TestApply_ProtanopiaSolidRed(t *testing.T) {
	m, err := colormatrix.Resolve(colormatrix.FilterNameProtanopia)
	require.NoError(t, err)

	red := solidFrame(4, 4, 0, 0, 255)
	out := Apply(red, m)
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			b, g, r := out.BGRAt(x, y)
			require.Equal(t, byte(145), r)
			require.Equal(t, byte(142), g)
			require.Equal(t, byte(0), b)
		}
	}
}

// The chain must be applied strictly matrix-by-matrix (with clipping in
// between), exactly like folding Apply over the list.
func TestColorTransform_ChainIsSequential(t *testing.T) {
	ctx := context.Background()

	m1, err := colormatrix.Resolve(colormatrix.FilterNameProtanopia)
	require.NoError(t, err)
	m2, err := colormatrix.Resolve(colormatrix.FilterNameTritanopia)
	require.NoError(t, err)

	f := frame.New(5, 3)
	for i := range f.Pix {
		f.Pix[i] = byte(251 * i)
	}

	transform := NewColorTransform([]colormatrix.Matrix{m1, m2})
	got := transform.Process(ctx, f)

	expected := Apply(Apply(f, m1), m2)
	require.Equal(t, expected.Pix, got.Pix)
}

func TestColorTransform_EmptyChainPassesThrough(t *testing.T) {
	ctx := context.Background()
	transform := NewColorTransform(nil)

	f := solidFrame(2, 2, 9, 8, 7)
	require.Same(t, f, transform.Process(ctx, f))
}

func TestClipRound(t *testing.T) {
	require.Equal(t, byte(0), clipRound(-3.2))
	require.Equal(t, byte(0), clipRound(0))
	require.Equal(t, byte(1), clipRound(0.5))
	require.Equal(t, byte(144), clipRound(144.49))
	require.Equal(t, byte(145), clipRound(144.585))
	require.Equal(t, byte(255), clipRound(255))
	require.Equal(t, byte(255), clipRound(1234.5))
}

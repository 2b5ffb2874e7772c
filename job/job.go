// Package job implements the conversion controller: it owns the video
// source, the video sink and the resolved filter chain, drives the
// sequential read/transform/write loop and emits progress notifications.
package job

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	uatomic "go.uber.org/atomic"

	"github.com/daltonview/cvdpipeline/colormatrix"
	"github.com/daltonview/cvdpipeline/video"
)

const (
	// ProgressBatchSize bounds the notification frequency: a progress
	// update is emitted every ProgressBatchSize processed frames (and at
	// the known last frame).
	ProgressBatchSize = 10

	// RequiredOutputExtension is the only container the sink writes.
	RequiredOutputExtension = ".mp4"
)

// Progress is one notification of the conversion moving forward.
// Percent is within [0,100] and never decreases over the lifetime of one
// job; it stays at 0 while the total frame count is unknown.
type Progress struct {
	Percent float64
	Frames  uint64
}

// Config is the full description of one conversion job. It must not be
// mutated while the job is running.
type Config struct {
	InputPath   string
	OutputPath  string
	FilterNames []string

	// OpenSourceFunc and OpenSinkFunc override how the source and the
	// sink are acquired. When nil, the OpenCV-backed file implementations
	// are used.
	OpenSourceFunc func(ctx context.Context, path string) (video.Source, error)
	OpenSinkFunc   func(ctx context.Context, path string, descriptor video.StreamDescriptor) (video.Sink, error)
}

type JobID uint64

var nextJobID atomic.Uint64

// Job is a single not-restartable conversion: it can be Serve()-d once.
type Job struct {
	ID     JobID
	Config Config

	matrices []colormatrix.Matrix

	state           uatomic.Int32
	framesProcessed uatomic.Uint64
	lastPercent     uatomic.Float64

	progressCh chan Progress
}

// New validates the configuration and returns a ready-to-serve job.
//
// Every configuration error (empty or too long filter chain, unknown
// filter name, output path without the required extension) is detected
// here, before any resource is opened: a rejected job performs no I/O and
// neither creates nor truncates the output file.
func New(cfg Config) (*Job, error) {
	if !strings.HasSuffix(strings.ToLower(cfg.OutputPath), RequiredOutputExtension) {
		return nil, ErrOutputExtension{Path: cfg.OutputPath}
	}
	matrices, err := colormatrix.ResolveChain(cfg.FilterNames)
	if err != nil {
		return nil, fmt.Errorf("invalid filter chain %v: %w", cfg.FilterNames, err)
	}
	return &Job{
		ID:     JobID(nextJobID.Add(1)),
		Config: cfg,

		matrices: matrices,

		progressCh: make(chan Progress, 1),
	}, nil
}

func (j *Job) String() string {
	return fmt.Sprintf("Job#%d('%s' -> '%s', %v)", j.ID, j.Config.InputPath, j.Config.OutputPath, j.Config.FilterNames)
}

// GetState returns the current lifecycle phase of the job.
func (j *Job) GetState() State {
	return State(j.state.Load())
}

func (j *Job) setState(s State) {
	j.state.Store(int32(s))
}

// GetFramesProcessed returns the amount of frames written to the sink so
// far.
func (j *Job) GetFramesProcessed() uint64 {
	return j.framesProcessed.Load()
}

func (j *Job) openSource(ctx context.Context) (video.Source, error) {
	if j.Config.OpenSourceFunc != nil {
		return j.Config.OpenSourceFunc(ctx, j.Config.InputPath)
	}
	return video.OpenCapture(ctx, j.Config.InputPath)
}

func (j *Job) openSink(
	ctx context.Context,
	descriptor video.StreamDescriptor,
) (video.Sink, error) {
	if j.Config.OpenSinkFunc != nil {
		return j.Config.OpenSinkFunc(ctx, j.Config.OutputPath, descriptor)
	}
	return video.OpenWriter(ctx, j.Config.OutputPath, descriptor)
}

package job

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/daltonview/cvdpipeline/engine"
	"github.com/daltonview/cvdpipeline/logger"
	"github.com/daltonview/cvdpipeline/video"
)

// Serve runs the whole conversion: Opened -> Streaming -> Finalized, or
// Aborted from either of the first two phases. It blocks until the job
// ends; callers that want to observe progress while the job is running
// consume Progress() from another goroutine.
//
// Frames are read, transformed and written strictly sequentially, in
// stream order. Cancelling the context aborts the job between frames.
func (j *Job) Serve(ctx context.Context) (_err error) {
	logger.Debugf(ctx, "Serve[%s]", j)
	defer func() { logger.Debugf(ctx, "/Serve[%s]: %v", j, _err) }()
	defer close(j.progressCh)

	j.setState(StateOpened)
	source, err := j.openSource(ctx)
	if err != nil {
		return j.abort(ctx, fmt.Errorf("unable to open the source: %w", err), nil, nil)
	}

	descriptor := source.Descriptor()
	logger.Debugf(ctx, "the input stream descriptor: %s", descriptor)

	sink, err := j.openSink(ctx, descriptor)
	if err != nil {
		return j.abort(ctx, fmt.Errorf("unable to open the sink: %w", err), source, nil)
	}

	j.setState(StateStreaming)
	if err := j.stream(ctx, source, sink, descriptor.TotalFrames); err != nil {
		return j.abort(ctx, err, source, sink)
	}

	return j.finalize(ctx, source, sink)
}

// stream runs the Streaming phase: the per-frame read/transform/write
// loop. A nil return means the source reported a clean end-of-stream.
func (j *Job) stream(
	ctx context.Context,
	source video.Source,
	sink video.Sink,
	totalFrames uint64,
) error {
	transform := engine.NewColorTransform(j.matrices)
	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("the context was cancelled: %w", err)
		}

		f, err := source.ReadFrame(ctx)
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			return nil
		default:
			return fmt.Errorf("unable to read frame #%d from %s: %w", j.framesProcessed.Load()+1, source, err)
		}

		out := transform.Process(ctx, f)
		if err := sink.WriteFrame(ctx, out); err != nil {
			return fmt.Errorf("unable to write frame #%d to %s: %w", j.framesProcessed.Load()+1, sink, err)
		}
		if out != f {
			transform.Recycle(out)
		}

		processed := j.framesProcessed.Add(1)
		if processed%ProgressBatchSize == 0 || processed == totalFrames {
			j.emitProgress(ctx, percent(processed, totalFrames))
		}
	}
}

// finalize emits the final progress of exactly 100 and releases the
// resources.
func (j *Job) finalize(
	ctx context.Context,
	source video.Source,
	sink video.Sink,
) error {
	j.emitProgress(ctx, 100)
	if err := source.Close(ctx); err != nil {
		logger.Errorf(ctx, "unable to close %s: %v", source, err)
	}
	if err := sink.Close(ctx); err != nil {
		j.setState(StateAborted)
		return ErrAborted{Err: fmt.Errorf("unable to finalize %s: %w", sink, err)}
	}
	j.setState(StateFinalized)
	logger.Infof(ctx, "finished %s: %d frames", j, j.framesProcessed.Load())
	return nil
}

// abort releases whatever resources were acquired and converts the cause
// into the terminal error of the job. The partially written output file
// is left as-is; the only guarantee is that no resource stays open.
func (j *Job) abort(
	ctx context.Context,
	cause error,
	source video.Source,
	sink video.Sink,
) error {
	j.setState(StateAborted)
	if source != nil {
		if err := source.Close(ctx); err != nil {
			logger.Errorf(ctx, "unable to close %s: %v", source, err)
		}
	}
	if sink != nil {
		if err := sink.Close(ctx); err != nil {
			logger.Errorf(ctx, "unable to close %s: %v", sink, err)
		}
	}
	return ErrAborted{Err: cause}
}

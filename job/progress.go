package job

import (
	"context"

	"github.com/daltonview/cvdpipeline/logger"
)

// Progress returns the one-way notification channel of the job. The
// channel conflates: a consumer that falls behind observes only the
// latest value, never a stalled producer. The channel is closed when the
// job ends; on success the last value received before the close is
// exactly 100.
func (j *Job) Progress() <-chan Progress {
	return j.progressCh
}

// emitProgress publishes a progress value without ever blocking the
// processing loop, by dropping the stale pending value if the consumer
// has not picked it up yet. Percent values are kept monotonic.
func (j *Job) emitProgress(ctx context.Context, percent float64) {
	if last := j.lastPercent.Load(); percent < last {
		percent = last
	}
	j.lastPercent.Store(percent)

	p := Progress{
		Percent: percent,
		Frames:  j.framesProcessed.Load(),
	}
	logger.Tracef(ctx, "emitProgress(ctx, %v)", p)
	for {
		select {
		case j.progressCh <- p:
			return
		default:
		}
		select {
		case <-j.progressCh:
		default:
		}
	}
}

// percent computes the progress percentage for the given processed frame
// count. An unknown (zero) total yields 0 instead of a division by zero;
// an approximate total smaller than the real frame count is clamped at
// 100.
func percent(processed, total uint64) float64 {
	if total == 0 {
		return 0
	}
	p := 100 * float64(processed) / float64(total)
	if p > 100 {
		p = 100
	}
	return p
}

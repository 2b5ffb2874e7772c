// Package cvdpipeline applies chains of named color vision deficiency
// simulation filters (Protanopia, Deuteranopia, Tritanopia) to every
// frame of a video file and writes the result to a new .mp4 file.
package cvdpipeline

import (
	"context"

	"github.com/xaionaro-go/observability"

	"github.com/daltonview/cvdpipeline/job"
)

// Convert runs one whole conversion synchronously and reports progress
// through the given callback.
//
// The conversion itself is served on its own goroutine; the callback is
// invoked on the calling goroutine with percentages in [0,100],
// non-decreasing, and -- on success -- a final value of exactly 100. A
// slow callback never stalls the frame loop: intermediate notifications
// are conflated instead.
//
// The returned error is the terminal outcome of the job: nil on success,
// or a descriptive failure. A configuration error (unknown filter name,
// empty chain, more than 3 chain entries, an output path without the
// `.mp4` extension) is reported without any I/O being performed.
func Convert(
	ctx context.Context,
	inputPath string,
	outputPath string,
	filterNames []string,
	onProgress func(percent float64),
) error {
	j, err := job.New(job.Config{
		InputPath:   inputPath,
		OutputPath:  outputPath,
		FilterNames: filterNames,
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	observability.Go(ctx, func(ctx context.Context) {
		errCh <- j.Serve(ctx)
	})

	for p := range j.Progress() {
		if onProgress != nil {
			onProgress(p.Percent)
		}
	}
	return <-errCh
}

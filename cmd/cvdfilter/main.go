package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/observability"

	"github.com/daltonview/cvdpipeline/colormatrix"
	"github.com/daltonview/cvdpipeline/job"
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "syntax: %s --filter <name> [--filter <name> ...] <input.mp4> <output.mp4>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "known filters: %s\n", strings.Join(colormatrix.FilterNames(), ", "))
		pflag.PrintDefaults()
	}

	loggerLevel := logger.LevelWarning
	pflag.Var(&loggerLevel, "log-level", "Log level")
	filterNames := pflag.StringArray("filter", nil, "a filter to apply; repeat the flag to chain up to 3 filters (applied in order)")
	netPprofAddr := pflag.String("net-pprof-listen-addr", "", "an address to listen for incoming net/pprof connections")
	pflag.Parse()
	if len(pflag.Args()) != 2 {
		pflag.Usage()
		os.Exit(1)
	}

	l := logrus.Default().WithLevel(loggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	ctx, cancelFn := context.WithCancel(ctx)
	defer cancelFn()
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	if *netPprofAddr != "" {
		observability.Go(ctx, func(ctx context.Context) { l.Error(http.ListenAndServe(*netPprofAddr, nil)) })
	}

	inputPath := pflag.Arg(0)
	outputPath := pflag.Arg(1)

	j, err := job.New(job.Config{
		InputPath:   inputPath,
		OutputPath:  outputPath,
		FilterNames: *filterNames,
	})
	if err != nil {
		l.Fatal(err)
	}
	l.Debugf("the job: %s", spew.Sdump(j.Config))

	errCh := make(chan error, 1)
	observability.Go(ctx, func(ctx context.Context) {
		errCh <- j.Serve(ctx)
	})

	for p := range j.Progress() {
		fmt.Printf("\rprogress: %3.0f%% (%d frames)", p.Percent, p.Frames)
	}
	fmt.Println()

	if err := <-errCh; err != nil {
		l.Fatal(err)
	}
	fmt.Printf("filtered video saved to: %s\n", outputPath)
}

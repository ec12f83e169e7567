package commands

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"os/signal"
	"time"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/spf13/cobra"
	"github.com/xaionaro-go/observability"
	"github.com/xaionaro-go/slidecap/pkg/capture"
	"github.com/xaionaro-go/slidecap/pkg/pdfexport"
	"github.com/xaionaro-go/slidecap/pkg/screenshot"
	"github.com/xaionaro-go/slidecap/pkg/slidestore"
	"github.com/xaionaro-go/slidecap/pkg/windowfinder"
)

func captureSlides(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()

	outputDir, err := cmd.Flags().GetString("output-dir")
	assertNoError(ctx, err)
	sensitivity, err := cmd.Flags().GetFloat64("sensitivity")
	assertNoError(ctx, err)
	intervalSeconds, err := cmd.Flags().GetFloat64("interval")
	assertNoError(ctx, err)
	regionStr, err := cmd.Flags().GetString("region")
	assertNoError(ctx, err)
	fullscreen, err := cmd.Flags().GetBool("fullscreen")
	assertNoError(ctx, err)
	windowKeywords, err := cmd.Flags().GetStringSlice("window")
	assertNoError(ctx, err)
	nonInteractive, err := cmd.Flags().GetBool("non-interactive")
	assertNoError(ctx, err)

	region, err := resolveRegion(ctx, regionStr, windowKeywords, fullscreen, nonInteractive)
	assertNoError(ctx, err)

	session := capture.New(
		capture.Config{
			Region:       region,
			Sensitivity:  sensitivity,
			PollInterval: time.Duration(intervalSeconds * float64(time.Second)),
		},
		screenshot.Implementation{},
		slidestore.New(outputDir),
		pdfexport.Assembler{},
	)
	session.OnSlide = func(_ context.Context, sequence uint, _ string) {
		fmt.Printf("captured slide %d\n", sequence)
	}

	ctx, cancelFn := context.WithCancel(ctx)
	defer cancelFn()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	defer signal.Stop(c)
	observability.Go(ctx, func(ctx context.Context) {
		select {
		case <-c:
			logger.Infof(ctx, "received an interruption signal, stopping the capture")
			fmt.Println("stopping the capture...")
			cancelFn()
		case <-ctx.Done():
		}
	})

	fmt.Printf("capturing to '%s' (sensitivity: %v, interval: %vs); press Ctrl+C to stop and save the document\n",
		outputDir, sensitivity, intervalSeconds)

	result, err := session.Start(ctx)
	if result != nil && result.SlideCount > 0 {
		fmt.Printf("captured %d slides into '%s'\n", result.SlideCount, result.SessionDir)
		if result.DocumentPath != "" {
			fmt.Printf("document saved: '%s'\n", result.DocumentPath)
		}
	} else {
		fmt.Println("no slides were captured")
	}
	// An incomplete document is an operator warning, not a failure: it was
	// written, and the skipped slide files are still on disk.
	var imagesSkipped pdfexport.ErrImagesSkipped
	if errors.As(err, &imagesSkipped) {
		fmt.Printf("warning: %d slide(s) could not be read and were left out of the document: %v\n",
			len(imagesSkipped.Paths), imagesSkipped.Paths)
		err = nil
	}
	assertNoError(ctx, err)
}

// resolveRegion turns the mutually complementary region flags into one
// concrete choice: an explicit rectangle wins, then a window search, then
// the full screen. No choice at all is an error: capturing something the
// user did not point at would be worse than refusing.
func resolveRegion(
	ctx context.Context,
	regionStr string,
	windowKeywords []string,
	fullscreen bool,
	nonInteractive bool,
) (*image.Rectangle, error) {
	if regionStr != "" {
		region, err := parseRegion(regionStr)
		if err != nil {
			return nil, fmt.Errorf("unable to parse the region '%s': %w", regionStr, err)
		}
		return region, nil
	}

	if len(windowKeywords) > 0 {
		windows, err := windowfinder.ListWindows(ctx)
		if err != nil {
			return nil, fmt.Errorf("unable to enumerate the windows: %w", err)
		}

		candidates := windowfinder.Match(windows, windowKeywords, windowfinder.DefaultPolicy())
		var picker windowfinder.Disambiguator = consolePicker{}
		if nonInteractive || len(candidates) <= 1 {
			picker = windowfinder.AutoPick{}
		}

		candidate, err := picker.Pick(ctx, candidates)
		if err != nil {
			return nil, fmt.Errorf("unable to pick a window: %w", err)
		}
		if candidate != nil {
			fmt.Printf("using window '%s' (%s): %v\n",
				candidate.Window.Title, candidate.Window.Owner, candidate.Window.Bounds)
			bounds := candidate.Window.Bounds
			return &bounds, nil
		}
		logger.Warnf(ctx, "no window matched the keywords %v", windowKeywords)
	}

	if fullscreen {
		return nil, nil // nil means the full screen
	}

	return nil, fmt.Errorf("no capture region was selected: pass --region, --window or --fullscreen")
}

// consolePicker is the human-in-the-loop disambiguation strategy: it lists
// the matches and reads a selection from stdin.
type consolePicker struct{}

var _ windowfinder.Disambiguator = consolePicker{}

func (consolePicker) Pick(
	ctx context.Context,
	candidates []windowfinder.Candidate,
) (*windowfinder.Candidate, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	fmt.Printf("found %d matching windows:\n", len(candidates))
	for idx, candidate := range candidates {
		fmt.Printf("  %d. %s (%s)\n", idx+1, candidate.Window.Title, candidate.Window.Owner)
	}
	fmt.Printf("select a window (1-%d) or 0 to cancel: ", len(candidates))

	var choice int
	if _, err := fmt.Fscanln(os.Stdin, &choice); err != nil {
		return nil, fmt.Errorf("unable to read the selection: %w", err)
	}
	if choice <= 0 || choice > len(candidates) {
		return nil, nil
	}
	return &candidates[choice-1], nil
}

package commands

import (
	"context"
	"os"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/spf13/cobra"
	"github.com/xaionaro-go/slidecap/pkg/capture"
)

var (
	// Access these variables only from a main package:

	Root = &cobra.Command{
		Use: os.Args[0],
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			l := logger.FromCtx(ctx).WithLevel(LoggerLevel)
			ctx = logger.CtxWithLogger(ctx, l)
			cmd.SetContext(ctx)
			logger.Debugf(ctx, "log-level: %v", LoggerLevel)
		},
	}

	Capture = &cobra.Command{
		Use:  "capture",
		Args: cobra.ExactArgs(0),
		Run:  captureSlides,
	}

	Windows = &cobra.Command{
		Use:  "windows",
		Args: cobra.ExactArgs(0),
		Run:  listWindows,
	}

	Assemble = &cobra.Command{
		Use:  "assemble <session-dir>",
		Args: cobra.ExactArgs(1),
		Run:  assembleDocument,
	}

	LoggerLevel = logger.LevelWarning
)

func init() {
	Root.AddCommand(Capture)
	Root.AddCommand(Windows)
	Root.AddCommand(Assemble)

	Root.PersistentFlags().Var(&LoggerLevel, "log-level", "")

	Capture.Flags().String("output-dir", "slides", "directory for the per-slide images and the final document")
	Capture.Flags().Float64("sensitivity", capture.DefaultSensitivity, "how different a frame has to be to count as a new slide, (0; 1]")
	Capture.Flags().Float64("interval", 1.0, "seconds between two samples")
	Capture.Flags().String("region", "", "capture region as 'x,y,width,height'")
	Capture.Flags().Bool("fullscreen", false, "capture the whole primary display")
	Capture.Flags().StringSlice("window", nil, "window keyword(s) to search for, in priority order")
	Capture.Flags().Bool("non-interactive", false, "never prompt; auto-pick the best window match")

	Assemble.Flags().String("output", "", "path of the document to produce (default: derived from the session directory)")
}

func assertNoError(ctx context.Context, err error) {
	if err != nil {
		logger.Panic(ctx, err)
	}
}

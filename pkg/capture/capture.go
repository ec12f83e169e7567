// Package capture implements the slide capture session: a polling loop
// that keeps only the frames differing enough from the last accepted one,
// persists them in capture order and assembles them into a PDF when the
// session ends.
package capture

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/hashicorp/go-multierror"
	"github.com/xaionaro-go/slidecap/pkg/framediff"
	"github.com/xaionaro-go/slidecap/pkg/pdfexport"
	"github.com/xaionaro-go/slidecap/pkg/screenshot"
	"github.com/xaionaro-go/slidecap/pkg/slidestore"
	"github.com/xaionaro-go/xcontext"
	"github.com/xaionaro-go/xsync"
)

const (
	DefaultSensitivity  = 0.05
	DefaultPollInterval = time.Second
)

// Config is fixed at Start; there is no mid-session mutation.
type Config struct {
	// Region is the screen rectangle to sample; nil means the full screen.
	Region *image.Rectangle

	// Sensitivity is the normalized luminance-difference threshold in
	// (0; 1] above which a frame counts as a new slide.
	Sensitivity float64

	// PollInterval is the pause between two consecutive samples.
	PollInterval time.Duration
}

func (cfg Config) Validate() error {
	if cfg.Sensitivity <= 0 || cfg.Sensitivity > 1 {
		return ErrConfig{Field: "Sensitivity", Err: fmt.Errorf("expected a value in (0; 1], received %f", cfg.Sensitivity)}
	}
	if cfg.PollInterval <= 0 {
		return ErrConfig{Field: "PollInterval", Err: fmt.Errorf("expected a positive duration, received %v", cfg.PollInterval)}
	}
	if cfg.Region != nil && cfg.Region.Empty() {
		return ErrConfig{Field: "Region", Err: fmt.Errorf("the region %v is empty", *cfg.Region)}
	}
	return nil
}

// Assembler builds the final document out of the ordered slide files; see
// pdfexport.Assembler for the production implementation.
type Assembler interface {
	Assemble(ctx context.Context, imagePaths []string, outputPath string) (skipped []string, _ error)
}

// Result describes what a closed session left on disk.
type Result struct {
	SessionID    string
	SessionDir   string
	DocumentPath string // empty when no document was produced
	SlideCount   uint
}

// Session owns one capture run. The loop itself is strictly sequential
// (capture, compare, commit, sleep); the locker only guards state
// observation from other goroutines.
type Session struct {
	locker xsync.Mutex
	state  State

	config    Config
	engine    screenshot.Engine
	store     *slidestore.Store
	assembler Assembler

	// OnSlide, if set, is invoked after every accepted slide commit.
	OnSlide func(ctx context.Context, sequence uint, path string)
}

func New(
	cfg Config,
	engine screenshot.Engine,
	store *slidestore.Store,
	assembler Assembler,
) *Session {
	return &Session{
		config:    cfg,
		engine:    engine,
		store:     store,
		assembler: assembler,
	}
}

func (s *Session) State(ctx context.Context) State {
	var state State
	s.locker.Do(ctx, func() {
		state = s.state
	})
	return state
}

func (s *Session) setState(ctx context.Context, state State) {
	s.locker.Do(ctx, func() {
		s.state = state
	})
	logger.Debugf(ctx, "session state: %s", state)
}

// Start validates the configuration, runs the capture loop until ctx is
// canceled and returns what the session produced. A canceled context is the
// normal way to stop: it is not reported as an error.
func (s *Session) Start(ctx context.Context) (*Result, error) {
	if err := s.config.Validate(); err != nil {
		return nil, err
	}

	var startErr error
	s.locker.Do(ctx, func() {
		if s.state != StateIdle {
			startErr = ErrAlreadyStarted{State: s.state}
			return
		}
		s.state = StateActive
	})
	if startErr != nil {
		return nil, startErr
	}

	sessionID := time.Now().Format("20060102_150405")
	result := &Result{
		SessionID:  sessionID,
		SessionDir: s.store.SessionDir(sessionID),
	}

	var screenshotCfg screenshot.Config
	if s.config.Region != nil {
		screenshotCfg.Bounds = *s.config.Region
	}

	logger.Infof(ctx, "capture session '%s' started: region:%v, sensitivity:%f, interval:%v",
		sessionID, screenshotCfg.Bounds, s.config.Sensitivity, s.config.PollInterval)

	loopErr := s.loop(ctx, sessionID, screenshotCfg, result)

	s.setState(ctx, StateStopping)

	// The stop request usually arrives as a context cancellation, but the
	// already-committed slides still have to be assembled.
	closeCtx := xcontext.DetachDone(ctx)
	closeErr := s.close(closeCtx, sessionID, result)

	s.setState(closeCtx, StateClosed)

	switch {
	case loopErr != nil && closeErr != nil:
		return result, multierror.Append(loopErr, closeErr)
	case loopErr != nil:
		return result, loopErr
	}
	return result, closeErr
}

func (s *Session) loop(
	ctx context.Context,
	sessionID string,
	screenshotCfg screenshot.Config,
	result *Result,
) error {
	t := time.NewTicker(s.config.PollInterval)
	defer t.Stop()

	var prev *image.RGBA
	var sequence uint
	for {
		frame, err := s.engine.Screenshot(screenshotCfg)
		switch {
		case err != nil:
			// A transient grab failure skips the iteration; it does not end
			// the session.
			logger.Errorf(ctx, "unable to capture a frame: %v", err)
		case frame == nil:
			logger.Errorf(ctx, "the frame source returned no frame")
		case framediff.Differs(imageOrNil(prev), frame, s.config.Sensitivity):
			sequence++
			path, err := s.store.Commit(ctx, sessionID, sequence, frame)
			if err != nil {
				// Losing an accepted slide would break the sequence
				// contiguity, so a failed write ends the session.
				result.SlideCount = sequence - 1
				return fmt.Errorf("unable to persist slide %d of session '%s': %w", sequence, sessionID, err)
			}
			prev = frame
			result.SlideCount = sequence
			logger.Infof(ctx, "captured slide %d: '%s'", sequence, path)
			if s.OnSlide != nil {
				s.OnSlide(ctx, sequence, path)
			}
		}

		// Cancellation is honored at iteration boundaries only, never
		// mid-commit.
		if ctx.Err() != nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
		}
	}
}

func (s *Session) close(
	ctx context.Context,
	sessionID string,
	result *Result,
) error {
	if result.SlideCount == 0 {
		logger.Infof(ctx, "no slides were captured in session '%s', not producing a document", sessionID)
		return nil
	}

	paths, err := s.store.List(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("unable to list the slides of session '%s': %w", sessionID, err)
	}

	outputPath := s.store.PDFPath(sessionID)
	skipped, err := s.assembler.Assemble(ctx, paths, outputPath)
	if len(skipped) > 0 {
		logger.Warnf(ctx, "%d of %d slides could not be normalized and were left out of the document: %v",
			len(skipped), len(paths), skipped)
	}
	var imagesSkipped pdfexport.ErrImagesSkipped
	switch {
	case err == nil:
	case errors.As(err, &imagesSkipped):
		// The document exists, just with fewer pages; the error is still
		// surfaced so the skips cannot pass unnoticed.
		result.DocumentPath = outputPath
		return fmt.Errorf("the document '%s' of session '%s' is incomplete (the slide files are still available in '%s'): %w",
			outputPath, sessionID, result.SessionDir, err)
	default:
		return fmt.Errorf("unable to assemble the document of session '%s' (the slide files are still available in '%s'): %w",
			sessionID, result.SessionDir, err)
	}

	result.DocumentPath = outputPath
	logger.Infof(ctx, "document saved: '%s' (%d slides)", outputPath, result.SlideCount)
	return nil
}

// imageOrNil converts a possibly-nil *image.RGBA to image.Image without
// producing a non-nil interface around a nil pointer.
func imageOrNil(img *image.RGBA) image.Image {
	if img == nil {
		return nil
	}
	return img
}

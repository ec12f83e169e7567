// Package slidestore persists accepted slides. It is the durable source of
// truth of a capture session: the naming scheme alone (zero-padded sequence
// numbers) reconstructs the capture order from a directory listing.
package slidestore

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/facebookincubator/go-belt/tool/logger"
)

type Store struct {
	OutputDir string
}

func New(outputDir string) *Store {
	return &Store{
		OutputDir: outputDir,
	}
}

func (s *Store) SessionDir(sessionID string) string {
	return filepath.Join(s.OutputDir, "session_"+sessionID)
}

// PDFPath returns the path of the assembled document of a session; it
// shares the timestamp with the session directory.
func (s *Store) PDFPath(sessionID string) string {
	return filepath.Join(s.OutputDir, fmt.Sprintf("slides_%s.pdf", sessionID))
}

func (s *Store) slidePath(sessionID string, sequence uint) string {
	return filepath.Join(s.SessionDir(sessionID), fmt.Sprintf("slide_%03d.png", sequence))
}

// Commit writes a slide under its (session, sequence) identity and returns
// the resulting path. The session directory is created on the first commit.
// Committing the same sequence number again overwrites the previous file,
// so a retry cannot leave two files behind for one slide.
func (s *Store) Commit(
	ctx context.Context,
	sessionID string,
	sequence uint,
	img image.Image,
) (string, error) {
	dir := s.SessionDir(sessionID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", ErrCommit{
			SessionID: sessionID,
			Sequence:  sequence,
			Err:       fmt.Errorf("unable to create the session directory '%s': %w", dir, err),
		}
	}

	path := s.slidePath(sessionID, sequence)
	if err := writePNG(path, img); err != nil {
		return "", ErrCommit{
			SessionID: sessionID,
			Sequence:  sequence,
			Err:       err,
		}
	}

	logger.Debugf(ctx, "committed slide %d of session '%s' to '%s'", sequence, sessionID, path)
	return path, nil
}

// writePNG writes through a temporary file, so a slide file never exists in
// a half-written state.
func writePNG(path string, img image.Image) error {
	f, err := os.OpenFile(path+"~", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("unable to open '%s~': %w", path, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path + "~")
		return fmt.Errorf("unable to encode the image to PNG: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path + "~")
		return fmt.Errorf("unable to close '%s~': %w", path, err)
	}

	if err := os.Rename(path+"~", path); err != nil {
		return fmt.Errorf("unable to rename '%s~' to '%s': %w", path, path, err)
	}
	return nil
}

// List returns the slide files of a session, ascending by sequence number.
// The sequence is parsed out of the file name and compared numerically, so
// the order holds even past the zero padding of the naming scheme.
func (s *Store) List(ctx context.Context, sessionID string) ([]string, error) {
	dir := s.SessionDir(sessionID)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("unable to read the session directory '%s': %w", dir, err)
	}

	type slideFile struct {
		sequence int
		path     string
	}
	var slides []slideFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, "slide_") || !strings.HasSuffix(name, ".png") {
			continue
		}
		sequence, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, "slide_"), ".png"))
		if err != nil {
			continue
		}
		slides = append(slides, slideFile{
			sequence: sequence,
			path:     filepath.Join(dir, name),
		})
	}
	sort.Slice(slides, func(i, j int) bool {
		return slides[i].sequence < slides[j].sequence
	})

	paths := make([]string, 0, len(slides))
	for _, slide := range slides {
		paths = append(paths, slide.path)
	}
	return paths, nil
}

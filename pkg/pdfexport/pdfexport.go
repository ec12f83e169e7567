// Package pdfexport assembles ordered slide images into a single PDF
// document, one page per image. The slide files themselves are only read,
// never modified: they remain the durable fallback if the document cannot
// be produced.
package pdfexport

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/hashicorp/go-multierror"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Assemble writes a PDF with one page per image of imagePaths, preserving
// the input order (first image = first page).
//
// An image that cannot be read or normalized is left out of the document
// and reported via the skipped return value (and the log); the remaining
// images are still encoded, and the accumulated normalization failures come
// back as an ErrImagesSkipped next to the written document. When nothing at
// all can be encoded, an ErrNoImages is returned and no document is written.
func Assemble(
	ctx context.Context,
	imagePaths []string,
	outputPath string,
) (skipped []string, _ error) {
	if len(imagePaths) == 0 {
		return nil, ErrNoImages{}
	}

	var pages []io.Reader
	var normErr *multierror.Error
	for _, path := range imagePaths {
		page, err := normalize(path)
		if err != nil {
			logger.Errorf(ctx, "unable to normalize the image '%s': %v", path, err)
			normErr = multierror.Append(normErr, fmt.Errorf("unable to normalize the image '%s': %w", path, err))
			skipped = append(skipped, path)
			continue
		}
		pages = append(pages, page)
	}
	if len(pages) == 0 {
		return skipped, ErrNoImages{Err: normErr.ErrorOrNil()}
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return skipped, fmt.Errorf("unable to create the document file '%s': %w", outputPath, err)
	}
	defer f.Close()

	if err := api.ImportImages(nil, f, pages, nil, nil); err != nil {
		return skipped, fmt.Errorf("unable to encode %d images into '%s': %w", len(pages), outputPath, err)
	}

	logger.Debugf(ctx, "assembled %d pages into '%s'", len(pages), outputPath)
	if normFailure := normErr.ErrorOrNil(); normFailure != nil {
		return skipped, ErrImagesSkipped{Paths: skipped, Err: normFailure}
	}
	return skipped, nil
}

// normalize decodes an image file and re-encodes it as RGBA PNG, so that
// every page reaches the encoder in one common color representation.
func normalize(path string) (io.Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("unable to decode: %w", err)
	}

	rgba, ok := img.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(img.Bounds())
		draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, rgba); err != nil {
		return nil, fmt.Errorf("unable to encode to PNG: %w", err)
	}
	return &buf, nil
}

// Assembler is the production document assembler, as a value that can be
// plugged into the capture session (and replaced by a fake in tests).
type Assembler struct{}

func (Assembler) Assemble(
	ctx context.Context,
	imagePaths []string,
	outputPath string,
) ([]string, error) {
	return Assemble(ctx, imagePaths, outputPath)
}

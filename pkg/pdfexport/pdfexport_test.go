package pdfexport

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/require"
)

func writeTestImage(t *testing.T, dir, name string, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestAssembleEmptyInput(t *testing.T) {
	ctx := context.Background()
	_, err := Assemble(ctx, nil, filepath.Join(t.TempDir(), "out.pdf"))
	require.Error(t, err)
	var noImages ErrNoImages
	require.ErrorAs(t, err, &noImages)
}

func TestAssembleSingleImage(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	img := writeTestImage(t, dir, "slide_001.png", color.White)

	outputPath := filepath.Join(dir, "out.pdf")
	skipped, err := Assemble(ctx, []string{img}, outputPath)
	require.NoError(t, err)
	require.Empty(t, skipped)

	pageCount, err := api.PageCountFile(outputPath)
	require.NoError(t, err)
	require.Equal(t, 1, pageCount)
}

func TestAssemblePageCountMatchesInput(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	paths := []string{
		writeTestImage(t, dir, "slide_001.png", color.White),
		writeTestImage(t, dir, "slide_002.png", color.Black),
		writeTestImage(t, dir, "slide_003.png", color.RGBA{R: 0xff, A: 0xff}),
	}

	outputPath := filepath.Join(dir, "out.pdf")
	skipped, err := Assemble(ctx, paths, outputPath)
	require.NoError(t, err)
	require.Empty(t, skipped)

	pageCount, err := api.PageCountFile(outputPath)
	require.NoError(t, err)
	require.Equal(t, len(paths), pageCount)
}

func TestAssembleNormalizesNonRGBA(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	// A grayscale PNG has to be converted, not dropped.
	gray := image.NewGray(image.Rect(0, 0, 16, 16))
	grayPath := filepath.Join(dir, "slide_001.png")
	f, err := os.Create(grayPath)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, gray))
	require.NoError(t, f.Close())

	outputPath := filepath.Join(dir, "out.pdf")
	skipped, err := Assemble(ctx, []string{grayPath}, outputPath)
	require.NoError(t, err)
	require.Empty(t, skipped)

	pageCount, err := api.PageCountFile(outputPath)
	require.NoError(t, err)
	require.Equal(t, 1, pageCount)
}

func TestAssembleSkipsUnreadableImage(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	good1 := writeTestImage(t, dir, "slide_001.png", color.White)
	broken := filepath.Join(dir, "slide_002.png")
	require.NoError(t, os.WriteFile(broken, []byte("not a png"), 0644))
	good2 := writeTestImage(t, dir, "slide_003.png", color.Black)

	outputPath := filepath.Join(dir, "out.pdf")
	skipped, err := Assemble(ctx, []string{good1, broken, good2}, outputPath)
	require.Equal(t, []string{broken}, skipped)

	// The skips are not silent: the document is written, and the
	// normalization failures come back as an error next to it.
	var imagesSkipped ErrImagesSkipped
	require.ErrorAs(t, err, &imagesSkipped)
	require.Equal(t, []string{broken}, imagesSkipped.Paths)
	require.ErrorContains(t, imagesSkipped.Err, broken)
	var noImages ErrNoImages
	require.False(t, errors.As(err, &noImages))

	pageCount, err := api.PageCountFile(outputPath)
	require.NoError(t, err)
	require.Equal(t, 2, pageCount)
}

func TestAssembleAllImagesUnreadable(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	broken := filepath.Join(dir, "slide_001.png")
	require.NoError(t, os.WriteFile(broken, []byte("not a png"), 0644))

	outputPath := filepath.Join(dir, "out.pdf")
	skipped, err := Assemble(ctx, []string{broken}, outputPath)
	require.Equal(t, []string{broken}, skipped)
	var noImages ErrNoImages
	require.ErrorAs(t, err, &noImages)
	require.Error(t, noImages.Err)

	_, err = os.Stat(outputPath)
	require.True(t, os.IsNotExist(err))
}

package commands

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xaionaro-go/slidecap/pkg/pdfexport"
	"github.com/xaionaro-go/slidecap/pkg/slidestore"
)

// assembleDocument rebuilds the PDF out of an existing session directory:
// the slide files stay usable even when the original run could not produce
// a document.
func assembleDocument(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()
	sessionDir := filepath.Clean(args[0])

	outputPath, err := cmd.Flags().GetString("output")
	assertNoError(ctx, err)

	sessionID := strings.TrimPrefix(filepath.Base(sessionDir), "session_")
	store := slidestore.New(filepath.Dir(sessionDir))
	if outputPath == "" {
		outputPath = store.PDFPath(sessionID)
	}

	paths, err := store.List(ctx, sessionID)
	assertNoError(ctx, err)

	skipped, err := pdfexport.Assemble(ctx, paths, outputPath)
	if len(skipped) > 0 {
		fmt.Printf("left out %d unreadable slide file(s): %v\n", len(skipped), skipped)
	}
	// The skips were just printed; as long as a document came out, they are
	// not a failure.
	var imagesSkipped pdfexport.ErrImagesSkipped
	if errors.As(err, &imagesSkipped) {
		err = nil
	}
	assertNoError(ctx, err)

	fmt.Printf("document saved: '%s' (%d pages)\n", outputPath, len(paths)-len(skipped))
}

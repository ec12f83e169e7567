package pdfexport

import "fmt"

// ErrNoImages means there was nothing to encode: either the input sequence
// was empty, or no image survived normalization.
type ErrNoImages struct {
	Err error
}

var _ error = ErrNoImages{}

func (e ErrNoImages) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("no images to assemble into a document: %v", e.Err)
	}
	return "no images to assemble into a document"
}

func (e ErrNoImages) Unwrap() error {
	return e.Err
}

// ErrImagesSkipped means the document was written, but some images did not
// survive normalization and are missing from it.
type ErrImagesSkipped struct {
	Paths []string
	Err   error
}

var _ error = ErrImagesSkipped{}

func (e ErrImagesSkipped) Error() string {
	return fmt.Sprintf("%d image(s) were left out of the document: %v", len(e.Paths), e.Err)
}

func (e ErrImagesSkipped) Unwrap() error {
	return e.Err
}

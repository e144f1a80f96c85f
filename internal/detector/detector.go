// Package detector implements the name-detection capability of the
// capture flow: given the bytes of a photographed folder label, produce
// a best-guess student name. Two implementations exist — an OCR-backed
// one and a random substitute — and the workflow treats them
// interchangeably. Detection never persists anything.
package detector

import (
	"context"
	"errors"
	"image"
)

// Detector produces a candidate student name from an optional captured
// image. Implementations must be safe for concurrent use.
type Detector interface {
	Detect(ctx context.Context, imageBytes []byte) (string, error)
}

// Recognizer is the narrow seam to an external text-recognition engine.
// It receives a preprocessed (grayscaled, denoised) image and returns
// the text fragments it found, in reading order.
type Recognizer interface {
	Recognize(img image.Image) ([]string, error)
}

// DecodeFunc turns encoded image bytes into a pixel buffer. The default
// is the stdlib image.Decode; tests inject their own.
type DecodeFunc func(data []byte) (image.Image, error)

// ErrDecode reports that the image payload could not be decoded into
// pixels. Callers translate it into a request-level decode failure.
var ErrDecode = errors.New("image decode failed")

package detector

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/disintegration/imaging"
)

// OCR detects names by running an external text-recognition engine over
// a preprocessed label photo. The preprocessing mirrors what works well
// for printed labels: grayscale then a light blur to knock out sensor
// noise before recognition.
type OCR struct {
	decode    DecodeFunc
	recognize Recognizer
}

// NewOCR constructs an OCR detector around the given recognition
// engine, using the stdlib image decoder.
func NewOCR(rec Recognizer) *OCR {
	return NewOCRWithDecoder(rec, stdDecode)
}

// NewOCRWithDecoder is like NewOCR but with an injected decode
// function.
func NewOCRWithDecoder(rec Recognizer, decode DecodeFunc) *OCR {
	if rec == nil {
		panic("nil recognizer passed to NewOCRWithDecoder")
	}
	return &OCR{decode: decode, recognize: rec}
}

// Detect decodes the payload, preprocesses it and runs recognition.
// The detected fragments are joined with single spaces and trimmed.
// Decode failures are reported as ErrDecode; engine failures are
// returned as plain errors for the caller to surface.
func (o *OCR) Detect(ctx context.Context, imageBytes []byte) (string, error) {
	if len(imageBytes) == 0 {
		return "", fmt.Errorf("%w: empty payload", ErrDecode)
	}
	img, err := o.decode(imageBytes)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// Grayscale + blur denoise before recognition.
	pre := imaging.Blur(imaging.Grayscale(img), 1.0)

	fragments, err := o.recognize.Recognize(pre)
	if err != nil {
		return "", fmt.Errorf("text recognition failed: %w", err)
	}
	return strings.TrimSpace(strings.Join(fragments, " ")), nil
}

func stdDecode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

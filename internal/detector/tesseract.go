package detector

import (
	"bytes"
	"image"
	"image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract adapts the gosseract Tesseract bindings to the Recognizer
// seam. A fresh client is created per call because gosseract clients
// are not safe for concurrent use.
type Tesseract struct {
	lang string
}

// NewTesseract returns a recognizer for the given Tesseract language
// code (e.g. "por").
func NewTesseract(lang string) *Tesseract {
	return &Tesseract{lang: lang}
}

// Recognize runs Tesseract over the preprocessed image and returns the
// recognized lines as fragments, empties dropped.
func (t *Tesseract) Recognize(img image.Image) ([]string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}

	client := gosseract.NewClient()
	defer client.Close()
	if t.lang != "" {
		if err := client.SetLanguage(t.lang); err != nil {
			return nil, err
		}
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, err
	}
	text, err := client.Text()
	if err != nil {
		return nil, err
	}

	var fragments []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			fragments = append(fragments, line)
		}
	}
	return fragments, nil
}

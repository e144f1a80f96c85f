package detector

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"testing"
)

// stubRecognizer returns canned fragments or a canned error.
type stubRecognizer struct {
	fragments []string
	err       error
	gotImage  image.Image
}

func (s *stubRecognizer) Recognize(img image.Image) ([]string, error) {
	s.gotImage = img
	return s.fragments, s.err
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestRandomReturnsCandidateName(t *testing.T) {
	det := NewRandom()
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		name, err := det.Detect(context.Background(), nil)
		if err != nil {
			t.Fatalf("Detect: %v", err)
		}
		found := false
		for _, c := range candidateNames {
			if name == c {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("detected %q is not in the candidate list", name)
		}
		seen[name] = true
	}
	if len(seen) < 2 {
		t.Errorf("100 draws produced %d distinct names, expected variety", len(seen))
	}
}

func TestOCRJoinsFragmentsWithSingleSpaces(t *testing.T) {
	rec := &stubRecognizer{fragments: []string{"Ana", "Oliveira"}}
	det := NewOCR(rec)

	name, err := det.Detect(context.Background(), pngBytes(t))
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if name != "Ana Oliveira" {
		t.Errorf("detected = %q, want %q", name, "Ana Oliveira")
	}
	if rec.gotImage == nil {
		t.Error("recognizer never received the preprocessed image")
	}
}

func TestOCRTrimsSurroundingWhitespace(t *testing.T) {
	rec := &stubRecognizer{fragments: []string{"  ", "Pedro Costa", ""}}
	det := NewOCR(rec)

	name, err := det.Detect(context.Background(), pngBytes(t))
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if name != "Pedro Costa" {
		t.Errorf("detected = %q, want trimmed %q", name, "Pedro Costa")
	}
}

func TestOCRReportsDecodeFailure(t *testing.T) {
	det := NewOCR(&stubRecognizer{})

	if _, err := det.Detect(context.Background(), []byte("not an image")); !errors.Is(err, ErrDecode) {
		t.Errorf("Detect(garbage) = %v, want ErrDecode", err)
	}
	if _, err := det.Detect(context.Background(), nil); !errors.Is(err, ErrDecode) {
		t.Errorf("Detect(nil) = %v, want ErrDecode", err)
	}
}

func TestOCRSurfacesRecognizerError(t *testing.T) {
	engineErr := errors.New("engine exploded")
	det := NewOCR(&stubRecognizer{err: engineErr})

	_, err := det.Detect(context.Background(), pngBytes(t))
	if !errors.Is(err, engineErr) {
		t.Errorf("Detect = %v, want wrapped engine error", err)
	}
	if errors.Is(err, ErrDecode) {
		t.Error("engine failure must not masquerade as a decode failure")
	}
}

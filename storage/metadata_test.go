package storage

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/atelierhq/design-portal/models"
)

func TestProbeImage_PNG(t *testing.T) {
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}

	format, width, height, err := ProbeImage(buf.Bytes())
	if err != nil {
		t.Fatalf("probe failed: %v", err)
	}
	if format != "png" {
		t.Errorf("format = %q, want png", format)
	}
	if width != 64 || height != 48 {
		t.Errorf("dimensions = %dx%d, want 64x48", width, height)
	}
}

func TestProbeImage_RejectsNonImage(t *testing.T) {
	_, _, _, err := ProbeImage([]byte("definitely not pixels"))
	if !errors.Is(err, models.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

package capture

import (
	"image"
	"image/color"
	"testing"
)

func TestScaleToFitKeepsFittingFrames(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 50))
	if got := ScaleToFit(src, 960, 600); got != src {
		t.Fatalf("expected the original frame back when it already fits")
	}
}

func TestScaleToFitPreservesAspectRatio(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1920, 1080))
	got := ScaleToFit(src, 960, 600)
	b := got.Bounds()
	if b.Dx() != 960 || b.Dy() != 540 {
		t.Fatalf("expected 960x540, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestScaleToFitSamplesNearestPixels(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	quadrants := []color.RGBA{
		{255, 0, 0, 255},
		{0, 255, 0, 255},
		{0, 0, 255, 255},
		{255, 255, 255, 255},
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetRGBA(x, y, quadrants[(y/2)*2+x/2])
		}
	}
	got := ScaleToFit(src, 2, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			want := quadrants[y*2+x]
			if got.RGBAAt(x, y) != want {
				t.Fatalf("pixel (%d,%d): got %v, want %v", x, y, got.RGBAAt(x, y), want)
			}
		}
	}
}

func TestScaleToFitDegenerateLimits(t *testing.T) {
	if got := ScaleToFit(nil, 100, 100); got != nil {
		t.Fatalf("expected nil for nil frame")
	}
	src := image.NewRGBA(image.Rect(0, 0, 300, 200))
	got := ScaleToFit(src, 0, 0)
	b := got.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 {
		t.Fatalf("expected at least 1x1, got %dx%d", b.Dx(), b.Dy())
	}
	if b.Dx() > 2 || b.Dy() > 2 {
		t.Fatalf("expected a collapsed frame, got %dx%d", b.Dx(), b.Dy())
	}
}

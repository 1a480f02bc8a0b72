package capture

import (
	"image"
	"testing"
)

func TestAcquireFrameReusesRecycledSlice(t *testing.T) {
	first := acquireFrame(64, 48)
	if got := len(first.Pix); got != 64*48*4 {
		t.Fatalf("expected %d pixel bytes, got %d", 64*48*4, got)
	}
	backing := &first.Pix[0]
	RecycleFrame(first)

	second := acquireFrame(32, 24)
	if &second.Pix[0] != backing {
		t.Error("expected the recycled backing slice to be reused")
	}
	if second.Rect != image.Rect(0, 0, 32, 24) {
		t.Errorf("unexpected bounds %v", second.Rect)
	}
	if second.Stride != 32*4 {
		t.Errorf("unexpected stride %d", second.Stride)
	}
}

func TestAcquireFrameGrowsPastPooledCapacity(t *testing.T) {
	small := acquireFrame(8, 8)
	RecycleFrame(small)

	big := acquireFrame(128, 128)
	if got := len(big.Pix); got != 128*128*4 {
		t.Fatalf("expected %d pixel bytes, got %d", 128*128*4, got)
	}
}

func TestRecycleFrameIgnoresDegenerateFrames(t *testing.T) {
	RecycleFrame(nil)
	RecycleFrame(&image.RGBA{})
	if img := acquireFrame(0, 0); len(img.Pix) != 0 {
		t.Errorf("expected an empty frame for zero size, got %d bytes", len(img.Pix))
	}
}

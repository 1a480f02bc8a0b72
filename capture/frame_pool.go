package capture

import (
	"image"
	"sync"
)

// framePool recycles RGBA backing slices between analysis cycles. The
// screenshot backend still allocates a fresh frame per grab; pooling covers
// the scaler output and any frame handed back through RecycleFrame, which
// keeps the steady-state allocation rate flat while a session runs.
var framePool sync.Pool

// acquireFrame returns an RGBA image anchored at the origin with the given
// size, reusing a pooled backing slice when one is large enough.
func acquireFrame(w, h int) *image.RGBA {
	if w <= 0 || h <= 0 {
		return &image.RGBA{Rect: image.Rect(0, 0, w, h)}
	}
	needed := w * h * 4
	if v := framePool.Get(); v != nil {
		if img := v.(*image.RGBA); cap(img.Pix) >= needed {
			img.Pix = img.Pix[:needed]
			img.Stride = w * 4
			img.Rect = image.Rect(0, 0, w, h)
			return img
		}
	}
	return &image.RGBA{Pix: make([]byte, needed), Stride: w * 4, Rect: image.Rect(0, 0, w, h)}
}

// RecycleFrame returns a frame to the pool for reuse. The caller must not
// touch the frame afterwards. Nil and empty frames are ignored.
func RecycleFrame(img *image.RGBA) {
	if img == nil || len(img.Pix) == 0 {
		return
	}
	framePool.Put(img)
}

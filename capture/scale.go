package capture

import "image"

// ScaleToFit downsamples src with nearest-neighbour sampling so it fits
// within maxW x maxH, preserving aspect ratio. The original frame is
// returned unchanged when it already fits. The result may use a pooled
// backing slice; hand it to RecycleFrame when done.
func ScaleToFit(src *image.RGBA, maxW, maxH int) *image.RGBA {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 1 || h < 1 {
		return src
	}
	if w <= maxW && h <= maxH {
		return src
	}
	if maxW < 1 {
		maxW = 1
	}
	if maxH < 1 {
		maxH = 1
	}
	ratio := float64(maxW) / float64(w)
	if r := float64(maxH) / float64(h); r < ratio {
		ratio = r
	}
	newW := int(float64(w)*ratio + 0.5)
	newH := int(float64(h)*ratio + 0.5)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}
	dst := acquireFrame(newW, newH)
	for y := 0; y < newH; y++ {
		sy := b.Min.Y + y*h/newH
		srow := src.Pix[src.PixOffset(b.Min.X, sy):]
		drow := dst.Pix[dst.PixOffset(0, y):]
		for x := 0; x < newW; x++ {
			so := (x * w / newW) * 4
			do := x * 4
			copy(drow[do:do+4], srow[so:so+4])
		}
	}
	return dst
}

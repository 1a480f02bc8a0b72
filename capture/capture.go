package capture

import (
	"image"

	"github.com/vova616/screenshot"
)

// Grab returns a screen capture of the current active monitor.
func Grab() (*image.RGBA, error) {
	img, err := screenshot.CaptureScreen()
	if err != nil {
		return nil, err
	}
	return img, nil
}

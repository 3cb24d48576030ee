package processing

import (
	"image"
)

// Handle owns one decoded image. It is not safe for concurrent use.
type Handle struct {
	img    *image.NRGBA
	format string
}

func newHandle(img *image.NRGBA, format string) *Handle {
	return &Handle{img: img, format: format}
}

// Image returns the decoded pixels, or ErrReleased after Close
func (h *Handle) Image() (*image.NRGBA, error) {
	if h == nil || h.img == nil {
		return nil, ErrReleased
	}
	return h.img, nil
}

// Format returns the format name the image was decoded from ("jpeg", "png", "webp", ...)
func (h *Handle) Format() string {
	return h.format
}

// Bounds returns the image bounds, or an empty rectangle after Close
func (h *Handle) Bounds() image.Rectangle {
	if h == nil || h.img == nil {
		return image.Rectangle{}
	}
	return h.img.Bounds()
}

// Closed reports whether Close has been called
func (h *Handle) Closed() bool {
	return h == nil || h.img == nil
}

// Close drops the pixel buffer. Calling it more than once is a no-op.
func (h *Handle) Close() error {
	if h != nil {
		h.img = nil
	}
	return nil
}

func (h *Handle) replace(img *image.NRGBA) {
	h.img = img
}

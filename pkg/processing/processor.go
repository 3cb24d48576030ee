// Package processing wraps the image decode, clone, resize and encode
// primitives that variant generation is built from.
package processing

import (
	"errors"
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"github.com/nfnt/resize"
	_ "golang.org/x/image/webp"

	"github.com/menta2k/image-variants/internal/utils"
)

var (
	ErrDecode            = errors.New("image decode failed")
	ErrEncode            = errors.New("image encode failed")
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrReleased          = errors.New("image handle already released")
	ErrInvalidBox        = errors.New("bounding box dimensions must be positive")
)

// Backend selects the resampling implementation used by Fit
type Backend string

const (
	BackendImaging Backend = "imaging"
	BackendNFNT    Backend = "nfnt"
)

// Options configures a Processor
type Options struct {
	Backend      Backend
	Filter       string // lanczos, catmullrom, linear, box or nearest; imaging backend only
	JPEGQuality  int
	WebPQuality  float32
	WebPLossless bool
	AutoOrient   bool
}

// DefaultOptions returns the options NewProcessor uses
func DefaultOptions() Options {
	return Options{
		Backend:     BackendImaging,
		Filter:      "lanczos",
		JPEGQuality: 85,
		WebPQuality: 85,
		AutoOrient:  true,
	}
}

// Validate checks the option values
func (o Options) Validate() error {
	switch o.Backend {
	case BackendImaging, BackendNFNT:
	default:
		return fmt.Errorf("unknown resize backend: %q", o.Backend)
	}
	if _, ok := filters[strings.ToLower(o.Filter)]; !ok {
		return fmt.Errorf("unknown resample filter: %q", o.Filter)
	}
	if o.JPEGQuality < 1 || o.JPEGQuality > 100 {
		return fmt.Errorf("jpeg quality must be between 1 and 100, got %d", o.JPEGQuality)
	}
	if o.WebPQuality < 0 || o.WebPQuality > 100 {
		return fmt.Errorf("webp quality must be between 0 and 100, got %.0f", o.WebPQuality)
	}
	return nil
}

var filters = map[string]imaging.ResampleFilter{
	"":           imaging.Lanczos,
	"lanczos":    imaging.Lanczos,
	"catmullrom": imaging.CatmullRom,
	"linear":     imaging.Linear,
	"box":        imaging.Box,
	"nearest":    imaging.NearestNeighbor,
}

// Processor handles image processing operations
type Processor struct {
	opts   Options
	filter imaging.ResampleFilter
}

// NewProcessor creates a new image processor with default options
func NewProcessor() *Processor {
	p, err := NewProcessorWithOptions(DefaultOptions())
	if err != nil {
		panic(fmt.Sprintf("processing: invalid default options: %v", err))
	}
	return p
}

// NewProcessorWithOptions creates a processor after validating opts
func NewProcessorWithOptions(opts Options) (*Processor, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Processor{opts: opts, filter: filters[strings.ToLower(opts.Filter)]}, nil
}

// Open decodes the image at path. The caller owns the returned handle and
// must Close it.
func (p *Processor) Open(path string) (*Handle, error) {
	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if !strings.HasPrefix(mime.String(), "image/") {
		return nil, fmt.Errorf("%w: %s: not an image (%s)", ErrDecode, path, mime.String())
	}
	format := strings.TrimPrefix(mime.String(), "image/")

	var img image.Image
	if mime.Is("image/webp") {
		img, err = decodeWebP(path)
	} else {
		img, err = imaging.Open(path, imaging.AutoOrientation(p.opts.AutoOrient))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}

	return newHandle(toNRGBA(img), format), nil
}

func decodeWebP(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if img, err := webp.Decode(f); err == nil {
		return img, nil
	}
	// fall back to the pure Go decoder registered by x/image/webp
	if _, err := f.Seek(0, 0); err != nil {
		return nil, err
	}
	img, _, err := image.Decode(f)
	return img, err
}

// Clone returns an independent deep copy of h
func (p *Processor) Clone(h *Handle) (*Handle, error) {
	img, err := h.Image()
	if err != nil {
		return nil, err
	}
	return newHandle(imaging.Clone(img), h.Format()), nil
}

// Fit shrinks h in place so it fits within maxWidth x maxHeight, keeping
// the aspect ratio. Images that already fit are left untouched.
func (p *Processor) Fit(h *Handle, maxWidth, maxHeight int) error {
	img, err := h.Image()
	if err != nil {
		return err
	}
	if maxWidth <= 0 || maxHeight <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidBox, maxWidth, maxHeight)
	}

	b := img.Bounds()
	if b.Dx() <= maxWidth && b.Dy() <= maxHeight {
		return nil
	}

	switch p.opts.Backend {
	case BackendNFNT:
		h.replace(toNRGBA(resize.Thumbnail(uint(maxWidth), uint(maxHeight), img, resize.Lanczos3)))
	default:
		h.replace(imaging.Fit(img, maxWidth, maxHeight, p.filter))
	}
	return nil
}

// Save encodes h to path. The output format follows the path extension;
// a path without one keeps the format the image was decoded from.
func (p *Processor) Save(h *Handle, path string) error {
	img, err := h.Image()
	if err != nil {
		return err
	}

	format := h.Format()
	if ext := utils.GetFileExtension(path); ext != "" {
		if !utils.IsImageFile(path) {
			return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
		}
		format = ext
	}
	if _, ok := encoders[format]; !ok && format != "webp" {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := p.encode(img, path, format); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncode, path, err)
	}
	return nil
}

// encoders maps extensions and decoded format names onto imaging formats
var encoders = map[string]imaging.Format{
	"jpg":  imaging.JPEG,
	"jpeg": imaging.JPEG,
	"png":  imaging.PNG,
	"gif":  imaging.GIF,
	"bmp":  imaging.BMP,
	"tif":  imaging.TIFF,
	"tiff": imaging.TIFF,
}

func (p *Processor) encode(img image.Image, path, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if format == "webp" {
		err = webp.Encode(f, img, &webp.Options{Lossless: p.opts.WebPLossless, Quality: p.opts.WebPQuality})
	} else {
		err = imaging.Encode(f, img, encoders[format], imaging.JPEGQuality(p.opts.JPEGQuality))
	}
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ImageInfo contains basic image metadata
type ImageInfo struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	AspectRatio float64 `json:"aspect_ratio"`
	Format      string  `json:"format"`
}

// Info returns the dimensions of h
func (p *Processor) Info(h *Handle) (ImageInfo, error) {
	img, err := h.Image()
	if err != nil {
		return ImageInfo{}, err
	}
	b := img.Bounds()
	return ImageInfo{
		Width:       b.Dx(),
		Height:      b.Dy(),
		AspectRatio: float64(b.Dx()) / float64(b.Dy()),
		Format:      h.Format(),
	}, nil
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Bounds().Min == (image.Point{}) {
		return n
	}
	return imaging.Clone(img)
}

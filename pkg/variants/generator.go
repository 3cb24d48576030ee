// Package variants produces resized copies of a source image, one per
// entry of a size catalog, written next to the source file.
package variants

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/menta2k/image-variants/internal/utils"
	"github.com/menta2k/image-variants/pkg/processing"
	"github.com/menta2k/image-variants/pkg/sizes"
)

var ErrEmptySourcePath = errors.New("source path is empty")

// ImageProcessor is the image capability a Generator drives
type ImageProcessor interface {
	Open(path string) (*processing.Handle, error)
	Clone(h *processing.Handle) (*processing.Handle, error)
	Fit(h *processing.Handle, maxWidth, maxHeight int) error
	Save(h *processing.Handle, path string) error
}

// Generator makes variants of a single source image. It is meant for one
// caller at a time and is discarded after use.
type Generator struct {
	sourcePath string
	catalog    *sizes.Catalog
	processor  ImageProcessor
	logger     *zap.Logger
}

// Option customizes a Generator
type Option func(*Generator)

// WithProcessor replaces the default processing.Processor
func WithProcessor(p ImageProcessor) Option {
	return func(g *Generator) {
		if p != nil {
			g.processor = p
		}
	}
}

// WithLogger sets the logger; the default discards everything
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a Generator for sourcePath. The file is not touched until
// the first decode. A nil catalog means sizes.Default().
func New(sourcePath string, catalog *sizes.Catalog, opts ...Option) (*Generator, error) {
	if sourcePath == "" {
		return nil, ErrEmptySourcePath
	}
	if catalog == nil {
		catalog = sizes.Default()
	}

	g := &Generator{
		sourcePath: sourcePath,
		catalog:    catalog,
		processor:  processing.NewProcessor(),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With(zap.String("source", sourcePath))
	return g, nil
}

// SourcePath returns the path the generator was built for
func (g *Generator) SourcePath() string {
	return g.sourcePath
}

// Catalog returns the sizes the generator iterates over
func (g *Generator) Catalog() *sizes.Catalog {
	return g.catalog
}

// Open decodes the source image. The caller must Close the handle.
func (g *Generator) Open() (*processing.Handle, error) {
	return g.processor.Open(g.sourcePath)
}

// ResizeToFit shrinks img in place to fit within the spec's box. Images
// that already fit are left as they are.
func (g *Generator) ResizeToFit(img *processing.Handle, spec sizes.Spec) error {
	return g.processor.Fit(img, spec.MaxWidth, spec.MaxHeight)
}

// DerivePath returns the output path for spec: {dir}/{name}-{label}{ext}
func (g *Generator) DerivePath(spec sizes.Spec) string {
	name, ext := utils.SplitExt(g.sourcePath)
	return fmt.Sprintf("%s-%s%s", name, spec.Label, ext)
}

// MakeVariant writes one resized copy of base for spec and returns its
// path. base itself is never modified.
func (g *Generator) MakeVariant(base *processing.Handle, spec sizes.Spec) (string, error) {
	variant, err := g.processor.Clone(base)
	if err != nil {
		return "", err
	}
	defer variant.Close()

	if err := g.ResizeToFit(variant, spec); err != nil {
		return "", err
	}

	path := g.DerivePath(spec)
	if err := g.processor.Save(variant, path); err != nil {
		return "", err
	}

	b := variant.Bounds()
	g.logger.Debug("variant written",
		zap.String("label", spec.Label),
		zap.String("path", path),
		zap.Int("width", b.Dx()),
		zap.Int("height", b.Dy()),
	)
	return path, nil
}

// MakeAllVariants decodes the source once and writes one variant per
// catalog entry, in catalog order. It stops at the first failure and
// returns the paths written so far with the error; those files are left
// on disk.
func (g *Generator) MakeAllVariants() ([]string, error) {
	base, err := g.Open()
	if err != nil {
		return nil, err
	}
	defer base.Close()

	specs := g.catalog.Specs()
	paths := make([]string, 0, len(specs))
	for _, spec := range specs {
		path, err := g.MakeVariant(base, spec)
		if err != nil {
			g.logger.Warn("variant generation aborted",
				zap.String("label", spec.Label),
				zap.Strings("written", paths),
				zap.Error(err),
			)
			return paths, err
		}
		paths = append(paths, path)
	}

	g.logger.Info("variants written", zap.Int("count", len(paths)))
	return paths, nil
}

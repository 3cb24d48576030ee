// Package imagevariants generates responsive image sets: resized copies of a
// source image, one per target bounding box, written next to the source.
//
// Basic usage:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		imagevariants "github.com/menta2k/image-variants"
//	)
//
//	func main() {
//		// xs, s, m and l variants of photo.jpg
//		paths, err := imagevariants.GenerateVariants("images/photo.jpg", nil)
//		if err != nil {
//			log.Fatal(err)
//		}
//		for _, p := range paths {
//			fmt.Println(p) // images/photo-xs.jpg, images/photo-s.jpg, ...
//		}
//	}
//
// The package consists of three components:
//
// 1. Sizes (pkg/sizes): the validated, ordered catalog of target boxes
// 2. Processing (pkg/processing): decode, clone, fit and encode primitives
// 3. Variants (pkg/variants): the generator tying a source file to a catalog
//
// Variants never upscale. An image that already fits a box is written at its
// original size under the variant name. The output format always follows the
// source extension.
package imagevariants

import (
	"github.com/menta2k/image-variants/pkg/sizes"
	"github.com/menta2k/image-variants/pkg/variants"
)

// Version of the image variants library
const Version = "1.0.0"

// New creates a generator for sourcePath using the default catalog
func New(sourcePath string, opts ...variants.Option) (*variants.Generator, error) {
	return variants.New(sourcePath, sizes.Default(), opts...)
}

// GenerateVariants writes one variant of sourcePath per catalog entry and
// returns their paths in catalog order. A nil catalog means sizes.Default().
func GenerateVariants(sourcePath string, catalog *sizes.Catalog, opts ...variants.Option) ([]string, error) {
	g, err := variants.New(sourcePath, catalog, opts...)
	if err != nil {
		return nil, err
	}
	return g.MakeAllVariants()
}

// GenerateVariant writes a single variant of sourcePath for spec
func GenerateVariant(sourcePath string, spec sizes.Spec, opts ...variants.Option) (string, error) {
	catalog, err := sizes.NewCatalog(spec)
	if err != nil {
		return "", err
	}
	g, err := variants.New(sourcePath, catalog, opts...)
	if err != nil {
		return "", err
	}

	base, err := g.Open()
	if err != nil {
		return "", err
	}
	defer base.Close()

	return g.MakeVariant(base, spec)
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/menta2k/image-variants/internal/config"
	"github.com/menta2k/image-variants/internal/logging"
	"github.com/menta2k/image-variants/internal/utils"
	"github.com/menta2k/image-variants/pkg/processing"
	"github.com/menta2k/image-variants/pkg/sizes"
	"github.com/menta2k/image-variants/pkg/variants"
)

// Sample inputs looked up in the images directory
const (
	multipleImage = "1,6.jpg"
	singleImage   = "1,5.jpg"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	catalog, err := cfg.Catalog()
	if err != nil {
		logger.Fatal("invalid size catalog", zap.Error(err))
	}
	single, err := cfg.SingleSpec(catalog)
	if err != nil {
		logger.Fatal("invalid single size", zap.Error(err))
	}
	processor, err := processing.NewProcessorWithOptions(cfg.ProcessingOptions())
	if err != nil {
		logger.Fatal("invalid processing options", zap.Error(err))
	}
	opts := []variants.Option{variants.WithProcessor(processor), variants.WithLogger(logger)}

	// Full set for one image
	mv, err := variants.New(filepath.Join(cfg.ImagesDir, multipleImage), catalog, opts...)
	if err != nil {
		logger.Fatal("create generator", zap.Error(err))
	}
	multiplePaths, err := mv.MakeAllVariants()
	if err != nil {
		logger.Fatal("make variants", zap.String("source", mv.SourcePath()), zap.Error(err))
	}

	// Single variant, base image held by the caller
	sv, err := variants.New(filepath.Join(cfg.ImagesDir, singleImage), catalog, opts...)
	if err != nil {
		logger.Fatal("create generator", zap.Error(err))
	}
	singlePath, err := makeSingle(sv, single)
	if err != nil {
		logger.Fatal("make variant", zap.String("source", sv.SourcePath()), zap.Error(err))
	}

	fmt.Println("Multiple variants:")
	for _, p := range multiplePaths {
		printPath(p)
	}

	fmt.Println("Single variant:")
	printPath(singlePath)
}

func makeSingle(g *variants.Generator, spec sizes.Spec) (string, error) {
	base, err := g.Open()
	if err != nil {
		return "", err
	}
	defer base.Close()

	return g.MakeVariant(base, spec)
}

func printPath(path string) {
	info, err := os.Stat(path)
	if err != nil {
		fmt.Println(path)
		return
	}
	fmt.Printf("%s (%s)\n", path, utils.FormatFileSize(info.Size()))
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/viper"

	"github.com/pdiddy/irck/internal/check"
	"github.com/pdiddy/irck/internal/ocr"
	"github.com/pdiddy/irck/internal/ocr/tesseract"
	"github.com/pdiddy/irck/pkg/types"
)

func ocrConfig() types.OCRConfig {
	return types.OCRConfig{
		OutputDir:    viper.GetString("ocr.output_dir"),
		ProcessedDir: viper.GetString("ocr.processed_dir"),
		Language:     viper.GetString("ocr.language"),
		PageSegMode:  viper.GetInt("ocr.page_seg_mode"),
		Rasterizer:   types.Rasterizer(viper.GetString("ocr.rasterizer")),
		DPI:          viper.GetInt("ocr.dpi"),
	}
}

func newRasterizer(cfg types.OCRConfig) (ocr.Rasterizer, error) {
	switch cfg.Rasterizer {
	case types.RasterizerPDFCPU, "":
		return ocr.PDFCPURasterizer{}, nil
	case types.RasterizerPdftoppm:
		return ocr.NewPdftoppmRasterizer(cfg.DPI)
	default:
		return nil, fmt.Errorf("unsupported rasterizer %q: use pdfcpu or pdftoppm", cfg.Rasterizer)
	}
}

func runOCR(ctx context.Context, patterns []string, cfg types.OCRConfig, out io.Writer) error {
	targets, err := ocr.ExpandTargets(patterns)
	if err != nil {
		return err
	}

	r, err := newRasterizer(cfg)
	if err != nil {
		return err
	}
	rec, err := tesseract.New(cfg.Language, cfg.PageSegMode)
	if err != nil {
		return err
	}
	defer rec.Close()

	return check.OCR(ctx, ocr.NewProcessor(r, rec, cfg), targets, out)
}

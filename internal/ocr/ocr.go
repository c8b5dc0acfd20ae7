// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ocr turns scanned incident-report PDFs into plain text. Pages are
// rasterized to images, each image is recognized in page order, the text is
// written to the output directory, and the source PDF is moved aside so it
// is not processed twice.
package ocr

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/pdiddy/irck/internal/logging"
	"github.com/pdiddy/irck/pkg/types"
)

// ErrNotAPDF is returned for a target that does not exist or does not end
// in .pdf.
var ErrNotAPDF = errors.New("not a valid PDF")

// Rasterizer returns the page images of a PDF in page order. A page may
// yield more than one image.
type Rasterizer interface {
	PageImages(ctx context.Context, path string) ([][]byte, error)
}

// Recognizer extracts text from one encoded image.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte) (string, error)
}

// Result records where Process put its output.
type Result struct {
	TextPath  string
	MovedPath string
	Pages     int
}

// Processor runs OCR over single PDFs.
type Processor struct {
	Rasterizer   Rasterizer
	Recognizer   Recognizer
	OutputDir    string
	ProcessedDir string
}

// NewProcessor builds a Processor using the directories in cfg.
func NewProcessor(r Rasterizer, rec Recognizer, cfg types.OCRConfig) *Processor {
	return &Processor{
		Rasterizer:   r,
		Recognizer:   rec,
		OutputDir:    cfg.OutputDir,
		ProcessedDir: cfg.ProcessedDir,
	}
}

// Process recognizes every page image of the PDF at path, writes the
// concatenated text to <OutputDir>/<base>.txt and moves the PDF into
// ProcessedDir. The source stays in place if recognition or the text write
// fails.
func (p *Processor) Process(ctx context.Context, path string) (Result, error) {
	if err := checkPDF(path); err != nil {
		return Result{}, err
	}

	images, err := p.Rasterizer.PageImages(ctx, path)
	if err != nil {
		return Result{}, fmt.Errorf("rasterizing %s: %w", path, err)
	}
	logging.Debugf("%s: %d page images", path, len(images))

	var text strings.Builder
	for i, img := range images {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		s, err := p.Recognizer.Recognize(ctx, img)
		if err != nil {
			return Result{}, fmt.Errorf("recognizing image %d of %s: %w", i+1, path, err)
		}
		text.WriteString(s)
	}
	text.WriteString("\n")

	name := filepath.Base(path)
	res := Result{
		TextPath:  filepath.Join(p.OutputDir, strings.TrimSuffix(name, types.PDFExt)+".txt"),
		MovedPath: filepath.Join(p.ProcessedDir, name),
		Pages:     len(images),
	}

	if err := os.MkdirAll(p.OutputDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("creating %s: %w", p.OutputDir, err)
	}
	if err := os.WriteFile(res.TextPath, []byte(text.String()), 0o644); err != nil {
		return Result{}, fmt.Errorf("writing %s: %w", res.TextPath, err)
	}

	if err := os.MkdirAll(p.ProcessedDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("creating %s: %w", p.ProcessedDir, err)
	}
	if err := os.Rename(path, res.MovedPath); err != nil {
		return Result{}, fmt.Errorf("moving %s to %s: %w", path, p.ProcessedDir, err)
	}
	return res, nil
}

func checkPDF(path string) error {
	if !strings.HasSuffix(path, types.PDFExt) {
		return fmt.Errorf("%s: %w", path, ErrNotAPDF)
	}
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", path, ErrNotAPDF)
	}
	return nil
}

// ExpandTargets expands glob patterns (including **) into paths. Matches of
// one pattern are sorted; a pattern with no matches, or with no glob syntax,
// is kept as given so the caller can report it.
func ExpandTargets(patterns []string) ([]string, error) {
	var out []string
	for _, pat := range patterns {
		if !strings.ContainsAny(pat, "*?[{") {
			out = append(out, pat)
			continue
		}
		matches, err := doublestar.FilepathGlob(pat)
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", pat, err)
		}
		if len(matches) == 0 {
			out = append(out, pat)
			continue
		}
		slices.Sort(matches)
		out = append(out, matches...)
	}
	return out, nil
}

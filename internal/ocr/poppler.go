// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ocr

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strconv"
)

const binPdftoppm = "pdftoppm"

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, name string, args ...string) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (osExecutor) Run(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil && len(out) > 0 {
		return fmt.Errorf("%w: %s", err, out)
	}
	return err
}

// PdftoppmRasterizer renders every page to PNG with poppler's pdftoppm. It
// handles pages that are not a single embedded image.
type PdftoppmRasterizer struct {
	DPI  int
	exec executor
}

// NewPdftoppmRasterizer returns a rasterizer rendering at dpi. It fails when
// pdftoppm is not on PATH.
func NewPdftoppmRasterizer(dpi int) (*PdftoppmRasterizer, error) {
	return newPdftoppmRasterizer(dpi, osExecutor{})
}

func newPdftoppmRasterizer(dpi int, exec executor) (*PdftoppmRasterizer, error) {
	if _, err := exec.LookPath(binPdftoppm); err != nil {
		return nil, fmt.Errorf("%s not found on PATH (install poppler-utils): %w", binPdftoppm, err)
	}
	if dpi <= 0 {
		dpi = 300
	}
	return &PdftoppmRasterizer{DPI: dpi, exec: exec}, nil
}

// PageImages implements Rasterizer.
func (r *PdftoppmRasterizer) PageImages(ctx context.Context, path string) ([][]byte, error) {
	dir, err := os.MkdirTemp("", "irck-pages-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	prefix := filepath.Join(dir, "page")
	args := []string{"-r", strconv.Itoa(r.DPI), "-png", path, prefix}
	if err := r.exec.Run(ctx, binPdftoppm, args...); err != nil {
		return nil, fmt.Errorf("running %s on %s: %w", binPdftoppm, path, err)
	}

	// pdftoppm zero-pads page numbers to a common width, so lexical order is
	// page order.
	files, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return nil, err
	}
	slices.Sort(files)

	images := make([][]byte, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, err
		}
		images = append(images, data)
	}
	return images, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdiddy/irck/internal/logging"
)

// Writer concatenates the pages of inputs, in order, into output.
type Writer interface {
	Merge(inputs []string, output string) error
}

// PDFWriter merges with pdfcpu. The result is written to a temporary file in
// the output directory and renamed into place, so output may also be one of
// the inputs.
type PDFWriter struct {
	conf *model.Configuration
}

// NewPDFWriter returns a writer using pdfcpu's default configuration.
func NewPDFWriter() *PDFWriter {
	conf := model.NewDefaultConfiguration()
	conf.Cmd = model.MERGECREATE
	return &PDFWriter{conf: conf}
}

// Merge implements Writer.
func (w *PDFWriter) Merge(inputs []string, output string) error {
	tmp, err := os.CreateTemp(filepath.Dir(output), ".irck-merge-*.pdf")
	if err != nil {
		return fmt.Errorf("creating temporary output for %s: %w", output, err)
	}
	tmpPath := tmp.Name()
	tmp.Close()

	if err := api.MergeCreateFile(inputs, tmpPath, false, w.conf); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("merging into %s: %w", output, err)
	}
	if n, err := PageCount(tmpPath); err == nil {
		logging.Debugf("merged %d files into %d pages", len(inputs), n)
	}
	if err := os.Rename(tmpPath, output); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("moving merged output to %s: %w", output, err)
	}
	return nil
}

// PageCount returns the number of pages in the PDF at path.
func PageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("counting pages of %s: %w", path, err)
	}
	return n, nil
}

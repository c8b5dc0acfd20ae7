//go:build mage

package main

import (
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// OCR builds irck and recognizes the PDFs matching pattern, e.g.
// "mage ocr 'scans/**/*.pdf'".
func OCR(pattern string) error {
	mg.Deps(Build, Init)
	return sh.RunV(filepath.Join(binDir, binName), "--ocr", pattern)
}

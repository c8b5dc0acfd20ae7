// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ocr

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdiddy/irck/internal/logging"
)

// PDFCPURasterizer returns the images embedded in each page. Scanned reports
// carry one full-page image per page, so no rendering is needed.
type PDFCPURasterizer struct{}

// PageImages implements Rasterizer.
func (PDFCPURasterizer) PageImages(ctx context.Context, path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	conf.Cmd = model.EXTRACTIMAGES
	pctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var images [][]byte
	for page := 1; page <= pctx.PageCount; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		byObj, err := pdfcpu.ExtractPageImages(pctx, page, false)
		if err != nil {
			return nil, fmt.Errorf("extracting images of page %d: %w", page, err)
		}
		if len(byObj) == 0 {
			logging.Debugf("%s: page %d has no images", path, page)
			continue
		}
		objs := make([]int, 0, len(byObj))
		for obj := range byObj {
			objs = append(objs, obj)
		}
		slices.Sort(objs)
		for _, obj := range objs {
			img := byObj[obj]
			if img.Reader == nil {
				continue
			}
			data, err := io.ReadAll(img.Reader)
			if err != nil {
				return nil, fmt.Errorf("reading image %d of page %d: %w", obj, page, err)
			}
			images = append(images, data)
		}
	}
	return images, nil
}

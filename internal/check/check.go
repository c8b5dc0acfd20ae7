// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package check runs one irck invocation: a directory scan with its report,
// the interactive merge flow, or OCR over a list of targets. It owns the
// order of output on stdout; the command layer only builds collaborators.
package check

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/pdiddy/irck/internal/classify"
	"github.com/pdiddy/irck/internal/logging"
	"github.com/pdiddy/irck/internal/merge"
	"github.com/pdiddy/irck/internal/ocr"
	"github.com/pdiddy/irck/internal/pattern"
	"github.com/pdiddy/irck/internal/report"
	"github.com/pdiddy/irck/pkg/types"
)

// Scan describes a directory scan.
type Scan struct {
	Config types.ScanConfig
	Filter types.FilterSpec

	// Writer performs merges. It is only used when Filter.Merge is set.
	Writer merge.Writer
}

// Run classifies the directory and reports the result. In merge mode it
// lists the part files, asks for confirmation on in unless AssumeYes is set,
// and merges them.
func (s Scan) Run(in io.Reader, out io.Writer) error {
	p := pattern.Compile(s.Filter)
	logging.Debugf("compiled %s pattern %s", p.Mode, p.Expr)

	res, err := classify.ClassifyDir(s.Config.Directory, p)
	if err != nil {
		return err
	}
	logging.Infof("%d of %d PDFs reported in %s", res.MatchCount, res.TotalPDFCount, s.Config.Directory)

	if !s.Filter.Merge {
		return report.Write(out, res, s.Config.Format)
	}
	return s.merge(res.Matches, in, out)
}

func (s Scan) merge(parts []string, in io.Reader, out io.Writer) error {
	switch len(parts) {
	case 0:
		return report.WriteNothingToMerge(out)
	case 1:
		return report.WriteSinglePart(out, parts)
	}

	if err := report.WriteMergeCandidates(out, parts); err != nil {
		return err
	}
	ok := s.Config.AssumeYes
	if !ok {
		var err error
		if ok, err = report.Confirm(in, out); err != nil {
			return err
		}
	}
	if !ok {
		return report.WriteNotAttempted(out)
	}
	if err := report.WriteAttempting(out); err != nil {
		return err
	}

	if s.Writer == nil {
		return errors.New("no merge writer configured")
	}
	sum, err := merge.Execute(s.Config.Directory, merge.Plan(parts), s.Writer, out)
	if err != nil {
		return err
	}
	logging.Infof("merge: %d created, %d skipped", sum.Merged, sum.Skipped)
	return nil
}

// OCR processes targets in order. A target that is not a PDF is reported on
// out and skipped; any other failure stops the run.
func OCR(ctx context.Context, p *ocr.Processor, targets []string, out io.Writer) error {
	for _, t := range targets {
		res, err := p.Process(ctx, t)
		if errors.Is(err, ocr.ErrNotAPDF) {
			fmt.Fprintf(out, "%s is not a valid PDF.\n", t)
			continue
		}
		if err != nil {
			return err
		}
		logging.Infof("%s: %d images recognized into %s", t, res.Pages, res.TextPath)
	}
	return nil
}

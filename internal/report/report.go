// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders scan results and merge prompts. The text format is
// a stable protocol: other tools read the banners, so wording, blank lines,
// and pluralization are fixed.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/irck/pkg/types"
)

const (
	msgNoPDFs     = "\n=== No PDFs were found in this directory ===\n"
	msgAllValid   = "\n=== All PDF files are properly named ===\n"
	msgNoMatching = "\n=== No matching PDFs were found ===\n"
)

// Banner returns the count line framing a result list, e.g.
// "\n=== 2 of 5 PDFs are invalid ===\n". The noun is singular when n is 1.
func Banner(n, total int, mode types.Mode) string {
	var phrase string
	switch {
	case mode == types.ModeVerify && n == 1:
		phrase = "PDF is invalid"
	case mode == types.ModeVerify:
		phrase = "PDFs are invalid"
	case n == 1:
		phrase = "PDF matches"
	default:
		phrase = "PDFs match"
	}
	return fmt.Sprintf("\n=== %d of %d %s ===\n", n, total, phrase)
}

// List returns names one per line, each newline-terminated.
func List(names []string) string {
	var b strings.Builder
	for _, n := range names {
		b.WriteString(n)
		b.WriteString("\n")
	}
	return b.String()
}

// WriteText writes the human-readable summary of r.
func WriteText(w io.Writer, r types.MatchResult) error {
	var text string
	switch {
	case r.TotalPDFCount == 0:
		text = msgNoPDFs + "\n"
	case r.MatchCount == 0 && r.Mode == types.ModeVerify:
		text = msgAllValid + "\n"
	case r.MatchCount == 0:
		text = msgNoMatching + "\n"
	default:
		banner := Banner(r.MatchCount, r.TotalPDFCount, r.Mode)
		text = banner + "\n" + List(r.Matches) + banner + "\n"
	}
	_, err := io.WriteString(w, text)
	return err
}

// Write encodes r in the requested format. An empty format means text.
func Write(w io.Writer, r types.MatchResult, format types.OutputFormat) error {
	switch format {
	case types.FormatText, "":
		return WriteText(w, r)
	case types.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case types.FormatYAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("marshaling result: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported format %q: use text, json, or yaml", format)
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package naming decomposes incident-report filenames and derives the base
// name that related parts share.
package naming

import (
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/pdiddy/irck/internal/pattern"
	"github.com/pdiddy/irck/pkg/types"
)

var (
	surnameOne = `(?:` + pattern.SurnameTokenExpr + `|` + types.LNU + `)` + pattern.DisambiguatorExpr

	canonical = regexp2.MustCompile(
		`^(?<date>`+pattern.DateExpr+`)`+
			`(?:T(?<time>`+pattern.ClockExpr+`))?`+
			`_(?<lib>`+strings.Join(types.LibraryCodes, "|")+`)`+
			`_(?<surnames>`+surnameOne+`(?:_`+surnameOne+`)*)`+
			`(?:_(?<part>(?:part)?[0-9]))?`+
			`\.pdf$`,
		regexp2.None)

	partSuffix = regexp2.MustCompile(`_part[0-9]+$`, regexp2.None)
)

// Parse decomposes a canonical filename. ok is false when name does not
// conform to the naming convention.
func Parse(name string) (f types.IncidentFilename, ok bool) {
	m, err := canonical.FindStringMatch(name)
	if err != nil || m == nil {
		return types.IncidentFilename{}, false
	}
	return types.IncidentFilename{
		Date:        m.GroupByName("date").String(),
		Time:        m.GroupByName("time").String(),
		LibraryCode: m.GroupByName("lib").String(),
		Surnames:    strings.Split(m.GroupByName("surnames").String(), "_"),
		Part:        m.GroupByName("part").String(),
	}, true
}

// BaseName returns name without its extension and part segment:
//
//	2015-06-12_mad_smith_part2.pdf -> 2015-06-12_mad_smith
//	2015-06-12_mad_smith.pdf       -> 2015-06-12_mad_smith
//
// Canonical names drop exactly the parsed part segment. Other names drop a
// trailing "_partN" if present.
func BaseName(name string) string {
	stem := strings.TrimSuffix(name, types.PDFExt)
	if f, ok := Parse(name); ok {
		if f.Part == "" {
			return stem
		}
		return strings.TrimSuffix(stem, "_"+f.Part)
	}
	if out, err := partSuffix.Replace(stem, "", -1, 1); err == nil {
		return out
	}
	return stem
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package merge groups the parts of one incident and concatenates them into
// a single PDF.
package merge

import (
	"github.com/pdiddy/irck/internal/naming"
	"github.com/pdiddy/irck/pkg/types"
)

// Plan groups consecutive names that share a base name into merge units, in
// one left-to-right pass. Names of the same incident must already be
// contiguous (a sorted listing guarantees it); a separated part starts a new
// unit. Single-member units are kept so the caller can report them.
func Plan(names []string) []types.MergeUnit {
	var units []types.MergeUnit
	for _, name := range names {
		base := naming.BaseName(name)
		if n := len(units); n > 0 && units[n-1].Base == base {
			units[n-1].Members = append(units[n-1].Members, name)
			continue
		}
		units = append(units, types.MergeUnit{Base: base, Members: []string{name}})
	}
	return units
}

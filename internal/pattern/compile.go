// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pattern compiles a FilterSpec into a single filename pattern.
//
// The grammar is assembled from named fragments in a fixed order (date, time,
// library, surname, part). In verify mode every fragment is used and the
// pattern is anchored to the whole name, so a name matches only when it is in
// canonical form. In search mode only the axes the caller constrained are
// used and the pattern floats inside the name.
//
// Patterns use .NET-style syntax (github.com/dlclark/regexp2) because the
// exclusion axes need look-around assertions.
package pattern

import (
	"strings"

	"github.com/pdiddy/irck/pkg/types"
)

// Compile builds the pattern for spec. It never fails: option validation
// happens before a FilterSpec exists.
func Compile(spec types.FilterSpec) types.CompiledPattern {
	part := spec.EffectivePart()

	var b builder
	b.add(DateFragment(), false)
	b.add(TimeFragment(), false)
	b.add(LibraryFragment(spec.LibraryCodes), len(spec.LibraryCodes) > 0)
	b.add(SurnameFragment(spec.Surname, spec.Surnames), spec.Surname != types.SurnameUnconstrained)
	b.add(PartFragment(part), part != types.PartUnconstrained)

	if spec.Verify {
		return types.CompiledPattern{Expr: b.verify(), Mode: types.ModeVerify}
	}
	return types.CompiledPattern{Expr: b.search(), Mode: types.ModeSearch}
}

type entry struct {
	Fragment
	constrained bool
}

// builder collects fragments in grammar order.
type builder struct {
	entries []entry
}

func (b *builder) add(f Fragment, constrained bool) {
	b.entries = append(b.entries, entry{Fragment: f, constrained: constrained})
}

func (b *builder) verify() string {
	var sb strings.Builder
	sb.WriteString("^")
	for _, e := range b.entries {
		writeGuard(&sb, e.Guard)
	}
	for _, e := range b.entries {
		sb.WriteString(e.Expr)
	}
	sb.WriteString(`\.pdf$`)
	return sb.String()
}

func (b *builder) search() string {
	var guards, body strings.Builder
	last := -1
	for i, e := range b.entries {
		if !e.constrained {
			continue
		}
		writeGuard(&guards, e.Guard)
		// Skipped axes between two constrained ones may hold anything.
		if last >= 0 && i-last > 1 {
			body.WriteString(".*")
		}
		body.WriteString(e.Expr)
		last = i
	}

	if last < 0 {
		return ".*"
	}

	var sb strings.Builder
	if guards.Len() > 0 {
		sb.WriteString("^")
		sb.WriteString(guards.String())
	}
	sb.WriteString(".*")
	sb.WriteString(body.String())
	sb.WriteString(".*")
	return sb.String()
}

func writeGuard(sb *strings.Builder, guard string) {
	if guard == "" {
		return
	}
	sb.WriteString("(?!")
	sb.WriteString(guard)
	sb.WriteString(")")
}

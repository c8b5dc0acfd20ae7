// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pattern

import (
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/pdiddy/irck/pkg/types"
)

// Fragment names, in grammar order.
const (
	FragmentDate    = "date"
	FragmentTime    = "time"
	FragmentLibrary = "library"
	FragmentSurname = "surname"
	FragmentPart    = "part"
)

// Building blocks shared with the filename parser.
const (
	DateExpr = `(?:199[0-9]|20[01][0-9])-(?:0[1-9]|1[0-2])-(?:0[1-9]|[12][0-9]|3[01])`

	// ClockExpr is HH:MM. Hour 24 is accepted.
	ClockExpr = `(?:[01][0-9]|2[0-4]):[0-5][0-9]`

	// SurnameTokenExpr is one surname: up to five hyphen-joined lowercase words.
	SurnameTokenExpr = `[a-z]+(?:-[a-z]+){0,4}`

	// DisambiguatorExpr separates incidents that share a surname on one day.
	DisambiguatorExpr = `(?:-1?[0-9])?`
)

const (
	timeExpr = `(?:T` + ClockExpr + `)?`

	// surnameEnd requires the surname run to stop at a separator or the
	// extension, so "smith" does not select "smithson".
	surnameEnd = `(?=[_.])`

	lnuExpr = `_` + types.LNU + DisambiguatorExpr
)

// Fragment is one named piece of the filename grammar.
type Fragment struct {
	Name string

	// Expr matches the fragment in place.
	Expr string

	// Guard, when set, is a condition the whole name must NOT satisfy. It is
	// emitted as a negative look-ahead at the start of the name.
	Guard string
}

// DateFragment matches YYYY-MM-DD from 1990 through 2019. Only digit ranges
// are checked; 2015-02-30 is accepted.
func DateFragment() Fragment {
	return Fragment{Name: FragmentDate, Expr: DateExpr}
}

// TimeFragment matches the optional THH:MM suffix of the date.
func TimeFragment() Fragment {
	return Fragment{Name: FragmentTime, Expr: timeExpr}
}

// LibraryFragment matches an underscore plus one of codes, or one of all
// known codes when codes is empty.
func LibraryFragment(codes []string) Fragment {
	if len(codes) == 0 {
		codes = types.LibraryCodes
	}
	return Fragment{
		Name: FragmentLibrary,
		Expr: `_(?:` + alternation(codes) + `)(?=_)`,
	}
}

// SurnameFragment builds the surname run for mode. names is only consulted
// for the exact modes; an exact mode without names falls back to the
// unconstrained run.
func SurnameFragment(mode types.SurnameMode, names []string) Fragment {
	f := Fragment{Name: FragmentSurname}

	switch {
	case mode == types.SurnameLNUOnly:
		f.Expr = lnuExpr + surnameEnd
	case mode == types.SurnameExcludeLNU:
		one := SurnameTokenExpr + DisambiguatorExpr
		f.Expr = `_` + one + `(?:_` + one + `)*` + surnameEnd
		f.Guard = `.*` + lnuExpr + surnameEnd
	case mode == types.SurnameExactAll && len(names) > 0:
		parts := make([]string, len(names))
		for i, n := range names {
			parts[i] = regexp2.Escape(n) + DisambiguatorExpr
		}
		f.Expr = `_` + strings.Join(parts, `_`) + surnameEnd
	case mode == types.SurnameExactAny && len(names) > 0:
		f.Expr = `_(?:` + alternation(names) + `)` + DisambiguatorExpr + surnameEnd
	default:
		f.Expr = `(?:_(?:` + SurnameTokenExpr + `|` + types.LNU + `)` + DisambiguatorExpr + `)+` + surnameEnd
	}
	return f
}

// PartFragment matches the part segment for mode.
func PartFragment(mode types.PartMode) Fragment {
	f := Fragment{Name: FragmentPart}
	switch mode {
	case types.PartRequired:
		f.Expr = `_part[0-9]`
	case types.PartExcluded:
		f.Expr = `(?:_[0-9])?`
		f.Guard = `.*_part[0-9]`
	default:
		f.Expr = `(?:_(?:part)?[0-9])?`
	}
	return f
}

func alternation(literals []string) string {
	quoted := make([]string, len(literals))
	for i, l := range literals {
		quoted[i] = regexp2.Escape(l)
	}
	return strings.Join(quoted, "|")
}

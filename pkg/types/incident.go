// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for irck: the resolved filter
// axes, the compiled filename pattern, classification results, merge units,
// and the decomposed incident filename.
package types

import "strings"

// LibraryCodes is the fixed vocabulary of three-letter Madison library branch
// codes, in the order they appear in the default library alternation.
var LibraryCodes = []string{"haw", "hpb", "lak", "mad", "mea", "msb", "pin", "seq", "smb"}

// IsLibraryCode reports whether code (any case) is one of LibraryCodes.
func IsLibraryCode(code string) bool {
	code = strings.ToLower(code)
	for _, c := range LibraryCodes {
		if c == code {
			return true
		}
	}
	return false
}

// LNU is the surname token used for incidents without an identified patron.
const LNU = "LNU"

// PDFExt is the extension every incident report carries. It is matched
// case-sensitively.
const PDFExt = ".pdf"

// SurnameMode selects how the surname axis constrains a filename.
type SurnameMode int

const (
	// SurnameUnconstrained accepts any surname or LNU token sequence.
	SurnameUnconstrained SurnameMode = iota
	// SurnameExactAll requires every listed surname, in the given order.
	SurnameExactAll
	// SurnameExactAny requires one of the listed surnames.
	SurnameExactAny
	// SurnameLNUOnly selects LNU incidents.
	SurnameLNUOnly
	// SurnameExcludeLNU rejects LNU incidents.
	SurnameExcludeLNU
)

func (m SurnameMode) String() string {
	switch m {
	case SurnameExactAll:
		return "exact-all"
	case SurnameExactAny:
		return "exact-any"
	case SurnameLNUOnly:
		return "lnu-only"
	case SurnameExcludeLNU:
		return "exclude-lnu"
	default:
		return "unconstrained"
	}
}

// PartMode selects how the part-number axis constrains a filename.
type PartMode int

const (
	PartUnconstrained PartMode = iota
	PartRequired
	PartExcluded
)

func (m PartMode) String() string {
	switch m {
	case PartRequired:
		return "required"
	case PartExcluded:
		return "excluded"
	default:
		return "unconstrained"
	}
}

// FilterSpec is the resolved, immutable set of filter axes. It is built once
// at the option boundary and passed by value; the combination of fields is
// assumed valid by every consumer.
type FilterSpec struct {
	// LibraryCodes restricts the library axis. Empty means any code.
	LibraryCodes []string

	// Surname selects the surname constraint; Surnames holds the literal
	// names for SurnameExactAll and SurnameExactAny.
	Surname  SurnameMode
	Surnames []string

	// Part selects the part-number constraint.
	Part PartMode

	// Verify selects strict conformance (report violations) over search
	// (report selections).
	Verify bool

	// Merge marks a merge request; the part axis then requires a part number.
	Merge bool
}

// EffectivePart returns the part constraint the compiler applies: a merge
// request always requires a part number.
func (s FilterSpec) EffectivePart() PartMode {
	if s.Merge {
		return PartRequired
	}
	return s.Part
}

// Mode tells a CompiledPattern how to evaluate and how to report.
type Mode string

const (
	// ModeVerify anchors the pattern to the whole name and reports names
	// that do not match.
	ModeVerify Mode = "verify"
	// ModeSearch leaves the pattern unanchored and reports names that match.
	ModeSearch Mode = "search"
)

// CompiledPattern is a pattern expression plus its evaluation mode.
type CompiledPattern struct {
	Expr string `json:"expr" yaml:"expr"`
	Mode Mode   `json:"mode" yaml:"mode"`
}

// Reports applies the polarity rule: verify mode surfaces violations,
// search mode surfaces selections.
func (p CompiledPattern) Reports(matched bool) bool {
	if p.Mode == ModeVerify {
		return !matched
	}
	return matched
}

// MatchResult is the outcome of classifying a directory listing.
type MatchResult struct {
	Mode          Mode     `json:"mode" yaml:"mode"`
	Matches       []string `json:"matches" yaml:"matches"`
	TotalPDFCount int      `json:"total_pdf_count" yaml:"total_pdf_count"`
	MatchCount    int      `json:"match_count" yaml:"match_count"`
}

// MergeUnit is a non-empty ordered run of filenames sharing one base name.
type MergeUnit struct {
	Base    string
	Members []string
}

// Mergeable reports whether the unit has more than one member.
func (u MergeUnit) Mergeable() bool {
	return len(u.Members) > 1
}

// OutputName is the filename the merged unit is written to.
func (u MergeUnit) OutputName() string {
	return u.Base + PDFExt
}

// IncidentFilename is the decomposition of a conforming filename.
type IncidentFilename struct {
	Date        string
	Time        string // HH:MM, empty when absent
	LibraryCode string
	Surnames    []string
	// Part is the part segment without its leading underscore ("part2" or
	// "2"), empty when absent.
	Part string
}

// SurnameToken returns the surname tokens joined the way they appear in the
// filename.
func (f IncidentFilename) SurnameToken() string {
	return strings.Join(f.Surnames, "_")
}

// Base returns the filename without the part segment and extension.
func (f IncidentFilename) Base() string {
	var b strings.Builder
	b.WriteString(f.Date)
	if f.Time != "" {
		b.WriteString("T")
		b.WriteString(f.Time)
	}
	b.WriteString("_")
	b.WriteString(f.LibraryCode)
	b.WriteString("_")
	b.WriteString(f.SurnameToken())
	return b.String()
}

// IsLNU reports whether any surname token is the LNU sentinel.
func (f IncidentFilename) IsLNU() bool {
	for _, s := range f.Surnames {
		if s == LNU || strings.HasPrefix(s, LNU+"-") {
			return true
		}
	}
	return false
}

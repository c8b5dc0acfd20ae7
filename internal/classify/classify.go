// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify applies a compiled filename pattern to a directory
// listing and reports names according to the pattern's mode.
package classify

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/pdiddy/irck/pkg/types"
)

// ListDir returns the names of the regular files in dir, sorted
// case-insensitively with byte order breaking ties.
func ListDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	SortNames(names)
	return names, nil
}

// SortNames sorts names in listing order.
func SortNames(names []string) {
	slices.SortFunc(names, func(a, b string) int {
		if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
}

// Matcher evaluates a CompiledPattern against filenames.
type Matcher struct {
	pattern types.CompiledPattern
	re      *regexp2.Regexp
}

// NewMatcher compiles p. Patterns produced by pattern.Compile always compile.
func NewMatcher(p types.CompiledPattern) (*Matcher, error) {
	re, err := regexp2.Compile(p.Expr, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", p.Expr, err)
	}
	return &Matcher{pattern: p, re: re}, nil
}

// Reports tells whether name belongs in the result under the pattern's
// polarity: in verify mode a name is reported when it does not match.
func (m *Matcher) Reports(name string) (bool, error) {
	ok, err := m.re.MatchString(name)
	if err != nil {
		return false, fmt.Errorf("matching %s: %w", name, err)
	}
	return m.pattern.Reports(ok), nil
}

// Classify walks names in order, considers only those ending in ".pdf", and
// collects the reported ones. Names are not re-sorted.
func Classify(names []string, p types.CompiledPattern) (types.MatchResult, error) {
	m, err := NewMatcher(p)
	if err != nil {
		return types.MatchResult{}, err
	}

	result := types.MatchResult{Mode: p.Mode, Matches: []string{}}
	for _, name := range names {
		if !strings.HasSuffix(name, types.PDFExt) {
			continue
		}
		result.TotalPDFCount++

		reported, err := m.Reports(name)
		if err != nil {
			return types.MatchResult{}, err
		}
		if reported {
			result.Matches = append(result.Matches, name)
		}
	}
	result.MatchCount = len(result.Matches)
	return result, nil
}

// ClassifyDir lists dir and classifies its entries.
func ClassifyDir(dir string, p types.CompiledPattern) (types.MatchResult, error) {
	names, err := ListDir(dir)
	if err != nil {
		return types.MatchResult{}, err
	}
	return Classify(names, p)
}

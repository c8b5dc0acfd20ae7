// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package options validates raw command-line values and resolves them into
// an immutable FilterSpec. Every option error surfaces here, before any
// directory is read or any file is touched.
package options

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/irck/pkg/types"
)

// ArgumentError reports an invalid option value or combination.
type ArgumentError struct {
	Flag   string
	Value  string
	Reason string
}

func (e *ArgumentError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Flag, e.Reason)
	}
	return fmt.Sprintf("%s: %s %s", e.Flag, e.Value, e.Reason)
}

// IsArgumentError reports whether err is or wraps an ArgumentError.
func IsArgumentError(err error) bool {
	var ae *ArgumentError
	return errors.As(err, &ae)
}

// Raw holds option values as parsed from the command line, before
// validation. Booleans are true only when the flag was given.
type Raw struct {
	Directory string

	Verify   bool
	NoVerify bool

	LibCode string

	Surnames   []string
	SurnamesOr []string
	LNU        bool
	NoLNU      bool

	Parts   bool
	NoParts bool

	Merge bool
	OCR   []string
}

// ValidateDirectory checks that dir exists, is a directory, and can be listed.
func ValidateDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return &ArgumentError{Flag: "--directory", Value: dir, Reason: "is not a valid path"}
	}
	f, err := os.Open(dir)
	if err != nil {
		return &ArgumentError{Flag: "--directory", Value: dir, Reason: "is not a readable dir"}
	}
	defer f.Close()
	if _, err := f.Readdirnames(1); err != nil && !errors.Is(err, io.EOF) {
		return &ArgumentError{Flag: "--directory", Value: dir, Reason: "is not a readable dir"}
	}
	return nil
}

// ValidateLibCode checks code against the library vocabulary, ignoring case,
// and returns it lowercased.
func ValidateLibCode(code string) (string, error) {
	if !types.IsLibraryCode(code) {
		return "", &ArgumentError{Flag: "--libcode", Value: code, Reason: "is not a valid Madison library code"}
	}
	return strings.ToLower(code), nil
}

// Resolve validates r and builds the FilterSpec. A merge request switches to
// search mode. The directory is validated only when a scan will run.
func Resolve(r Raw) (types.FilterSpec, error) {
	if err := exclusive(
		flagSet{"--verify", r.Verify},
		flagSet{"--no-verify", r.NoVerify},
	); err != nil {
		return types.FilterSpec{}, err
	}
	if err := exclusive(
		flagSet{"--surname", len(r.Surnames) > 0},
		flagSet{"--surname-or", len(r.SurnamesOr) > 0},
		flagSet{"--lnu", r.LNU},
		flagSet{"--no-lnu", r.NoLNU},
	); err != nil {
		return types.FilterSpec{}, err
	}
	if err := exclusive(
		flagSet{"--parts", r.Parts},
		flagSet{"--no-parts", r.NoParts},
	); err != nil {
		return types.FilterSpec{}, err
	}
	if r.Merge {
		if err := exclusive(
			flagSet{"--merge", true},
			flagSet{"--verify", r.Verify},
			flagSet{"--no-parts", r.NoParts},
			flagSet{"--ocr", len(r.OCR) > 0},
		); err != nil {
			return types.FilterSpec{}, err
		}
	}

	spec := types.FilterSpec{
		Verify: !r.NoVerify && !r.Merge,
		Merge:  r.Merge,
	}

	if r.LibCode != "" {
		code, err := ValidateLibCode(r.LibCode)
		if err != nil {
			return types.FilterSpec{}, err
		}
		spec.LibraryCodes = []string{code}
	}

	switch {
	case len(r.Surnames) > 0:
		names, err := surnames("--surname", r.Surnames)
		if err != nil {
			return types.FilterSpec{}, err
		}
		spec.Surname, spec.Surnames = types.SurnameExactAll, names
	case len(r.SurnamesOr) > 0:
		names, err := surnames("--surname-or", r.SurnamesOr)
		if err != nil {
			return types.FilterSpec{}, err
		}
		spec.Surname, spec.Surnames = types.SurnameExactAny, names
	case r.LNU:
		spec.Surname = types.SurnameLNUOnly
	case r.NoLNU:
		spec.Surname = types.SurnameExcludeLNU
	}

	switch {
	case r.Parts:
		spec.Part = types.PartRequired
	case r.NoParts:
		spec.Part = types.PartExcluded
	}

	if len(r.OCR) == 0 {
		if err := ValidateDirectory(r.Directory); err != nil {
			return types.FilterSpec{}, err
		}
	}
	return spec, nil
}

// surnames lowercases names and rejects blanks and the LNU sentinel.
func surnames(flag string, in []string) ([]string, error) {
	out := make([]string, 0, len(in))
	for _, n := range in {
		n = strings.TrimSpace(n)
		if n == "" {
			return nil, &ArgumentError{Flag: flag, Reason: "surname must not be empty"}
		}
		if strings.EqualFold(n, types.LNU) {
			return nil, &ArgumentError{Flag: flag, Value: n, Reason: "is the LNU sentinel; use --lnu"}
		}
		out = append(out, strings.ToLower(n))
	}
	return out, nil
}

type flagSet struct {
	name string
	set  bool
}

func exclusive(flags ...flagSet) error {
	var given []string
	for _, f := range flags {
		if f.set {
			given = append(given, f.name)
		}
	}
	if len(given) > 1 {
		return &ArgumentError{
			Flag:   given[0],
			Reason: "cannot be combined with " + strings.Join(given[1:], ", "),
		}
	}
	return nil
}

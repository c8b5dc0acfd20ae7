// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package merge

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/irck/internal/logging"
	"github.com/pdiddy/irck/pkg/types"
)

// Summary counts the outcome of Execute.
type Summary struct {
	Merged  int
	Skipped int
	// Created lists the merged output filenames in unit order.
	Created []string
}

// Execute writes every multi-member unit in order. The pages of the members
// are concatenated in member order into <base>.pdf inside dir, and each
// member is deleted once the merged file is in place. Single-member units
// produce no file and are reported as skipped. The first failure aborts; a
// failure while deleting can leave some members behind.
func Execute(dir string, units []types.MergeUnit, w Writer, out io.Writer) (Summary, error) {
	var s Summary
	for _, u := range units {
		if !u.Mergeable() {
			fmt.Fprintf(out, "%s does not have multiple parts. Skipped.\n", u.Base)
			s.Skipped++
			continue
		}

		output := filepath.Join(dir, u.OutputName())
		inputs := make([]string, len(u.Members))
		for i, m := range u.Members {
			inputs[i] = filepath.Join(dir, m)
		}

		logging.Debugf("merging %d parts into %s", len(inputs), output)
		if err := w.Merge(inputs, output); err != nil {
			return s, err
		}

		for _, in := range inputs {
			// The merged file replaced this member already.
			if in == output {
				continue
			}
			if err := os.Remove(in); err != nil {
				return s, fmt.Errorf("deleting merged part %s: %w", in, err)
			}
		}

		fmt.Fprintf(out, "Created `%s` and deleted parts.\n", u.OutputName())
		s.Merged++
		s.Created = append(s.Created, u.OutputName())
	}
	return s, nil
}

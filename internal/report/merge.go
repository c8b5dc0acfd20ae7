// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	msgNothingToMerge = "\n=== No files in this directory need to be merged. ===\n"
	msgSinglePart     = "\n=== No related parts matched this file. ===\n"
	msgNotAttempted   = "\n=== Merger not attempted. ===\n"
	msgAttempting     = "\nAttempting to merge PDFs...\n"

	// MergePrompt asks before any file is merged or deleted.
	MergePrompt = "Would you like to merge the file above with their respective parts? [y/N]: "
)

// WriteNothingToMerge reports that no part files were found.
func WriteNothingToMerge(w io.Writer) error {
	_, err := io.WriteString(w, msgNothingToMerge+"\n")
	return err
}

// WriteSinglePart reports a lone part file that has nothing to merge with.
func WriteSinglePart(w io.Writer, names []string) error {
	_, err := io.WriteString(w, msgSinglePart+"\n"+List(names)+"\n")
	return err
}

// WriteMergeCandidates lists the part files about to be merged.
func WriteMergeCandidates(w io.Writer, names []string) error {
	_, err := io.WriteString(w, "\n"+List(names))
	return err
}

// WriteAttempting announces that merging starts.
func WriteAttempting(w io.Writer) error {
	_, err := io.WriteString(w, msgAttempting+"\n")
	return err
}

// WriteNotAttempted reports a declined merge.
func WriteNotAttempted(w io.Writer) error {
	_, err := io.WriteString(w, msgNotAttempted+"\n")
	return err
}

// Confirm writes MergePrompt to w and reads one answer line from r. Only "y"
// or "Y" confirms; end of input declines.
func Confirm(r io.Reader, w io.Writer) (bool, error) {
	if _, err := io.WriteString(w, MergePrompt); err != nil {
		return false, err
	}
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return false, fmt.Errorf("reading confirmation: %w", err)
		}
		return false, nil
	}
	answer := strings.TrimSpace(sc.Text())
	return answer == "y" || answer == "Y", nil
}

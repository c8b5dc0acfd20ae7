// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package check

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/irck/internal/ocr"
	"github.com/pdiddy/irck/pkg/types"
)

// concatWriter merges by concatenating file contents.
type concatWriter struct{}

func (concatWriter) Merge(inputs []string, output string) error {
	var buf bytes.Buffer
	for _, in := range inputs {
		data, err := os.ReadFile(in)
		if err != nil {
			return err
		}
		buf.Write(data)
	}
	return os.WriteFile(output, buf.Bytes(), 0o644)
}

func scanDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestScan_Verify(t *testing.T) {
	dir := scanDir(t, map[string]string{
		"2015-06-12_mad_smith.pdf": "",
		"scan0001.pdf":             "",
		"readme.txt":               "",
	})
	s := Scan{
		Config: types.ScanConfig{Directory: dir},
		Filter: types.FilterSpec{Verify: true},
	}

	var out bytes.Buffer
	require.NoError(t, s.Run(nil, &out))
	assert.Equal(t,
		"\n=== 1 of 2 PDF is invalid ===\n\nscan0001.pdf\n\n=== 1 of 2 PDF is invalid ===\n\n",
		out.String())
}

func TestScan_SearchJSON(t *testing.T) {
	dir := scanDir(t, map[string]string{
		"2015-06-12_mad_smith.pdf": "",
		"2015-06-12_pin_jones.pdf": "",
	})
	s := Scan{
		Config: types.ScanConfig{Directory: dir, Format: types.FormatJSON},
		Filter: types.FilterSpec{LibraryCodes: []string{"pin"}},
	}

	var out bytes.Buffer
	require.NoError(t, s.Run(nil, &out))
	assert.Contains(t, out.String(), `"2015-06-12_pin_jones.pdf"`)
	assert.Contains(t, out.String(), `"mode": "search"`)
}

func mergeScan(dir string, yes bool) Scan {
	return Scan{
		Config: types.ScanConfig{Directory: dir, AssumeYes: yes},
		Filter: types.FilterSpec{Merge: true},
		Writer: concatWriter{},
	}
}

func TestScan_MergeConfirmed(t *testing.T) {
	dir := scanDir(t, map[string]string{
		"2015-06-12_mad_smith_part1.pdf": "A",
		"2015-06-12_mad_smith_part2.pdf": "B",
		"2016-01-01_pin_LNU_part1.pdf":   "C",
		"2017-02-02_seq_jones.pdf":       "D",
	})

	var out bytes.Buffer
	require.NoError(t, mergeScan(dir, false).Run(strings.NewReader("y\n"), &out))

	want := "\n2015-06-12_mad_smith_part1.pdf\n2015-06-12_mad_smith_part2.pdf\n2016-01-01_pin_LNU_part1.pdf\n" +
		"Would you like to merge the file above with their respective parts? [y/N]: " +
		"\nAttempting to merge PDFs...\n\n" +
		"Created `2015-06-12_mad_smith.pdf` and deleted parts.\n" +
		"2016-01-01_pin_LNU does not have multiple parts. Skipped.\n"
	assert.Equal(t, want, out.String())

	merged, err := os.ReadFile(filepath.Join(dir, "2015-06-12_mad_smith.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "AB", string(merged))
	assert.NoFileExists(t, filepath.Join(dir, "2015-06-12_mad_smith_part1.pdf"))
	assert.FileExists(t, filepath.Join(dir, "2016-01-01_pin_LNU_part1.pdf"))
	assert.FileExists(t, filepath.Join(dir, "2017-02-02_seq_jones.pdf"))
}

func TestScan_MergeDeclined(t *testing.T) {
	dir := scanDir(t, map[string]string{
		"2015-06-12_mad_smith_part1.pdf": "A",
		"2015-06-12_mad_smith_part2.pdf": "B",
	})

	var out bytes.Buffer
	require.NoError(t, mergeScan(dir, false).Run(strings.NewReader("n\n"), &out))
	assert.True(t, strings.HasSuffix(out.String(), "\n=== Merger not attempted. ===\n\n"))
	assert.FileExists(t, filepath.Join(dir, "2015-06-12_mad_smith_part1.pdf"))
	assert.NoFileExists(t, filepath.Join(dir, "2015-06-12_mad_smith.pdf"))
}

func TestScan_MergeAssumeYes(t *testing.T) {
	dir := scanDir(t, map[string]string{
		"2015-06-12_mad_smith_part1.pdf": "A",
		"2015-06-12_mad_smith_part2.pdf": "B",
	})

	var out bytes.Buffer
	require.NoError(t, mergeScan(dir, true).Run(nil, &out))
	assert.NotContains(t, out.String(), "[y/N]")
	assert.FileExists(t, filepath.Join(dir, "2015-06-12_mad_smith.pdf"))
}

func TestScan_MergeNothingOrSingle(t *testing.T) {
	dir := scanDir(t, map[string]string{"2015-06-12_mad_smith.pdf": ""})
	var out bytes.Buffer
	require.NoError(t, mergeScan(dir, false).Run(nil, &out))
	assert.Equal(t, "\n=== No files in this directory need to be merged. ===\n\n", out.String())

	dir = scanDir(t, map[string]string{"2015-06-12_mad_smith_part1.pdf": ""})
	out.Reset()
	require.NoError(t, mergeScan(dir, false).Run(nil, &out))
	assert.Equal(t,
		"\n=== No related parts matched this file. ===\n\n2015-06-12_mad_smith_part1.pdf\n\n",
		out.String())
}

type fixedRasterizer struct{}

func (fixedRasterizer) PageImages(context.Context, string) ([][]byte, error) {
	return [][]byte{[]byte("text")}, nil
}

type echoRecognizer struct{}

func (echoRecognizer) Recognize(_ context.Context, img []byte) (string, error) {
	return string(img), nil
}

func TestOCR(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "a.pdf")
	require.NoError(t, os.WriteFile(src, []byte("%PDF"), 0o644))

	cfg := types.DefaultOCRConfig()
	cfg.OutputDir = filepath.Join(root, "out")
	cfg.ProcessedDir = filepath.Join(root, "done")
	p := ocr.NewProcessor(fixedRasterizer{}, echoRecognizer{}, cfg)

	missing := filepath.Join(root, "missing.pdf")
	var out bytes.Buffer
	require.NoError(t, OCR(context.Background(), p, []string{missing, "notes.txt", src}, &out))

	assert.Equal(t, missing+" is not a valid PDF.\nnotes.txt is not a valid PDF.\n", out.String())
	text, err := os.ReadFile(filepath.Join(root, "out", "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "text\n", string(text))
	assert.FileExists(t, filepath.Join(root, "done", "a.pdf"))
}

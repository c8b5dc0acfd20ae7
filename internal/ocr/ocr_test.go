// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ocr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/irck/pkg/types"
)

// fakeRasterizer returns fixed page images.
type fakeRasterizer struct {
	images [][]byte
	err    error
}

func (f fakeRasterizer) PageImages(context.Context, string) ([][]byte, error) {
	return f.images, f.err
}

// echoRecognizer returns each image's bytes as text.
type echoRecognizer struct {
	failOn string
}

func (e echoRecognizer) Recognize(_ context.Context, img []byte) (string, error) {
	if e.failOn != "" && string(img) == e.failOn {
		return "", errors.New("unreadable image")
	}
	return string(img), nil
}

func newTestProcessor(t *testing.T, r Rasterizer, rec Recognizer) (*Processor, string) {
	t.Helper()
	root := t.TempDir()
	cfg := types.DefaultOCRConfig()
	cfg.OutputDir = filepath.Join(root, cfg.OutputDir)
	cfg.ProcessedDir = filepath.Join(root, cfg.ProcessedDir)
	return NewProcessor(r, rec, cfg), root
}

func TestProcess(t *testing.T) {
	r := fakeRasterizer{images: [][]byte{[]byte("Page one. "), []byte("Page two.")}}
	p, root := newTestProcessor(t, r, echoRecognizer{})

	src := filepath.Join(root, "2015-06-12_mad_smith.pdf")
	require.NoError(t, os.WriteFile(src, []byte("%PDF"), 0o644))

	res, err := p.Process(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Pages)

	text, err := os.ReadFile(filepath.Join(p.OutputDir, "2015-06-12_mad_smith.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Page one. Page two.\n", string(text))

	assert.NoFileExists(t, src)
	assert.FileExists(t, filepath.Join(p.ProcessedDir, "2015-06-12_mad_smith.pdf"))
	assert.Equal(t, res.MovedPath, filepath.Join(p.ProcessedDir, "2015-06-12_mad_smith.pdf"))
}

func TestProcess_NotAPDF(t *testing.T) {
	p, root := newTestProcessor(t, fakeRasterizer{}, echoRecognizer{})

	txt := filepath.Join(root, "notes.txt")
	require.NoError(t, os.WriteFile(txt, []byte("x"), 0o644))

	folder := filepath.Join(root, "folder.pdf")
	require.NoError(t, os.Mkdir(folder, 0o755))

	for _, path := range []string{txt, filepath.Join(root, "missing.pdf"), folder} {
		_, err := p.Process(context.Background(), path)
		require.Error(t, err, path)
		assert.True(t, errors.Is(err, ErrNotAPDF), path)
	}
	assert.NoDirExists(t, p.OutputDir)
	assert.FileExists(t, txt)
}

func TestProcess_RecognizerFailureKeepsSource(t *testing.T) {
	r := fakeRasterizer{images: [][]byte{[]byte("ok"), []byte("bad")}}
	p, root := newTestProcessor(t, r, echoRecognizer{failOn: "bad"})

	src := filepath.Join(root, "a.pdf")
	require.NoError(t, os.WriteFile(src, []byte("%PDF"), 0o644))

	_, err := p.Process(context.Background(), src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recognizing image 2")
	assert.FileExists(t, src)
	assert.NoFileExists(t, filepath.Join(p.OutputDir, "a.txt"))
}

func TestProcess_RasterizerFailure(t *testing.T) {
	p, root := newTestProcessor(t, fakeRasterizer{err: errors.New("broken xref")}, echoRecognizer{})

	src := filepath.Join(root, "a.pdf")
	require.NoError(t, os.WriteFile(src, []byte("%PDF"), 0o644))

	_, err := p.Process(context.Background(), src)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotAPDF))
	assert.FileExists(t, src)
}

func TestExpandTargets(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.pdf", "a.pdf", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "d.pdf"), nil, 0o644))

	got, err := ExpandTargets([]string{
		filepath.Join(dir, "*.pdf"),
		filepath.Join(dir, "literal.pdf"),
		filepath.Join(dir, "**", "d.pdf"),
		filepath.Join(dir, "*.none"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.pdf"),
		filepath.Join(dir, "b.pdf"),
		filepath.Join(dir, "literal.pdf"),
		filepath.Join(dir, "sub", "d.pdf"),
		filepath.Join(dir, "*.none"),
	}, got)
}

// mockExecutor records calls and writes page files the way pdftoppm names
// them.
type mockExecutor struct {
	onPath bool
	pages  int
	calls  [][]string
	err    error
}

func (m *mockExecutor) LookPath(file string) (string, error) {
	if m.onPath {
		return "/usr/bin/" + file, nil
	}
	return "", errors.New("not found: " + file)
}

func (m *mockExecutor) Run(_ context.Context, name string, args ...string) error {
	m.calls = append(m.calls, append([]string{name}, args...))
	if m.err != nil {
		return m.err
	}
	prefix := args[len(args)-1]
	for i := m.pages; i >= 1; i-- {
		page := prefix + "-" + padPage(i, m.pages) + ".png"
		if err := os.WriteFile(page, []byte{byte('0' + i)}, 0o644); err != nil {
			return err
		}
	}
	return nil
}

func padPage(i, total int) string {
	return fmt.Sprintf("%0*d", len(strconv.Itoa(total)), i)
}

func TestPdftoppmRasterizer(t *testing.T) {
	ex := &mockExecutor{onPath: true, pages: 3}
	r, err := newPdftoppmRasterizer(150, ex)
	require.NoError(t, err)

	images, err := r.PageImages(context.Background(), "scan.pdf")
	require.NoError(t, err)
	assert.Equal(t, [][]byte{{'1'}, {'2'}, {'3'}}, images)

	require.Len(t, ex.calls, 1)
	assert.Equal(t, []string{"pdftoppm", "-r", "150", "-png", "scan.pdf"}, ex.calls[0][:5])
}

func TestPdftoppmRasterizer_PageOrderPastNine(t *testing.T) {
	ex := &mockExecutor{onPath: true, pages: 11}
	r, err := newPdftoppmRasterizer(0, ex)
	require.NoError(t, err)
	assert.Equal(t, 300, r.DPI)

	images, err := r.PageImages(context.Background(), "scan.pdf")
	require.NoError(t, err)
	require.Len(t, images, 11)
	assert.Equal(t, []byte{'1'}, images[0])
	assert.Equal(t, []byte{'0' + 10}, images[9])
}

func TestPdftoppmRasterizer_Errors(t *testing.T) {
	_, err := newPdftoppmRasterizer(300, &mockExecutor{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "poppler-utils")

	r, err := newPdftoppmRasterizer(300, &mockExecutor{onPath: true, err: errors.New("exit status 1")})
	require.NoError(t, err)
	_, err = r.PageImages(context.Background(), "scan.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "running pdftoppm")
}

// writeScannedPDF writes a PDF whose pages each hold one JPEG image, like a
// scanner produces.
func writeScannedPDF(t *testing.T, path string, pages int) {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 16, 16))
	for x := 0; x < 16; x++ {
		img.Set(x, x, color.White)
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))

	doc := fpdf.New("P", "mm", "A4", "")
	opt := fpdf.ImageOptions{ImageType: "JPG"}
	doc.RegisterImageOptionsReader("scan", opt, bytes.NewReader(buf.Bytes()))
	for i := 0; i < pages; i++ {
		doc.AddPage()
		doc.ImageOptions("scan", 10, 10, 100, 100, false, opt, 0, "")
	}
	require.NoError(t, doc.OutputFileAndClose(path))
}

func TestPDFCPURasterizer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "2015-06-12_mad_smith.pdf")
	writeScannedPDF(t, path, 2)

	images, err := PDFCPURasterizer{}.PageImages(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, images, 2)
	for _, img := range images {
		assert.NotEmpty(t, img)
	}
}

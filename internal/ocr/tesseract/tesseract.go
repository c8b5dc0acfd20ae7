// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tesseract recognizes page images with the tesseract engine through
// gosseract. Building it requires the tesseract and leptonica headers.
package tesseract

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// Recognizer holds one tesseract client. It is not safe for concurrent use.
type Recognizer struct {
	client *gosseract.Client
}

// New returns a Recognizer for language (e.g. "eng" or "eng+spa") and page
// segmentation mode. A mode of 0 or less keeps the engine default.
func New(language string, pageSegMode int) (*Recognizer, error) {
	client := gosseract.NewClient()
	if language != "" {
		if err := client.SetLanguage(language); err != nil {
			client.Close()
			return nil, fmt.Errorf("setting language %q: %w", language, err)
		}
	}
	if pageSegMode > 0 {
		if err := client.SetPageSegMode(gosseract.PageSegMode(pageSegMode)); err != nil {
			client.Close()
			return nil, fmt.Errorf("setting page segmentation mode %d: %w", pageSegMode, err)
		}
	}
	return &Recognizer{client: client}, nil
}

// Recognize returns the text tesseract reads from image.
func (r *Recognizer) Recognize(ctx context.Context, image []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := r.client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("loading image: %w", err)
	}
	text, err := r.client.Text()
	if err != nil {
		return "", fmt.Errorf("recognizing text: %w", err)
	}
	return text, nil
}

// Close releases the tesseract client.
func (r *Recognizer) Close() error {
	return r.client.Close()
}

//go:build ocr

// Package ocr provides OCR (Optical Character Recognition) for timetable
// screenshots, so a PNG or JPEG capture of the schedule grid can feed the
// same text parser as a PDF export.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system, along with the Simplified
// Chinese language data. On macOS:
//
//	brew install tesseract tesseract-lang
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr tesseract-ocr-chi-sim
package ocr

import (
	"fmt"
	"os"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// DefaultLanguages covers the mixed Chinese/Latin text of the schedule
// grid (course names in hanzi, room codes and digits in ASCII).
const DefaultLanguages = "chi_sim+eng"

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client configured for timetable text.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	c := &Client{client: client}
	if err := c.SetLanguage(DefaultLanguages); err != nil {
		client.Close()
		return nil, err
	}
	return c, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c != nil && c.client != nil {
		return c.client.Close()
	}
	return nil
}

// SetLanguage sets the language(s) for OCR recognition. Multiple languages
// can be specified as a "+" separated string (e.g., "chi_sim+eng").
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(strings.Split(lang, "+")...)
}

// RecognizeImage performs OCR on image data (PNG, JPEG, TIFF, etc.).
// Returns the recognized text with leading/trailing whitespace trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// RecognizeFile performs OCR on an image file.
func (c *Client) RecognizeFile(filename string) (string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("reading image: %w", err)
	}
	return c.RecognizeImage(data)
}

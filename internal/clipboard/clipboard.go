// Package clipboard copies exported drawings to, and reads sticker text
// from, the desktop clipboard.
package clipboard

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"
)

var (
	// ErrNoText is returned when the clipboard holds no text.
	ErrNoText = errors.New("clipboard does not contain text data")
	// ErrUnsupported is returned on platforms without clipboard support.
	ErrUnsupported = errors.New("clipboard is not supported on this platform")
)

// WritePNG publishes PNG encoded image data.
func WritePNG(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty PNG data")
	}
	if err := writePNG(data); err != nil {
		return fmt.Errorf("copy PNG to clipboard: %w", err)
	}
	return nil
}

// WriteImage encodes img as PNG and publishes it.
func WriteImage(img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	return WritePNG(buf.Bytes())
}

// ReadText returns the clipboard text without trailing NULs or whitespace.
func ReadText() (string, error) {
	data, err := readText()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	s := strings.TrimRight(string(data), "\x00")
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrNoText
	}
	return s, nil
}

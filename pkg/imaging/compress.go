// Package imaging prepares artwork for upload: it caps the width and
// re-encodes as JPEG so approval payloads stay small.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"math"

	// decoders registered for image.Decode
	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	MaxWidth    = 1080
	JPEGQuality = 80

	// MaxPixels bounds the decoded canvas; headers are checked before any
	// pixel data is read.
	MaxPixels = 40_000_000
)

var (
	ErrEmptyImage    = errors.New("image is empty")
	ErrImageTooLarge = errors.New("image dimensions too large")
)

type Result struct {
	Data   []byte
	Width  int
	Height int
}

// TargetSize returns the dimensions an image of w x h is scaled to. Images at
// or under MaxWidth keep their size.
func TargetSize(w, h int) (int, int) {
	if w <= MaxWidth {
		return w, h
	}
	nh := int(math.Round(float64(h) * float64(MaxWidth) / float64(w)))
	if nh < 1 {
		nh = 1
	}
	return MaxWidth, nh
}

// Compress decodes src, downsizes it to MaxWidth when wider and encodes it as
// JPEG at JPEGQuality. Transparent pixels are flattened onto white.
func Compress(src []byte) (*Result, error) {
	if len(src) == 0 {
		return nil, ErrEmptyImage
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height)
	}

	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	b := img.Bounds()
	w, h := TargetSize(b.Dx(), b.Dy())

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}

	return &Result{Data: buf.Bytes(), Width: w, Height: h}, nil
}

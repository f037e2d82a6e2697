// Package imgcodec is the external collaborator spec.md keeps at arm's
// length from the store engine: decode JPEG bytes, read their dimensions,
// and produce an aspect-preserving resized JPEG. internal/imgfs depends
// only on the Codec interface here, never on an image-decoding library
// directly.
package imgcodec

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/disintegration/imaging"
)

// Codec decodes and resizes JPEG images. Dimensions/Thumbnail mirror the
// source project's get_resolution/lazily_resize boundary with libvips.
type Codec interface {
	// Dimensions returns the width and height, in pixels, of the JPEG
	// image encoded in data.
	Dimensions(data []byte) (width, height uint32, err error)

	// Thumbnail decodes the JPEG image in data and returns a re-encoded
	// JPEG resized so its longest edge is maxEdge pixels, preserving
	// aspect ratio. Images already within maxEdge are not upscaled.
	Thumbnail(data []byte, maxEdge uint16) ([]byte, error)
}

// JPEG is the default [Codec], built on stdlib image/jpeg for decode/encode
// and github.com/disintegration/imaging for the aspect-preserving resize —
// the idiomatic Go stand-in for the source project's libvips calls.
type JPEG struct {
	// Quality is the JPEG encoding quality passed to image/jpeg. Zero
	// selects jpeg.DefaultQuality.
	Quality int
}

// NewJPEG returns a JPEG codec with default encoding quality.
func NewJPEG() *JPEG {
	return &JPEG{Quality: jpeg.DefaultQuality}
}

// Dimensions implements [Codec].
func (c *JPEG) Dimensions(data []byte) (uint32, uint32, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("imgcodec: decoding JPEG header: %w", err)
	}
	return uint32(cfg.Width), uint32(cfg.Height), nil
}

// Thumbnail implements [Codec].
func (c *JPEG) Thumbnail(data []byte, maxEdge uint16) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("imgcodec: decoding JPEG: %w", err)
	}

	resized := imaging.Fit(img, int(maxEdge), int(maxEdge), imaging.Lanczos)

	var buf bytes.Buffer
	quality := c.Quality
	if quality == 0 {
		quality = jpeg.DefaultQuality
	}
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("imgcodec: encoding JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

// compile-time interface check.
var _ Codec = (*JPEG)(nil)

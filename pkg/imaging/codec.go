// Package imaging normalizes uploaded photographs: decode, flatten onto an
// opaque white background, bound the dimensions, re-encode as JPEG.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"strings"

	_ "image/gif"
	_ "image/png"

	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const (
	// MaxWidth and MaxHeight bound stored images; larger uploads are
	// downscaled preserving aspect ratio.
	MaxWidth  = 1920
	MaxHeight = 1080

	// Quality is the fixed JPEG encoder quality for stored images.
	Quality = 85
)

var (
	// ErrNotAnImage is returned when the declared content type is not an
	// image media type.
	ErrNotAnImage = errors.New("file must be an image")
	// ErrDecode is returned when the payload cannot be decoded as an image.
	ErrDecode = errors.New("invalid or unsupported image data")
)

// Process validates the declared content type, decodes the payload, flattens
// any alpha or palette image onto white, downscales oversized images, and
// returns the JPEG-encoded result. Pure function; EXIF and other metadata do
// not survive re-encoding.
func Process(contentType string, data []byte) ([]byte, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotAnImage
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	rgb := flatten(src)
	if b := rgb.Bounds(); b.Dx() > MaxWidth || b.Dy() > MaxHeight {
		rgb = downscale(rgb, MaxWidth, MaxHeight)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, rgb, &jpeg.Options{Quality: Quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// flatten composites the source onto an opaque white canvas. For images that
// are already opaque this is a plain copy, so applying it unconditionally
// keeps the pixel data identical while normalizing the color model.
func flatten(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Over)
	return dst
}

// downscale shrinks the image so neither dimension exceeds the given bounds,
// preserving aspect ratio. Catmull-Rom gives the high-quality resampling the
// stored thumbnails need; it is never used to upscale.
func downscale(src *image.RGBA, maxW, maxH int) *image.RGBA {
	w := src.Bounds().Dx()
	h := src.Bounds().Dy()

	scale := float64(maxW) / float64(w)
	if s := float64(maxH) / float64(h); s < scale {
		scale = s
	}

	outW := int(float64(w) * scale)
	outH := int(float64(h) * scale)
	if outW < 1 {
		outW = 1
	}
	if outH < 1 {
		outH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, outW, outH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

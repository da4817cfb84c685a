// Package imaging prepares uploaded media for slot storage. Images are
// downscaled and recompressed so a handful of photos cannot exhaust the
// store's size ceiling; other media (video) is encoded verbatim because
// client-side transcoding is out of scope, which makes video uploads the
// dominant quota risk.
package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"io"

	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

// MaxEdgePixels caps the longest edge of a normalized image. Images
// already within the cap are never upscaled.
const MaxEdgePixels = 1600

// JPEGQuality is the recompression quality factor.
const JPEGQuality = 80

// Errors surfaced to the upload flow. A failed decode or read aborts the
// upload before any state changes.
var (
	ErrImageDecode = errors.New("file could not be decoded as an image")
	ErrFileRead    = errors.New("file could not be read")
)

// Normalize decodes an image, bounds its longest edge at MaxEdgePixels
// preserving aspect ratio, re-encodes it as JPEG, and returns a base64
// data URL.
// POST: output longest edge <= MaxEdgePixels; never upscales
func Normalize(r io.Reader) (string, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrImageDecode, err)
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	targetW, targetH := boundedSize(width, height)

	out := src
	if targetW != width || targetH != height {
		dst := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
		out = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return "", fmt.Errorf("re-encoding image: %w", err)
	}
	return dataURL("image/jpeg", buf.Bytes()), nil
}

// EncodeFile encodes a file verbatim as a base64 data URL with the given
// MIME type. No transformation is applied; this is the video path.
func EncodeFile(r io.Reader, mimeType string) (string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFileRead, err)
	}
	return dataURL(mimeType, raw), nil
}

// boundedSize shrinks (w, h) so the longest edge is at most MaxEdgePixels,
// preserving aspect ratio. Dimensions within the cap pass through.
func boundedSize(w, h int) (int, int) {
	longest := w
	if h > longest {
		longest = h
	}
	if longest <= MaxEdgePixels {
		return w, h
	}
	ratio := float64(MaxEdgePixels) / float64(longest)
	scaledW := int(float64(w)*ratio + 0.5)
	scaledH := int(float64(h)*ratio + 0.5)
	if scaledW < 1 {
		scaledW = 1
	}
	if scaledH < 1 {
		scaledH = 1
	}
	return scaledW, scaledH
}

func dataURL(mimeType string, raw []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(raw)
}

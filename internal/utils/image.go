package utils

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
)

var ErrUnsupportedImageFormat = errors.New("unsupported image format")

// ResizeImage decodes an uploaded photo, scales it down so neither side
// exceeds maxDim (aspect ratio preserved), and re-encodes it. Smaller images
// pass through re-encoded but unscaled.
func ResizeImage(r io.Reader, filename string, maxDim uint) ([]byte, string, error) {
	img, err := decodeImage(r, filename)
	if err != nil {
		return nil, "", err
	}

	bounds := img.Bounds()
	width := uint(bounds.Dx())
	height := uint(bounds.Dy())

	if width > maxDim || height > maxDim {
		if width >= height {
			img = resize.Resize(maxDim, 0, img, resize.Lanczos3)
		} else {
			img = resize.Resize(0, maxDim, img, resize.Lanczos3)
		}
	}

	var buf bytes.Buffer
	switch imageFormat(filename) {
	case "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), "image/png", nil
	default:
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), "image/jpeg", nil
	}
}

func decodeImage(r io.Reader, filename string) (image.Image, error) {
	switch imageFormat(filename) {
	case "png":
		return png.Decode(r)
	case "jpeg":
		return jpeg.Decode(r)
	default:
		return nil, ErrUnsupportedImageFormat
	}
}

func imageFormat(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	default:
		return ""
	}
}

// IsImageFile reports whether the filename carries a supported extension.
func IsImageFile(filename string) bool {
	return imageFormat(filename) != ""
}

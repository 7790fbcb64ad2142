// Package imagefile exports hue grids as image files.
package imagefile

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/fractal/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an output image encoding.
type Format string

const (
	// FormatPNG encodes with image/png.
	FormatPNG Format = "png"
	// FormatBMP encodes with golang.org/x/image/bmp.
	FormatBMP Format = "bmp"
	// FormatTIFF encodes with golang.org/x/image/tiff, deflate-compressed.
	FormatTIFF Format = "tiff"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return "", zerr.With(zerr.Wrap(domain.ErrUnknownImageFormat, "unsupported extension"), "path", path)
	}
}

// Image maps every cell of g to a fully saturated color of its hue.
// Cells holding 0 are black.
func Image(g *domain.Grid) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Size, g.Size))
	for x := range g.Size {
		for y, v := range g.Column(x) {
			img.SetRGBA(x, y, Color(v))
		}
	}
	return img
}

// Color returns the color of hue scalar v.
func Color(v float64) color.RGBA {
	if v == 0 || math.IsNaN(v) {
		return color.RGBA{A: 255}
	}
	return hsv(v, 1, 1)
}

func hsv(h, s, v float64) color.RGBA {
	h = math.Mod(h, 1)
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return color.RGBA{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255), A: 255}
}

// Encode writes g to w in format f.
func Encode(w io.Writer, g *domain.Grid, f Format) error {
	img := Image(g)
	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return zerr.With(zerr.Wrap(domain.ErrUnknownImageFormat, "no encoder"), "format", string(f))
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to encode image"), "format", string(f))
	}
	return nil
}

// WriteFile encodes g into the file at path, choosing the format by extension.
func WriteFile(path string, g *domain.Grid) (err error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	//nolint:gosec // Path is provided by user
	out, err := os.Create(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create image file"), "path", path)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = zerr.With(zerr.Wrap(cerr, "failed to close image file"), "path", path)
		}
	}()

	return Encode(out, g, f)
}

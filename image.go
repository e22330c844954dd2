package newton

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Image is a rendered frame stored as tightly packed 8-bit RGB triples in
// row-major order.
type Image struct {
	Width, Height int

	// Pix holds 3*Width*Height bytes.
	Pix []uint8
}

// NewImage creates a black image.
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, 3*width*height),
	}
}

// RGBAt returns the colour components of the pixel at (x, y).
// Out-of-bounds coordinates return black.
func (m *Image) RGBAt(x, y int) (r, g, b uint8) {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return 0, 0, 0
	}
	i := 3 * (y*m.Width + x)
	return m.Pix[i], m.Pix[i+1], m.Pix[i+2]
}

// ToRGBA converts the image to an opaque image.RGBA.
func (m *Image) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
	for i, j := 0, 0; i < len(m.Pix); i, j = i+3, j+4 {
		img.Pix[j+0] = m.Pix[i+0]
		img.Pix[j+1] = m.Pix[i+1]
		img.Pix[j+2] = m.Pix[i+2]
		img.Pix[j+3] = 0xff
	}
	return img
}

// At implements the image.Image interface.
func (m *Image) At(x, y int) color.Color {
	r, g, b := m.RGBAt(x, y)
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Bounds implements the image.Image interface.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.Width, m.Height)
}

// ColorModel implements the image.Image interface.
func (m *Image) ColorModel() color.Model {
	return color.RGBAModel
}

// Format is an output file format.
type Format uint8

// Supported formats.
const (
	FormatPNG Format = iota
	FormatBMP
	FormatTIFF
)

// String returns the canonical file extension of the format, without dot.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", f)
	}
}

// FormatFromPath picks the format from the extension of path.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// Encode writes the image to w in format f.
func (m *Image) Encode(w io.Writer, f Format) error {
	img := m.ToRGBA()
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

// Save writes the image to path, choosing the format from its extension.
func (m *Image) Save(path string) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return m.Encode(f, format)
}

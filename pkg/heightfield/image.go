package heightfield

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // GIF decoder registration
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"  // BMP decoder registration
	_ "golang.org/x/image/tiff" // TIFF decoder registration
	_ "golang.org/x/image/webp" // WebP decoder registration
)

// Image is a height map sampled from the luminance of a picture. The picture is
// stretched over a width x height rectangle centered at the origin, with its top
// row at +y. Heights are luminance in [0, 1] times the scale.
type Image struct {
	heights []float64 // row-major, row 0 is the top of the picture
	cols    int
	rows    int
	width   float64
	height  float64
}

// FromImage builds a height map from img spread over a width x height area.
func FromImage(img image.Image, width, height, scale float64) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("height map extent %gx%g must be positive", width, height)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, errors.New("height map image is empty")
	}

	m := &Image{
		heights: make([]float64, 0, b.Dx()*b.Dy()),
		cols:    b.Dx(),
		rows:    b.Dy(),
		width:   width,
		height:  height,
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g := color.Gray16Model.Convert(img.At(x, y)).(color.Gray16)
			m.heights = append(m.heights, float64(g.Y)/0xFFFF*scale)
		}
	}
	return m, nil
}

// Load decodes a height-map file. PNG, JPEG, GIF, BMP, TIFF and WebP are detected
// from their content; TGA is picked by the .tga extension.
func Load(path string, width, height, scale float64) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var img image.Image
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		img, err = decodeTGA(data)
	} else {
		img, _, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("decoding height map %s: %w", path, err)
	}
	return FromImage(img, width, height, scale)
}

// Size returns the pixel dimensions of the height map.
func (m *Image) Size() (cols, rows int) {
	return m.cols, m.rows
}

// Height returns the bilinearly interpolated height at world position (x, y).
// Positions outside the covered area take the height of the nearest edge.
func (m *Image) Height(x, y float64) float64 {
	fx := clampf((x/m.width+0.5)*float64(m.cols-1), 0, float64(m.cols-1))
	fy := clampf((0.5-y/m.height)*float64(m.rows-1), 0, float64(m.rows-1))

	x0, y0 := int(fx), int(fy)
	x1, y1 := min(x0+1, m.cols-1), min(y0+1, m.rows-1)
	tx, ty := fx-float64(x0), fy-float64(y0)

	top := lerp(m.at(x0, y0), m.at(x1, y0), tx)
	bottom := lerp(m.at(x0, y1), m.at(x1, y1), tx)
	return lerp(top, bottom, ty)
}

func (m *Image) at(col, row int) float64 {
	return m.heights[row*m.cols+col]
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

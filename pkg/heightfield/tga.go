package heightfield

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image types understood by decodeTGA.
const (
	tgaTrueColor    = 2
	tgaGray         = 3
	tgaTrueColorRLE = 10
	tgaGrayRLE      = 11
)

// maxTGAPixels caps the image size accepted from a TGA header.
const maxTGAPixels = 1 << 26

// decodeTGA decodes uncompressed and RLE TGA files in 8-bit grayscale or
// 24/32-bit true color. Grayscale files decode to *image.Gray.
func decodeTGA(data []byte) (image.Image, error) {
	if len(data) < 18 {
		return nil, errors.New("tga: header too short")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topToBottom := data[17]&0x20 != 0

	if colorMapType != 0 {
		return nil, errors.New("tga: color-mapped images not supported")
	}

	gray := imageType == tgaGray || imageType == tgaGrayRLE
	rle := imageType == tgaTrueColorRLE || imageType == tgaGrayRLE
	switch {
	case imageType != tgaTrueColor && imageType != tgaGray && !rle:
		return nil, fmt.Errorf("tga: unsupported image type %d", imageType)
	case gray && bpp != 8:
		return nil, fmt.Errorf("tga: unsupported grayscale depth %d", bpp)
	case !gray && bpp != 24 && bpp != 32:
		return nil, fmt.Errorf("tga: unsupported true-color depth %d", bpp)
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, errors.New("tga: truncated")
	}
	src := data[offset:]
	bytesPerPixel := bpp / 8

	// Validate the header dimensions against the payload before allocating.
	// An RLE packet of 1+bytesPerPixel bytes expands to at most 128 pixels.
	total := width * height
	switch {
	case total > maxTGAPixels:
		return nil, fmt.Errorf("tga: %dx%d image too large", width, height)
	case !rle && len(src) < total*bytesPerPixel:
		return nil, errors.New("tga: pixel data truncated")
	case rle && total > len(src)/(1+bytesPerPixel)*128:
		return nil, errors.New("tga: RLE data truncated")
	}

	var (
		img image.Image
		set func(x, y int, px []byte)
	)
	rect := image.Rect(0, 0, width, height)
	if gray {
		g := image.NewGray(rect)
		img = g
		set = func(x, y int, px []byte) { g.SetGray(x, y, color.Gray{Y: px[0]}) }
	} else {
		rgba := image.NewRGBA(rect)
		img = rgba
		set = func(x, y int, px []byte) {
			a := uint8(255)
			if len(px) == 4 {
				a = px[3]
			}
			rgba.SetRGBA(x, y, color.RGBA{R: px[2], G: px[1], B: px[0], A: a})
		}
	}

	// put stores pixel n in scan order, flipping rows for bottom-up files.
	put := func(n int, px []byte) {
		x, y := n%width, n/width
		if !topToBottom {
			y = height - 1 - y
		}
		set(x, y, px)
	}

	if !rle {
		for n := range total {
			put(n, src[n*bytesPerPixel:(n+1)*bytesPerPixel])
		}
		return img, nil
	}

	n, pos := 0, 0
	for n < total {
		if pos >= len(src) {
			return nil, errors.New("tga: RLE data truncated")
		}
		header := src[pos]
		pos++
		count := int(header&0x7F) + 1

		if header&0x80 != 0 {
			if pos+bytesPerPixel > len(src) {
				return nil, errors.New("tga: RLE data truncated")
			}
			px := src[pos : pos+bytesPerPixel]
			pos += bytesPerPixel
			for ; count > 0 && n < total; count-- {
				put(n, px)
				n++
			}
			continue
		}

		for ; count > 0 && n < total; count-- {
			if pos+bytesPerPixel > len(src) {
				return nil, errors.New("tga: RLE data truncated")
			}
			put(n, src[pos:pos+bytesPerPixel])
			pos += bytesPerPixel
			n++
		}
	}
	return img, nil
}

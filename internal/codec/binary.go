package codec

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"sync"

	"spritedit/internal/core"

	"golang.org/x/image/bmp"
)

// binaryImage stores one pixel per cell with the vertical axis inverted:
// grid row y is image row (H-1)-y. Background cells are fully transparent.
type binaryImage struct {
	container Format
}

func (c binaryImage) Encode(w io.Writer, g *core.Grid) error {
	img := ToImage(g)
	switch c.container {
	case BMP:
		if err := bmp.Encode(w, img); err != nil {
			return fmt.Errorf("could not encode BMP: %w", err)
		}
	default:
		enc := png.Encoder{
			CompressionLevel: png.BestCompression,
			BufferPool:       pngPool,
		}
		if err := enc.Encode(w, img); err != nil {
			return fmt.Errorf("could not encode PNG: %w", err)
		}
	}
	return nil
}

func (c binaryImage) Decode(r io.Reader) (*core.Grid, error) {
	var (
		img image.Image
		err error
	)
	switch c.container {
	case BMP:
		img, err = bmp.Decode(r)
	default:
		img, err = png.Decode(r)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrFormat, err)
	}
	return FromImage(img)
}

// ToImage converts g to an image, flipping it top to bottom.
func ToImage(g *core.Grid) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.W, g.H))
	cells := g.Cells()
	for y := 0; y < g.H; y++ {
		row := g.H - 1 - y
		for x := 0; x < g.W; x++ {
			c := cells[g.Index(x, y)]
			if c.IsBackground() {
				img.SetNRGBA(x, row, color.NRGBA{})
				continue
			}
			r, gr, b := c.Bytes()
			img.SetNRGBA(x, row, color.NRGBA{R: r, G: gr, B: b, A: 0xff})
		}
	}
	return img
}

// FromImage converts an image to a grid, undoing the flip applied by
// ToImage. Fully transparent pixels become background; any other pixel is
// treated as opaque.
func FromImage(img image.Image) (*core.Grid, error) {
	b := img.Bounds()
	g, err := core.NewGrid(b.Dx(), b.Dy())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrFormat, err)
	}
	cells := g.Cells()
	for row := 0; row < g.H; row++ {
		y := g.H - 1 - row
		for x := 0; x < g.W; x++ {
			px := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+row)).(color.NRGBA)
			if px.A == 0 {
				cells[g.Index(x, y)] = core.Background
				continue
			}
			cells[g.Index(x, y)] = core.RGB8(px.R, px.G, px.B)
		}
	}
	return g, nil
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}

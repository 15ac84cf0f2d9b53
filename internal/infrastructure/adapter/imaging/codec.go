package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif" // decoder registration
	_ "image/jpeg"
	"image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	errs "github.com/amirhossein-jamali/photo-restoration/internal/domain/error"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/gateway"
)

// DefaultMaxPixels bounds decoded images to keep a single upload from exhausting memory
const DefaultMaxPixels = 64 << 20

// Codec decodes uploads in any registered format and re-encodes them as opaque PNG
type Codec struct {
	maxPixels int
	scaler    draw.Scaler
	encoder   png.Encoder
}

// Option configures a Codec
type Option func(*Codec)

// WithMaxPixels overrides the decoded pixel limit
func WithMaxPixels(n int) Option {
	return func(c *Codec) {
		if n > 0 {
			c.maxPixels = n
		}
	}
}

// NewCodec creates an image codec using Catmull-Rom resampling
func NewCodec(opts ...Option) gateway.ImageCodec {
	c := &Codec{
		maxPixels: DefaultMaxPixels,
		scaler:    draw.CatmullRom,
		encoder:   png.Encoder{CompressionLevel: png.DefaultCompression},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Normalize decodes the bytes and returns them as an RGB PNG
func (c *Codec) Normalize(data []byte) ([]byte, error) {
	img, err := c.decode(data)
	if err != nil {
		return nil, err
	}
	return c.encode(flatten(img))
}

// Fit downscales so the longest side is at most maxDim
func (c *Codec) Fit(data []byte, maxDim int) ([]byte, error) {
	img, err := c.decode(data)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	if maxDim <= 0 || (b.Dx() <= maxDim && b.Dy() <= maxDim) {
		return data, nil
	}
	return c.encode(c.scale(img, maxDim))
}

// Thumbnail returns a PNG bounded by size x size
func (c *Codec) Thumbnail(data []byte, size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: thumbnail size must be positive", errs.ErrInvalidRequest)
	}

	img, err := c.decode(data)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	if b.Dx() <= size && b.Dy() <= size {
		return c.encode(flatten(img))
	}
	return c.encode(c.scale(img, size))
}

func (c *Codec) decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty upload", errs.ErrInvalidImage)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width*cfg.Height > c.maxPixels {
		return nil, fmt.Errorf("%w: unsupported dimensions %dx%d", errs.ErrInvalidImage, cfg.Width, cfg.Height)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidImage, err)
	}
	return img, nil
}

func (c *Codec) encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.encoder.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// scale resizes img so its longest side equals maxDim
func (c *Codec) scale(img image.Image, maxDim int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w >= h {
		h = max(1, h*maxDim/w)
		w = maxDim
	} else {
		w = max(1, w*maxDim/h)
		h = maxDim
	}

	dst := opaqueCanvas(image.Rect(0, 0, w, h))
	c.scaler.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

// flatten composites img over white so transparent pixels become opaque
func flatten(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := opaqueCanvas(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst
}

func opaqueCanvas(r image.Rectangle) *image.RGBA {
	dst := image.NewRGBA(r)
	draw.Draw(dst, r, image.NewUniform(color.White), image.Point{}, draw.Src)
	return dst
}

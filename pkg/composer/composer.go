package composer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/dmitrymomot/qrkit/pkg/logger"
	"github.com/dmitrymomot/qrkit/pkg/palette"
	"github.com/dmitrymomot/qrkit/pkg/qrcode"
	"github.com/dmitrymomot/qrkit/pkg/style"
)

// Rasterizer draws a QR code for data as a transparent p.Size square.
type Rasterizer interface {
	Rasterize(ctx context.Context, data string, p qrcode.Params) (*image.RGBA, error)
}

var _ Rasterizer = (*qrcode.Rasterizer)(nil)

// Encoder writes img to w.
type Encoder func(w io.Writer, img image.Image) error

// Composer renders QR images with a background and captions.
// It is safe for concurrent use.
type Composer struct {
	rasterizer Rasterizer
	defaults   style.Defaults
	fonts      *FontManager
	fontData   []byte
	encode     Encoder
	logger     *slog.Logger
}

// Option configures a Composer.
type Option func(*Composer)

// WithRasterizer replaces the QR rasterizer.
func WithRasterizer(r Rasterizer) Option {
	return func(c *Composer) {
		if r != nil {
			c.rasterizer = r
		}
	}
}

// WithDefaults sets the style defaults overrides are merged over.
func WithDefaults(d style.Defaults) Option {
	return func(c *Composer) {
		c.defaults = d
	}
}

// WithFont sets the TrueType or OpenType font used for captions.
func WithFont(ttf []byte) Option {
	return func(c *Composer) {
		c.fontData = ttf
	}
}

// WithEncoder replaces the PNG encoder.
func WithEncoder(e Encoder) Option {
	return func(c *Composer) {
		if e != nil {
			c.encode = e
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(c *Composer) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Composer. Without options it uses the built-in style
// defaults, the vector QR rasterizer and the Go Medium font.
func New(opts ...Option) (*Composer, error) {
	c := &Composer{
		rasterizer: qrcode.NewRasterizer(),
		defaults:   style.Default(),
		encode:     png.Encode,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}

	var err error
	if len(c.fontData) > 0 {
		c.fonts, err = NewFontManager(c.fontData)
	} else {
		c.fonts, err = defaultFonts()
	}
	if err != nil {
		return nil, err
	}
	c.fontData = nil

	return c, nil
}

// Resolve merges o over the composer's defaults.
func (c *Composer) Resolve(o *style.Overrides) style.Resolved {
	return c.defaults.Resolve(o)
}

// Compose renders data with the given style and caption lines and returns
// the encoded image.
func (c *Composer) Compose(ctx context.Context, data string, o *style.Overrides, lines []string) ([]byte, error) {
	img, err := c.ComposeImage(ctx, data, o, lines)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := c.encode(&buf, img); err != nil {
		return nil, errors.Join(ErrEncode, err)
	}
	return buf.Bytes(), nil
}

// ComposeImage is Compose without the final encoding step.
func (c *Composer) ComposeImage(ctx context.Context, data string, o *style.Overrides, lines []string) (*image.RGBA, error) {
	start := time.Now()
	r := c.Resolve(o)
	g := Layout(r, lines)

	colors, err := parseColors(r)
	if err != nil {
		return nil, err
	}

	qr, err := c.rasterizer.Rasterize(ctx, data, qrcode.Params{
		Size:              r.QRSize,
		Margin:            r.QRMargin,
		DotsType:          r.DotsType,
		CornersSquareType: r.CornersSquareType,
		CornersDotType:    r.CornersDotType,
		DotsStart:         colors.dotsStart,
		DotsEnd:           colors.dotsEnd,
		GradientRotation:  r.DotsGradientRotation,
		Corners:           colors.corners,
	})
	if err != nil {
		return nil, errors.Join(ErrRasterize, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	canvas := image.NewRGBA(image.Rect(0, 0, g.ImageSize, g.ImageSize))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(colors.background), image.Point{}, draw.Src)

	dst := image.Rect(g.QRX, g.QRY, g.QRX+g.QRSize, g.QRY+g.QRSize)
	draw.Draw(canvas, dst, qr, qr.Bounds().Min, draw.Over)

	if g.ShowCaptions {
		if err := c.drawCaptions(canvas, g, colors.text); err != nil {
			return nil, err
		}
	}

	c.logger.DebugContext(ctx, "image composed",
		logger.Component("composer"),
		logger.ImageSize(g.ImageSize),
		logger.DataLength(len(data)),
		logger.Duration(time.Since(start)),
	)
	return canvas, nil
}

func (c *Composer) drawCaptions(dst *image.RGBA, g Geometry, col color.Color) error {
	face, err := c.fonts.Face(float64(g.FontSize))
	if err != nil {
		return err
	}
	defer face.Close()

	ascent := face.Metrics().Ascent
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
	}
	for _, line := range g.Captions {
		width := d.MeasureString(line.Text)
		d.Dot = fixed.Point26_6{
			X: fixed.I(line.CenterX) - width/2,
			Y: fixed.I(line.Top) + ascent,
		}
		d.DrawString(line.Text)
	}
	return nil
}

type styleColors struct {
	background, dotsStart, dotsEnd, corners, text color.RGBA
}

func parseColors(r style.Resolved) (styleColors, error) {
	var (
		sc  styleColors
		err error
	)
	for _, f := range []struct {
		dst *color.RGBA
		hex string
	}{
		{&sc.background, r.ColorBackground},
		{&sc.dotsStart, r.ColorDotsStart},
		{&sc.dotsEnd, r.ColorDotsEnd},
		{&sc.corners, r.ColorCorners},
		{&sc.text, r.ColorText},
	} {
		if *f.dst, err = palette.ParseHex(f.hex); err != nil {
			return styleColors{}, fmt.Errorf("%w: %q", ErrInvalidColor, f.hex)
		}
	}
	return sc, nil
}

var defaultComposer = sync.OnceValues(func() (*Composer, error) {
	return New()
})

// Compose renders with a shared Composer built from the built-in defaults.
func Compose(ctx context.Context, data string, o *style.Overrides, lines []string) ([]byte, error) {
	c, err := defaultComposer()
	if err != nil {
		return nil, err
	}
	return c.Compose(ctx, data, o, lines)
}

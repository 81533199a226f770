package qrcode

import (
	"context"
	"image"
	"image/color"
	"image/draw"

	skipqrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/vector"

	"github.com/dmitrymomot/qrkit/pkg/style"
)

// finderSize is the side of a finder pattern in modules.
const finderSize = 7

// Params describes how a styled QR code is drawn.
type Params struct {
	// Size is the side of the output image in pixels.
	Size int
	// Margin is the padding between the image edge and the modules. It shrinks
	// when the modules would not fit.
	Margin int

	DotsType          style.DotsType
	CornersSquareType style.CornerSquareType
	CornersDotType    style.CornerDotType

	// Regular modules are filled with a linear gradient from DotsStart to DotsEnd.
	DotsStart        color.Color
	DotsEnd          color.Color
	GradientRotation float64

	// Corners fills the three finder patterns.
	Corners color.Color
}

// Rasterizer draws styled QR codes on a transparent background.
type Rasterizer struct {
	level skipqrcode.RecoveryLevel
}

// Option configures a Rasterizer.
type Option func(*Rasterizer)

// WithRecoveryLevel sets the error correction level. The default is
// skipqrcode.High, which restores up to 25% of damaged codewords.
func WithRecoveryLevel(level skipqrcode.RecoveryLevel) Option {
	return func(r *Rasterizer) {
		r.level = level
	}
}

// NewRasterizer creates a Rasterizer with the given options.
func NewRasterizer(opts ...Option) *Rasterizer {
	r := &Rasterizer{level: skipqrcode.High}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// grid is the placement of an n x n module matrix on the output image.
type grid struct {
	n       int
	dot     float32
	originX float32
	originY float32
}

func layout(n, size, margin int) grid {
	area := size - 2*margin
	if area < n {
		margin = max(0, (size-n)/2)
		area = size - 2*margin
	}

	if area >= n {
		d := area / n
		origin := float32((size - n*d) / 2)
		return grid{n: n, dot: float32(d), originX: origin, originY: origin}
	}
	return grid{n: n, dot: float32(size) / float32(n)}
}

// Rasterize encodes data and draws it as a size x size image. Pixels outside
// of modules stay transparent so the result can be placed on any background.
func (r *Rasterizer) Rasterize(ctx context.Context, data string, p Params) (*image.RGBA, error) {
	if p.Size <= 0 {
		return nil, ErrInvalidSize
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matrix, err := Matrix(data, r.level)
	if err != nil {
		return nil, err
	}

	g := layout(len(matrix), p.Size, max(0, p.Margin))
	bounds := image.Rect(0, 0, p.Size, p.Size)
	img := image.NewRGBA(bounds)

	z := vector.NewRasterizer(p.Size, p.Size)
	z.DrawOp = draw.Over

	drawDots(z, matrix, g, p.DotsType)
	span := float64(g.dot) * float64(g.n)
	grad := newLinearGradient(bounds, float64(g.originX), float64(g.originY), span, p.GradientRotation, colorOr(p.DotsStart), colorOr(p.DotsEnd))
	z.Draw(img, bounds, grad, image.Point{})

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	z.Reset(p.Size, p.Size)
	drawFinders(z, g, p.CornersSquareType, p.CornersDotType)
	z.Draw(img, bounds, image.NewUniform(colorOr(p.Corners)), image.Point{})

	return img, nil
}

func drawDots(z *vector.Rasterizer, matrix [][]bool, g grid, t style.DotsType) {
	dark := func(x, y int) bool {
		if x < 0 || y < 0 || x >= g.n || y >= g.n {
			return false
		}
		if inFinder(x, y, g.n) {
			return false
		}
		return matrix[y][x]
	}

	for y := 0; y < g.n; y++ {
		for x := 0; x < g.n; x++ {
			if !dark(x, y) {
				continue
			}
			n := neighbors{
				left:   dark(x-1, y),
				top:    dark(x, y-1),
				right:  dark(x+1, y),
				bottom: dark(x, y+1),
			}
			px := g.originX + float32(x)*g.dot
			py := g.originY + float32(y)*g.dot
			dot(t, px, py, g.dot, n).fill(z)
		}
	}
}

func drawFinders(z *vector.Rasterizer, g grid, ring style.CornerSquareType, center style.CornerDotType) {
	far := g.n - finderSize
	for _, pos := range [][2]int{{0, 0}, {far, 0}, {0, far}} {
		x := g.originX + float32(pos[0])*g.dot
		y := g.originY + float32(pos[1])*g.dot
		for _, p := range finderRing(ring, x, y, g.dot) {
			p.fill(z)
		}
		finderDot(center, x, y, g.dot).fill(z)
	}
}

// inFinder reports whether module (x, y) belongs to one of the three finder patterns.
func inFinder(x, y, n int) bool {
	far := n - finderSize
	return (x < finderSize && y < finderSize) ||
		(x >= far && y < finderSize) ||
		(x < finderSize && y >= far)
}

func colorOr(c color.Color) color.Color {
	if c == nil {
		return color.Black
	}
	return c
}

package qrcode

import (
	"image"
	"image/color"
	"math"
)

// linearGradient is an image whose color runs from one color to another along
// a line. Pixels before the start or past the end take the end colors.
type linearGradient struct {
	bounds         image.Rectangle
	x0, y0, x1, y1 float64
	from, to       color.RGBA64
}

// newLinearGradient spreads from..to over the square (x, y, size) at the given
// rotation in radians. Zero runs left to right, Pi/4 from the top-left corner to
// the bottom-right one.
func newLinearGradient(bounds image.Rectangle, x, y, size, rotation float64, from, to color.Color) *linearGradient {
	rotation = math.Mod(rotation, 2*math.Pi)
	if rotation < 0 {
		rotation += 2 * math.Pi
	}

	half := size / 2
	cx, cy := x+half, y+half
	var x0, y0, x1, y1 float64

	switch {
	case rotation <= 0.25*math.Pi || rotation > 1.75*math.Pi:
		tan := math.Tan(rotation)
		x0, y0 = cx-half, cy-half*tan
		x1, y1 = cx+half, cy+half*tan
	case rotation <= 0.75*math.Pi:
		tan := math.Tan(rotation)
		x0, y0 = cx-half/tan, cy-half
		x1, y1 = cx+half/tan, cy+half
	case rotation <= 1.25*math.Pi:
		tan := math.Tan(rotation)
		x0, y0 = cx+half, cy+half*tan
		x1, y1 = cx-half, cy-half*tan
	default:
		tan := math.Tan(rotation)
		x0, y0 = cx+half/tan, cy+half
		x1, y1 = cx-half/tan, cy-half
	}

	return &linearGradient{
		bounds: bounds,
		x0:     x0, y0: y0, x1: x1, y1: y1,
		from: color.RGBA64Model.Convert(from).(color.RGBA64),
		to:   color.RGBA64Model.Convert(to).(color.RGBA64),
	}
}

func (g *linearGradient) ColorModel() color.Model { return color.RGBA64Model }

func (g *linearGradient) Bounds() image.Rectangle { return g.bounds }

func (g *linearGradient) At(x, y int) color.Color {
	return g.RGBA64At(x, y)
}

func (g *linearGradient) RGBA64At(x, y int) color.RGBA64 {
	dx, dy := g.x1-g.x0, g.y1-g.y0
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return g.from
	}

	px, py := float64(x)+0.5, float64(y)+0.5
	t := ((px-g.x0)*dx + (py-g.y0)*dy) / l2
	t = math.Max(0, math.Min(1, t))

	return color.RGBA64{
		R: lerp(g.from.R, g.to.R, t),
		G: lerp(g.from.G, g.to.G, t),
		B: lerp(g.from.B, g.to.B, t),
		A: lerp(g.from.A, g.to.A, t),
	}
}

func lerp(a, b uint16, t float64) uint16 {
	return uint16(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

package qrcode

import (
	"golang.org/x/image/vector"

	"github.com/dmitrymomot/qrkit/pkg/style"
)

// kappa places cubic control points so four segments approximate a circle.
const kappa = 0.5522847498

type point struct{ x, y float32 }

type segment struct {
	c1, c2, to point
	curve      bool
}

// path is a closed outline. Outlines added to the same vector.Rasterizer
// with opposite winding cancel out, which is how rings get their holes.
type path struct {
	start point
	segs  []segment
}

func (p *path) lineTo(x, y float32) {
	p.segs = append(p.segs, segment{to: point{x, y}})
}

func (p *path) cubeTo(c1, c2, to point) {
	p.segs = append(p.segs, segment{c1: c1, c2: c2, to: to, curve: true})
}

func (p path) reversed() path {
	if len(p.segs) == 0 {
		return p
	}
	r := path{start: p.segs[len(p.segs)-1].to, segs: make([]segment, 0, len(p.segs))}
	for i := len(p.segs) - 1; i >= 0; i-- {
		from := p.start
		if i > 0 {
			from = p.segs[i-1].to
		}
		s := p.segs[i]
		r.segs = append(r.segs, segment{c1: s.c2, c2: s.c1, to: from, curve: s.curve})
	}
	return r
}

func (p path) fill(z *vector.Rasterizer) {
	z.MoveTo(p.start.x, p.start.y)
	for _, s := range p.segs {
		if s.curve {
			z.CubeTo(s.c1.x, s.c1.y, s.c2.x, s.c2.y, s.to.x, s.to.y)
			continue
		}
		z.LineTo(s.to.x, s.to.y)
	}
	z.ClosePath()
}

// corners holds per-corner radii: top-left, top-right, bottom-right, bottom-left.
type corners [4]float32

// roundedRect traces a clockwise rectangle with the given corner radii.
func roundedRect(x, y, w, h float32, r corners) path {
	tl, tr, br, bl := r[0], r[1], r[2], r[3]
	p := path{start: point{x + tl, y}}

	p.lineTo(x+w-tr, y)
	if tr > 0 {
		p.cubeTo(point{x + w - tr + kappa*tr, y}, point{x + w, y + tr - kappa*tr}, point{x + w, y + tr})
	}
	p.lineTo(x+w, y+h-br)
	if br > 0 {
		p.cubeTo(point{x + w, y + h - br + kappa*br}, point{x + w - br + kappa*br, y + h}, point{x + w - br, y + h})
	}
	p.lineTo(x+bl, y+h)
	if bl > 0 {
		p.cubeTo(point{x + bl - kappa*bl, y + h}, point{x, y + h - bl + kappa*bl}, point{x, y + h - bl})
	}
	p.lineTo(x, y+tl)
	if tl > 0 {
		p.cubeTo(point{x, y + tl - kappa*tl}, point{x + tl - kappa*tl, y}, point{x + tl, y})
	}
	return p
}

func square(x, y, size float32) path {
	return roundedRect(x, y, size, size, corners{})
}

func circle(cx, cy, r float32) path {
	return roundedRect(cx-r, cy-r, 2*r, 2*r, corners{r, r, r, r})
}

// neighbors reports which sides of a module touch another dark module.
type neighbors struct {
	left, top, right, bottom bool
}

// freeCorners marks the corners whose two adjacent sides have no neighbor.
func (n neighbors) freeCorners() [4]bool {
	return [4]bool{
		!n.top && !n.left,
		!n.top && !n.right,
		!n.bottom && !n.right,
		!n.bottom && !n.left,
	}
}

// dot returns the outline of one module of the given shape at (x, y).
func dot(t style.DotsType, x, y, size float32, n neighbors) path {
	half := size / 2

	switch t {
	case style.DotsDots:
		return circle(x+half, y+half, half)

	case style.DotsRounded, style.DotsExtraRounded:
		free := n.freeCorners()
		rounded := 0
		for _, f := range free {
			if f {
				rounded++
			}
		}
		radius := half
		if t == style.DotsExtraRounded && rounded == 1 {
			radius = size
		}
		var r corners
		for i, f := range free {
			if f {
				r[i] = radius
			}
		}
		return roundedRect(x, y, size, size, r)

	case style.DotsClassy, style.DotsClassyRounded:
		topLeft := !n.left && !n.top
		bottomRight := !n.right && !n.bottom
		radius := half
		if t == style.DotsClassyRounded && topLeft != bottomRight {
			radius = size
		}
		var r corners
		if topLeft {
			r[0] = radius
		}
		if bottomRight {
			r[2] = radius
		}
		return roundedRect(x, y, size, size, r)

	default:
		return square(x, y, size)
	}
}

// finderRing returns the 7x7 outer square of a finder pattern as an outline
// with its 5x5 hole cut out. d is the module size.
func finderRing(t style.CornerSquareType, x, y, d float32) []path {
	s := 7 * d
	switch t {
	case style.CornerSquareDot:
		c := s / 2
		return []path{
			circle(x+c, y+c, c),
			circle(x+c, y+c, c-d).reversed(),
		}
	case style.CornerSquareExtraRounded:
		outer, inner := 2.5*d, 1.5*d
		return []path{
			roundedRect(x, y, s, s, corners{outer, outer, outer, outer}),
			roundedRect(x+d, y+d, s-2*d, s-2*d, corners{inner, inner, inner, inner}).reversed(),
		}
	default:
		return []path{
			square(x, y, s),
			square(x+d, y+d, s-2*d).reversed(),
		}
	}
}

// finderDot returns the 3x3 center of a finder pattern whose ring starts at (x, y).
func finderDot(t style.CornerDotType, x, y, d float32) path {
	if t == style.CornerDotDot {
		return circle(x+3.5*d, y+3.5*d, 1.5*d)
	}
	return square(x+2*d, y+2*d, 3*d)
}

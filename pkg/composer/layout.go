package composer

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/qrkit/pkg/style"
)

const (
	// maxCaptionRunes is the longest caption drawn as is.
	maxCaptionRunes = 45
	// truncatedRunes is how much of a longer caption is kept before the ellipsis.
	truncatedRunes = 42
	// lineGap is the extra space between caption lines in pixels.
	lineGap = 12
	// captionBottom is the distance from the canvas bottom to the top of the
	// first caption on the design canvas.
	captionBottom = 130
)

// Caption is one line of text and the point its top edge is centered on.
type Caption struct {
	Text    string
	CenterX int
	Top     int
}

// Geometry is the placement of everything drawn on the canvas.
type Geometry struct {
	ImageSize    int
	QRSize       int
	QRX          int
	QRY          int
	ShowCaptions bool
	FontSize     int
	Captions     []Caption
}

// Layout computes the geometry for a resolved style and caption lines.
// The QR code is centered and moved by the style's vertical offset only when
// captions are drawn.
func Layout(r style.Resolved, lines []string) Geometry {
	g := Geometry{
		ImageSize:    r.ImageSize,
		QRSize:       r.QRSize,
		ShowCaptions: r.ShowInfoInImage && len(lines) > 0,
	}

	g.QRX = (r.ImageSize - r.QRSize) / 2
	g.QRY = (r.ImageSize - r.QRSize) / 2
	if !g.ShowCaptions {
		return g
	}
	g.QRY += r.QROffsetY

	g.FontSize = r.Scale(float64(r.FontSize))
	top := r.ImageSize - r.Scale(captionBottom)
	g.Captions = make([]Caption, 0, len(lines))
	for _, line := range lines {
		g.Captions = append(g.Captions, Caption{
			Text:    Truncate(line),
			CenterX: r.ImageSize / 2,
			Top:     top,
		})
		top += g.FontSize + lineGap
	}
	return g
}

// Truncate NFC-normalizes s and shortens it to 42 runes plus an ellipsis when
// it is longer than 45 runes.
func Truncate(s string) string {
	s = norm.NFC.String(s)
	if utf8.RuneCountInString(s) <= maxCaptionRunes {
		return s
	}
	r := []rune(s)
	return string(r[:truncatedRunes]) + "…"
}

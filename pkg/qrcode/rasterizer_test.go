package qrcode_test

import (
	"context"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrkit/pkg/qrcode"
	"github.com/dmitrymomot/qrkit/pkg/style"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
)

func baseParams(size int) qrcode.Params {
	return qrcode.Params{
		Size:              size,
		Margin:            0,
		DotsType:          style.DotsSquare,
		CornersSquareType: style.CornerSquareSquare,
		CornersDotType:    style.CornerDotSquare,
		DotsStart:         red,
		DotsEnd:           blue,
		GradientRotation:  math.Pi / 4,
		Corners:           green,
	}
}

func TestRasterizer_Rasterize(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := qrcode.NewRasterizer()

	t.Run("finder patterns use the corners color", func(t *testing.T) {
		t.Parallel()
		// "hello" is a 21x21 symbol at the default level: 10px per module.
		img, err := r.Rasterize(ctx, "hello", baseParams(210))
		require.NoError(t, err)
		require.Equal(t, 210, img.Bounds().Dx())
		require.Equal(t, 210, img.Bounds().Dy())

		// Outer ring of the top-left finder.
		assert.Equal(t, color.RGBA{G: 255, A: 255}, img.RGBAAt(5, 5))
		// Hole between ring and center.
		assert.Equal(t, uint8(0), img.RGBAAt(15, 15).A)
		// 3x3 center.
		assert.Equal(t, color.RGBA{G: 255, A: 255}, img.RGBAAt(35, 35))
		// Top-right and bottom-left finders.
		assert.Equal(t, color.RGBA{G: 255, A: 255}, img.RGBAAt(205, 5))
		assert.Equal(t, color.RGBA{G: 255, A: 255}, img.RGBAAt(5, 205))
		// No finder at bottom-right: the corner module there belongs to the data area.
		assert.NotEqual(t, color.RGBA{G: 255, A: 255}, img.RGBAAt(205, 205))
	})

	t.Run("separator stays transparent", func(t *testing.T) {
		t.Parallel()
		img, err := r.Rasterize(ctx, "hello", baseParams(210))
		require.NoError(t, err)
		assert.Equal(t, uint8(0), img.RGBAAt(75, 5).A)
		assert.Equal(t, uint8(0), img.RGBAAt(5, 75).A)
	})

	t.Run("margin leaves a transparent frame", func(t *testing.T) {
		t.Parallel()
		p := baseParams(300)
		p.Margin = 30
		img, err := r.Rasterize(ctx, "hello", p)
		require.NoError(t, err)

		// 240px area / 21 modules = 11px; origin = (300 - 231) / 2 = 34.
		for _, pt := range [][2]int{{0, 0}, {33, 33}, {299, 299}, {150, 10}, {10, 150}} {
			assert.Equal(t, uint8(0), img.RGBAAt(pt[0], pt[1]).A, "pixel %v", pt)
		}
		assert.Equal(t, color.RGBA{G: 255, A: 255}, img.RGBAAt(36, 36))
	})

	t.Run("margin shrinks when modules do not fit", func(t *testing.T) {
		t.Parallel()
		p := baseParams(42)
		p.Margin = 100
		img, err := r.Rasterize(ctx, "hello", p)
		require.NoError(t, err)
		// Fallback margin (42-21)/2 = 10 leaves a 22px area: 1px modules from 10.
		assert.Equal(t, uint8(0), img.RGBAAt(9, 9).A)
		assert.Equal(t, color.RGBA{G: 255, A: 255}, img.RGBAAt(10, 10))
	})

	t.Run("gradient runs from top-left to bottom-right", func(t *testing.T) {
		t.Parallel()
		data := strings.Repeat("gradient", 8)
		img, err := r.Rasterize(ctx, data, baseParams(600))
		require.NoError(t, err)

		var first, last color.RGBA
		found := false
		for y := 0; y < 600 && !found; y++ {
			for x := 0; x < 600; x++ {
				c := img.RGBAAt(x, y)
				if c.A == 255 && c.G == 0 {
					first, found = c, true
					break
				}
			}
		}
		require.True(t, found)
		found = false
		for y := 599; y >= 0 && !found; y-- {
			for x := 599; x >= 0; x-- {
				c := img.RGBAAt(x, y)
				if c.A == 255 && c.G == 0 {
					last, found = c, true
					break
				}
			}
		}
		require.True(t, found)
		assert.Greater(t, first.R, first.B)
		assert.Greater(t, last.B, last.R)
	})

	t.Run("every shape combination draws", func(t *testing.T) {
		t.Parallel()
		for _, dots := range style.DotsTypes {
			for _, ring := range style.CornerSquareTypes {
				for _, center := range style.CornerDotTypes {
					p := baseParams(256)
					p.Margin = 8
					p.DotsType = dots
					p.CornersSquareType = ring
					p.CornersDotType = center
					img, err := r.Rasterize(ctx, "https://example.com/"+string(dots), p)
					require.NoError(t, err)

					opaque := 0
					for i := 3; i < len(img.Pix); i += 4 {
						if img.Pix[i] > 0 {
							opaque++
						}
					}
					assert.Positive(t, opaque, "%s/%s/%s", dots, ring, center)
					assert.Equal(t, uint8(0), img.RGBAAt(0, 0).A)
				}
			}
		}
	})

	t.Run("round finder center is hollow at the ring hole", func(t *testing.T) {
		t.Parallel()
		p := baseParams(210)
		p.CornersSquareType = style.CornerSquareDot
		p.CornersDotType = style.CornerDotDot
		img, err := r.Rasterize(ctx, "hello", p)
		require.NoError(t, err)
		// The ring circle leaves the square corner empty.
		assert.Equal(t, uint8(0), img.RGBAAt(1, 1).A)
		assert.Equal(t, uint8(0), img.RGBAAt(15, 35).A)
		assert.Equal(t, color.RGBA{G: 255, A: 255}, img.RGBAAt(35, 35))
		assert.Equal(t, color.RGBA{G: 255, A: 255}, img.RGBAAt(35, 3))
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()

		_, err := r.Rasterize(ctx, "", baseParams(100))
		assert.ErrorIs(t, err, qrcode.ErrEmptyContent)

		_, err = r.Rasterize(ctx, strings.Repeat("a", 4000), baseParams(100))
		assert.ErrorIs(t, err, qrcode.ErrFailedToGenerateQRCode)

		_, err = r.Rasterize(ctx, "x", baseParams(0))
		assert.ErrorIs(t, err, qrcode.ErrInvalidSize)

		canceled, cancel := context.WithCancel(ctx)
		cancel()
		_, err = r.Rasterize(canceled, "x", baseParams(100))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

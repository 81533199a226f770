package qrcode

import (
	"encoding/base64"
	"errors"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

// defaultSize is the size in pixels used when no size is specified
const defaultSize = 256

// Generate creates an unstyled black-on-white QR code PNG with the given content.
func Generate(content string, size int) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = defaultSize
	}
	png, err := skipqrcode.Encode(content, skipqrcode.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerateQRCode, err)
	}
	return png, nil
}

// DataURI wraps PNG bytes into a data URI usable as an <img> source.
func DataURI(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}

// Matrix returns the module grid of content without a quiet zone.
// matrix[y][x] is true for dark modules.
func Matrix(content string, level skipqrcode.RecoveryLevel) ([][]bool, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}
	q, err := skipqrcode.New(content, level)
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerateQRCode, err)
	}
	q.DisableBorder = true
	return q.Bitmap(), nil
}

// Terminal renders content with half-block characters, two modules per line.
// The output keeps a two-module quiet zone. With inverse set, dark modules are
// printed as blanks, which suits light-on-dark terminals.
func Terminal(content string, inverse bool) (string, error) {
	bitmap, err := Matrix(content, skipqrcode.Medium)
	if err != nil {
		return "", err
	}

	const quiet = 2
	n := len(bitmap)
	dark := func(y, x int) bool {
		y -= quiet
		x -= quiet
		if y < 0 || x < 0 || y >= n || x >= len(bitmap[y]) {
			return inverse
		}
		return bitmap[y][x] != inverse
	}

	total := n + 2*quiet
	var b strings.Builder
	for y := 0; y < total; y += 2 {
		for x := 0; x < total; x++ {
			top := dark(y, x)
			bottom := y+1 < total && dark(y+1, x)
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

package composer

import (
	"errors"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/opentype"
)

// FontManager parses a font once and hands out faces at any size.
type FontManager struct {
	parsed *opentype.Font
}

// NewFontManager parses ttf. Empty input selects the embedded Go Medium font.
func NewFontManager(ttf []byte) (*FontManager, error) {
	if len(ttf) == 0 {
		ttf = gomedium.TTF
	}
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, errors.Join(ErrFont, err)
	}
	return &FontManager{parsed: parsed}, nil
}

var defaultFonts = sync.OnceValues(func() (*FontManager, error) {
	return NewFontManager(nil)
})

// Face returns a face at size pixels. Callers close it when done.
func (fm *FontManager) Face(size float64) (font.Face, error) {
	face, err := opentype.NewFace(fm.parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Join(ErrFont, err)
	}
	return face, nil
}

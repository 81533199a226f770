package style

import "math"

const (
	// MinImageSize is the smallest canvas side a style resolves to.
	MinImageSize = 100
	// DesignImageSize is the canvas side all default lengths are drawn for.
	DesignImageSize = 1200
)

// Defaults holds the base values every override is merged over.
type Defaults struct {
	ImageSize            int
	MaxImageSize         int
	QRSize               int
	QROffsetY            int
	QRMargin             int
	ColorBackground      string
	ColorDotsStart       string
	ColorDotsEnd         string
	ColorCorners         string
	ColorText            string
	DotsType             DotsType
	DotsGradientRotation float64
	CornersSquareType    CornerSquareType
	CornersDotType       CornerDotType
	ShowInfoInImage      bool
	FontSize             int
	TextTemplateSSID     string
	TextTemplatePassword string
	OutputDir            string
}

// Default returns the built-in design: a 1200px lavender canvas with an 850px
// blue-to-green rounded QR code and captions underneath.
func Default() Defaults {
	return Defaults{
		ImageSize:            DesignImageSize,
		MaxImageSize:         2400,
		QRSize:               850,
		QROffsetY:            -30,
		QRMargin:             30,
		ColorBackground:      "#E4E4F4",
		ColorDotsStart:       "#2B5A8C",
		ColorDotsEnd:         "#1B6B4A",
		ColorCorners:         "#2B4C7E",
		ColorText:            "#3A3A50",
		DotsType:             DotsRounded,
		DotsGradientRotation: math.Pi / 4,
		CornersSquareType:    CornerSquareExtraRounded,
		CornersDotType:       CornerDotDot,
		ShowInfoInImage:      true,
		FontSize:             32,
		TextTemplateSSID:     "Network: {ssid}",
		TextTemplatePassword: "Password: {password}",
		OutputDir:            ".",
	}
}

// Config is the environment-driven part of the defaults.
type Config struct {
	MaxImageSize    int    `env:"QR_MAX_IMAGE_SIZE" envDefault:"2400"`
	OutputDir       string `env:"QR_OUTPUT_DIR" envDefault:"."`
	ShowInfoInImage bool   `env:"QR_SHOW_INFO_IN_IMAGE" envDefault:"true"`
}

// DefaultsFromConfig applies cfg over Default. Non-positive sizes and empty
// paths are ignored.
func DefaultsFromConfig(cfg Config) Defaults {
	d := Default()
	if cfg.MaxImageSize > 0 {
		d.MaxImageSize = cfg.MaxImageSize
	}
	if cfg.OutputDir != "" {
		d.OutputDir = cfg.OutputDir
	}
	d.ShowInfoInImage = cfg.ShowInfoInImage
	return d
}

package style

import (
	"math"
	"strings"

	"github.com/dmitrymomot/qrkit/pkg/palette"
)

// DotsType is the shape of regular QR modules.
type DotsType string

const (
	DotsSquare        DotsType = "square"
	DotsDots          DotsType = "dots"
	DotsRounded       DotsType = "rounded"
	DotsExtraRounded  DotsType = "extra-rounded"
	DotsClassy        DotsType = "classy"
	DotsClassyRounded DotsType = "classy-rounded"
)

// DotsTypes lists every supported module shape.
var DotsTypes = []DotsType{DotsDots, DotsRounded, DotsExtraRounded, DotsClassy, DotsClassyRounded, DotsSquare}

// Valid reports whether t is a known module shape.
func (t DotsType) Valid() bool {
	for _, v := range DotsTypes {
		if v == t {
			return true
		}
	}
	return false
}

// CornerSquareType is the shape of the outer ring of a finder pattern.
type CornerSquareType string

const (
	CornerSquareSquare       CornerSquareType = "square"
	CornerSquareExtraRounded CornerSquareType = "extra-rounded"
	CornerSquareDot          CornerSquareType = "dot"
)

// CornerSquareTypes lists every supported finder ring shape.
var CornerSquareTypes = []CornerSquareType{CornerSquareSquare, CornerSquareExtraRounded, CornerSquareDot}

func (t CornerSquareType) Valid() bool {
	for _, v := range CornerSquareTypes {
		if v == t {
			return true
		}
	}
	return false
}

// CornerDotType is the shape of the 3x3 center of a finder pattern.
type CornerDotType string

const (
	CornerDotSquare CornerDotType = "square"
	CornerDotDot    CornerDotType = "dot"
)

// CornerDotTypes lists every supported finder center shape.
var CornerDotTypes = []CornerDotType{CornerDotSquare, CornerDotDot}

func (t CornerDotType) Valid() bool {
	for _, v := range CornerDotTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Overrides is a partial style. A nil field means "use the default".
type Overrides struct {
	ColorBackground   *string           `json:"colorBackground,omitempty" yaml:"colorBackground,omitempty"`
	ColorDotsStart    *string           `json:"colorDotsStart,omitempty" yaml:"colorDotsStart,omitempty"`
	ColorDotsEnd      *string           `json:"colorDotsEnd,omitempty" yaml:"colorDotsEnd,omitempty"`
	ColorCorners      *string           `json:"colorCorners,omitempty" yaml:"colorCorners,omitempty"`
	ColorText         *string           `json:"colorText,omitempty" yaml:"colorText,omitempty"`
	DotsType          *DotsType         `json:"dotsType,omitempty" yaml:"dotsType,omitempty"`
	CornersSquareType *CornerSquareType `json:"cornersSquareType,omitempty" yaml:"cornersSquareType,omitempty"`
	CornersDotType    *CornerDotType    `json:"cornersDotType,omitempty" yaml:"cornersDotType,omitempty"`
	ImageSize         *float64          `json:"imageSize,omitempty" yaml:"imageSize,omitempty"`
	QRMargin          *int              `json:"qrMargin,omitempty" yaml:"qrMargin,omitempty"`
	ShowInfoInImage   *bool             `json:"showInfoInImage,omitempty" yaml:"showInfoInImage,omitempty"`
}

// Merge returns a copy of o with every non-nil field of top applied over it.
func (o Overrides) Merge(top *Overrides) Overrides {
	if top == nil {
		return o
	}
	if top.ColorBackground != nil {
		o.ColorBackground = top.ColorBackground
	}
	if top.ColorDotsStart != nil {
		o.ColorDotsStart = top.ColorDotsStart
	}
	if top.ColorDotsEnd != nil {
		o.ColorDotsEnd = top.ColorDotsEnd
	}
	if top.ColorCorners != nil {
		o.ColorCorners = top.ColorCorners
	}
	if top.ColorText != nil {
		o.ColorText = top.ColorText
	}
	if top.DotsType != nil {
		o.DotsType = top.DotsType
	}
	if top.CornersSquareType != nil {
		o.CornersSquareType = top.CornersSquareType
	}
	if top.CornersDotType != nil {
		o.CornersDotType = top.CornersDotType
	}
	if top.ImageSize != nil {
		o.ImageSize = top.ImageSize
	}
	if top.QRMargin != nil {
		o.QRMargin = top.QRMargin
	}
	if top.ShowInfoInImage != nil {
		o.ShowInfoInImage = top.ShowInfoInImage
	}
	return o
}

// FromScheme turns a color scheme into color overrides.
func FromScheme(s palette.Scheme) Overrides {
	return Overrides{
		ColorBackground: &s.Background,
		ColorDotsStart:  &s.DotsStart,
		ColorDotsEnd:    &s.DotsEnd,
		ColorCorners:    &s.Corners,
		ColorText:       &s.Text,
	}
}

// Resolved is a fully populated style. Sizes are in pixels.
type Resolved struct {
	ImageSize            int              `json:"imageSize"`
	QRSize               int              `json:"qrSize"`
	QROffsetY            int              `json:"qrOffsetY"`
	QRMargin             int              `json:"qrMargin"`
	ColorBackground      string           `json:"colorBackground"`
	ColorDotsStart       string           `json:"colorDotsStart"`
	ColorDotsEnd         string           `json:"colorDotsEnd"`
	ColorCorners         string           `json:"colorCorners"`
	ColorText            string           `json:"colorText"`
	DotsType             DotsType         `json:"dotsType"`
	DotsGradientRotation float64          `json:"dotsGradientRotation"`
	CornersSquareType    CornerSquareType `json:"cornersSquareType"`
	CornersDotType       CornerDotType    `json:"cornersDotType"`
	ShowInfoInImage      bool             `json:"showInfoInImage"`
	FontSize             int              `json:"fontSize"`
	TextTemplateSSID     string           `json:"textTemplateSsid"`
	TextTemplatePassword string           `json:"textTemplatePassword"`
}

// SSIDCaption fills the network caption template.
func (r Resolved) SSIDCaption(ssid string) string {
	return strings.Replace(r.TextTemplateSSID, "{ssid}", ssid, 1)
}

// PasswordCaption fills the password caption template.
func (r Resolved) PasswordCaption(password string) string {
	return strings.Replace(r.TextTemplatePassword, "{password}", password, 1)
}

// Scale converts a length designed for the default 1200px canvas to this
// style's canvas.
func (r Resolved) Scale(v float64) int {
	return Round(float64(r.ImageSize) * v / float64(DesignImageSize))
}

// Resolve merges o over the built-in defaults. A nil o yields the defaults.
func Resolve(o *Overrides) Resolved {
	return Default().Resolve(o)
}

// Resolve merges o over d. It never fails: unusable values fall back to d.
func (d Defaults) Resolve(o *Overrides) Resolved {
	if o == nil {
		o = &Overrides{}
	}

	imageSize := d.clampImageSize(o.ImageSize)
	r := Resolved{
		ImageSize:            imageSize,
		QRSize:               Round(float64(imageSize) * float64(d.QRSize) / float64(d.ImageSize)),
		QROffsetY:            Round(float64(imageSize) * float64(d.QROffsetY) / float64(d.ImageSize)),
		QRMargin:             d.QRMargin,
		ColorBackground:      pickColor(o.ColorBackground, d.ColorBackground),
		ColorDotsStart:       pickColor(o.ColorDotsStart, d.ColorDotsStart),
		ColorDotsEnd:         pickColor(o.ColorDotsEnd, d.ColorDotsEnd),
		ColorCorners:         pickColor(o.ColorCorners, d.ColorCorners),
		ColorText:            pickColor(o.ColorText, d.ColorText),
		DotsType:             d.DotsType,
		DotsGradientRotation: d.DotsGradientRotation,
		CornersSquareType:    d.CornersSquareType,
		CornersDotType:       d.CornersDotType,
		ShowInfoInImage:      d.ShowInfoInImage,
		FontSize:             d.FontSize,
		TextTemplateSSID:     d.TextTemplateSSID,
		TextTemplatePassword: d.TextTemplatePassword,
	}

	if o.QRMargin != nil && *o.QRMargin >= 0 {
		r.QRMargin = *o.QRMargin
	}
	if o.DotsType != nil && o.DotsType.Valid() {
		r.DotsType = *o.DotsType
	}
	if o.CornersSquareType != nil && o.CornersSquareType.Valid() {
		r.CornersSquareType = *o.CornersSquareType
	}
	if o.CornersDotType != nil && o.CornersDotType.Valid() {
		r.CornersDotType = *o.CornersDotType
	}
	if o.ShowInfoInImage != nil {
		r.ShowInfoInImage = *o.ShowInfoInImage
	}

	return r
}

func (d Defaults) clampImageSize(req *float64) int {
	size := float64(d.ImageSize)
	// Zero behaves like unset.
	if req != nil && *req != 0 && !math.IsNaN(*req) && !math.IsInf(*req, 0) {
		size = *req
	}
	upper := float64(max(d.MaxImageSize, MinImageSize))
	return Round(math.Min(math.Max(MinImageSize, size), upper))
}

func pickColor(v *string, def string) string {
	if v == nil {
		return def
	}
	s := strings.TrimSpace(*v)
	if !palette.IsHex(s) {
		return def
	}
	return s
}

// Round rounds half-way values towards positive infinity, so -2.5 becomes -2.
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}

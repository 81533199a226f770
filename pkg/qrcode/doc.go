// Package qrcode encodes text into QR symbols and draws them.
//
// Symbol construction (mode selection, Reed-Solomon error correction and
// masking) is delegated to github.com/skip2/go-qrcode. This package adds the
// drawing on top of the module matrix.
//
// # Styled codes
//
// Rasterizer draws a code on a transparent square canvas using
// golang.org/x/image/vector. Regular modules take one of the style.DotsType
// shapes and are filled with a linear gradient. The three finder patterns are
// drawn separately in a solid color with their own ring and center shapes:
//
//	r := qrcode.NewRasterizer()
//	img, err := r.Rasterize(ctx, "WIFI:S:home;T:WPA;P:secret;H:false;;", qrcode.Params{
//		Size:              850,
//		Margin:            30,
//		DotsType:          style.DotsRounded,
//		CornersSquareType: style.CornerSquareExtraRounded,
//		CornersDotType:    style.CornerDotDot,
//		DotsStart:         palette.MustParseHex("#2B5A8C"),
//		DotsEnd:           palette.MustParseHex("#1B6B4A"),
//		GradientRotation:  math.Pi / 4,
//		Corners:           palette.MustParseHex("#2B4C7E"),
//	})
//
// Module size is a whole number of pixels whenever the matrix fits into the
// area left by the margin. The margin shrinks automatically when it does not.
//
// # Plain codes
//
// Generate returns a black-on-white PNG, DataURI embeds PNG bytes into an
// <img> source and Terminal renders a code with Unicode half blocks for
// console previews.
//
// # Errors
//
// ErrEmptyContent is returned for empty input. ErrFailedToGenerateQRCode wraps
// encoder failures such as content that exceeds the largest symbol. Use
// errors.Is for comparisons.
package qrcode

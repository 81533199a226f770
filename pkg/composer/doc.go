// Package composer renders the final QR image: a square canvas filled with
// the style background, the styled QR code centered on it and optional
// caption lines underneath.
//
// A Composer resolves style overrides against its defaults, asks a Rasterizer
// for the QR bitmap, lays out the canvas and encodes it as PNG:
//
//	c, err := composer.New()
//	if err != nil {
//		return err
//	}
//	png, err := c.Compose(ctx, res.Data, &overrides, res.CaptionLines)
//
// Layout exposes the computed geometry without drawing anything. Captions
// longer than 45 characters are shortened to 42 characters and an ellipsis.
//
// Rasterizer failures are returned joined with ErrRasterize, encoder failures
// with ErrEncode.
package composer

// Package style resolves partial style overrides into a complete, bounded
// style for QR image composition.
//
// Overrides uses pointer fields so that "unset" and "zero" are distinct; a
// caption visibility of false is honoured while a missing value falls back to
// the default. Resolution never fails: malformed colors, unknown shapes and
// negative margins are replaced by defaults, and the image size is clamped to
// [MinImageSize, MaxImageSize].
//
// The QR size and its vertical offset are not taken from overrides. They are
// rescaled from the design defaults to the resolved image size so the QR keeps
// the same proportion of the canvas at every resolution.
//
// # Usage
//
//	size := 600.0
//	r := style.Resolve(&style.Overrides{ImageSize: &size})
//	// r.QRSize == 425, r.QROffsetY == -15
//
// Presets can be stored as YAML or JSON and loaded with LoadOverrides.
package style

// Package palette parses hex colors and produces random harmonious color
// schemes for styled QR images.
//
// ParseHex understands the short and long CSS hex forms with optional alpha.
// Random picks a base hue and one of four strategies (analogous,
// complementary, triadic, split-complementary) and derives background, dot
// gradient, corner and text colors from it.
//
//	s := palette.Random(nil)
//	fmt.Println(s.Background, s.DotsStart, s.DotsEnd)
package palette

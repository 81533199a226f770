package palette

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// Strategy is a color-theory rule for deriving related hues from a base hue.
type Strategy string

const (
	Analogous          Strategy = "analogous"
	Complementary      Strategy = "complementary"
	Triadic            Strategy = "triadic"
	SplitComplementary Strategy = "split-complementary"
)

// Strategies lists every supported strategy.
var Strategies = []Strategy{Analogous, Complementary, Triadic, SplitComplementary}

// Scheme is a five-color set matching the style color fields.
type Scheme struct {
	Background string   `json:"colorBackground"`
	DotsStart  string   `json:"colorDotsStart"`
	DotsEnd    string   `json:"colorDotsEnd"`
	Corners    string   `json:"colorCorners"`
	Text       string   `json:"colorText"`
	Strategy   Strategy `json:"strategy"`
}

var (
	rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	mu  sync.Mutex
)

// Random returns a harmonious scheme built from a random base hue.
// A nil r uses the package source.
func Random(r *rand.Rand) Scheme {
	if r == nil {
		mu.Lock()
		defer mu.Unlock()
		r = rnd
	}
	base := r.Float64() * 360
	strategy := Strategies[r.Intn(len(Strategies))]
	return FromHue(r, base, strategy)
}

// FromHue builds a scheme from a fixed base hue and strategy.
// Saturation and lightness are still drawn from r within per-role ranges:
// a pale background, saturated mid-dark dots, darker corners and a muted dark text.
func FromHue(r *rand.Rand, base float64, strategy Strategy) Scheme {
	h1, h2, h3 := hues(r, base, strategy)
	return Scheme{
		Background: HSLToHex(h1, between(r, 30, 50), between(r, 90, 95)),
		DotsStart:  HSLToHex(h1, between(r, 50, 70), between(r, 30, 45)),
		DotsEnd:    HSLToHex(h2, between(r, 50, 70), between(r, 30, 45)),
		Corners:    HSLToHex(h3, between(r, 40, 60), between(r, 25, 40)),
		Text:       HSLToHex(h1, between(r, 15, 25), between(r, 20, 30)),
		Strategy:   strategy,
	}
}

func hues(r *rand.Rand, base float64, strategy Strategy) (float64, float64, float64) {
	switch strategy {
	case Complementary:
		return base, wrapHue(base + 180), wrapHue(base + between(r, 15, 30))
	case Triadic:
		return base, wrapHue(base + 120), wrapHue(base + 240)
	case SplitComplementary:
		return base, wrapHue(base + 150), wrapHue(base + 210)
	default:
		return base, wrapHue(base + between(r, 25, 40)), wrapHue(base - between(r, 25, 40))
	}
}

// between returns a float in [lo, hi).
func between(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

func wrapHue(h float64) float64 {
	return math.Mod(math.Mod(h, 360)+360, 360)
}

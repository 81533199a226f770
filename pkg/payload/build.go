package payload

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/dmitrymomot/qrkit/pkg/style"
)

// Result is everything a caller needs to render and save a QR code.
type Result struct {
	Data         string   `json:"data"`
	CaptionLines []string `json:"captionLines"`
	Filename     string   `json:"filename"`
}

const textFilenameRunes = 30

// Build encodes p and derives its caption lines and a file-safe name.
// It has no failure path; a nil payload is treated as empty text.
func Build(p Payload) Result {
	if p == nil {
		p = Text{}
	}
	return Result{
		Data:         p.Encode(),
		CaptionLines: Captions(p),
		Filename:     Filename(p),
	}
}

// BuildType is Build for callers that carry the content type separately.
// The payload's own type takes precedence over t when they disagree.
func BuildType(t Type, p Payload) Result {
	if p == nil {
		p = zeroPayload(t)
	}
	return Build(p)
}

func zeroPayload(t Type) Payload {
	switch t {
	case TypeWifi:
		return Wifi{}
	case TypeURL:
		return URL{}
	case TypeVCard:
		return VCard{}
	case TypeEmail:
		return Email{}
	case TypeSMS:
		return SMS{}
	case TypeTel:
		return Tel{}
	case TypeGeo:
		return Geo{}
	default:
		return Text{}
	}
}

// Captions returns the lines printed under the QR code.
func Captions(p Payload) []string {
	switch v := p.(type) {
	case Wifi:
		r := style.Resolve(nil)
		lines := []string{r.SSIDCaption(v.SSID)}
		if v.Password != "" {
			lines = append(lines, r.PasswordCaption(v.Password))
		}
		return lines
	case URL:
		return []string{v.URL}
	case Text:
		if line := firstNonEmptyLine(v.Text); line != "" {
			return []string{line}
		}
		return []string{}
	case VCard:
		return []string{v.DisplayName()}
	case Email:
		return []string{v.Email}
	case SMS:
		return []string{v.Phone}
	case Tel:
		return []string{v.Phone}
	case Geo:
		return []string{FormatNumber(v.Lat) + ", " + FormatNumber(v.Lng)}
	default:
		return []string{}
	}
}

// Filename returns a name safe to use as a file stem. It is never empty.
func Filename(p Payload) string {
	switch v := p.(type) {
	case Wifi:
		return SanitizeFilename(v.SSID, "", "wifi")
	case URL:
		return SanitizeFilename(hostname(v.URL), "", "url")
	case Text:
		line := firstLine(strings.TrimSpace(v.Text))
		if r := []rune(line); len(r) > textFilenameRunes {
			line = string(r[:textFilenameRunes])
		}
		return SanitizeFilename(line, "", "text")
	case VCard:
		return SanitizeFilename(v.DisplayName(), "", "vcard")
	case Email:
		return SanitizeFilename(strings.TrimSpace(v.Email), ".@+", "email")
	case SMS:
		return phoneFilename("sms", v.Phone)
	case Tel:
		return phoneFilename("tel", v.Phone)
	case Geo:
		return SanitizeFilename("geo_"+FormatNumber(v.Lat)+"_"+FormatNumber(v.Lng), ".", "geo")
	default:
		return "text"
	}
}

// SanitizeFilename replaces every character outside [A-Za-z0-9_-] and extra
// with '_'. It returns fallback when s is empty. Applying it twice is the
// same as applying it once.
func SanitizeFilename(s, extra, fallback string) string {
	if s == "" {
		return fallback
	}
	return strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (isAlnum(byte(r)) || r == '_' || r == '-' || strings.ContainsRune(extra, r)) {
			return r
		}
		return '_'
	}, s)
}

func phoneFilename(prefix, phone string) string {
	digits := strings.Map(func(r rune) rune {
		if '0' <= r && r <= '9' {
			return r
		}
		return -1
	}, phone)
	if digits == "" {
		return prefix
	}
	if len(digits) > 8 {
		digits = digits[len(digits)-8:]
	}
	return prefix + "_" + digits
}

func hostname(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimSuffix(line, "\r")
}

func firstNonEmptyLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}

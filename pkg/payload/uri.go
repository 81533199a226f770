package payload

import (
	"math"
	"strconv"
	"strings"
)

// Email is a mailto: link with optional subject and body.
type Email struct {
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body,omitempty"`
}

func (Email) Type() Type { return TypeEmail }
func (Email) sealed()    {}

// Encode renders mailto:<address>[?subject=..][&body=..] with form encoding.
func (e Email) Encode() string {
	var params []string
	if s := strings.TrimSpace(e.Subject); s != "" {
		params = append(params, "subject="+formEscape(s))
	}
	if s := strings.TrimSpace(e.Body); s != "" {
		params = append(params, "body="+formEscape(s))
	}
	uri := "mailto:" + strings.TrimSpace(e.Email)
	if len(params) > 0 {
		uri += "?" + strings.Join(params, "&")
	}
	return uri
}

// SMS is an sms: link with an optional prefilled message.
type SMS struct {
	Phone string `json:"phone"`
	Body  string `json:"body,omitempty"`
}

func (SMS) Type() Type { return TypeSMS }
func (SMS) sealed()    {}

func (s SMS) Encode() string {
	uri := "sms:" + stripSpace(s.Phone)
	if body := strings.TrimSpace(s.Body); body != "" {
		uri += "?body=" + componentEscape(body)
	}
	return uri
}

// Tel is a tel: link.
type Tel struct {
	Phone string `json:"phone"`
}

func (Tel) Type() Type       { return TypeTel }
func (Tel) sealed()          {}
func (t Tel) Encode() string { return "tel:" + stripSpace(t.Phone) }

// Geo is a point on the map.
type Geo struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (Geo) Type() Type { return TypeGeo }
func (Geo) sealed()    {}

func (g Geo) Encode() string {
	return "geo:" + FormatNumber(g.Lat) + "," + FormatNumber(g.Lng)
}

// FormatNumber renders f the way browsers print numbers: the shortest decimal
// that round-trips, switching to exponent form below 1e-6 and from 1e21 up.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		// Covers negative zero.
		return "0"
	}

	if abs := math.Abs(f); abs >= 1e21 || abs < 1e-6 {
		mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mant + "e" + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

const upperhex = "0123456789ABCDEF"

// formEscape encodes s as application/x-www-form-urlencoded: spaces become
// '+', and only ASCII alphanumerics and "*-._" are left as is.
func formEscape(s string) string {
	return escape(s, true, func(c byte) bool {
		return isAlnum(c) || strings.IndexByte("*-._", c) >= 0
	})
}

// componentEscape percent-encodes s leaving ASCII alphanumerics and
// "-_.!~*'()" untouched.
func componentEscape(s string) string {
	return escape(s, false, func(c byte) bool {
		return isAlnum(c) || strings.IndexByte("-_.!~*'()", c) >= 0
	})
}

func escape(s string, spacePlus bool, keep func(byte) bool) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case keep(c):
			b.WriteByte(c)
		case c == ' ' && spacePlus:
			b.WriteByte('+')
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&15])
		}
	}
	return b.String()
}

func isAlnum(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

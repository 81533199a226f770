package payload

import (
	"math"
	"strconv"
	"strings"
)

// Type identifies the kind of content encoded in a QR code.
type Type string

const (
	TypeWifi  Type = "wifi"
	TypeURL   Type = "url"
	TypeText  Type = "text"
	TypeVCard Type = "vcard"
	TypeEmail Type = "email"
	TypeSMS   Type = "sms"
	TypeTel   Type = "tel"
	TypeGeo   Type = "geo"
)

// Types lists every content type in canonical order.
var Types = []Type{TypeWifi, TypeURL, TypeText, TypeVCard, TypeEmail, TypeSMS, TypeTel, TypeGeo}

// Labels are the display names of content types.
var Labels = map[Type]string{
	TypeEmail: "Email",
	TypeGeo:   "Location",
	TypeSMS:   "SMS",
	TypeTel:   "Phone",
	TypeText:  "Text",
	TypeURL:   "URL",
	TypeVCard: "Contact (vCard)",
	TypeWifi:  "Wi\u2011Fi",
}

// Choice is a selectable content type with its label.
type Choice struct {
	Value Type   `json:"value"`
	Label string `json:"label"`
}

// Choices returns content types in menu order.
func Choices() []Choice {
	order := []Type{TypeEmail, TypeGeo, TypeSMS, TypeTel, TypeText, TypeURL, TypeVCard, TypeWifi}
	out := make([]Choice, 0, len(order))
	for _, t := range order {
		out = append(out, Choice{Value: t, Label: Labels[t]})
	}
	return out
}

// Valid reports whether t is a known content type.
func (t Type) Valid() bool {
	for _, v := range Types {
		if v == t {
			return true
		}
	}
	return false
}

func (t Type) String() string { return string(t) }

// ParseType maps free-form input to a content type. Matching is
// case-insensitive; anything unknown, including the empty string, is wifi.
func ParseType(s string) Type {
	t := Type(strings.ToLower(s))
	if t.Valid() {
		return t
	}
	return TypeWifi
}

// ParseNum converts s to a finite float. Blank, malformed and non-finite
// input all yield 0.
func ParseNum(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Payload is typed QR content. The set of implementations is closed.
type Payload interface {
	Type() Type
	// Encode returns the exact string to embed in the QR code.
	Encode() string
	sealed()
}

// URL is a link.
type URL struct {
	URL string `json:"url"`
}

func (URL) Type() Type       { return TypeURL }
func (p URL) Encode() string { return strings.TrimSpace(p.URL) }
func (URL) sealed()          {}

// Text is free-form text.
type Text struct {
	Text string `json:"text"`
}

func (Text) Type() Type       { return TypeText }
func (p Text) Encode() string { return strings.TrimSpace(p.Text) }
func (Text) sealed()          {}

package api

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrymomot/qrkit/pkg/payload"
	"github.com/dmitrymomot/qrkit/pkg/style"
)

// GenerateRequest is the body of the generate and save endpoints. Field
// names follow the web form; only the fields of the selected type are read.
type GenerateRequest struct {
	Type string `json:"type"`

	SSID       string `json:"ssid"`
	Password   string `json:"password"`
	Encryption string `json:"encryption"`
	IsHidden   bool   `json:"isHidden"`

	URL  string `json:"url"`
	Text string `json:"text"`

	VCardName     string `json:"vcardName"`
	VCardPhone    string `json:"vcardPhone"`
	VCardEmail    string `json:"vcardEmail"`
	VCardOrg      string `json:"vcardOrg"`
	VCardURL      string `json:"vcardUrl"`
	VCardNote     string `json:"vcardNote"`
	VCardTitle    string `json:"vcardTitle"`
	VCardRole     string `json:"vcardRole"`
	VCardBirthday string `json:"vcardBirthday"`
	VCardStreet   string `json:"vcardStreet"`
	VCardCity     string `json:"vcardCity"`
	VCardZip      string `json:"vcardZip"`
	VCardCountry  string `json:"vcardCountry"`

	Email        string `json:"email"`
	EmailSubject string `json:"emailSubject"`
	EmailBody    string `json:"emailBody"`

	SMSPhone string `json:"smsPhone"`
	SMSBody  string `json:"smsBody"`
	TelPhone string `json:"telPhone"`

	GeoLat flexNumber `json:"geoLat"`
	GeoLng flexNumber `json:"geoLng"`

	Style *StyleRequest `json:"style,omitempty"`
}

// Payload converts the request into the payload of its type. Unknown types
// are treated as wifi.
func (r GenerateRequest) Payload() payload.Payload {
	switch payload.ParseType(r.Type) {
	case payload.TypeURL:
		return payload.URL{URL: r.URL}
	case payload.TypeText:
		return payload.Text{Text: r.Text}
	case payload.TypeVCard:
		return payload.VCard{
			Name:     r.VCardName,
			Phone:    r.VCardPhone,
			Email:    r.VCardEmail,
			Org:      r.VCardOrg,
			URL:      r.VCardURL,
			Note:     r.VCardNote,
			Title:    r.VCardTitle,
			Role:     r.VCardRole,
			Birthday: r.VCardBirthday,
			Street:   r.VCardStreet,
			City:     r.VCardCity,
			Zip:      r.VCardZip,
			Country:  r.VCardCountry,
		}
	case payload.TypeEmail:
		return payload.Email{Email: r.Email, Subject: r.EmailSubject, Body: r.EmailBody}
	case payload.TypeSMS:
		return payload.SMS{Phone: r.SMSPhone, Body: r.SMSBody}
	case payload.TypeTel:
		return payload.Tel{Phone: r.TelPhone}
	case payload.TypeGeo:
		return payload.Geo{Lat: float64(r.GeoLat), Lng: float64(r.GeoLng)}
	default:
		return payload.Wifi{
			SSID:       r.SSID,
			Password:   r.Password,
			Encryption: payload.Encryption(r.Encryption),
			Hidden:     r.IsHidden,
		}
	}
}

// StyleRequest is the style part of a request. ImageSize and QRMargin accept
// numbers or numeric strings; anything else leaves the default in place.
type StyleRequest struct {
	style.Overrides
	ImageSize json.RawMessage `json:"imageSize,omitempty"`
	QRMargin  json.RawMessage `json:"qrMargin,omitempty"`
}

// Parsed returns the style overrides. A nil receiver yields nil.
func (s *StyleRequest) Parsed() *style.Overrides {
	if s == nil {
		return nil
	}
	o := s.Overrides
	if f, ok := looseNumber(s.ImageSize); ok {
		o.ImageSize = &f
	}
	if f, ok := looseNumber(s.QRMargin); ok {
		m := style.Round(f)
		o.QRMargin = &m
	}
	return &o
}

func looseNumber(raw json.RawMessage) (float64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false
	}
	s := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		s = strings.TrimSpace(s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// flexNumber accepts a JSON number or a numeric string. Anything else,
// including null and malformed strings, decodes to 0.
type flexNumber float64

func (n *flexNumber) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = flexNumber(payload.ParseNum(s))
		return nil
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		f = 0
	}
	*n = flexNumber(f)
	return nil
}

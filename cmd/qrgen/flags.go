package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrymomot/qrkit/pkg/payload"
	"github.com/dmitrymomot/qrkit/pkg/style"
)

type options struct {
	contentType string

	ssid, password, encryption string
	hidden                     bool

	url, text string

	vcardName, vcardPhone, vcardEmail, vcardOrg, vcardURL, vcardNote     string
	vcardTitle, vcardRole, vcardBirthday, vcardStreet, vcardCity, vcardZip string
	vcardCountry                                                          string

	email, emailSubject, emailBody string
	smsPhone, smsBody, telPhone    string
	geoLat, geoLng                 string

	preset       string
	randomColors bool
	imageSize    float64
	margin       int
	background   string
	dotsStart    string
	dotsEnd      string
	corners      string
	textColor    string
	dotsType     string
	cornerSquare string
	cornerDot    string
	noCaption    bool

	out       string
	name      string
	preview   bool
	printData bool
	plain     bool
	verbose   bool

	// set holds the names of flags given on the command line.
	set map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	o := &options{}
	fs := flag.NewFlagSet("qrgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	types := make([]string, 0, len(payload.Types))
	for _, t := range payload.Types {
		types = append(types, string(t))
	}
	fs.StringVar(&o.contentType, "type", "wifi", "content type: "+strings.Join(types, ", "))

	fs.StringVar(&o.ssid, "ssid", "", "wifi: network name")
	fs.StringVar(&o.password, "password", "", "wifi: password")
	fs.StringVar(&o.encryption, "encryption", "WPA", "wifi: WPA, WEP or nopass")
	fs.BoolVar(&o.hidden, "hidden", false, "wifi: hidden network")

	fs.StringVar(&o.url, "url", "", "url: link")
	fs.StringVar(&o.text, "text", "", "text: free text")

	fs.StringVar(&o.vcardName, "vcard-name", "", "vcard: full name")
	fs.StringVar(&o.vcardPhone, "vcard-phone", "", "vcard: phone")
	fs.StringVar(&o.vcardEmail, "vcard-email", "", "vcard: email")
	fs.StringVar(&o.vcardOrg, "vcard-org", "", "vcard: organization")
	fs.StringVar(&o.vcardURL, "vcard-url", "", "vcard: website")
	fs.StringVar(&o.vcardNote, "vcard-note", "", "vcard: note")
	fs.StringVar(&o.vcardTitle, "vcard-title", "", "vcard: job title")
	fs.StringVar(&o.vcardRole, "vcard-role", "", "vcard: role")
	fs.StringVar(&o.vcardBirthday, "vcard-birthday", "", "vcard: birthday (YYYY-MM-DD)")
	fs.StringVar(&o.vcardStreet, "vcard-street", "", "vcard: street")
	fs.StringVar(&o.vcardCity, "vcard-city", "", "vcard: city")
	fs.StringVar(&o.vcardZip, "vcard-zip", "", "vcard: postal code")
	fs.StringVar(&o.vcardCountry, "vcard-country", "", "vcard: country")

	fs.StringVar(&o.email, "email", "", "email: address")
	fs.StringVar(&o.emailSubject, "email-subject", "", "email: subject")
	fs.StringVar(&o.emailBody, "email-body", "", "email: body")
	fs.StringVar(&o.smsPhone, "sms-phone", "", "sms: phone")
	fs.StringVar(&o.smsBody, "sms-body", "", "sms: message")
	fs.StringVar(&o.telPhone, "tel-phone", "", "tel: phone")
	fs.StringVar(&o.geoLat, "geo-lat", "", "geo: latitude")
	fs.StringVar(&o.geoLng, "geo-lng", "", "geo: longitude")

	fs.StringVar(&o.preset, "style", "", "style preset file (YAML or JSON)")
	fs.BoolVar(&o.randomColors, "random-colors", false, "use a random harmonious color scheme")
	fs.Float64Var(&o.imageSize, "image-size", 0, "canvas size in pixels")
	fs.IntVar(&o.margin, "margin", 0, "QR margin in pixels")
	fs.StringVar(&o.background, "bg", "", "background color")
	fs.StringVar(&o.dotsStart, "dots-start", "", "dots gradient start color")
	fs.StringVar(&o.dotsEnd, "dots-end", "", "dots gradient end color")
	fs.StringVar(&o.corners, "corners", "", "finder pattern color")
	fs.StringVar(&o.textColor, "text-color", "", "caption color")
	fs.StringVar(&o.dotsType, "dots-type", "", "dot shape")
	fs.StringVar(&o.cornerSquare, "corner-square", "", "finder ring shape")
	fs.StringVar(&o.cornerDot, "corner-dot", "", "finder center shape")
	fs.BoolVar(&o.noCaption, "no-caption", false, "do not print captions under the code")

	fs.StringVar(&o.out, "out", "", "output directory (default QR_OUTPUT_DIR)")
	fs.StringVar(&o.name, "name", "", "file name without extension (default derived from content)")
	fs.BoolVar(&o.preview, "preview", false, "print the QR code to the terminal")
	fs.BoolVar(&o.printData, "print-data", false, "print the encoded QR data")
	fs.BoolVar(&o.plain, "plain", false, "write a plain black and white PNG")
	fs.BoolVar(&o.verbose, "v", false, "verbose logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	o.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

func (o *options) payload() payload.Payload {
	switch payload.ParseType(o.contentType) {
	case payload.TypeURL:
		return payload.URL{URL: o.url}
	case payload.TypeText:
		return payload.Text{Text: o.text}
	case payload.TypeVCard:
		return payload.VCard{
			Name:     o.vcardName,
			Phone:    o.vcardPhone,
			Email:    o.vcardEmail,
			Org:      o.vcardOrg,
			URL:      o.vcardURL,
			Note:     o.vcardNote,
			Title:    o.vcardTitle,
			Role:     o.vcardRole,
			Birthday: o.vcardBirthday,
			Street:   o.vcardStreet,
			City:     o.vcardCity,
			Zip:      o.vcardZip,
			Country:  o.vcardCountry,
		}
	case payload.TypeEmail:
		return payload.Email{Email: o.email, Subject: o.emailSubject, Body: o.emailBody}
	case payload.TypeSMS:
		return payload.SMS{Phone: o.smsPhone, Body: o.smsBody}
	case payload.TypeTel:
		return payload.Tel{Phone: o.telPhone}
	case payload.TypeGeo:
		return payload.Geo{Lat: payload.ParseNum(o.geoLat), Lng: payload.ParseNum(o.geoLng)}
	default:
		return payload.Wifi{
			SSID:       o.ssid,
			Password:   o.password,
			Encryption: payload.Encryption(o.encryption),
			Hidden:     o.hidden,
		}
	}
}

// flagOverrides returns the style fields set explicitly on the command line.
func (o *options) flagOverrides() style.Overrides {
	var s style.Overrides
	str := func(name, v string) *string {
		if o.set[name] {
			return &v
		}
		return nil
	}
	s.ColorBackground = str("bg", o.background)
	s.ColorDotsStart = str("dots-start", o.dotsStart)
	s.ColorDotsEnd = str("dots-end", o.dotsEnd)
	s.ColorCorners = str("corners", o.corners)
	s.ColorText = str("text-color", o.textColor)
	if o.set["image-size"] {
		s.ImageSize = &o.imageSize
	}
	if o.set["margin"] {
		s.QRMargin = &o.margin
	}
	if o.set["dots-type"] {
		t := style.DotsType(o.dotsType)
		s.DotsType = &t
	}
	if o.set["corner-square"] {
		t := style.CornerSquareType(o.cornerSquare)
		s.CornersSquareType = &t
	}
	if o.set["corner-dot"] {
		t := style.CornerDotType(o.cornerDot)
		s.CornersDotType = &t
	}
	if o.set["no-caption"] {
		show := !o.noCaption
		s.ShowInfoInImage = &show
	}
	return s
}

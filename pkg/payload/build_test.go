package payload_test

import (
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrkit/pkg/payload"
	"github.com/dmitrymomot/qrkit/pkg/validator"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       payload.Payload
		data     string
		captions []string
		filename string
	}{
		{
			name:     "wifi with password",
			in:       payload.Wifi{SSID: "My Home;Net", Password: "pa:ss", Encryption: payload.EncryptionWPA},
			data:     `WIFI:S:My Home\;Net;T:WPA;P:pa\:ss;H:false;;`,
			captions: []string{"Network: My Home;Net", "Password: pa:ss"},
			filename: "My_Home_Net",
		},
		{
			name:     "wifi without password",
			in:       payload.Wifi{SSID: "cafe", Encryption: payload.EncryptionNoPass},
			data:     "WIFI:S:cafe;T:nopass;H:false;;",
			captions: []string{"Network: cafe"},
			filename: "cafe",
		},
		{
			name:     "url",
			in:       payload.URL{URL: "https://Example.com/path?q=1"},
			data:     "https://Example.com/path?q=1",
			captions: []string{"https://Example.com/path?q=1"},
			filename: "example_com",
		},
		{
			name:     "url without host",
			in:       payload.URL{URL: "example.com/page"},
			data:     "example.com/page",
			captions: []string{"example.com/page"},
			filename: "url",
		},
		{
			name:     "text uses first non-empty line",
			in:       payload.Text{Text: "\n\n  Hello world  \nsecond line"},
			data:     "Hello world  \nsecond line",
			captions: []string{"Hello world"},
			filename: "Hello_world__",
		},
		{
			name:     "long text is cut for the filename",
			in:       payload.Text{Text: "abcdefghijklmnopqrstuvwxyz0123456789ABCD"},
			data:     "abcdefghijklmnopqrstuvwxyz0123456789ABCD",
			captions: []string{"abcdefghijklmnopqrstuvwxyz0123456789ABCD"},
			filename: "abcdefghijklmnopqrstuvwxyz0123",
		},
		{
			name:     "non-ascii text",
			in:       payload.Text{Text: "Привет мир"},
			data:     "Привет мир",
			captions: []string{"Привет мир"},
			filename: "__________",
		},
		{
			name:     "vcard",
			in:       payload.VCard{Name: "Jane Doe", Phone: "1"},
			data:     "BEGIN:VCARD\r\nVERSION:3.0\r\nFN:Jane Doe\r\nTEL:1\r\nEND:VCARD",
			captions: []string{"Jane Doe"},
			filename: "Jane_Doe",
		},
		{
			name:     "vcard without name",
			in:       payload.VCard{Phone: "1"},
			data:     "BEGIN:VCARD\r\nVERSION:3.0\r\nFN:Contact\r\nTEL:1\r\nEND:VCARD",
			captions: []string{"Contact"},
			filename: "Contact",
		},
		{
			name:     "email",
			in:       payload.Email{Email: "john.doe+tag@example.com", Subject: "Hi there"},
			data:     "mailto:john.doe+tag@example.com?subject=Hi+there",
			captions: []string{"john.doe+tag@example.com"},
			filename: "john.doe+tag@example.com",
		},
		{
			name:     "sms",
			in:       payload.SMS{Phone: "+1 (555) 010-0199", Body: "hi"},
			data:     "sms:+1(555)010-0199?body=hi",
			captions: []string{"+1 (555) 010-0199"},
			filename: "sms_50100199",
		},
		{
			name:     "tel with short number",
			in:       payload.Tel{Phone: "123"},
			data:     "tel:123",
			captions: []string{"123"},
			filename: "tel_123",
		},
		{
			name:     "tel without digits",
			in:       payload.Tel{Phone: "abc"},
			data:     "tel:abc",
			captions: []string{"abc"},
			filename: "tel",
		},
		{
			name:     "geo",
			in:       payload.Geo{Lat: 52.52, Lng: 13.4},
			data:     "geo:52.52,13.4",
			captions: []string{"52.52, 13.4"},
			filename: "geo_52.52_13.4",
		},
		{
			name:     "geo negative",
			in:       payload.Geo{Lat: -33.8688, Lng: 151.2093},
			data:     "geo:-33.8688,151.2093",
			captions: []string{"-33.8688, 151.2093"},
			filename: "geo_-33.8688_151.2093",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := payload.Build(tt.in)
			assert.Equal(t, tt.data, res.Data)
			assert.Equal(t, tt.captions, res.CaptionLines)
			assert.Equal(t, tt.filename, res.Filename)
		})
	}
}

func TestBuild_Degenerate(t *testing.T) {
	t.Parallel()

	t.Run("empty text", func(t *testing.T) {
		t.Parallel()
		res := payload.Build(payload.Text{})
		assert.Equal(t, "", res.Data)
		assert.Empty(t, res.CaptionLines)
		assert.Equal(t, "text", res.Filename)
	})

	t.Run("nil payload", func(t *testing.T) {
		t.Parallel()
		res := payload.Build(nil)
		assert.Equal(t, "", res.Data)
		assert.Equal(t, "text", res.Filename)
	})

	t.Run("empty fields fall back to type names", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "wifi", payload.Build(payload.Wifi{}).Filename)
		assert.Equal(t, "url", payload.Build(payload.URL{}).Filename)
		assert.Equal(t, "email", payload.Build(payload.Email{}).Filename)
		assert.Equal(t, "sms", payload.Build(payload.SMS{}).Filename)
		assert.Equal(t, "geo_0_0", payload.Build(payload.Geo{}).Filename)
	})

	t.Run("build type with nil payload uses the tag", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "geo:0,0", payload.BuildType(payload.TypeGeo, nil).Data)
		assert.Equal(t, "tel:", payload.BuildType(payload.TypeTel, nil).Data)
	})

	t.Run("payload type wins over the tag", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "hi", payload.BuildType(payload.TypeURL, payload.Text{Text: "hi"}).Data)
	})
}

func TestFilename_Properties(t *testing.T) {
	t.Parallel()

	strict := regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	patterns := map[payload.Type]*regexp.Regexp{
		payload.TypeEmail: regexp.MustCompile(`^[A-Za-z0-9_.@+-]+$`),
		payload.TypeGeo:   regexp.MustCompile(`^[A-Za-z0-9_.-]+$`),
	}

	inputs := []payload.Payload{
		payload.Wifi{SSID: "Ünïcødé / Wi-Fi ☕"},
		payload.Wifi{},
		payload.URL{URL: "https://sub.example.co.uk:8443/x"},
		payload.URL{URL: "::not a url::"},
		payload.Text{Text: "line one\r\nline two"},
		payload.Text{Text: "   "},
		payload.VCard{Name: "O'Brien, Pat"},
		payload.Email{Email: "a b<c>@d.e"},
		payload.Email{},
		payload.SMS{Phone: "+44 20 7946 0958"},
		payload.Tel{Phone: "(0)"},
		payload.Geo{Lat: 1e-7, Lng: -0.5},
		payload.Geo{Lat: math.NaN(), Lng: math.Inf(1)},
	}

	for _, in := range inputs {
		name := payload.Build(in).Filename
		require.NotEmpty(t, name)

		re, ok := patterns[in.Type()]
		if !ok {
			re = strict
		}
		assert.Regexp(t, re, name, "%T %+v", in, in)

		extra := map[payload.Type]string{payload.TypeEmail: ".@+", payload.TypeGeo: "."}[in.Type()]
		assert.Equal(t, name, payload.SanitizeFilename(name, extra, "x"), "sanitizing must be idempotent")
	}
}

func TestParseType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, payload.TypeURL, payload.ParseType("URL"))
	assert.Equal(t, payload.TypeVCard, payload.ParseType("vCard"))
	assert.Equal(t, payload.TypeWifi, payload.ParseType(""))
	assert.Equal(t, payload.TypeWifi, payload.ParseType("bogus"))
	assert.Equal(t, payload.TypeWifi, payload.ParseType(" geo"))
	for _, tp := range payload.Types {
		assert.Equal(t, tp, payload.ParseType(tp.String()))
	}
}

func TestParseNum(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 52.52, payload.ParseNum("52.52"))
	assert.Equal(t, 13.4, payload.ParseNum(" 13.4 "))
	assert.Equal(t, -0.5, payload.ParseNum("-0.5"))
	assert.Equal(t, 1000.0, payload.ParseNum("1e3"))
	for _, bad := range []string{"", "abc", "Infinity", "NaN", "inf", "1e400", "1,5"} {
		assert.Equal(t, 0.0, payload.ParseNum(bad), bad)
	}
}

func TestChoices(t *testing.T) {
	t.Parallel()

	choices := payload.Choices()
	require.Len(t, choices, len(payload.Types))

	var order []payload.Type
	for _, c := range choices {
		order = append(order, c.Value)
		assert.Equal(t, payload.Labels[c.Value], c.Label)
	}
	assert.Equal(t, []payload.Type{
		payload.TypeEmail, payload.TypeGeo, payload.TypeSMS, payload.TypeTel,
		payload.TypeText, payload.TypeURL, payload.TypeVCard, payload.TypeWifi,
	}, order)
	assert.Equal(t, "Wi\u2011Fi", payload.Labels[payload.TypeWifi])
	assert.Equal(t, "Contact (vCard)", payload.Labels[payload.TypeVCard])
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		in     payload.Payload
		fields []string
	}{
		{"wifi ok", payload.Wifi{SSID: "x", Password: "p", Encryption: payload.EncryptionWPA}, nil},
		{"open wifi needs no password", payload.Wifi{SSID: "x", Encryption: payload.EncryptionNoPass}, nil},
		{"wifi missing ssid and password", payload.Wifi{Encryption: payload.EncryptionWEP}, []string{"ssid", "password"}},
		{"wifi bad encryption", payload.Wifi{SSID: "x", Password: "p", Encryption: "WPA3"}, []string{"encryption"}},
		{"url", payload.URL{URL: " "}, []string{"url"}},
		{"text", payload.Text{Text: "\n"}, []string{"text"}},
		{"vcard needs one contact field", payload.VCard{Org: "Acme"}, []string{"vcardName"}},
		{"vcard phone only", payload.VCard{Phone: "1"}, nil},
		{"email", payload.Email{Subject: "s"}, []string{"email"}},
		{"sms", payload.SMS{Body: "b"}, []string{"smsPhone"}},
		{"tel", payload.Tel{}, []string{"telPhone"}},
		{"geo ok", payload.Geo{Lat: 1, Lng: 2}, nil},
		{"geo not finite", payload.Geo{Lat: math.NaN(), Lng: math.Inf(-1)}, []string{"geoLat", "geoLng"}},
		{"nil", nil, []string{"type"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := payload.Validate(tt.in)
			if tt.fields == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.True(t, validator.IsValidationError(err))
			assert.Equal(t, tt.fields, validator.ExtractValidationErrors(err).Fields())
		})
	}

	t.Run("password message", func(t *testing.T) {
		t.Parallel()
		err := payload.Validate(payload.Wifi{SSID: "x", Encryption: payload.EncryptionWPA})
		assert.Equal(t, []string{"password is required for encrypted networks"},
			validator.ExtractValidationErrors(err).Get("password"))
	})
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	w := payload.Normalize(payload.Wifi{SSID: "  home "}).(payload.Wifi)
	assert.Equal(t, "home", w.SSID)
	assert.Equal(t, payload.EncryptionWPA, w.Encryption)
	require.Error(t, payload.Validate(w), "normalized WPA network still needs a password")

	g := payload.Normalize(payload.Geo{Lat: math.Inf(1), Lng: 3}).(payload.Geo)
	assert.Equal(t, payload.Geo{Lat: 0, Lng: 3}, g)

	v := payload.Normalize(payload.VCard{Name: " Jane ", City: " Rome "}).(payload.VCard)
	assert.Equal(t, "Jane", v.Name)
	assert.Equal(t, "Rome", v.City)

	e := payload.Normalize(payload.Email{Email: " a@b.c ", Body: " hi "}).(payload.Email)
	assert.Equal(t, payload.Email{Email: "a@b.c", Body: "hi"}, e)
}

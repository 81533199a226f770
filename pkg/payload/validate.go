package payload

import (
	"math"
	"strings"

	"github.com/dmitrymomot/qrkit/pkg/validator"
)

// Validate checks the fields a payload needs before it is worth encoding.
// It returns validator.ValidationErrors keyed by request field name, or nil.
func Validate(p Payload) error {
	switch v := p.(type) {
	case Wifi:
		rules := []validator.Rule{
			validator.RequiredString("ssid", v.SSID),
			validator.InList("encryption", v.Encryption, Encryptions),
		}
		if v.Encryption != EncryptionNoPass {
			rules = append(rules, validator.RequiredString("password", v.Password).
				WithMessage("password is required for encrypted networks"))
		}
		return validator.Apply(rules...)
	case URL:
		return validator.Apply(validator.RequiredString("url", v.URL))
	case Text:
		return validator.Apply(validator.RequiredString("text", v.Text))
	case VCard:
		return validator.Apply(validator.RequiredOneOf(
			"vcardName",
			[]string{"vcardName", "vcardPhone", "vcardEmail"},
			v.Name, v.Phone, v.Email,
		).WithMessage("name, phone or email is required"))
	case Email:
		return validator.Apply(validator.RequiredString("email", v.Email))
	case SMS:
		return validator.Apply(validator.RequiredString("smsPhone", v.Phone))
	case Tel:
		return validator.Apply(validator.RequiredString("telPhone", v.Phone))
	case Geo:
		return validator.Apply(
			validator.Finite("geoLat", v.Lat),
			validator.Finite("geoLng", v.Lng),
		)
	case nil:
		return validator.Apply(validator.RequiredString("type", ""))
	default:
		return nil
	}
}

// Normalize trims the fields callers usually collect from forms and fills
// in the default Wi-Fi encryption. Coordinates that are not finite become 0.
func Normalize(p Payload) Payload {
	switch v := p.(type) {
	case Wifi:
		v.SSID = strings.TrimSpace(v.SSID)
		if v.Encryption == "" {
			v.Encryption = EncryptionWPA
		}
		return v
	case URL:
		v.URL = strings.TrimSpace(v.URL)
		return v
	case Text:
		v.Text = strings.TrimSpace(v.Text)
		return v
	case VCard:
		for _, f := range []*string{
			&v.Name, &v.Phone, &v.Email, &v.Org, &v.URL, &v.Note, &v.Title,
			&v.Role, &v.Birthday, &v.Street, &v.City, &v.Zip, &v.Country,
		} {
			*f = strings.TrimSpace(*f)
		}
		return v
	case Email:
		v.Email = strings.TrimSpace(v.Email)
		v.Subject = strings.TrimSpace(v.Subject)
		v.Body = strings.TrimSpace(v.Body)
		return v
	case SMS:
		v.Phone = strings.TrimSpace(v.Phone)
		v.Body = strings.TrimSpace(v.Body)
		return v
	case Tel:
		v.Phone = strings.TrimSpace(v.Phone)
		return v
	case Geo:
		v.Lat = finiteOrZero(v.Lat)
		v.Lng = finiteOrZero(v.Lng)
		return v
	default:
		return p
	}
}

func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

package payload

import (
	"strings"
	"unicode"
)

// DefaultContactName is used when a contact card has no name.
const DefaultContactName = "Contact"

// VCard is a contact card. Only the name is mandatory in the output; every
// other field is emitted when non-blank.
type VCard struct {
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	Org      string `json:"org,omitempty"`
	URL      string `json:"url,omitempty"`
	Note     string `json:"note,omitempty"`
	Title    string `json:"title,omitempty"`
	Role     string `json:"role,omitempty"`
	Birthday string `json:"birthday,omitempty"`
	Street   string `json:"street,omitempty"`
	City     string `json:"city,omitempty"`
	Zip      string `json:"zip,omitempty"`
	Country  string `json:"country,omitempty"`
}

func (VCard) Type() Type { return TypeVCard }
func (VCard) sealed()    {}

// DisplayName is the trimmed name, or DefaultContactName when blank.
func (v VCard) DisplayName() string {
	if name := strings.TrimSpace(v.Name); name != "" {
		return name
	}
	return DefaultContactName
}

// Encode renders a vCard 3.0 with CRLF line endings.
func (v VCard) Encode() string {
	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:" + escapeVCard(v.DisplayName()),
	}

	add := func(prop, value string) {
		lines = append(lines, prop+":"+value)
	}

	if phone := strings.TrimSpace(v.Phone); phone != "" {
		add("TEL", stripSpace(phone))
	}
	if email := strings.TrimSpace(v.Email); email != "" {
		add("EMAIL", email)
	}
	for _, f := range []struct{ prop, value string }{
		{"ORG", v.Org},
		{"TITLE", v.Title},
		{"ROLE", v.Role},
		{"URL", v.URL},
		{"NOTE", v.Note},
	} {
		if strings.TrimSpace(f.value) != "" {
			add(f.prop, escapeVCard(f.value))
		}
	}
	if bday := strings.TrimSpace(v.Birthday); bday != "" {
		add("BDAY", strings.ReplaceAll(bday, "-", ""))
	}
	if v.hasAddress() {
		// ;;street;city;region;zip;country
		add("ADR;TYPE=work", strings.Join([]string{
			"", "",
			escapeVCard(v.Street),
			escapeVCard(v.City),
			"",
			escapeVCard(v.Zip),
			escapeVCard(v.Country),
		}, ";"))
	}

	lines = append(lines, "END:VCARD")
	return strings.Join(lines, "\r\n")
}

func (v VCard) hasAddress() bool {
	for _, s := range []string{v.Street, v.City, v.Zip, v.Country} {
		if strings.TrimSpace(s) != "" {
			return true
		}
	}
	return false
}

var vcardEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\r\n", `\n`,
	"\n", `\n`,
	`;`, `\;`,
	`,`, `\,`,
)

func escapeVCard(s string) string {
	return vcardEscaper.Replace(s)
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

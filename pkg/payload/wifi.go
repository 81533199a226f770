package payload

import (
	"strconv"
	"strings"
)

// Encryption is the Wi-Fi authentication scheme.
type Encryption string

const (
	EncryptionWPA    Encryption = "WPA"
	EncryptionWEP    Encryption = "WEP"
	EncryptionNoPass Encryption = "nopass"
)

// Encryptions lists the accepted authentication schemes.
var Encryptions = []Encryption{EncryptionWPA, EncryptionWEP, EncryptionNoPass}

// Wifi holds network credentials.
type Wifi struct {
	SSID       string     `json:"ssid"`
	Password   string     `json:"password,omitempty"`
	Encryption Encryption `json:"encryption"`
	Hidden     bool       `json:"isHidden"`
}

func (Wifi) Type() Type { return TypeWifi }
func (Wifi) sealed()    {}

// Encode renders the WIFI: join string understood by phone cameras.
// An empty encryption means WPA. The password field is left out for open
// networks and when no password is set.
func (w Wifi) Encode() string {
	auth := w.Encryption
	if auth == "" {
		auth = EncryptionWPA
	}

	var b strings.Builder
	b.WriteString("WIFI:S:")
	b.WriteString(escapeWifi(w.SSID))
	b.WriteString(";T:")
	b.WriteString(string(auth))
	b.WriteString(";")
	if w.Password != "" && auth != EncryptionNoPass {
		b.WriteString("P:")
		b.WriteString(escapeWifi(w.Password))
		b.WriteString(";")
	}
	b.WriteString("H:")
	b.WriteString(strconv.FormatBool(w.Hidden))
	b.WriteString(";;")
	return b.String()
}

var wifiEscaper = strings.NewReplacer(
	`\`, `\\`,
	`;`, `\;`,
	`,`, `\,`,
	`"`, `\"`,
	`:`, `\:`,
)

func escapeWifi(s string) string {
	return wifiEscaper.Replace(s)
}
